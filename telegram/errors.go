package telegram

import "fmt"

// ErrorKind identifies the reason a telegram was rejected. The set is closed,
// callers can rely on every DecodeError carrying one of the kinds below.
type ErrorKind byte

// All defined error kinds.
const (
	// UnrecognizedFormat: the input matches none of the known telegram shapes.
	UnrecognizedFormat ErrorKind = iota
	// TooShort: the input ends before a required field.
	TooShort
	// InvalidDigit: a decimal field contains a non-digit character or has the wrong width.
	InvalidDigit
	// InvalidChecksum: the checksum field contains a non-hex character.
	InvalidChecksum
	// UnrecognizedCode: a coded field holds a character outside its closed code table.
	UnrecognizedCode
	// MalformedRSS: the RSS segment structure does not match SS,<type>,<nnn>.
	MalformedRSS
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedFormat:
		return "unrecognized format"
	case TooShort:
		return "too short"
	case InvalidDigit:
		return "invalid digit"
	case InvalidChecksum:
		return "invalid checksum"
	case UnrecognizedCode:
		return "unrecognized code"
	case MalformedRSS:
		return "malformed RSS"
	default:
		return "unknown"
	}
}

// DecodeError describes why a telegram was rejected. Field names the telegram
// field that failed, it is empty for structural errors. Use errors.As to get
// at the kind:
//
//	var decodeErr *telegram.DecodeError
//	if errors.As(err, &decodeErr) && decodeErr.Kind == telegram.TooShort { ... }
type DecodeError struct {
	Kind  ErrorKind
	Field string

	message string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.message)
}

func decodeError(kind ErrorKind, field string, format string, args ...any) *DecodeError {
	return &DecodeError{
		Kind:    kind,
		Field:   field,
		message: fmt.Sprintf(format, args...),
	}
}
