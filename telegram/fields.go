package telegram

import "strconv"

// field describes one fixed-width subfield of a telegram by name, byte offset
// and width. The MT telegram layouts are declared as tables of fields, the
// conversion methods below do all the slicing and per-character validation.
type field struct {
	name   string
	offset int
	width  int
}

// slice extracts the raw substring of this field.
func (f field) slice(s string) (string, error) {
	if len(s) < f.offset+f.width {
		return "", decodeError(TooShort, f.name, "need %d characters, got %d", f.offset+f.width, len(s))
	}
	return s[f.offset : f.offset+f.width], nil
}

// decimal converts this field to its unsigned base-10 value. Every character
// must be an ASCII decimal digit.
func (f field) decimal(s string) (uint16, error) {
	raw, err := f.slice(s)
	if err != nil {
		return 0, err
	}
	return parseDecimal(f.name, raw)
}

// hex16 converts this 4 character field to its unsigned base-16 value.
// Upper and lower case hex digits are accepted, the receiver emits upper case.
func (f field) hex16(s string) (uint16, error) {
	raw, err := f.slice(s)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return 0, decodeError(InvalidChecksum, f.name, "not a hex value: %q", raw)
		}
	}
	value, err := strconv.ParseUint(raw, 16, 16)
	if err != nil {
		return 0, decodeError(InvalidChecksum, f.name, "not a hex value: %q", raw)
	}
	return uint16(value), nil
}

// char returns the single character of this field verbatim.
func (f field) char(s string) (byte, error) {
	raw, err := f.slice(s)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

// bytes copies the ASCII byte values of this field into dst. Any character is
// acceptable, the payload is not interpreted here.
func (f field) bytes(s string, dst []byte) error {
	raw, err := f.slice(s)
	if err != nil {
		return err
	}
	copy(dst, raw)
	return nil
}

// digits returns this field verbatim, rejecting any non-digit character.
func (f field) digits(s string) (string, error) {
	raw, err := f.slice(s)
	if err != nil {
		return "", err
	}
	for i := 0; i < len(raw); i++ {
		if !isDecimalDigit(raw[i]) {
			return "", decodeError(InvalidDigit, f.name, "not a decimal value: %q", raw)
		}
	}
	return raw, nil
}

// parseDecimal converts an exact or variable width decimal field to its value.
func parseDecimal(name string, raw string) (uint16, error) {
	if raw == "" {
		return 0, decodeError(InvalidDigit, name, "empty decimal field")
	}
	for i := 0; i < len(raw); i++ {
		if !isDecimalDigit(raw[i]) {
			return 0, decodeError(InvalidDigit, name, "not a decimal value: %q", raw)
		}
	}
	value, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, decodeError(InvalidDigit, name, "not a decimal value: %q", raw)
	}
	return uint16(value), nil
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}
