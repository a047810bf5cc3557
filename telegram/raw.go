package telegram

// Raw represents the MT(6) raw data serial out packet:
//
//	MT6 UUU NNN RRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRR YYYY
//
// a fixed 49 character telegram carrying 36 characters of undecoded beacon
// payload. Supported by the receiver from firmware revision v1.88.
type Raw struct {
	// Header is the fixed telegram tag, always "MT6".
	Header string

	// ID is the configurable 3 digit receiver ID, "001" by default.
	ID string

	// SequenceNumber is the cycling packet sequence number (NNN).
	SequenceNumber uint16

	// Data holds the 36 raw data characters (R) as ASCII bytes. Decoding the
	// 406 beacon payload they carry is out of this package's scope.
	Data [36]byte

	// Checksum is the 4 hex character checksum (YYYY), calculated from the
	// first raw data character.
	Checksum uint16
}

// RawLength is the fixed width of an MT6 telegram.
const RawLength = 49

// The MT6 field layout.
// 012 345 678 901234567890123456789012345678901234 5678
// MT6 UUU NNN RRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRRR YYYY
var (
	mt6Header   = field{"header", 0, 3}
	mt6ID       = field{"id", 3, 3}
	mt6Sequence = field{"sequence_number", 6, 3}
	mt6Data     = field{"data", 9, 36}
	mt6Checksum = field{"checksum", 45, 4}
)

// DecodeRaw decodes an MT(6) telegram. The telegram must be exactly 49
// characters long, fields are decoded left to right and the first failing
// field rejects the whole telegram.
func DecodeRaw(line string) (Raw, error) {
	if len(line) < RawLength {
		return Raw{}, decodeError(TooShort, "", "MT6 telegram needs %d characters, got %d", RawLength, len(line))
	}
	if len(line) > RawLength {
		return Raw{}, decodeError(UnrecognizedFormat, "", "trailing data after %d characters of an MT6 telegram", RawLength)
	}

	var result Raw
	var err error

	result.Header, err = mt6Header.slice(line)
	if err != nil {
		return Raw{}, err
	}
	result.ID, err = mt6ID.digits(line)
	if err != nil {
		return Raw{}, err
	}
	result.SequenceNumber, err = mt6Sequence.decimal(line)
	if err != nil {
		return Raw{}, err
	}
	err = mt6Data.bytes(line, result.Data[:])
	if err != nil {
		return Raw{}, err
	}
	result.Checksum, err = mt6Checksum.hex16(line)
	if err != nil {
		return Raw{}, err
	}

	return result, nil
}

// ChecksumOK reports whether the decoded checksum matches the raw data bytes.
func (r Raw) ChecksumOK() bool {
	return ComputeChecksum(r.Data[:]) == r.Checksum
}
