package telegram

// MessageType enum according to [MT-RX] serial out packet format, field T.
type MessageType byte

// All defined message types: 'T' for a test message, 'A' for a distress alert.
const (
	Test MessageType = iota
	Alert
)

func (t MessageType) String() string {
	switch t {
	case Test:
		return "test"
	case Alert:
		return "alert"
	default:
		return "unknown"
	}
}

// MessageTypesByCode maps the wire code of field T to its message type.
var MessageTypesByCode = map[byte]MessageType{
	'T': Test,
	'A': Alert,
}

// StructuredAlert represents the MT(1) serial out packet:
//
//	MT1 UUU NNN T F HHHHHHHHHHHHHHH SS 11 22 33 N 444 55 66 W YYYY
//
// a fixed 47 character telegram carrying beacon identity, signal strength and
// position of a received 406 MHz beacon transmission.
type StructuredAlert struct {
	// Header is the fixed telegram tag, always "MT1".
	Header string

	// ID is the configurable 3 digit receiver ID, "001" by default.
	ID string

	// SequenceNumber is the cycling packet sequence number (NNN).
	SequenceNumber uint16

	// MessageType distinguishes test and distress alert messages (T).
	MessageType MessageType

	// FormatFlag is 'S' or 'L' (short or long), per the 406 beacon
	// transmission specification (F). Kept verbatim.
	FormatFlag byte

	// Beacon holds the 15 character beacon hex code defining beacon owner and
	// capabilities (H), as raw ASCII bytes, not further decoded.
	Beacon [15]byte

	// SignalStrength is the 2 character signal strength indication (SS),
	// "00" if not used.
	SignalStrength [2]byte

	// Latitude components (11, 22, 33).
	LatDegrees uint8
	LatMinutes uint8
	LatSeconds uint8

	// LatHemisphere is 'N' or 'S', kept verbatim.
	LatHemisphere byte

	// Longitude components (444, 55, 66).
	LongDegrees uint16
	LongMinutes uint8
	LongSeconds uint8

	// LongHemisphere is 'W' or 'E', kept verbatim.
	LongHemisphere byte

	// Checksum is the 4 hex character telegram checksum (YYYY), calculated
	// from the first telegram character.
	Checksum uint16
}

// StructuredAlertLength is the fixed width of an MT1 telegram.
const StructuredAlertLength = 47

// The MT1 field layout.
// 012 345 678 9 0 123456789012345 67 89 01 23 4 567 89 01 2 3456
// MT1 UUU NNN T F HHHHHHHHHHHHHHH SS 11 22 33 N 444 55 66 W YYYY
var (
	mt1Header         = field{"header", 0, 3}
	mt1ID             = field{"id", 3, 3}
	mt1Sequence       = field{"sequence_number", 6, 3}
	mt1MessageType    = field{"message_type", 9, 1}
	mt1FormatFlag     = field{"format_flag", 10, 1}
	mt1Beacon         = field{"beacon", 11, 15}
	mt1SignalStrength = field{"signal_strength", 26, 2}
	mt1LatDegrees     = field{"lat_degrees", 28, 2}
	mt1LatMinutes     = field{"lat_minutes", 30, 2}
	mt1LatSeconds     = field{"lat_seconds", 32, 2}
	mt1LatHemisphere  = field{"n", 34, 1}
	mt1LongDegrees    = field{"long_degrees", 35, 3}
	mt1LongMinutes    = field{"long_minutes", 38, 2}
	mt1LongSeconds    = field{"long_seconds", 40, 2}
	mt1LongHemisphere = field{"w", 42, 1}
	mt1Checksum       = field{"checksum", 43, 4}
)

// DecodeStructuredAlert decodes an MT(1) telegram. The telegram must be
// exactly 47 characters long, fields are decoded left to right and the first
// failing field rejects the whole telegram.
func DecodeStructuredAlert(line string) (StructuredAlert, error) {
	if len(line) < StructuredAlertLength {
		return StructuredAlert{}, decodeError(TooShort, "", "MT1 telegram needs %d characters, got %d", StructuredAlertLength, len(line))
	}
	if len(line) > StructuredAlertLength {
		return StructuredAlert{}, decodeError(UnrecognizedFormat, "", "trailing data after %d characters of an MT1 telegram", StructuredAlertLength)
	}

	var result StructuredAlert
	var err error

	result.Header, err = mt1Header.slice(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.ID, err = mt1ID.digits(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.SequenceNumber, err = mt1Sequence.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}

	typeCode, err := mt1MessageType.char(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	messageType, ok := MessageTypesByCode[typeCode]
	if !ok {
		return StructuredAlert{}, decodeError(UnrecognizedCode, mt1MessageType.name, "unknown message type %q", typeCode)
	}
	result.MessageType = messageType

	result.FormatFlag, err = mt1FormatFlag.char(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	err = mt1Beacon.bytes(line, result.Beacon[:])
	if err != nil {
		return StructuredAlert{}, err
	}
	err = mt1SignalStrength.bytes(line, result.SignalStrength[:])
	if err != nil {
		return StructuredAlert{}, err
	}

	latDegrees, err := mt1LatDegrees.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.LatDegrees = uint8(latDegrees)
	latMinutes, err := mt1LatMinutes.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.LatMinutes = uint8(latMinutes)
	latSeconds, err := mt1LatSeconds.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.LatSeconds = uint8(latSeconds)
	result.LatHemisphere, err = mt1LatHemisphere.char(line)
	if err != nil {
		return StructuredAlert{}, err
	}

	result.LongDegrees, err = mt1LongDegrees.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	longMinutes, err := mt1LongMinutes.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.LongMinutes = uint8(longMinutes)
	longSeconds, err := mt1LongSeconds.decimal(line)
	if err != nil {
		return StructuredAlert{}, err
	}
	result.LongSeconds = uint8(longSeconds)
	result.LongHemisphere, err = mt1LongHemisphere.char(line)
	if err != nil {
		return StructuredAlert{}, err
	}

	result.Checksum, err = mt1Checksum.hex16(line)
	if err != nil {
		return StructuredAlert{}, err
	}

	return result, nil
}
