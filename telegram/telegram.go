package telegram

import "strings"

// Message is one decoded telegram. The concrete type is one of exactly
// StructuredAlert, Raw, and ReceiverStatus.
type Message interface {
	telegram()
}

func (StructuredAlert) telegram() {}
func (Raw) telegram()             {}
func (ReceiverStatus) telegram()  {}

// The telegram prefixes the dispatcher recognizes.
const (
	structuredAlertPrefix = "MT1"
	rawPrefix             = "MT6"
	receiverStatusPrefix  = "SS,"
)

// Decode decodes a single telegram line into its typed record. Surrounding
// whitespace including the receiver's <CR> terminator is stripped first.
// The leading characters select the telegram shape: "MT1" for a structured
// alert, "MT6" for a raw data packet, "SS," for a received signal strength
// report. Any other prefix is rejected with UnrecognizedFormat.
func Decode(line string) (Message, error) {
	trimmed := strings.TrimSpace(line)

	var result Message
	var err error
	switch {
	case strings.HasPrefix(trimmed, structuredAlertPrefix):
		result, err = DecodeStructuredAlert(trimmed)
	case strings.HasPrefix(trimmed, rawPrefix):
		result, err = DecodeRaw(trimmed)
	case strings.HasPrefix(trimmed, receiverStatusPrefix):
		result, err = DecodeReceiverStatus(trimmed)
	default:
		return nil, decodeError(UnrecognizedFormat, "", "not an MT-RX telegram: %q", trimmed)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}
