package telegram

import "strings"

// RSSType enum according to [MT-RX] received signal strength serial output.
type RSSType byte

// All defined RSS report types.
const (
	// Frequency reports: SS,1,NNN<CR>
	Frequency RSSType = iota
	// Alert reports, generated when the RSS rises above the SQUELCH level,
	// regardless of the alert setting: SS,A,NNN<CR>
	RSSAlert
)

func (t RSSType) String() string {
	switch t {
	case Frequency:
		return "frequency"
	case RSSAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// RSSTypesByCode maps the wire code of the RSS discriminator to its type.
var RSSTypesByCode = map[byte]RSSType{
	'1': Frequency,
	'A': RSSAlert,
}

// ReceiverStatus represents a received signal strength report:
//
//	SS,<type>,<NNN><CR>
//
// NNN is not calibrated, but is approximately -130 + (NNN / 2) dBm.
type ReceiverStatus struct {
	// RSSType distinguishes frequency and alert reports.
	RSSType RSSType

	// NNN is the signal strength value, 1 to 3 decimal digits on the wire.
	NNN uint16
}

const rssSegmentCount = 3

// DecodeReceiverStatus decodes an RSS telegram. Unlike the MT shapes the RSS
// telegram is comma-delimited and its numeric field has a variable width of
// 1 to 3 digits.
func DecodeReceiverStatus(line string) (ReceiverStatus, error) {
	segments := strings.Split(strings.TrimSpace(line), ",")
	if len(segments) != rssSegmentCount {
		return ReceiverStatus{}, decodeError(MalformedRSS, "", "expected SS,<type>,<nnn>, got %d segments", len(segments))
	}
	if segments[0] != "SS" {
		return ReceiverStatus{}, decodeError(MalformedRSS, "", "expected SS prefix, got %q", segments[0])
	}
	if len(segments[1]) != 1 {
		return ReceiverStatus{}, decodeError(MalformedRSS, "rss_type", "expected a single discriminator character, got %q", segments[1])
	}

	var result ReceiverStatus

	rssType, ok := RSSTypesByCode[segments[1][0]]
	if !ok {
		return ReceiverStatus{}, decodeError(UnrecognizedCode, "rss_type", "unknown RSS type %q", segments[1][0])
	}
	result.RSSType = rssType

	if len(segments[2]) > 3 {
		return ReceiverStatus{}, decodeError(InvalidDigit, "nnn", "more than 3 digits: %q", segments[2])
	}
	nnn, err := parseDecimal("nnn", segments[2])
	if err != nil {
		return ReceiverStatus{}, err
	}
	result.NNN = nnn

	return result, nil
}
