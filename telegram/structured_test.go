package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MT1 UUU NNN T F HHHHHHHHHHHHHHH SS 11 22 33 N 444 55 66 W YYYY
// MT1 001 000 A L 400C592753572B3 23 43 32 12 S 172 37 56 E 4706
const validStructuredAlert = "MT1001000AL400C592753572B323433212S1723756E4706"

func TestDecodeStructuredAlert(t *testing.T) {
	actual, err := DecodeStructuredAlert(validStructuredAlert)

	require.NoError(t, err)
	assert.Equal(t, "MT1", actual.Header)
	assert.Equal(t, "001", actual.ID)
	assert.Equal(t, uint16(0), actual.SequenceNumber)
	assert.Equal(t, Alert, actual.MessageType)
	assert.Equal(t, byte('L'), actual.FormatFlag)
	assert.Equal(t, "400C592753572B3", string(actual.Beacon[:]))
	assert.Equal(t, "23", string(actual.SignalStrength[:]))
	assert.Equal(t, uint8(43), actual.LatDegrees)
	assert.Equal(t, uint8(32), actual.LatMinutes)
	assert.Equal(t, uint8(12), actual.LatSeconds)
	assert.Equal(t, byte('S'), actual.LatHemisphere)
	assert.Equal(t, uint16(172), actual.LongDegrees)
	assert.Equal(t, uint8(37), actual.LongMinutes)
	assert.Equal(t, uint8(56), actual.LongSeconds)
	assert.Equal(t, byte('E'), actual.LongHemisphere)
	assert.Equal(t, uint16(0x4706), actual.Checksum)
}

func TestDecodeStructuredAlert_Invalid(t *testing.T) {
	tt := []struct {
		desc string
		line string
		kind ErrorKind
	}{
		{
			desc: "one character short",
			line: "MT1001000AL400C592753572B323433212S1723756E470",
			kind: TooShort,
		},
		{
			desc: "one character long",
			line: "MT1001000AL400C592753572B323433212S1723756E47066",
			kind: UnrecognizedFormat,
		},
		{
			desc: "empty",
			line: "",
			kind: TooShort,
		},
		{
			desc: "non-digit ID",
			line: "MT1X01000AL400C592753572B323433212S1723756E4706",
			kind: InvalidDigit,
		},
		{
			desc: "non-digit sequence number",
			line: "MT1001aaaAL400C592753572B323433212S1723756E4706",
			kind: InvalidDigit,
		},
		{
			desc: "unknown message type",
			line: "MT1001000XL400C592753572B323433212S1723756E4706",
			kind: UnrecognizedCode,
		},
		{
			desc: "no position available is rejected",
			line: "MT1001000AL400C592753572B323------S1723756E4706",
			kind: InvalidDigit,
		},
		{
			desc: "non-digit longitude",
			line: "MT1001000AL400C592753572B323433212S-------E4706",
			kind: InvalidDigit,
		},
		{
			desc: "non-hex checksum",
			line: "MT1001000AL400C592753572B323433212S1723756EZZZZ",
			kind: InvalidChecksum,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := DecodeStructuredAlert(tc.line)
			assertErrorKind(t, err, tc.kind)
		})
	}
}

func TestDecodeStructuredAlert_FirstErrorWins(t *testing.T) {
	// both the sequence number and the checksum are bad, the sequence number
	// comes first in field order
	_, err := DecodeStructuredAlert("MT1001aaaAL400C592753572B323433212S1723756EZZZZ")

	assertErrorKind(t, err, InvalidDigit)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "sequence_number", decodeErr.Field)
}

func TestDecodeStructuredAlert_TestMessageType(t *testing.T) {
	line := "MT1001000TL400C592753572B323433212S1723756E4706"

	actual, err := DecodeStructuredAlert(line)

	require.NoError(t, err)
	assert.Equal(t, Test, actual.MessageType)
}

func TestDecodeStructuredAlert_ChecksumCaseInsensitive(t *testing.T) {
	upper, err := DecodeStructuredAlert("MT1001000AL400C592753572B323433212S1723756EABCD")
	require.NoError(t, err)
	lower, err := DecodeStructuredAlert("MT1001000AL400C592753572B323433212S1723756Eabcd")
	require.NoError(t, err)

	assert.Equal(t, uint16(0xABCD), upper.Checksum)
	assert.Equal(t, upper.Checksum, lower.Checksum)
}
