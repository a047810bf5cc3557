package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSlice(t *testing.T) {
	f := field{"test", 3, 4}

	tt := []struct {
		desc     string
		value    string
		expected string
		tooShort bool
	}{
		{"exact", "abc1234", "1234", false},
		{"longer", "abc1234xyz", "1234", false},
		{"ends inside the field", "abc12", "", true},
		{"ends before the field", "ab", "", true},
		{"empty", "", "", true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := f.slice(tc.value)
			if tc.tooShort {
				assertErrorKind(t, err, TooShort)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestFieldDecimal(t *testing.T) {
	f := field{"test", 0, 3}

	tt := []struct {
		desc     string
		value    string
		expected uint16
		invalid  bool
	}{
		{"zero", "000", 0, false},
		{"max", "999", 999, false},
		{"leading zeros", "007", 7, false},
		{"letters", "a12", 0, true},
		{"sign is not a digit", "+12", 0, true},
		{"dashes", "---", 0, true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := f.decimal(tc.value)
			if tc.invalid {
				assertErrorKind(t, err, InvalidDigit)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestFieldHex16(t *testing.T) {
	f := field{"test", 0, 4}

	tt := []struct {
		desc     string
		value    string
		expected uint16
		invalid  bool
	}{
		{"upper case", "F84B", 0xF84B, false},
		{"lower case", "f84b", 0xF84B, false},
		{"all digits", "4706", 0x4706, false},
		{"maximum", "FFFF", 0xFFFF, false},
		{"non-hex letter", "F8ZB", 0, true},
		{"space", "F8 B", 0, true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := f.hex16(tc.value)
			if tc.invalid {
				assertErrorKind(t, err, InvalidChecksum)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
