package tool

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "14:30", "23:59"} {
		parsed, err := ParseClock(s)
		require.NoError(t, err)
		require.Equal(t, s, FormatClock(parsed))
	}
}

func TestParseClockRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "9am", "25:00", "12:60", "12-30"} {
		_, err := ParseClock(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestParseClockOrdering(t *testing.T) {
	early, err := ParseClock("09:00")
	require.NoError(t, err)
	late, err := ParseClock("17:30")
	require.NoError(t, err)
	require.Less(t, early, late)
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	require.Equal(t, "2026-03-15", FormatDate(d))

	_, err = ParseDate("15/03/2026")
	require.Error(t, err)
	_, err = ParseDate("2026-13-01")
	require.Error(t, err)
}

func TestFormatClockZero(t *testing.T) {
	require.Equal(t, "00:00", FormatClock(datatypes.Time(0)))
}
