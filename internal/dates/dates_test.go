package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("1945-12-01")
	require.NoError(t, err)
	assert.Equal(t, 1945, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "1945-12-01", FormatDate(d))
}

func TestParseDate_TrimsSpaces(t *testing.T) {
	d, err := ParseDate(" 2023-06-03 ")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-03", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "03.06.2023", "2023-13-01", "2023-6-3"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseTime_RoundTripAndOrdering(t *testing.T) {
	begin, err := ParseTime("07:30")
	require.NoError(t, err)
	end, err := ParseTime("08:00")
	require.NoError(t, err)

	assert.Equal(t, "07:30", FormatTime(begin))
	assert.True(t, end.After(begin))
}

func TestParseTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "7:30pm", "25:00", "12:60"} {
		_, err := ParseTime(s)
		assert.Error(t, err, s)
	}
}

func TestToday_And_Truncate(t *testing.T) {
	now := time.Date(2024, time.June, 2, 23, 59, 1, 0, time.UTC)
	assert.Equal(t, "2024-06-02", Today(now))
	assert.Equal(t, time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), Truncate(now))
}
