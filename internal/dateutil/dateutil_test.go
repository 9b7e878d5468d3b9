package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StripsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 1, 10, 17, 45, 12, 999, time.UTC)
	got := Normalize(in)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalize_TimezoneIndependent(t *testing.T) {
	// 2024-01-10 23:30 in UTC+5 is 18:30 UTC the same day; normalization
	// must key off the UTC day, not the caller's local day.
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2024, 1, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Normalize(local))

	// 2024-01-11 02:00 in UTC+5 is 2024-01-10 21:00 UTC.
	local = time.Date(2024, 1, 11, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Normalize(local))
}

func TestDayDiff(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DayDiff(a, b))
	assert.Equal(t, -2, DayDiff(b, a))
	assert.Equal(t, 0, DayDiff(a, a))
}

func TestDayDiff_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DayDiff(a, b))
}

func TestCeilDayDiff_RoundsTowardLaterDate(t *testing.T) {
	a := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	// 1.5 days apart -> ceiling gives 2.
	assert.Equal(t, 2, CeilDayDiff(a, b))
	// Reversed, -1.5 days -> ceiling gives -1.
	assert.Equal(t, -1, CeilDayDiff(b, a))
}

func TestCeilDayDiff_ExactDays(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, CeilDayDiff(a, b))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-01-10T22:15:00+05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "next tuesday", "10/01/2024", "2024-13-40"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}
