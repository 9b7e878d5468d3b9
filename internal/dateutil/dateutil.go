// Package dateutil is the single date-normalization point for the module.
// Every stage comparison goes through it, so results are independent of the
// caller's timezone. Local wall-clock truncation is not used anywhere.
package dateutil

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the day-granularity storage and input format.
const DateLayout = "2006-01-02"

// ErrInvalidDate marks unparsable date input. It is never silently defaulted.
var ErrInvalidDate = errors.New("invalid date")

// Normalize converts t to the UTC midnight of its UTC calendar day.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDiff returns the number of whole UTC days from a to b, positive when b
// is later. Both inputs are normalized first, so the nearest rounding is
// exact for any wall-clock inputs on the same calendar days.
func DayDiff(a, b time.Time) int {
	return int(math.Round(Normalize(b).Sub(Normalize(a)).Hours() / 24))
}

// CeilDayDiff returns the day difference from a to b rounded with ceiling
// toward the later date. This is the lead-time rule: when the value is a risk
// buffer, rounding against the shipper is the conservative choice. It is
// deliberately not unified with DayDiff's nearest rounding.
func CeilDayDiff(a, b time.Time) int {
	return int(math.Ceil(b.UTC().Sub(a.UTC()).Hours() / 24))
}

// ParseDate parses day-granularity or RFC3339 input and normalizes the
// result. Unparsable input fails with ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Normalize(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}
	return time.Time{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidDate)
}
