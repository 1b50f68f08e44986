package isoduration

import (
	"errors"
	"time"

	"github.com/JohnCGriffin/overflow" // Overflow-checked integer arithmetic
)

// Calendar units don't have fixed lengths, which is why the time package
// doesn't define them. The mean Gregorian lengths below are good enough
// when an order-of-magnitude time.Duration is wanted; anything that has to
// land on the right calendar day should go through a Calendar instead.

const (
	// Day duration
	Day = 24 * time.Hour

	// Week duration
	Week = 7 * Day

	// Month duration
	Month = (time.Duration(30.436875*float64(Day)) / time.Second) * time.Second // truncate to second

	// Year duration
	Year = (time.Duration(365.2425*float64(Day)) / time.Second) * time.Second // truncate to second
)

// ErrInt64Overflow is returned by Duration if the result can't fit in an int64.
var ErrInt64Overflow = errors.New("int64 overflow")

// Duration flattens the components into an approximate fixed-length
// time.Duration.
//
// The following time assumptions are used:
// - Days are 24 hours.
// - Months are 30.436875 days.
// - Years are 365.2425 days.
func (c Components) Duration() (time.Duration, error) {
	parts := []struct {
		n    int
		unit time.Duration
	}{
		{c.Years, Year},
		{c.Months, Month},
		{c.Days, Day},
		{c.Hours, time.Hour},
		{c.Minutes, time.Minute},
		{c.Seconds, time.Second},
	}
	var sum int64
	for _, p := range parts {
		d, ok := overflow.Mul64(int64(p.n), int64(p.unit))
		if !ok {
			return 0, ErrInt64Overflow
		}
		if sum, ok = overflow.Add64(sum, d); !ok {
			return 0, ErrInt64Overflow
		}
	}
	return time.Duration(sum), nil
}
