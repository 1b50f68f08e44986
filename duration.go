// Package isoduration parses ISO 8601 duration strings (the
// "PnYnMnDTnHnMnS" form, or the week form "PnW") into their calendar
// components, and applies them to points in time through a pluggable
// Calendar.
//
// Only whole non-negative magnitudes are supported. Fractional values,
// negative durations, and the duration-with-date-designator syntax
// ("P0003-06-04T12:30:05") are not.
//
// See: https://en.wikipedia.org/wiki/ISO_8601#Durations
package isoduration

import (
	"errors"
	"strings"

	"github.com/JohnCGriffin/overflow" // Overflow-checked integer arithmetic
)

// ErrInvalidFormat is returned by Parse and Add when the input doesn't
// conform to the ISO 8601 duration grammar. It is the only parse error;
// callers can't tell malformed inputs apart beyond this.
var ErrInvalidFormat = errors.New("invalid ISO 8601 duration")

// Components holds the whole-unit magnitudes of an ISO 8601 duration,
// suitable as input to calendar arithmetic. The zero value is the empty
// duration ("P"). A field left at zero is indistinguishable from an absent
// designator, which matches how calendar arithmetic treats the two.
type Components struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero returns true if every component is unset.
func (c Components) IsZero() bool {
	return c == Components{}
}

// Parse parses an ISO 8601 duration string.
//
// The week form ("P2W") is folded into days (1 week = 7 days) and populates
// nothing else. A designator with no digits before it ("PY", "PT1HM")
// validates but is treated as absent rather than rejected. Each call
// returns a fresh Components value owned by the caller.
func Parse(duration string) (*Components, error) {
	if !Valid(duration) {
		return nil, ErrInvalidFormat
	}

	// Week form. Validation is anchored, so a W here can only be the
	// single week designator. Weeks never mix with the other fields.
	if strings.IndexByte(duration, 'W') >= 0 {
		weeks, ok := extract(duration, []byte{'W'})['W']
		if !ok {
			// A valid string containing W should always carry a week
			// magnitude, except the empty-digits case ("PW").
			return nil, ErrInvalidFormat
		}
		days, ok := overflow.Mul(weeks, 7)
		if !ok {
			return nil, ErrInvalidFormat
		}
		return &Components{Days: days}, nil
	}

	// The same letter M means months before the T separator and minutes
	// after it. Splitting into segments first removes the ambiguity so
	// each segment's M can be extracted independently.
	period, clock := segments(duration)

	c := &Components{}
	p := extract(period, []byte{'Y', 'M', 'D'})
	c.Years = p['Y']
	c.Months = p['M']
	c.Days = p['D']
	ck := extract(clock, []byte{'H', 'M', 'S'})
	c.Hours = ck['H']
	c.Minutes = ck['M']
	c.Seconds = ck['S']
	return c, nil
}

// MustParse is like Parse, but panics if there's an error.
func MustParse(duration string) *Components {
	c, err := Parse(duration)
	if err != nil {
		panic(err)
	}
	return c
}

// segments cuts a validated duration string into its period segment
// (between P and T, date-scale designators) and time segment (after T,
// clock-scale designators). The time segment is empty if there's no T.
func segments(duration string) (period, clock string) {
	s := duration[1:] // drop the P prefix; Valid guarantees it's there
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
