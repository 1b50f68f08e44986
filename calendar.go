package isoduration

import "time"

// Calendar performs calendar-correct date arithmetic. Month-length
// variation, leap years, and (depending on the implementation) DST
// transitions are its problem; the parser only supplies the Components.
type Calendar interface {
	// Add returns base advanced by the given components.
	Add(c Components, base time.Time) (time.Time, error)
}

// CalendarFunc is a Calendar which wraps a function.
type CalendarFunc func(Components, time.Time) (time.Time, error)

// Add implements the Calendar interface.
func (f CalendarFunc) Add(c Components, base time.Time) (time.Time, error) {
	return f(c, base)
}

var _ Calendar = (CalendarFunc)(nil) // Assert CalendarFunc implements the Calendar interface.

// Std is a Calendar backed by the standard library. Years, months, and
// days go through time.Time.AddDate, which normalizes overflow the same
// way time.Date does: adding one month to October 31 yields December 1.
// Hours, minutes, and seconds are a fixed-length offset on top.
var Std Calendar = CalendarFunc(func(c Components, base time.Time) (time.Time, error) {
	t := base.AddDate(c.Years, c.Months, c.Days)
	t = t.Add(time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second)
	return t, nil
})

// Add parses an ISO 8601 duration string and applies it to base using cal.
// If the string doesn't parse, Add returns ErrInvalidFormat and a zero
// time without ever invoking the calendar.
func Add(duration string, base time.Time, cal Calendar) (time.Time, error) {
	c, err := Parse(duration)
	if err != nil {
		return time.Time{}, err
	}
	return cal.Add(*c, base)
}

// AddTo is Add with the Std calendar.
func AddTo(duration string, base time.Time) (time.Time, error) {
	return Add(duration, base, Std)
}
