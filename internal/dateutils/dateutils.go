// Package dateutils provides the date helpers shared by the parsers and the
// calling layer.
package dateutils

import "time"

// DateLayoutISO is the only layout the application emits.
const DateLayoutISO = "2006-01-02"

// Clock returns the current time. Components take one so tests can pin "today".
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// ToISODate formats a time.Time as YYYY-MM-DD in its own location.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Today returns the ISO date of now.
func Today(now time.Time) string {
	return ToISODate(now)
}

// Yesterday returns the ISO date of the calendar day before now.
func Yesterday(now time.Time) string {
	return ToISODate(now.AddDate(0, 0, -1))
}
