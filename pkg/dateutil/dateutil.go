package dateutil

import (
	"math"
	"time"
)

// Midnight truncates t to its local calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RemainingDays returns the signed number of whole days from now until a
// treatment ends. The treatment window is [start, start+numberOfDays): a
// course that starts today and runs N days has N days remaining, one whose
// end date is today has 0, and one that already ended yields the negative
// count of days since it ended.
//
// The end date is computed by calendar addition (month/year rollover is
// handled by the calendar, not by adding a fixed duration). Both endpoints
// are built in now's location: start dates arrive as zone-less calendar
// days, typically UTC, so only their calendar fields count. Neither the
// start's zone nor any time-of-day affects the result.
func RemainingDays(start time.Time, numberOfDays int, now time.Time) int {
	today := Midnight(now)
	end := time.Date(start.Year(), start.Month(), start.Day()+numberOfDays, 0, 0, 0, 0, now.Location())

	diff := end.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}
