package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.March, 15, 14, 30, 12, 0, time.UTC)

func day(offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func TestRemainingDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  int
	}{
		{"started 5 days ago, 10 day course", day(-5), 10, 5},
		{"ends today", day(-7), 7, 0},
		{"ended 3 days ago", day(-10), 7, -3},
		{"starts today", now, 14, 14},
		{"starts in 3 days, 7 day course", day(3), 7, 10},
		{"single day starting today", now, 1, 1},
		{"ended yesterday", day(-2), 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingDays(tt.start, tt.days, now))
		})
	}
}

func TestRemainingDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	late := time.Date(2025, time.March, 15, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, 5, RemainingDays(start, 10, late))
	assert.Equal(t, 5, RemainingDays(Midnight(start), 10, Midnight(late)))
}

func TestRemainingDaysMonthRollover(t *testing.T) {
	start := time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2025, time.January, 25, 8, 0, 0, 0, time.UTC)

	// 10 days from Jan 25 lands on Feb 4.
	assert.Equal(t, 10, RemainingDays(start, 10, ref))
	assert.Equal(t, 1, RemainingDays(start, 10, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, RemainingDays(start, 10, time.Date(2025, time.February, 4, 12, 0, 0, 0, time.UTC)))
}

func TestRemainingDaysIgnoresStartZone(t *testing.T) {
	// Start dates are parsed as zone-less calendar days and carry UTC; the
	// server clock may sit in any zone. Only calendar days may count.
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	east := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, 14, RemainingDays(start, 14, east), "starts today on a UTC+9 clock")
	assert.Equal(t, 1, RemainingDays(start, 1, east))

	west := time.Date(2025, time.June, 10, 22, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, 14, RemainingDays(start, 14, west), "starts today on a UTC-5 clock")

	ended := time.Date(2025, time.June, 17, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, 0, RemainingDays(start, 7, ended), "ends today regardless of clock zone")
}

func TestMidnight(t *testing.T) {
	m := Midnight(now)
	assert.Equal(t, 0, m.Hour())
	assert.Equal(t, 0, m.Minute())
	assert.Equal(t, now.Year(), m.Year())
	assert.Equal(t, now.Day(), m.Day())
}
