package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the clock portion of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end. It is
// negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}
