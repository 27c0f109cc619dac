package domain

import "time"

// DayOf truncates a timestamp to its calendar day in UTC.
// All streak and daily-progress bookkeeping keys off this value.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	da := DayOf(a)
	db := DayOf(b)
	return int(db.Sub(da).Hours() / 24)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// DateString returns the day key in YYYYMMDD format.
func DateString(t time.Time) string {
	return DayOf(t).Format("20060102")
}
