package store

import "time"

// DateOf formats t as a YYYY-MM-DD calendar day in t's location.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekBounds returns the first and last calendar day of the week
// containing t, as YYYY-MM-DD strings. Weeks run Monday through Sunday
// to stay consistent with the ISO-8601 week numbering used by progress
// reports.
func WeekBounds(t time.Time) (start, end string) {
	// Monday-based weekday offset: Mon=0 ... Sun=6.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return DateOf(monday), DateOf(sunday)
}

// MonthBounds returns the first and last calendar day of the month
// containing t, as YYYY-MM-DD strings.
func MonthBounds(t time.Time) (start, end string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return DateOf(first), DateOf(last)
}
