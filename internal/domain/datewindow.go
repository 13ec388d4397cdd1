package domain

import "time"

// Week windows run Monday 00:00:00.000 through Sunday 23:59:59.999 in the
// reference time's location. Sunday is the last day of the week, not the
// first.

// WeekStart returns the Monday 00:00 that starts t's week.
func WeekStart(t time.Time) time.Time {
	diff := int(t.Weekday()) - int(time.Monday)
	if diff < 0 {
		diff += 7 // Sunday rolls back to the previous Monday
	}
	year, month, day := t.AddDate(0, 0, -diff).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// WeekEnd returns the last included instant of t's week, Sunday
// 23:59:59.999.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// DaysAgo returns now shifted back n calendar days.
func DaysAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -n)
}

// DaysRemaining returns the number of whole days from now until end,
// rounded up. Past deadlines yield negative values.
func DaysRemaining(now, end time.Time) int {
	diff := end.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// InWindow reports whether t falls in [start, end], both bounds included.
func InWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
