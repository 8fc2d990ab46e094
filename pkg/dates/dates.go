// Package dates holds the calendar math used by the scheduling views.
//
// All calendar-day comparisons are UTC-normalized: a timestamp belongs to
// the day it falls on after conversion to UTC, and grid days are midnight
// UTC. Callers that want another zone convert before calling in.
package dates

import "time"

// GridDays is the number of cells in a month grid: six full weeks.
const GridDays = 42

// StartOfDay truncates a timestamp to midnight UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns midnight UTC of the first weekStart on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// Grid returns the 42 days shown for the month containing anchor: from the
// start of the week containing the 1st through six full weeks, so partial
// weeks at the edges are padded with adjacent-month days.
func Grid(anchor time.Time, weekStart time.Weekday) []time.Time {
	u := anchor.UTC()
	monthStart := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	gridStart := StartOfWeek(monthStart, weekStart)

	days := make([]time.Time, 0, GridDays)
	for i := 0; i < GridDays; i++ {
		days = append(days, gridStart.AddDate(0, 0, i))
	}
	return days
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	ay, am, ad := au.Date()
	by, bm, bd := bu.Date()
	return ay == by && am == bm && ad == bd
}

// InRange reports whether ts lies within [start, end], bounds inclusive.
func InRange(ts, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}
