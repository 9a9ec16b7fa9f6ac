// Package timeline holds the calendar arithmetic shared by the badge rules and
// the dashboard: civil-day keys, week boundaries and streak walking.
package timeline

import (
	"time"

	"github.com/limbo/grindlog/pkg/entity"
)

const dayLayout = "2006-01-02"

// DayKey formats t as a civil date in t's own location.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// CivilDate drops the clock and zone of t, keeping its calendar date as UTC
// midnight. This is how dates are stored.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfDay truncates now to midnight in loc.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns the Sunday that opens the week containing day.
func StartOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// CompletedDays indexes the civil dates that have at least one completed
// session. Sessions without a date are skipped.
func CompletedDays(sessions []*entity.TrainingSession) map[string]struct{} {
	days := make(map[string]struct{})
	for _, s := range sessions {
		if s == nil || !s.Completed || s.Date == nil {
			continue
		}
		days[DayKey(*s.Date)] = struct{}{}
	}
	return days
}

// Streak counts consecutive days, walking backwards from start, that appear in
// days. It stops at the first gap or once limit days were counted (limit <= 0
// means no limit).
func Streak(days map[string]struct{}, start time.Time, limit int) int {
	count := 0
	for cur := start; limit <= 0 || count < limit; cur = cur.AddDate(0, 0, -1) {
		if _, ok := days[DayKey(cur)]; !ok {
			break
		}
		count++
	}
	return count
}

// IsWeekend reports whether the civil date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SameMonth reports whether a and b share calendar month and year in loc.
func SameMonth(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	return a.Year() == b.Year() && a.Month() == b.Month()
}
