// Package stats summarises a user's training history for the dashboard.
package stats

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	topCategories   = 5
	unnamedCategory = "기타"
)

// Compute builds dashboard statistics relative to now in loc. The week starts
// on Sunday and the streak is counted back from yesterday.
func Compute(sessions []*entity.TrainingSession, now time.Time, loc *time.Location) entity.DashboardStats {
	today := timeline.StartOfDay(now, loc)
	weekStart := timeline.StartOfWeek(today)
	weekStartCivil := timeline.CivilDate(weekStart)

	result := entity.DashboardStats{
		Weekly:     make([]entity.WeekdayStats, 0, 7),
		Categories: make([]entity.CategoryStats, 0, topCategories),
	}
	var totalMinutes, weekMinutes int
	dayTotal := make(map[string]int)
	dayCompleted := make(map[string]int)
	categories := make(map[string]*entity.CategoryStats)
	var categoryOrder []string

	for _, s := range sessions {
		if s == nil {
			continue
		}
		result.TotalSessions++
		totalMinutes += s.Duration
		if s.Completed {
			result.CompletedSessions++
		}
		if s.Date != nil {
			key := timeline.DayKey(*s.Date)
			dayTotal[key] += s.Duration
			if s.Completed {
				dayCompleted[key] += s.Duration
				if !timeline.CivilDate(*s.Date).Before(weekStartCivil) {
					weekMinutes += s.Duration
				}
			}
		}
		name := s.Name
		if name == "" {
			name = unnamedCategory
		}
		c, ok := categories[name]
		if !ok {
			c = &entity.CategoryStats{Name: name}
			categories[name] = c
			categoryOrder = append(categoryOrder, name)
		}
		c.Minutes += s.Duration
		c.Total++
		if s.Completed {
			c.Completed++
		}
	}

	if result.TotalSessions > 0 {
		result.CompletionRate = int(math.Round(float64(result.CompletedSessions) / float64(result.TotalSessions) * 100))
	}
	result.TotalHours = Hours(totalMinutes)
	result.ThisWeekHours = Hours(weekMinutes)
	result.StreakDays = timeline.Streak(timeline.CompletedDays(sessions), today.AddDate(0, 0, -1), 0)

	for i := range 7 {
		day := weekStart.AddDate(0, 0, i)
		key := timeline.DayKey(day)
		result.Weekly = append(result.Weekly, entity.WeekdayStats{
			Day:            day.Format("Mon"),
			TotalHours:     Hours(dayTotal[key]),
			CompletedHours: Hours(dayCompleted[key]),
		})
	}

	ranked := make([]entity.CategoryStats, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		ranked = append(ranked, *categories[name])
	}
	slices.SortStableFunc(ranked, func(a, b entity.CategoryStats) int {
		return cmp.Compare(b.Minutes, a.Minutes)
	})
	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}
	result.Categories = append(result.Categories, ranked...)
	return result
}

// Hours converts minutes to hours rounded to one decimal.
func Hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
