package badges

import (
	"time"

	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
)

// History is the snapshot a rule looks at. Today is midnight of the current
// day in Location.
type History struct {
	Sessions []*entity.TrainingSession
	Today    time.Time
	Location *time.Location

	completedDays map[string]struct{}
}

func (h *History) days() map[string]struct{} {
	if h.completedDays == nil {
		h.completedDays = timeline.CompletedDays(h.Sessions)
	}
	return h.completedDays
}

func (h *History) countCompleted(match func(s *entity.TrainingSession) bool) int {
	n := 0
	for _, s := range h.Sessions {
		if s == nil || !s.Completed {
			continue
		}
		if match == nil || match(s) {
			n++
		}
	}
	return n
}

// Rule decides whether a badge is earned for the given history.
type Rule func(h *History) bool

func CompletedSessions(count int) Rule {
	return func(h *History) bool {
		return h.countCompleted(nil) >= count
	}
}

// ConsecutiveDays starts counting from yesterday, today does not contribute.
func ConsecutiveDays(days int) Rule {
	return func(h *History) bool {
		yesterday := h.Today.AddDate(0, 0, -1)
		return timeline.Streak(h.days(), yesterday, days) >= days
	}
}

func TotalHours(hours int) Rule {
	return func(h *History) bool {
		minutes := 0
		for _, s := range h.Sessions {
			if s != nil && s.Completed {
				minutes += s.Duration
			}
		}
		return float64(minutes)/60 >= float64(hours)
	}
}

// PerfectWeek requires a completed session on every day from Sunday up to and
// including today. Later days of the week are not required yet.
func PerfectWeek() Rule {
	return func(h *History) bool {
		days := h.days()
		start := timeline.StartOfWeek(h.Today)
		for d := start; !d.After(h.Today); d = d.AddDate(0, 0, 1) {
			if _, ok := days[timeline.DayKey(d)]; !ok {
				return false
			}
		}
		return true
	}
}

func EarlyMorningSessions(count int) Rule {
	return createdHourRule(count, func(hour int) bool {
		return hour >= 5 && hour < 8
	})
}

func LateNightSessions(count int) Rule {
	return createdHourRule(count, func(hour int) bool {
		return hour >= 22 || hour < 1
	})
}

func WeekendSessions(count int) Rule {
	return func(h *History) bool {
		n := h.countCompleted(func(s *entity.TrainingSession) bool {
			return s.Date != nil && timeline.IsWeekend(*s.Date)
		})
		return n >= count
	}
}

func createdHourRule(count int, inWindow func(hour int) bool) Rule {
	return func(h *History) bool {
		n := h.countCompleted(func(s *entity.TrainingSession) bool {
			if s.CreatedAt == nil {
				return false
			}
			return inWindow(s.CreatedAt.In(h.Location).Hour())
		})
		return n >= count
	}
}
