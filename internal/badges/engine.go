// Package badges decides which achievement badge a user has newly earned.
//
// Rules are registered per badge id in a fixed priority order: session counts,
// streaks, hours, then challenges, ascending by threshold inside each family.
// When several thresholds are crossed at once the earliest registered badge is
// awarded first, the rest follow on later evaluations.
package badges

import (
	"fmt"
	"time"

	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	CategoryAchievement = "달성"
	CategoryStreak      = "연속"
	CategoryHours       = "시간"
	CategoryChallenge   = "도전"
)

type entry struct {
	id   string
	rule Rule
}

// Registry maps badge ids to rules and remembers registration order.
type Registry struct {
	entries []entry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a rule. Registering an id twice replaces the rule but keeps
// its original position.
func (r *Registry) Register(id string, rule Rule) *Registry {
	if i, ok := r.index[id]; ok {
		r.entries[i].rule = rule
		return r
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, entry{id: id, rule: rule})
	return r
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.id)
	}
	return ids
}

func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// DefaultRegistry returns the built-in badge rules.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Register("first-session", CompletedSessions(1)).
		Register("five-sessions", CompletedSessions(5)).
		Register("ten-sessions", CompletedSessions(10)).
		Register("twenty-sessions", CompletedSessions(20)).
		Register("fifty-sessions", CompletedSessions(50)).
		Register("streak-3", ConsecutiveDays(3)).
		Register("streak-7", ConsecutiveDays(7)).
		Register("streak-14", ConsecutiveDays(14)).
		Register("streak-30", ConsecutiveDays(30)).
		Register("hours-5", TotalHours(5)).
		Register("hours-10", TotalHours(10)).
		Register("hours-20", TotalHours(20)).
		Register("hours-50", TotalHours(50)).
		Register("perfect-week", PerfectWeek()).
		Register("early-bird", EarlyMorningSessions(5)).
		Register("night-owl", LateNightSessions(5)).
		Register("weekend-warrior", WeekendSessions(8))
}

type Engine struct {
	registry *Registry
	location *time.Location
	now      func() time.Time
}

// NewEngine builds an engine. A nil registry means DefaultRegistry, a nil
// location means time.Local and a nil clock means time.Now.
func NewEngine(registry *Registry, loc *time.Location, now func() time.Time) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		registry: registry,
		location: loc,
		now:      now,
	}
}

// Now reads the engine clock.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Evaluate returns the first badge, in registry order, whose rule holds and
// that is neither earned yet nor excluded by the available set. A nil
// available set allows every registered badge.
func (e *Engine) Evaluate(sessions []*entity.TrainingSession, earned, available map[string]bool) (string, bool) {
	h := &History{
		Sessions: sessions,
		Today:    timeline.StartOfDay(e.now(), e.location),
		Location: e.location,
	}
	for _, en := range e.registry.entries {
		if earned[en.id] {
			continue
		}
		if available != nil && !available[en.id] {
			continue
		}
		if en.rule(h) {
			return en.id, true
		}
	}
	return "", false
}

// SafeEvaluate is Evaluate that turns a panicking rule into "no badge".
func (e *Engine) SafeEvaluate(sessions []*entity.TrainingSession, earned, available map[string]bool) (id string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			id, ok = "", false
			err = fmt.Errorf("badge rule panicked: %v", r)
		}
	}()
	id, ok = e.Evaluate(sessions, earned, available)
	return id, ok, nil
}

// Earnable lists every registered badge whose rule currently holds, earned or
// not, in registry order.
func (e *Engine) Earnable(sessions []*entity.TrainingSession) []string {
	h := &History{
		Sessions: sessions,
		Today:    timeline.StartOfDay(e.now(), e.location),
		Location: e.location,
	}
	result := make([]string, 0)
	for _, en := range e.registry.entries {
		if en.rule(h) {
			result = append(result, en.id)
		}
	}
	return result
}
