package ordering

import (
	"time"

	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	GroupingNameMonth = "name_month"
	GroupingSeries    = "series"
)

// Matcher decides whether two sessions belong to the same reorder group.
type Matcher interface {
	SameGroup(a, b *entity.TrainingSession) bool
}

// NameMonth groups sessions with equal names created in the same month. When
// either creation time is unknown only the names are compared.
type NameMonth struct {
	Location *time.Location
}

func (m NameMonth) SameGroup(a, b *entity.TrainingSession) bool {
	if a == nil || b == nil || a.Name != b.Name {
		return false
	}
	if a.CreatedAt == nil || b.CreatedAt == nil {
		return true
	}
	return timeline.SameMonth(*a.CreatedAt, *b.CreatedAt, m.Location)
}

// Series groups sessions generated together at creation time. Rows without a
// series id (legacy data) are matched by NameMonth.
type Series struct {
	Fallback NameMonth
}

func (m Series) SameGroup(a, b *entity.TrainingSession) bool {
	if a == nil || b == nil {
		return false
	}
	if a.SeriesID != nil && b.SeriesID != nil {
		return *a.SeriesID == *b.SeriesID
	}
	return m.Fallback.SameGroup(a, b)
}

// NewMatcher returns the matcher for a grouping mode name, defaulting to
// NameMonth for unknown values.
func NewMatcher(mode string, loc *time.Location) Matcher {
	nm := NameMonth{Location: loc}
	if mode == GroupingSeries {
		return Series{Fallback: nm}
	}
	return nm
}

// Group returns target and every session in history that shares its group.
// Target is always first.
func Group(target *entity.TrainingSession, history []*entity.TrainingSession, m Matcher) []*entity.TrainingSession {
	group := []*entity.TrainingSession{target}
	for _, s := range history {
		if s == nil || s.ID == target.ID {
			continue
		}
		if m.SameGroup(target, s) {
			group = append(group, s)
		}
	}
	return group
}
