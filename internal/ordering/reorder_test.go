package ordering_test

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func session(name string, priority int, created time.Time) *entity.TrainingSession {
	c := created
	d := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	return &entity.TrainingSession{
		ID:        uuid.New(),
		Name:      name,
		Priority:  priority,
		CreatedAt: &c,
		Date:      &d,
	}
}

// sortLikeQuery orders sessions the way the store lists them.
func sortLikeQuery(sessions []*entity.TrainingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Priority != sessions[j].Priority {
			return sessions[i].Priority > sessions[j].Priority
		}
		return sessions[i].CreatedAt.After(*sessions[j].CreatedAt)
	})
}

func apply(sessions []*entity.TrainingSession, changes []entity.PriorityChange) []*entity.TrainingSession {
	byID := make(map[uuid.UUID]int)
	for _, c := range changes {
		byID[c.ID] = c.Priority
	}
	res := make([]*entity.TrainingSession, 0, len(sessions))
	for _, s := range sessions {
		cp := *s
		if p, ok := byID[s.ID]; ok {
			cp.Priority = p
		}
		res = append(res, &cp)
	}
	return res
}

func ids(sessions []*entity.TrainingSession) []uuid.UUID {
	res := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, s.ID)
	}
	return res
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 2, []string{"b", "c", "a", "d"}},
		{"up", 3, 1, []string{"a", "d", "b", "c"}},
		{"same place", 1, 1, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []string{"a", "b", "c", "d"}
			got, err := ordering.Move(items, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"a", "b", "c", "d"}, items)
		})
	}
	t.Run("out of range", func(t *testing.T) {
		_, err := ordering.Move([]string{"a"}, 0, 1)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidReorder)
		_, err = ordering.Move([]string{"a"}, -1, 0)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidReorder)
	})
}

func TestPlanReorderMatchesQueryOrder(t *testing.T) {
	base := time.Date(2026, time.October, 3, 10, 0, 0, 0, kst)
	visible := []*entity.TrainingSession{
		session("Aim Training", 3, base),
		session("Replay Review", 2, base.Add(time.Hour)),
		session("Ranked Warmup", 1, base.Add(2*time.Hour)),
	}
	plan, err := ordering.PlanReorder(visible, 2, 0, visible, ordering.NameMonth{Location: kst})
	require.NoError(t, err)

	want := []uuid.UUID{visible[2].ID, visible[0].ID, visible[1].ID}
	assert.Equal(t, want, ids(plan.Order))
	assert.Equal(t, 3, plan.DraggedPriority)

	requeried := apply(visible, plan.Changes)
	sortLikeQuery(requeried)
	assert.Equal(t, want, ids(requeried))

	for i := 1; i < len(plan.Order); i++ {
		assert.Greater(t, plan.Order[i-1].Priority, plan.Order[i].Priority)
	}
}

func TestPlanReorderCascadesToGroup(t *testing.T) {
	base := time.Date(2026, time.October, 3, 10, 0, 0, 0, kst)
	aimToday := session("Aim Training", 1, base)
	aimTomorrow := session("Aim Training", 1, base.Add(24*time.Hour))
	aimNextWeek := session("Aim Training", 1, base.Add(7*24*time.Hour))
	aimLastMonth := session("Aim Training", 1, base.AddDate(0, -1, 0))
	review := session("Replay Review", 2, base)
	history := []*entity.TrainingSession{aimToday, aimTomorrow, aimNextWeek, aimLastMonth, review}

	visible := []*entity.TrainingSession{review, aimToday}
	plan, err := ordering.PlanReorder(visible, 1, 0, history, ordering.NameMonth{Location: kst})
	require.NoError(t, err)

	got := make(map[uuid.UUID]int)
	for _, c := range plan.Changes {
		got[c.ID] = c.Priority
	}
	for _, s := range []*entity.TrainingSession{aimToday, aimTomorrow, aimNextWeek} {
		assert.Equal(t, 2, got[s.ID])
	}
	_, touched := got[aimLastMonth.ID]
	assert.False(t, touched, "session from another month must keep its priority")
	assert.Equal(t, 1, got[review.ID])

	prev := make(map[uuid.UUID]int)
	for _, c := range plan.Previous {
		prev[c.ID] = c.Priority
	}
	assert.Equal(t, 1, prev[aimTomorrow.ID])
	assert.Equal(t, 2, prev[review.ID])
	assert.Len(t, plan.Previous, len(plan.Changes))
}

func TestPlanReorderInvalidIndexes(t *testing.T) {
	visible := []*entity.TrainingSession{session("a", 0, time.Now())}
	_, err := ordering.PlanReorder(visible, 0, 3, visible, nil)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidReorder)
}

func TestNameMonthMatcher(t *testing.T) {
	m := ordering.NameMonth{Location: kst}
	oct := time.Date(2026, time.October, 31, 23, 0, 0, 0, kst)
	// 2026-10-31 15:00 UTC is already November in KST
	novKST := time.Date(2026, time.October, 31, 15, 30, 0, 0, time.UTC)

	a := session("Aim Training", 0, oct)
	b := session("Aim Training", 0, novKST)
	assert.False(t, m.SameGroup(a, b))

	c := session("Aim Training", 0, oct.AddDate(1, 0, 0))
	assert.False(t, m.SameGroup(a, c), "same month of another year")

	d := session("Aim Training", 0, oct.Add(-time.Hour))
	assert.True(t, m.SameGroup(a, d))

	e := session("aim training", 0, oct)
	assert.False(t, m.SameGroup(a, e))

	legacy := &entity.TrainingSession{ID: uuid.New(), Name: "Aim Training"}
	assert.True(t, m.SameGroup(a, legacy), "missing createdAt degrades to name only")
}

func TestSeriesMatcher(t *testing.T) {
	m := ordering.NewMatcher(ordering.GroupingSeries, kst)
	created := time.Date(2026, time.October, 3, 10, 0, 0, 0, kst)
	series := uuid.New()
	a := session("Aim Training", 0, created)
	a.SeriesID = &series
	b := session("Aim Training", 0, created)
	b.SeriesID = &series
	other := uuid.New()
	c := session("Aim Training", 0, created)
	c.SeriesID = &other
	legacy := session("Aim Training", 0, created)

	assert.True(t, m.SameGroup(a, b))
	assert.False(t, m.SameGroup(a, c), "same name and month but another series")
	assert.True(t, m.SameGroup(a, legacy))

	assert.IsType(t, ordering.NameMonth{}, ordering.NewMatcher("whatever", kst))
}

func TestRenumberSlogans(t *testing.T) {
	now := time.Now()
	slogans := []*entity.Slogan{
		{ID: uuid.New(), Content: "one", Priority: 3, CreatedAt: now},
		{ID: uuid.New(), Content: "two", Priority: 2, CreatedAt: now},
		{ID: uuid.New(), Content: "three", Priority: 1, CreatedAt: now},
	}
	result, changes, err := ordering.RenumberSlogans(slogans, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "two", result[0].Content)
	assert.Equal(t, "one", result[2].Content)
	assert.Equal(t, []entity.PriorityChange{
		{ID: slogans[1].ID, Priority: 3},
		{ID: slogans[2].ID, Priority: 2},
		{ID: slogans[0].ID, Priority: 1},
	}, changes)
	assert.Equal(t, 3, slogans[0].Priority, "input must not be modified")
}

func TestNextPriority(t *testing.T) {
	existing := []*entity.TrainingSession{
		{Name: "Aim Training", Priority: 4},
		{Name: "Replay Review", Priority: -2},
	}
	assert.Equal(t, 4, ordering.NextPriority(existing, "Aim Training"))
	assert.Equal(t, -3, ordering.NextPriority(existing, "Scrim"))
	assert.Equal(t, 0, ordering.NextPriority(nil, "Scrim"))
}
