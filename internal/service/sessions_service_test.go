package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/internal/service"
	"github.com/limbo/grindlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatDates(t *testing.T) {
	start := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	t.Run("none", func(t *testing.T) {
		assert.Empty(t, service.RepeatDates(start, entity.RepeatNone))
	})
	t.Run("daily includes the end date", func(t *testing.T) {
		dates := service.RepeatDates(start, entity.RepeatDaily)
		require.Len(t, dates, 92)
		assert.Equal(t, start.AddDate(0, 0, 1), dates[0])
		assert.Equal(t, time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC), dates[len(dates)-1])
	})
	t.Run("weekly stops on the first step past the end", func(t *testing.T) {
		dates := service.RepeatDates(start, entity.RepeatWeekly)
		require.Len(t, dates, 14)
		assert.Equal(t, time.Date(2026, time.October, 22, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2027, time.January, 21, 0, 0, 0, 0, time.UTC), dates[13])
	})
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, time.October, 15, 21, 0, 0, 0, seoul)
	t.Run("validation", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{}, nil)
		cases := []service.CreateSessionRequest{
			{Name: "   ", Date: date, Duration: 30},
			{Name: "Aim", Duration: 30},
			{Name: "Aim", Date: date, Duration: 0},
			{Name: "Aim", Date: date, Duration: 30, RepeatType: "monthly"},
		}
		for _, req := range cases {
			_, err := ss.CreateSession(ctx, userID, &req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		}
	})
	t.Run("first session gets zero priority", func(t *testing.T) {
		repo := &sessionsRepoMock{}
		ss := service.NewSessionsService(repo, nil)
		created, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Aim Training", Date: date, Duration: 30})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, 0, created[0].Priority)
		assert.Equal(t, entity.RepeatNone, created[0].RepeatType)
		assert.Equal(t, "2026-10-15", created[0].Date.Format(time.DateOnly))
		assert.NotEqual(t, uuid.Nil, created[0].ID)
	})
	t.Run("same name reuses priority, new name goes below", func(t *testing.T) {
		repo := &sessionsRepoMock{stored: []*entity.TrainingSession{
			{ID: uuid.New(), Name: "Aim Training", Priority: 4},
			{ID: uuid.New(), Name: "Replay Review", Priority: 2},
		}}
		ss := service.NewSessionsService(repo, nil)
		created, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Aim Training", Date: date, Duration: 30})
		require.NoError(t, err)
		assert.Equal(t, 4, created[0].Priority)
		created, err = ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Scrim", Date: date, Duration: 90})
		require.NoError(t, err)
		assert.Equal(t, 1, created[0].Priority)
	})
	t.Run("weekly repeat fans out with shared series", func(t *testing.T) {
		repo := &sessionsRepoMock{}
		ss := service.NewSessionsService(repo, nil)
		created, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{
			Name: "Aim Training", Date: date, Duration: 30, RepeatType: entity.RepeatWeekly,
		})
		require.NoError(t, err)
		require.Len(t, created, 15)
		assert.False(t, created[0].IsRepeated)
		for _, s := range created[1:] {
			assert.True(t, s.IsRepeated)
			assert.Equal(t, *created[0].SeriesID, *s.SeriesID)
			assert.Equal(t, created[0].Priority, s.Priority)
		}
		assert.Len(t, repo.stored, 15)
	})
	t.Run("priority lookup failure still creates", func(t *testing.T) {
		repo := &sessionsRepoMock{readState: stateDBError}
		ss := service.NewSessionsService(repo, nil)
		created, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Aim", Date: date, Duration: 30})
		require.NoError(t, err)
		assert.Equal(t, 0, created[0].Priority)
	})
	t.Run("unknown owner", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{writeState: stateOwnerNotFound}, nil)
		_, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Aim", Date: date, Duration: 30})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{writeState: stateDBError}, nil)
		_, err := ss.CreateSession(ctx, userID, &service.CreateSessionRequest{Name: "Aim", Date: date, Duration: 30})
		assert.Error(t, err)
	})
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	stored := []*entity.TrainingSession{
		{ID: uuid.New(), Name: "a", Date: civil(2026, time.October, 15), Priority: 1},
		{ID: uuid.New(), Name: "b", Date: civil(2026, time.October, 14), Priority: 3},
		{ID: uuid.New(), Name: "c", Date: civil(2026, time.October, 15), Priority: 2},
	}
	t.Run("ordered by priority", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{stored: stored}, nil)
		list := ss.ListSessions(ctx, userID)
		require.Len(t, list, 3)
		assert.Equal(t, "b", list[0].Name)
	})
	t.Run("by date", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{stored: stored}, nil)
		list := ss.ListSessionsByDate(ctx, userID, time.Date(2026, time.October, 15, 23, 0, 0, 0, seoul))
		require.Len(t, list, 2)
		assert.Equal(t, "c", list[0].Name)
		assert.Equal(t, "a", list[1].Name)
	})
	t.Run("storage failure gives empty list", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{readState: stateDBError}, nil)
		list := ss.ListSessions(ctx, userID)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestSetCompleted(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &sessionsRepoMock{stored: []*entity.TrainingSession{{ID: id, Name: "Aim", Duration: 30, Priority: 7}}}
	ss := service.NewSessionsService(repo, nil)
	t.Run("toggled", func(t *testing.T) {
		s, err := ss.SetCompleted(ctx, userID, id, true)
		require.NoError(t, err)
		assert.True(t, s.Completed)
		assert.Equal(t, 7, s.Priority)
		assert.Equal(t, 30, s.Duration)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := ss.SetCompleted(ctx, userID, uuid.New(), true)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.October, 1, 10, 0, 0, 0, seoul)
	build := func() []*entity.TrainingSession {
		return []*entity.TrainingSession{
			{ID: uuid.New(), Name: "Aim Training", Date: civil(2026, time.October, 15), CreatedAt: &created, Priority: 3},
			{ID: uuid.New(), Name: "Replay Review", Date: civil(2026, time.October, 15), CreatedAt: &created, Priority: 2},
			{ID: uuid.New(), Name: "Scrim", Date: civil(2026, time.October, 15), CreatedAt: &created, Priority: 1},
			{ID: uuid.New(), Name: "Scrim", Date: civil(2026, time.October, 16), CreatedAt: &created, Priority: 1},
		}
	}
	t.Run("bottom to top", func(t *testing.T) {
		stored := build()
		repo := &sessionsRepoMock{stored: stored}
		ss := service.NewSessionsService(repo, ordering.NameMonth{Location: seoul})
		plan, err := ss.Reorder(ctx, userID, &service.ReorderRequest{Date: day, From: 2, To: 0})
		require.NoError(t, err)
		assert.Equal(t, stored[2].ID, plan.DraggedID)
		assert.Equal(t, 3, plan.DraggedPriority)
		// dragged scrim, its sibling next day, then the two others
		assert.Equal(t, 3, stored[2].Priority)
		assert.Equal(t, 3, stored[3].Priority)
		assert.Equal(t, 2, stored[0].Priority)
		assert.Equal(t, 1, stored[1].Priority)
		list := ss.ListSessionsByDate(ctx, userID, day)
		assert.Equal(t, "Scrim", list[0].Name)
	})
	t.Run("out of range", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{stored: build()}, nil)
		_, err := ss.Reorder(ctx, userID, &service.ReorderRequest{Date: day, From: 0, To: 3})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidReorder)
	})
	t.Run("failed batch returns previous priorities", func(t *testing.T) {
		stored := build()
		repo := &sessionsRepoMock{stored: stored, writeState: stateBatchFailed}
		ss := service.NewSessionsService(repo, nil)
		plan, err := ss.Reorder(ctx, userID, &service.ReorderRequest{Date: day, From: 2, To: 0})
		assert.ErrorIs(t, err, errorvalues.ErrBatchFailed)
		require.NotNil(t, plan)
		require.NotEmpty(t, plan.Previous)
		assert.Equal(t, entity.PriorityChange{ID: stored[2].ID, Priority: 1}, plan.Previous[0])
		assert.Equal(t, 1, stored[2].Priority)
	})
	t.Run("list failure", func(t *testing.T) {
		ss := service.NewSessionsService(&sessionsRepoMock{readState: stateDBError}, nil)
		_, err := ss.Reorder(ctx, userID, &service.ReorderRequest{Date: day, From: 0, To: 0})
		assert.Error(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	october := time.Date(2026, time.October, 1, 10, 0, 0, 0, seoul)
	september := time.Date(2026, time.September, 20, 10, 0, 0, 0, seoul)
	stored := []*entity.TrainingSession{
		{ID: uuid.New(), Name: "Aim Training", CreatedAt: &october},
		{ID: uuid.New(), Name: "Aim Training", CreatedAt: &october},
		{ID: uuid.New(), Name: "Aim Training", CreatedAt: &september},
		{ID: uuid.New(), Name: "Scrim", CreatedAt: &october},
	}
	repo := &sessionsRepoMock{stored: stored}
	ss := service.NewSessionsService(repo, ordering.NameMonth{Location: seoul})
	t.Run("cascades to group", func(t *testing.T) {
		ids, err := ss.DeleteSession(ctx, userID, stored[1].ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{stored[0].ID, stored[1].ID}, ids)
		assert.Len(t, repo.stored, 2)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := ss.DeleteSession(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}
