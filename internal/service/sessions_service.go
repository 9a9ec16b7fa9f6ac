package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
	"github.com/limbo/grindlog/pkg/logging"
)

// How far ahead repeating sessions are generated
const repeatHorizonMonths = 3

type SessionsService struct {
	repo    repository.SessionsRepositoryI
	matcher ordering.Matcher
}

func NewSessionsService(sessionsRepo repository.SessionsRepositoryI, matcher ordering.Matcher) *SessionsService {
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	if matcher == nil {
		matcher = ordering.NameMonth{}
	}
	return &SessionsService{
		repo:    sessionsRepo,
		matcher: matcher,
	}
}

// RepeatDates lists the dates of the generated siblings of a session starting
// at start. The start itself is not included.
func RepeatDates(start time.Time, repeat entity.RepeatType) []time.Time {
	var step int
	switch repeat {
	case entity.RepeatDaily:
		step = 1
	case entity.RepeatWeekly:
		step = 7
	default:
		return nil
	}
	end := start.AddDate(0, repeatHorizonMonths, 0)
	var dates []time.Time
	for cur := start; cur.Before(end); {
		cur = cur.AddDate(0, 0, step)
		dates = append(dates, cur)
	}
	return dates
}

func (ss *SessionsService) CreateSession(ctx context.Context, uid uuid.UUID, req *CreateSessionRequest) ([]*entity.TrainingSession, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	repeat := req.RepeatType
	if repeat == "" {
		repeat = entity.RepeatNone
	}
	existing, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		logging.FromContext(ctx).Warn("priority lookup failed, using default", slog.String("error", err.Error()))
		existing = nil
	}
	priority := ordering.NextPriority(existing, req.Name)
	date := timeline.CivilDate(req.Date)
	series := uuid.New()
	build := func(d time.Time, repeated bool) *entity.TrainingSession {
		return &entity.TrainingSession{
			UserID:     uid,
			SeriesID:   &series,
			Name:       req.Name,
			Content:    req.Content,
			Date:       &d,
			Duration:   req.Duration,
			Priority:   priority,
			RepeatType: repeat,
			IsRepeated: repeated,
		}
	}
	sessions := []*entity.TrainingSession{build(date, false)}
	for _, d := range RepeatDates(date, repeat) {
		sessions = append(sessions, build(d, true))
	}
	if err = ss.repo.Create(ctx, sessions); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return sessions, nil
}

func (ss *SessionsService) ListSessions(ctx context.Context, uid uuid.UUID) []*entity.TrainingSession {
	sessions, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		logging.FromContext(ctx).Error("listing sessions failed", slog.String("error", err.Error()))
		return []*entity.TrainingSession{}
	}
	return sessions
}

func (ss *SessionsService) ListSessionsByDate(ctx context.Context, uid uuid.UUID, date time.Time) []*entity.TrainingSession {
	return onDate(ss.ListSessions(ctx, uid), date)
}

func (ss *SessionsService) SetCompleted(ctx context.Context, uid, id uuid.UUID, completed bool) (*entity.TrainingSession, error) {
	err := ss.repo.SetCompleted(ctx, uid, id, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	session, err := ss.repo.GetByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *SessionsService) Reorder(ctx context.Context, uid uuid.UUID, req *ReorderRequest) (*ordering.Plan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	all, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	plan, err := ordering.PlanReorder(onDate(all, req.Date), req.From, req.To, all, ss.matcher)
	if err != nil {
		return nil, err
	}
	err = ss.repo.UpdatePriorities(ctx, uid, plan.Changes)
	if err != nil {
		logging.FromContext(ctx).Error("reorder batch failed",
			slog.String("error", err.Error()),
			"dragged_id", plan.DraggedID,
			"changes", len(plan.Changes),
		)
		if errors.Is(err, errorvalues.ErrBatchFailed) {
			return plan, err
		}
		return plan, errors.Join(errorvalues.ErrBatchFailed, err)
	}
	return plan, nil
}

func (ss *SessionsService) DeleteSession(ctx context.Context, uid, id uuid.UUID) ([]uuid.UUID, error) {
	target, err := ss.repo.GetByID(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	all, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		// Without history only the target itself can be removed
		logging.FromContext(ctx).Warn("group lookup failed, deleting single session", slog.String("error", err.Error()))
		all = nil
	}
	group := ordering.Group(target, all, ss.matcher)
	ids := make([]uuid.UUID, 0, len(group))
	for _, s := range group {
		ids = append(ids, s.ID)
	}
	if err = ss.repo.DeleteMany(ctx, uid, ids); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return ids, nil
}

// onDate keeps sessions scheduled on the civil date of day, preserving order
func onDate(sessions []*entity.TrainingSession, day time.Time) []*entity.TrainingSession {
	key := timeline.DayKey(timeline.CivilDate(day))
	result := make([]*entity.TrainingSession, 0)
	for _, s := range sessions {
		if s.Date != nil && timeline.DayKey(timeline.CivilDate(*s.Date)) == key {
			result = append(result, s)
		}
	}
	return result
}
