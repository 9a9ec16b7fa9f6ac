package service_test

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateOwnerNotFound
	stateLimitReached
	stateBatchFailed
	stateUserExists
)

// Variables for tests
var (
	userID   = uuid.New()
	errDB    = errors.New("db error")
	seoul    = time.FixedZone("KST", 9*60*60)
	fixedNow = time.Date(2026, time.October, 15, 14, 0, 0, 0, seoul)
)

func clock() time.Time {
	return fixedNow
}

func civil(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

type usersRepoMock struct {
	state mockState
	user  *entity.User
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	switch m.state {
	case stateDBError:
		return uuid.UUID{}, errDB
	case stateUserExists:
		return uuid.UUID{}, errorvalues.ErrUserExists
	}
	cp := *user
	cp.ID = uuid.New()
	m.user = &cp
	return cp.ID, nil
}

func (m *usersRepoMock) FindByName(ctx context.Context, name string) (*entity.User, error) {
	switch {
	case m.state == stateDBError:
		return nil, errDB
	case m.user == nil || m.user.Name != name:
		return nil, errorvalues.ErrUserNotFound
	}
	cp := *m.user
	return &cp, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	switch {
	case m.state == stateDBError:
		return nil, errDB
	case m.user == nil || m.user.ID != uid:
		return nil, errorvalues.ErrUserNotFound
	}
	cp := *m.user
	return &cp, nil
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.user == nil || m.user.ID != uid {
		return errorvalues.ErrUserNotFound
	}
	m.user = nil
	return nil
}

// sessionsRepoMock keeps sessions in memory. readState drives lookups and
// writeState drives mutations so a test can fail one side only.
type sessionsRepoMock struct {
	readState  mockState
	writeState mockState
	stored     []*entity.TrainingSession
	written    []entity.PriorityChange
	deleted    []uuid.UUID
}

var _ repository.SessionsRepositoryI = (*sessionsRepoMock)(nil)

func (m *sessionsRepoMock) Create(ctx context.Context, sessions []*entity.TrainingSession) error {
	switch m.writeState {
	case stateDBError:
		return errDB
	case stateOwnerNotFound:
		return errorvalues.ErrOwnerNotFound
	}
	for _, s := range sessions {
		s.ID = uuid.New()
		created := fixedNow
		s.CreatedAt = &created
		m.stored = append(m.stored, s)
	}
	return nil
}

func (m *sessionsRepoMock) GetByID(ctx context.Context, uid, id uuid.UUID) (*entity.TrainingSession, error) {
	if m.readState == stateDBError {
		return nil, errDB
	}
	for _, s := range m.stored {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, errorvalues.ErrSessionNotFound
}

func (m *sessionsRepoMock) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.TrainingSession, error) {
	if m.readState == stateDBError {
		return nil, errors.Join(errDB, errDB)
	}
	result := slices.Clone(m.stored)
	repository.SortSessions(result)
	return result, nil
}

func (m *sessionsRepoMock) SetCompleted(ctx context.Context, uid, id uuid.UUID, completed bool) error {
	if m.writeState == stateDBError {
		return errDB
	}
	for _, s := range m.stored {
		if s.ID == id {
			s.Completed = completed
			return nil
		}
	}
	return errorvalues.ErrSessionNotFound
}

func (m *sessionsRepoMock) UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error {
	if m.writeState == stateBatchFailed {
		return errors.Join(errorvalues.ErrBatchFailed, errDB)
	}
	m.written = append(m.written, changes...)
	for _, c := range changes {
		for _, s := range m.stored {
			if s.ID == c.ID {
				s.Priority = c.Priority
			}
		}
	}
	return nil
}

func (m *sessionsRepoMock) DeleteMany(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error {
	if m.writeState == stateDBError {
		return errDB
	}
	m.deleted = append(m.deleted, ids...)
	kept := make([]*entity.TrainingSession, 0, len(m.stored))
	for _, s := range m.stored {
		if !slices.Contains(ids, s.ID) {
			kept = append(kept, s)
		}
	}
	m.stored = kept
	return nil
}

type badgesRepoMock struct {
	state        mockState
	awardState   mockState
	catalog      []entity.Badge
	earned       []entity.UserBadgeRecord
	catalogReads int
}

func (m *badgesRepoMock) ListCatalog(ctx context.Context) ([]entity.Badge, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	m.catalogReads++
	return slices.Clone(m.catalog), nil
}

func (m *badgesRepoMock) SeedCatalog(ctx context.Context, badges []entity.Badge) (bool, error) {
	if m.state == stateDBError {
		return false, errDB
	}
	if len(m.catalog) > 0 {
		return false, nil
	}
	m.catalog = slices.Clone(badges)
	return true, nil
}

func (m *badgesRepoMock) ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.UserBadgeRecord, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return slices.Clone(m.earned), nil
}

func (m *badgesRepoMock) Award(ctx context.Context, uid uuid.UUID, badgeID string, at time.Time) error {
	if m.awardState == stateDBError {
		return errDB
	}
	for _, r := range m.earned {
		if r.BadgeID == badgeID {
			return nil
		}
	}
	m.earned = append(m.earned, entity.UserBadgeRecord{UserID: uid, BadgeID: badgeID, EarnedAt: at})
	return nil
}

type slogansRepoMock struct {
	state   mockState
	stored  []*entity.Slogan
	written []entity.PriorityChange
}

func (m *slogansRepoMock) Create(ctx context.Context, slogan *entity.Slogan, limit int) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateOwnerNotFound:
		return errorvalues.ErrOwnerNotFound
	case stateLimitReached:
		return errorvalues.ErrSloganLimit
	}
	if len(m.stored) >= limit {
		return errorvalues.ErrSloganLimit
	}
	slogan.ID = uuid.New()
	slogan.CreatedAt = fixedNow
	m.stored = append(m.stored, slogan)
	return nil
}

func (m *slogansRepoMock) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Slogan, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	result := slices.Clone(m.stored)
	slices.SortStableFunc(result, func(a, b *entity.Slogan) int {
		return b.Priority - a.Priority
	})
	return result, nil
}

func (m *slogansRepoMock) UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error {
	if m.state == stateNotFound {
		return errorvalues.ErrSloganNotFound
	}
	m.written = append(m.written, changes...)
	return nil
}

func (m *slogansRepoMock) Delete(ctx context.Context, uid, id uuid.UUID) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateNotFound:
		return errorvalues.ErrSloganNotFound
	}
	return nil
}

type feedbackRepoMock struct {
	state  mockState
	stored map[string]*entity.Feedback
}

func (m *feedbackRepoMock) Upsert(ctx context.Context, fb *entity.Feedback) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateOwnerNotFound:
		return errorvalues.ErrOwnerNotFound
	}
	if m.stored == nil {
		m.stored = make(map[string]*entity.Feedback)
	}
	key := fb.Date.Format(time.DateOnly)
	if prev, ok := m.stored[key]; ok {
		fb.CreatedAt = prev.CreatedAt
	} else {
		fb.CreatedAt = fixedNow
	}
	fb.UpdatedAt = fixedNow
	cp := *fb
	m.stored[key] = &cp
	return nil
}

func (m *feedbackRepoMock) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Feedback, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	fb, ok := m.stored[date.Format(time.DateOnly)]
	if !ok {
		return nil, errorvalues.ErrFeedbackNotFound
	}
	cp := *fb
	return &cp, nil
}
