package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	sessionColumns = `id, user_id, series_id, name, content, session_date, created_at, duration, completed, priority, repeat_type, is_repeated`

	insertSessionQuery = `INSERT INTO training_sessions (user_id, series_id, name, content, session_date, duration, completed, priority, repeat_type, is_repeated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;`
	listSessionsQuery = `SELECT ` + sessionColumns + ` FROM training_sessions WHERE user_id = $1 ORDER BY priority DESC, created_at DESC;`
	getSessionQuery   = `SELECT ` + sessionColumns + ` FROM training_sessions WHERE id = $1 AND user_id = $2;`
	// The legacy layout kept every user's sessions in one flat table
	listLegacySessionsQuery = `SELECT id, title, description, session_date, duration, completed, created_at FROM legacy_training_sessions WHERE user_id = $1;`
	setCompletedQuery       = `UPDATE training_sessions SET completed = $1 WHERE id = $2 AND user_id = $3;`
	updatePriorityQuery     = `UPDATE training_sessions SET priority = $1 WHERE id = $2 AND user_id = $3;`
	deleteSessionsQuery     = `DELETE FROM training_sessions WHERE user_id = $1 AND id = ANY($2);`
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	mustPing(conn, "sessionsRepo")
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, sessions []*entity.TrainingSession) error {
	if len(sessions) == 0 {
		return nil
	}
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, s := range sessions {
		var (
			id        uuid.UUID
			createdAt time.Time
		)
		row := tx.QueryRow(ctx, insertSessionQuery,
			s.UserID, s.SeriesID, s.Name, s.Content, s.Date, s.Duration,
			s.Completed, s.Priority, string(s.RepeatType), s.IsRepeated,
		)
		if err = row.Scan(&id, &createdAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				// FK violation
				case "23503":
					return errorvalues.ErrOwnerNotFound
				}
			}
			return errors.New("creating session db error: " + err.Error())
		}
		s.ID = id
		s.CreatedAt = &createdAt
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing sessions error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, uid, id uuid.UUID) (*entity.TrainingSession, error) {
	row := sr.conn.QueryRow(ctx, getSessionQuery, id, uid)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return s, nil
}

func (sr *SessionsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.TrainingSession, error) {
	sessions, err := sr.listPrimary(ctx, uid)
	if err == nil {
		return sessions, nil
	}
	legacy, legacyErr := sr.listLegacy(ctx, uid)
	if legacyErr != nil {
		return nil, errors.Join(err, legacyErr)
	}
	return legacy, nil
}

func (sr *SessionsRepository) listPrimary(ctx context.Context, uid uuid.UUID) ([]*entity.TrainingSession, error) {
	rows, err := sr.conn.Query(ctx, listSessionsQuery, uid)
	if err != nil {
		return nil, errors.New("listing sessions error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.TrainingSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("unmarshalling session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning sessions: " + err.Error())
	}
	return sessions, nil
}

func (sr *SessionsRepository) listLegacy(ctx context.Context, uid uuid.UUID) ([]*entity.TrainingSession, error) {
	rows, err := sr.conn.Query(ctx, listLegacySessionsQuery, uid)
	if err != nil {
		return nil, errors.New("listing legacy sessions error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.TrainingSession, 0)
	for rows.Next() {
		var (
			s         = entity.TrainingSession{UserID: uid, RepeatType: entity.RepeatNone}
			date      *time.Time
			createdAt *time.Time
		)
		err = rows.Scan(&s.ID, &s.Name, &s.Content, &date, &s.Duration, &s.Completed, &createdAt)
		if err != nil {
			return nil, errors.New("unmarshalling legacy session error: " + err.Error())
		}
		s.Date, s.CreatedAt = date, createdAt
		sessions = append(sessions, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning legacy sessions: " + err.Error())
	}
	SortSessions(sessions)
	return sessions, nil
}

func (sr *SessionsRepository) SetCompleted(ctx context.Context, uid, id uuid.UUID, completed bool) error {
	ct, err := sr.conn.Exec(ctx, setCompletedQuery, completed, id, uid)
	if err != nil {
		return errors.New("updating session completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *SessionsRepository) UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error {
	return updatePriorities(ctx, sr.conn, updatePriorityQuery, uid, changes, errorvalues.ErrSessionNotFound)
}

func (sr *SessionsRepository) DeleteMany(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	ct, err := sr.conn.Exec(ctx, deleteSessionsQuery, uid, ids)
	if err != nil {
		return errors.New("deleting sessions error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

// SortSessions applies the listing order: priority desc, then created_at desc
// with unknown creation times last.
func SortSessions(sessions []*entity.TrainingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		switch {
		case a.CreatedAt == nil:
			return false
		case b.CreatedAt == nil:
			return true
		}
		return a.CreatedAt.After(*b.CreatedAt)
	})
}

// updatePriorities runs one UPDATE per change inside a transaction and rolls
// everything back if any row is missing.
func updatePriorities(ctx context.Context, conn PgConnection, query string, uid uuid.UUID, changes []entity.PriorityChange, notFound error) error {
	if len(changes) == 0 {
		return nil
	}
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, c := range changes {
		ct, err := tx.Exec(ctx, query, c.Priority, c.ID, uid)
		if err != nil {
			return errors.Join(errorvalues.ErrBatchFailed, err)
		}
		if ct.RowsAffected() == 0 {
			return errors.Join(errorvalues.ErrBatchFailed, notFound)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.Join(errorvalues.ErrBatchFailed, err)
	}
	return nil
}

func scanSession(row pgx.Row) (*entity.TrainingSession, error) {
	var (
		s          entity.TrainingSession
		seriesID   *uuid.UUID
		date       *time.Time
		createdAt  *time.Time
		repeatType string
	)
	err := row.Scan(&s.ID, &s.UserID, &seriesID, &s.Name, &s.Content, &date, &createdAt,
		&s.Duration, &s.Completed, &s.Priority, &repeatType, &s.IsRepeated)
	if err != nil {
		return nil, err
	}
	s.SeriesID, s.Date, s.CreatedAt = seriesID, date, createdAt
	s.RepeatType = entity.RepeatType(repeatType)
	return &s, nil
}
