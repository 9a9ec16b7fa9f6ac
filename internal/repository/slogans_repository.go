package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	lockUserQuery         = `SELECT id FROM users WHERE id = $1 FOR UPDATE;`
	countSlogansQuery     = `SELECT COUNT(*) FROM slogans WHERE user_id = $1;`
	insertSloganQuery     = `INSERT INTO slogans (user_id, content, priority) VALUES ($1, $2, $3) RETURNING id, created_at;`
	listSlogansQuery      = `SELECT id, user_id, content, priority, created_at FROM slogans WHERE user_id = $1 ORDER BY priority DESC, created_at DESC;`
	updateSloganPrioQuery = `UPDATE slogans SET priority = $1 WHERE id = $2 AND user_id = $3;`
	deleteSloganQuery     = `DELETE FROM slogans WHERE id = $1 AND user_id = $2;`
)

type SlogansRepository struct {
	conn PgConnection
}

func NewSlogansRepoWithConn(conn PgConnection) *SlogansRepository {
	mustPing(conn, "slogansRepo")
	return &SlogansRepository{
		conn: conn,
	}
}

// Create locks the owner row so that two concurrent creations cannot both pass
// the limit check.
func (sr *SlogansRepository) Create(ctx context.Context, slogan *entity.Slogan, limit int) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var owner uuid.UUID
	if err = tx.QueryRow(ctx, lockUserQuery, slogan.UserID).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("locking slogan owner error: " + err.Error())
	}
	var count int
	if err = tx.QueryRow(ctx, countSlogansQuery, slogan.UserID).Scan(&count); err != nil {
		return errors.New("counting slogans error: " + err.Error())
	}
	if count >= limit {
		return errorvalues.ErrSloganLimit
	}
	row := tx.QueryRow(ctx, insertSloganQuery, slogan.UserID, slogan.Content, slogan.Priority)
	if err = row.Scan(&slogan.ID, &slogan.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating slogan error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing slogan error: " + err.Error())
	}
	return nil
}

func (sr *SlogansRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Slogan, error) {
	rows, err := sr.conn.Query(ctx, listSlogansQuery, uid)
	if err != nil {
		return nil, errors.New("listing slogans error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Slogan, 0, 3)
	for rows.Next() {
		s := entity.Slogan{}
		if err = rows.Scan(&s.ID, &s.UserID, &s.Content, &s.Priority, &s.CreatedAt); err != nil {
			return nil, errors.New("slogan row parsing error: " + err.Error())
		}
		result = append(result, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected slogan rows error: " + err.Error())
	}
	return result, nil
}

func (sr *SlogansRepository) UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error {
	return updatePriorities(ctx, sr.conn, updateSloganPrioQuery, uid, changes, errorvalues.ErrSloganNotFound)
}

func (sr *SlogansRepository) Delete(ctx context.Context, uid, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, deleteSloganQuery, id, uid)
	if err != nil {
		return errors.New("deleting slogan error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSloganNotFound
	}
	return nil
}
