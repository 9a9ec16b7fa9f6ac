package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	upsertFeedbackQuery = `INSERT INTO feedback (user_id, feedback_date, content) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, feedback_date) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING created_at, updated_at;`
	getFeedbackQuery = `SELECT content, created_at, updated_at FROM feedback WHERE user_id = $1 AND feedback_date = $2;`
)

type FeedbackRepository struct {
	conn PgConnection
}

func NewFeedbackRepoWithConn(conn PgConnection) *FeedbackRepository {
	mustPing(conn, "feedbackRepo")
	return &FeedbackRepository{
		conn: conn,
	}
}

func (fr *FeedbackRepository) Upsert(ctx context.Context, fb *entity.Feedback) error {
	row := fr.conn.QueryRow(ctx, upsertFeedbackQuery, fb.UserID, fb.Date, fb.Content)
	if err := row.Scan(&fb.CreatedAt, &fb.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("saving feedback error: " + err.Error())
	}
	return nil
}

func (fr *FeedbackRepository) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Feedback, error) {
	fb := entity.Feedback{UserID: uid, Date: date}
	row := fr.conn.QueryRow(ctx, getFeedbackQuery, uid, date)
	if err := row.Scan(&fb.Content, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFeedbackNotFound
		}
		return nil, errors.New("getting feedback error: " + err.Error())
	}
	return &fb, nil
}
