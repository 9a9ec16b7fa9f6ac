package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/pkg/entity"
)

const (
	listCatalogQuery  = `SELECT id, name, description, image, category, requirements FROM badges ORDER BY position;`
	countCatalogQuery = `SELECT COUNT(*) FROM badges;`
	insertBadgeQuery  = `INSERT INTO badges (id, name, description, image, category, requirements, position) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	listEarnedQuery   = `SELECT badge_id, earned_at FROM user_badges WHERE user_id = $1 ORDER BY earned_at;`
	awardBadgeQuery   = `INSERT INTO user_badges (user_id, badge_id, earned_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, badge_id) DO NOTHING;`
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepoWithConn(conn PgConnection) *BadgesRepository {
	mustPing(conn, "badgesRepo")
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) ListCatalog(ctx context.Context) ([]entity.Badge, error) {
	rows, err := br.conn.Query(ctx, listCatalogQuery)
	if err != nil {
		return nil, errors.New("listing badges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Badge, 0, 17)
	for rows.Next() {
		var b entity.Badge
		if err = rows.Scan(&b.ID, &b.Name, &b.Description, &b.Image, &b.Category, &b.Requirements); err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected badge rows error: " + err.Error())
	}
	return result, nil
}

func (br *BadgesRepository) SeedCatalog(ctx context.Context, badges []entity.Badge) (bool, error) {
	tx, err := br.conn.Begin(ctx)
	if err != nil {
		return false, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var count int
	if err = tx.QueryRow(ctx, countCatalogQuery).Scan(&count); err != nil {
		return false, errors.New("counting badges error: " + err.Error())
	}
	if count > 0 {
		return false, nil
	}
	for i, b := range badges {
		_, err = tx.Exec(ctx, insertBadgeQuery, b.ID, b.Name, b.Description, b.Image, b.Category, b.Requirements, i)
		if err != nil {
			return false, errors.New("inserting badge error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return false, errors.New("committing badges error: " + err.Error())
	}
	return true, nil
}

func (br *BadgesRepository) ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.UserBadgeRecord, error) {
	rows, err := br.conn.Query(ctx, listEarnedQuery, uid)
	if err != nil {
		return nil, errors.New("listing earned badges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserBadgeRecord, 0)
	for rows.Next() {
		rec := entity.UserBadgeRecord{UserID: uid}
		if err = rows.Scan(&rec.BadgeID, &rec.EarnedAt); err != nil {
			return nil, errors.New("earned badge row parsing error: " + err.Error())
		}
		result = append(result, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected earned badge rows error: " + err.Error())
	}
	return result, nil
}

func (br *BadgesRepository) Award(ctx context.Context, uid uuid.UUID, badgeID string, at time.Time) error {
	_, err := br.conn.Exec(ctx, awardBadgeQuery, uid, badgeID, at)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation, either user or badge is unknown
			case "23503":
				return errorvalues.ErrBadgeNotFound
			}
		}
		return errors.New("awarding badge error: " + err.Error())
	}
	return nil
}
