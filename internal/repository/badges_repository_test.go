package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/grindlog/internal/badges"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCatalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, name, description, image, category, requirements FROM badges ORDER BY position;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "description", "image", "category", "requirements"})
		for _, b := range badges.DefaultCatalog()[:3] {
			rows.AddRow(b.ID, b.Name, b.Description, b.Image, b.Category, b.Requirements)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.ListCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, badges.DefaultCatalog()[:3], result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.ListCatalog(ctx)
		assert.Error(t, err)
	})
}

func TestSeedCatalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	count := regexp.QuoteMeta(`SELECT COUNT(*) FROM badges;`)
	insert := regexp.QuoteMeta(`INSERT INTO badges (id, name, description, image, category, requirements, position)`)
	ctx := context.Background()
	catalog := badges.DefaultCatalog()[:2]
	t.Run("empty catalog gets seeded", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(count).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		for i, b := range catalog {
			mock.ExpectExec(insert).
				WithArgs(b.ID, b.Name, b.Description, b.Image, b.Category, b.Requirements, i).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()
		seeded, err := repo.SeedCatalog(ctx, catalog)
		assert.NoError(t, err)
		assert.True(t, seeded)
	})
	t.Run("existing catalog is kept", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(count).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))
		mock.ExpectRollback()
		seeded, err := repo.SeedCatalog(ctx, catalog)
		assert.NoError(t, err)
		assert.False(t, seeded)
	})
	t.Run("insert error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(count).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(insert).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.SeedCatalog(ctx, catalog)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEarnedAndAward(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	listQuery := regexp.QuoteMeta(`SELECT badge_id, earned_at FROM user_badges WHERE user_id = $1 ORDER BY earned_at;`)
	awardQuery := regexp.QuoteMeta(`INSERT INTO user_badges (user_id, badge_id, earned_at) VALUES ($1, $2, $3) ON CONFLICT (user_id, badge_id) DO NOTHING;`)
	ctx := context.Background()
	at := time.Now()
	t.Run("list earned", func(t *testing.T) {
		mock.ExpectQuery(listQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"badge_id", "earned_at"}).
				AddRow("first-session", at).
				AddRow("streak-3", at))
		result, err := repo.ListEarned(ctx, userID)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "streak-3", result[1].BadgeID)
		assert.Equal(t, userID, result[1].UserID)
	})
	t.Run("award", func(t *testing.T) {
		mock.ExpectExec(awardQuery).WithArgs(userID, "streak-3", at).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Award(ctx, userID, "streak-3", at))
	})
	t.Run("award twice is not an error", func(t *testing.T) {
		mock.ExpectExec(awardQuery).WithArgs(userID, "streak-3", at).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		assert.NoError(t, repo.Award(ctx, userID, "streak-3", at))
	})
	t.Run("unknown badge", func(t *testing.T) {
		mock.ExpectExec(awardQuery).WithArgs(userID, "nope", at).WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Award(ctx, userID, "nope", at), errorvalues.ErrBadgeNotFound)
	})
}
