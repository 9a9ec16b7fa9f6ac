package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/grindlog/pkg/cleanup"
	"github.com/limbo/grindlog/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type SessionsRepositoryI interface {
	// Inserts sessions in one transaction, fills ID and CreatedAt of every item
	Create(ctx context.Context, sessions []*entity.TrainingSession) error
	GetByID(ctx context.Context, uid, id uuid.UUID) (*entity.TrainingSession, error)
	// Lists all sessions of the user ordered by priority desc, created_at desc.
	// Falls back to the legacy flat table when the primary query fails
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.TrainingSession, error)
	// Changes only the completed flag
	SetCompleted(ctx context.Context, uid, id uuid.UUID, completed bool) error
	// Writes all priorities in one transaction. Either every row is updated or none
	UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error
	// Deletes all listed sessions in one statement
	DeleteMany(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error
}

type BadgesRepositoryI interface {
	// Full badge catalog
	ListCatalog(ctx context.Context) ([]entity.Badge, error)
	// Seeds given badges if the catalog is empty. Reports whether anything was inserted
	SeedCatalog(ctx context.Context, badges []entity.Badge) (bool, error)
	// Badges earned by the user
	ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.UserBadgeRecord, error)
	// Records an award. Awarding an already earned badge is not an error
	Award(ctx context.Context, uid uuid.UUID, badgeID string, at time.Time) error
}

type SlogansRepositoryI interface {
	// Creates a slogan unless the user already has limit of them
	Create(ctx context.Context, slogan *entity.Slogan, limit int) error
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Slogan, error)
	UpdatePriorities(ctx context.Context, uid uuid.UUID, changes []entity.PriorityChange) error
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type FeedbackRepositoryI interface {
	// Inserts feedback or replaces content of the existing one for the same date
	Upsert(ctx context.Context, fb *entity.Feedback) error
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Feedback, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// NewPool opens a pgx pool shared by all repositories and registers its
// closing as a cleanup job.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}
