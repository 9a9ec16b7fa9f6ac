package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateSessionRequest struct {
	Name       string            `json:"name" validate:"notblank,max=100"`
	Content    string            `json:"content" validate:"max=2000"`
	Date       time.Time         `json:"date" validate:"required"`
	Duration   int               `json:"duration" validate:"gt=0,max=1440"`
	RepeatType entity.RepeatType `json:"repeat_type" validate:"omitempty,oneof=none daily weekly"`
}

// ReorderRequest moves the item at From to To within the list shown for Date.
type ReorderRequest struct {
	Date time.Time `json:"date" validate:"required"`
	From int       `json:"from" validate:"min=0"`
	To   int       `json:"to" validate:"min=0"`
}

type CreateSloganRequest struct {
	Content string `json:"content" validate:"notblank,max=200"`
}

type ReorderSlogansRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

type SaveFeedbackRequest struct {
	Date    time.Time `json:"date" validate:"required"`
	Content string    `json:"content" validate:"notblank,max=5000"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type SessionsServiceI interface {
	// Creates a session and, for repeating ones, its siblings for the next three months
	CreateSession(ctx context.Context, uid uuid.UUID, req *CreateSessionRequest) ([]*entity.TrainingSession, error)
	// All sessions in display order. Never fails: storage errors give an empty list
	ListSessions(ctx context.Context, uid uuid.UUID) []*entity.TrainingSession
	// Sessions scheduled on the given civil date, in display order
	ListSessionsByDate(ctx context.Context, uid uuid.UUID, date time.Time) []*entity.TrainingSession
	SetCompleted(ctx context.Context, uid, id uuid.UUID, completed bool) (*entity.TrainingSession, error)
	// Applies a drag within one day's list. On a failed write the plan is still
	// returned so the caller can restore Previous priorities
	Reorder(ctx context.Context, uid uuid.UUID, req *ReorderRequest) (*ordering.Plan, error)
	// Deletes the session and every session of its group. Returns deleted ids
	DeleteSession(ctx context.Context, uid, id uuid.UUID) ([]uuid.UUID, error)
}

type BadgeServiceI interface {
	// Evaluates the rules and awards at most one new badge. Failures give nil
	CheckAchievements(ctx context.Context, uid uuid.UUID) *entity.Badge
	// Catalog with earned flags for the user
	ListBadges(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error)
	SeedCatalog(ctx context.Context) error
}

type SlogansServiceI interface {
	CreateSlogan(ctx context.Context, uid uuid.UUID, req *CreateSloganRequest) (*entity.Slogan, error)
	ListSlogans(ctx context.Context, uid uuid.UUID) ([]*entity.Slogan, error)
	ReorderSlogans(ctx context.Context, uid uuid.UUID, req *ReorderSlogansRequest) ([]*entity.Slogan, error)
	DeleteSlogan(ctx context.Context, uid, id uuid.UUID) error
}

type FeedbackServiceI interface {
	// Saves feedback for the date, replacing previous content
	SaveFeedback(ctx context.Context, uid uuid.UUID, req *SaveFeedbackRequest) (*entity.Feedback, error)
	GetFeedback(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Feedback, error)
}

type DashboardServiceI interface {
	GetDashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error)
}
