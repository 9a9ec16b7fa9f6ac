package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type RepeatType string

const (
	RepeatNone   RepeatType = "none"
	RepeatDaily  RepeatType = "daily"
	RepeatWeekly RepeatType = "weekly"
)

// TrainingSession is a single practice entry on the calendar. Date and CreatedAt
// are nil for rows coming from the legacy layout that never stored them.
type TrainingSession struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"uid"`
	SeriesID   *uuid.UUID `json:"series_id,omitempty"`
	Name       string     `json:"name"`
	Content    string     `json:"content"`
	Date       *time.Time `json:"date,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Duration   int        `json:"duration"`
	Completed  bool       `json:"completed"`
	Priority   int        `json:"priority"`
	RepeatType RepeatType `json:"repeat_type"`
	IsRepeated bool       `json:"is_repeated"`
}

type Badge struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Category     string     `json:"category"`
	Requirements string     `json:"requirements"`
	EarnedByUser bool       `json:"earned_by_user"`
	EarnedAt     *time.Time `json:"earned_at,omitempty"`
}

type UserBadgeRecord struct {
	UserID   uuid.UUID `json:"uid"`
	BadgeID  string    `json:"badge_id"`
	EarnedAt time.Time `json:"earned_at"`
}

type Slogan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Content   string    `json:"content"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

type Feedback struct {
	UserID    uuid.UUID `json:"uid"`
	Date      time.Time `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriorityChange is one row of a batched priority update.
type PriorityChange struct {
	ID       uuid.UUID `json:"id"`
	Priority int       `json:"priority"`
}

type DashboardStats struct {
	CompletionRate    int             `json:"completion_rate"`
	TotalHours        float64         `json:"total_hours"`
	ThisWeekHours     float64         `json:"this_week_hours"`
	StreakDays        int             `json:"streak_days"`
	TotalSessions     int             `json:"total_sessions"`
	CompletedSessions int             `json:"completed_sessions"`
	Weekly            []WeekdayStats  `json:"weekly"`
	Categories        []CategoryStats `json:"categories"`
}

type WeekdayStats struct {
	Day            string  `json:"day"`
	TotalHours     float64 `json:"total_hours"`
	CompletedHours float64 `json:"completed_hours"`
}

type CategoryStats struct {
	Name      string `json:"name"`
	Minutes   int    `json:"minutes"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}
