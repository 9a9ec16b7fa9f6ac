package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/stats"
	"github.com/limbo/grindlog/pkg/entity"
	"golang.org/x/sync/errgroup"
)

// Dashboard is everything the home screen shows for one user
type Dashboard struct {
	Today    string                   `json:"today"`
	Sessions []*entity.TrainingSession `json:"sessions"`
	Slogans  []*entity.Slogan          `json:"slogans"`
	Badges   []entity.Badge            `json:"badges"`
	Feedback *entity.Feedback          `json:"feedback,omitempty"`
	Stats    entity.DashboardStats     `json:"stats"`
}

type DashboardService struct {
	sessions SessionsServiceI
	slogans  SlogansServiceI
	badges   BadgeServiceI
	feedback FeedbackServiceI
	location *time.Location
	now      func() time.Time
}

func NewDashboardService(sessions SessionsServiceI, slogans SlogansServiceI, badges BadgeServiceI, feedback FeedbackServiceI, loc *time.Location, now func() time.Time) *DashboardService {
	if sessions == nil || slogans == nil || badges == nil || feedback == nil {
		log.Fatal("provided nil service to dashboard service")
	}
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		sessions: sessions,
		slogans:  slogans,
		badges:   badges,
		feedback: feedback,
		location: loc,
		now:      now,
	}
}

func (ds *DashboardService) GetDashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error) {
	now := ds.now().In(ds.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := &Dashboard{Today: today.Format(time.DateOnly)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Sessions = ds.sessions.ListSessions(gctx, uid)
		return nil
	})
	g.Go(func() error {
		slogans, err := ds.slogans.ListSlogans(gctx, uid)
		d.Slogans = slogans
		return err
	})
	g.Go(func() error {
		badges, err := ds.badges.ListBadges(gctx, uid)
		d.Badges = badges
		return err
	})
	g.Go(func() error {
		fb, err := ds.feedback.GetFeedback(gctx, uid, today)
		if errors.Is(err, errorvalues.ErrFeedbackNotFound) {
			return nil
		}
		d.Feedback = fb
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	d.Stats = stats.Compute(d.Sessions, now, ds.location)
	return d, nil
}
