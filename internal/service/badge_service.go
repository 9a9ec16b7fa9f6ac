package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/grindlog/internal/badges"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/pkg/entity"
	"github.com/limbo/grindlog/pkg/logging"
)

type BadgeService struct {
	sessions repository.SessionsRepositoryI
	repo     repository.BadgesRepositoryI
	engine   *badges.Engine

	// Catalog is read once and kept for the service lifetime
	mu      sync.RWMutex
	catalog []entity.Badge
}

func NewBadgeService(sessionsRepo repository.SessionsRepositoryI, badgesRepo repository.BadgesRepositoryI, engine *badges.Engine) *BadgeService {
	if sessionsRepo == nil || badgesRepo == nil {
		log.Fatal("provided nil repository to badge service")
	}
	if engine == nil {
		engine = badges.NewEngine(nil, nil, nil)
	}
	return &BadgeService{
		sessions: sessionsRepo,
		repo:     badgesRepo,
		engine:   engine,
	}
}

func (bs *BadgeService) loadCatalog(ctx context.Context) ([]entity.Badge, error) {
	bs.mu.RLock()
	catalog := bs.catalog
	bs.mu.RUnlock()
	if catalog != nil {
		return catalog, nil
	}
	catalog, err := bs.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) > 0 {
		bs.mu.Lock()
		bs.catalog = catalog
		bs.mu.Unlock()
	}
	return catalog, nil
}

func (bs *BadgeService) CheckAchievements(ctx context.Context, uid uuid.UUID) *entity.Badge {
	logger := logging.FromContext(ctx)
	catalog, err := bs.loadCatalog(ctx)
	if err != nil {
		logger.Error("badge check: loading catalog failed", slog.String("error", err.Error()))
		return nil
	}
	earnedRecords, err := bs.repo.ListEarned(ctx, uid)
	if err != nil {
		logger.Error("badge check: loading earned badges failed", slog.String("error", err.Error()))
		return nil
	}
	sessions, err := bs.sessions.ListByUser(ctx, uid)
	if err != nil {
		logger.Error("badge check: loading sessions failed", slog.String("error", err.Error()))
		return nil
	}
	earned := make(map[string]bool, len(earnedRecords))
	for _, r := range earnedRecords {
		earned[r.BadgeID] = true
	}
	available := make(map[string]bool, len(catalog))
	byID := make(map[string]entity.Badge, len(catalog))
	for _, b := range catalog {
		available[b.ID] = true
		byID[b.ID] = b
	}
	id, ok, err := bs.engine.SafeEvaluate(sessions, earned, available)
	if err != nil {
		logger.Error("badge check: evaluation failed", slog.String("error", err.Error()))
		return nil
	}
	if !ok {
		return nil
	}
	at := bs.engine.Now()
	if err = bs.repo.Award(ctx, uid, id, at); err != nil {
		logger.Error("badge check: award failed", slog.String("badge_id", id), slog.String("error", err.Error()))
		return nil
	}
	badge := byID[id]
	badge.EarnedByUser = true
	badge.EarnedAt = &at
	logger.Info("badge awarded", slog.String("badge_id", id))
	return &badge
}

func (bs *BadgeService) ListBadges(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error) {
	catalog, err := bs.loadCatalog(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earnedRecords, err := bs.repo.ListEarned(ctx, uid)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earned := make(map[string]entity.UserBadgeRecord, len(earnedRecords))
	for _, r := range earnedRecords {
		earned[r.BadgeID] = r
	}
	result := make([]entity.Badge, 0, len(catalog))
	for _, b := range catalog {
		if r, ok := earned[b.ID]; ok {
			at := r.EarnedAt
			b.EarnedByUser = true
			b.EarnedAt = &at
		}
		result = append(result, b)
	}
	return result, nil
}

// SeedCatalog stores the built-in catalog when the badges table is empty
func (bs *BadgeService) SeedCatalog(ctx context.Context) error {
	seeded, err := bs.repo.SeedCatalog(ctx, badges.DefaultCatalog())
	if err != nil {
		return errors.New("badges repository error: " + err.Error())
	}
	if seeded {
		bs.mu.Lock()
		bs.catalog = nil
		bs.mu.Unlock()
		logging.FromContext(ctx).Info("badge catalog seeded")
	}
	return nil
}
