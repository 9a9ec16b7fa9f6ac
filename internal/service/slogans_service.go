package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/pkg/entity"
)

// MaxSlogans is how many slogans one user may keep
const MaxSlogans = 3

type SlogansService struct {
	repo repository.SlogansRepositoryI
}

func NewSlogansService(slogansRepo repository.SlogansRepositoryI) *SlogansService {
	if slogansRepo == nil {
		log.Fatal("provided nil slogansRepo")
	}
	return &SlogansService{
		repo: slogansRepo,
	}
}

func (ss *SlogansService) CreateSlogan(ctx context.Context, uid uuid.UUID, req *CreateSloganRequest) (*entity.Slogan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	existing, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("slogans repository error: " + err.Error())
	}
	if len(existing) >= MaxSlogans {
		return nil, errorvalues.ErrSloganLimit
	}
	// New slogans go to the bottom of the list
	priority := 0
	if len(existing) > 0 {
		priority = existing[0].Priority
		for _, s := range existing[1:] {
			priority = min(priority, s.Priority)
		}
		priority--
	}
	slogan := &entity.Slogan{
		UserID:   uid,
		Content:  req.Content,
		Priority: priority,
	}
	err = ss.repo.Create(ctx, slogan, MaxSlogans)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSloganLimit):
			return nil, errorvalues.ErrSloganLimit
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("slogans repository error: " + err.Error())
	}
	return slogan, nil
}

func (ss *SlogansService) ListSlogans(ctx context.Context, uid uuid.UUID) ([]*entity.Slogan, error) {
	slogans, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("slogans repository error: " + err.Error())
	}
	return slogans, nil
}

func (ss *SlogansService) ReorderSlogans(ctx context.Context, uid uuid.UUID, req *ReorderSlogansRequest) ([]*entity.Slogan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	slogans, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("slogans repository error: " + err.Error())
	}
	ordered, changes, err := ordering.RenumberSlogans(slogans, req.From, req.To)
	if err != nil {
		return nil, err
	}
	err = ss.repo.UpdatePriorities(ctx, uid, changes)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSloganNotFound) {
			return nil, errorvalues.ErrSloganNotFound
		}
		return nil, errors.New("slogans repository error: " + err.Error())
	}
	return ordered, nil
}

func (ss *SlogansService) DeleteSlogan(ctx context.Context, uid, id uuid.UUID) error {
	err := ss.repo.Delete(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSloganNotFound) {
			return err
		}
		return errors.New("slogans repository error: " + err.Error())
	}
	return nil
}
