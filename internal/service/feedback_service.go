package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/internal/timeline"
	"github.com/limbo/grindlog/pkg/entity"
)

type FeedbackService struct {
	repo repository.FeedbackRepositoryI
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepositoryI) *FeedbackService {
	if feedbackRepo == nil {
		log.Fatal("provided nil feedbackRepo")
	}
	return &FeedbackService{
		repo: feedbackRepo,
	}
}

func (fs *FeedbackService) SaveFeedback(ctx context.Context, uid uuid.UUID, req *SaveFeedbackRequest) (*entity.Feedback, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	fb := &entity.Feedback{
		UserID:  uid,
		Date:    timeline.CivilDate(req.Date),
		Content: req.Content,
	}
	if err := fs.repo.Upsert(ctx, fb); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("feedback repository error: " + err.Error())
	}
	return fb, nil
}

func (fs *FeedbackService) GetFeedback(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Feedback, error) {
	fb, err := fs.repo.GetByDate(ctx, uid, timeline.CivilDate(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrFeedbackNotFound) {
			return nil, err
		}
		return nil, errors.New("feedback repository error: " + err.Error())
	}
	return fb, nil
}
