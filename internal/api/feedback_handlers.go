package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/service"
	"github.com/limbo/grindlog/pkg/httputil"
)

type SaveFeedbackRequest struct {
	Content string `json:"content"`
}

func (s *Server) GetFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get feedback error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := parseDate(pathParam(r, "date"))
	if err != nil {
		logger.Error("get feedback error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	fb, err := s.feedbackService.GetFeedback(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFeedbackNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no feedback for this date", nil)
			return
		}
		logger.Error("get feedback error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting feedback", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, fb)
	logger.Info("feedback provided")
}

func (s *Server) SaveFeedback(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save feedback error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := parseDate(pathParam(r, "date"))
	if err != nil {
		logger.Error("save feedback error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	var req SaveFeedbackRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("save feedback error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	fb, err := s.feedbackService.SaveFeedback(ctx, uid, &service.SaveFeedbackRequest{Date: date, Content: req.Content})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save feedback error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "feedback content is required", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save feedback error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save feedback error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving feedback", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, fb)
	logger.Info("feedback saved")
}
