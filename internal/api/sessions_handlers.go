package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/grindlog/internal/error_values"
	"github.com/limbo/grindlog/internal/service"
	"github.com/limbo/grindlog/pkg/entity"
	"github.com/limbo/grindlog/pkg/httputil"
)

type CreateSessionRequest struct {
	Name       string `json:"name"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Duration   int    `json:"duration"`
	RepeatType string `json:"repeat_type"`
}

type ReorderSessionsRequest struct {
	Date string `json:"date"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

type ReorderSessionsResponse struct {
	DraggedID       uuid.UUID                 `json:"dragged_id"`
	DraggedPriority int                       `json:"dragged_priority"`
	Sessions        []*entity.TrainingSession `json:"sessions"`
	Changes         []entity.PriorityChange   `json:"changes"`
}

// ReorderFailedResponse carries the priorities a client should restore
type ReorderFailedResponse struct {
	httputil.ErrorResponse
	Previous []entity.PriorityChange `json:"previous"`
}

func (s *Server) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get sessions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var sessions []*entity.TrainingSession
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := parseDate(dateParam)
		if err != nil {
			logger.Error("get sessions error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		sessions = s.sessionsService.ListSessionsByDate(ctx, uid, date)
	} else {
		sessions = s.sessionsService.ListSessions(ctx, uid)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"sessions": sessions,
	})
	logger.Info("sessions provided", slog.Int("count", len(sessions)))
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateSessionRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("create session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		logger.Error("create session error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	sessions, err := s.sessionsService.CreateSession(ctx, uid, &service.CreateSessionRequest{
		Name:       req.Name,
		Content:    req.Content,
		Date:       date,
		Duration:   req.Duration,
		RepeatType: entity.RepeatType(req.RepeatType),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create session error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"sessions": sessions,
	})
	logger.Info("session created", slog.Int("count", len(sessions)))
}

func (s *Server) SetSessionCompleted(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("complete session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	var req SetCompletedRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("complete session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.sessionsService.SetCompleted(ctx, uid, id, req.Completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			logger.Error("complete session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
			return
		}
		logger.Error("complete session error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating session", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("session completion changed")
}

func (s *Server) ReorderSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reorder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReorderSessionsRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("reorder error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		logger.Error("reorder error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	plan, err := s.sessionsService.Reorder(ctx, uid, &service.ReorderRequest{
		Date: date,
		From: req.From,
		To:   req.To,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidReorder):
			logger.Error("reorder error: invalid positions")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reorder positions", err)
		case errors.Is(err, errorvalues.ErrBatchFailed) && plan != nil:
			logger.Error("reorder error: batch failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusConflict, ReorderFailedResponse{
				ErrorResponse: httputil.ErrorResponse{
					Code:    http.StatusConflict,
					Message: "reorder was not saved, restore previous priorities",
				},
				Previous: plan.Previous,
			})
		default:
			logger.Error("reorder error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reordering", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ReorderSessionsResponse{
		DraggedID:       plan.DraggedID,
		DraggedPriority: plan.DraggedPriority,
		Sessions:        plan.Order,
		Changes:         plan.Changes,
	})
	logger.Info("sessions reordered", slog.Int("changes", len(plan.Changes)))
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("session deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("session deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	deleted, err := s.sessionsService.DeleteSession(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			logger.Error("session deletion error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "session doesn't exist", nil)
			return
		}
		logger.Error("session deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting session", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"deleted": deleted,
	})
	logger.Info("sessions deleted", slog.Int("count", len(deleted)))
}
