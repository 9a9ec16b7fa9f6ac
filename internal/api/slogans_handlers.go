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

type CreateSloganRequest struct {
	Content string `json:"content"`
}

type ReorderSlogansRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (s *Server) GetSlogans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get slogans error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	slogans, err := s.slogansService.ListSlogans(ctx, uid)
	if err != nil {
		logger.Error("get slogans error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting slogans", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"slogans": slogans,
	})
	logger.Info("slogans provided")
}

func (s *Server) CreateSlogan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create slogan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateSloganRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("create slogan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	slogan, err := s.slogansService.CreateSlogan(ctx, uid, &service.CreateSloganRequest{Content: req.Content})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create slogan error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "slogan content is required", err)
		case errors.Is(err, errorvalues.ErrSloganLimit):
			logger.Error("create slogan error: limit reached")
			httputil.WriteErrorResponse(w, http.StatusConflict, "slogan limit reached", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create slogan error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create slogan error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating slogan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, slogan)
	logger.Info("slogan created")
}

func (s *Server) ReorderSlogans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reorder slogans error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReorderSlogansRequest
	if err = decodeBody(r.Body, &req); err != nil {
		logger.Error("reorder slogans error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	slogans, err := s.slogansService.ReorderSlogans(ctx, uid, &service.ReorderSlogansRequest{From: req.From, To: req.To})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidReorder):
			logger.Error("reorder slogans error: invalid positions")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reorder positions", err)
		case errors.Is(err, errorvalues.ErrSloganNotFound):
			logger.Error("reorder slogans error: slogan vanished")
			httputil.WriteErrorResponse(w, http.StatusConflict, "slogans changed, reload and retry", nil)
		default:
			logger.Error("reorder slogans error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reordering slogans", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"slogans": slogans,
	})
	logger.Info("slogans reordered")
}

func (s *Server) DeleteSlogan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("slogan deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		logger.Error("slogan deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid slogan id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.slogansService.DeleteSlogan(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSloganNotFound) {
			logger.Error("slogan deletion error: unexist slogan")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "slogan doesn't exist", nil)
			return
		}
		logger.Error("slogan deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting slogan", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("slogan deleted")
}
