package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/grindlog/pkg/httputil"
)

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	badges, err := s.badgeService.ListBadges(ctx, uid)
	if err != nil {
		logger.Error("get badges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting badges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"badges": badges,
	})
	logger.Info("badges provided")
}

// CheckBadges awards at most one new badge. A null badge means nothing new
func (s *Server) CheckBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	badge := s.badgeService.CheckAchievements(ctx, uid)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"badge": badge,
	})
	if badge != nil {
		logger.Info("new badge earned", slog.String("badge_id", badge.ID))
	}
}
