package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/limbo/grindlog/docs"
	"github.com/limbo/grindlog/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	sessionsService  service.SessionsServiceI
	badgeService     service.BadgeServiceI
	slogansService   service.SlogansServiceI
	feedbackService  service.FeedbackServiceI
	dashboardService service.DashboardServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	SessionsService  service.SessionsServiceI
	BadgeService     service.BadgeServiceI
	SlogansService   service.SlogansServiceI
	FeedbackService  service.FeedbackServiceI
	DashboardService service.DashboardServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		sessionsService:  servicesOptions.SessionsService,
		badgeService:     servicesOptions.BadgeService,
		slogansService:   servicesOptions.SlogansService,
		feedbackService:  servicesOptions.FeedbackService,
		dashboardService: servicesOptions.DashboardService,
		jwtService:       servicesOptions.JwtService,
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/sessions", s.GetSessions)
			r.Post("/sessions", s.CreateSession)
			r.Post("/sessions/reorder", s.ReorderSessions)
			r.Patch("/sessions/{id}/completed", s.SetSessionCompleted)
			r.Delete("/sessions/{id}", s.DeleteSession)

			r.Get("/badges", s.GetBadges)
			r.Post("/badges/check", s.CheckBadges)

			r.Get("/slogans", s.GetSlogans)
			r.Post("/slogans", s.CreateSlogan)
			r.Post("/slogans/reorder", s.ReorderSlogans)
			r.Delete("/slogans/{id}", s.DeleteSlogan)

			r.Get("/feedback/{date}", s.GetFeedback)
			r.Put("/feedback/{date}", s.SaveFeedback)

			r.Get("/dashboard", s.GetDashboard)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
