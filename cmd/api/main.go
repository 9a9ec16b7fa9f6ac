// @title Grindlog API
// @description API for the training tracker "Grindlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/grindlog/internal/api"
	"github.com/limbo/grindlog/internal/badges"
	"github.com/limbo/grindlog/internal/ordering"
	"github.com/limbo/grindlog/internal/repository"
	"github.com/limbo/grindlog/internal/service"
	"github.com/limbo/grindlog/pkg/cleanup"
	"github.com/limbo/grindlog/pkg/config"
	jwtservice "github.com/limbo/grindlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	loc := cfg.GetLocation("APP_TIMEZONE", "Asia/Seoul")
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	sessionsRepo := repository.NewSessionsRepoWithConn(pool)

	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool))
	sessionsService := service.NewSessionsService(sessionsRepo,
		ordering.NewMatcher(cfg.GetStringOr("SESSION_GROUPING", ordering.GroupingNameMonth), loc))
	badgeService := service.NewBadgeService(sessionsRepo, repository.NewBadgesRepoWithConn(pool),
		badges.NewEngine(badges.DefaultRegistry(), loc, time.Now))
	slogansService := service.NewSlogansService(repository.NewSlogansRepoWithConn(pool))
	feedbackService := service.NewFeedbackService(repository.NewFeedbackRepoWithConn(pool))

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := badgeService.SeedCatalog(seedCtx)
	cancel()
	if err != nil {
		log.Fatal("seeding badge catalog error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:      userService,
		SessionsService:  sessionsService,
		BadgeService:     badgeService,
		SlogansService:   slogansService,
		FeedbackService:  feedbackService,
		DashboardService: service.NewDashboardService(sessionsService, slogansService, badgeService, feedbackService, loc, time.Now),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
