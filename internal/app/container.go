package app

import (
	"context"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/database"
	dbpostgres "resume-match/internal/database/postgres"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/pkg/jwt"
	"resume-match/internal/repository"
	"resume-match/internal/usecase"
	"resume-match/internal/ws"

	"go.uber.org/zap"
)

// Container wires configuration, infrastructure, repositories, usecases
// and HTTP handlers. It owns every long-lived resource the server needs.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes *routes.Registry
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	resumeRepo := repository.NewPostgresResumeRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	matchUC := usecase.NewMatchUsecase(resumeRepo, jobRepo, redisCache, logger, cfg.Match)
	insightsUC := usecase.NewInsightsUsecase(resumeRepo, jobRepo, courseRepo, redisCache, logger)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(db, redisCache),
		handler.NewAuthHandler(authUC),
		handler.NewMatchHandler(matchUC),
		handler.NewInsightsHandler(insightsUC),
		ws.NewHandler(hub, logger),
		middleware.NewAuthMiddleware(jwtSvc),
	)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
