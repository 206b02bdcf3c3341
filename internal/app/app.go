package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/auth"
	"github.com/triviaworks/trivia-api/internal/category"
	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/db/repository"
	"github.com/triviaworks/trivia-api/internal/logging"
	"github.com/triviaworks/trivia-api/internal/question"
	"github.com/triviaworks/trivia-api/internal/quiz"
	"github.com/triviaworks/trivia-api/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Msg("starting application bootstrap")

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	categorySvc := category.NewService(categoryRepo, category.NewCache(redisClient, cfg.Redis.CategoryTTL), logger)
	questionSvc := question.NewService(questionRepo, logger)

	var (
		authHandlers *auth.HTTPHandlers
		authorize    question.AuthorizeFunc
	)
	if cfg.Auth.Enabled() {
		tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, cfg.Name)
		authSvc := auth.NewService(repository.NewUserRepository(pool), tokens, logger)
		authHandlers = auth.NewHTTPHandlers(authSvc, logger)
		authorize = auth.Authorizer(authSvc, logger)
		logger.Info().Msg("auth enabled; question mutations require a bearer token")
	} else {
		logger.Warn().Msg("JWT_SECRET not set; question mutations are unauthenticated")
	}

	handlers := server.Handlers{
		Questions:  question.NewHTTPHandlers(questionSvc, categorySvc, authorize, logger),
		Categories: category.NewHTTPHandlers(categorySvc, questionRepo, logger),
		Quiz:       quiz.NewHTTPHandler(questionRepo, logger),
		Auth:       authHandlers,
	}

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
