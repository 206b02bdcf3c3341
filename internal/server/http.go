package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/auth"
	"github.com/triviaworks/trivia-api/internal/category"
	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/question"
	"github.com/triviaworks/trivia-api/internal/quiz"
	httperr "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// Handlers groups the per-domain HTTP handlers wired into the server.
// AuthHandlers may be nil when no JWT secret is configured.
type Handlers struct {
	Questions  *question.HTTPHandlers
	Categories *category.HTTPHandlers
	Quiz       *quiz.HTTPHandler
	Auth       *auth.HTTPHandlers
}

// NewHTTPServer wires all routes, middleware and operational endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/categories", h.Categories.HandleCategories)
	mux.HandleFunc("/categories/{id}/questions", h.Categories.HandleCategoryQuestions)
	mux.HandleFunc("/questions", h.Questions.HandleQuestions)
	mux.HandleFunc("/questions/search", h.Questions.HandleSearch)
	mux.HandleFunc("/questions/{id}", h.Questions.HandleQuestionByID)
	mux.HandleFunc("/quizzes", h.Quiz.HandleQuizzes)

	if h.Auth != nil {
		mux.HandleFunc("/auth/register", h.Auth.HandleRegister)
		mux.HandleFunc("/auth/login", h.Auth.HandleLogin)
	}

	// Unknown paths get the JSON envelope, not the mux default.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperr.RespondNotFound(w, "")
	})

	handler := withRequestLog(logger, withCORS(cfg.CORS, mux))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
