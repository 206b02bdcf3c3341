package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviaworks/trivia-api/internal/category"
	"github.com/triviaworks/trivia-api/internal/config"
	"github.com/triviaworks/trivia-api/internal/db/repository"
	"github.com/triviaworks/trivia-api/internal/question"
	"github.com/triviaworks/trivia-api/internal/quiz"
)

type fixtureStore struct {
	questions  []repository.Question
	categories []repository.Category
}

func (s *fixtureStore) ListOrdered(context.Context) ([]repository.Question, error) {
	return s.questions, nil
}

func (s *fixtureStore) ListByCategory(_ context.Context, categoryID int32) ([]repository.Question, error) {
	var out []repository.Question
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fixtureStore) Search(_ context.Context, term string) ([]repository.Question, error) {
	return s.questions, nil
}

func (s *fixtureStore) Count(context.Context) (int, error) {
	return len(s.questions), nil
}

func (s *fixtureStore) Insert(_ context.Context, params repository.InsertParams) (repository.Question, error) {
	q := repository.Question{ID: int32(len(s.questions) + 1), Question: params.Question, Answer: params.Answer, Category: params.Category, Difficulty: params.Difficulty}
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *fixtureStore) Delete(_ context.Context, id int32) error {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fixtureStore) List(context.Context) ([]repository.Category, error) {
	return s.categories, nil
}

func (s *fixtureStore) GetByID(_ context.Context, id int32) (repository.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return repository.Category{}, repository.ErrNotFound
}

func seededStore() *fixtureStore {
	return &fixtureStore{
		questions: []repository.Question{
			{ID: 1, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		},
		categories: []repository.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
	}
}

func newTestServerWith(t *testing.T, store *fixtureStore, origins []string) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	categorySvc := category.NewService(store, nil, logger)
	questionSvc := question.NewService(store, logger)

	cfg := &config.App{}
	cfg.CORS = config.CORS{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         3600,
	}

	srv := NewHTTPServer(cfg, logger, nil, nil, Handlers{
		Questions:  question.NewHTTPHandlers(questionSvc, categorySvc, nil, logger),
		Categories: category.NewHTTPHandlers(categorySvc, store, logger),
		Quiz:       quiz.NewHTTPHandler(store, logger),
	})
	return srv.Handler
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerWith(t, seededStore(), []string{"*"})
}

func TestUnknownPathReturnsJSONEnvelope(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
}

func TestCORSHeadersApplied(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSEchoesAllowedOrigin(t *testing.T) {
	handler := newTestServerWith(t, seededStore(), []string{"https://play.example.com", "https://admin.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// A single origin must be echoed back, never the joined allow-list.
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORSOmitsHeaderForUnknownOrigin(t *testing.T) {
	handler := newTestServerWith(t, seededStore(), []string{"https://play.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/questions", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRequestIDHeaderSet(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestEndToEndInsertThenList(t *testing.T) {
	// Fill page 1 exactly, so the inserted question must land on page 2.
	store := seededStore()
	for i := int32(2); i <= 10; i++ {
		store.questions = append(store.questions, repository.Question{
			ID: i, Question: "filler", Answer: "filler", Category: 1, Difficulty: 1,
		})
	}
	handler := newTestServerWith(t, store, []string{"*"})

	payload := `{"question":"What is the largest lake in Africa?","answer":"Lake Victoria","category":1,"difficulty":2}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(11), created["total_questions"])

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions?page=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listing map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, float64(11), listing["total_questions"])

	questions := listing["questions"].([]any)
	require.Len(t, questions, 1)
	got := questions[0].(map[string]any)
	assert.Equal(t, created["created"], got["id"])
	assert.Equal(t, "What is the largest lake in Africa?", got["question"])
}
