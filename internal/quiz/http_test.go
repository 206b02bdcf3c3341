package quiz

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

	"github.com/triviaworks/trivia-api/internal/db/repository"
)

type stubQuizStore struct {
	all        []repository.Question
	byCategory map[int32][]repository.Question
}

func (s *stubQuizStore) ListOrdered(context.Context) ([]repository.Question, error) {
	return s.all, nil
}

func (s *stubQuizStore) ListByCategory(_ context.Context, categoryID int32) ([]repository.Question, error) {
	return s.byCategory[categoryID], nil
}

func newTestHandler(store Store) *HTTPHandler {
	h := NewHTTPHandler(store, zerolog.Nop())
	h.intn = func(int) int { return 0 }
	return h
}

func postQuiz(t *testing.T, h *HTTPHandler, payload string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.HandleQuizzes(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func questionRows(ids ...int32) []repository.Question {
	out := make([]repository.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, repository.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func TestHandleQuizzesAllCategories(t *testing.T) {
	h := newTestHandler(&stubQuizStore{all: questionRows(1, 2, 3)})

	rec, body := postQuiz(t, h, `{"previous_questions":[],"quiz_category":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	q := body["question"].(map[string]any)
	assert.Equal(t, float64(1), q["id"])
}

func TestHandleQuizzesFiltersCategory(t *testing.T) {
	h := newTestHandler(&stubQuizStore{
		all:        questionRows(1, 2, 3),
		byCategory: map[int32][]repository.Question{2: questionRows(8, 9)},
	})

	rec, body := postQuiz(t, h, `{"previous_questions":[8],"quiz_category":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	q := body["question"].(map[string]any)
	assert.Equal(t, float64(9), q["id"])
}

func TestHandleQuizzesSkipsPreviousQuestions(t *testing.T) {
	h := newTestHandler(&stubQuizStore{all: questionRows(1, 2, 3)})

	rec, body := postQuiz(t, h, `{"previous_questions":[1,2],"quiz_category":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	q := body["question"].(map[string]any)
	assert.Equal(t, float64(3), q["id"])
}

func TestHandleQuizzesCompletionOmitsQuestion(t *testing.T) {
	h := newTestHandler(&stubQuizStore{all: questionRows(1, 2)})

	rec, body := postQuiz(t, h, `{"previous_questions":[2,1],"quiz_category":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	_, hasQuestion := body["question"]
	assert.False(t, hasQuestion)
}

func TestHandleQuizzesUnknownCategoryCompletes(t *testing.T) {
	h := newTestHandler(&stubQuizStore{all: questionRows(1)})

	rec, body := postQuiz(t, h, `{"previous_questions":[],"quiz_category":7}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	_, hasQuestion := body["question"]
	assert.False(t, hasQuestion)
}

func TestHandleQuizzesCategoryObjectPayload(t *testing.T) {
	h := newTestHandler(&stubQuizStore{
		byCategory: map[int32][]repository.Question{3: questionRows(30)},
	})

	// Older clients send the category as {"id": "3", "type": "Geography"}.
	rec, body := postQuiz(t, h, `{"previous_questions":[],"quiz_category":{"id":"3","type":"Geography"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	q := body["question"].(map[string]any)
	assert.Equal(t, float64(30), q["id"])
}

func TestHandleQuizzesBadPayload(t *testing.T) {
	h := newTestHandler(&stubQuizStore{})

	rec, body := postQuiz(t, h, `{"quiz_category":"not-a-number"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestHandleQuizzesMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&stubQuizStore{})

	rec := httptest.NewRecorder()
	h.HandleQuizzes(rec, httptest.NewRequest(http.MethodGet, "/quizzes", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCategoryRefUnmarshalForms(t *testing.T) {
	cases := map[string]int32{
		`5`:                       5,
		`"6"`:                     6,
		`{"id":7}`:                7,
		`{"id":"8","type":"Art"}`: 8,
		`0`:                       0,
	}
	for raw, want := range cases {
		var ref categoryRef
		require.NoError(t, json.Unmarshal([]byte(raw), &ref), raw)
		assert.Equal(t, want, ref.ID, raw)
	}
}
