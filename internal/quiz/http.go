package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
	"github.com/triviaworks/trivia-api/internal/question"
	httperr "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// Store is the question read surface the selector draws from, implemented by
// repository.QuestionRepository.
type Store interface {
	ListOrdered(ctx context.Context) ([]repository.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]repository.Question, error)
}

// HTTPHandler serves POST /quizzes.
type HTTPHandler struct {
	store  Store
	intn   func(n int) int
	logger zerolog.Logger
}

func NewHTTPHandler(store Store, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		store:  store,
		intn:   rand.IntN,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

type quizRequest struct {
	PreviousQuestions []int32     `json:"previous_questions"`
	QuizCategory      categoryRef `json:"quiz_category"`
}

// categoryRef accepts the category id as a bare number, a numeric string, or
// the `{"id": ..., "type": ...}` object older clients send.
type categoryRef struct {
	ID int32
}

func (c *categoryRef) UnmarshalJSON(data []byte) error {
	var id int32
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		c.ID = int32(parsed)
		return nil
	}

	var obj struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	switch v := obj.ID.(type) {
	case float64:
		c.ID = int32(v)
		return nil
	case string:
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return err
		}
		c.ID = int32(parsed)
		return nil
	default:
		return errInvalidCategoryRef
	}
}

var errInvalidCategoryRef = errors.New("quiz_category must carry a numeric id")

// HandleQuizzes returns one random question the client has not seen yet, or a
// bare success payload once the chosen category is exhausted.
func (h *HTTPHandler) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "invalid JSON payload")
		return
	}

	var (
		rows []repository.Question
		err  error
	)
	if req.QuizCategory.ID == AllCategories {
		rows, err = h.store.ListOrdered(r.Context())
	} else {
		rows, err = h.store.ListByCategory(r.Context(), req.QuizCategory.ID)
	}
	if err != nil {
		h.logger.Error().Err(err).Int32("category", req.QuizCategory.ID).Msg("candidate fetch failed")
		httperr.RespondInternalError(w)
		return
	}

	next, ok := Select(question.FormatAll(rows), req.PreviousQuestions, h.intn)
	if !ok {
		// Quiz complete: success with no question payload.
		httperr.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": next,
	})
}
