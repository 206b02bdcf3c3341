package category

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
	"github.com/triviaworks/trivia-api/internal/question"
	httperr "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// QuestionLister provides per-category question reads, implemented by
// repository.QuestionRepository.
type QuestionLister interface {
	ListByCategory(ctx context.Context, categoryID int32) ([]repository.Question, error)
}

// HTTPHandlers provides the /categories endpoints.
type HTTPHandlers struct {
	svc       *Service
	questions QuestionLister
	logger    zerolog.Logger
}

func NewHTTPHandlers(svc *Service, questions QuestionLister, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:       svc,
		questions: questions,
		logger:    logger.With().Str("component", "category_http").Logger(),
	}
}

// HandleCategories serves GET /categories.
func (h *HTTPHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.svc.Map(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("category listing failed")
		httperr.RespondInternalError(w)
		return
	}
	if len(categories) == 0 {
		httperr.RespondNotFound(w, "")
		return
	}

	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// HandleCategoryQuestions serves GET /categories/{id}/questions.
func (h *HTTPHandlers) HandleCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperr.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		httperr.RespondBadRequest(w, "category id must be an integer")
		return
	}

	cat, err := h.svc.Get(r.Context(), int32(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.RespondNotFound(w, "")
			return
		}
		h.logger.Error().Err(err).Int64("category_id", id).Msg("category lookup failed")
		httperr.RespondInternalError(w)
		return
	}

	rows, err := h.questions.ListByCategory(r.Context(), cat.ID)
	if err != nil {
		h.logger.Error().Err(err).Int64("category_id", id).Msg("category questions failed")
		httperr.RespondInternalError(w)
		return
	}
	questions := question.FormatAll(rows)

	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": cat.Type,
	})
}
