package question

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
	httperr "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// CategoryLister provides the id→type map embedded in question listings,
// implemented by category.Service.
type CategoryLister interface {
	Map(ctx context.Context) (map[int32]string, error)
}

// AuthorizeFunc gates mutating requests. A nil func leaves them open.
type AuthorizeFunc func(r *http.Request) error

// HTTPHandlers provides the /questions endpoints.
type HTTPHandlers struct {
	svc        *Service
	categories CategoryLister
	authorize  AuthorizeFunc
	logger     zerolog.Logger
}

func NewHTTPHandlers(svc *Service, categories CategoryLister, authorize AuthorizeFunc, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:        svc,
		categories: categories,
		authorize:  authorize,
		logger:     logger.With().Str("component", "question_http").Logger(),
	}
}

type listResponse struct {
	Success         bool             `json:"success"`
	Questions       []Question       `json:"questions"`
	Categories      map[int32]string `json:"categories"`
	CurrentCategory any              `json:"current_category"`
	TotalQuestions  int              `json:"total_questions"`
}

type searchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory any        `json:"current_category"`
}

type mutationRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
	SearchTerm string `json:"searchTerm"`
}

// HandleQuestions serves GET /questions (paginated listing) and
// POST /questions, which inserts a question or, when the body carries a
// searchTerm, searches instead.
func (h *HTTPHandlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		var req mutationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.RespondBadRequest(w, "invalid JSON payload")
			return
		}
		if req.SearchTerm != "" {
			h.search(w, r, req.SearchTerm)
			return
		}
		h.insert(w, r, req)
	default:
		httperr.RespondMethodNotAllowed(w)
	}
}

// HandleSearch serves POST /questions/search.
func (h *HTTPHandlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperr.RespondMethodNotAllowed(w)
		return
	}
	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.RespondBadRequest(w, "invalid JSON payload")
		return
	}
	h.search(w, r, req.SearchTerm)
}

// HandleQuestionByID serves DELETE /questions/{id}.
func (h *HTTPHandlers) HandleQuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperr.RespondMethodNotAllowed(w)
		return
	}
	if h.authorize != nil {
		if err := h.authorize(r); err != nil {
			httperr.RespondUnauthorized(w, err.Error())
			return
		}
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		httperr.RespondBadRequest(w, "question id must be an integer")
		return
	}

	total, err := h.svc.Delete(r.Context(), int32(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.RespondNotFound(w, "")
			return
		}
		h.logger.Error().Err(err).Int64("question_id", id).Msg("delete failed")
		httperr.RespondUnprocessable(w, "")
		return
	}

	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"deleted":         id,
		"total_questions": total,
	})
}

func (h *HTTPHandlers) list(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	questions, total, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, err, "list failed")
		return
	}
	if len(questions) == 0 {
		httperr.RespondNotFound(w, "")
		return
	}

	categories, err := h.categories.Map(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "category map failed")
		return
	}

	httperr.RespondJSON(w, http.StatusOK, listResponse{
		Success:         true,
		Questions:       questions,
		Categories:      categories,
		CurrentCategory: nil,
		TotalQuestions:  total,
	})
}

func (h *HTTPHandlers) search(w http.ResponseWriter, r *http.Request, term string) {
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	questions, total, err := h.svc.SearchPage(r.Context(), term, page)
	if err != nil {
		h.respondServiceError(w, err, "search failed")
		return
	}

	// An empty match set is a valid result, not a 404.
	httperr.RespondJSON(w, http.StatusOK, searchResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: nil,
	})
}

func (h *HTTPHandlers) insert(w http.ResponseWriter, r *http.Request, req mutationRequest) {
	if h.authorize != nil {
		if err := h.authorize(r); err != nil {
			httperr.RespondUnauthorized(w, err.Error())
			return
		}
	}

	created, total, err := h.svc.Create(r.Context(), CreateParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, repository.ErrConstraint):
			httperr.RespondUnprocessable(w, "")
		default:
			h.respondServiceError(w, err, "insert failed")
		}
		return
	}

	httperr.RespondJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"created":         created.ID,
		"question":        created,
		"total_questions": total,
	})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, ErrInvalidPage) {
		httperr.RespondBadRequest(w, ErrInvalidPage.Error())
		return
	}
	h.logger.Error().Err(err).Msg(msg)
	httperr.RespondInternalError(w)
}

// pageParam parses ?page=N, defaulting to 1. A non-integer or sub-1 value is
// rejected outright rather than falling back to the default.
func pageParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		httperr.RespondBadRequest(w, ErrInvalidPage.Error())
		return 0, false
	}
	return page, true
}
