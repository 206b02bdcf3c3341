package question

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
)

// Store is the question persistence surface the service consumes,
// implemented by repository.QuestionRepository.
type Store interface {
	ListOrdered(ctx context.Context) ([]repository.Question, error)
	Search(ctx context.Context, term string) ([]repository.Question, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, params repository.InsertParams) (repository.Question, error)
	Delete(ctx context.Context, id int32) error
}

// ErrInvalidInput rejects inserts with missing or nonsensical fields.
var ErrInvalidInput = errors.New("invalid question input")

// Service implements question listing, search, insertion and deletion.
type Service struct {
	store  Store
	logger zerolog.Logger
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "question_service").Logger(),
	}
}

// ListPage returns one page of the id-ordered question list plus the total
// question count. An empty page is not an error here; the handler decides
// how to report it.
func (s *Service) ListPage(ctx context.Context, page int) ([]Question, int, error) {
	rows, err := s.store.ListOrdered(ctx)
	if err != nil {
		return nil, 0, err
	}
	all := FormatAll(rows)
	paged, err := Paginate(all, page)
	if err != nil {
		return nil, 0, err
	}
	return paged, len(all), nil
}

// SearchPage returns one page of the case-insensitive substring matches for
// term, plus the total number of matches.
func (s *Service) SearchPage(ctx context.Context, term string, page int) ([]Question, int, error) {
	rows, err := s.store.Search(ctx, term)
	if err != nil {
		return nil, 0, err
	}
	matches := FormatAll(rows)
	paged, err := Paginate(matches, page)
	if err != nil {
		return nil, 0, err
	}
	return paged, len(matches), nil
}

// CreateParams carries the fields of a question to insert.
type CreateParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

// Create validates and inserts a question, returning the stored row and the
// new total count.
func (s *Service) Create(ctx context.Context, params CreateParams) (Question, int, error) {
	if strings.TrimSpace(params.Question) == "" ||
		strings.TrimSpace(params.Answer) == "" ||
		params.Category < 1 || params.Difficulty < 1 {
		return Question{}, 0, ErrInvalidInput
	}

	row, err := s.store.Insert(ctx, repository.InsertParams{
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	})
	if err != nil {
		return Question{}, 0, err
	}
	s.logger.Info().Int32("question_id", row.ID).Int32("category", row.Category).Msg("question created")

	total, err := s.store.Count(ctx)
	if err != nil {
		return Question{}, 0, err
	}
	return Format(row), total, nil
}

// Delete removes a question and returns the remaining total count.
// Deleting an unknown id yields repository.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int32) (int, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return 0, err
	}
	s.logger.Info().Int32("question_id", id).Msg("question deleted")
	return s.store.Count(ctx)
}
