package category

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/db/repository"
)

// Store is the category persistence surface, implemented by
// repository.CategoryRepository.
type Store interface {
	List(ctx context.Context) ([]repository.Category, error)
	GetByID(ctx context.Context, id int32) (repository.Category, error)
}

// ListCache caches the full category list (implemented by the Redis Cache).
type ListCache interface {
	Get(ctx context.Context) ([]repository.Category, error)
	Set(ctx context.Context, categories []repository.Category) error
}

// Service serves category reads through the cache.
type Service struct {
	store  Store
	cache  ListCache
	logger zerolog.Logger
}

func NewService(store Store, cache ListCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "category_service").Logger(),
	}
}

// List returns all categories, read through the cache when one is configured.
// Cache failures degrade to a DB read rather than failing the request.
func (s *Service) List(ctx context.Context) ([]repository.Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// Map returns the id→type mapping used by listing payloads.
func (s *Service) Map(ctx context.Context) (map[int32]string, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int32]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m, nil
}

// Get fetches one category by id, repository.ErrNotFound when missing.
func (s *Service) Get(ctx context.Context, id int32) (repository.Category, error) {
	return s.store.GetByID(ctx, id)
}
