package category

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/triviaworks/trivia-api/internal/db/repository"
)

const (
	cacheKey        = "categories:all"
	defaultCacheTTL = 5 * time.Minute
)

// Cache is a Redis-backed copy of the category list. Categories are
// read-only through the API, so a short TTL is the only invalidation needed.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ListCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached list, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context) ([]repository.Category, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var out []repository.Category
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Set stores the list with the configured TTL.
func (c *Cache) Set(ctx context.Context, categories []repository.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, data, c.ttl).Err()
}
