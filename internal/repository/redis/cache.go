package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
)

const (
	suggestionCacheTTL = 5 * time.Minute
	rateLimitWindowTTL = 1 * time.Minute
)

// Cache wraps the shared Redis client for the search paths: short-lived
// suggestion responses and fixed-window request counters.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCache(client *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

func suggestionKey(query, typ string, limit int) string {
	return fmt.Sprintf("suggest:%s:%d:%s", typ, limit, strings.ToLower(query))
}

func rateLimitKey(clientKey string) string {
	return fmt.Sprintf("ratelimit:search:%s", clientKey)
}

// GetSuggestions returns the cached suggestion list for the normalized key,
// or (nil, false) on a miss or any Redis failure. Callers recompute on miss.
func (c *Cache) GetSuggestions(ctx context.Context, query, typ string, limit int) ([]domain.Suggestion, bool) {
	data, err := c.client.Get(ctx, suggestionKey(query, typ, limit)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("suggestion cache read failed", zap.Error(err))
		return nil, false
	}

	var suggestions []domain.Suggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		c.logger.Warn("suggestion cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return suggestions, true
}

// SetSuggestions stores a suggestion list. Failures are logged and ignored:
// the cache is an optimization, never a dependency.
func (c *Cache) SetSuggestions(ctx context.Context, query, typ string, limit int, suggestions []domain.Suggestion) {
	data, err := json.Marshal(suggestions)
	if err != nil {
		c.logger.Warn("failed to marshal suggestions for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, suggestionKey(query, typ, limit), data, suggestionCacheTTL).Err(); err != nil {
		c.logger.Warn("suggestion cache write failed", zap.Error(err))
	}
}

// IncrementRequestCount bumps the fixed-window counter for a client and
// returns the new count. The TTL starts with the first hit in the window.
func (c *Cache) IncrementRequestCount(ctx context.Context, clientKey string) (int64, error) {
	key := rateLimitKey(clientKey)

	pipe := c.client.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rateLimitWindowTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("increment request count: %w", err)
	}
	return incrCmd.Val(), nil
}
