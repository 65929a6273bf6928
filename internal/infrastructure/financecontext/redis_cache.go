package financecontext

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hera-erp/core/internal/domain/posting"
)

const redisKeyPrefix = "finance:context:"

// RedisContextCache is the shared cache tier for finance contexts, suitable
// for deployments where multiple instances serve the same organizations.
type RedisContextCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContextCache creates a Redis-backed context cache with an existing
// client. The client connection is owned by the caller.
func NewRedisContextCache(client *redis.Client, ttl time.Duration) *RedisContextCache {
	return &RedisContextCache{client: client, ttl: ttl}
}

func (c *RedisContextCache) key(orgID uuid.UUID) string {
	return redisKeyPrefix + orgID.String()
}

// Get retrieves a finance context from Redis. A miss returns nil, nil.
func (c *RedisContextCache) Get(ctx context.Context, orgID uuid.UUID) (*posting.FinanceContext, error) {
	raw, err := c.client.Get(ctx, c.key(orgID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read finance context from redis: %w", err)
	}

	var fc posting.FinanceContext
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode cached finance context: %w", err)
	}
	return &fc, nil
}

// Set stores a finance context in Redis with the configured TTL
func (c *RedisContextCache) Set(ctx context.Context, fc *posting.FinanceContext) error {
	if fc == nil {
		return nil
	}
	raw, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode finance context: %w", err)
	}
	if err := c.client.Set(ctx, c.key(fc.OrganizationID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache finance context in redis: %w", err)
	}
	return nil
}

// Invalidate removes one organization's context from Redis
func (c *RedisContextCache) Invalidate(ctx context.Context, orgID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(orgID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate finance context in redis: %w", err)
	}
	return nil
}
