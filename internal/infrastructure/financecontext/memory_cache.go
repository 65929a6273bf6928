package financecontext

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hera-erp/core/internal/domain/posting"
)

const defaultCleanupInterval = 30 * time.Second

// cacheEntry wraps a cached context with its expiration time
type cacheEntry struct {
	value     *posting.FinanceContext
	expiresAt time.Time
}

func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// MemoryContextCache is the L1 cache tier for finance contexts, keyed by
// organization id. Designed to sit in front of Redis or the database store.
type MemoryContextCache struct {
	entries sync.Map // map[uuid.UUID]*cacheEntry
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// NewMemoryContextCache creates a new in-memory context cache with the given
// entry TTL and starts its background cleanup goroutine.
func NewMemoryContextCache(ttl time.Duration, logger *zap.Logger) *MemoryContextCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &MemoryContextCache{
		ttl:    ttl,
		logger: logger,
		stopCh: make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves a finance context from the cache. A miss returns nil, nil.
func (c *MemoryContextCache) Get(_ context.Context, orgID uuid.UUID) (*posting.FinanceContext, error) {
	if value, ok := c.entries.Load(orgID); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.value, nil
		}
		c.entries.Delete(orgID)
	}
	atomic.AddInt64(&c.misses, 1)
	return nil, nil
}

// Set stores a finance context in the cache
func (c *MemoryContextCache) Set(_ context.Context, fc *posting.FinanceContext) error {
	if fc == nil {
		return nil
	}
	c.entries.Store(fc.OrganizationID, &cacheEntry{
		value:     fc,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}

// Invalidate removes one organization's context from the cache
func (c *MemoryContextCache) Invalidate(_ context.Context, orgID uuid.UUID) error {
	c.entries.Delete(orgID)
	return nil
}

// Stats returns cache hit and miss counters
func (c *MemoryContextCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *MemoryContextCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *MemoryContextCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			removed := 0
			c.entries.Range(func(key, value any) bool {
				if value.(*cacheEntry).isExpired() {
					c.entries.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.logger.Debug("cleaned up expired finance context cache entries",
					zap.Int("removed", removed))
			}
		}
	}
}
