package financecontext

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hera-erp/core/internal/domain/posting"
)

// ContextCache is one cache tier for resolved finance contexts. Get returns
// nil, nil on a miss; cache failures are reported but never block resolution.
type ContextCache interface {
	Get(ctx context.Context, orgID uuid.UUID) (*posting.FinanceContext, error)
	Set(ctx context.Context, fc *posting.FinanceContext) error
	Invalidate(ctx context.Context, orgID uuid.UUID) error
}

// CachedResolver resolves finance contexts through an ordered list of cache
// tiers before falling back to the source store. A hit in a later tier
// backfills the tiers in front of it.
type CachedResolver struct {
	source posting.ContextResolver
	tiers  []ContextCache
	logger *zap.Logger
}

// NewCachedResolver creates a resolver with the given source and cache
// tiers, fastest tier first.
func NewCachedResolver(source posting.ContextResolver, logger *zap.Logger, tiers ...ContextCache) *CachedResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedResolver{
		source: source,
		tiers:  tiers,
		logger: logger,
	}
}

// Resolve returns the finance context for an organization
func (r *CachedResolver) Resolve(ctx context.Context, orgID uuid.UUID) (*posting.FinanceContext, error) {
	for i, tier := range r.tiers {
		fc, err := tier.Get(ctx, orgID)
		if err != nil {
			r.logger.Warn("finance context cache tier failed, continuing",
				zap.Int("tier", i),
				zap.String("organization_id", orgID.String()),
				zap.Error(err))
			continue
		}
		if fc != nil {
			r.backfill(ctx, fc, i)
			return fc, nil
		}
	}

	fc, err := r.source.Resolve(ctx, orgID)
	if err != nil {
		return nil, err
	}
	r.backfill(ctx, fc, len(r.tiers))
	return fc, nil
}

// Invalidate removes an organization's context from every cache tier.
// Call after saving a new configuration document.
func (r *CachedResolver) Invalidate(ctx context.Context, orgID uuid.UUID) {
	for i, tier := range r.tiers {
		if err := tier.Invalidate(ctx, orgID); err != nil {
			r.logger.Warn("failed to invalidate finance context cache tier",
				zap.Int("tier", i),
				zap.String("organization_id", orgID.String()),
				zap.Error(err))
		}
	}
}

// backfill populates the tiers in front of the one that produced the hit
func (r *CachedResolver) backfill(ctx context.Context, fc *posting.FinanceContext, hitTier int) {
	for i := 0; i < hitTier && i < len(r.tiers); i++ {
		if err := r.tiers[i].Set(ctx, fc); err != nil {
			r.logger.Warn("failed to backfill finance context cache tier",
				zap.Int("tier", i),
				zap.Error(err))
		}
	}
}

// Ensure CachedResolver implements the resolver contract
var _ posting.ContextResolver = (*CachedResolver)(nil)
