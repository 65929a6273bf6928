package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
)

func newTestEntity(t *testing.T, orgID uuid.UUID, entityType, name, code string) *core.Entity {
	t.Helper()
	entity, err := core.NewEntity(orgID, entityType, name, code,
		"HERA.JWLY.INV.PRODUCT.ENT.v1", nil)
	require.NoError(t, err)
	return entity
}

func TestGormEntityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		orgID := uuid.New()

		entity := newTestEntity(t, orgID, "product", "Gold Ring 22K", "RING-001")
		require.NoError(t, repo.Save(ctx, entity))

		found, err := repo.FindByID(ctx, entity.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ID, found.ID)
		assert.Equal(t, "Gold Ring 22K", found.Name)
		assert.Equal(t, core.EntityStatusActive, found.Status)
	})

	t.Run("record from another organization behaves as not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)

		entity := newTestEntity(t, uuid.New(), "product", "Gold Ring", "RING-001")
		require.NoError(t, repo.Save(ctx, entity))

		otherOrg := uuid.New()
		_, err := repo.FindByIDForOrg(ctx, otherOrg, entity.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByCodeForOrg(ctx, otherOrg, "RING-001")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find by code within organization", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		orgID := uuid.New()

		entity := newTestEntity(t, orgID, "product", "Gold Ring", "RING-001")
		require.NoError(t, repo.Save(ctx, entity))

		found, err := repo.FindByCodeForOrg(ctx, orgID, "RING-001")
		require.NoError(t, err)
		assert.Equal(t, entity.ID, found.ID)
	})

	t.Run("find by type filters other types and organizations", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		orgID := uuid.New()

		require.NoError(t, repo.Save(ctx, newTestEntity(t, orgID, "product", "Ring", "P1")))
		require.NoError(t, repo.Save(ctx, newTestEntity(t, orgID, "product", "Chain", "P2")))
		require.NoError(t, repo.Save(ctx, newTestEntity(t, orgID, "customer", "Walk-in", "C1")))
		require.NoError(t, repo.Save(ctx, newTestEntity(t, uuid.New(), "product", "Other Org Ring", "P1")))

		products, err := repo.FindByTypeForOrg(ctx, orgID, "product", shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "product", p.EntityType)
			assert.Equal(t, orgID, p.OrganizationID)
		}
	})

	t.Run("find all respects paging", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		orgID := uuid.New()

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Save(ctx, newTestEntity(t, orgID, "product", "Item", "")))
		}

		filter := shared.DefaultFilter()
		filter.PageSize = 3
		page1, err := repo.FindAllForOrg(ctx, orgID, filter)
		require.NoError(t, err)
		assert.Len(t, page1, 3)

		filter.Page = 2
		page2, err := repo.FindAllForOrg(ctx, orgID, filter)
		require.NoError(t, err)
		assert.Len(t, page2, 2)
	})

	t.Run("save persists status changes", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		orgID := uuid.New()

		entity := newTestEntity(t, orgID, "product", "Ring", "")
		require.NoError(t, repo.Save(ctx, entity))

		require.NoError(t, entity.Archive())
		require.NoError(t, repo.Save(ctx, entity))

		found, err := repo.FindByIDForOrg(ctx, orgID, entity.ID)
		require.NoError(t, err)
		assert.Equal(t, core.EntityStatusArchived, found.Status)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)

		entity := newTestEntity(t, uuid.New(), "product", "Ring", "")
		require.NoError(t, repo.Save(ctx, entity))
		require.NoError(t, repo.Delete(ctx, entity.ID))

		_, err := repo.FindByID(ctx, entity.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete of missing row reports not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormEntityRepository(db.DB)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormOrganizationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find by code", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrganizationRepository(db.DB)

		org, err := core.NewOrganization("Lakshmi Jewellers", "LAKSHMI")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, org))

		found, err := repo.FindByCode(ctx, "LAKSHMI")
		require.NoError(t, err)
		assert.Equal(t, org.ID, found.ID)
		assert.Equal(t, "Lakshmi Jewellers", found.Name)
	})

	t.Run("unknown code reports not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrganizationRepository(db.DB)
		_, err := repo.FindByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("find by id", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormOrganizationRepository(db.DB)

		org, err := core.NewOrganization("Lakshmi Jewellers", "LAKSHMI")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, org))

		found, err := repo.FindByID(ctx, org.ID)
		require.NoError(t, err)
		assert.Equal(t, "LAKSHMI", found.Code)
	})
}
