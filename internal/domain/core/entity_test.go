package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/shared"
)

func TestNewEntity(t *testing.T) {
	t.Run("creates active entity", func(t *testing.T) {
		orgID := uuid.New()
		entity, err := NewEntity(orgID, "product", "Gold Ring 22K", "RING-001",
			"HERA.JWLY.INV.PRODUCT.ENT.v1", map[string]any{"hsn": "7113"})

		require.NoError(t, err)
		assert.Equal(t, orgID, entity.OrganizationID)
		assert.Equal(t, "product", entity.EntityType)
		assert.Equal(t, "Gold Ring 22K", entity.Name)
		assert.Equal(t, EntityStatusActive, entity.Status)
		assert.True(t, entity.IsActive())
		assert.Equal(t, "7113", entity.Metadata["hsn"])
	})

	t.Run("requires entity type", func(t *testing.T) {
		_, err := NewEntity(uuid.New(), "  ", "Gold Ring", "", "", nil)
		assert.Error(t, err)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewEntity(uuid.New(), "product", "", "", "", nil)
		assert.Error(t, err)
	})

	t.Run("code and smart code are optional", func(t *testing.T) {
		entity, err := NewEntity(uuid.New(), "customer", "Walk-in", "", "", nil)
		require.NoError(t, err)
		assert.Empty(t, entity.Code)
		assert.NotNil(t, entity.Metadata)
	})
}

func TestEntityLifecycle(t *testing.T) {
	newActive := func(t *testing.T) *Entity {
		t.Helper()
		entity, err := NewEntity(uuid.New(), "product", "Gold Ring", "", "", nil)
		require.NoError(t, err)
		return entity
	}

	t.Run("archive", func(t *testing.T) {
		entity := newActive(t)
		require.NoError(t, entity.Archive())
		assert.Equal(t, EntityStatusArchived, entity.Status)
		assert.False(t, entity.IsActive())
	})

	t.Run("deleted entity cannot be archived", func(t *testing.T) {
		entity := newActive(t)
		entity.MarkDeleted()
		assert.ErrorIs(t, entity.Archive(), shared.ErrInvalidState)
		assert.Equal(t, EntityStatusDeleted, entity.Status)
	})

	t.Run("mark deleted keeps the record", func(t *testing.T) {
		entity := newActive(t)
		id := entity.ID
		entity.MarkDeleted()
		assert.Equal(t, EntityStatusDeleted, entity.Status)
		assert.Equal(t, id, entity.ID)
	})

	t.Run("rename", func(t *testing.T) {
		entity := newActive(t)
		require.NoError(t, entity.Rename("Gold Ring 24K"))
		assert.Equal(t, "Gold Ring 24K", entity.Name)
		assert.Error(t, entity.Rename("  "))
	})
}

func TestEntityStatus(t *testing.T) {
	for _, s := range []EntityStatus{EntityStatusActive, EntityStatusArchived, EntityStatusDeleted} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, EntityStatus("UNKNOWN").IsValid())
}
