package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/shared"
)

func TestNewOrganization(t *testing.T) {
	t.Run("creates active organization", func(t *testing.T) {
		org, err := NewOrganization("Lakshmi Jewellers", "LAKSHMI")
		require.NoError(t, err)
		assert.Equal(t, "Lakshmi Jewellers", org.Name)
		assert.Equal(t, "LAKSHMI", org.Code)
		assert.Equal(t, OrganizationStatusActive, org.Status)
		assert.True(t, org.IsActive())
		assert.NotEqual(t, uuid.Nil, org.ID)
		assert.NotNil(t, org.Settings)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewOrganization(" ", "CODE")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("requires code", func(t *testing.T) {
		_, err := NewOrganization("Name", "")
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestOrganizationLifecycle(t *testing.T) {
	t.Run("suspend", func(t *testing.T) {
		org, err := NewOrganization("Lakshmi Jewellers", "LAKSHMI")
		require.NoError(t, err)
		require.NoError(t, org.Suspend())
		assert.Equal(t, OrganizationStatusSuspended, org.Status)
		assert.False(t, org.IsActive())
	})

	t.Run("archived organization cannot be suspended", func(t *testing.T) {
		org, err := NewOrganization("Lakshmi Jewellers", "LAKSHMI")
		require.NoError(t, err)
		org.Archive()
		assert.ErrorIs(t, org.Suspend(), shared.ErrInvalidState)
		assert.Equal(t, OrganizationStatusArchived, org.Status)
	})
}

func TestNewRelationship(t *testing.T) {
	orgID := uuid.New()

	t.Run("creates edge", func(t *testing.T) {
		from := uuid.New()
		to := uuid.New()
		rel, err := NewRelationship(orgID, from, to, "recipe_for", map[string]any{"yield": 0.98})

		require.NoError(t, err)
		assert.Equal(t, from, rel.FromEntityID)
		assert.Equal(t, to, rel.ToEntityID)
		assert.Equal(t, "recipe_for", rel.RelationshipType)
		assert.Equal(t, 0.98, rel.Data["yield"])
	})

	t.Run("requires relationship type", func(t *testing.T) {
		_, err := NewRelationship(orgID, uuid.New(), uuid.New(), " ", nil)
		assert.Error(t, err)
	})

	t.Run("requires both endpoints", func(t *testing.T) {
		_, err := NewRelationship(orgID, uuid.Nil, uuid.New(), "reports_to", nil)
		assert.Error(t, err)
		_, err = NewRelationship(orgID, uuid.New(), uuid.Nil, "reports_to", nil)
		assert.Error(t, err)
	})
}
