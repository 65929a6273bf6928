package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/core"
)

// newTestDB opens a fresh in-memory database for one test
func newTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewTestDatabase()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewTestDatabase(t *testing.T) {
	t.Run("opens and pings", func(t *testing.T) {
		db := newTestDB(t)
		assert.NoError(t, db.Ping())
	})

	t.Run("each call is isolated", func(t *testing.T) {
		a := newTestDB(t)
		b := newTestDB(t)

		org, err := core.NewOrganization("Solo", "SOLO")
		require.NoError(t, err)
		require.NoError(t, NewGormOrganizationRepository(a.DB).Save(context.Background(), org))

		var countA, countB int64
		require.NoError(t, a.DB.Table("organizations").Count(&countA).Error)
		require.NoError(t, b.DB.Table("organizations").Count(&countB).Error)
		assert.Equal(t, int64(1), countA)
		assert.Equal(t, int64(0), countB)
	})
}

func TestWithOrganization(t *testing.T) {
	t.Run("panics on nil organization", func(t *testing.T) {
		db := newTestDB(t)
		assert.Panics(t, func() {
			db.WithOrganization(uuid.Nil)
		})
	})

	t.Run("scopes queries", func(t *testing.T) {
		db := newTestDB(t)
		assert.NotNil(t, db.WithOrganization(uuid.New()))
	})
}
