// Package financecontext supplies the per-organization finance configuration
// consumed by posting rule processors. The source of truth is a database row
// per organization; resolvers front it with in-memory and Redis cache tiers.
package financecontext

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/hera-erp/core/internal/infrastructure/persistence/models"
)

// GormContextStore reads and writes finance context documents using GORM
type GormContextStore struct {
	db *gorm.DB
}

// NewGormContextStore creates a new GormContextStore
func NewGormContextStore(db *gorm.DB) *GormContextStore {
	return &GormContextStore{db: db}
}

// Resolve loads the finance context for an organization
func (s *GormContextStore) Resolve(ctx context.Context, orgID uuid.UUID) (*posting.FinanceContext, error) {
	var model models.FinanceContextModel
	if err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	var fc posting.FinanceContext
	if err := json.Unmarshal(model.Document, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode finance context for organization %s: %w", orgID, err)
	}
	fc.OrganizationID = orgID
	return &fc, nil
}

// Save writes the finance context document for an organization, replacing
// any existing row.
func (s *GormContextStore) Save(ctx context.Context, fc *posting.FinanceContext) error {
	if fc.OrganizationID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "finance context requires an organization id")
	}

	doc, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode finance context: %w", err)
	}

	now := time.Now()
	model := models.FinanceContextModel{
		ID:             uuid.New(),
		OrganizationID: fc.OrganizationID,
		Document:       doc,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&model).Error
}

// Ensure GormContextStore implements the resolver contract
var _ posting.ContextResolver = (*GormContextStore)(nil)
