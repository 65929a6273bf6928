package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/hera-erp/core/internal/infrastructure/persistence/models"
)

// GormDynamicFieldRepository implements core.DynamicFieldRepository using GORM
type GormDynamicFieldRepository struct {
	db *gorm.DB
}

// NewGormDynamicFieldRepository creates a new GormDynamicFieldRepository
func NewGormDynamicFieldRepository(db *gorm.DB) *GormDynamicFieldRepository {
	return &GormDynamicFieldRepository{db: db}
}

// Upsert writes a dynamic field, overwriting any existing row with the same
// (entity id, field name) key.
func (r *GormDynamicFieldRepository) Upsert(ctx context.Context, field *core.DynamicField) error {
	var model models.DynamicFieldModel
	model.FromDomain(field)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity_id"}, {Name: "field_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"field_type", "value_text", "value_number", "value_boolean",
			"value_date", "value_json", "smart_code", "updated_at", "version",
		}),
	}).Create(&model).Error
}

// FindByEntity returns all dynamic fields of an entity within an organization
func (r *GormDynamicFieldRepository) FindByEntity(ctx context.Context, orgID, entityID uuid.UUID) ([]core.DynamicField, error) {
	var fieldModels []models.DynamicFieldModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND entity_id = ?", orgID, entityID).
		Order("field_name ASC").
		Find(&fieldModels).Error; err != nil {
		return nil, err
	}

	fields := make([]core.DynamicField, len(fieldModels))
	for i, model := range fieldModels {
		fields[i] = *model.ToDomain()
	}
	return fields, nil
}

// FindByEntityAndName returns one dynamic field by its (entity, name) key
func (r *GormDynamicFieldRepository) FindByEntityAndName(ctx context.Context, orgID, entityID uuid.UUID, name string) (*core.DynamicField, error) {
	var model models.DynamicFieldModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND entity_id = ? AND field_name = ?", orgID, entityID, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}
