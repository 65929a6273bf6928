package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/hera-erp/core/internal/infrastructure/persistence/models"
)

// GormEntityRepository implements core.EntityRepository using GORM
type GormEntityRepository struct {
	db *gorm.DB
}

// NewGormEntityRepository creates a new GormEntityRepository
func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db}
}

// FindByID finds an entity by its ID
func (r *GormEntityRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Entity, error) {
	var model models.EntityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForOrg finds an entity by ID within an organization
func (r *GormEntityRepository) FindByIDForOrg(ctx context.Context, orgID, id uuid.UUID) (*core.Entity, error) {
	var model models.EntityModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCodeForOrg finds an entity by its code within an organization
func (r *GormEntityRepository) FindByCodeForOrg(ctx context.Context, orgID uuid.UUID, code string) (*core.Entity, error) {
	var model models.EntityModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND code = ?", orgID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOrg finds all entities for an organization
func (r *GormEntityRepository) FindAllForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]core.Entity, error) {
	var entityModels []models.EntityModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.EntityModel{}).Where("organization_id = ?", orgID),
		filter, "created_at DESC",
	)

	if err := query.Find(&entityModels).Error; err != nil {
		return nil, err
	}

	entities := make([]core.Entity, len(entityModels))
	for i, model := range entityModels {
		entities[i] = *model.ToDomain()
	}
	return entities, nil
}

// FindByTypeForOrg finds entities by entity type within an organization
func (r *GormEntityRepository) FindByTypeForOrg(ctx context.Context, orgID uuid.UUID, entityType string, filter shared.Filter) ([]core.Entity, error) {
	var entityModels []models.EntityModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.EntityModel{}).
			Where("organization_id = ? AND entity_type = ?", orgID, entityType),
		filter, "created_at DESC",
	)

	if err := query.Find(&entityModels).Error; err != nil {
		return nil, err
	}

	entities := make([]core.Entity, len(entityModels))
	for i, model := range entityModels {
		entities[i] = *model.ToDomain()
	}
	return entities, nil
}

// Save creates or updates an entity
func (r *GormEntityRepository) Save(ctx context.Context, entity *core.Entity) error {
	var model models.EntityModel
	model.FromDomain(entity)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes an entity row. Callers normally soft-delete through the
// entity status; this is for administrative cleanup only.
func (r *GormEntityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EntityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
