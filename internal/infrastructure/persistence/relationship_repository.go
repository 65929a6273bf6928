package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/infrastructure/persistence/models"
)

// GormRelationshipRepository implements core.RelationshipRepository using GORM
type GormRelationshipRepository struct {
	db *gorm.DB
}

// NewGormRelationshipRepository creates a new GormRelationshipRepository
func NewGormRelationshipRepository(db *gorm.DB) *GormRelationshipRepository {
	return &GormRelationshipRepository{db: db}
}

// Save creates or updates a relationship edge
func (r *GormRelationshipRepository) Save(ctx context.Context, rel *core.Relationship) error {
	var model models.RelationshipModel
	model.FromDomain(rel)
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindFromEntity returns outgoing edges of an entity, optionally narrowed
// to one relationship type. An empty relType matches all types.
func (r *GormRelationshipRepository) FindFromEntity(ctx context.Context, orgID, fromID uuid.UUID, relType string) ([]core.Relationship, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND from_entity_id = ?", orgID, fromID)
	if relType != "" {
		query = query.Where("relationship_type = ?", relType)
	}

	var relModels []models.RelationshipModel
	if err := query.Order("created_at ASC").Find(&relModels).Error; err != nil {
		return nil, err
	}

	rels := make([]core.Relationship, len(relModels))
	for i, model := range relModels {
		rels[i] = *model.ToDomain()
	}
	return rels, nil
}

// FindToEntity returns incoming edges of an entity, optionally narrowed
// to one relationship type. An empty relType matches all types.
func (r *GormRelationshipRepository) FindToEntity(ctx context.Context, orgID, toID uuid.UUID, relType string) ([]core.Relationship, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND to_entity_id = ?", orgID, toID)
	if relType != "" {
		query = query.Where("relationship_type = ?", relType)
	}

	var relModels []models.RelationshipModel
	if err := query.Order("created_at ASC").Find(&relModels).Error; err != nil {
		return nil, err
	}

	rels := make([]core.Relationship, len(relModels))
	for i, model := range relModels {
		rels[i] = *model.ToDomain()
	}
	return rels, nil
}
