package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domain "github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
	"go.uber.org/zap"
)

// EntityService handles the generic entity and attribute store operations
type EntityService struct {
	entities  domain.EntityRepository
	fields    domain.DynamicFieldRepository
	relations domain.RelationshipRepository
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewEntityService creates a new EntityService
func NewEntityService(
	entities domain.EntityRepository,
	fields domain.DynamicFieldRepository,
	relations domain.RelationshipRepository,
	logger *zap.Logger,
) *EntityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityService{
		entities:  entities,
		fields:    fields,
		relations: relations,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CreateEntityRequest represents a request to create a universal entity
type CreateEntityRequest struct {
	OrganizationID uuid.UUID      `validate:"required"`
	EntityType     string         `validate:"required"`
	Name           string         `validate:"required"`
	Code           string         `validate:"omitempty,max=64"`
	SmartCode      string         `validate:"omitempty"`
	Metadata       map[string]any `validate:"-"`
}

// CreateEntity creates a universal entity. Name and entity type are
// required; anything else is open to the calling domain module.
func (s *EntityService) CreateEntity(ctx context.Context, req CreateEntityRequest) (uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	entity, err := domain.NewEntity(req.OrganizationID, req.EntityType, req.Name, req.Code, req.SmartCode, req.Metadata)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.entities.Save(ctx, entity); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save entity: %w", err)
	}

	s.logger.Info("entity created",
		zap.String("entity_id", entity.ID.String()),
		zap.String("organization_id", req.OrganizationID.String()),
		zap.String("entity_type", req.EntityType),
		zap.String("smart_code", req.SmartCode),
	)
	return entity.ID, nil
}

// SetDynamicFieldRequest represents an upsert of one typed attribute
type SetDynamicFieldRequest struct {
	OrganizationID uuid.UUID `validate:"required"`
	EntityID       uuid.UUID `validate:"required"`
	FieldName      string    `validate:"required"`
	Value          domain.FieldValue
	SmartCode      string `validate:"omitempty"`
}

// SetDynamicField upserts a dynamic field keyed by (entity, field name)
func (s *EntityService) SetDynamicField(ctx context.Context, req SetDynamicFieldRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	if _, err := s.entities.FindByIDForOrg(ctx, req.OrganizationID, req.EntityID); err != nil {
		return fmt.Errorf("entity %s: %w", req.EntityID, err)
	}

	existing, err := s.fields.FindByEntityAndName(ctx, req.OrganizationID, req.EntityID, req.FieldName)
	switch {
	case err == nil:
		if err := existing.Overwrite(req.Value, req.SmartCode); err != nil {
			return err
		}
		return s.fields.Upsert(ctx, existing)
	case errorsIsNotFound(err):
		field, ferr := domain.NewDynamicField(req.OrganizationID, req.EntityID, req.FieldName, req.Value, req.SmartCode)
		if ferr != nil {
			return ferr
		}
		return s.fields.Upsert(ctx, field)
	default:
		return err
	}
}

// GetDynamicData returns all dynamic fields of an entity as a map from
// field name to its typed value
func (s *EntityService) GetDynamicData(ctx context.Context, orgID, entityID uuid.UUID) (map[string]domain.FieldValue, error) {
	fields, err := s.fields.FindByEntity(ctx, orgID, entityID)
	if err != nil {
		return nil, err
	}
	data := make(map[string]domain.FieldValue, len(fields))
	for _, f := range fields {
		data[f.FieldName] = f.Value
	}
	return data, nil
}

// CreateRelationshipRequest represents a request to link two entities
type CreateRelationshipRequest struct {
	OrganizationID   uuid.UUID `validate:"required"`
	FromEntityID     uuid.UUID `validate:"required"`
	ToEntityID       uuid.UUID `validate:"required"`
	RelationshipType string    `validate:"required"`
	Data             map[string]any
}

// CreateRelationship creates a directed typed edge. Both endpoints must
// already exist in the request's organization.
func (s *EntityService) CreateRelationship(ctx context.Context, req CreateRelationshipRequest) (uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	if _, err := s.entities.FindByIDForOrg(ctx, req.OrganizationID, req.FromEntityID); err != nil {
		return uuid.Nil, fmt.Errorf("from entity %s: %w", req.FromEntityID, err)
	}
	if _, err := s.entities.FindByIDForOrg(ctx, req.OrganizationID, req.ToEntityID); err != nil {
		return uuid.Nil, fmt.Errorf("to entity %s: %w", req.ToEntityID, err)
	}

	rel, err := domain.NewRelationship(req.OrganizationID, req.FromEntityID, req.ToEntityID, req.RelationshipType, req.Data)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.relations.Save(ctx, rel); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save relationship: %w", err)
	}
	return rel.ID, nil
}

// errorsIsNotFound reports whether the error chain carries the not-found
// sentinel
func errorsIsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
