package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
)

// OrganizationRepository persists organizations
type OrganizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindByCode(ctx context.Context, code string) (*Organization, error)
	Save(ctx context.Context, org *Organization) error
}

// EntityRepository persists universal entities, scoped to an organization
type EntityRepository interface {
	shared.OrgRepository[Entity]
	FindByCodeForOrg(ctx context.Context, orgID uuid.UUID, code string) (*Entity, error)
	FindByTypeForOrg(ctx context.Context, orgID uuid.UUID, entityType string, filter shared.Filter) ([]Entity, error)
}

// DynamicFieldRepository persists dynamic fields. Upsert is keyed by
// (entity id, field name).
type DynamicFieldRepository interface {
	Upsert(ctx context.Context, field *DynamicField) error
	FindByEntity(ctx context.Context, orgID, entityID uuid.UUID) ([]DynamicField, error)
	FindByEntityAndName(ctx context.Context, orgID, entityID uuid.UUID, name string) (*DynamicField, error)
}

// RelationshipRepository persists relationship edges
type RelationshipRepository interface {
	Save(ctx context.Context, rel *Relationship) error
	FindFromEntity(ctx context.Context, orgID, fromID uuid.UUID, relType string) ([]Relationship, error)
	FindToEntity(ctx context.Context, orgID, toID uuid.UUID, relType string) ([]Relationship, error)
}

// TransactionRepository persists transaction headers and lines
type TransactionRepository interface {
	FindHeaderByID(ctx context.Context, orgID, id uuid.UUID) (*TransactionHeader, error)
	SaveHeader(ctx context.Context, header *TransactionHeader) error
	SaveLine(ctx context.Context, line *TransactionLine) error
	FindLines(ctx context.Context, orgID, headerID uuid.UUID) ([]TransactionLine, error)
	FindHeadersForOrg(ctx context.Context, orgID uuid.UUID, filter shared.Filter) ([]TransactionHeader, error)
}
