package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
)

// Relationship is a directed typed edge between two entities of the same
// organization. It supports hierarchies ("reports_to") as well as
// many-to-many links ("recipe_for"). There is no generic cascade: deleting
// an entity leaves its edges to the owning module to clean up.
type Relationship struct {
	shared.OrgAggregateRoot
	FromEntityID     uuid.UUID
	ToEntityID       uuid.UUID
	RelationshipType string
	Data             map[string]any
}

// NewRelationship creates a relationship edge between two entities
func NewRelationship(orgID, fromID, toID uuid.UUID, relType string, data map[string]any) (*Relationship, error) {
	if strings.TrimSpace(relType) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "relationship type is required")
	}
	if fromID == uuid.Nil || toID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "both relationship endpoints are required")
	}
	if data == nil {
		data = make(map[string]any)
	}
	return &Relationship{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		FromEntityID:     fromID,
		ToEntityID:       toID,
		RelationshipType: relType,
		Data:             data,
	}, nil
}
