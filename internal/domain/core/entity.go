package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
)

// EntityStatus represents the lifecycle status of a business entity.
// Entities are never hard-deleted; removal is a status transition.
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusArchived EntityStatus = "ARCHIVED"
	EntityStatusDeleted  EntityStatus = "DELETED"
)

// IsValid checks if the status is a valid EntityStatus
func (s EntityStatus) IsValid() bool {
	switch s {
	case EntityStatusActive, EntityStatusArchived, EntityStatusDeleted:
		return true
	}
	return false
}

// String returns the string representation
func (s EntityStatus) String() string {
	return string(s)
}

// Entity is the universal business object. Any domain module can create one:
// a customer, a product, a gold recipe, an employee - the entity type tag and
// the smart code identify what it means, dynamic fields carry its attributes.
type Entity struct {
	shared.OrgAggregateRoot
	EntityType string
	Name       string
	Code       string
	SmartCode  string
	Status     EntityStatus
	Metadata   map[string]any
}

// NewEntity creates a new active entity. Name and entity type are required.
func NewEntity(orgID uuid.UUID, entityType, name, code, smartCode string, metadata map[string]any) (*Entity, error) {
	if strings.TrimSpace(entityType) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "entity type is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "entity name is required")
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &Entity{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		EntityType:       entityType,
		Name:             name,
		Code:             code,
		SmartCode:        smartCode,
		Status:           EntityStatusActive,
		Metadata:         metadata,
	}, nil
}

// Rename updates the entity name
func (e *Entity) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "entity name is required")
	}
	e.Name = name
	return nil
}

// Archive marks the entity as archived
func (e *Entity) Archive() error {
	if e.Status == EntityStatusDeleted {
		return shared.ErrInvalidState
	}
	e.Status = EntityStatusArchived
	return nil
}

// MarkDeleted soft-deletes the entity. The row stays; only the status moves.
func (e *Entity) MarkDeleted() {
	e.Status = EntityStatusDeleted
}

// IsActive returns true if the entity is active
func (e *Entity) IsActive() bool {
	return e.Status == EntityStatusActive
}
