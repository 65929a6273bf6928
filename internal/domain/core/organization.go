package core

import (
	"strings"

	"github.com/hera-erp/core/internal/domain/shared"
)

// OrganizationStatus represents the status of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "ACTIVE"
	OrganizationStatusSuspended OrganizationStatus = "SUSPENDED"
	OrganizationStatusArchived  OrganizationStatus = "ARCHIVED"
)

// IsValid checks if the status is a valid OrganizationStatus
func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusActive, OrganizationStatusSuspended, OrganizationStatusArchived:
		return true
	}
	return false
}

// String returns the string representation
func (s OrganizationStatus) String() string {
	return string(s)
}

// Organization is the tenant boundary. Every other record in the system
// carries the id of exactly one organization and is never visible or
// mutable across that boundary.
type Organization struct {
	shared.BaseAggregateRoot
	Name     string
	Code     string
	Status   OrganizationStatus
	Settings map[string]any
}

// NewOrganization creates a new active organization
func NewOrganization(name, code string) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.ErrInvalidInput
	}
	if strings.TrimSpace(code) == "" {
		return nil, shared.ErrInvalidInput
	}
	return &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              code,
		Status:            OrganizationStatusActive,
		Settings:          make(map[string]any),
	}, nil
}

// Suspend marks the organization as suspended
func (o *Organization) Suspend() error {
	if o.Status == OrganizationStatusArchived {
		return shared.ErrInvalidState
	}
	o.Status = OrganizationStatusSuspended
	return nil
}

// Archive marks the organization as archived
func (o *Organization) Archive() {
	o.Status = OrganizationStatusArchived
}

// IsActive returns true if the organization is active
func (o *Organization) IsActive() bool {
	return o.Status == OrganizationStatusActive
}
