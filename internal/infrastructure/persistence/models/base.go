package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// AggregateModel extends BaseModel with version for optimistic locking
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// OrgAggregateModel extends AggregateModel with the organization boundary
type OrgAggregateModel struct {
	AggregateModel
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainOrgAggregateRoot populates the model from a domain aggregate
func (m *OrgAggregateModel) FromDomainOrgAggregateRoot(a shared.OrgAggregateRoot) {
	m.ID = a.ID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
	m.Version = a.Version
	m.OrganizationID = a.OrganizationID
}

// PopulateOrgAggregateRoot fills a domain aggregate from the model
func (m *OrgAggregateModel) PopulateOrgAggregateRoot(a *shared.OrgAggregateRoot) {
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	a.Version = m.Version
	a.OrganizationID = m.OrganizationID
}
