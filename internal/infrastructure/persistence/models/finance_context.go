package models

import (
	"time"

	"github.com/google/uuid"
)

// FinanceContextModel holds the per-organization finance configuration as a
// JSON document. One row per organization.
type FinanceContextModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Document       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FinanceContextModel) TableName() string {
	return "finance_contexts"
}
