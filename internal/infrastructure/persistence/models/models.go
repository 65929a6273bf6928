package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
)

// OrganizationModel maps the Organization aggregate
type OrganizationModel struct {
	AggregateModel
	Name     string  `gorm:"type:varchar(255);not null"`
	Code     string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status   string  `gorm:"type:varchar(32);not null;default:'ACTIVE'"`
	Settings JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the model to a domain organization
func (m *OrganizationModel) ToDomain() *core.Organization {
	return &core.Organization{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Name:     m.Name,
		Code:     m.Code,
		Status:   core.OrganizationStatus(m.Status),
		Settings: m.Settings,
	}
}

// FromDomain populates the model from a domain organization
func (m *OrganizationModel) FromDomain(o *core.Organization) {
	m.ID = o.ID
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.Version = o.Version
	m.Name = o.Name
	m.Code = o.Code
	m.Status = o.Status.String()
	m.Settings = JSONMap(o.Settings)
}

// EntityModel maps the universal Entity aggregate
type EntityModel struct {
	OrgAggregateModel
	EntityType string  `gorm:"type:varchar(64);not null;index:idx_entities_org_type,priority:2"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Code       string  `gorm:"type:varchar(64)"`
	SmartCode  string  `gorm:"type:varchar(128);index"`
	Status     string  `gorm:"type:varchar(32);not null;default:'ACTIVE'"`
	Metadata   JSONMap `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (EntityModel) TableName() string {
	return "entities"
}

// ToDomain converts the model to a domain entity
func (m *EntityModel) ToDomain() *core.Entity {
	e := &core.Entity{
		EntityType: m.EntityType,
		Name:       m.Name,
		Code:       m.Code,
		SmartCode:  m.SmartCode,
		Status:     core.EntityStatus(m.Status),
		Metadata:   m.Metadata,
	}
	m.PopulateOrgAggregateRoot(&e.OrgAggregateRoot)
	return e
}

// FromDomain populates the model from a domain entity
func (m *EntityModel) FromDomain(e *core.Entity) {
	m.FromDomainOrgAggregateRoot(e.OrgAggregateRoot)
	m.EntityType = e.EntityType
	m.Name = e.Name
	m.Code = e.Code
	m.SmartCode = e.SmartCode
	m.Status = e.Status.String()
	m.Metadata = JSONMap(e.Metadata)
}

// DynamicFieldModel maps one typed attribute row. The field type tag decides
// which of the value columns holds the data; the others stay null.
type DynamicFieldModel struct {
	OrgAggregateModel
	EntityID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_dynamic_fields_entity_name,priority:1"`
	FieldName    string           `gorm:"type:varchar(128);not null;uniqueIndex:idx_dynamic_fields_entity_name,priority:2"`
	FieldType    string           `gorm:"type:varchar(16);not null"`
	ValueText    *string          `gorm:"type:text"`
	ValueNumber  *decimal.Decimal `gorm:"type:numeric(28,10)"`
	ValueBoolean *bool            `gorm:""`
	ValueDate    *time.Time       `gorm:""`
	ValueJSON    []byte           `gorm:"type:jsonb"`
	SmartCode    string           `gorm:"type:varchar(128)"`
}

// TableName returns the table name for GORM
func (DynamicFieldModel) TableName() string {
	return "dynamic_fields"
}

// ToDomain converts the model to a domain dynamic field
func (m *DynamicFieldModel) ToDomain() *core.DynamicField {
	var value core.FieldValue
	switch core.FieldType(m.FieldType) {
	case core.FieldTypeText:
		if m.ValueText != nil {
			value = core.TextValue(*m.ValueText)
		} else {
			value = core.TextValue("")
		}
	case core.FieldTypeNumber:
		if m.ValueNumber != nil {
			value = core.NumberValue(*m.ValueNumber)
		} else {
			value = core.NumberValue(decimal.Zero)
		}
	case core.FieldTypeBoolean:
		value = core.BooleanValue(m.ValueBoolean != nil && *m.ValueBoolean)
	case core.FieldTypeDate:
		if m.ValueDate != nil {
			value = core.DateValue(*m.ValueDate)
		} else {
			value = core.DateValue(time.Time{})
		}
	case core.FieldTypeJSON:
		value = core.JSONValue(json.RawMessage(m.ValueJSON))
	}
	f := &core.DynamicField{
		EntityID:  m.EntityID,
		FieldName: m.FieldName,
		Value:     value,
		SmartCode: m.SmartCode,
	}
	m.PopulateOrgAggregateRoot(&f.OrgAggregateRoot)
	return f
}

// FromDomain populates the model from a domain dynamic field
func (m *DynamicFieldModel) FromDomain(f *core.DynamicField) {
	m.FromDomainOrgAggregateRoot(f.OrgAggregateRoot)
	m.EntityID = f.EntityID
	m.FieldName = f.FieldName
	m.SmartCode = f.SmartCode
	m.FieldType = f.Value.Type().String()
	m.ValueText = nil
	m.ValueNumber = nil
	m.ValueBoolean = nil
	m.ValueDate = nil
	m.ValueJSON = nil
	switch f.Value.Type() {
	case core.FieldTypeText:
		if v, ok := f.Value.Text(); ok {
			m.ValueText = &v
		}
	case core.FieldTypeNumber:
		if v, ok := f.Value.Number(); ok {
			m.ValueNumber = &v
		}
	case core.FieldTypeBoolean:
		if v, ok := f.Value.Boolean(); ok {
			m.ValueBoolean = &v
		}
	case core.FieldTypeDate:
		if v, ok := f.Value.Date(); ok {
			m.ValueDate = &v
		}
	case core.FieldTypeJSON:
		if v, ok := f.Value.JSON(); ok {
			m.ValueJSON = v
		}
	}
}

// RelationshipModel maps a directed entity edge
type RelationshipModel struct {
	OrgAggregateModel
	FromEntityID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ToEntityID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RelationshipType string    `gorm:"type:varchar(64);not null"`
	Data             JSONMap   `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (RelationshipModel) TableName() string {
	return "relationships"
}

// ToDomain converts the model to a domain relationship
func (m *RelationshipModel) ToDomain() *core.Relationship {
	r := &core.Relationship{
		FromEntityID:     m.FromEntityID,
		ToEntityID:       m.ToEntityID,
		RelationshipType: m.RelationshipType,
		Data:             m.Data,
	}
	m.PopulateOrgAggregateRoot(&r.OrgAggregateRoot)
	return r
}

// FromDomain populates the model from a domain relationship
func (m *RelationshipModel) FromDomain(r *core.Relationship) {
	m.FromDomainOrgAggregateRoot(r.OrgAggregateRoot)
	m.FromEntityID = r.FromEntityID
	m.ToEntityID = r.ToEntityID
	m.RelationshipType = r.RelationshipType
	m.Data = JSONMap(r.Data)
}

// TransactionHeaderModel maps a transaction header
type TransactionHeaderModel struct {
	OrgAggregateModel
	TransactionType   string          `gorm:"type:varchar(64);not null;index:idx_tx_headers_org_type,priority:2"`
	SmartCode         string          `gorm:"type:varchar(128);not null;index"`
	TransactionDate   time.Time       `gorm:"not null;index"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(28,10);not null"`
	Currency          string          `gorm:"type:varchar(3);not null;default:'INR'"`
	Status            string          `gorm:"type:varchar(32);not null;default:'DRAFT'"`
	ReferenceEntityID *uuid.UUID      `gorm:"type:uuid;index"`
	Metadata          JSONMap         `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (TransactionHeaderModel) TableName() string {
	return "transaction_headers"
}

// ToDomain converts the model to a domain transaction header
func (m *TransactionHeaderModel) ToDomain() *core.TransactionHeader {
	h := &core.TransactionHeader{
		TransactionType:   m.TransactionType,
		SmartCode:         m.SmartCode,
		TransactionDate:   m.TransactionDate,
		TotalAmount:       m.TotalAmount,
		Currency:          m.Currency,
		Status:            core.TransactionStatus(m.Status),
		ReferenceEntityID: m.ReferenceEntityID,
		Metadata:          m.Metadata,
	}
	m.PopulateOrgAggregateRoot(&h.OrgAggregateRoot)
	return h
}

// FromDomain populates the model from a domain transaction header
func (m *TransactionHeaderModel) FromDomain(h *core.TransactionHeader) {
	m.FromDomainOrgAggregateRoot(h.OrgAggregateRoot)
	m.TransactionType = h.TransactionType
	m.SmartCode = h.SmartCode
	m.TransactionDate = h.TransactionDate
	m.TotalAmount = h.TotalAmount
	m.Currency = h.Currency
	m.Status = h.Status.String()
	m.ReferenceEntityID = h.ReferenceEntityID
	m.Metadata = JSONMap(h.Metadata)
}

// TransactionLineModel maps an ordered child line of a transaction header
type TransactionLineModel struct {
	OrgAggregateModel
	HeaderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_tx_lines_header_number,priority:1"`
	LineNumber int             `gorm:"not null;uniqueIndex:idx_tx_lines_header_number,priority:2"`
	EntityID   *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity   decimal.Decimal `gorm:"type:numeric(28,10);not null"`
	UnitAmount decimal.Decimal `gorm:"type:numeric(28,10);not null"`
	LineAmount decimal.Decimal `gorm:"type:numeric(28,10);not null"`
	SmartCode  string          `gorm:"type:varchar(128);not null;index"`
	Payload    JSONMap         `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (TransactionLineModel) TableName() string {
	return "transaction_lines"
}

// ToDomain converts the model to a domain transaction line
func (m *TransactionLineModel) ToDomain() *core.TransactionLine {
	l := &core.TransactionLine{
		HeaderID:   m.HeaderID,
		LineNumber: m.LineNumber,
		EntityID:   m.EntityID,
		Quantity:   m.Quantity,
		UnitAmount: m.UnitAmount,
		LineAmount: m.LineAmount,
		SmartCode:  m.SmartCode,
		Payload:    m.Payload,
	}
	m.PopulateOrgAggregateRoot(&l.OrgAggregateRoot)
	return l
}

// FromDomain populates the model from a domain transaction line
func (m *TransactionLineModel) FromDomain(l *core.TransactionLine) {
	m.FromDomainOrgAggregateRoot(l.OrgAggregateRoot)
	m.HeaderID = l.HeaderID
	m.LineNumber = l.LineNumber
	m.EntityID = l.EntityID
	m.Quantity = l.Quantity
	m.UnitAmount = l.UnitAmount
	m.LineAmount = l.LineAmount
	m.SmartCode = l.SmartCode
	m.Payload = JSONMap(l.Payload)
}
