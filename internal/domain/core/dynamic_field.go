package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FieldType is the tag of the dynamic field value union
type FieldType string

const (
	FieldTypeText    FieldType = "TEXT"
	FieldTypeNumber  FieldType = "NUMBER"
	FieldTypeBoolean FieldType = "BOOLEAN"
	FieldTypeDate    FieldType = "DATE"
	FieldTypeJSON    FieldType = "JSON"
)

// IsValid checks if the field type is a valid FieldType
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeBoolean, FieldTypeDate, FieldTypeJSON:
		return true
	}
	return false
}

// String returns the string representation
func (t FieldType) String() string {
	return string(t)
}

// FieldValue is a tagged union holding exactly one of the five supported
// value kinds. Readers switch on Type() and use the matching accessor; an
// accessor for a different kind reports ok=false rather than a zero value
// that could be mistaken for data.
type FieldValue struct {
	fieldType FieldType
	text      string
	number    decimal.Decimal
	boolean   bool
	date      time.Time
	jsonValue json.RawMessage
}

// TextValue creates a text field value
func TextValue(s string) FieldValue {
	return FieldValue{fieldType: FieldTypeText, text: s}
}

// NumberValue creates a numeric field value
func NumberValue(d decimal.Decimal) FieldValue {
	return FieldValue{fieldType: FieldTypeNumber, number: d}
}

// BooleanValue creates a boolean field value
func BooleanValue(b bool) FieldValue {
	return FieldValue{fieldType: FieldTypeBoolean, boolean: b}
}

// DateValue creates a date field value
func DateValue(t time.Time) FieldValue {
	return FieldValue{fieldType: FieldTypeDate, date: t}
}

// JSONValue creates a JSON field value
func JSONValue(raw json.RawMessage) FieldValue {
	return FieldValue{fieldType: FieldTypeJSON, jsonValue: raw}
}

// Type returns the union tag
func (v FieldValue) Type() FieldType {
	return v.fieldType
}

// Text returns the text value, ok=false if the tag is not TEXT
func (v FieldValue) Text() (string, bool) {
	return v.text, v.fieldType == FieldTypeText
}

// Number returns the numeric value, ok=false if the tag is not NUMBER
func (v FieldValue) Number() (decimal.Decimal, bool) {
	return v.number, v.fieldType == FieldTypeNumber
}

// Boolean returns the boolean value, ok=false if the tag is not BOOLEAN
func (v FieldValue) Boolean() (bool, bool) {
	return v.boolean, v.fieldType == FieldTypeBoolean
}

// Date returns the date value, ok=false if the tag is not DATE
func (v FieldValue) Date() (time.Time, bool) {
	return v.date, v.fieldType == FieldTypeDate
}

// JSON returns the raw JSON value, ok=false if the tag is not JSON
func (v FieldValue) JSON() (json.RawMessage, bool) {
	return v.jsonValue, v.fieldType == FieldTypeJSON
}

// DynamicField is one typed attribute row attached to an entity, keyed by
// (entity id, field name). Writing an existing name overwrites the value.
type DynamicField struct {
	shared.OrgAggregateRoot
	EntityID  uuid.UUID
	FieldName string
	Value     FieldValue
	SmartCode string
}

// NewDynamicField creates a dynamic field for the given entity
func NewDynamicField(orgID, entityID uuid.UUID, name string, value FieldValue, smartCode string) (*DynamicField, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "field name is required")
	}
	if !value.Type().IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "field value has no valid type tag")
	}
	return &DynamicField{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		EntityID:         entityID,
		FieldName:        name,
		Value:            value,
		SmartCode:        smartCode,
	}, nil
}

// Overwrite replaces the field value, keeping the (entity, name) key
func (f *DynamicField) Overwrite(value FieldValue, smartCode string) error {
	if !value.Type().IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "field value has no valid type tag")
	}
	f.Value = value
	f.SmartCode = smartCode
	return nil
}
