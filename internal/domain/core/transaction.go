package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle status of a transaction header
type TransactionStatus string

const (
	TransactionStatusDraft     TransactionStatus = "DRAFT"
	TransactionStatusConfirmed TransactionStatus = "CONFIRMED"
	TransactionStatusPosted    TransactionStatus = "POSTED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// IsValid checks if the status is a valid TransactionStatus
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusDraft, TransactionStatusConfirmed, TransactionStatusPosted, TransactionStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s TransactionStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transition is allowed.
// A posted header is never edited in place; corrections are compensating
// transactions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusPosted || s == TransactionStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
// The only legal path is draft -> confirmed -> {posted | cancelled}.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionStatusDraft:
		return next == TransactionStatusConfirmed
	case TransactionStatusConfirmed:
		return next == TransactionStatusPosted || next == TransactionStatusCancelled
	}
	return false
}

// TransactionHeader is a business event: a sale, an exchange intake, a
// job-work issue. The transaction type and smart code identify its meaning;
// the lines carry the detail.
type TransactionHeader struct {
	shared.OrgAggregateRoot
	TransactionType   string
	SmartCode         string
	TransactionDate   time.Time
	TotalAmount       decimal.Decimal
	Currency          string
	Status            TransactionStatus
	ReferenceEntityID *uuid.UUID
	Metadata          map[string]any
}

// NewTransactionHeader creates a draft transaction header
func NewTransactionHeader(orgID uuid.UUID, txType, smartCode string, date time.Time, total decimal.Decimal, refEntity *uuid.UUID, metadata map[string]any) (*TransactionHeader, error) {
	if strings.TrimSpace(txType) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "transaction type is required")
	}
	if strings.TrimSpace(smartCode) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "smart code is required")
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &TransactionHeader{
		OrgAggregateRoot:  shared.NewOrgAggregateRoot(orgID),
		TransactionType:   txType,
		SmartCode:         smartCode,
		TransactionDate:   date,
		TotalAmount:       total,
		Currency:          "INR",
		Status:            TransactionStatusDraft,
		ReferenceEntityID: refEntity,
		Metadata:          metadata,
	}, nil
}

// TransitionTo moves the header to the next lifecycle status, rejecting any
// step outside draft -> confirmed -> {posted | cancelled}. The state change
// is recorded as a domain event.
func (h *TransactionHeader) TransitionTo(next TransactionStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "invalid transaction status: "+next.String())
	}
	if !h.Status.CanTransitionTo(next) {
		return shared.NewDomainError("INVALID_STATE",
			"cannot transition transaction from "+h.Status.String()+" to "+next.String())
	}
	previous := h.Status
	h.Status = next
	h.AddDomainEvent(NewTransactionStatusChangedEvent(h, previous, next))
	return nil
}

// Confirm moves a draft header to confirmed
func (h *TransactionHeader) Confirm() error {
	return h.TransitionTo(TransactionStatusConfirmed)
}

// Post moves a confirmed header to posted. Posted is terminal for
// financial effect.
func (h *TransactionHeader) Post() error {
	return h.TransitionTo(TransactionStatusPosted)
}

// Cancel moves a confirmed header to cancelled
func (h *TransactionHeader) Cancel() error {
	return h.TransitionTo(TransactionStatusCancelled)
}

// ReconcilesWith reports whether the sum of line amounts matches the header
// total within the given tolerance. This is a domain-level check owned by
// the calling module, not a generic constraint.
func (h *TransactionHeader) ReconcilesWith(lines []TransactionLine, tolerance decimal.Decimal) bool {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LineAmount)
	}
	return h.TotalAmount.Sub(sum).Abs().LessThanOrEqual(tolerance)
}

// TransactionLine is an ordered child of a transaction header. Line numbers
// are unique per header; ordering by line number is convention.
type TransactionLine struct {
	shared.OrgAggregateRoot
	HeaderID   uuid.UUID
	LineNumber int
	EntityID   *uuid.UUID
	Quantity   decimal.Decimal
	UnitAmount decimal.Decimal
	LineAmount decimal.Decimal
	SmartCode  string
	Payload    map[string]any
}

// NewTransactionLine creates a line for the given header
func NewTransactionLine(orgID, headerID uuid.UUID, lineNumber int, entityID *uuid.UUID, qty, unitAmount, lineAmount decimal.Decimal, smartCode string, payload map[string]any) (*TransactionLine, error) {
	if lineNumber < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "line number must be positive")
	}
	if strings.TrimSpace(smartCode) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "smart code is required")
	}
	if payload == nil {
		payload = make(map[string]any)
	}
	return &TransactionLine{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(orgID),
		HeaderID:         headerID,
		LineNumber:       lineNumber,
		EntityID:         entityID,
		Quantity:         qty,
		UnitAmount:       unitAmount,
		LineAmount:       lineAmount,
		SmartCode:        smartCode,
		Payload:          payload,
	}, nil
}
