package core

import (
	"github.com/hera-erp/core/internal/domain/shared"
)

// Event types for the transaction aggregate
const (
	EventTypeTransactionStatusChanged = "transaction.status_changed"
)

// TransactionStatusChangedEvent is raised on every lifecycle transition
type TransactionStatusChangedEvent struct {
	shared.BaseDomainEvent
	TransactionType string            `json:"transaction_type"`
	SmartCode       string            `json:"smart_code"`
	FromStatus      TransactionStatus `json:"from_status"`
	ToStatus        TransactionStatus `json:"to_status"`
}

// NewTransactionStatusChangedEvent creates a status change event
func NewTransactionStatusChangedEvent(h *TransactionHeader, from, to TransactionStatus) *TransactionStatusChangedEvent {
	return &TransactionStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeTransactionStatusChanged, h.ID, "TransactionHeader", h.OrganizationID),
		TransactionType: h.TransactionType,
		SmartCode:       h.SmartCode,
		FromStatus:      from,
		ToStatus:        to,
	}
}
