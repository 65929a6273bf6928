package core

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domain "github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionService handles the generic transaction store operations
type TransactionService struct {
	transactions domain.TransactionRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions domain.TransactionRepository, logger *zap.Logger) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		transactions: transactions,
		validate:     validator.New(),
		logger:       logger,
	}
}

// CreateTransactionRequest represents a request to create a transaction header
type CreateTransactionRequest struct {
	OrganizationID    uuid.UUID `validate:"required"`
	TransactionType   string    `validate:"required"`
	SmartCode         string    `validate:"required"`
	TransactionDate   time.Time `validate:"required"`
	TotalAmount       decimal.Decimal
	ReferenceEntityID *uuid.UUID
	Metadata          map[string]any
}

// CreateTransaction creates a draft transaction header
func (s *TransactionService) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	header, err := domain.NewTransactionHeader(
		req.OrganizationID, req.TransactionType, req.SmartCode,
		req.TransactionDate, req.TotalAmount, req.ReferenceEntityID, req.Metadata)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.transactions.SaveHeader(ctx, header); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save transaction header: %w", err)
	}

	s.logger.Info("transaction created",
		zap.String("transaction_id", header.ID.String()),
		zap.String("organization_id", req.OrganizationID.String()),
		zap.String("smart_code", req.SmartCode),
	)
	return header.ID, nil
}

// CreateTransactionLineRequest represents a request to append a line
type CreateTransactionLineRequest struct {
	OrganizationID uuid.UUID `validate:"required"`
	HeaderID       uuid.UUID `validate:"required"`
	LineNumber     int       `validate:"required,min=1"`
	EntityID       *uuid.UUID
	Quantity       decimal.Decimal
	UnitAmount     decimal.Decimal
	LineAmount     decimal.Decimal
	SmartCode      string `validate:"required"`
	Payload        map[string]any
}

// CreateTransactionLine appends an ordered line to a draft header. Line
// numbers are unique per header.
func (s *TransactionService) CreateTransactionLine(ctx context.Context, req CreateTransactionLineRequest) (uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	header, err := s.transactions.FindHeaderByID(ctx, req.OrganizationID, req.HeaderID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("header %s: %w", req.HeaderID, err)
	}
	if header.Status != domain.TransactionStatusDraft {
		return uuid.Nil, shared.NewDomainError("INVALID_STATE", "lines can only be added to a draft transaction")
	}

	line, err := domain.NewTransactionLine(
		req.OrganizationID, req.HeaderID, req.LineNumber, req.EntityID,
		req.Quantity, req.UnitAmount, req.LineAmount, req.SmartCode, req.Payload)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.transactions.SaveLine(ctx, line); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save transaction line: %w", err)
	}
	return line.ID, nil
}

// UpdateTransactionStatus moves a header along its lifecycle. Only
// draft -> confirmed -> {posted | cancelled} transitions are accepted.
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, orgID, headerID uuid.UUID, next domain.TransactionStatus) error {
	header, err := s.transactions.FindHeaderByID(ctx, orgID, headerID)
	if err != nil {
		return fmt.Errorf("header %s: %w", headerID, err)
	}

	if err := header.TransitionTo(next); err != nil {
		return err
	}
	if err := s.transactions.SaveHeader(ctx, header); err != nil {
		return fmt.Errorf("failed to save transaction header: %w", err)
	}

	for _, event := range header.GetDomainEvents() {
		s.logger.Info("domain event",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.String("organization_id", event.OrganizationID().String()),
		)
	}
	header.ClearDomainEvents()
	return nil
}
