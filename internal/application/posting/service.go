// Package posting wires the transaction store, the finance context
// resolver and the rule dispatch engine into one workflow: derive the
// balanced GL entry set for a stored transaction.
package posting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/core"
	domainposting "github.com/hera-erp/core/internal/domain/posting"
	"go.uber.org/zap"
)

// Service derives GL postings for stored transactions. Persisting the
// header, lines and derived entries in one atomic unit of work stays with
// the caller; this service neither opens transactions nor takes locks.
type Service struct {
	transactions core.TransactionRepository
	resolver     domainposting.ContextResolver
	dispatcher   *domainposting.Dispatcher
	logger       *zap.Logger
}

// NewService creates a posting service
func NewService(
	transactions core.TransactionRepository,
	resolver domainposting.ContextResolver,
	dispatcher *domainposting.Dispatcher,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		transactions: transactions,
		resolver:     resolver,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Derivation is the outcome of deriving postings for one transaction
type Derivation struct {
	Result  domainposting.Result        `json:"result"`
	Balance domainposting.BalanceResult `json:"balance"`
}

// DerivePostings loads a transaction with its lines, resolves the
// organization's finance context and dispatches to the registered rule
// processor. The returned balance must be inspected along with the result
// errors before anything is posted to a ledger.
func (s *Service) DerivePostings(ctx context.Context, orgID, headerID uuid.UUID) (*Derivation, error) {
	header, err := s.transactions.FindHeaderByID(ctx, orgID, headerID)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", headerID, err)
	}
	lines, err := s.transactions.FindLines(ctx, orgID, headerID)
	if err != nil {
		return nil, fmt.Errorf("lines of %s: %w", headerID, err)
	}

	fc, err := s.resolver.Resolve(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("finance context for %s: %w", orgID, err)
	}

	result := s.dispatcher.Dispatch(header, lines, fc)
	balance := domainposting.ValidateBalanceFor(result.Entries, fc)

	if !balance.IsBalanced && result.OK() {
		s.logger.Warn("derived entries do not balance",
			zap.String("transaction_id", headerID.String()),
			zap.String("difference", balance.Difference.String()),
		)
	}
	return &Derivation{Result: result, Balance: balance}, nil
}
