package posting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/shared/valueobject"
)

func newTestHeader(t *testing.T, smartCode string) *core.TransactionHeader {
	t.Helper()
	header, err := core.NewTransactionHeader(
		uuid.New(), "test", smartCode, time.Now(), decimal.NewFromInt(100), nil, nil)
	require.NoError(t, err)
	return header
}

func newTestContext() *FinanceContext {
	return &FinanceContext{
		OrganizationID: uuid.New(),
		BaseCurrency:   valueobject.INR,
		GLAccounts:     map[string]Account{},
	}
}

func TestDispatch(t *testing.T) {
	t.Run("routes to the processor for the domain segment", func(t *testing.T) {
		registry := NewRegistry()
		called := false
		registry.Register("JWLY", &stubProcessor{
			domain: "JWLY",
			process: func(h *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) Result {
				called = true
				var r Result
				r.AddEntries(
					DebitEntry(Account{Code: "1000", Name: "Cash"}, decimal.NewFromInt(100), h.SmartCode, 0, ""),
					CreditEntry(Account{Code: "4000", Name: "Revenue"}, decimal.NewFromInt(100), h.SmartCode, 0, ""),
				)
				return r
			},
		})
		d := NewDispatcher(registry, nil)

		result := d.Dispatch(newTestHeader(t, "HERA.JWLY.POS.SALE.TXN.v1"), nil, newTestContext())
		assert.True(t, called)
		assert.True(t, result.OK())
		assert.Len(t, result.Entries, 2)
	})

	t.Run("malformed code fails closed before dispatch", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("JWLY", &stubProcessor{
			domain: "JWLY",
			process: func(h *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) Result {
				t.Fatal("processor must not run for a malformed code")
				return Result{}
			},
		})
		d := NewDispatcher(registry, nil)

		result := d.Dispatch(newTestHeader(t, "HERA.JWLY"), nil, newTestContext())
		assert.False(t, result.OK())
		assert.Empty(t, result.Entries)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], ErrCodeMalformed)
	})

	t.Run("unregistered domain yields the explicit message", func(t *testing.T) {
		d := NewDispatcher(NewRegistry(), nil)

		result := d.Dispatch(newTestHeader(t, "HERA.TEXTILE.POS.SALE.TXN.v1"), nil, newTestContext())
		assert.False(t, result.OK())
		assert.Empty(t, result.Entries)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "no rules registered for domain TEXTILE", result.Errors[0])
	})

	t.Run("panic in a processor is contained", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("JWLY", &stubProcessor{
			domain: "JWLY",
			process: func(h *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) Result {
				panic("nil map write")
			},
		})
		d := NewDispatcher(registry, nil)

		var result Result
		assert.NotPanics(t, func() {
			result = d.Dispatch(newTestHeader(t, "HERA.JWLY.POS.SALE.TXN.v1"), nil, newTestContext())
		})
		assert.False(t, result.OK())
		assert.Empty(t, result.Entries)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], ErrCodeProcessorFault)
		assert.Contains(t, result.Errors[0], "nil map write")
	})

	t.Run("a faulting transaction does not affect the next one", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("JWLY", &stubProcessor{
			domain: "JWLY",
			process: func(h *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) Result {
				if h.TransactionType == "boom" {
					panic("boom")
				}
				return Result{}
			},
		})
		d := NewDispatcher(registry, nil)

		bad := newTestHeader(t, "HERA.JWLY.POS.SALE.TXN.v1")
		bad.TransactionType = "boom"
		assert.False(t, d.Dispatch(bad, nil, newTestContext()).OK())

		good := newTestHeader(t, "HERA.JWLY.POS.SALE.TXN.v1")
		assert.True(t, d.Dispatch(good, nil, newTestContext()).OK())
	})
}

func TestResult(t *testing.T) {
	t.Run("empty result is ok", func(t *testing.T) {
		var r Result
		assert.True(t, r.OK())
	})

	t.Run("AddError prefixes the code", func(t *testing.T) {
		var r Result
		r.AddError(ErrCodeMissingInput, "line %d: missing %q", 2, "net_weight")
		assert.False(t, r.OK())
		assert.Equal(t, `MISSING_INPUT: line 2: missing "net_weight"`, r.Errors[0])
	})

	t.Run("FailureResult carries no entries", func(t *testing.T) {
		r := FailureResult(ErrCodeProcessorFault, "bad")
		assert.False(t, r.OK())
		assert.Empty(t, r.Entries)
	})
}
