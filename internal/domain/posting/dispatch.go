package posting

import (
	"fmt"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/smartcode"
	"go.uber.org/zap"
)

// Dispatcher routes a transaction to the rule processor registered for its
// smart-code domain. Its Dispatch method never panics and never returns a
// Go error: every failure mode lands in Result.Errors so that a fault in
// one transaction can never affect another in flight.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher over the given registry
func NewDispatcher(registry *Registry, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch parses the header's smart code, resolves the processor for its
// domain segment and runs it. A malformed code fails closed before any
// dispatch; an unregistered domain yields an explicit message, never a
// silent no-op success; a panic inside a processor is contained at this
// boundary, the transaction's GL output discarded.
func (d *Dispatcher) Dispatch(header *core.TransactionHeader, lines []core.TransactionLine, fc *FinanceContext) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("rule processor panicked",
				zap.String("smart_code", header.SmartCode),
				zap.String("organization_id", header.OrganizationID.String()),
				zap.Any("panic", rec),
			)
			result = FailureResult(ErrCodeProcessorFault,
				"processor for %q panicked: %v", header.SmartCode, rec)
		}
	}()

	code, err := smartcode.Parse(header.SmartCode)
	if err != nil {
		return FailureResult(ErrCodeMalformed, "%v", err)
	}

	processor, ok := d.registry.Lookup(code.Domain())
	if !ok {
		return Result{
			Entries: []GLEntry{},
			Errors:  []string{fmt.Sprintf("no rules registered for domain %s", code.Domain())},
		}
	}

	result = processor.Process(header, lines, fc)
	if len(result.Errors) > 0 {
		d.logger.Warn("rule processor reported errors",
			zap.String("smart_code", header.SmartCode),
			zap.String("domain", code.Domain()),
			zap.Strings("errors", result.Errors),
		)
	}
	return result
}
