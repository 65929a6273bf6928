package jewelry

import (
	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/smartcode"
)

// Processor is the rule processor for the JWLY domain. It is stateless and
// pure: all inputs arrive as arguments, all outputs leave in the Result.
type Processor struct{}

// NewProcessor creates the jewelry rule processor
func NewProcessor() *Processor {
	return &Processor{}
}

// Domain returns the smart-code domain segment this processor handles
func (p *Processor) Domain() string {
	return Domain
}

// Process classifies the header by its smart-code subtype and walks every
// line exactly once, in the order supplied. An unrecognized line subtype
// yields an error for that line while its siblings still process.
func (p *Processor) Process(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
	code, err := smartcode.Parse(header.SmartCode)
	if err != nil {
		return posting.FailureResult(posting.ErrCodeMalformed, "%v", err)
	}

	kind, err := classifyTransaction(code)
	if err != nil {
		return posting.FailureResult(posting.ErrCodeUnsupportedSubtype, "%v", err)
	}

	switch kind {
	case KindRetailSale:
		return p.processRetailSale(header, lines, fc)
	case KindOldMetalIntake:
		return p.processOldMetalIntake(header, lines, fc)
	case KindJobWorkIssue:
		return p.processJobWorkIssue(header, lines, fc)
	case KindJobWorkReceipt:
		return p.processJobWorkReceipt(header, lines, fc)
	case KindMeltReconcile:
		return p.processMeltReconcile(header, lines, fc)
	}
	return posting.FailureResult(posting.ErrCodeUnsupportedSubtype, "unhandled transaction kind %s", kind)
}
