package jewelry

import (
	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/smartcode"
	"github.com/shopspring/decimal"
)

// processOldMetalIntake derives postings for an over-the-counter old-metal
// purchase: each metal line is valued by weight, purity and the day's rate
// and debited into old-metal inventory; the customer payout credits cash
// for the header total.
func (p *Processor) processOldMetalIntake(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
	var res posting.Result
	intakeValue := decimal.Zero

	for _, line := range lines {
		code, err := smartcode.Parse(line.SmartCode)
		if err != nil {
			res.AddError(posting.ErrCodeMalformed, "line %d: %v", line.LineNumber, err)
			continue
		}
		kind, err := classifyLine(code)
		if err != nil {
			res.AddError(posting.ErrCodeUnsupportedSubtype, "%v", err)
			continue
		}

		switch kind {
		case LineMetalWeight:
			value, verr := metalValue(line, fc)
			if verr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", verr)
				continue
			}
			oldMetal, aerr := resolveAccount(fc, RoleOldMetalInventory)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(posting.DebitEntry(oldMetal, value.Amount(), line.SmartCode, line.LineNumber, "old metal intake"))
			intakeValue = intakeValue.Add(value.Amount())

		case LineRounding:
			entries, rerr := roundingEntries(line, fc)
			if rerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", rerr)
				continue
			}
			res.AddEntries(entries...)

		default:
			res.AddError(posting.ErrCodeUnsupportedSubtype,
				"line %d: subtype %s is not valid in an old-metal intake", line.LineNumber, kind)
		}
	}

	cash, err := resolveAccount(fc, RoleCash)
	if err != nil {
		res.AddError(posting.ErrCodeMissingInput, "%v", err)
		return res
	}
	res.AddEntries(posting.CreditEntry(cash, header.TotalAmount, header.SmartCode, 0, "customer payout"))
	return res
}
