package jewelry

import (
	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/smartcode"
)

// processMeltReconcile derives postings for a melt/scrap reconciliation.
// Each metal line carries the book value of the item melted down and the
// weight, purity and rate of what was recovered. Recovered value moves
// into scrap inventory against the book value relieved from metal
// inventory; the difference posts to the melt gain account when positive
// and the melt loss account when negative. The two paths are mutually
// exclusive - an exact match emits neither.
func (p *Processor) processMeltReconcile(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
	var res posting.Result

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

		if kind != LineMetalWeight {
			res.AddError(posting.ErrCodeUnsupportedSubtype,
				"line %d: subtype %s is not valid in a melt reconciliation", line.LineNumber, kind)
			continue
		}

		recovered, verr := metalValue(line, fc)
		if verr != nil {
			res.AddError(posting.ErrCodeMissingInput, "%v", verr)
			continue
		}
		book, berr := requiredDecimal(line.Payload, payloadBookValue, line.LineNumber)
		if berr != nil {
			res.AddError(posting.ErrCodeMissingInput, "%v", berr)
			continue
		}

		scrap, aerr := resolveAccount(fc, RoleScrapInventory)
		if aerr != nil {
			res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
			continue
		}
		inventory, aerr := resolveAccount(fc, RoleMetalInventory)
		if aerr != nil {
			res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
			continue
		}

		res.AddEntries(
			posting.DebitEntry(scrap, recovered.Amount(), line.SmartCode, line.LineNumber, "recovered scrap value"),
			posting.CreditEntry(inventory, book, line.SmartCode, line.LineNumber, "book value relieved"),
		)

		diff := recovered.Amount().Sub(book)
		switch {
		case diff.IsPositive():
			gain, gerr := resolveAccount(fc, RoleMeltGain)
			if gerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", gerr)
				continue
			}
			res.AddEntries(posting.CreditEntry(gain, diff, line.SmartCode, line.LineNumber, "melt gain"))
		case diff.IsNegative():
			loss, lerr := resolveAccount(fc, RoleMeltLoss)
			if lerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", lerr)
				continue
			}
			res.AddEntries(posting.DebitEntry(loss, diff.Abs(), line.SmartCode, line.LineNumber, "melt loss"))
		}
	}
	return res
}
