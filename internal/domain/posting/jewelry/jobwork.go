package jewelry

import (
	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/smartcode"
	"github.com/shopspring/decimal"
)

// processJobWorkIssue derives postings for raw metal issued to an artisan:
// each metal line moves its value out of metal inventory into job-work
// work-in-progress, one matched debit/credit pair per line.
func (p *Processor) processJobWorkIssue(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
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
				"line %d: subtype %s is not valid in a job-work issue", line.LineNumber, kind)
			continue
		}

		value, verr := metalValue(line, fc)
		if verr != nil {
			res.AddError(posting.ErrCodeMissingInput, "%v", verr)
			continue
		}
		wip, aerr := resolveAccount(fc, RoleJobWorkWIP)
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
			posting.DebitEntry(wip, value.Amount(), line.SmartCode, line.LineNumber, "metal issued to job work"),
			posting.CreditEntry(inventory, value.Amount(), line.SmartCode, line.LineNumber, "metal issued to job work"),
		)
	}
	return res
}

// processJobWorkReceipt derives postings for finished goods received back
// from an artisan: metal value moves from work-in-progress into finished
// inventory, and making charges capitalize into finished inventory against
// the cash paid out.
func (p *Processor) processJobWorkReceipt(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
	var res posting.Result
	metalValueSoFar := decimal.Zero

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
			finished, aerr := resolveAccount(fc, RoleFinishedInventory)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			wip, aerr := resolveAccount(fc, RoleJobWorkWIP)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(
				posting.DebitEntry(finished, value.Amount(), line.SmartCode, line.LineNumber, "finished goods received"),
				posting.CreditEntry(wip, value.Amount(), line.SmartCode, line.LineNumber, "finished goods received"),
			)
			metalValueSoFar = metalValueSoFar.Add(value.Amount())

		case LineMaking:
			charge, cerr := laborCharge(line, metalValueSoFar)
			if cerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", cerr)
				continue
			}
			finished, aerr := resolveAccount(fc, RoleFinishedInventory)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			cash, aerr := resolveAccount(fc, RoleCash)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(
				posting.DebitEntry(finished, charge, line.SmartCode, line.LineNumber, "making charge capitalized"),
				posting.CreditEntry(cash, charge, line.SmartCode, line.LineNumber, "making charge paid"),
			)

		default:
			res.AddError(posting.ErrCodeUnsupportedSubtype,
				"line %d: subtype %s is not valid in a job-work receipt", line.LineNumber, kind)
		}
	}
	return res
}
