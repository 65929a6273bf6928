package jewelry

import (
	"fmt"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/smartcode"
	"github.com/shopspring/decimal"
)

// resolveAccount looks up a GL account mapping role, erroring when the
// organization's context has no account for it
func resolveAccount(fc *posting.FinanceContext, role string) (posting.Account, error) {
	a, ok := fc.Account(role)
	if !ok || a.IsZero() {
		return posting.Account{}, fmt.Errorf("no GL account mapped for role %q", role)
	}
	return a, nil
}

// processRetailSale derives postings for a point-of-sale retail sale.
// Revenue, tax and adjustment lines emit credits as they are walked; the
// old-metal exchange value accumulates as a running total, and the final
// cash/bank debit is the header total minus that adjustment.
func (p *Processor) processRetailSale(header *core.TransactionHeader, lines []core.TransactionLine, fc *posting.FinanceContext) posting.Result {
	var res posting.Result
	metalValueSoFar := decimal.Zero
	oldMetalValue := decimal.Zero

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
		case LineRetailItem:
			value, verr := metalValue(line, fc)
			if verr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", verr)
				continue
			}
			revenue, aerr := resolveAccount(fc, RoleSalesRevenue)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(posting.CreditEntry(revenue, value.Amount(), line.SmartCode, line.LineNumber, "metal value"))
			metalValueSoFar = metalValueSoFar.Add(value.Amount())

			// An item line may carry its own making charge alongside the
			// metal inputs. The charge-type tag is still required.
			if _, tagged := payloadString(line.Payload, payloadChargeType); tagged {
				charge, cerr := laborCharge(line, metalValueSoFar)
				if cerr != nil {
					res.AddError(posting.ErrCodeMissingInput, "%v", cerr)
					continue
				}
				making, aerr := resolveAccount(fc, RoleMakingCharges)
				if aerr != nil {
					res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
					continue
				}
				res.AddEntries(posting.CreditEntry(making, charge, line.SmartCode, line.LineNumber, "making charge"))
			}

		case LineMaking:
			charge, cerr := laborCharge(line, metalValueSoFar)
			if cerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", cerr)
				continue
			}
			making, aerr := resolveAccount(fc, RoleMakingCharges)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(posting.CreditEntry(making, charge, line.SmartCode, line.LineNumber, "making charge"))

		case LineGemstone:
			gemstone, aerr := resolveAccount(fc, RoleGemstoneRevenue)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(posting.CreditEntry(gemstone, line.LineAmount, line.SmartCode, line.LineNumber, "gemstone value"))

		case LineTax:
			entries, terr := taxEntries(header, line, fc)
			if terr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", terr)
				continue
			}
			res.AddEntries(entries...)

		case LineOldMetal:
			oldMetal, aerr := resolveAccount(fc, RoleOldMetalInventory)
			if aerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", aerr)
				continue
			}
			res.AddEntries(posting.DebitEntry(oldMetal, line.LineAmount, line.SmartCode, line.LineNumber, "old metal exchange"))
			oldMetalValue = oldMetalValue.Add(line.LineAmount)

		case LineRounding:
			entries, rerr := roundingEntries(line, fc)
			if rerr != nil {
				res.AddError(posting.ErrCodeMissingInput, "%v", rerr)
				continue
			}
			res.AddEntries(entries...)

		default:
			res.AddError(posting.ErrCodeUnsupportedSubtype,
				"line %d: subtype %s is not valid in a retail sale", line.LineNumber, kind)
		}
	}

	cash, err := resolveAccount(fc, RoleCash)
	if err != nil {
		res.AddError(posting.ErrCodeMissingInput, "%v", err)
		return res
	}
	cashAmount := header.TotalAmount.Sub(oldMetalValue)
	res.AddEntries(posting.DebitEntry(cash, cashAmount, header.SmartCode, 0, "cash/bank settlement"))
	return res
}

// taxEntries splits a tax line by jurisdiction. Place of supply equal to
// the organization's home jurisdiction splits the amount 50/50 into the
// two same-jurisdiction accounts; anything else posts the full amount to
// the single cross-jurisdiction account. Place of supply is required input
// whenever a tax line is present.
func taxEntries(header *core.TransactionHeader, line core.TransactionLine, fc *posting.FinanceContext) ([]posting.GLEntry, error) {
	placeOfSupply, ok := payloadString(header.Metadata, metadataPlaceOfSupply)
	if !ok || placeOfSupply == "" {
		return nil, fmt.Errorf("line %d: header metadata %q is required for tax posting", line.LineNumber, metadataPlaceOfSupply)
	}

	if placeOfSupply == fc.HomeJurisdiction {
		first := fc.TaxProfile.SameJurisdictionAccounts[0]
		second := fc.TaxProfile.SameJurisdictionAccounts[1]
		if first.IsZero() || second.IsZero() {
			return nil, fmt.Errorf("line %d: same-jurisdiction tax accounts are not configured", line.LineNumber)
		}
		// Money.Split lands any odd minor unit in the first half so the
		// two halves always sum back to the line amount.
		firstHalf, secondHalf := fc.MoneyOf(line.LineAmount).Split()
		return []posting.GLEntry{
			posting.CreditEntry(first, firstHalf.Amount(), line.SmartCode, line.LineNumber, "tax, same jurisdiction"),
			posting.CreditEntry(second, secondHalf.Amount(), line.SmartCode, line.LineNumber, "tax, same jurisdiction"),
		}, nil
	}

	cross := fc.TaxProfile.CrossJurisdictionAccount
	if cross.IsZero() {
		return nil, fmt.Errorf("line %d: cross-jurisdiction tax account is not configured", line.LineNumber)
	}
	return []posting.GLEntry{
		posting.CreditEntry(cross, line.LineAmount, line.SmartCode, line.LineNumber, "tax, cross jurisdiction"),
	}, nil
}

// roundingEntries posts a rounding adjustment to the dedicated gain or
// loss account depending on sign. Adjustments are never netted into
// another line; a zero adjustment emits nothing.
func roundingEntries(line core.TransactionLine, fc *posting.FinanceContext) ([]posting.GLEntry, error) {
	switch {
	case line.LineAmount.IsPositive():
		gain, err := resolveAccount(fc, RoleRoundingGain)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.LineNumber, err)
		}
		return []posting.GLEntry{
			posting.CreditEntry(gain, line.LineAmount, line.SmartCode, line.LineNumber, "rounding gain"),
		}, nil
	case line.LineAmount.IsNegative():
		loss, err := resolveAccount(fc, RoleRoundingLoss)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.LineNumber, err)
		}
		return []posting.GLEntry{
			posting.DebitEntry(loss, line.LineAmount.Abs(), line.SmartCode, line.LineNumber, "rounding loss"),
		}, nil
	}
	return nil, nil
}
