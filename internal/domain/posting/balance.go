package posting

import (
	"github.com/shopspring/decimal"
)

// BalanceResult is the outcome of checking debit/credit symmetry over one
// transaction's GL entry set
type BalanceResult struct {
	IsBalanced  bool            `json:"is_balanced"`
	Difference  decimal.Decimal `json:"difference"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// ValidateBalance sums the debit and credit columns independently and
// compares the absolute difference against the tolerance. A non-positive
// tolerance falls back to one minor unit. Callers must treat an unbalanced
// result as "do not post".
func ValidateBalance(entries []GLEntry, tolerance decimal.Decimal) BalanceResult {
	if !tolerance.IsPositive() {
		tolerance = DefaultBalanceTolerance
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	diff := totalDebit.Sub(totalCredit)
	return BalanceResult{
		IsBalanced:  diff.Abs().LessThanOrEqual(tolerance),
		Difference:  diff,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}
}

// ValidateBalanceFor validates entries using the tolerance carried by the
// finance context
func ValidateBalanceFor(entries []GLEntry, fc *FinanceContext) BalanceResult {
	return ValidateBalance(entries, fc.Tolerance())
}
