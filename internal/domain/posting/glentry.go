package posting

import (
	"github.com/shopspring/decimal"
)

// GLEntry is one side of a double-entry ledger posting derived from a
// transaction line. Entries are transient: the caller owns persisting and
// posting them to a ledger.
type GLEntry struct {
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	SmartCode     string          `json:"smart_code"`
	LineReference int             `json:"line_reference"`
	Description   string          `json:"description,omitempty"`
}

// DebitEntry creates a debit-side entry against the given account
func DebitEntry(account Account, amount decimal.Decimal, smartCode string, lineNumber int, description string) GLEntry {
	return GLEntry{
		AccountCode:   account.Code,
		AccountName:   account.Name,
		Debit:         amount,
		Credit:        decimal.Zero,
		SmartCode:     smartCode,
		LineReference: lineNumber,
		Description:   description,
	}
}

// CreditEntry creates a credit-side entry against the given account
func CreditEntry(account Account, amount decimal.Decimal, smartCode string, lineNumber int, description string) GLEntry {
	return GLEntry{
		AccountCode:   account.Code,
		AccountName:   account.Name,
		Debit:         decimal.Zero,
		Credit:        amount,
		SmartCode:     smartCode,
		LineReference: lineNumber,
		Description:   description,
	}
}
