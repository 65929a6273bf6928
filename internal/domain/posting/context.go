package posting

import (
	"context"

	"github.com/google/uuid"
	"github.com/hera-erp/core/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DefaultBalanceTolerance is one minor currency unit, the tolerance used
// when a finance context does not carry its own.
var DefaultBalanceTolerance = decimal.NewFromFloat(0.01)

// Account identifies one GL account by code and display name
type Account struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IsZero returns true when the account is unset
func (a Account) IsZero() bool {
	return a.Code == ""
}

// TaxProfile carries the jurisdiction-dependent tax configuration of an
// organization. When the place of supply equals the home jurisdiction the
// tax amount splits 50/50 into the two same-jurisdiction accounts;
// otherwise the full amount posts to the cross-jurisdiction account.
type TaxProfile struct {
	DefaultRate              decimal.Decimal `json:"default_rate"`
	SameJurisdictionAccounts [2]Account      `json:"same_jurisdiction_accounts"`
	CrossJurisdictionAccount Account         `json:"cross_jurisdiction_account"`
}

// FinanceContext is the per-organization configuration consumed by rule
// processors. It is read-only input: processors never mutate it, and
// resolution is strictly keyed by organization id.
type FinanceContext struct {
	OrganizationID   uuid.UUID            `json:"organization_id"`
	BaseCurrency     valueobject.Currency `json:"base_currency"`
	HomeJurisdiction string               `json:"home_jurisdiction"`
	TaxProfile       TaxProfile           `json:"tax_profile"`
	GLAccounts       map[string]Account   `json:"gl_accounts"`
	BalanceTolerance decimal.Decimal      `json:"balance_tolerance"`
}

// Account looks up a GL account by its mapping role
func (c *FinanceContext) Account(role string) (Account, bool) {
	a, ok := c.GLAccounts[role]
	return a, ok
}

// MoneyOf labels a bare amount with the context's base currency, falling
// back to the system default when the context does not set one.
func (c *FinanceContext) MoneyOf(amount decimal.Decimal) valueobject.Money {
	currency := c.BaseCurrency
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	money, _ := valueobject.NewMoney(amount, currency)
	return money
}

// Tolerance returns the balance tolerance, falling back to the default of
// one minor unit when the context does not set one
func (c *FinanceContext) Tolerance() decimal.Decimal {
	if c.BalanceTolerance.IsPositive() {
		return c.BalanceTolerance
	}
	return DefaultBalanceTolerance
}

// ContextResolver supplies the finance context for an organization. The
// implementation lives outside this package (an organization configuration
// service); processors only ever see the resolved value.
type ContextResolver interface {
	Resolve(ctx context.Context, orgID uuid.UUID) (*FinanceContext, error)
}
