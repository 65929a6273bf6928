package posting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hera-erp/core/internal/domain/shared/valueobject"
)

func TestFinanceContextMoneyOf(t *testing.T) {
	t.Run("labels the amount with the base currency", func(t *testing.T) {
		fc := &FinanceContext{BaseCurrency: valueobject.AED}
		m := fc.MoneyOf(decimal.NewFromFloat(1585.01))

		assert.Equal(t, valueobject.AED, m.Currency())
		assert.Equal(t, "1585.01", m.Amount().StringFixed(2))
	})

	t.Run("falls back to the default currency when unset", func(t *testing.T) {
		fc := &FinanceContext{}
		m := fc.MoneyOf(decimal.NewFromInt(100))

		assert.Equal(t, valueobject.DefaultCurrency, m.Currency())
	})

	t.Run("split halves sum back to the original amount", func(t *testing.T) {
		fc := &FinanceContext{BaseCurrency: valueobject.INR}
		first, second := fc.MoneyOf(decimal.NewFromFloat(1585.01)).Split()

		assert.Equal(t, "792.51", first.Amount().StringFixed(2))
		assert.Equal(t, "792.50", second.Amount().StringFixed(2))
		assert.Equal(t, "1585.01", first.MustAdd(second).Amount().StringFixed(2))
	})
}
