package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	m, err := NewMoneyFromFloat(99.99, USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.99)))
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", INR)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", INR)
		assert.Error(t, err)
	})
}

func TestNewMoneyINR(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromFloat(50.00))
	assert.Equal(t, INR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestNewMoneyINRFromFloat(t *testing.T) {
	m := NewMoneyINRFromFloat(75.50)
	assert.Equal(t, INR, m.Currency())
	assert.Equal(t, 75.5, m.Float64())
}

func TestZero(t *testing.T) {
	m := Zero(USD)
	assert.True(t, m.IsZero())
	assert.Equal(t, USD, m.Currency())
}

func TestZeroINR(t *testing.T) {
	m := ZeroINR()
	assert.True(t, m.IsZero())
	assert.Equal(t, INR, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b := NewMoneyINRFromFloat(50.25)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "150.25", sum.StringFixed(2))
	})

	t.Run("rejects different currencies", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b, _ := NewMoneyFromFloat(100, USD)
		_, err := a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneyMustAdd(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		sum := NewMoneyINRFromFloat(1).MustAdd(NewMoneyINRFromFloat(2))
		assert.Equal(t, "3.00", sum.StringFixed(2))
	})

	t.Run("panics on currency mismatch", func(t *testing.T) {
		usd, _ := NewMoneyFromFloat(1, USD)
		assert.Panics(t, func() {
			NewMoneyINRFromFloat(1).MustAdd(usd)
		})
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("subtracts same currency", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b := NewMoneyINRFromFloat(30.50)
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "69.50", diff.StringFixed(2))
	})

	t.Run("rejects different currencies", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b, _ := NewMoneyFromFloat(30, EUR)
		_, err := a.Subtract(b)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyINRFromFloat(10).Multiply(decimal.NewFromFloat(2.5))
	assert.Equal(t, "25.00", m.StringFixed(2))
}

func TestMoneyDivide(t *testing.T) {
	t.Run("divides", func(t *testing.T) {
		m, err := NewMoneyINRFromFloat(100).Divide(decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.Equal(t, "25.00", m.StringFixed(2))
	})

	t.Run("rejects zero divisor", func(t *testing.T) {
		_, err := NewMoneyINRFromFloat(100).Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoneySigns(t *testing.T) {
	m := NewMoneyINRFromFloat(-42)
	assert.True(t, m.IsNegative())
	assert.False(t, m.IsPositive())
	assert.True(t, m.Negate().IsPositive())
	assert.Equal(t, "42.00", m.Abs().StringFixed(2))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoneyINRFromFloat(10.456)
	assert.Equal(t, "10.46", m.Round(2).StringFixed(2))
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyINRFromFloat(10)
	b := NewMoneyINRFromFloat(20)

	t.Run("equals", func(t *testing.T) {
		assert.True(t, a.Equals(NewMoneyINRFromFloat(10)))
		assert.False(t, a.Equals(b))
		usd, _ := NewMoneyFromFloat(10, USD)
		assert.False(t, a.Equals(usd), "same amount, different currency")
	})

	t.Run("less and greater", func(t *testing.T) {
		less, err := a.LessThan(b)
		require.NoError(t, err)
		assert.True(t, less)

		greater, err := b.GreaterThan(a)
		require.NoError(t, err)
		assert.True(t, greater)
	})

	t.Run("comparison rejects different currencies", func(t *testing.T) {
		usd, _ := NewMoneyFromFloat(10, USD)
		_, err := a.LessThan(usd)
		assert.Error(t, err)
	})
}

func TestMoneySplit(t *testing.T) {
	t.Run("even amount splits equally", func(t *testing.T) {
		first, second := NewMoneyINRFromFloat(100).Split()
		assert.Equal(t, "50.00", first.StringFixed(2))
		assert.Equal(t, "50.00", second.StringFixed(2))
	})

	t.Run("odd minor unit lands in the first half", func(t *testing.T) {
		first, second := NewMoneyINRFromFloat(1585.01).Split()
		assert.Equal(t, "792.51", first.StringFixed(2))
		assert.Equal(t, "792.50", second.StringFixed(2))

		total := first.MustAdd(second)
		assert.Equal(t, "1585.01", total.StringFixed(2), "halves sum back exactly")
	})
}

func TestMoneyCalculatePercentage(t *testing.T) {
	m := NewMoneyINRFromFloat(200).CalculatePercentage(decimal.NewFromFloat(3))
	assert.Equal(t, "6.00", m.StringFixed(2))
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyINRFromFloat(1234.5)
	assert.Equal(t, "1234.50 INR", m.String())
	assert.Equal(t, "1234.50", m.StringFixed(2))
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(NewMoneyINRFromFloat(99.99))
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":"99.99","currency":"INR"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"45833.33","currency":"INR"}`), &m))
		assert.Equal(t, "45833.33", m.StringFixed(2))
		assert.Equal(t, INR, m.Currency())
	})

	t.Run("unmarshal rejects invalid amount", func(t *testing.T) {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(`{"amount":"abc","currency":"INR"}`), &m))
	})
}

func TestMoneyScanValue(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		v, err := NewMoneyINRFromFloat(42.42).Value()
		require.NoError(t, err)
		assert.Equal(t, "42.42", v)
	})

	t.Run("scan string", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.42"))
		assert.Equal(t, "42.42", m.StringFixed(2))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scan bytes", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan([]byte("10.01")))
		assert.Equal(t, "10.01", m.StringFixed(2))
	})

	t.Run("scan nil is zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("scan rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
