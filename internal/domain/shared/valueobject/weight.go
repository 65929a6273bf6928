package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PureKarat is the karat value of pure metal. Purity expressed in karat is
// converted to a factor as karat/24.
const PureKarat = 24

// Weight is a value object representing a net metal weight in grams together
// with its purity. Purity is carried as a factor in (0, 1]; the karat form is
// a convenience for the common jewelry case.
// It is immutable - all operations return new Weight instances.
type Weight struct {
	grams  decimal.Decimal
	purity decimal.Decimal
}

// NewWeight creates a Weight from net grams and an explicit purity factor
func NewWeight(grams, purity decimal.Decimal) (Weight, error) {
	if grams.IsNegative() {
		return Weight{}, errors.New("weight cannot be negative")
	}
	if !purity.IsPositive() || purity.GreaterThan(decimal.NewFromInt(1)) {
		return Weight{}, fmt.Errorf("purity factor must be in (0, 1], got %s", purity)
	}
	return Weight{grams: grams, purity: purity}, nil
}

// NewWeightFromKarat creates a Weight from net grams and a karat purity
func NewWeightFromKarat(grams decimal.Decimal, karat decimal.Decimal) (Weight, error) {
	if !karat.IsPositive() || karat.GreaterThan(decimal.NewFromInt(PureKarat)) {
		return Weight{}, fmt.Errorf("karat must be in (0, %d], got %s", PureKarat, karat)
	}
	return NewWeight(grams, karat.Div(decimal.NewFromInt(PureKarat)))
}

// Grams returns the net weight in grams
func (w Weight) Grams() decimal.Decimal {
	return w.grams
}

// Purity returns the purity factor
func (w Weight) Purity() decimal.Decimal {
	return w.purity
}

// FineGrams returns the pure-metal weight (net grams scaled by purity)
func (w Weight) FineGrams() decimal.Decimal {
	return w.grams.Mul(w.purity)
}

// ValueAt returns the metal value at the given rate per gram:
// net weight x purity factor x rate.
func (w Weight) ValueAt(ratePerGram Money) Money {
	return ratePerGram.Multiply(w.FineGrams())
}

// IsZero returns true if the net weight is zero
func (w Weight) IsZero() bool {
	return w.grams.IsZero()
}

// String returns a string representation of the Weight
func (w Weight) String() string {
	return fmt.Sprintf("%s g @ %s", w.grams.String(), w.purity.String())
}
