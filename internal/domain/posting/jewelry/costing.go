package jewelry

import (
	"fmt"

	"github.com/hera-erp/core/internal/domain/core"
	"github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ChargeType selects how a making/labor charge is computed. The tag is
// explicit in the line payload - it is never inferred from which amount
// fields happen to be present.
type ChargeType string

const (
	ChargePerGram ChargeType = "PER_GRAM" // charge rate x net weight
	ChargeFixed   ChargeType = "FIXED"    // flat amount
	ChargePercent ChargeType = "PERCENT"  // percentage of accumulated metal value
)

// IsValid checks if the charge type is a valid ChargeType
func (t ChargeType) IsValid() bool {
	switch t {
	case ChargePerGram, ChargeFixed, ChargePercent:
		return true
	}
	return false
}

// payloadDecimal reads a numeric payload value. JSON round-trips hand us
// float64 or string; direct construction may hand us decimal.Decimal.
func payloadDecimal(payload map[string]any, key string) (decimal.Decimal, bool) {
	raw, ok := payload[key]
	if !ok {
		return decimal.Zero, false
	}
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

// payloadString reads a string payload value
func payloadString(payload map[string]any, key string) (string, bool) {
	raw, ok := payload[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// requiredDecimal reads a numeric payload value, erroring on absence.
// Missing market inputs are a validation failure - a silently substituted
// rate could materially misstate a posting.
func requiredDecimal(payload map[string]any, key string, lineNumber int) (decimal.Decimal, error) {
	d, ok := payloadDecimal(payload, key)
	if !ok {
		return decimal.Zero, fmt.Errorf("line %d: required field %q is missing or not numeric", lineNumber, key)
	}
	return d, nil
}

// lineWeight builds the Weight value object from a line payload. Purity is
// taken from the explicit purity factor when present, otherwise from the
// karat value; one of the two is required.
func lineWeight(line core.TransactionLine) (valueobject.Weight, error) {
	grams, err := requiredDecimal(line.Payload, payloadNetWeight, line.LineNumber)
	if err != nil {
		return valueobject.Weight{}, err
	}
	if factor, ok := payloadDecimal(line.Payload, payloadPurityFactor); ok {
		w, werr := valueobject.NewWeight(grams, factor)
		if werr != nil {
			return valueobject.Weight{}, fmt.Errorf("line %d: %w", line.LineNumber, werr)
		}
		return w, nil
	}
	karat, ok := payloadDecimal(line.Payload, payloadPurityKarat)
	if !ok {
		return valueobject.Weight{}, fmt.Errorf("line %d: one of %q or %q is required", line.LineNumber, payloadPurityFactor, payloadPurityKarat)
	}
	w, werr := valueobject.NewWeightFromKarat(grams, karat)
	if werr != nil {
		return valueobject.Weight{}, fmt.Errorf("line %d: %w", line.LineNumber, werr)
	}
	return w, nil
}

// metalValue computes net weight x purity factor x rate per gram for a
// line that carries weight, purity and rate in its payload, valued in the
// organization's base currency
func metalValue(line core.TransactionLine, fc *posting.FinanceContext) (valueobject.Money, error) {
	w, err := lineWeight(line)
	if err != nil {
		return valueobject.Money{}, err
	}
	rate, err := requiredDecimal(line.Payload, payloadRatePerGram, line.LineNumber)
	if err != nil {
		return valueobject.Money{}, err
	}
	return w.ValueAt(fc.MoneyOf(rate)).Round(2), nil
}

// laborCharge computes a making/labor charge according to the explicit
// charge-type tag. metalValueSoFar is the running metal value accumulated
// from earlier lines, used by the percentage variant.
func laborCharge(line core.TransactionLine, metalValueSoFar decimal.Decimal) (decimal.Decimal, error) {
	tag, ok := payloadString(line.Payload, payloadChargeType)
	if !ok {
		return decimal.Zero, fmt.Errorf("line %d: required field %q is missing", line.LineNumber, payloadChargeType)
	}
	chargeType := ChargeType(tag)

	switch chargeType {
	case ChargePerGram:
		rate, err := requiredDecimal(line.Payload, payloadChargeRate, line.LineNumber)
		if err != nil {
			return decimal.Zero, err
		}
		grams, err := requiredDecimal(line.Payload, payloadNetWeight, line.LineNumber)
		if err != nil {
			return decimal.Zero, err
		}
		return rate.Mul(grams).Round(2), nil
	case ChargeFixed:
		amount, err := requiredDecimal(line.Payload, payloadChargeAmount, line.LineNumber)
		if err != nil {
			return decimal.Zero, err
		}
		return amount.Round(2), nil
	case ChargePercent:
		pct, err := requiredDecimal(line.Payload, payloadChargePct, line.LineNumber)
		if err != nil {
			return decimal.Zero, err
		}
		return metalValueSoFar.Mul(pct).Div(decimal.NewFromInt(100)).Round(2), nil
	}
	return decimal.Zero, fmt.Errorf("line %d: unknown charge type %q", line.LineNumber, tag)
}
