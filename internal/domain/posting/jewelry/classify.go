package jewelry

import (
	"fmt"

	"github.com/hera-erp/core/internal/domain/smartcode"
)

// TransactionKind enumerates the transaction subtypes this pack handles.
// A header is classified by the exact module and function segments of its
// smart code, decoded once at the boundary; anything unrecognized is
// rejected deterministically.
type TransactionKind string

const (
	KindRetailSale      TransactionKind = "RETAIL_SALE"       // POS.SALE
	KindOldMetalIntake  TransactionKind = "OLD_METAL_INTAKE"  // POS.EXCHANGE
	KindJobWorkIssue    TransactionKind = "JOBWORK_ISSUE"     // JOBWORK.ISSUE
	KindJobWorkReceipt  TransactionKind = "JOBWORK_RECEIPT"   // JOBWORK.RECEIPT
	KindMeltReconcile   TransactionKind = "MELT_RECONCILE"    // MELT.RECONCILE
)

// classifyTransaction decodes the header subtype from exact segments
func classifyTransaction(code smartcode.Code) (TransactionKind, error) {
	switch {
	case code.Module() == "POS" && code.Function() == "SALE":
		return KindRetailSale, nil
	case code.Module() == "POS" && code.Function() == "EXCHANGE":
		return KindOldMetalIntake, nil
	case code.Module() == "JOBWORK" && code.Function() == "ISSUE":
		return KindJobWorkIssue, nil
	case code.Module() == "JOBWORK" && code.Function() == "RECEIPT":
		return KindJobWorkReceipt, nil
	case code.Module() == "MELT" && code.Function() == "RECONCILE":
		return KindMeltReconcile, nil
	}
	return "", fmt.Errorf("unhandled transaction subtype %s.%s in %q", code.Module(), code.Function(), code.String())
}

// LineKind enumerates the line subtypes this pack handles
type LineKind string

const (
	LineRetailItem  LineKind = "RETAIL_ITEM"  // ...ITEM.RETAIL.vN
	LineMaking      LineKind = "MAKING"       // ...CHARGE.MAKING.vN
	LineGemstone    LineKind = "GEMSTONE"     // ...VALUE.GEMSTONE.vN
	LineTax         LineKind = "TAX"          // ...TAX.GST.vN
	LineOldMetal    LineKind = "OLD_METAL"    // ...EXCHANGE.OLDMETAL.vN
	LineRounding    LineKind = "ROUNDING"     // ...ADJUST.ROUNDING.vN
	LineMetalWeight LineKind = "METAL_WEIGHT" // ...ITEM.METAL.vN (intake, job work, melt)
)

// classifyLine decodes a line's subtype by exact-segment suffix matching
// anchored before the version literal. A code ending ...ITEM.RETAIL.OLD.v1
// does not match the retail item suffix.
func classifyLine(code smartcode.Code) (LineKind, error) {
	switch {
	case code.MatchesSuffix("ITEM", "RETAIL"):
		return LineRetailItem, nil
	case code.MatchesSuffix("CHARGE", "MAKING"):
		return LineMaking, nil
	case code.MatchesSuffix("VALUE", "GEMSTONE"):
		return LineGemstone, nil
	case code.MatchesSuffix("TAX", "GST"):
		return LineTax, nil
	case code.MatchesSuffix("EXCHANGE", "OLDMETAL"):
		return LineOldMetal, nil
	case code.MatchesSuffix("ADJUST", "ROUNDING"):
		return LineRounding, nil
	case code.MatchesSuffix("ITEM", "METAL"):
		return LineMetalWeight, nil
	}
	return "", fmt.Errorf("unhandled line subtype in %q", code.String())
}
