package jewelry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/smartcode"
)

func TestClassifyTransaction(t *testing.T) {
	cases := []struct {
		code string
		kind TransactionKind
	}{
		{"HERA.JWLY.POS.SALE.TXN.v1", KindRetailSale},
		{"HERA.JWLY.POS.EXCHANGE.TXN.v1", KindOldMetalIntake},
		{"HERA.JWLY.JOBWORK.ISSUE.TXN.v1", KindJobWorkIssue},
		{"HERA.JWLY.JOBWORK.RECEIPT.TXN.v1", KindJobWorkReceipt},
		{"HERA.JWLY.MELT.RECONCILE.TXN.v1", KindMeltReconcile},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			kind, err := classifyTransaction(smartcode.MustParse(tc.code))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, kind)
		})
	}

	t.Run("unknown subtype is rejected", func(t *testing.T) {
		_, err := classifyTransaction(smartcode.MustParse("HERA.JWLY.POS.REFUND.TXN.v1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POS.REFUND")
	})

	t.Run("module and function match exact segments only", func(t *testing.T) {
		_, err := classifyTransaction(smartcode.MustParse("HERA.JWLY.POSX.SALE.TXN.v1"))
		assert.Error(t, err)
	})
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		code string
		kind LineKind
	}{
		{"HERA.JWLY.POS.SALE.LINE.ITEM.RETAIL.v1", LineRetailItem},
		{"HERA.JWLY.POS.SALE.LINE.CHARGE.MAKING.v1", LineMaking},
		{"HERA.JWLY.POS.SALE.LINE.VALUE.GEMSTONE.v1", LineGemstone},
		{"HERA.JWLY.POS.SALE.LINE.TAX.GST.v1", LineTax},
		{"HERA.JWLY.POS.SALE.LINE.EXCHANGE.OLDMETAL.v1", LineOldMetal},
		{"HERA.JWLY.POS.SALE.LINE.ADJUST.ROUNDING.v1", LineRounding},
		{"HERA.JWLY.MELT.RECONCILE.LINE.ITEM.METAL.v1", LineMetalWeight},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			kind, err := classifyLine(smartcode.MustParse(tc.code))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, kind)
		})
	}

	t.Run("suffix is anchored before the version", func(t *testing.T) {
		_, err := classifyLine(smartcode.MustParse("HERA.JWLY.POS.SALE.LINE.ITEM.RETAIL.OLD.v1"))
		assert.Error(t, err)
	})

	t.Run("unknown line subtype is rejected with the code in the message", func(t *testing.T) {
		_, err := classifyLine(smartcode.MustParse("HERA.JWLY.POS.SALE.LINE.FREIGHT.MISC.v1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HERA.JWLY.POS.SALE.LINE.FREIGHT.MISC.v1")
	})
}
