package posting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hera-erp/core/internal/domain/core"
	domainposting "github.com/hera-erp/core/internal/domain/posting"
	"github.com/hera-erp/core/internal/domain/posting/jewelry"
	"github.com/hera-erp/core/internal/domain/shared"
	"github.com/hera-erp/core/internal/domain/shared/valueobject"
)

// memTxRepo holds one transaction for derivation tests
type memTxRepo struct {
	header *core.TransactionHeader
	lines  []core.TransactionLine
}

func (r *memTxRepo) FindHeaderByID(_ context.Context, orgID, id uuid.UUID) (*core.TransactionHeader, error) {
	if r.header != nil && r.header.ID == id && r.header.OrganizationID == orgID {
		return r.header, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memTxRepo) SaveHeader(_ context.Context, header *core.TransactionHeader) error {
	r.header = header
	return nil
}

func (r *memTxRepo) SaveLine(_ context.Context, line *core.TransactionLine) error {
	r.lines = append(r.lines, *line)
	return nil
}

func (r *memTxRepo) FindLines(_ context.Context, orgID, _ uuid.UUID) ([]core.TransactionLine, error) {
	var out []core.TransactionLine
	for _, l := range r.lines {
		if l.OrganizationID == orgID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memTxRepo) FindHeadersForOrg(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]core.TransactionHeader, error) {
	if r.header == nil {
		return nil, nil
	}
	return []core.TransactionHeader{*r.header}, nil
}

// stubResolver serves one fixed finance context
type stubResolver struct {
	fc  *domainposting.FinanceContext
	err error
}

func (s *stubResolver) Resolve(_ context.Context, _ uuid.UUID) (*domainposting.FinanceContext, error) {
	return s.fc, s.err
}

func jewelryContext(orgID uuid.UUID) *domainposting.FinanceContext {
	return &domainposting.FinanceContext{
		OrganizationID:   orgID,
		BaseCurrency:     valueobject.INR,
		HomeJurisdiction: "KA",
		TaxProfile: domainposting.TaxProfile{
			DefaultRate: decimal.NewFromFloat(3),
			SameJurisdictionAccounts: [2]domainposting.Account{
				{Code: "2401", Name: "CGST Payable"},
				{Code: "2402", Name: "SGST Payable"},
			},
			CrossJurisdictionAccount: domainposting.Account{Code: "2403", Name: "IGST Payable"},
		},
		GLAccounts: map[string]domainposting.Account{
			jewelry.RoleCash:              {Code: "1000", Name: "Cash & Bank"},
			jewelry.RoleSalesRevenue:      {Code: "4000", Name: "Jewellery Sales"},
			jewelry.RoleMakingCharges:     {Code: "4100", Name: "Making Charges"},
			jewelry.RoleGemstoneRevenue:   {Code: "4200", Name: "Gemstone Sales"},
			jewelry.RoleMetalInventory:    {Code: "1400", Name: "Metal Inventory"},
			jewelry.RoleOldMetalInventory: {Code: "1410", Name: "Old Metal Inventory"},
			jewelry.RoleFinishedInventory: {Code: "1420", Name: "Finished Goods"},
			jewelry.RoleJobWorkWIP:        {Code: "1430", Name: "Job Work WIP"},
			jewelry.RoleScrapInventory:    {Code: "1440", Name: "Scrap Inventory"},
			jewelry.RoleRoundingGain:      {Code: "4900", Name: "Rounding Gain"},
			jewelry.RoleRoundingLoss:      {Code: "5900", Name: "Rounding Loss"},
			jewelry.RoleMeltGain:          {Code: "4910", Name: "Melt Gain"},
			jewelry.RoleMeltLoss:          {Code: "5910", Name: "Melt Loss"},
		},
		BalanceTolerance: decimal.NewFromFloat(0.01),
	}
}

func newJewelryService(t *testing.T, repo *memTxRepo, resolver domainposting.ContextResolver) *Service {
	t.Helper()
	registry := domainposting.NewRegistry()
	registry.RegisterProcessor(jewelry.NewProcessor())
	return NewService(repo, resolver, domainposting.NewDispatcher(registry, nil), nil)
}

func seedSale(t *testing.T, repo *memTxRepo, orgID uuid.UUID, total float64) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	header, err := core.NewTransactionHeader(orgID, "jewelry", "HERA.JWLY.POS.SALE.TXN.v1",
		time.Now(), decimal.NewFromFloat(total), nil, map[string]any{"place_of_supply": "KA"})
	require.NoError(t, err)
	require.NoError(t, repo.SaveHeader(ctx, header))

	line, err := core.NewTransactionLine(orgID, header.ID, 1, nil,
		decimal.NewFromInt(1), decimal.NewFromFloat(45833.33), decimal.NewFromFloat(45833.33),
		"HERA.JWLY.POS.SALE.LINE.ITEM.RETAIL.v1",
		map[string]any{"net_weight": 10.0, "purity_karat": 22.0, "rate_per_gram": 5000.0})
	require.NoError(t, err)
	require.NoError(t, repo.SaveLine(ctx, line))
	return header.ID
}

func TestDerivePostings(t *testing.T) {
	ctx := context.Background()

	t.Run("derives a balanced posting set for a stored sale", func(t *testing.T) {
		orgID := uuid.New()
		repo := &memTxRepo{}
		headerID := seedSale(t, repo, orgID, 45833.33)
		svc := newJewelryService(t, repo, &stubResolver{fc: jewelryContext(orgID)})

		derivation, err := svc.DerivePostings(ctx, orgID, headerID)
		require.NoError(t, err)
		require.True(t, derivation.Result.OK(), "errors: %v", derivation.Result.Errors)
		assert.True(t, derivation.Balance.IsBalanced)
		assert.Len(t, derivation.Result.Entries, 2)
	})

	t.Run("header total mismatch surfaces as an unbalanced derivation", func(t *testing.T) {
		orgID := uuid.New()
		repo := &memTxRepo{}
		// cash settles against the header total, so an inflated total
		// cannot balance against the revenue lines
		headerID := seedSale(t, repo, orgID, 50000)
		svc := newJewelryService(t, repo, &stubResolver{fc: jewelryContext(orgID)})

		derivation, err := svc.DerivePostings(ctx, orgID, headerID)
		require.NoError(t, err)
		assert.True(t, derivation.Result.OK())
		assert.False(t, derivation.Balance.IsBalanced)
		assert.Equal(t, "4166.67", derivation.Balance.Difference.Abs().StringFixed(2))
	})

	t.Run("unknown header", func(t *testing.T) {
		orgID := uuid.New()
		svc := newJewelryService(t, &memTxRepo{}, &stubResolver{fc: jewelryContext(orgID)})

		_, err := svc.DerivePostings(ctx, orgID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("transaction in another organization is invisible", func(t *testing.T) {
		repo := &memTxRepo{}
		headerID := seedSale(t, repo, uuid.New(), 45833.33)
		otherOrg := uuid.New()
		svc := newJewelryService(t, repo, &stubResolver{fc: jewelryContext(otherOrg)})

		_, err := svc.DerivePostings(ctx, otherOrg, headerID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		orgID := uuid.New()
		repo := &memTxRepo{}
		headerID := seedSale(t, repo, orgID, 45833.33)
		svc := newJewelryService(t, repo, &stubResolver{err: shared.ErrNotFound})

		_, err := svc.DerivePostings(ctx, orgID, headerID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unregistered domain fails closed", func(t *testing.T) {
		orgID := uuid.New()
		repo := &memTxRepo{}

		header, err := core.NewTransactionHeader(orgID, "textile", "HERA.TEXTILE.POS.SALE.TXN.v1",
			time.Now(), decimal.Zero, nil, nil)
		require.NoError(t, err)
		require.NoError(t, repo.SaveHeader(ctx, header))

		svc := newJewelryService(t, repo, &stubResolver{fc: jewelryContext(orgID)})

		derivation, err := svc.DerivePostings(ctx, orgID, header.ID)
		require.NoError(t, err)
		assert.False(t, derivation.Result.OK())
		assert.Empty(t, derivation.Result.Entries)
	})
}
