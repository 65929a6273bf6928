// Package jewelry is the reference finance pack: the rule processor for the
// JWLY smart-code domain. It derives balanced GL entries for retail sales,
// old-metal exchange intake, job-work issue and receipt, and melt/scrap
// reconciliation.
package jewelry

// Domain is the smart-code domain segment handled by this pack
const Domain = "JWLY"

// GL account mapping roles the pack resolves through the finance context.
// Tax accounts come from the tax profile, not from this map.
const (
	RoleCash              = "cash"
	RoleSalesRevenue      = "sales_revenue"
	RoleMakingCharges     = "making_charges"
	RoleGemstoneRevenue   = "gemstone_revenue"
	RoleMetalInventory    = "metal_inventory"
	RoleOldMetalInventory = "old_metal_inventory"
	RoleFinishedInventory = "finished_inventory"
	RoleJobWorkWIP        = "jobwork_wip"
	RoleScrapInventory    = "scrap_inventory"
	RoleRoundingGain      = "rounding_gain"
	RoleRoundingLoss      = "rounding_loss"
	RoleMeltGain          = "melt_gain"
	RoleMeltLoss          = "melt_loss"
)

// Keys read from line payloads and header metadata
const (
	payloadNetWeight    = "net_weight"
	payloadPurityKarat  = "purity_karat"
	payloadPurityFactor = "purity_factor"
	payloadRatePerGram  = "rate_per_gram"
	payloadChargeType   = "charge_type"
	payloadChargeRate   = "charge_rate"
	payloadChargeAmount = "charge_amount"
	payloadChargePct    = "charge_percent"
	payloadBookValue    = "book_value"

	metadataPlaceOfSupply = "place_of_supply"
)
