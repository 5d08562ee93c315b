package usecase

import (
	"strings"

	"coop-sync/internal/core/domain"
)

// retailerParams builds the template parameter set for retailer-scoped
// warehouse statements. The wildcard source table reference is split
// into the database and the table-name prefix the warehouse merge
// engine matches on.
func retailerParams(r *domain.RetailerConfig) map[string]any {
	database, table, _ := strings.Cut(r.SourceTable, ".")
	return map[string]any{
		"name":            r.Name,
		"currency":        r.Currency,
		"time_zone":       r.TimeZone,
		"backfill_days":   r.BackfillDays,
		"source_database": database,
		"source_prefix":   strings.TrimSuffix(table, "*"),
	}
}

// campaignParams builds the combined parameter set for campaign-scoped
// statements. Campaign fields are merged over the retailer's, with the
// retailer's currency and time zone denormalized in because the export
// queries need both.
func campaignParams(c *domain.CoopCampaignConfig, r *domain.RetailerConfig) map[string]any {
	p := retailerParams(r)
	p["name"] = c.Name
	p["retailer_name"] = c.RetailerName
	p["utm_campaigns"] = c.UTMCampaigns
	p["filters"] = c.Filters
	p["attribution_days"] = c.AttributionDays
	return p
}
