package usecase

import (
	"regexp"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

// Validation mirrors the constraints the entities were designed with.
// Every field that ends up interpolated into warehouse query text is
// restricted here; there is no second line of defense in the gateway.
// Free-text values exclude quotes and backslashes, which would break
// out of string literals, and semicolons, which the gateway treats as
// statement separators.
var (
	nameRe        = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	sourceTableRe = regexp.MustCompile(`^[A-Za-z0-9_]{1,30}\.[A-Za-z0-9_]{1,30}\*$`)
	currencyRe    = regexp.MustCompile(`^[A-Za-z]{3}$`)
	identifierRe  = regexp.MustCompile(`^[A-Za-z0-9_]{1,30}$`)
	customerIDRe  = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
	numericIDRe   = regexp.MustCompile(`^[0-9]{3,11}$`)
	filterValueRe = regexp.MustCompile(`^[^'\\;]{1,100}$`)
)

func invalid(field, reason string) error {
	return &port.ValidationError{Field: field, Reason: reason}
}

func validateRetailer(r *domain.RetailerConfig) error {
	if !nameRe.MatchString(r.Name) {
		return invalid("name", "must be 3-50 alphanumeric or underscore characters")
	}
	if !sourceTableRe.MatchString(r.SourceTable) {
		return invalid("source_table", "must be a database.prefix* reference")
	}
	if _, err := time.LoadLocation(r.TimeZone); err != nil {
		return invalid("time_zone", "unknown IANA time zone")
	}
	if !currencyRe.MatchString(r.Currency) {
		return invalid("currency", "must be a 3-letter code")
	}
	if r.BackfillDays < 30 || r.BackfillDays > 180 {
		return invalid("backfill_days", "must be between 30 and 180")
	}
	return nil
}

func validateCampaign(c *domain.CoopCampaignConfig) error {
	if !nameRe.MatchString(c.Name) {
		return invalid("name", "must be 3-50 alphanumeric or underscore characters")
	}
	if !nameRe.MatchString(c.RetailerName) {
		return invalid("retailer_name", "must be 3-50 alphanumeric or underscore characters")
	}
	if len(c.UTMCampaigns) == 0 {
		return invalid("utm_campaigns", "must not be empty")
	}
	for _, utm := range c.UTMCampaigns {
		if !filterValueRe.MatchString(utm) {
			return invalid("utm_campaigns", "contains an invalid value")
		}
	}
	if len(c.Filters) == 0 {
		return invalid("filters", "must not be empty")
	}
	for _, f := range c.Filters {
		if !identifierRe.MatchString(f.Type) {
			return invalid("filters", "type must be an identifier")
		}
		if len(f.Data) == 0 {
			return invalid("filters", "data must not be empty")
		}
		for _, v := range f.Data {
			if !filterValueRe.MatchString(v) {
				return invalid("filters", "data contains an invalid value")
			}
		}
	}
	for _, d := range c.Destinations {
		switch dest := d.(type) {
		case *domain.AdPlatformDest:
			if !customerIDRe.MatchString(dest.CustomerID) {
				return invalid("destinations", "customer_id must match ddd-ddd-dddd")
			}
		case *domain.CampaignManagerDest:
			if !numericIDRe.MatchString(dest.FloodlightActivityID) ||
				!numericIDRe.MatchString(dest.FloodlightConfigurationID) ||
				!numericIDRe.MatchString(dest.ProfileID) {
				return invalid("destinations", "campaign-manager ids must be 3-11 digits")
			}
		}
	}
	if c.AttributionDays < 1 || c.AttributionDays > 30 {
		return invalid("attribution_days", "must be between 1 and 30")
	}
	return nil
}
