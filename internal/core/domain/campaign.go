package domain

import "time"

// Filter scopes which raw events count towards a campaign. Type names
// the event dimension and Data lists the accepted values.
type Filter struct {
	Type string   `json:"type"`
	Data []string `json:"data"`
}

// CoopCampaignConfig represents a co-op campaign funded jointly with a
// retailer. RetailerName is a weak reference by name; deleting a
// retailer purges its campaigns separately.
type CoopCampaignConfig struct {
	Name            string       `json:"name"`
	RetailerName    string       `json:"retailer_name"`
	UTMCampaigns    []string     `json:"utm_campaigns"`
	Filters         []Filter     `json:"filters"`
	Destinations    Destinations `json:"destinations,omitempty"`
	AttributionDays int          `json:"attribution_days"`
	IsActive        bool         `json:"is_active"`
	CreatedAt       time.Time    `json:"created_at"`
	ModifiedAt      time.Time    `json:"modified_at"`
}

// Table returns the reference of the campaign's derived table, which
// lives in the retailer's dataset.
func (c CoopCampaignConfig) Table() string {
	return c.RetailerName + "." + c.Name
}

// CampaignManagerDestination returns the first campaign-manager
// destination configured on the campaign, or nil.
func (c CoopCampaignConfig) CampaignManagerDestination() *CampaignManagerDest {
	for _, d := range c.Destinations {
		if cm, ok := d.(*CampaignManagerDest); ok {
			return cm
		}
	}
	return nil
}
