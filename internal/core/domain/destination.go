package domain

import (
	"encoding/json"
	"fmt"
)

// Destination is a downstream advertising system a campaign's
// conversions are delivered to. Concrete variants are distinguished by
// the "type" discriminator in their JSON encoding.
type Destination interface {
	DestinationType() string
}

const (
	DestinationAdPlatform      = "ad_platform"
	DestinationCampaignManager = "campaign_manager"
)

// AdPlatformDest identifies an advertising-platform account that pulls
// conversions via the CSV export endpoint.
type AdPlatformDest struct {
	CustomerID string `json:"customer_id"`
}

func (d *AdPlatformDest) DestinationType() string { return DestinationAdPlatform }

// CampaignManagerDest identifies a campaign-management floodlight setup
// that offline conversions are pushed to in batches.
type CampaignManagerDest struct {
	FloodlightActivityID      string `json:"floodlight_activity_id"`
	FloodlightConfigurationID string `json:"floodlight_configuration_id"`
	ProfileID                 string `json:"profile_id"`
}

func (d *CampaignManagerDest) DestinationType() string { return DestinationCampaignManager }

// Destinations is a slice of tagged destination variants. It owns the
// JSON encoding so campaign documents round-trip through the entity
// store without losing the concrete types.
type Destinations []Destination

func (ds Destinations) MarshalJSON() ([]byte, error) {
	out := make([]map[string]json.RawMessage, 0, len(ds))
	for _, d := range ds {
		body, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		var fields map[string]json.RawMessage
		if err = json.Unmarshal(body, &fields); err != nil {
			return nil, err
		}
		tag, err := json.Marshal(d.DestinationType())
		if err != nil {
			return nil, err
		}
		fields["type"] = tag
		out = append(out, fields)
	}
	return json.Marshal(out)
}

func (ds *Destinations) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Destinations, 0, len(raw))
	for _, item := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(item, &tag); err != nil {
			return err
		}
		switch tag.Type {
		case DestinationAdPlatform:
			var d AdPlatformDest
			if err := json.Unmarshal(item, &d); err != nil {
				return err
			}
			out = append(out, &d)
		case DestinationCampaignManager:
			var d CampaignManagerDest
			if err := json.Unmarshal(item, &d); err != nil {
				return err
			}
			out = append(out, &d)
		default:
			return fmt.Errorf("unknown destination type %q", tag.Type)
		}
	}
	*ds = out
	return nil
}
