package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestDestinationsRoundTrip checks that the tagged union survives a
// marshal/unmarshal cycle with its concrete types intact.
func TestDestinationsRoundTrip(t *testing.T) {
	in := Destinations{
		&AdPlatformDest{CustomerID: "123-456-7890"},
		&CampaignManagerDest{
			FloodlightActivityID:      "1234567",
			FloodlightConfigurationID: "7654321",
			ProfileID:                 "555",
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !strings.Contains(string(data), `"type":"ad_platform"`) ||
		!strings.Contains(string(data), `"type":"campaign_manager"`) {
		t.Fatalf("missing type discriminators: %s", data)
	}

	var out Destinations
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(out))
	}
	ap, ok := out[0].(*AdPlatformDest)
	if !ok || ap.CustomerID != "123-456-7890" {
		t.Fatalf("first destination wrong: %#v", out[0])
	}
	cm, ok := out[1].(*CampaignManagerDest)
	if !ok || cm.ProfileID != "555" {
		t.Fatalf("second destination wrong: %#v", out[1])
	}
}

func TestDestinationsUnknownType(t *testing.T) {
	var out Destinations
	err := json.Unmarshal([]byte(`[{"type":"carrier_pigeon"}]`), &out)
	if err == nil {
		t.Fatalf("expected error for unknown destination type")
	}
}

func TestCampaignManagerDestinationLookup(t *testing.T) {
	c := CoopCampaignConfig{
		Destinations: Destinations{
			&AdPlatformDest{CustomerID: "123-456-7890"},
		},
	}
	if c.CampaignManagerDestination() != nil {
		t.Fatalf("expected nil without a campaign-manager destination")
	}

	cm := &CampaignManagerDest{ProfileID: "555"}
	c.Destinations = append(c.Destinations, cm)
	if got := c.CampaignManagerDestination(); got != cm {
		t.Fatalf("expected the campaign-manager destination, got %#v", got)
	}
}
