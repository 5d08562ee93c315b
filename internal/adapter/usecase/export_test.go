package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
	"coop-sync/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func exportFixtures() (*domain.RetailerConfig, *domain.CoopCampaignConfig) {
	r := &domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC",
		Currency: "EUR", BackfillDays: 90, IsActive: true,
	}
	c := &domain.CoopCampaignConfig{
		Name: "spring_push", RetailerName: "acme", IsActive: true,
		UTMCampaigns: []string{"spring"}, AttributionDays: 7,
	}
	return r, c
}

// TestExportCSVShape checks the feed layout: one header row with
// underscores turned into spaces, then one record per conversion.
func TestExportCSVShape(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	r, c := exportFixtures()

	store.EXPECT().GetCampaign(mock.Anything, "spring_push").Return(c, nil)
	store.EXPECT().GetRetailer(mock.Anything, "acme").Return(r, nil)

	rs := &port.ResultSet{
		Columns: []string{"Google_Click_ID", "Conversion_Name", "Conversion_Time", "Conversion_Value", "Conversion_Currency"},
	}
	for i := 0; i < 1200; i++ {
		rs.Rows = append(rs.Rows, []any{
			fmt.Sprintf("gclid_%d", i), "spring_push", "2024-03-14 12:00:00", 12.5, "EUR",
		})
	}
	wh.EXPECT().
		Query(mock.Anything, "ad_platform_conversions", mock.Anything).
		Return(rs, nil)

	svc := NewExportService(store, wh, testLogger())
	out, err := svc.ExportConversions(context.Background(), "spring_push")
	if err != nil {
		t.Fatalf("ExportConversions error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1201 {
		t.Fatalf("expected 1201 lines, got %d", len(lines))
	}
	wantHeader := "Google Click ID,Conversion Name,Conversion Time,Conversion Value,Conversion Currency"
	if lines[0] != wantHeader {
		t.Fatalf("header = %q, want %q", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], "12.5") {
		t.Fatalf("value formatting wrong: %q", lines[1])
	}
}

// TestExportInactiveCampaign: no warehouse query, empty feed, no error.
func TestExportInactiveCampaign(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	r, c := exportFixtures()
	c.IsActive = false

	store.EXPECT().GetCampaign(mock.Anything, "spring_push").Return(c, nil)
	store.EXPECT().GetRetailer(mock.Anything, "acme").Return(r, nil)

	svc := NewExportService(store, wh, testLogger())
	out, err := svc.ExportConversions(context.Background(), "spring_push")
	if err != nil {
		t.Fatalf("ExportConversions error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty feed, got %q", out)
	}
}

// TestExportQueryFailure: a warehouse failure is treated as "no data",
// not surfaced to the caller.
func TestExportQueryFailure(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	r, c := exportFixtures()

	store.EXPECT().GetCampaign(mock.Anything, "spring_push").Return(c, nil)
	store.EXPECT().GetRetailer(mock.Anything, "acme").Return(r, nil)
	wh.EXPECT().
		Query(mock.Anything, "ad_platform_conversions", mock.Anything).
		Return(nil, fmt.Errorf("%w: query timeout", port.ErrUnavailable))

	svc := NewExportService(store, wh, testLogger())
	out, err := svc.ExportConversions(context.Background(), "spring_push")
	if err != nil {
		t.Fatalf("query failure must not propagate, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected empty feed, got %q", out)
	}
}

// TestExportUnknownCampaign: entity lookups that miss do propagate.
func TestExportUnknownCampaign(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)

	store.EXPECT().GetCampaign(mock.Anything, "nope").Return(nil, port.ErrNotFound)

	svc := NewExportService(store, wh, testLogger())
	if _, err := svc.ExportConversions(context.Background(), "nope"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
