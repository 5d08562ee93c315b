package usecase

import (
	"context"
	"testing"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
	"coop-sync/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func TestRetailerSyncDue(t *testing.T) {
	eval := NewEvaluator(nil)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	r := &domain.RetailerConfig{Name: "acme", TimeZone: "UTC"}
	if due, err := eval.RetailerSyncDue(r, now); err != nil || !due {
		t.Fatalf("never-synced retailer should be due, got due=%v err=%v", due, err)
	}

	earlier := time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC)
	r.LastSyncedAt = &earlier
	if due, err := eval.RetailerSyncDue(r, now); err != nil || due {
		t.Fatalf("retailer synced earlier the same day should not be due, got due=%v err=%v", due, err)
	}

	yesterday := time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)
	r.LastSyncedAt = &yesterday
	if due, err := eval.RetailerSyncDue(r, now); err != nil || !due {
		t.Fatalf("retailer synced yesterday should be due, got due=%v err=%v", due, err)
	}

	r.TimeZone = "Mars/Olympus"
	if _, err := eval.RetailerSyncDue(r, now); err == nil {
		t.Fatalf("expected error for unknown time zone")
	}
}

// TestRetailerSyncDueTimeZone checks that the calendar-day comparison
// happens in the retailer's zone: 23:00 UTC on the 14th is already the
// 15th in Auckland, so a sweep later that same Auckland day is not due.
func TestRetailerSyncDueTimeZone(t *testing.T) {
	eval := NewEvaluator(nil)
	r := &domain.RetailerConfig{Name: "kiwi", TimeZone: "Pacific/Auckland"}

	last := time.Date(2024, 3, 14, 23, 0, 0, 0, time.UTC)
	r.LastSyncedAt = &last
	now := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)
	if due, err := eval.RetailerSyncDue(r, now); err != nil || due {
		t.Fatalf("same Auckland calendar day should not be due, got due=%v err=%v", due, err)
	}
}

func TestSourceTableReady(t *testing.T) {
	wh := mocks.NewMockWarehouse(t)
	eval := NewEvaluator(wh)
	eval.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	r := &domain.RetailerConfig{Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC"}

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)

	ready, err := eval.SourceTableReady(context.Background(), r)
	if err != nil {
		t.Fatalf("SourceTableReady error: %v", err)
	}
	if !ready {
		t.Fatalf("expected source table ready")
	}
}

func TestSourceTableMissing(t *testing.T) {
	wh := mocks.NewMockWarehouse(t)
	eval := NewEvaluator(wh)

	r := &domain.RetailerConfig{Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC"}

	wh.EXPECT().
		TableMetadata(mock.Anything, mock.Anything).
		Return(nil, port.ErrNotFound)

	ready, err := eval.SourceTableReady(context.Background(), r)
	if err != nil {
		t.Fatalf("missing table must not be an error, got %v", err)
	}
	if ready {
		t.Fatalf("expected source table not ready")
	}
}

func TestCampaignSyncDue(t *testing.T) {
	base := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)
	r := &domain.RetailerConfig{Name: "acme"}
	c := &domain.CoopCampaignConfig{Name: "spring_push", RetailerName: "acme"}

	cases := []struct {
		name    string
		ownErr  error
		ownTime time.Time
		wantDue bool
	}{
		{name: "older than aggregate", ownTime: base.Add(-time.Hour), wantDue: true},
		{name: "equal to aggregate", ownTime: base, wantDue: false},
		{name: "newer than aggregate", ownTime: base.Add(time.Hour), wantDue: false},
		{name: "not built yet", ownErr: port.ErrNotFound, wantDue: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wh := mocks.NewMockWarehouse(t)
			eval := NewEvaluator(wh)

			wh.EXPECT().
				TableMetadata(mock.Anything, "acme.transactions").
				Return(&port.TableMetadata{Ref: "acme.transactions", LastModified: base}, nil)
			if tc.ownErr != nil {
				wh.EXPECT().
					TableMetadata(mock.Anything, "acme.spring_push").
					Return(nil, tc.ownErr)
			} else {
				wh.EXPECT().
					TableMetadata(mock.Anything, "acme.spring_push").
					Return(&port.TableMetadata{Ref: "acme.spring_push", LastModified: tc.ownTime}, nil)
			}

			due, err := eval.CampaignSyncDue(context.Background(), r, c)
			if err != nil {
				t.Fatalf("CampaignSyncDue error: %v", err)
			}
			if due != tc.wantDue {
				t.Fatalf("due = %v, want %v", due, tc.wantDue)
			}
		})
	}
}

func TestCampaignSyncDueMissingAggregate(t *testing.T) {
	wh := mocks.NewMockWarehouse(t)
	eval := NewEvaluator(wh)

	r := &domain.RetailerConfig{Name: "acme"}
	c := &domain.CoopCampaignConfig{Name: "spring_push", RetailerName: "acme"}

	wh.EXPECT().
		TableMetadata(mock.Anything, "acme.transactions").
		Return(nil, port.ErrNotFound)

	due, err := eval.CampaignSyncDue(context.Background(), r, c)
	if err != nil {
		t.Fatalf("missing aggregate must not be an error, got %v", err)
	}
	if due {
		t.Fatalf("campaign must not be due without its aggregate")
	}
}
