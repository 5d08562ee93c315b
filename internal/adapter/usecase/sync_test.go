package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
	"coop-sync/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSync(store port.ConfigStore, wh port.Warehouse, at time.Time) *SyncService {
	s := NewSyncService(store, wh, testLogger(), 2)
	s.now = func() time.Time { return at }
	s.eval.now = s.now
	return s
}

// TestSweepRefreshesStaleRetailer covers the happy path: the source
// table has landed and the retailer has never been synced, so the sweep
// refreshes the aggregate and records the sync timestamp.
func TestSweepRefreshesStaleRetailer(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	r := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC",
		Currency: "EUR", BackfillDays: 90, IsActive: true,
	}
	store.EXPECT().ListRetailers(mock.Anything).Return([]domain.RetailerConfig{r}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)
	wh.EXPECT().
		Exec(mock.Anything, "refresh_retailer", mock.Anything).
		Return(nil)

	var recorded *domain.RetailerConfig
	store.EXPECT().
		UpdateRetailer(mock.Anything, mock.AnythingOfType("*domain.RetailerConfig")).
		Run(func(ctx context.Context, r *domain.RetailerConfig) { recorded = r }).
		Return(nil)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
	if recorded == nil || recorded.LastSyncedAt == nil {
		t.Fatalf("expected sync timestamp recorded")
	}
	if !recorded.LastSyncedAt.Equal(now) {
		t.Fatalf("LastSyncedAt = %v, want %v", recorded.LastSyncedAt, now)
	}
}

// TestSweepSameDayRefreshesCampaigns: the retailer already synced today,
// so the aggregate is left alone and stale campaign tables are rebuilt
// instead.
func TestSweepSameDayRefreshesCampaigns(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	synced := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)

	r := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC",
		Currency: "EUR", BackfillDays: 90, IsActive: true, LastSyncedAt: &synced,
	}
	stale := domain.CoopCampaignConfig{
		Name: "spring_push", RetailerName: "acme", IsActive: true,
		UTMCampaigns: []string{"spring"}, AttributionDays: 7,
	}
	inactive := domain.CoopCampaignConfig{
		Name: "paused_one", RetailerName: "acme", IsActive: false,
	}
	store.EXPECT().ListRetailers(mock.Anything).Return([]domain.RetailerConfig{r}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).
		Return([]domain.CoopCampaignConfig{stale, inactive}, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)
	wh.EXPECT().
		TableMetadata(mock.Anything, "acme.transactions").
		Return(&port.TableMetadata{LastModified: synced}, nil)
	wh.EXPECT().
		TableMetadata(mock.Anything, "acme.spring_push").
		Return(&port.TableMetadata{LastModified: synced.Add(-time.Hour)}, nil)
	wh.EXPECT().
		Exec(mock.Anything, "create_or_update_campaign", mock.Anything).
		Return(nil)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
}

// TestSweepDueRetailerDefersCampaigns: an aggregate refresh makes every
// campaign table stale anyway, so the sweep must not also rebuild
// campaign tables for that retailer, even ones that were already due.
func TestSweepDueRetailerDefersCampaigns(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	r := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC",
		Currency: "EUR", BackfillDays: 90, IsActive: true,
	}
	stale := domain.CoopCampaignConfig{
		Name: "spring_push", RetailerName: "acme", IsActive: true,
		UTMCampaigns: []string{"spring"}, AttributionDays: 7,
	}
	store.EXPECT().ListRetailers(mock.Anything).Return([]domain.RetailerConfig{r}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).
		Return([]domain.CoopCampaignConfig{stale}, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)
	// The only warehouse write allowed is the aggregate refresh; any
	// create_or_update_campaign call fails the strict mocks.
	wh.EXPECT().
		Exec(mock.Anything, "refresh_retailer", mock.Anything).
		Return(nil)
	store.EXPECT().
		UpdateRetailer(mock.Anything, mock.AnythingOfType("*domain.RetailerConfig")).
		Return(nil)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
}

// TestSweepWaitsOnSource: no warehouse writes happen at all while the
// dated source table has not landed.
func TestSweepWaitsOnSource(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	r := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC", IsActive: true,
	}
	store.EXPECT().ListRetailers(mock.Anything).Return([]domain.RetailerConfig{r}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(nil, port.ErrNotFound)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
}

// TestSweepFailureIsolation: one retailer's refresh failing must not
// stop the other retailer's refresh, and the sweep still succeeds.
func TestSweepFailureIsolation(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	broken := domain.RetailerConfig{
		Name: "broken_mart", SourceTable: "ga.events_*", TimeZone: "UTC", IsActive: true,
	}
	healthy := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC", IsActive: true,
	}
	store.EXPECT().ListRetailers(mock.Anything).
		Return([]domain.RetailerConfig{broken, healthy}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)
	wh.EXPECT().
		Exec(mock.Anything, "refresh_retailer", mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["name"] == "broken_mart"
		})).
		Return(errors.New("quota exceeded"))
	wh.EXPECT().
		Exec(mock.Anything, "refresh_retailer", mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["name"] == "acme"
		})).
		Return(nil)

	store.EXPECT().
		UpdateRetailer(mock.Anything, mock.MatchedBy(func(r *domain.RetailerConfig) bool {
			return r.Name == "acme"
		})).
		Return(nil)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
}

// TestSweepListFailure: the only fatal condition is not being able to
// enumerate the entities.
func TestSweepListFailure(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)

	store.EXPECT().ListRetailers(mock.Anything).Return(nil, port.ErrUnavailable)

	svc := newTestSync(store, wh, time.Now())
	if err := svc.RunSweep(context.Background()); !errors.Is(err, port.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

// TestSweepInactiveRetailerSkipsAggregate: an inactive retailer never
// gets an aggregate refresh, but its campaign path still runs.
func TestSweepInactiveRetailerSkipsAggregate(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	r := domain.RetailerConfig{
		Name: "acme", SourceTable: "ga.events_*", TimeZone: "UTC", IsActive: false,
	}
	store.EXPECT().ListRetailers(mock.Anything).Return([]domain.RetailerConfig{r}, nil)
	store.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)

	wh.EXPECT().
		TableMetadata(mock.Anything, "ga.events_20240314").
		Return(&port.TableMetadata{Ref: "ga.events_20240314"}, nil)

	svc := newTestSync(store, wh, now)
	if err := svc.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep error: %v", err)
	}
}
