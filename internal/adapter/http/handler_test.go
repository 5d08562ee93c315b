package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coop-sync/internal/adapter/usecase"
	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
	"coop-sync/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func newTestHandler(t *testing.T, store *mocks.MockConfigStore, wh *mocks.MockWarehouse) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := usecase.NewConfigService(store, wh, logger)
	sync := usecase.NewSyncService(store, wh, logger, 1)
	export := usecase.NewExportService(store, wh, logger)
	delivery := usecase.NewDeliveryService(store, wh, mocks.NewMockConversionUploader(t), logger, 1000)
	return NewHandler(cfg, sync, export, delivery, logger)
}

func TestGetRetailerNotFound(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	store.EXPECT().GetRetailer(mock.Anything, "ghost").Return(nil, port.ErrNotFound)

	h := newTestHandler(t, store, wh)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/retailers/ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateRetailerValidationStatus(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)

	h := newTestHandler(t, store, wh)
	body := strings.NewReader(`{"name":"ab","source_table":"ga.events_*","time_zone":"UTC","currency":"EUR"}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/retailers", body))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name") {
		t.Fatalf("body should name the bad field: %s", rec.Body.String())
	}
}

func TestCreateRetailerCreated(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	store.EXPECT().
		CreateRetailer(mock.Anything, mock.AnythingOfType("*domain.RetailerConfig")).
		Return(nil)
	wh.EXPECT().Exec(mock.Anything, "create_retailer", mock.Anything).Return(nil)

	h := newTestHandler(t, store, wh)
	body := strings.NewReader(`{"name":"acme","source_table":"ga.events_*","time_zone":"UTC","currency":"EUR","is_active":true}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/retailers", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"backfill_days":90`) {
		t.Fatalf("response should carry the applied default: %s", rec.Body.String())
	}
}

func TestCreateRetailerConflict(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	store.EXPECT().
		CreateRetailer(mock.Anything, mock.AnythingOfType("*domain.RetailerConfig")).
		Return(port.ErrAlreadyExists)

	h := newTestHandler(t, store, wh)
	body := strings.NewReader(`{"name":"acme","source_table":"ga.events_*","time_zone":"UTC","currency":"EUR"}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/retailers", body))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

// TestExportConversionsEmpty: an inactive campaign maps to 204 so the
// downstream importer skips the cycle.
func TestExportConversionsEmpty(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	store.EXPECT().GetCampaign(mock.Anything, "paused_one").
		Return(&domain.CoopCampaignConfig{Name: "paused_one", RetailerName: "acme"}, nil)
	store.EXPECT().GetRetailer(mock.Anything, "acme").
		Return(&domain.RetailerConfig{Name: "acme"}, nil)

	h := newTestHandler(t, store, wh)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scheduler/export_conversions/paused_one", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestExportConversionsCSV(t *testing.T) {
	store := mocks.NewMockConfigStore(t)
	wh := mocks.NewMockWarehouse(t)
	store.EXPECT().GetCampaign(mock.Anything, "spring_push").
		Return(&domain.CoopCampaignConfig{
			Name: "spring_push", RetailerName: "acme", IsActive: true,
			UTMCampaigns: []string{"spring"}, AttributionDays: 7,
		}, nil)
	store.EXPECT().GetRetailer(mock.Anything, "acme").
		Return(&domain.RetailerConfig{Name: "acme", SourceTable: "ga.events_*", Currency: "EUR"}, nil)
	wh.EXPECT().
		Query(mock.Anything, "ad_platform_conversions", mock.Anything).
		Return(&port.ResultSet{
			Columns: []string{"Google_Click_ID", "Conversion_Value"},
			Rows:    [][]any{{"gclid_1", 12.5}},
		}, nil)

	h := newTestHandler(t, store, wh)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scheduler/export_conversions/spring_push", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q, want text/csv", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "Google Click ID,Conversion Value\n") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
