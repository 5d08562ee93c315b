package port

import (
	"context"

	"coop-sync/internal/core/domain"
)

// SyncUseCase drives the per-run reconciliation sweep over all
// configured entities. This is the primary port invoked by the
// scheduler route. Mock implementations can be generated from these
// interfaces for testing.
type SyncUseCase interface {
	// RunSweep walks every retailer once, refreshing stale warehouse
	// artifacts. Per-entity failures are logged and skipped; an error
	// is returned only when the entity lists cannot be fetched.
	RunSweep(ctx context.Context) error
}

// ExportUseCase produces the delimited conversion feed for one campaign.
type ExportUseCase interface {
	// ExportConversions returns the campaign's conversions as CSV text
	// with a header row. It returns ("", nil) when the campaign is
	// inactive or no conversions are available; entity lookups that
	// miss return ErrNotFound.
	ExportConversions(ctx context.Context, campaign string) (string, error)
}

// UploadOutcome records the result of one delivered batch.
type UploadOutcome struct {
	Campaign string `json:"campaign"`
	Batch    int    `json:"batch"`
	Uploaded int    `json:"uploaded"`
}

// UploadError records one failed conversion item within a batch.
type UploadError struct {
	Campaign string `json:"campaign"`
	Batch    int    `json:"batch"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// DeliveryReport aggregates the outcome of one delivery run. Partial
// failures are represented here, never raised.
type DeliveryReport struct {
	Successes []UploadOutcome `json:"successes"`
	Errors    []UploadError   `json:"errors"`
}

// DeliveryUseCase batches and uploads conversions for every active
// campaign with a campaign-management destination.
type DeliveryUseCase interface {
	DeliverAll(ctx context.Context) (*DeliveryReport, error)
}

// ConfigUseCase exposes entity CRUD with validation, warehouse artifact
// lifecycle and the retailer-to-campaign delete cascade.
type ConfigUseCase interface {
	CreateRetailer(ctx context.Context, r *domain.RetailerConfig) error
	UpdateRetailer(ctx context.Context, r *domain.RetailerConfig) error
	GetRetailer(ctx context.Context, name string) (*domain.RetailerConfig, error)
	ListRetailers(ctx context.Context) ([]domain.RetailerConfig, error)
	// DeleteRetailer removes the retailer, its warehouse dataset and
	// every campaign referencing it.
	DeleteRetailer(ctx context.Context, name string) error

	CreateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error
	UpdateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error
	GetCampaign(ctx context.Context, name string) (*domain.CoopCampaignConfig, error)
	ListCampaigns(ctx context.Context) ([]domain.CoopCampaignConfig, error)
	DeleteCampaign(ctx context.Context, name string) error
}
