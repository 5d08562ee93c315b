package port

import (
	"context"

	"coop-sync/internal/core/domain"
)

// ConfigStore defines key-value persistence for the two entity kinds,
// keyed by name. It is an outbound port; implementations must be safe
// for concurrent use.
type ConfigStore interface {
	// GetRetailer returns ErrNotFound when no retailer has the name.
	GetRetailer(ctx context.Context, name string) (*domain.RetailerConfig, error)
	// ListRetailers returns all retailer configs.
	ListRetailers(ctx context.Context) ([]domain.RetailerConfig, error)
	// CreateRetailer stores the config only if the name is free,
	// otherwise ErrAlreadyExists.
	CreateRetailer(ctx context.Context, r *domain.RetailerConfig) error
	// UpdateRetailer overwrites an existing config, otherwise ErrNotFound.
	UpdateRetailer(ctx context.Context, r *domain.RetailerConfig) error
	// DeleteRetailer removes the config, ErrNotFound when absent.
	DeleteRetailer(ctx context.Context, name string) error

	// GetCampaign returns ErrNotFound when no campaign has the name.
	GetCampaign(ctx context.Context, name string) (*domain.CoopCampaignConfig, error)
	// ListCampaigns returns all campaign configs.
	ListCampaigns(ctx context.Context) ([]domain.CoopCampaignConfig, error)
	// ListCampaignsByRetailer returns the campaigns referencing the
	// retailer by name.
	ListCampaignsByRetailer(ctx context.Context, retailer string) ([]domain.CoopCampaignConfig, error)
	// CreateCampaign stores the config only if the name is free,
	// otherwise ErrAlreadyExists.
	CreateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error
	// UpdateCampaign overwrites an existing config, otherwise ErrNotFound.
	UpdateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error
	// DeleteCampaign removes the config, ErrNotFound when absent.
	DeleteCampaign(ctx context.Context, name string) error
	// DeleteCampaignsByRetailer removes every campaign referencing the
	// retailer. Deleting zero campaigns is not an error.
	DeleteCampaignsByRetailer(ctx context.Context, retailer string) error
}
