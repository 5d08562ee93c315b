package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

const (
	defaultBackfillDays    = 90
	defaultAttributionDays = 7
)

// ConfigService implements entity CRUD with validation, the warehouse
// artifact lifecycle and the retailer-to-campaign delete cascade.
// Warehouse DDL failures after a successful store write are logged, not
// returned: the artifacts converge on later writes and sweeps.
type ConfigService struct {
	store  port.ConfigStore
	wh     port.Warehouse
	logger *slog.Logger
	now    func() time.Time
}

// NewConfigService creates the config service.
func NewConfigService(store port.ConfigStore, wh port.Warehouse, logger *slog.Logger) *ConfigService {
	return &ConfigService{store: store, wh: wh, logger: logger, now: time.Now}
}

// CreateRetailer validates and stores a new retailer, then provisions
// its warehouse dataset and aggregate table.
func (s *ConfigService) CreateRetailer(ctx context.Context, r *domain.RetailerConfig) error {
	if r.BackfillDays == 0 {
		r.BackfillDays = defaultBackfillDays
	}
	if err := validateRetailer(r); err != nil {
		return err
	}
	now := s.now().UTC()
	r.CreatedAt = now
	r.ModifiedAt = now
	r.LastSyncedAt = nil
	if err := s.store.CreateRetailer(ctx, r); err != nil {
		return err
	}
	if err := s.wh.Exec(ctx, "create_retailer", retailerParams(r)); err != nil {
		s.logger.Error("provisioning retailer artifacts failed",
			slog.String("retailer", r.Name), slog.Any("error", err))
	}
	return nil
}

// UpdateRetailer validates and overwrites an existing retailer,
// preserving its creation and sync timestamps.
func (s *ConfigService) UpdateRetailer(ctx context.Context, r *domain.RetailerConfig) error {
	if r.BackfillDays == 0 {
		r.BackfillDays = defaultBackfillDays
	}
	if err := validateRetailer(r); err != nil {
		return err
	}
	existing, err := s.store.GetRetailer(ctx, r.Name)
	if err != nil {
		return err
	}
	r.CreatedAt = existing.CreatedAt
	r.LastSyncedAt = existing.LastSyncedAt
	r.ModifiedAt = s.now().UTC()
	if err := s.store.UpdateRetailer(ctx, r); err != nil {
		return err
	}
	if err := s.wh.Exec(ctx, "create_retailer", retailerParams(r)); err != nil {
		s.logger.Error("updating retailer artifacts failed",
			slog.String("retailer", r.Name), slog.Any("error", err))
	}
	return nil
}

// GetRetailer returns one retailer by name.
func (s *ConfigService) GetRetailer(ctx context.Context, name string) (*domain.RetailerConfig, error) {
	return s.store.GetRetailer(ctx, name)
}

// ListRetailers returns all retailers.
func (s *ConfigService) ListRetailers(ctx context.Context) ([]domain.RetailerConfig, error) {
	return s.store.ListRetailers(ctx)
}

// DeleteRetailer removes the retailer, drops its warehouse dataset and
// purges every campaign referencing it. RetailerName is a weak
// reference, so the cascade is an explicit second delete.
func (s *ConfigService) DeleteRetailer(ctx context.Context, name string) error {
	if err := s.store.DeleteRetailer(ctx, name); err != nil {
		return err
	}
	if err := s.wh.Exec(ctx, "drop_retailer", map[string]any{"name": name}); err != nil {
		s.logger.Error("dropping retailer dataset failed",
			slog.String("retailer", name), slog.Any("error", err))
	}
	if err := s.store.DeleteCampaignsByRetailer(ctx, name); err != nil {
		return fmt.Errorf("cascade delete campaigns: %w", err)
	}
	return nil
}

// CreateCampaign validates and stores a new campaign, then builds its
// derived warehouse table. The referenced retailer must exist.
func (s *ConfigService) CreateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error {
	if c.AttributionDays == 0 {
		c.AttributionDays = defaultAttributionDays
	}
	if err := validateCampaign(c); err != nil {
		return err
	}
	r, err := s.resolveRetailer(ctx, c.RetailerName)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	c.CreatedAt = now
	c.ModifiedAt = now
	if err := s.store.CreateCampaign(ctx, c); err != nil {
		return err
	}
	if err := s.wh.Exec(ctx, "create_or_update_campaign", campaignParams(c, r)); err != nil {
		s.logger.Error("building campaign table failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
	}
	return nil
}

// UpdateCampaign validates and overwrites an existing campaign,
// preserving its creation timestamp, and rebuilds its derived table.
func (s *ConfigService) UpdateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error {
	if c.AttributionDays == 0 {
		c.AttributionDays = defaultAttributionDays
	}
	if err := validateCampaign(c); err != nil {
		return err
	}
	r, err := s.resolveRetailer(ctx, c.RetailerName)
	if err != nil {
		return err
	}
	existing, err := s.store.GetCampaign(ctx, c.Name)
	if err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	c.ModifiedAt = s.now().UTC()
	if err := s.store.UpdateCampaign(ctx, c); err != nil {
		return err
	}
	if err := s.wh.Exec(ctx, "create_or_update_campaign", campaignParams(c, r)); err != nil {
		s.logger.Error("rebuilding campaign table failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
	}
	return nil
}

// GetCampaign returns one campaign by name.
func (s *ConfigService) GetCampaign(ctx context.Context, name string) (*domain.CoopCampaignConfig, error) {
	return s.store.GetCampaign(ctx, name)
}

// ListCampaigns returns all campaigns.
func (s *ConfigService) ListCampaigns(ctx context.Context) ([]domain.CoopCampaignConfig, error) {
	return s.store.ListCampaigns(ctx)
}

// DeleteCampaign removes the campaign and drops its derived table.
func (s *ConfigService) DeleteCampaign(ctx context.Context, name string) error {
	c, err := s.store.GetCampaign(ctx, name)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCampaign(ctx, name); err != nil {
		return err
	}
	params := map[string]any{"name": c.Name, "retailer_name": c.RetailerName}
	if err := s.wh.Exec(ctx, "drop_campaign", params); err != nil {
		s.logger.Error("dropping campaign table failed",
			slog.String("campaign", name), slog.Any("error", err))
	}
	return nil
}

// resolveRetailer turns a missing retailer reference into a validation
// error rather than a bare not-found, since the campaign payload is
// what is malformed from the caller's point of view.
func (s *ConfigService) resolveRetailer(ctx context.Context, name string) (*domain.RetailerConfig, error) {
	r, err := s.store.GetRetailer(ctx, name)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, invalid("retailer_name", fmt.Sprintf("unknown retailer %q", name))
		}
		return nil, err
	}
	return r, nil
}
