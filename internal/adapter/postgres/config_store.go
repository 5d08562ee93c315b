package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

// ConfigStore implements port.ConfigStore using pgxpool for PostgreSQL.
// Entities are stored as jsonb documents keyed by name, one table per
// kind, with the campaign's retailer reference denormalized into its
// own column for the list-by and cascade queries.
type ConfigStore struct {
	pool *pgxpool.Pool
}

// NewConfigStore returns a new store instance.
func NewConfigStore(pool *pgxpool.Pool) *ConfigStore {
	return &ConfigStore{pool: pool}
}

// GetRetailer returns the retailer config stored under name.
func (s *ConfigStore) GetRetailer(ctx context.Context, name string) (*domain.RetailerConfig, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM retailer_configs WHERE name = $1`, name).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("retailer %q: %w", name, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get retailer: %w", err)
	}
	var r domain.RetailerConfig
	if err = json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("decode retailer %q: %w", name, err)
	}
	return &r, nil
}

// ListRetailers returns every retailer config ordered by name.
func (s *ConfigStore) ListRetailers(ctx context.Context) ([]domain.RetailerConfig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM retailer_configs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list retailers: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RetailerConfig, error) {
		var doc []byte
		var r domain.RetailerConfig
		if err := row.Scan(&doc); err != nil {
			return r, err
		}
		err := json.Unmarshal(doc, &r)
		return r, err
	})
}

// CreateRetailer inserts the config if the name is free.
func (s *ConfigStore) CreateRetailer(ctx context.Context, r *domain.RetailerConfig) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO retailer_configs (name, doc) VALUES ($1, $2)
         ON CONFLICT (name) DO NOTHING`, r.Name, doc)
	if err != nil {
		return fmt.Errorf("create retailer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("retailer %q: %w", r.Name, port.ErrAlreadyExists)
	}
	return nil
}

// UpdateRetailer overwrites an existing config.
func (s *ConfigStore) UpdateRetailer(ctx context.Context, r *domain.RetailerConfig) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE retailer_configs SET doc = $2 WHERE name = $1`, r.Name, doc)
	if err != nil {
		return fmt.Errorf("update retailer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("retailer %q: %w", r.Name, port.ErrNotFound)
	}
	return nil
}

// DeleteRetailer removes the config.
func (s *ConfigStore) DeleteRetailer(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM retailer_configs WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete retailer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("retailer %q: %w", name, port.ErrNotFound)
	}
	return nil
}

// GetCampaign returns the campaign config stored under name.
func (s *ConfigStore) GetCampaign(ctx context.Context, name string) (*domain.CoopCampaignConfig, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM coop_campaign_configs WHERE name = $1`, name).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %q: %w", name, port.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	var c domain.CoopCampaignConfig
	if err = json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("decode campaign %q: %w", name, err)
	}
	return &c, nil
}

// ListCampaigns returns every campaign config ordered by name.
func (s *ConfigStore) ListCampaigns(ctx context.Context) ([]domain.CoopCampaignConfig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM coop_campaign_configs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return collectCampaigns(rows)
}

// ListCampaignsByRetailer returns the campaigns referencing a retailer.
func (s *ConfigStore) ListCampaignsByRetailer(ctx context.Context, retailer string) ([]domain.CoopCampaignConfig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM coop_campaign_configs WHERE retailer_name = $1 ORDER BY name`,
		retailer)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by retailer: %w", err)
	}
	return collectCampaigns(rows)
}

// CreateCampaign inserts the config if the name is free.
func (s *ConfigStore) CreateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO coop_campaign_configs (name, retailer_name, doc) VALUES ($1, $2, $3)
         ON CONFLICT (name) DO NOTHING`, c.Name, c.RetailerName, doc)
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %q: %w", c.Name, port.ErrAlreadyExists)
	}
	return nil
}

// UpdateCampaign overwrites an existing config.
func (s *ConfigStore) UpdateCampaign(ctx context.Context, c *domain.CoopCampaignConfig) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE coop_campaign_configs SET retailer_name = $2, doc = $3 WHERE name = $1`,
		c.Name, c.RetailerName, doc)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %q: %w", c.Name, port.ErrNotFound)
	}
	return nil
}

// DeleteCampaign removes the config.
func (s *ConfigStore) DeleteCampaign(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM coop_campaign_configs WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %q: %w", name, port.ErrNotFound)
	}
	return nil
}

// DeleteCampaignsByRetailer removes every campaign referencing the
// retailer. Matching zero rows is not an error.
func (s *ConfigStore) DeleteCampaignsByRetailer(ctx context.Context, retailer string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM coop_campaign_configs WHERE retailer_name = $1`, retailer)
	if err != nil {
		return fmt.Errorf("delete campaigns by retailer: %w", err)
	}
	return nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.CoopCampaignConfig, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CoopCampaignConfig, error) {
		var doc []byte
		var c domain.CoopCampaignConfig
		if err := row.Scan(&doc); err != nil {
			return c, err
		}
		err := json.Unmarshal(doc, &c)
		return c, err
	})
}
