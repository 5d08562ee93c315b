package domain

import (
	"strings"
	"time"
)

// RetailerConfig represents a retailer whose analytics data feeds the
// co-op warehouse tables. The Name doubles as the entity key and as the
// warehouse dataset holding the retailer's derived tables.
type RetailerConfig struct {
	Name         string     `json:"name"`
	SourceTable  string     `json:"source_table"`
	TimeZone     string     `json:"time_zone"`
	Currency     string     `json:"currency"`
	BackfillDays int        `json:"backfill_days"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	ModifiedAt   time.Time  `json:"modified_at"`
	// LastSyncedAt is nil until the first successful warehouse refresh.
	// Only the sync orchestrator writes it.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// AggregateTable returns the reference of the retailer's derived
// aggregate table in the warehouse.
func (r RetailerConfig) AggregateTable() string {
	return r.Name + ".transactions"
}

// DatedSourceTable resolves the wildcard in SourceTable to the table
// for the given date, e.g. "ga.events_*" -> "ga.events_20240131".
func (r RetailerConfig) DatedSourceTable(date time.Time) string {
	return strings.Replace(r.SourceTable, "*", date.Format("20060102"), 1)
}
