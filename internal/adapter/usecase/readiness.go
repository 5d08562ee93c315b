package usecase

import (
	"context"
	"errors"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

// Evaluator decides whether derived warehouse artifacts are stale and
// refreshable. It only reads table metadata; absence of a table is a
// normal state for a freshly created entity, never an error.
type Evaluator struct {
	wh  port.Warehouse
	now func() time.Time
}

// NewEvaluator creates an evaluator reading metadata from wh.
func NewEvaluator(wh port.Warehouse) *Evaluator {
	return &Evaluator{wh: wh, now: time.Now}
}

// SourceTableReady reports whether the retailer's source table for
// yesterday in the retailer's time zone has landed.
func (e *Evaluator) SourceTableReady(ctx context.Context, r *domain.RetailerConfig) (bool, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return false, err
	}
	yesterday := e.now().In(loc).AddDate(0, 0, -1)
	_, err = e.wh.TableMetadata(ctx, r.DatedSourceTable(yesterday))
	if errors.Is(err, port.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RetailerSyncDue reports whether the retailer's aggregate tables
// should be refreshed: never synced yet, or last synced on an earlier
// calendar day than now, both evaluated in the retailer's time zone.
// At most one refresh per calendar day follows from this check.
func (e *Evaluator) RetailerSyncDue(r *domain.RetailerConfig, now time.Time) (bool, error) {
	if r.LastSyncedAt == nil {
		return true, nil
	}
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return false, err
	}
	ly, lm, ld := r.LastSyncedAt.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	last := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	cur := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return last.Before(cur), nil
}

// CampaignSyncDue reports whether the campaign's derived table is older
// than the retailer's aggregate table. Equal timestamps are not due.
// Missing metadata on either side means not due: the table has not been
// built yet or the upstream aggregate is gone.
func (e *Evaluator) CampaignSyncDue(ctx context.Context, r *domain.RetailerConfig, c *domain.CoopCampaignConfig) (bool, error) {
	base, err := e.wh.TableMetadata(ctx, r.AggregateTable())
	if errors.Is(err, port.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	own, err := e.wh.TableMetadata(ctx, c.Table())
	if errors.Is(err, port.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return own.LastModified.Before(base.LastModified), nil
}
