package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

// SyncService is the synchronization orchestrator. One RunSweep walks
// every configured retailer and campaign and refreshes whatever derived
// warehouse tables are stale, at most one aggregate refresh per
// retailer per calendar day.
type SyncService struct {
	store   port.ConfigStore
	wh      port.Warehouse
	eval    *Evaluator
	logger  *slog.Logger
	workers int64
	now     func() time.Time
}

// NewSyncService creates the orchestrator. workers bounds how many
// retailers are reconciled concurrently and should not exceed the
// warehouse connection limit.
func NewSyncService(store port.ConfigStore, wh port.Warehouse, logger *slog.Logger, workers int) *SyncService {
	if workers < 1 {
		workers = 1
	}
	return &SyncService{
		store:   store,
		wh:      wh,
		eval:    NewEvaluator(wh),
		logger:  logger,
		workers: int64(workers),
		now:     time.Now,
	}
}

// RunSweep reconciles all retailers once. Retailers are processed by a
// bounded worker pool; each retailer's campaigns are handled inside its
// own worker, so a retailer's aggregate refresh can never race its
// campaign refreshes. Per-entity failures are logged and skipped; the
// returned error is non-nil only when the entity lists cannot be
// fetched. Cancellation is observed at entity boundaries, letting
// in-flight single-entity work finish to avoid partial store writes.
func (s *SyncService) RunSweep(ctx context.Context) error {
	log := s.logger.With(slog.String("sweep_id", uuid.NewString()))

	retailers, err := s.store.ListRetailers(ctx)
	if err != nil {
		return fmt.Errorf("list retailers: %w", err)
	}
	campaigns, err := s.store.ListCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("list campaigns: %w", err)
	}
	byRetailer := make(map[string][]domain.CoopCampaignConfig)
	for _, c := range campaigns {
		byRetailer[c.RetailerName] = append(byRetailer[c.RetailerName], c)
	}
	log.Info("sweep started",
		slog.Int("retailers", len(retailers)), slog.Int("campaigns", len(campaigns)))

	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i := range retailers {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn("sweep cancelled", slog.Any("error", err))
			break
		}
		r := retailers[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			s.syncRetailer(ctx, log, &r, byRetailer[r.Name])
		}()
	}
	wg.Wait()
	log.Info("sweep finished")
	return nil
}

// syncRetailer reconciles one retailer: aggregate refresh when due,
// otherwise individual campaign refreshes. The two are mutually
// exclusive within a sweep since an aggregate refresh makes every
// campaign view stale anyway; those are picked up next sweep.
func (s *SyncService) syncRetailer(ctx context.Context, log *slog.Logger, r *domain.RetailerConfig, campaigns []domain.CoopCampaignConfig) {
	ready, err := s.eval.SourceTableReady(ctx, r)
	if err != nil {
		log.Error("source readiness check failed",
			slog.String("retailer", r.Name), slog.Any("error", err))
		return
	}
	if !ready {
		log.Info("waiting on source table", slog.String("retailer", r.Name))
		return
	}

	now := s.now()
	if r.IsActive {
		due, err := s.eval.RetailerSyncDue(r, now)
		if err != nil {
			log.Error("retailer staleness check failed",
				slog.String("retailer", r.Name), slog.Any("error", err))
			return
		}
		if due {
			if err := s.wh.Exec(ctx, "refresh_retailer", retailerParams(r)); err != nil {
				log.Error("retailer refresh failed",
					slog.String("retailer", r.Name), slog.Any("error", err))
				return
			}
			// A crash before this write only causes a redundant refresh on
			// the next sweep; the refresh itself is idempotent.
			ts := now.UTC()
			r.LastSyncedAt = &ts
			r.ModifiedAt = ts
			if err := s.store.UpdateRetailer(ctx, r); err != nil {
				log.Error("recording sync timestamp failed",
					slog.String("retailer", r.Name), slog.Any("error", err))
				return
			}
			log.Info("retailer refreshed", slog.String("retailer", r.Name))
			return
		}
	}

	for i := range campaigns {
		if ctx.Err() != nil {
			return
		}
		c := &campaigns[i]
		if !c.IsActive {
			continue
		}
		due, err := s.eval.CampaignSyncDue(ctx, r, c)
		if err != nil {
			log.Error("campaign staleness check failed",
				slog.String("campaign", c.Name), slog.Any("error", err))
			continue
		}
		if !due {
			continue
		}
		if err := s.wh.Exec(ctx, "create_or_update_campaign", campaignParams(c, r)); err != nil {
			log.Error("campaign refresh failed",
				slog.String("campaign", c.Name), slog.Any("error", err))
			continue
		}
		log.Info("campaign refreshed", slog.String("campaign", c.Name))
	}
}
