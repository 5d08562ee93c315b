package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

// defaultBatchSize is the campaign-management API's per-request
// conversion limit.
const defaultBatchSize = 1000

// DeliveryService batches and uploads conversions for every active
// campaign with a campaign-management destination.
type DeliveryService struct {
	store     port.ConfigStore
	wh        port.Warehouse
	uploader  port.ConversionUploader
	logger    *slog.Logger
	batchSize int
}

// NewDeliveryService creates the delivery pipeline. batchSize values
// below 1 fall back to the API limit.
func NewDeliveryService(store port.ConfigStore, wh port.Warehouse, uploader port.ConversionUploader, logger *slog.Logger, batchSize int) *DeliveryService {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &DeliveryService{store: store, wh: wh, uploader: uploader, logger: logger, batchSize: batchSize}
}

// DeliverAll uploads conversions for every qualifying campaign and
// returns an aggregate report. Item-level upload failures land in the
// report, never in the error return; a campaign whose API calls fail
// outright is logged and skipped. The error return is reserved for
// failing to list campaigns at all.
func (s *DeliveryService) DeliverAll(ctx context.Context) (*port.DeliveryReport, error) {
	campaigns, err := s.store.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	report := &port.DeliveryReport{}
	for i := range campaigns {
		if ctx.Err() != nil {
			break
		}
		c := &campaigns[i]
		if !c.IsActive {
			continue
		}
		dest := c.CampaignManagerDestination()
		if dest == nil {
			s.logger.Info("no campaign-manager destination, skipping",
				slog.String("campaign", c.Name))
			continue
		}
		s.deliverCampaign(ctx, c, dest, report)
	}
	return report, nil
}

func (s *DeliveryService) deliverCampaign(ctx context.Context, c *domain.CoopCampaignConfig, dest *domain.CampaignManagerDest, report *port.DeliveryReport) {
	r, err := s.store.GetRetailer(ctx, c.RetailerName)
	if err != nil {
		s.logger.Error("resolving retailer failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
		return
	}
	rs, err := s.wh.Query(ctx, "campaign_manager_conversions", campaignParams(c, r))
	if err != nil {
		s.logger.Error("conversion query failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
		return
	}
	conversions, err := buildConversions(rs, dest)
	if err != nil {
		s.logger.Error("mapping conversions failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
		return
	}

	for batch := 0; batch*s.batchSize < len(conversions); batch++ {
		end := (batch + 1) * s.batchSize
		if end > len(conversions) {
			end = len(conversions)
		}
		chunk := conversions[batch*s.batchSize : end]

		status, err := s.uploader.UploadBatch(ctx, dest.ProfileID, chunk)
		if err != nil {
			s.logger.Error("batch upload failed, skipping remaining batches",
				slog.String("campaign", c.Name), slog.Int("batch", batch), slog.Any("error", err))
			return
		}

		failed := 0
		if status.HasFailures {
			for _, item := range status.Items {
				if len(item) == 0 {
					continue
				}
				failed++
				for _, e := range item {
					report.Errors = append(report.Errors, port.UploadError{
						Campaign: c.Name,
						Batch:    batch,
						Code:     e.Code,
						Message:  e.Message,
					})
				}
			}
			s.logger.Warn("batch uploaded with item failures",
				slog.String("campaign", c.Name), slog.Int("batch", batch), slog.Int("failed", failed))
		}
		report.Successes = append(report.Successes, port.UploadOutcome{
			Campaign: c.Name,
			Batch:    batch,
			Uploaded: len(chunk) - failed,
		})
	}
}

// buildConversions maps raw warehouse rows into the destination API's
// conversion record shape.
func buildConversions(rs *port.ResultSet, dest *domain.CampaignManagerDest) ([]domain.Conversion, error) {
	tsIdx := rs.Index("Conversion_Timestamp")
	clickIdx := rs.Index("Google_Click_ID")
	qtyIdx := rs.Index("Conversion_Quantity")
	valIdx := rs.Index("Conversion_Value")
	if tsIdx < 0 || clickIdx < 0 || qtyIdx < 0 || valIdx < 0 {
		return nil, fmt.Errorf("conversion columns missing, got %v", rs.Columns)
	}

	out := make([]domain.Conversion, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		ts, err := asInt64(row[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("conversion timestamp: %w", err)
		}
		qty, err := asInt64(row[qtyIdx])
		if err != nil {
			return nil, fmt.Errorf("conversion quantity: %w", err)
		}
		val, err := asFloat64(row[valIdx])
		if err != nil {
			return nil, fmt.Errorf("conversion value: %w", err)
		}
		out = append(out, domain.Conversion{
			Kind:                      domain.ConversionKind,
			FloodlightActivityID:      dest.FloodlightActivityID,
			FloodlightConfigurationID: dest.FloodlightConfigurationID,
			Ordinal:                   1,
			TimestampMicros:           ts,
			ClickID:                   fmt.Sprint(row[clickIdx]),
			Quantity:                  qty,
			Value:                     val,
		})
	}
	return out, nil
}

func asInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case int32:
		return int64(val), nil
	case int:
		return int64(val), nil
	case uint64:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case float64:
		return int64(val), nil
	case time.Time:
		return val.UnixMicro(), nil
	case string:
		return strconv.ParseInt(val, 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", v)
	}
}

func asFloat64(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", v)
	}
}
