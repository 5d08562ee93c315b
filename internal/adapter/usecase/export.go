package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"coop-sync/internal/core/port"
)

// ExportService produces the delimited conversion feed the advertising
// platform's offline-conversion import consumes.
type ExportService struct {
	store  port.ConfigStore
	wh     port.Warehouse
	logger *slog.Logger
}

// NewExportService creates the export pipeline.
func NewExportService(store port.ConfigStore, wh port.Warehouse, logger *slog.Logger) *ExportService {
	return &ExportService{store: store, wh: wh, logger: logger}
}

// ExportConversions returns the campaign's conversions as CSV text.
// Unknown campaign or retailer names return ErrNotFound. An inactive
// campaign yields ("", nil) without touching the warehouse, and any
// query or serialization failure collapses into the same "no data"
// outcome after logging: callers treat missing conversions as routine.
func (s *ExportService) ExportConversions(ctx context.Context, campaign string) (string, error) {
	c, err := s.store.GetCampaign(ctx, campaign)
	if err != nil {
		return "", err
	}
	r, err := s.store.GetRetailer(ctx, c.RetailerName)
	if err != nil {
		return "", err
	}
	if !c.IsActive {
		s.logger.Info("campaign inactive, no conversions exported",
			slog.String("campaign", c.Name))
		return "", nil
	}

	rs, err := s.wh.Query(ctx, "ad_platform_conversions", campaignParams(c, r))
	if err != nil {
		s.logger.Error("conversion export query failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
		return "", nil
	}
	out, err := toCSV(rs)
	if err != nil {
		s.logger.Error("conversion export serialization failed",
			slog.String("campaign", c.Name), slog.Any("error", err))
		return "", nil
	}
	return out, nil
}

// toCSV serializes a result set with a header row. Column names get
// their underscores replaced by spaces: the offline-conversion import
// expects human-readable headers. Column order is preserved.
func toCSV(rs *port.ResultSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		header[i] = strings.ReplaceAll(col, "_", " ")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	record := make([]string, len(rs.Columns))
	for _, row := range rs.Rows {
		if len(row) != len(rs.Columns) {
			return "", fmt.Errorf("row has %d values, want %d", len(row), len(rs.Columns))
		}
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return sb.String(), w.Error()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
