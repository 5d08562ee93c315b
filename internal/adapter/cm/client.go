package cm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"coop-sync/internal/config/configs"
	"coop-sync/internal/core/domain"
	"coop-sync/internal/core/port"
)

const batchInsertKind = "dfareporting#conversionsBatchInsertRequest"

// Client implements port.ConversionUploader against the
// campaign-management batch-insert endpoint. Requests are authorized by
// an oauth2 client-credentials transport.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// NewClient builds an uploader from configuration. When no client
// credentials are configured the plain default client is used, which is
// what local test setups against a stub API want.
func NewClient(ctx context.Context, cfg configs.CampaignManager, logger *slog.Logger) *Client {
	httpClient := &http.Client{Timeout: 90 * time.Second}
	if cfg.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		httpClient = cc.Client(ctx)
		httpClient.Timeout = 90 * time.Second
	}
	return &Client{base: cfg.BaseURL, http: httpClient, logger: logger}
}

type batchInsertRequest struct {
	Kind        string              `json:"kind"`
	Conversions []domain.Conversion `json:"conversions"`
}

type batchInsertResponse struct {
	HasFailures bool `json:"hasFailures"`
	Status      []struct {
		Errors []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"status"`
}

// UploadBatch posts one conversions batch for the given user profile
// and maps the per-item statuses into a BatchStatus.
func (c *Client) UploadBatch(ctx context.Context, profileID string, conversions []domain.Conversion) (*port.BatchStatus, error) {
	body, err := json.Marshal(batchInsertRequest{Kind: batchInsertKind, Conversions: conversions})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/userprofiles/%s/conversions/batchinsert", c.base, profileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: batchinsert: %v", port.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("conversion upload rejected",
			slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return nil, fmt.Errorf("%w: batchinsert returned %s", port.ErrUnavailable, strconv.Itoa(resp.StatusCode))
	}

	var decoded batchInsertResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode batchinsert response: %w", err)
	}

	status := &port.BatchStatus{HasFailures: decoded.HasFailures}
	for _, item := range decoded.Status {
		var errs []port.ItemError
		for _, e := range item.Errors {
			errs = append(errs, port.ItemError{Code: e.Code, Message: e.Message})
		}
		status.Items = append(status.Items, errs)
	}
	return status, nil
}
