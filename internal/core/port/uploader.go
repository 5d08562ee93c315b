package port

import (
	"context"

	"coop-sync/internal/core/domain"
)

// ItemError is one per-conversion error reported by the destination API.
type ItemError struct {
	Code    string
	Message string
}

// BatchStatus is the outcome of one batch-insert request. Items holds
// one entry per submitted conversion, in submission order; an item with
// no errors was accepted.
type BatchStatus struct {
	HasFailures bool
	Items       [][]ItemError
}

// ConversionUploader pushes offline conversions to the
// campaign-management API. Batches must not exceed the API's
// per-request conversion limit.
type ConversionUploader interface {
	UploadBatch(ctx context.Context, profileID string, conversions []domain.Conversion) (*BatchStatus, error)
}
