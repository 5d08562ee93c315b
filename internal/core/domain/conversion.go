package domain

// Conversion is one offline conversion in the shape the
// campaign-management batch-insert API expects. Ordinal is always 1:
// each click contributes a single de-duplicated conversion per upload.
type Conversion struct {
	Kind                      string  `json:"kind"`
	FloodlightActivityID      string  `json:"floodlightActivityId"`
	FloodlightConfigurationID string  `json:"floodlightConfigurationId"`
	Ordinal                   int     `json:"ordinal"`
	TimestampMicros           int64   `json:"timestampMicros"`
	ClickID                   string  `json:"dclid"`
	Quantity                  int64   `json:"quantity"`
	Value                     float64 `json:"value"`
}

// ConversionKind is the API resource kind for a single conversion.
const ConversionKind = "dfareporting#conversion"
