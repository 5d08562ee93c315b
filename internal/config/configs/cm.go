package configs

// CampaignManager configures the offline-conversion upload API client.
// Credentials follow the OAuth2 client-credentials flow; the token URL
// and scopes are those of the campaign-management API.
type CampaignManager struct {
	// BaseURL is the API root, e.g. https://dfareporting.googleapis.com/dfareporting/v4.
	BaseURL string `env:"BASE_URL" envDefault:"https://dfareporting.googleapis.com/dfareporting/v4"`
	// BatchSize is the per-request conversion limit imposed by the API.
	BatchSize int `env:"BATCH_SIZE" envDefault:"1000"`

	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	TokenURL     string   `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	Scopes       []string `env:"SCOPES" envSeparator:"," envDefault:"https://www.googleapis.com/auth/ddmconversions"`
}
