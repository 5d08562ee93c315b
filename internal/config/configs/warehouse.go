package configs

// Warehouse holds connection settings for the ClickHouse analytics
// store where retailer and campaign tables are derived.
type Warehouse struct {
	// Addr is the native-protocol address, host:port.
	Addr string `env:"ADDRESS" envDefault:"localhost:9000"`
	// Database is the default database for unqualified identifiers.
	Database string `env:"DATABASE" envDefault:"default"`
	User     string `env:"USER" envDefault:"default"`
	Password string `env:"PASSWORD" envDefault:""`
	// MaxConns bounds the number of open connections; the sweep worker
	// pool should not exceed it.
	MaxConns int `env:"MAX_CONNS" envDefault:"5"`
}
