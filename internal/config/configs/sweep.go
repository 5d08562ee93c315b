package configs

// Sweep configures the synchronization orchestrator.
type Sweep struct {
	// Workers bounds how many retailers are reconciled concurrently.
	// Size it to the warehouse's query concurrency limit.
	Workers int `env:"WORKERS" envDefault:"4"`
}
