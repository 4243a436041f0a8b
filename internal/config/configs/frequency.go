package configs

import (
	"fmt"
	"time"
)

// Frequency backends.
const (
	FrequencyMemory   = "memory"
	FrequencyRedis    = "redis"
	FrequencyPostgres = "postgres"
)

// Frequency configures the frequency ledger. The limits and windows replace
// the default policy of three impressions and one click a day.
type Frequency struct {
	// Backend selects where counters live: memory, redis or postgres.
	Backend string `env:"BACKEND" envDefault:"memory"`

	ImpressionLimit  int64         `env:"IMPRESSION_LIMIT" envDefault:"3"`
	ImpressionWindow time.Duration `env:"IMPRESSION_WINDOW" envDefault:"24h"`
	ClickLimit       int64         `env:"CLICK_LIMIT" envDefault:"1"`
	ClickWindow      time.Duration `env:"CLICK_WINDOW" envDefault:"24h"`

	// SweepInterval is how often expired counters are purged by the memory
	// and postgres backends.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
}

// Validate rejects an unknown backend and non-positive caps.
func (c Frequency) Validate() error {
	switch c.Backend {
	case FrequencyMemory, FrequencyRedis, FrequencyPostgres:
	default:
		return fmt.Errorf("unknown frequency backend %q", c.Backend)
	}
	if c.ImpressionLimit <= 0 || c.ClickLimit <= 0 {
		return fmt.Errorf("frequency limits must be positive")
	}
	if c.ImpressionWindow <= 0 || c.ClickWindow <= 0 {
		return fmt.Errorf("frequency windows must be positive")
	}
	return nil
}
