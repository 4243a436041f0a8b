package configs

import "time"

// Redis configures the client used by the redis frequency backend.
type Redis struct {
	URL          string        `env:"URL" envDefault:"redis://localhost:6379/0"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"50"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"10"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	IOTimeout    time.Duration `env:"IO_TIMEOUT" envDefault:"3s"`
	// KeyPrefix namespaces counter keys.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"freq"`
}
