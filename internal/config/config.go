package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-decision/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to traces as the deployment.environment attribute.
	Env string `env:"ENV" envDefault:"prod"`

	// Version is reported as service.version on traces.
	Version string `env:"VERSION" envDefault:"dev"`

	HTTP configs.HTTP     `envPrefix:"HTTP_"`
	Log  configs.Logger   `envPrefix:"LOG_"`
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis is only dialled when Frequency.Backend is "redis".
	Redis configs.Redis `envPrefix:"REDIS_"`

	Frequency configs.Frequency `envPrefix:"FREQ_"`
	Decision  configs.Decision  `envPrefix:"DECISION_"`
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Frequency.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
