package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"digigrow-web/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the web server (HTTP_).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the postgres
	// session store (PSQL_).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// API configures the REST backend client (API_).
	API configs.API `envPrefix:"API_"`

	// Session configures visitor sessions (SESSION_).
	Session configs.Session `envPrefix:"SESSION_"`

	// Telemetry configures tracing export (OTEL_).
	Telemetry configs.Telemetry `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails or a value is out of range, an error is returned. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Session.Store {
	case configs.StoreMemory, configs.StorePostgres:
	default:
		return fmt.Errorf("SESSION_STORE: unknown store %q", c.Session.Store)
	}
	if c.API.BaseURL.Scheme == "" || c.API.BaseURL.Host == "" {
		return fmt.Errorf("API_BASE_URL: %q is not an absolute URL", c.API.BaseURL.String())
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT: must be positive")
	}
	if c.Session.CSRFKey != "" && len(c.Session.CSRFKey) != 32 {
		return fmt.Errorf("SESSION_CSRF_KEY: must be 32 bytes, got %d", len(c.Session.CSRFKey))
	}
	return nil
}
