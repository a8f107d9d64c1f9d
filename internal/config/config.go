package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     int    `env:"PORT" envDefault:"4000"`
	Provider string `env:"PROVIDER" envDefault:"espn"`
	ESPN     ESPNConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	CORS     CORSConfig
}

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL   string        `env:"ESPN_BASE_URL" envDefault:"https://site.api.espn.com/apis/site/v2/sports"`
	Timeout   time.Duration `env:"ESPN_TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"ESPN_USER_AGENT"`
}

// LoggingConfig selects the slog handler and level.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// CORSConfig lists browser origins allowed to call the API. Empty disables CORS.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads configuration from environment variables, applying tag defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would fail later at startup.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: %s must be a valid port, got %d", envPort, c.Port)
	}
	switch c.Provider {
	case ProviderESPN, ProviderFixture:
	default:
		return fmt.Errorf("config: %s must be %q or %q, got %q", envProvider, ProviderESPN, ProviderFixture, c.Provider)
	}
	if c.ESPN.Timeout <= 0 {
		return fmt.Errorf("config: %s must be positive, got %s", envESPNTimeout, c.ESPN.Timeout)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("config: %s must be a valid port, got %d", envMetricsPort, c.Metrics.Port)
	}
	return nil
}
