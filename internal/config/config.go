package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string `env:"ENV" envDefault:"development"`

	// Server
	ServerAddr string `env:"SERVER_ADDR" envDefault:":3000"`

	// Remote catalog
	CatalogURL     string        `env:"CATALOG_URL" envDefault:"https://swapi.dev/api/planets/"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// Background refresh; 0 disables the refresher, leaving only the boot
	// crawl and manual triggers.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"0s"`

	// CORS
	CORSOrigins string `env:"CORS_ORIGINS"` // Comma-separated allowed origins
}

// Load reads configuration from environment variables with defaults applied.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
