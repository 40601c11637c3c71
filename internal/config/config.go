package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Recipe backend client configuration
	RecipesCfg RecipesConnectorConfig

	// Stub server configuration
	StubAddr string `env:"STUB_ADDR" envDefault:":3001"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`
}

// RecipesConnectorConfig configures the recipe backend connector. The
// health URL is deliberately separate from BaseURL: the backend serves
// /health outside its /api prefix.
type RecipesConnectorConfig struct {
	HTTPClientConfig
	BaseURL   string `env:"API_BASE_URL" envDefault:"http://localhost:3001/api"`
	HealthURL string `env:"HEALTH_URL" envDefault:"http://localhost:3001/health"`
}

// HTTPClientConfig holds transport-level settings for outbound calls.
// Defaults match a local development backend; production deployments
// override via environment.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"HTTP_CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"HTTP_KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"HTTP_IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"HTTP_RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads configuration from the environment, optionally
// seeded from a .env file. Missing .env is fine: in containerized
// environments variables are set externally.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Endpoints are appended with leading slashes
	cfg.RecipesCfg.BaseURL = strings.TrimSuffix(cfg.RecipesCfg.BaseURL, "/")

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	if _, err := url.ParseRequestURI(cfg.RecipesCfg.BaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("API_BASE_URL is not a valid URL: %v", err))
	}

	if _, err := url.ParseRequestURI(cfg.RecipesCfg.HealthURL); err != nil {
		errs = append(errs, fmt.Sprintf("HEALTH_URL is not a valid URL: %v", err))
	}

	if cfg.RecipesCfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("HTTP_TIMEOUT must be positive, got %s", cfg.RecipesCfg.RequestTimeout))
	}

	if cfg.RecipesCfg.ConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("HTTP_CONN_TIMEOUT must be positive, got %s", cfg.RecipesCfg.ConnTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
