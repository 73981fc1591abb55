package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Mail delivery (Postmark)
	PostmarkToken  string `env:"POSTMARK_TOKEN"`
	MailFrom       string `env:"MAIL_FROM"`
	MailTo         string `env:"MAIL_TO"`
	PostmarkStream string `env:"POSTMARK_STREAM" envDefault:"outbound"`

	// Rate limiting
	RateLimitSecret string `env:"RL_SECRET"`
	RedisURL        string `env:"REDIS_URL"`

	// Client Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try the environment-specific .env file first, then the generic one.
	// godotenv never overwrites variables that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// MailConfigured reports whether the delivery settings required by the
// submission endpoints are all present. Absence is surfaced per request as a
// configuration fault rather than at boot, so the rest of the site keeps
// serving while credentials are being rotated.
func (c *Config) MailConfigured() bool {
	return c.PostmarkToken != "" && c.MailFrom != "" && c.MailTo != ""
}
