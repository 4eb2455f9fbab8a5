package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	EventID     string        // default Sessionize event ID, may be empty
	BaseURL     string        // Sessionize API base URL
	HTTPTimeout time.Duration // timeout for upstream Sessionize calls
	HTTPAddr    string        // listen address for HTTP transport; empty means stdio
	CORSOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		EventID:     os.Getenv("SESSIONIZE_EVENT_ID"),
		BaseURL:     os.Getenv("SESSIONIZE_BASE_URL"),
		HTTPTimeout: 30 * time.Second,
		HTTPAddr:    os.Getenv("MCP_HTTP_ADDR"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sessionize.com"
	}

	if s := os.Getenv("SESSIONIZE_TIMEOUT"); s != "" {
		seconds, err := strconv.Atoi(s)
		if err != nil || seconds <= 0 {
			log.Printf("Warning: invalid SESSIONIZE_TIMEOUT %q, using default", s)
		} else {
			cfg.HTTPTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
