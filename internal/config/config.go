package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Anthropic API
	AnthropicAPIKey string
	Model           string

	// Cache
	CachePath   string        // Path to the sqlite cache (default: data/cache.db)
	AnalysisTTL time.Duration // How long extracted DNA stays valid
	DraftTTL    time.Duration // How long generated drafts stay valid

	// Output
	OutputDir string // Where generated drafts are written

	// Model call behavior
	RequestTimeout time.Duration
	MaxRetries     int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		Model:           getEnv("MODEL", ""),
		CachePath:       getEnv("CACHE_PATH", "data/cache.db"),
		OutputDir:       getEnv("OUTPUT_DIR", "drafts"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations
	var err error
	cfg.AnalysisTTL, err = time.ParseDuration(getEnv("ANALYSIS_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYSIS_TTL: %w", err)
	}

	cfg.DraftTTL, err = time.ParseDuration(getEnv("DRAFT_TTL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
	}

	cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	// Parse integers
	retries, err := strconv.Atoi(getEnv("MAX_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_RETRIES: %w", err)
	}
	cfg.MaxRetries = retries

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.CachePath == "" {
		return fmt.Errorf("CACHE_PATH is required")
	}
	if c.AnalysisTTL <= 0 {
		return fmt.Errorf("ANALYSIS_TTL must be positive")
	}
	if c.DraftTTL <= 0 {
		return fmt.Errorf("DRAFT_TTL must be positive")
	}
	return nil
}

// ValidateForGenerate checks configuration needed for draft generation.
func (c *Config) ValidateForGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required for generation")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required for generation")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
