package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data/cache.db", cfg.CachePath)
		assert.Equal(t, "drafts", cfg.OutputDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 24*time.Hour, cfg.AnalysisTTL)
		assert.Equal(t, 6*time.Hour, cfg.DraftTTL)
		assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 3, cfg.MaxRetries)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("CACHE_PATH", "/custom/cache.db")
		os.Setenv("ANTHROPIC_API_KEY", "sk-test")
		os.Setenv("ANALYSIS_TTL", "1h")
		os.Setenv("MAX_RETRIES", "5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/custom/cache.db", cfg.CachePath)
		assert.Equal(t, "sk-test", cfg.AnthropicAPIKey)
		assert.Equal(t, time.Hour, cfg.AnalysisTTL)
		assert.Equal(t, 5, cfg.MaxRetries)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("DRAFT_TTL", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DRAFT_TTL")
	})

	t.Run("invalid integer", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("MAX_RETRIES", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_RETRIES")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			CachePath:   "test.db",
			AnalysisTTL: time.Hour,
			DraftTTL:    time.Hour,
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing cache path", func(t *testing.T) {
		cfg := &Config{AnalysisTTL: time.Hour, DraftTTL: time.Hour}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_PATH")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := &Config{CachePath: "test.db", DraftTTL: time.Hour}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ANALYSIS_TTL")
	})
}

func TestConfig_ValidateForGenerate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			CachePath:       "test.db",
			AnalysisTTL:     time.Hour,
			DraftTTL:        time.Hour,
			OutputDir:       "drafts",
			AnthropicAPIKey: "sk-test",
		}
		assert.NoError(t, cfg.ValidateForGenerate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := &Config{
			CachePath:   "test.db",
			AnalysisTTL: time.Hour,
			DraftTTL:    time.Hour,
			OutputDir:   "drafts",
		}
		err := cfg.ValidateForGenerate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})

	t.Run("missing output dir", func(t *testing.T) {
		cfg := &Config{
			CachePath:       "test.db",
			AnalysisTTL:     time.Hour,
			DraftTTL:        time.Hour,
			AnthropicAPIKey: "sk-test",
		}
		err := cfg.ValidateForGenerate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OUTPUT_DIR")
	})
}
