package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	keys := []string{
		"APP_PORT",
		"MONGODB_URI",
		"MONGODB_DB_NAME",
		"ATOMIC_CREATE",
		"IMPORT_UPLOAD_DIR",
		"UPLOAD_SWEEP_SCHEDULE",
		"UPLOAD_MAX_AGE_MINUTES",
		"ACTIVITY_WEBHOOK_URL",
	}

	originalEnv := make(map[string]string, len(keys))
	for _, key := range keys {
		originalEnv[key] = os.Getenv(key)
	}

	defer func() {
		for key, value := range originalEnv {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	clearEnv := func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
		assert.Equal(t, "stocktrack", cfg.MongoDB.DBName)
		assert.False(t, cfg.Stock.AtomicCreate)
		assert.Equal(t, "uploads", cfg.Upload.Dir)
		assert.Equal(t, "*/30 * * * *", cfg.Upload.SweepSchedule)
		assert.Equal(t, 60*time.Minute, cfg.Upload.MaxAge)
		assert.Empty(t, cfg.Activity.WebhookURL)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		clearEnv()
		os.Setenv("APP_PORT", "9090")
		os.Setenv("ATOMIC_CREATE", "true")
		os.Setenv("UPLOAD_MAX_AGE_MINUTES", "15")
		os.Setenv("ACTIVITY_WEBHOOK_URL", "https://hooks.example.com/stock")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.True(t, cfg.Stock.AtomicCreate)
		assert.Equal(t, 15*time.Minute, cfg.Upload.MaxAge)
		assert.Equal(t, "https://hooks.example.com/stock", cfg.Activity.WebhookURL)
	})

	t.Run("rejects a non-boolean atomic flag", func(t *testing.T) {
		clearEnv()
		os.Setenv("ATOMIC_CREATE", "definitely")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric upload max age", func(t *testing.T) {
		clearEnv()
		os.Setenv("UPLOAD_MAX_AGE_MINUTES", "soon")

		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("rejects a non-positive upload max age", func(t *testing.T) {
		clearEnv()
		os.Setenv("UPLOAD_MAX_AGE_MINUTES", "0")

		_, err := Load("")
		assert.Error(t, err)
	})
}
