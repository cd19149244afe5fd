package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Stock    StockConfig
	Upload   UploadConfig
	Activity ActivityConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// StockConfig holds behavior switches for the stock ingestion pipeline.
type StockConfig struct {
	// AtomicCreate switches the direct create path from best-effort parallel
	// inserts to an all-or-none batch insert.
	AtomicCreate bool
}

// UploadConfig controls where import files land and how orphans are cleaned up.
type UploadConfig struct {
	Dir           string
	SweepSchedule string
	MaxAge        time.Duration
}

// ActivityConfig holds the optional activity webhook target.
type ActivityConfig struct {
	WebhookURL string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	atomicCreate, err := strconv.ParseBool(getenvWithDefault("ATOMIC_CREATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("ATOMIC_CREATE must be a boolean: %w", err)
	}

	maxAgeMinutes, err := strconv.Atoi(getenvWithDefault("UPLOAD_MAX_AGE_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("UPLOAD_MAX_AGE_MINUTES must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "stocktrack"),
		},
		Stock: StockConfig{
			AtomicCreate: atomicCreate,
		},
		Upload: UploadConfig{
			Dir:           getenvWithDefault("IMPORT_UPLOAD_DIR", "uploads"),
			SweepSchedule: getenvWithDefault("UPLOAD_SWEEP_SCHEDULE", "*/30 * * * *"),
			MaxAge:        time.Duration(maxAgeMinutes) * time.Minute,
		},
		Activity: ActivityConfig{
			WebhookURL: os.Getenv("ACTIVITY_WEBHOOK_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Upload.Dir == "" {
		return errors.New("IMPORT_UPLOAD_DIR must be provided")
	}

	if c.Upload.SweepSchedule == "" {
		return errors.New("UPLOAD_SWEEP_SCHEDULE must be provided")
	}

	if c.Upload.MaxAge <= 0 {
		return errors.New("UPLOAD_MAX_AGE_MINUTES must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
