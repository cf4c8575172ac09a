package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env          string
	HTTPAddr     string
	Storage      string
	MongoURI     string
	MongoDB      string
	FixturesPath string
	SnapshotCron string
}

// Load parses configuration from the current environment. Storage defaults to
// the in-memory repository; "mongo" requires MONGO_URI.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "dev"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		Storage:      strings.ToLower(getEnv("STORAGE_MODE", "memory")),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "propertree"),
		FixturesPath: getEnv("ANALYTICS_FIXTURES", ""),
		SnapshotCron: getEnv("SNAPSHOT_CRON", "0 6 * * *"),
	}

	switch cfg.Storage {
	case "memory":
	case "mongo":
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=mongo")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_MODE %q", cfg.Storage)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
