package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_ADDR", "STORAGE_MODE", "MONGO_URI", "SNAPSHOT_CRON"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env != "dev" || cfg.HTTPAddr != ":8080" || cfg.Storage != "memory" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.SnapshotCron != "0 6 * * *" {
		t.Fatalf("SnapshotCron = %q", cfg.SnapshotCron)
	}
}

func TestLoadMongoRequiresURI(t *testing.T) {
	t.Setenv("STORAGE_MODE", "mongo")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when MONGO_URI is missing")
	}

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage != "mongo" || cfg.MongoDB != "propertree" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_MODE", "postgres")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown storage mode")
	}
}
