package config

import (
	"testing"
	"time"
)

// clearEnv resets every variable Load reads so test runs are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"ASSETS_DIR", "AUTOSAVE_INTERVAL_SECONDS",
		"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if !cfg.IsDev() {
		t.Error("default env must be development")
	}
	if cfg.AssetsDir != "assets" {
		t.Errorf("AssetsDir = %q", cfg.AssetsDir)
	}
	if cfg.AutosaveInterval != 8*time.Second {
		t.Errorf("AutosaveInterval = %v", cfg.AutosaveInterval)
	}
	if cfg.HasS3() {
		t.Error("S3 must be off without credentials")
	}
}

func TestLoadDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "site")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "postgres://u:p@db.internal:5433/site?sslmode=disable"
	if cfg.DSN() != want {
		t.Errorf("DSN = %q, want %q", cfg.DSN(), want)
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("production with the default password must fail")
	}
}

func TestLoadAutosaveInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTOSAVE_INTERVAL_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AutosaveInterval != 30*time.Second {
		t.Errorf("AutosaveInterval = %v", cfg.AutosaveInterval)
	}

	t.Setenv("AUTOSAVE_INTERVAL_SECONDS", "zero")
	if _, err := Load(); err == nil {
		t.Error("non-numeric interval must fail")
	}

	t.Setenv("AUTOSAVE_INTERVAL_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Error("zero interval must fail")
	}
}

func TestHasS3(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_ENDPOINT", "https://s3.example.com")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.HasS3() {
		t.Error("HasS3 must be true with endpoint and credentials")
	}
	if cfg.S3Bucket != "pagesmith-media" {
		t.Errorf("S3Bucket default = %q", cfg.S3Bucket)
	}
}
