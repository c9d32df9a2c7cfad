// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Integration tests for the document store. Skipped when PostgreSQL is
// unavailable.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagesmith/internal/database"
	"pagesmith/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test PostgreSQL, runs migrations, and seeds a fresh
// document for each test.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagesmith")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagesmith")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	// Reset the document row between tests.
	if _, err := db.Exec("DELETE FROM landing_config"); err != nil {
		db.Close()
		t.Fatalf("reset: %v", err)
	}
	if err := database.Seed(db); err != nil {
		db.Close()
		t.Fatalf("seed: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadSeededDocument(t *testing.T) {
	s := NewConfigStore(testDB(t))
	ctx := context.Background()

	cfg, version, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if version != 1 {
		t.Errorf("fresh document version = %d, want 1", version)
	}
	if len(cfg.Pages) != 1 {
		t.Errorf("seeded pages = %d, want 1", len(cfg.Pages))
	}
	if _, home := cfg.PageBySlug("home"); home == nil {
		t.Error("seeded document must have a home page")
	}
}

func TestSaveBumpsVersion(t *testing.T) {
	s := NewConfigStore(testDB(t))
	ctx := context.Background()

	cfg, version, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Version = "1.1"
	newVersion, err := s.Save(ctx, cfg, version)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if newVersion != version+1 {
		t.Errorf("version = %d, want %d", newVersion, version+1)
	}

	reloaded, v2, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if v2 != newVersion {
		t.Errorf("reloaded version = %d, want %d", v2, newVersion)
	}
	if reloaded.Version != "1.1" {
		t.Errorf("document change lost: %q", reloaded.Version)
	}
	if reloaded.Metadata.TotalPages != len(reloaded.Pages) {
		t.Error("save must stamp totalPages")
	}
}

func TestSaveDetectsConflict(t *testing.T) {
	s := NewConfigStore(testDB(t))
	ctx := context.Background()

	// Two editors load the same version.
	cfgA, version, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfgB, _, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Editor A wins.
	if _, err := s.Save(ctx, cfgA, version); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Editor B's stale save must be rejected.
	if _, err := s.Save(ctx, cfgB, version); !errors.Is(err, ErrVersionConflict) {
		t.Errorf("stale save error = %v, want ErrVersionConflict", err)
	}
}

func TestReplaceIgnoresVersion(t *testing.T) {
	s := NewConfigStore(testDB(t))
	ctx := context.Background()

	cfg := &models.LandingConfig{
		Version: "2.0",
		Pages:   map[string]models.LandingPage{},
	}
	newVersion, err := s.Replace(ctx, cfg)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if newVersion < 2 {
		t.Errorf("version = %d", newVersion)
	}

	reloaded, _, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Version != "2.0" || len(reloaded.Pages) != 0 {
		t.Errorf("replace not applied: %+v", reloaded)
	}
}

func TestLoadMissingRow(t *testing.T) {
	db := testDB(t)
	if _, err := db.Exec("DELETE FROM landing_config"); err != nil {
		t.Fatal(err)
	}

	s := NewConfigStore(db)
	if _, _, err := s.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load on empty table = %v, want ErrNotFound", err)
	}
}
