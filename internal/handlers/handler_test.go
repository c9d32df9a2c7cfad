// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Integration tests for the document API. Skipped when PostgreSQL or
// Valkey are unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"pagesmith/internal/cache"
	"pagesmith/internal/database"
	"pagesmith/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testEnv wires the handler groups against a real database and Valkey,
// with a freshly seeded document per test.
type testEnv struct {
	router chi.Router
	store  *store.ConfigStore
	db     *sql.DB
}

func newTestEnv(t *testing.T) *testEnv {
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
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec("DELETE FROM landing_config"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	configStore := store.NewConfigStore(db)
	pageCache := cache.NewPageCache(client, time.Minute)
	cfgHandlers := NewConfig(configStore, pageCache)
	publicHandlers := NewPublic(configStore, pageCache)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/config", func(r chi.Router) {
			r.Get("/", cfgHandlers.Get)
			r.Post("/", cfgHandlers.Replace)
			r.Put("/pages/{pageID}", cfgHandlers.UpsertPage)
			r.Delete("/pages/{pageID}", cfgHandlers.DeletePage)
		})
		r.Route("/pages", func(r chi.Router) {
			r.Post("/", cfgHandlers.CreatePage)
			r.Post("/{pageID}/duplicate", cfgHandlers.DuplicatePage)
			r.Get("/{pageID}/export", cfgHandlers.ExportPage)
			r.Post("/{pageID}/import", cfgHandlers.ImportPage)
		})
		r.Get("/templates", cfgHandlers.ListTemplates)
		r.Get("/dashboard", cfgHandlers.Dashboard)
	})
	r.Get("/", publicHandlers.Homepage)
	r.Get("/{slug}", publicHandlers.Page)

	return &testEnv{router: r, store: configStore, db: db}
}

// do runs one request through the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, target string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorder body, failing the test on bad JSON.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
