package database

import (
	"encoding/json"
	"testing"

	"github.com/pressly/goose/v3"

	"pagesmith/internal/models"
	"pagesmith/internal/theme"
)

// TestDefaultDocument checks the seed payload without a database.
func TestDefaultDocument(t *testing.T) {
	doc := defaultDocument()

	if doc.Version == "" {
		t.Error("document version missing")
	}
	if len(doc.Themes) != len(theme.All()) {
		t.Errorf("seeded themes = %d, want %d", len(doc.Themes), len(theme.All()))
	}
	if doc.Metadata.TotalPages != len(doc.Pages) {
		t.Error("metadata totalPages out of sync")
	}

	_, home := doc.PageBySlug("home")
	if home == nil {
		t.Fatal("seed must create a home page")
	}
	if !home.IsPublished() {
		t.Error("home page must be published")
	}
	if home.Theme != theme.DefaultID {
		t.Errorf("home theme = %q", home.Theme)
	}

	// Every seeded component must decode into its typed config.
	for _, c := range home.Components {
		if c.ID == "" {
			t.Error("seeded component missing id")
		}
		v, err := c.DecodeConfig()
		if err != nil {
			t.Errorf("component %s config invalid: %v", c.Type, err)
		}
		if v == nil {
			t.Errorf("component %s decoded to nil", c.Type)
		}
	}

	// The document must survive a JSON round trip unchanged in shape.
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back models.LandingConfig
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Pages) != len(doc.Pages) {
		t.Error("pages lost in round trip")
	}
}

// TestSeedIdempotent runs Seed twice against a real database and expects
// one document row. Skipped when PostgreSQL is unavailable.
func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not reachable: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if _, err := db.Exec("DELETE FROM landing_config"); err != nil {
		t.Fatal(err)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM landing_config").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}
