package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pagesmith/internal/models"
	"pagesmith/internal/theme"
)

// Seed inserts the initial landing document if the config row does not
// exist yet. The seeded site has a single published "home" page with a
// hero, a features grid, and a call to action, so a fresh install renders
// something meaningful immediately.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM landing_config").Scan(&count); err != nil {
		return fmt.Errorf("seed check config: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	doc := defaultDocument()
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("seed marshal document: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO landing_config (id, doc, version, updated_at)
		VALUES (1, $1, 1, now())
	`, raw)
	if err != nil {
		return fmt.Errorf("seed insert config: %w", err)
	}

	slog.Info("database seeded with default landing document", "pages", len(doc.Pages))
	return nil
}

// defaultDocument builds the starter site document.
func defaultDocument() *models.LandingConfig {
	now := time.Now()
	pageID := uuid.NewString()

	page := models.LandingPage{
		ID:          pageID,
		Title:       "Welcome",
		Description: "Your new landing page",
		Slug:        "home",
		Theme:       theme.DefaultID,
		SEO: models.SEOConfig{
			MetaTitle:       "Welcome",
			MetaDescription: "Your new landing page, ready to customize.",
		},
		Status:    models.PageStatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
		Components: []models.Component{
			{
				ID:    uuid.NewString(),
				Type:  models.TypeHero,
				Order: 0,
				Config: mustRaw(models.HeroConfig{
					Title:       "Build your landing page",
					Subtitle:    "Everything in one document",
					Description: "Compose pages from typed sections, pick a theme, publish.",
					PrimaryCTA:  &models.CTAButton{Text: "Get started", Link: "#features"},
					Background:  models.BackgroundConfig{Type: models.BackgroundGradient, Gradient: &models.GradientConfig{From: "#1e3a5f", To: "#0f172a", Direction: "to-br"}},
				}),
			},
			{
				ID:    uuid.NewString(),
				Type:  models.TypeFeatures,
				Order: 1,
				Config: mustRaw(models.FeaturesConfig{
					Title:   "Features",
					Columns: 3,
					Features: []models.FeatureItem{
						{Title: "Typed sections", Description: "Fifteen component types with structured configuration.", Icon: "🧩"},
						{Title: "Themes", Description: "Five built-in palettes applied per page.", Icon: "🎨"},
						{Title: "Fast", Description: "Rendered server-side and cached.", Icon: "⚡"},
					},
				}),
			},
			{
				ID:    uuid.NewString(),
				Type:  models.TypeCTA,
				Order: 2,
				Config: mustRaw(models.CTAConfig{
					Title:       "Ready to publish?",
					Description: "Open the dashboard and make this page yours.",
					PrimaryCTA:  &models.CTAButton{Text: "Open dashboard", Link: "/api/dashboard"},
					Background:  models.BackgroundConfig{Type: models.BackgroundSolid, Color: "#0f172a"},
				}),
			},
		},
	}

	return &models.LandingConfig{
		Version: "1.0",
		Metadata: models.Metadata{
			LastUpdated: now,
			TotalPages:  1,
			Version:     "1.0",
		},
		Themes: theme.All(),
		Pages:  map[string]models.LandingPage{pageID: page},
	}
}

// mustRaw marshals a component config struct. The seed structs are static
// and always marshal cleanly.
func mustRaw(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
