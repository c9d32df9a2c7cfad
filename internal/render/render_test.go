// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"testing"

	"pagesmith/internal/models"
	"pagesmith/internal/theme"
)

func testTheme() models.Theme {
	return theme.Get(theme.DefaultID)
}

func rawConfig(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return raw
}

func TestComponentsFiltersInvisible(t *testing.T) {
	hidden := false
	components := []models.Component{
		{ID: "a", Type: models.TypeContent, Order: 0, Config: rawConfig(t, models.ContentConfig{Body: "<p>visible</p>"})},
		{ID: "b", Type: models.TypeContent, Order: 1, Visible: &hidden, Config: rawConfig(t, models.ContentConfig{Body: "<p>ghost</p>"})},
	}

	html := string(Components(components, testTheme()))
	if !strings.Contains(html, "visible") {
		t.Error("visible component missing from output")
	}
	if strings.Contains(html, "ghost") {
		t.Error("invisible component leaked into output")
	}
}

func TestComponentsStableOrder(t *testing.T) {
	// Two components share order 1; their document order must be kept.
	components := []models.Component{
		{ID: "c", Type: models.TypeContent, Order: 2, Config: rawConfig(t, models.ContentConfig{Body: "<p>third</p>"})},
		{ID: "a", Type: models.TypeContent, Order: 1, Config: rawConfig(t, models.ContentConfig{Body: "<p>first</p>"})},
		{ID: "b", Type: models.TypeContent, Order: 1, Config: rawConfig(t, models.ContentConfig{Body: "<p>second</p>"})},
	}

	html := string(Components(components, testTheme()))
	first := strings.Index(html, "first")
	second := strings.Index(html, "second")
	third := strings.Index(html, "third")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("missing component output: %v %v %v", first, second, third)
	}
	if !(first < second && second < third) {
		t.Errorf("order wrong: first=%d second=%d third=%d", first, second, third)
	}
}

func TestComponentUnknownType(t *testing.T) {
	c := models.Component{ID: "x", Type: "holographic-banner", Config: json.RawMessage(`{}`)}
	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "placeholder-error") {
		t.Errorf("unknown type must render an error placeholder: %q", html)
	}
}

func TestComponentReservedType(t *testing.T) {
	c := models.Component{ID: "x", Type: "gym-hero", Config: json.RawMessage(`{}`)}
	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "placeholder-pending") {
		t.Errorf("reserved type must render a neutral placeholder: %q", html)
	}
}

func TestComponentMalformedConfig(t *testing.T) {
	c := models.Component{ID: "x", Type: models.TypeFAQ, Config: json.RawMessage(`{"items":"nope"}`)}
	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "placeholder-error") {
		t.Errorf("malformed config must render an error placeholder: %q", html)
	}
}

func TestComponentPanicIsolation(t *testing.T) {
	const panicType = models.ComponentType("panic-probe")
	register(panicType, func(cfg any, th models.Theme) (template.HTML, error) {
		panic("renderer exploded")
	})
	defer delete(registry, panicType)

	components := []models.Component{
		{ID: "boom", Type: panicType, Config: json.RawMessage(`{}`)},
		{ID: "ok", Type: models.TypeContent, Order: 1, Config: rawConfig(t, models.ContentConfig{Body: "<p>survivor</p>"})},
	}

	html := string(Components(components, testTheme()))
	if !strings.Contains(html, "placeholder-error") {
		t.Error("panicking component must degrade to an error placeholder")
	}
	if !strings.Contains(html, "survivor") {
		t.Error("a panicking component must not take down its siblings")
	}
}

func TestHeroAlignmentAndDarkText(t *testing.T) {
	cfg := models.HeroConfig{
		Title:      "Launch",
		Alignment:  "left",
		PrimaryCTA: &models.CTAButton{Text: "Go", Link: "/go"},
		Background: models.BackgroundConfig{
			Type:     models.BackgroundGradient,
			Gradient: &models.GradientConfig{From: "#0f172a", To: "#1e3a5f"},
		},
	}
	c := models.Component{ID: "h", Type: models.TypeHero, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "hero-left") {
		t.Errorf("alignment class missing: %q", html)
	}
	if !strings.Contains(html, "on-dark") {
		t.Error("dark gradient background must switch to light text")
	}
	if !strings.Contains(html, `href="/go"`) {
		t.Error("primary CTA missing")
	}
}

func TestPricingHighlightedBadge(t *testing.T) {
	cfg := models.PricingConfig{
		Title: "Plans",
		Plans: []models.PricingPlan{
			{ID: "1", Name: "Basic", Price: "$9"},
			{ID: "2", Name: "Pro", Price: "$29", Highlighted: true},
			{ID: "3", Name: "Max", Price: "$99", Highlighted: true, Badge: "Best Value"},
		},
	}
	c := models.Component{ID: "p", Type: models.TypePricing, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if strings.Count(html, "plan-highlighted") != 2 {
		t.Errorf("expected two highlighted plans: %q", html)
	}
	if !strings.Contains(html, "Most Popular") {
		t.Error("highlighted plan without custom badge must use the default")
	}
	if !strings.Contains(html, "Best Value") {
		t.Error("custom badge must override the default")
	}
}

func TestTestimonialStarsAndMeta(t *testing.T) {
	cfg := models.TestimonialsConfig{
		Title: "Voices",
		Testimonials: []models.TestimonialItem{
			{ID: "1", Name: "Ana", Role: "CTO", Company: "Acme", Rating: 4, Text: "Great"},
			{ID: "2", Name: "Bo", Company: "Initech", Text: "Fine"},
			{ID: "3", Name: "Cy", Role: "Designer", Text: "Nice"},
		},
	}
	c := models.Component{ID: "t", Type: models.TypeTestimonials, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "★★★★") || strings.Contains(html, "★★★★★") {
		t.Errorf("rating 4 must render exactly four stars: %q", html)
	}
	if !strings.Contains(html, "CTO, Acme") {
		t.Error("role and company must join with a comma")
	}
	if !strings.Contains(html, "Initech") {
		t.Error("company-only meta missing")
	}
	if !strings.Contains(html, "Designer") {
		t.Error("role-only meta missing")
	}
}

func TestFAQIndependentItems(t *testing.T) {
	cfg := models.FAQConfig{
		Title: "FAQ",
		Items: []models.FAQItem{
			{ID: "q1", Question: "One?", Answer: "Yes"},
			{ID: "q2", Question: "Two?", Answer: "Also"},
		},
	}
	c := models.Component{ID: "f", Type: models.TypeFAQ, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if strings.Count(html, "<details") != 2 {
		t.Errorf("each FAQ item must be its own details element: %q", html)
	}
}

func TestGalleryLightboxTargets(t *testing.T) {
	cfg := models.GalleryConfig{
		Images: []models.GalleryImage{
			{ID: "g1", URL: "/a.jpg", Title: "A"},
			{ID: "g2", URL: "/b.jpg"},
		},
	}
	c := models.Component{ID: "g", Type: models.TypeGallery, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if !strings.Contains(html, `href="#lightbox-g1"`) {
		t.Error("thumbnail must link to its lightbox anchor")
	}
	if !strings.Contains(html, `id="lightbox-g2"`) {
		t.Error("each image needs its lightbox element")
	}
}

func TestLogoCloudScrollDuplicatesTrack(t *testing.T) {
	cfg := models.LogoCloudConfig{
		Layout: "scroll",
		Logos: []models.LogoItem{
			{ID: "l1", Name: "Acme", URL: "/acme.png"},
		},
	}
	c := models.Component{ID: "l", Type: models.TypeLogoCloud, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if strings.Count(html, "logo-track") != 2 {
		t.Errorf("scroll layout must duplicate the track: %q", html)
	}
	if !strings.Contains(html, "logo-gray") {
		t.Error("grayscale must default to on")
	}
}

func TestLogoCloudGrayscaleOff(t *testing.T) {
	off := false
	cfg := models.LogoCloudConfig{
		Grayscale: &off,
		Logos:     []models.LogoItem{{ID: "l1", Name: "Acme", URL: "/acme.png"}},
	}
	c := models.Component{ID: "l", Type: models.TypeLogoCloud, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if strings.Contains(html, "logo-gray") {
		t.Error("grayscale=false must drop the gray class")
	}
}

func TestContentMarkdown(t *testing.T) {
	cfg := models.ContentConfig{Body: "# Heading\n\nSome **bold** text.", Format: "markdown"}
	c := models.Component{ID: "c", Type: models.TypeContent, Config: rawConfig(t, cfg)}

	html := string(Component(c, testTheme()))
	if !strings.Contains(html, "<h1") {
		t.Errorf("markdown heading not converted: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("markdown bold not converted: %q", html)
	}
}

func TestPageDocument(t *testing.T) {
	page := &models.LandingPage{
		ID:    "p1",
		Title: "Launch",
		Slug:  "launch",
		Theme: "dark",
		SEO: models.SEOConfig{
			MetaTitle:       "Launch Day",
			MetaDescription: "The big day",
			Keywords:        []string{"launch", "day"},
			Canonical:       "https://example.com/launch",
		},
		Components: []models.Component{
			{ID: "h", Type: models.TypeHero, Config: rawConfig(t, models.HeroConfig{Title: "Hello"})},
		},
	}

	out, err := Page(page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Launch Day</title>",
		`<meta name="description" content="The big day">`,
		"launch, day",
		`<link rel="canonical" href="https://example.com/launch">`,
		"--color-primary:",
		"Hello",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page document missing %q", want)
		}
	}
}

func TestPageFallsBackToPageTitle(t *testing.T) {
	page := &models.LandingPage{Title: "Plain", Slug: "plain", Theme: "nope"}
	out, err := Page(page)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if !strings.Contains(string(out), "<title>Plain</title>") {
		t.Error("missing SEO title must fall back to the page title")
	}
}

// Every implemented type must render something for an empty config; a
// renderer that chokes on zero values would break half-filled editors.
func TestAllRenderersTolerateEmptyConfig(t *testing.T) {
	types := []models.ComponentType{
		models.TypeHero, models.TypeFeatures, models.TypePricing,
		models.TypeTestimonials, models.TypeCTA, models.TypeFooter,
		models.TypeStats, models.TypeTeam, models.TypeFAQ, models.TypeGallery,
		models.TypeLogoCloud, models.TypeContact, models.TypeContent,
		models.TypeNewsletter, models.TypeVideo,
	}
	for _, typ := range types {
		t.Run(string(typ), func(t *testing.T) {
			c := models.Component{ID: fmt.Sprintf("e-%s", typ), Type: typ, Config: json.RawMessage(`{}`)}
			html := string(Component(c, testTheme()))
			if strings.Contains(html, "placeholder-error") {
				t.Errorf("%s must not error on an empty config", typ)
			}
			if !strings.Contains(html, "<section") {
				t.Errorf("%s produced no section: %q", typ, html)
			}
		})
	}
}
