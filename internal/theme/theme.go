// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme holds the static theme registry and turns a theme into the
// CSS custom properties scoped to a rendered page. The registry is the
// single source of truth for rendering; theme entries stored inside the
// configuration document are carried along for display only.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"pagesmith/internal/models"
)

// DefaultID is the theme used when a page references an unknown theme.
const DefaultID = "modern"

var registry = map[string]models.Theme{
	"modern": {
		Name: "Modern",
		Colors: models.ColorScheme{
			Primary:    "#3b82f6",
			Secondary:  "#8b5cf6",
			Accent:     "#06b6d4",
			Background: "#ffffff",
			Surface:    "#f9fafb",
			Text:       "#111827",
			TextMuted:  "#6b7280",
		},
		Fonts: models.FontScheme{
			Heading: "'Inter', system-ui, sans-serif",
			Body:    "'Inter', system-ui, sans-serif",
		},
		BorderRadius: "0.75rem",
		Shadows:      "modern",
	},
	"elegant": {
		Name: "Elegant",
		Colors: models.ColorScheme{
			Primary:    "#1e293b",
			Secondary:  "#b45309",
			Accent:     "#ca8a04",
			Background: "#fffbf5",
			Surface:    "#faf5ec",
			Text:       "#1c1917",
			TextMuted:  "#78716c",
		},
		Fonts: models.FontScheme{
			Heading: "'Playfair Display', Georgia, serif",
			Body:    "'Source Serif Pro', Georgia, serif",
		},
		BorderRadius: "0.25rem",
		Shadows:      "sm",
	},
	"playful": {
		Name: "Playful",
		Colors: models.ColorScheme{
			Primary:    "#ec4899",
			Secondary:  "#f97316",
			Accent:     "#a855f7",
			Background: "#fdf2f8",
			Surface:    "#ffffff",
			Text:       "#27272a",
			TextMuted:  "#71717a",
		},
		Fonts: models.FontScheme{
			Heading: "'Poppins', system-ui, sans-serif",
			Body:    "'Nunito', system-ui, sans-serif",
		},
		BorderRadius: "1.5rem",
		Shadows:      "lg",
	},
	"corporate": {
		Name: "Corporate",
		Colors: models.ColorScheme{
			Primary:    "#0f766e",
			Secondary:  "#115e59",
			Accent:     "#0891b2",
			Background: "#ffffff",
			Surface:    "#f0fdfa",
			Text:       "#134e4a",
			TextMuted:  "#5f9ea0",
		},
		Fonts: models.FontScheme{
			Heading: "'IBM Plex Sans', system-ui, sans-serif",
			Body:    "'IBM Plex Sans', system-ui, sans-serif",
		},
		BorderRadius: "0.375rem",
		Shadows:      "md",
	},
	"dark": {
		Name: "Dark",
		Colors: models.ColorScheme{
			Primary:    "#818cf8",
			Secondary:  "#34d399",
			Accent:     "#f472b6",
			Background: "#0f172a",
			Surface:    "#1e293b",
			Text:       "#f1f5f9",
			TextMuted:  "#94a3b8",
		},
		Fonts: models.FontScheme{
			Heading: "'Inter', system-ui, sans-serif",
			Body:    "'Inter', system-ui, sans-serif",
		},
		BorderRadius: "0.75rem",
		Shadows:      "xl",
	},
}

// shadowValues maps a theme's shadow style to a CSS box-shadow.
var shadowValues = map[string]string{
	"none":   "none",
	"sm":     "0 1px 2px rgba(0,0,0,0.05)",
	"md":     "0 4px 6px -1px rgba(0,0,0,0.1)",
	"lg":     "0 10px 15px -3px rgba(0,0,0,0.1)",
	"xl":     "0 20px 25px -5px rgba(0,0,0,0.15)",
	"modern": "0 8px 30px rgba(0,0,0,0.08)",
}

// Get returns the theme registered under id, falling back to the default
// theme for unknown or empty ids.
func Get(id string) models.Theme {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[DefaultID]
}

// IDs returns all registered theme ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns a copy of the registry, keyed by id. Used to seed new
// documents and to list themes in the dashboard.
func All() map[string]models.Theme {
	out := make(map[string]models.Theme, len(registry))
	for id, t := range registry {
		out[id] = t
	}
	return out
}

// CSSVariables renders the :root block exposing a theme's colors, fonts,
// radius, and shadow as custom properties for the page subtree.
func CSSVariables(t models.Theme) string {
	shadow := shadowValues[t.Shadows]
	if shadow == "" {
		shadow = shadowValues["modern"]
	}

	var b strings.Builder
	b.WriteString(":root{")
	fmt.Fprintf(&b, "--color-primary:%s;", t.Colors.Primary)
	fmt.Fprintf(&b, "--color-secondary:%s;", t.Colors.Secondary)
	fmt.Fprintf(&b, "--color-accent:%s;", t.Colors.Accent)
	fmt.Fprintf(&b, "--color-background:%s;", t.Colors.Background)
	fmt.Fprintf(&b, "--color-surface:%s;", t.Colors.Surface)
	fmt.Fprintf(&b, "--color-text:%s;", t.Colors.Text)
	fmt.Fprintf(&b, "--color-text-muted:%s;", t.Colors.TextMuted)
	fmt.Fprintf(&b, "--font-heading:%s;", t.Fonts.Heading)
	fmt.Fprintf(&b, "--font-body:%s;", t.Fonts.Body)
	fmt.Fprintf(&b, "--border-radius:%s;", t.BorderRadius)
	fmt.Fprintf(&b, "--shadow:%s;", shadow)
	b.WriteString("}")
	return b.String()
}
