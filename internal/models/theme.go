// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ColorScheme is the color palette of a theme.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
}

// FontScheme names the heading and body font stacks of a theme.
type FontScheme struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Theme bundles the colors, fonts, border radius, and shadow style applied
// to an entire page. The renderer resolves themes from the static registry
// in internal/theme; the Themes map in the document is carried for
// round-trip fidelity and admin display only.
type Theme struct {
	Name         string      `json:"name"`
	Colors       ColorScheme `json:"colors"`
	Fonts        FontScheme  `json:"fonts"`
	BorderRadius string      `json:"borderRadius"`
	Shadows      string      `json:"shadows"` // none, sm, md, lg, xl, modern
}
