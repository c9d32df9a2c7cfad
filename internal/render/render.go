// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns a page's component list into HTML. A registry maps
// each component type to its renderer; the dispatcher filters invisible
// components, orders the rest, and isolates each render so one malformed
// component degrades to a placeholder instead of blanking the page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"strings"

	"pagesmith/internal/models"
	"pagesmith/internal/theme"
)

// renderFunc produces the HTML for one component given its decoded config.
type renderFunc func(cfg any, th models.Theme) (template.HTML, error)

// registry maps component types to their renderers. Populated at init by
// each component file.
var registry = map[models.ComponentType]renderFunc{}

func register(t models.ComponentType, fn renderFunc) {
	registry[t] = fn
}

// Component renders a single component, never failing the page: decode
// errors, renderer errors, and renderer panics all degrade to an inline
// placeholder. Unknown types get a visible error placeholder and a log
// warning; reserved types a neutral one.
func Component(c models.Component, th models.Theme) (out template.HTML) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("component renderer panicked",
				"component", c.ID,
				"type", c.Type,
				"error", rec,
			)
			out = errorPlaceholder(c.Type)
		}
	}()

	fn, ok := registry[c.Type]
	if !ok {
		if c.Type.IsReserved() {
			return neutralPlaceholder(c.Type)
		}
		slog.Warn("unknown component type", "component", c.ID, "type", c.Type)
		return errorPlaceholder(c.Type)
	}

	cfg, err := c.DecodeConfig()
	if err != nil {
		slog.Warn("component config rejected", "component", c.ID, "type", c.Type, "error", err)
		return errorPlaceholder(c.Type)
	}

	html, err := fn(cfg, th)
	if err != nil {
		slog.Error("component render failed", "component", c.ID, "type", c.Type, "error", err)
		return errorPlaceholder(c.Type)
	}
	return html
}

// Components renders an ordered component list for the public view:
// invisible components are dropped, the rest are stable-sorted ascending
// by Order (ties keep document order) and rendered in sequence.
func Components(components []models.Component, th models.Theme) template.HTML {
	visible := make([]models.Component, 0, len(components))
	for _, c := range components {
		if c.IsVisible() {
			visible = append(visible, c)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	var b strings.Builder
	for _, c := range visible {
		b.WriteString(string(Component(c, th)))
	}
	return template.HTML(b.String())
}

var placeholderTmpl = template.Must(template.New("placeholder").Parse(
	`<section class="placeholder placeholder-{{.Kind}}"><p>{{.Message}}</p></section>`))

func renderPlaceholder(kind, message string) template.HTML {
	var buf bytes.Buffer
	if err := placeholderTmpl.Execute(&buf, struct{ Kind, Message string }{kind, message}); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// neutralPlaceholder marks a recognized type that has no renderer yet.
func neutralPlaceholder(t models.ComponentType) template.HTML {
	return renderPlaceholder("pending", fmt.Sprintf("Component type %q not yet implemented", t))
}

// errorPlaceholder marks an unknown type or a failed render.
func errorPlaceholder(t models.ComponentType) template.HTML {
	return renderPlaceholder("error", fmt.Sprintf("Component type %q could not be rendered", t))
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
{{- if .Keywords}}
<meta name="keywords" content="{{.Keywords}}">
{{- end}}
{{- if .OGImage}}
<meta property="og:image" content="{{.OGImage}}">
{{- end}}
<meta property="og:title" content="{{.Title}}">
{{- if .Canonical}}
<link rel="canonical" href="{{.Canonical}}">
{{- end}}
<style>{{.ThemeCSS}}</style>
<style>{{.BaseCSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Keywords    string
	OGImage     string
	Canonical   string
	ThemeCSS    template.CSS
	BaseCSS     template.CSS
	Body        template.HTML
}

// Page renders a complete HTML document for a landing page: SEO head,
// theme CSS variables, the shared component stylesheet, and the rendered
// component sequence. The page's theme id is resolved against the static
// registry; unknown ids fall back to the default theme.
func Page(page *models.LandingPage) ([]byte, error) {
	th := theme.Get(page.Theme)

	title := page.SEO.MetaTitle
	if title == "" {
		title = page.Title
	}
	description := page.SEO.MetaDescription
	if description == "" {
		description = page.Description
	}

	data := pageData{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(page.SEO.Keywords, ", "),
		OGImage:     page.SEO.OGImage,
		Canonical:   page.SEO.Canonical,
		ThemeCSS:    template.CSS(theme.CSSVariables(th)),
		BaseCSS:     template.CSS(baseStylesheet),
		Body:        Components(page.Components, th),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page %s: %w", page.Slug, err)
	}
	return buf.Bytes(), nil
}
