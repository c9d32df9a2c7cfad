// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"pagesmith/internal/models"
	"pagesmith/internal/style"
)

// section carries the presentation attributes shared by every component
// wrapper: resolved background, spacing/alignment classes, entrance
// animation, and the dark flag that switches text to light colors.
type section struct {
	Style     template.CSS // inline background declarations
	Classes   string       // section-level classes (padding, margin, animation)
	AnimStyle template.CSS // animation duration/delay overrides
	Container string       // container width class
	Alignment string       // text alignment class
	Dark      bool         // light text needed over this background
}

// sectionOptions tunes the parts that vary between component types.
type sectionOptions struct {
	ContainerWidth string
	Alignment      string
}

// newSection resolves the shared wrapper attributes for a component. The
// theme surface color is the fallback for solid backgrounds with no color.
func newSection(bg models.BackgroundConfig, sp models.SpacingConfig, anim models.AnimationConfig, th models.Theme, opts sectionOptions) section {
	layout := style.ResolveLayout(style.LayoutOptions{
		Spacing:        sp,
		ContainerWidth: opts.ContainerWidth,
		Alignment:      opts.Alignment,
	})

	classes := "section " + layout.Section
	var animStyle string
	if anim.Type != "" && anim.Type != "none" {
		classes += " anim anim-" + anim.Type
		if anim.Duration > 0 {
			animStyle += fmt.Sprintf("animation-duration:%dms;", anim.Duration)
		}
		if anim.Delay > 0 {
			animStyle += fmt.Sprintf("animation-delay:%dms;", anim.Delay)
		}
	}

	return section{
		Style:     template.CSS(style.BackgroundStyle(bg, th.Colors.Surface)),
		Classes:   classes,
		AnimStyle: template.CSS(animStyle),
		Container: layout.Container,
		Alignment: layout.Alignment,
		Dark:      style.IsBackgroundDark(bg),
	}
}

// header is the title/subtitle/description block most sections open with.
type header struct {
	Title       string
	Subtitle    string
	Description string
	Dark        bool
}

// headerTmpl is shared by the sections that use the standard intro block.
var headerTmpl = template.Must(template.New("sectionHeader").Parse(strings.TrimSpace(`
{{- if or .Title .Subtitle .Description}}<div class="section-header">
{{- if .Subtitle}}<p class="eyebrow{{if .Dark}} on-dark{{end}}">{{.Subtitle}}</p>{{end}}
{{- if .Title}}<h2 class="section-title{{if .Dark}} on-dark{{end}}">{{.Title}}</h2>{{end}}
{{- if .Description}}<p class="section-description{{if .Dark}} on-dark-muted{{end}}">{{.Description}}</p>{{end}}
</div>{{end}}`)))

// mustParse builds a component template that can reference the shared
// section header block.
func mustParse(name, text string) *template.Template {
	t := template.Must(headerTmpl.Clone())
	return template.Must(t.New(name).Parse(text))
}

// execute runs a named template into a template.HTML result.
func execute(t *template.Template, name string, data any) (template.HTML, error) {
	var b strings.Builder
	if err := t.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(b.String()), nil
}
