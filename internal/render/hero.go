// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeHero, renderHero) }

type heroData struct {
	section
	models.HeroConfig
	AlignClass string
	// Alignment restates section.Alignment: the two embedded structs both
	// carry an Alignment field, which makes the promoted name ambiguous to
	// the template.
	Alignment string
}

var heroTmpl = mustParse("hero", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.AlignClass}} {{.Alignment}}">
{{- if .Subtitle}}<p class="eyebrow{{if .Dark}} on-dark{{end}}">{{.Subtitle}}</p>{{end}}
<h1 class="hero-title{{if .Dark}} on-dark{{end}}">{{.Title}}</h1>
{{- if .Description}}<p class="hero-description{{if .Dark}} on-dark-muted{{end}}">{{.Description}}</p>{{end}}
{{- if or .PrimaryCTA .SecondaryCTA}}
<div class="hero-ctas">
{{- with .PrimaryCTA}}<a class="btn btn-primary" href="{{.Link}}">{{.Text}}</a>{{end}}
{{- with .SecondaryCTA}}<a class="btn btn-outline{{if $.Dark}} on-dark{{end}}" href="{{.Link}}">{{.Text}}</a>{{end}}
</div>
{{- end}}
{{- if .Image}}
<div class="hero-image"><img src="{{.Image}}" alt="{{.Title}}"></div>
{{- end}}
</div>
</section>`)

// renderHero lays the hero out left, center, or right; title and
// description switch to light text over dark backgrounds, and the
// optional hero image sits below the CTA row.
func renderHero(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.HeroConfig)
	if !ok {
		return "", fmt.Errorf("hero: unexpected config %T", cfg)
	}

	alignment := c.Alignment
	if alignment == "" {
		alignment = "center"
	}

	sec := newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{Alignment: alignment})
	data := heroData{
		section:    sec,
		HeroConfig: *c,
		AlignClass: "hero-" + alignment,
		Alignment:  sec.Alignment,
	}
	return execute(heroTmpl, "hero", data)
}
