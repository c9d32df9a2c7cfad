// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeCTA, renderCTA) }

type ctaData struct {
	section
	models.CTAConfig
}

var ctaTmpl = mustParse("cta", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
<h2 class="section-title{{if .Dark}} on-dark{{end}}">{{.Title}}</h2>
<p class="section-description{{if .Dark}} on-dark-muted{{end}}">{{.Description}}</p>
<div class="hero-ctas" style="justify-content:center;margin-top:2rem">
{{- with .PrimaryCTA}}<a class="btn btn-primary" href="{{.Link}}">{{.Text}}</a>{{end}}
{{- with .SecondaryCTA}}<a class="btn btn-outline{{if $.Dark}} on-dark{{end}}" href="{{.Link}}">{{.Text}}</a>{{end}}
</div>
</div>
</section>`)

func renderCTA(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.CTAConfig)
	if !ok {
		return "", fmt.Errorf("cta: unexpected config %T", cfg)
	}
	data := ctaData{
		section:   newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{ContainerWidth: "narrow"}),
		CTAConfig: *c,
	}
	return execute(ctaTmpl, "cta", data)
}
