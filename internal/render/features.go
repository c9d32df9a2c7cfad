// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
	"pagesmith/internal/style"
)

func init() { register(models.TypeFeatures, renderFeatures) }

type featuresData struct {
	section
	models.FeaturesConfig
	Header    header
	ListClass string
}

var featuresTmpl = mustParse("features", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="{{.ListClass}}">
{{- range .Features}}
<div class="card">
{{- if .Icon}}<div class="feature-icon">{{.Icon}}</div>{{end}}
{{- if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<h3 class="feature-title">{{.Title}}</h3>
<p class="feature-description">{{.Description}}</p>
</div>
{{- end}}
</div>
</div>
</section>`)

// renderFeatures renders a responsive grid by default; the carousel layout
// produces a horizontally scrollable strip with partial-card reveal. The
// entrance animation applies to the list as a whole, not per card.
func renderFeatures(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.FeaturesConfig)
	if !ok {
		return "", fmt.Errorf("features: unexpected config %T", cfg)
	}

	listClass := "grid " + style.GridColumns(c.Columns)
	if c.Layout == "carousel" {
		listClass = "carousel"
	} else if c.Layout == "list" {
		listClass = "grid cols-1"
	}

	data := featuresData{
		section:        newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		FeaturesConfig: *c,
		ListClass:      listClass,
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(featuresTmpl, "features", data)
}
