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

func init() { register(models.TypePricing, renderPricing) }

// defaultPlanBadge labels a highlighted plan with no custom badge text.
const defaultPlanBadge = "Most Popular"

type pricingPlanData struct {
	models.PricingPlan
	Badge string // empty unless highlighted
}

type pricingData struct {
	section
	models.PricingConfig
	Header    header
	PlanList  []pricingPlanData
	ListClass string
}

var pricingTmpl = mustParse("pricing", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="{{.ListClass}}">
{{- range .PlanList}}
<div class="card plan{{if .Highlighted}} plan-highlighted{{end}}">
{{- if .Badge}}<span class="plan-badge">{{.Badge}}</span>{{end}}
<h3 class="feature-title">{{.Name}}</h3>
<p class="feature-description">{{.Description}}</p>
<p class="plan-price">{{.Price}}{{if .Period}}<span class="plan-period">{{.Period}}</span>{{end}}</p>
<ul class="plan-features">
{{- range .Features}}<li>{{.}}</li>{{end}}
</ul>
{{- if .CTAText}}<a class="btn btn-primary" href="{{.CTALink}}">{{.CTAText}}</a>{{end}}
</div>
{{- end}}
</div>
</div>
</section>`)

// renderPricing renders plan cards in a grid or carousel. Highlighted
// plans are elevated and carry a badge, defaulting to "Most Popular"
// when no custom badge text is set.
func renderPricing(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.PricingConfig)
	if !ok {
		return "", fmt.Errorf("pricing: unexpected config %T", cfg)
	}

	plans := make([]pricingPlanData, 0, len(c.Plans))
	for _, p := range c.Plans {
		d := pricingPlanData{PricingPlan: p}
		if p.Highlighted {
			d.Badge = p.Badge
			if d.Badge == "" {
				d.Badge = defaultPlanBadge
			}
		}
		plans = append(plans, d)
	}

	listClass := "grid " + style.GridColumns(len(plans))
	if len(plans) > 4 || c.Layout == "carousel" {
		listClass = "carousel"
	}

	data := pricingData{
		section:       newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		PricingConfig: *c,
		PlanList:      plans,
		ListClass:     listClass,
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(pricingTmpl, "pricing", data)
}
