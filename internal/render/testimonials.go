// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"pagesmith/internal/models"
)

func init() { register(models.TypeTestimonials, renderTestimonials) }

type testimonialData struct {
	models.TestimonialItem
	Stars string // pre-built run of filled stars, empty when unrated
	Meta  string // "role, company" joined only when both are present
}

type testimonialsData struct {
	section
	models.TestimonialsConfig
	Header    header
	Items     []testimonialData
	ListClass string
}

var testimonialsTmpl = mustParse("testimonials", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="{{.ListClass}}">
{{- range .Items}}
<div class="card">
{{- if .Stars}}<div class="stars" aria-label="{{.Rating}} out of 5 stars">{{.Stars}}</div>{{end}}
<p class="testimonial-text">&ldquo;{{.Text}}&rdquo;</p>
<div class="testimonial-author">
{{- if .Avatar}}<img src="{{.Avatar}}" alt="{{.Name}}">{{end}}
<div>
<div class="testimonial-name">{{.Name}}</div>
{{- if .Meta}}<div class="testimonial-meta">{{.Meta}}</div>{{end}}
</div>
</div>
</div>
{{- end}}
</div>
</div>
</section>`)

// renderTestimonials renders quote cards. Exactly Rating filled stars are
// shown (none when the rating is zero or absent); the author line joins
// role and company with a comma only when both exist.
func renderTestimonials(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.TestimonialsConfig)
	if !ok {
		return "", fmt.Errorf("testimonials: unexpected config %T", cfg)
	}

	items := make([]testimonialData, 0, len(c.Testimonials))
	for _, t := range c.Testimonials {
		d := testimonialData{TestimonialItem: t}
		if t.Rating > 0 {
			n := t.Rating
			if n > 5 {
				n = 5
			}
			d.Stars = strings.Repeat("★", n)
		}
		switch {
		case t.Role != "" && t.Company != "":
			d.Meta = t.Role + ", " + t.Company
		case t.Role != "":
			d.Meta = t.Role
		case t.Company != "":
			d.Meta = t.Company
		}
		items = append(items, d)
	}

	listClass := "grid cols-3"
	if c.Layout == "carousel" {
		listClass = "carousel"
	}

	data := testimonialsData{
		section:            newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		TestimonialsConfig: *c,
		Items:              items,
		ListClass:          listClass,
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(testimonialsTmpl, "testimonials", data)
}
