// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeNewsletter, renderNewsletter) }

type newsletterData struct {
	section
	models.NewsletterConfig
	InputPlaceholder string
	Button           string
}

var newsletterTmpl = mustParse("newsletter", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
<h2 class="section-title{{if .Dark}} on-dark{{end}}">{{.Title}}</h2>
{{- if .Description}}<p class="section-description{{if .Dark}} on-dark-muted{{end}}">{{.Description}}</p>{{end}}
<form class="newsletter-form" method="post" action="#">
<input type="email" name="email" placeholder="{{.InputPlaceholder}}" required>
<button class="btn btn-primary" type="submit">{{.Button}}</button>
</form>
</div>
</section>`)

func renderNewsletter(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.NewsletterConfig)
	if !ok {
		return "", fmt.Errorf("newsletter: unexpected config %T", cfg)
	}

	placeholder := c.Placeholder
	if placeholder == "" {
		placeholder = "Enter your email"
	}
	button := c.ButtonText
	if button == "" {
		button = "Subscribe"
	}

	data := newsletterData{
		section:          newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{ContainerWidth: "md"}),
		NewsletterConfig: *c,
		InputPlaceholder: placeholder,
		Button:           button,
	}
	return execute(newsletterTmpl, "newsletter", data)
}
