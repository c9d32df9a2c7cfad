// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeFAQ, renderFAQ) }

type faqData struct {
	section
	models.FAQConfig
	Header    header
	ListClass string
}

// Each item is its own <details> element, so open/closed state is
// independent per question: expanding one never collapses another.
var faqTmpl = mustParse("faq", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="{{.ListClass}}">
{{- range .Items}}
<details class="faq-item" id="faq-{{.ID}}">
<summary>{{.Question}}</summary>
<p class="faq-answer">{{.Answer}}</p>
</details>
{{- end}}
</div>
</div>
</section>`)

func renderFAQ(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.FAQConfig)
	if !ok {
		return "", fmt.Errorf("faq: unexpected config %T", cfg)
	}

	listClass := "faq-list"
	if c.Layout == "two-column" {
		listClass += " faq-two-column"
	}

	data := faqData{
		section:   newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{ContainerWidth: "narrow"}),
		FAQConfig: *c,
		ListClass: listClass,
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(faqTmpl, "faq", data)
}
