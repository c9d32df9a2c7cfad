// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"
	"log/slog"

	"pagesmith/internal/markdown"
	"pagesmith/internal/models"
)

func init() { register(models.TypeContent, renderContent) }

type contentData struct {
	section
	Title string
	Body  template.HTML
}

var contentTmpl = mustParse("content", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{- if .Title}}<h2 class="section-title{{if .Dark}} on-dark{{end}}">{{.Title}}</h2>{{end}}
<div class="content-body{{if .Dark}} on-dark-muted{{end}}">{{.Body}}</div>
</div>
</section>`)

// renderContent renders a free-form rich text block. Markdown bodies go
// through goldmark; HTML bodies pass through unchanged. A failed Markdown
// conversion falls back to the raw body rather than failing the section.
func renderContent(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.ContentConfig)
	if !ok {
		return "", fmt.Errorf("content: unexpected config %T", cfg)
	}

	body := c.Body
	if c.Format == "markdown" {
		converted, err := markdown.ToHTML(c.Body)
		if err != nil {
			slog.Warn("content markdown conversion failed", "error", err)
		} else {
			body = converted
		}
	}

	width := c.Width
	if width == "" {
		width = "narrow"
	}

	data := contentData{
		section: newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{
			ContainerWidth: width,
			Alignment:      c.Alignment,
		}),
		Title: c.Title,
		Body:  template.HTML(body),
	}
	return execute(contentTmpl, "content", data)
}
