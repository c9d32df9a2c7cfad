// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"
	"net/url"

	"pagesmith/internal/models"
)

func init() { register(models.TypeLogoCloud, renderLogoCloud) }

type logoData struct {
	models.LogoItem
	Fallback template.HTMLAttr // onerror swap to the generated placeholder
}

type logoCloudData struct {
	section
	models.LogoCloudConfig
	Header    header
	Items     []logoData
	ItemClass string
	Scroll    bool
}

// The scroll layout duplicates the track once so the keyframe loop wraps
// seamlessly at -100%.
var logoCloudTmpl = mustParse("logocloud", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
{{- if .Scroll}}
<div class="logo-scroll">
<div class="logo-track">
{{- range .Items}}<span class="logo-item {{$.ItemClass}}"><img src="{{.URL}}" alt="{{.Name}}" {{.Fallback}}></span>{{end}}
</div>
<div class="logo-track" aria-hidden="true">
{{- range .Items}}<span class="logo-item {{$.ItemClass}}"><img src="{{.URL}}" alt="{{.Name}}" {{.Fallback}}></span>{{end}}
</div>
</div>
{{- else}}
<div class="logo-grid">
{{- range .Items}}
{{- if .Link}}<a class="logo-item {{$.ItemClass}}" href="{{.Link}}"><img src="{{.URL}}" alt="{{.Name}}" {{.Fallback}}></a>
{{- else}}<span class="logo-item {{$.ItemClass}}"><img src="{{.URL}}" alt="{{.Name}}" {{.Fallback}}></span>{{end}}
{{- end}}
</div>
{{- end}}
</div>
</section>`)

// logoPlaceholder builds an inline SVG data URL showing the logo's name,
// used when the real image URL is broken.
func logoPlaceholder(name string) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="160" height="48"><rect width="160" height="48" fill="#e5e7eb" rx="6"/><text x="80" y="29" font-family="sans-serif" font-size="13" fill="#6b7280" text-anchor="middle">%s</text></svg>`, template.HTMLEscapeString(name))
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)
}

// renderLogoCloud renders logos in a grid or a continuous scroll loop.
// Logos are grayscale by default with hover-to-color; broken image URLs
// fall back to a generated placeholder labeled with the logo's name.
func renderLogoCloud(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.LogoCloudConfig)
	if !ok {
		return "", fmt.Errorf("logo-cloud: unexpected config %T", cfg)
	}

	items := make([]logoData, 0, len(c.Logos))
	for _, l := range c.Logos {
		attr := fmt.Sprintf(`onerror="this.onerror=null;this.src='%s'"`, logoPlaceholder(l.Name))
		items = append(items, logoData{LogoItem: l, Fallback: template.HTMLAttr(attr)})
	}

	itemClass := ""
	if c.Grayscale == nil || *c.Grayscale {
		itemClass = "logo-gray"
	}

	data := logoCloudData{
		section:         newSection(c.Background, c.Spacing, models.AnimationConfig{}, th, sectionOptions{}),
		LogoCloudConfig: *c,
		Items:           items,
		ItemClass:       itemClass,
		Scroll:          c.Layout == "scroll",
	}
	data.Header = header{Title: c.Title, Dark: data.Dark}
	return execute(logoCloudTmpl, "logocloud", data)
}
