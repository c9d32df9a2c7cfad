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

func init() { register(models.TypeGallery, renderGallery) }

type galleryData struct {
	section
	models.GalleryConfig
	Header    header
	GridClass string
}

// Thumbnails link to :target-activated lightboxes; one image shows at a
// time with its caption, and the close link returns to the grid.
var galleryTmpl = mustParse("gallery", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="grid {{.GridClass}}">
{{- range .Images}}
<a class="gallery-item" href="#lightbox-{{.ID}}"><img src="{{.URL}}" alt="{{if .Alt}}{{.Alt}}{{else}}{{.Title}}{{end}}"></a>
{{- end}}
</div>
</div>
{{- range .Images}}
<div class="lightbox" id="lightbox-{{.ID}}">
<a class="lightbox-close" href="#" aria-label="Close">&times;</a>
<img src="{{.URL}}" alt="{{if .Alt}}{{.Alt}}{{else}}{{.Title}}{{end}}">
{{- if or .Title .Description}}
<div class="lightbox-caption">
{{- if .Title}}<h3>{{.Title}}</h3>{{end}}
{{- if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{- end}}
</div>
{{- end}}
</section>`)

func renderGallery(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.GalleryConfig)
	if !ok {
		return "", fmt.Errorf("gallery: unexpected config %T", cfg)
	}

	data := galleryData{
		section:       newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		GalleryConfig: *c,
		GridClass:     style.GridColumns(c.Columns),
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(galleryTmpl, "gallery", data)
}
