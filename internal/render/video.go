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

func init() { register(models.TypeVideo, renderVideo) }

type videoData struct {
	section
	models.VideoConfig
	Header header
	Embed  bool // iframe embed (YouTube/Vimeo) vs native <video>
}

var videoTmpl = mustParse("video", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="video-frame">
{{- if .Embed}}
<iframe src="{{.URL}}" title="{{.Title}}" allow="autoplay; fullscreen" allowfullscreen></iframe>
{{- else}}
<video src="{{.URL}}"{{if .Poster}} poster="{{.Poster}}"{{end}} controls{{if .Autoplay}} autoplay muted{{end}}></video>
{{- end}}
</div>
</div>
</section>`)

func renderVideo(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.VideoConfig)
	if !ok {
		return "", fmt.Errorf("video: unexpected config %T", cfg)
	}

	embed := strings.Contains(c.URL, "youtube.com") ||
		strings.Contains(c.URL, "youtu.be") ||
		strings.Contains(c.URL, "vimeo.com")

	data := videoData{
		section:     newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{ContainerWidth: "lg"}),
		VideoConfig: *c,
		Embed:       embed,
	}
	data.Header = header{Title: c.Title, Description: c.Description, Dark: data.Dark}
	return execute(videoTmpl, "video", data)
}
