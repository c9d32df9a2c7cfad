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

func init() { register(models.TypeStats, renderStats) }

type statsData struct {
	section
	models.StatsConfig
	Header    header
	GridClass string
}

var statsTmpl = mustParse("stats", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="grid {{.GridClass}}">
{{- range .Stats}}
<div>
<div class="stat-value">{{.Prefix}}{{.Value}}{{.Suffix}}</div>
<div class="stat-label{{if $.Dark}} on-dark-muted{{end}}">{{.Label}}</div>
</div>
{{- end}}
</div>
</div>
</section>`)

func renderStats(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.StatsConfig)
	if !ok {
		return "", fmt.Errorf("stats: unexpected config %T", cfg)
	}

	columns := c.Columns
	if columns == 0 {
		columns = len(c.Stats)
	}

	data := statsData{
		section:     newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		StatsConfig: *c,
		GridClass:   style.GridColumns(columns),
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Dark: data.Dark}
	return execute(statsTmpl, "stats", data)
}
