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

func init() { register(models.TypeTeam, renderTeam) }

type teamMemberData struct {
	models.TeamMember
	SocialLinks []footerSocial
}

type teamData struct {
	section
	models.TeamConfig
	Header    header
	Members   []teamMemberData
	GridClass string
}

var teamTmpl = mustParse("team", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="grid {{.GridClass}}">
{{- range .Members}}
<div class="card">
{{- if .Avatar}}<img class="member-avatar" src="{{.Avatar}}" alt="{{.Name}}">{{end}}
<h3 class="feature-title">{{.Name}}</h3>
{{- if .Role}}<p class="member-role">{{.Role}}</p>{{end}}
{{- if .Bio}}<p class="feature-description">{{.Bio}}</p>{{end}}
{{- if .SocialLinks}}
<div class="footer-social" style="justify-content:center">
{{- range .SocialLinks}}<a href="{{.URL}}" rel="noopener">{{.Label}}</a>{{end}}
</div>
{{- end}}
</div>
{{- end}}
</div>
</div>
</section>`)

func renderTeam(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.TeamConfig)
	if !ok {
		return "", fmt.Errorf("team: unexpected config %T", cfg)
	}

	members := make([]teamMemberData, 0, len(c.Members))
	for _, m := range c.Members {
		d := teamMemberData{TeamMember: m}
		for _, s := range m.Social {
			label := socialLabels[s.Platform]
			if label == "" {
				label = s.Platform
			}
			d.SocialLinks = append(d.SocialLinks, footerSocial{Label: label, URL: s.URL})
		}
		members = append(members, d)
	}

	data := teamData{
		section:    newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{}),
		TeamConfig: *c,
		Members:    members,
		GridClass:  style.GridColumns(c.Columns),
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(teamTmpl, "team", data)
}
