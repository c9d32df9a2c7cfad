// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeFooter, renderFooter) }

// socialLabels maps the fixed platform enumeration to display labels.
// Unknown platforms fall back to the raw platform name.
var socialLabels = map[string]string{
	"facebook":  "Facebook",
	"twitter":   "Twitter",
	"instagram": "Instagram",
	"linkedin":  "LinkedIn",
	"youtube":   "YouTube",
	"github":    "GitHub",
}

type footerSocial struct {
	Label string
	URL   string
}

type footerData struct {
	section
	models.FooterConfig
	SocialLinks []footerSocial
}

var footerTmpl = mustParse("footer", `
<footer class="{{.Classes}} footer" style="{{.Style}}">
<div class="{{.Container}}{{if .Dark}} on-dark{{end}}">
{{- if .Logo}}<img src="{{.Logo}}" alt="logo" style="max-height:2.5rem;margin-bottom:1rem">{{end}}
{{- if .Tagline}}<p class="section-description{{if .Dark}} on-dark-muted{{end}}">{{.Tagline}}</p>{{end}}
<div class="footer-columns">
{{- range .Columns}}
<div class="footer-column">
<h4>{{.Title}}</h4>
<ul>
{{- range .Links}}<li><a href="{{.Link}}">{{.Text}}</a></li>{{end}}
</ul>
</div>
{{- end}}
</div>
{{- if .SocialLinks}}
<div class="footer-social">
{{- range .SocialLinks}}<a href="{{.URL}}" rel="noopener" aria-label="{{.Label}}">{{.Label}}</a>{{end}}
</div>
{{- end}}
{{- if .Copyright}}<p class="footer-copyright">{{.Copyright}}</p>{{end}}
</div>
</footer>`)

// renderFooter renders link columns, social links from the fixed platform
// set, and the copyright line. Footers carry no entrance animation.
func renderFooter(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.FooterConfig)
	if !ok {
		return "", fmt.Errorf("footer: unexpected config %T", cfg)
	}

	social := make([]footerSocial, 0, len(c.Social))
	for _, s := range c.Social {
		label := socialLabels[s.Platform]
		if label == "" {
			label = s.Platform
		}
		social = append(social, footerSocial{Label: label, URL: s.URL})
	}

	data := footerData{
		section:      newSection(c.Background, c.Spacing, models.AnimationConfig{}, th, sectionOptions{}),
		FooterConfig: *c,
		SocialLinks:  social,
	}
	return execute(footerTmpl, "footer", data)
}
