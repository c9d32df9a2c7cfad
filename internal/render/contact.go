// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"

	"pagesmith/internal/models"
)

func init() { register(models.TypeContact, renderContact) }

type contactData struct {
	section
	models.ContactConfig
	Header header
}

var contactTmpl = mustParse("contact", `
<section class="{{.Classes}}" style="{{.Style}}{{.AnimStyle}}">
<div class="{{.Container}} {{.Alignment}}">
{{template "sectionHeader" .Header}}
<div class="contact-details">
{{- if .Email}}<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
{{- if .Phone}}<p><a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
{{- if .Address}}<p>{{.Address}}</p>{{end}}
</div>
{{- if .ShowForm}}
<form class="contact-form" method="post" action="#">
<input type="text" name="name" placeholder="Your name" required>
<input type="email" name="email" placeholder="Your email" required>
<textarea name="message" rows="4" placeholder="Your message" required></textarea>
<button class="btn btn-primary" type="submit">Send message</button>
</form>
{{- end}}
</div>
</section>`)

func renderContact(cfg any, th models.Theme) (template.HTML, error) {
	c, ok := cfg.(*models.ContactConfig)
	if !ok {
		return "", fmt.Errorf("contact: unexpected config %T", cfg)
	}
	data := contactData{
		section:       newSection(c.Background, c.Spacing, c.Animation, th, sectionOptions{ContainerWidth: "md"}),
		ContactConfig: *c,
	}
	data.Header = header{Title: c.Title, Subtitle: c.Subtitle, Description: c.Description, Dark: data.Dark}
	return execute(contactTmpl, "contact", data)
}
