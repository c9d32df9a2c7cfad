// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"pagesmith/internal/templates"
)

// templateSummary is one entry in the template picker listing.
type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Theme       string `json:"theme"`
	Sections    int    `json:"sections"`
}

// ListTemplates returns the predefined page layouts a new page can start
// from.
func (h *Config) ListTemplates(w http.ResponseWriter, r *http.Request) {
	all := templates.All()
	out := make([]templateSummary, 0, len(all))
	for _, tpl := range all {
		out = append(out, templateSummary{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Category:    tpl.Category,
			Theme:       tpl.Theme,
			Sections:    tpl.Sections(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": out})
}
