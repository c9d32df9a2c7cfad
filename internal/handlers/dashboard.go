// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"pagesmith/internal/models"
)

// pageSummary is the dashboard row for one page.
type pageSummary struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Slug       string            `json:"slug"`
	Theme      string            `json:"theme"`
	Status     models.PageStatus `json:"status"`
	Components int               `json:"components"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// dashboardStats counts pages per publishing state.
type dashboardStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Archived  int `json:"archived"`
}

// dashboardResponse is the dashboard payload: counts plus the (optionally
// filtered) page list.
type dashboardResponse struct {
	Stats dashboardStats `json:"stats"`
	Pages []pageSummary  `json:"pages"`
}

// Dashboard returns page statistics and a searchable page list. The q
// query matches title and slug case-insensitively; status narrows to one
// publishing state.
func (h *Config) Dashboard(w http.ResponseWriter, r *http.Request) {
	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	statusFilter := models.PageStatus(r.URL.Query().Get("status"))

	resp := dashboardResponse{Pages: []pageSummary{}}
	for id, page := range cfg.Pages {
		resp.Stats.Total++
		switch page.Status {
		case models.PageStatusPublished:
			resp.Stats.Published++
		case models.PageStatusArchived:
			resp.Stats.Archived++
		default:
			resp.Stats.Draft++
		}

		if statusFilter != "" && page.Status != statusFilter {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(page.Title), q) &&
			!strings.Contains(strings.ToLower(page.Slug), q) {
			continue
		}

		resp.Pages = append(resp.Pages, pageSummary{
			ID:         id,
			Title:      page.Title,
			Slug:       page.Slug,
			Theme:      page.Theme,
			Status:     page.Status,
			Components: len(page.Components),
			UpdatedAt:  page.UpdatedAt,
		})
	}

	// Most recently edited first; slug breaks timestamp ties for a stable
	// listing.
	sort.Slice(resp.Pages, func(i, j int) bool {
		if resp.Pages[i].UpdatedAt.Equal(resp.Pages[j].UpdatedAt) {
			return resp.Pages[i].Slug < resp.Pages[j].Slug
		}
		return resp.Pages[i].UpdatedAt.After(resp.Pages[j].UpdatedAt)
	})

	setVersion(w, version)
	writeJSON(w, http.StatusOK, resp)
}
