// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// transfer.go implements page export and import: a page's component list
// travels as a versioned JSON envelope so layouts can move between sites.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pagesmith/internal/models"
	"pagesmith/internal/store"
)

// exportFormatVersion tags the envelope so future readers can migrate.
const exportFormatVersion = "1.0"

// exportMetadata describes the page the components came from.
type exportMetadata struct {
	PageID string `json:"pageId"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Theme  string `json:"theme"`
}

// exportEnvelope is the export/import wire format.
type exportEnvelope struct {
	Version    string             `json:"version"`
	Timestamp  time.Time          `json:"timestamp"`
	Components []models.Component `json:"components"`
	Metadata   exportMetadata     `json:"metadata"`
}

// ExportPage serializes one page's component list as a download.
func (h *Config) ExportPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	cfg, _, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	page, ok := cfg.Pages[pageID]
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	env := exportEnvelope{
		Version:    exportFormatVersion,
		Timestamp:  time.Now(),
		Components: page.Components,
		Metadata: exportMetadata{
			PageID: pageID,
			Title:  page.Title,
			Slug:   page.Slug,
			Theme:  page.Theme,
		},
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", page.Slug+"-export.json"))
	writeJSON(w, http.StatusOK, env)
}

// importEnvelope holds components raw so each can be shape-checked before
// the typed decode.
type importEnvelope struct {
	Version    string            `json:"version"`
	Components []json.RawMessage `json:"components"`
}

// ImportPage replaces a page's component list with a previously exported
// one. Every component must carry id:string, type:string, config:object;
// one bad component rejects the whole import.
func (h *Config) ImportPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	var env importEnvelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	if env.Version == "" {
		writeError(w, http.StatusBadRequest, "Export version is required.")
		return
	}
	if len(env.Components) > maxComponentsLen {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Too many components (max %d).", maxComponentsLen))
		return
	}

	components := make([]models.Component, len(env.Components))
	for i, raw := range env.Components {
		if err := validateImportComponent(i, raw); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := json.Unmarshal(raw, &components[i]); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Component %d could not be parsed.", i))
			return
		}
	}

	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	page, ok := cfg.Pages[pageID]
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	page.Components = components
	page.UpdatedAt = time.Now()
	cfg.Pages[pageID] = page

	newVersion, err := h.store.Save(r.Context(), cfg, version)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("import page failed", "error", err, "page", pageID)
		writeError(w, http.StatusInternalServerError, "Failed to import page.")
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	setVersion(w, newVersion)
	writeJSON(w, http.StatusOK, map[string]any{
		"imported": len(components),
		"version":  newVersion,
	})
}
