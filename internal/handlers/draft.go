// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pagesmith/internal/autosave"
	"pagesmith/internal/models"
	"pagesmith/internal/store"
)

// Draft groups the auto-save handlers. Edits stream through Update and a
// debouncer persists them after a quiet window; Flush forces a save.
type Draft struct {
	debouncer *autosave.Debouncer
}

// NewDraft creates the draft handler group.
func NewDraft(d *autosave.Debouncer) *Draft {
	return &Draft{debouncer: d}
}

// draftRequest stages a document draft along with the version the editor
// loaded, used for the eventual optimistic save.
type draftRequest struct {
	Version int64                 `json:"version"`
	Config  *models.LandingConfig `json:"config"`
}

// Update stages the latest draft and (re)arms the debounce timer.
func (h *Draft) Update(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	if req.Config == nil {
		writeError(w, http.StatusBadRequest, "Draft config is required.")
		return
	}
	if msg := validateDocument(req.Config); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	h.debouncer.Update(req.Config, req.Version)
	writeJSON(w, http.StatusAccepted, h.debouncer.Status())
}

// Flush saves any pending draft immediately.
func (h *Draft) Flush(w http.ResponseWriter, r *http.Request) {
	version, err := h.debouncer.Flush(r.Context())
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save draft.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version": version,
		"status":  h.debouncer.Status(),
	})
}

// Status reports the debouncer state for the editor's save indicator.
func (h *Draft) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.debouncer.Status())
}
