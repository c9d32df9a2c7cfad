// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP surface: the public site, the JSON
// document API, page management, export/import, media uploads, and draft
// auto-save.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"pagesmith/internal/cache"
	"pagesmith/internal/models"
	"pagesmith/internal/slug"
	"pagesmith/internal/store"
	"pagesmith/internal/templates"
	"pagesmith/internal/theme"
)

// maxBodySize caps JSON request bodies. Documents carry inline component
// configs but never raw image data, so 5 MB is generous.
const maxBodySize = 5 << 20

// Config groups the document API handlers.
type Config struct {
	store     *store.ConfigStore
	pageCache *cache.PageCache
	validate  *validator.Validate
}

// NewConfig creates the document API handler group.
func NewConfig(s *store.ConfigStore, pc *cache.PageCache) *Config {
	return &Config{
		store:     s,
		pageCache: pc,
		validate:  validator.New(),
	}
}

// setVersion exposes the document version as an entity tag so clients can
// echo it back in If-Match.
func setVersion(w http.ResponseWriter, version int64) {
	w.Header().Set("ETag", strconv.FormatInt(version, 10))
}

// ifMatchVersion parses the version token from the If-Match header.
func ifMatchVersion(r *http.Request) (int64, bool) {
	raw := r.Header.Get("If-Match")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(trimETag(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// trimETag strips optional quotes around an entity tag value.
func trimETag(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Get returns the full landing document. The current version rides in the
// ETag header.
func (h *Config) Get(w http.ResponseWriter, r *http.Request) {
	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}
	setVersion(w, version)
	writeJSON(w, http.StatusOK, cfg)
}

// Replace overwrites the whole document. The If-Match header must carry
// the version the client loaded; a stale version yields 409.
func (h *Config) Replace(w http.ResponseWriter, r *http.Request) {
	expectVersion, ok := ifMatchVersion(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "If-Match header with the document version is required.")
		return
	}

	cfg := &models.LandingConfig{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(cfg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON document.")
		return
	}

	if msg := validateDocument(cfg); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	newVersion, err := h.store.Save(r.Context(), cfg, expectVersion)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("save document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save document.")
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	setVersion(w, newVersion)
	writeJSON(w, http.StatusOK, map[string]any{"version": newVersion})
}

// UpsertPage creates or replaces one page in the document. Slug collisions
// with a different page yield 409.
func (h *Config) UpsertPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	page := models.LandingPage{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&page); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON page.")
		return
	}
	page.ID = pageID
	if msg := validatePage(&page); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	if cfg.SlugConflict(pageID, page.Slug) {
		writeError(w, http.StatusConflict, "Another page already uses this slug.")
		return
	}

	now := time.Now()
	if existing, ok := cfg.Pages[pageID]; ok {
		page.CreatedAt = existing.CreatedAt
	} else {
		page.CreatedAt = now
	}
	page.UpdatedAt = now
	cfg.Pages[pageID] = page

	newVersion, err := h.store.Save(r.Context(), cfg, version)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("save page failed", "error", err, "page", pageID)
		writeError(w, http.StatusInternalServerError, "Failed to save page.")
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	setVersion(w, newVersion)
	writeJSON(w, http.StatusOK, page)
}

// DeletePage removes a page from the document. A missing page yields 404
// and leaves the document untouched.
func (h *Config) DeletePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	if _, ok := cfg.Pages[pageID]; !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}
	delete(cfg.Pages, pageID)

	newVersion, err := h.store.Save(r.Context(), cfg, version)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("delete page failed", "error", err, "page", pageID)
		writeError(w, http.StatusInternalServerError, "Failed to delete page.")
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	setVersion(w, newVersion)
	w.WriteHeader(http.StatusNoContent)
}

// createPageRequest is the payload for creating a page.
type createPageRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"max=1000"`
	Slug        string `json:"slug" validate:"max=300"`
	Theme       string `json:"theme" validate:"max=100"`
	Template    string `json:"template" validate:"max=100"`
}

// CreatePage adds a new draft page. The slug is derived from the title
// when absent and made unique with a numeric suffix. A template seeds the
// page with that layout's component stack; otherwise the page starts
// empty.
func (h *Config) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Title is required (max 300 characters).")
		return
	}

	components := []models.Component{}
	themeFromTemplate := ""
	if req.Template != "" {
		tpl, ok := templates.Get(req.Template)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown template.")
			return
		}
		components, _ = templates.Instantiate(req.Template)
		themeFromTemplate = tpl.Theme
	}

	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	base := req.Slug
	if base == "" {
		base = slug.Generate(req.Title)
	}
	pageSlug := slug.MakeUnique(base, func(s string) bool {
		_, p := cfg.PageBySlug(s)
		return p != nil
	})

	// Explicit theme wins, then the template's suggestion, then the default.
	themeID := req.Theme
	if themeID == "" {
		themeID = themeFromTemplate
	}
	if themeID == "" {
		themeID = theme.DefaultID
	}

	now := time.Now()
	page := models.LandingPage{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Slug:        pageSlug,
		Theme:       themeID,
		SEO:         models.SEOConfig{MetaTitle: req.Title, MetaDescription: req.Description},
		Components:  components,
		Status:      models.PageStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	cfg.Pages[page.ID] = page

	newVersion, err := h.store.Save(r.Context(), cfg, version)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("create page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create page.")
		return
	}

	setVersion(w, newVersion)
	writeJSON(w, http.StatusCreated, page)
}

// DuplicatePage copies an existing page as a new draft with a "-copy"
// slug and fresh component IDs.
func (h *Config) DuplicatePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	cfg, version, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("load document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load document.")
		return
	}

	src, ok := cfg.Pages[pageID]
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	now := time.Now()
	copyPage := src
	copyPage.ID = uuid.NewString()
	copyPage.Title = src.Title + " (Copy)"
	copyPage.Slug = slug.MakeUnique(src.Slug+"-copy", func(s string) bool {
		_, p := cfg.PageBySlug(s)
		return p != nil
	})
	copyPage.Status = models.PageStatusDraft
	copyPage.CreatedAt = now
	copyPage.UpdatedAt = now

	copyPage.Components = make([]models.Component, len(src.Components))
	copy(copyPage.Components, src.Components)
	for i := range copyPage.Components {
		copyPage.Components[i].ID = uuid.NewString()
	}

	cfg.Pages[copyPage.ID] = copyPage

	newVersion, err := h.store.Save(r.Context(), cfg, version)
	if errors.Is(err, store.ErrVersionConflict) {
		writeError(w, http.StatusConflict, "Document was modified by another editor. Reload and retry.")
		return
	}
	if err != nil {
		slog.Error("duplicate page failed", "error", err, "page", pageID)
		writeError(w, http.StatusInternalServerError, "Failed to duplicate page.")
		return
	}

	setVersion(w, newVersion)
	writeJSON(w, http.StatusCreated, copyPage)
}
