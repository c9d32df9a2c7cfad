// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"html"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pagesmith/internal/cache"
	"pagesmith/internal/models"
	"pagesmith/internal/render"
	"pagesmith/internal/store"
)

// Public groups handlers for the public-facing site. Rendered pages are
// cached in Valkey; every document write clears the cache.
type Public struct {
	store     *store.ConfigStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(s *store.ConfigStore, pc *cache.PageCache) *Public {
	return &Public{store: s, pageCache: pc}
}

// Homepage serves the page with slug "home", or the oldest published page
// when no "home" exists, or a setup placeholder on a fresh install.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.HomepageKey()); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	cfg, _, err := p.store.Load(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("load document failed", "error", err)
		p.errorPage(w, "")
		return
	}

	var page *models.LandingPage
	if cfg != nil {
		if _, home := cfg.PageBySlug("home"); home != nil && home.IsPublished() {
			page = home
		} else {
			page = oldestPublished(cfg)
		}
	}

	if page == nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(setupPage))
		return
	}

	rendered, err := render.Page(page)
	if err != nil {
		slog.Error("homepage render failed", "error", err, "slug", page.Slug)
		p.errorPage(w, page.Title)
		return
	}

	p.pageCache.Set(ctx, cache.HomepageKey(), rendered)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

// Page serves a published page by its slug.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.pageCache.Get(ctx, cache.SlugKey(slugParam)); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	cfg, _, err := p.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.notFoundPage(w)
			return
		}
		slog.Error("load document failed", "error", err, "slug", slugParam)
		p.errorPage(w, "")
		return
	}

	_, page := cfg.PageBySlug(slugParam)
	if page == nil || !page.IsPublished() {
		p.notFoundPage(w)
		return
	}

	rendered, err := render.Page(page)
	if err != nil {
		slog.Error("render page failed", "error", err, "slug", slugParam)
		p.errorPage(w, page.Title)
		return
	}

	p.pageCache.Set(ctx, cache.SlugKey(slugParam), rendered)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

// oldestPublished picks the earliest-created published page, breaking
// creation time ties by slug so the fallback is deterministic.
func oldestPublished(cfg *models.LandingConfig) *models.LandingPage {
	var best *models.LandingPage
	for _, page := range cfg.Pages {
		if !page.IsPublished() {
			continue
		}
		p := page
		if best == nil ||
			p.CreatedAt.Before(best.CreatedAt) ||
			(p.CreatedAt.Equal(best.CreatedAt) && p.Slug < best.Slug) {
			best = &p
		}
	}
	return best
}

const setupPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Pagesmith</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;background:#f3f4f6">
<div style="text-align:center">
<h1 style="color:#111827">Pagesmith</h1>
<p style="color:#6b7280">Your site is running. Publish a page to replace this screen.</p>
</div></body></html>`

// notFoundPage serves a minimal 404 document.
func (p *Public) notFoundPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Page not found</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;background:#f3f4f6">
<div style="text-align:center">
<h1 style="color:#111827">404</h1>
<p style="color:#6b7280">This page does not exist.</p>
<a href="/" style="color:#2563eb">Go to homepage</a>
</div></body></html>`))
}

// errorPage serves a safe generic error document. Page titles are escaped;
// nothing from the failing render reaches the client.
func (p *Public) errorPage(w http.ResponseWriter, title string) {
	if title == "" {
		title = "Something went wrong"
	}
	safeTitle := html.EscapeString(title)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>` + safeTitle + `</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;min-height:100vh;background:#f3f4f6">
<div style="text-align:center">
<h1 style="color:#111827">` + safeTitle + `</h1>
<p style="color:#6b7280">This page could not be rendered right now.</p>
<a href="/" style="color:#2563eb">Go to homepage</a>
</div></body></html>`))
}
