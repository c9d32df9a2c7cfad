// Package router sets up all HTTP routes and middleware chains. It
// organizes routes into the public site, the JSON document API, media
// endpoints, and static asset serving.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pagesmith/internal/handlers"
	"pagesmith/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. assetsDir is served under /assets/.
// uploadLimiter guards the media endpoints; the caller owns its lifecycle
// and stops it on shutdown.
func New(cfg *handlers.Config, draft *handlers.Draft, media *handlers.Media, public *handlers.Public, assetsDir string, uploadLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Document API.
	r.Route("/api", func(r chi.Router) {
		r.Route("/config", func(r chi.Router) {
			r.Get("/", cfg.Get)
			r.Post("/", cfg.Replace)
			r.Put("/pages/{pageID}", cfg.UpsertPage)
			r.Delete("/pages/{pageID}", cfg.DeletePage)
		})

		r.Route("/pages", func(r chi.Router) {
			r.Post("/", cfg.CreatePage)
			r.Post("/{pageID}/duplicate", cfg.DuplicatePage)
			r.Get("/{pageID}/export", cfg.ExportPage)
			r.Post("/{pageID}/import", cfg.ImportPage)
		})

		r.Get("/templates", cfg.ListTemplates)
		r.Get("/dashboard", cfg.Dashboard)

		// Draft auto-save.
		r.Route("/draft", func(r chi.Router) {
			r.Put("/", draft.Update)
			r.Post("/flush", draft.Flush)
			r.Get("/status", draft.Status)
		})

		// Media uploads are rate limited per IP.
		r.Group(func(r chi.Router) {
			r.Use(uploadLimiter.Middleware)
			r.Post("/upload", media.Upload)
			r.Post("/save-images", media.SaveImages)
		})
	})

	// Saved images.
	fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir)))
	r.Get("/assets/*", fileServer.ServeHTTP)

	// Public site.
	r.Get("/", public.Homepage)
	r.Get("/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
