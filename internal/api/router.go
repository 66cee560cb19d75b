package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kornthip/matra/internal/library"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// events, if non-nil, receives section change notifications.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *library.Service, authEnabled bool, token string, events EventPublisher, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, events)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Book registry.
	r.Get("/books", h.ListBooks)

	// Sections: listing, lookup, overrides.
	r.Get("/sections", h.ListSections)
	r.Put("/sections", h.SaveSection)
	r.Get("/sections/{id}", h.GetSection)
	r.Delete("/sections/{id}", h.DeleteSection)
	r.Get("/sections/{id}/diff", h.GetDiff)
	r.Get("/sections/{id}/references", h.GetReferences)

	// Deep-link resolution.
	r.Get("/resolve", h.Resolve)

	// Notes.
	r.Get("/notes", h.ListNotes)
	r.Put("/notes/{sectionID}", h.SaveNote)

	// Settings.
	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.SaveSettings)

	// Backup.
	r.Get("/export", h.Export)
	r.Post("/import", h.Import)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
