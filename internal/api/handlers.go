package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kornthip/matra/internal/apperr"
	"github.com/kornthip/matra/internal/corpus"
	"github.com/kornthip/matra/internal/library"
	"github.com/kornthip/matra/internal/models"
)

// EventPublisher receives section change notifications for SSE fan-out.
type EventPublisher interface {
	PublishSectionEvent(kind, id string)
}

// Handler holds API route handlers.
type Handler struct {
	svc    *library.Service
	events EventPublisher // may be nil
}

// NewHandler creates a new Handler.
func NewHandler(svc *library.Service, events EventPublisher) *Handler {
	return &Handler{svc: svc, events: events}
}

func (h *Handler) publish(kind, id string) {
	if h.events != nil {
		h.events.PublishSectionEvent(kind, id)
	}
}

// ListBooks handles GET /api/books.
//
//	@Summary		List the statute book registry
//	@Tags			books
//	@Produce		json
//	@Success		200	{object}	BookListResponse
//	@Security		BearerAuth
//	@Router			/books [get]
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"books": corpus.Books,
	})
}

// ListSections handles GET /api/sections.
//
//	@Summary		List sections with optional book scope, view mode, and search query
//	@Tags			sections
//	@Produce		json
//	@Param			book	query		string	false	"Book ID scope"
//	@Param			mode	query		string	false	"View mode"	Enums(all, notes, flagged, search)
//	@Param			q		query		string	false	"Search query"
//	@Success		200		{object}	SectionListResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/sections [get]
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode, err := library.ParseMode(q.Get("mode"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	sections, err := h.svc.Filter(q.Get("book"), mode, q.Get("q"))
	if err != nil {
		slog.Error("list sections failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if sections == nil {
		sections = []models.Section{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": sections,
		"total":    len(sections),
	})
}

// GetSection handles GET /api/sections/{id}.
//
//	@Summary		Get a single section by ID with its note, override winning over built-in
//	@Tags			sections
//	@Produce		json
//	@Param			id	path		string	true	"Section ID"
//	@Success		200	{object}	SectionDetail
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/sections/{id} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sec, err := h.svc.Section(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get section failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	detail := SectionDetail{Section: sec}
	if notes, err := h.svc.Notes(); err == nil {
		if note, ok := notes[id]; ok {
			detail.Note = &note
		}
	}
	writeJSON(w, http.StatusOK, detail)
}

// SaveSection handles PUT /api/sections.
//
//	@Summary		Create or update a user override
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SaveSectionRequest	true	"Override to save"
//	@Success		200		{object}	models.Section
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/sections [put]
func (h *Handler) SaveSection(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SaveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	sec, err := h.svc.SaveOverride(library.OverrideInput{
		ID:       req.ID,
		Number:   req.Number,
		Body:     req.Body,
		Category: req.Category,
		BookID:   req.BookID,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("save override failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.publish("updated", sec.ID)
	writeJSON(w, http.StatusOK, sec)
}

// DeleteSection handles DELETE /api/sections/{id}.
//
//	@Summary		Revert an override; the built-in text becomes visible again
//	@Tags			sections
//	@Param			id	path	string	true	"Section ID"
//	@Success		204	"Override removed"
//	@Security		BearerAuth
//	@Router			/sections/{id} [delete]
func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.RevertOverride(id); err != nil {
		slog.Error("revert override failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	h.publish("deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// GetDiff handles GET /api/sections/{id}/diff.
//
//	@Summary		Word-level diff between the built-in text and its override
//	@Tags			sections
//	@Produce		json
//	@Param			id	path		string	true	"Section ID"
//	@Success		200	{object}	DiffResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/sections/{id}/diff [get]
func (h *Handler) GetDiff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	parts, err := h.svc.Diff(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("diff failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"parts": parts,
	})
}

// GetReferences handles GET /api/sections/{id}/references.
//
//	@Summary		Section labels referenced inline in a section body
//	@Tags			sections
//	@Produce		json
//	@Param			id	path		string	true	"Section ID"
//	@Success		200	{object}	ReferencesResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/sections/{id}/references [get]
func (h *Handler) GetReferences(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	refs, err := h.svc.References(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("references failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	if refs == nil {
		refs = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"references": refs,
	})
}

// Resolve handles GET /api/resolve.
//
//	@Summary		Resolve a deep link (book + native-script number) to a section
//	@Tags			sections
//	@Produce		json
//	@Param			book	query		string	false	"Book ID scope"
//	@Param			number	query		string	true	"Section number, Thai or Arabic digits"
//	@Success		200		{object}	models.Section
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/resolve [get]
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sec, err := h.svc.Resolve(q.Get("book"), q.Get("number"))
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		default:
			slog.Error("resolve failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List all notes keyed by section ID
//	@Tags			notes
//	@Produce		json
//	@Success		200	{object}	NotesResponse
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.Notes()
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notes": notes,
	})
}

// SaveNote handles PUT /api/notes/{sectionID}. An empty note (no text, no
// flag, no highlights) deletes the stored entry and answers 204.
//
//	@Summary		Save or clear the note for a section
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			sectionID	path		string			true	"Section ID"
//	@Param			body		body		SaveNoteRequest	true	"Note content"
//	@Success		200			{object}	models.Note
//	@Success		204			"Note cleared"
//	@Failure		400			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{sectionID} [put]
func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	sectionID := chi.URLParam(r, "sectionID")
	var req SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	note, kept, err := h.svc.SaveNote(models.Note{
		SectionID:  sectionID,
		Text:       req.Text,
		Flagged:    req.Flagged,
		Highlights: req.Highlights,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("save note failed", slog.String("section", sectionID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.publish("updated", sectionID)
	if !kept {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// GetSettings handles GET /api/settings.
//
//	@Summary		Get display settings
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	models.Settings
//	@Security		BearerAuth
//	@Router			/settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings()
	if err != nil {
		slog.Error("get settings failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// SaveSettings handles PUT /api/settings.
//
//	@Summary		Update display settings
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.Settings	true	"Settings"
//	@Success		200		{object}	models.Settings
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/settings [put]
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := h.svc.SaveSettings(settings); err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("save settings failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Export handles GET /api/export.
//
//	@Summary		Export notes and overrides as a versioned backup document
//	@Tags			backup
//	@Produce		json
//	@Success		200	{object}	models.Backup
//	@Security		BearerAuth
//	@Router			/export [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export()
	if err != nil {
		slog.Error("export failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="matra-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import handles POST /api/import. A malformed document is rejected before
// anything is written, so existing notes and overrides survive intact.
//
//	@Summary		Restore notes and overrides from a backup document
//	@Tags			backup
//	@Accept			json
//	@Success		204	"Backup restored"
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 50<<20)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return
	}
	if err := h.svc.Import(data); err != nil {
		if errors.Is(err, apperr.ErrInvalidBackup) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("import failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
