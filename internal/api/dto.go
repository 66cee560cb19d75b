package api

import (
	"github.com/kornthip/matra/internal/diffutil"
	"github.com/kornthip/matra/internal/models"
)

// SaveSectionRequest is the request body for creating or updating an
// override. An explicit ID targets an existing section; otherwise the ID is
// derived from the book context, or minted fresh when there is none.
type SaveSectionRequest struct {
	ID       string `json:"id,omitempty" example:"crim-112"`
	Number   string `json:"number" example:"๑๑๒" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category,omitempty" example:"ประมวลกฎหมายอาญา > ภาค ๒"`
	BookID   string `json:"book_id,omitempty" example:"crim"`
}

// SaveNoteRequest is the request body for saving a note on a section.
type SaveNoteRequest struct {
	Text       string                 `json:"text"`
	Flagged    bool                   `json:"flagged,omitempty"`
	Highlights []models.TextHighlight `json:"highlights,omitempty"`
}

// SectionDetail is a section together with its stored note, if any. The
// section fields stay at the top level of the JSON document.
type SectionDetail struct {
	models.Section
	Note *models.Note `json:"note,omitempty"`
}

// SectionListResponse wraps a filtered section listing.
type SectionListResponse struct {
	Sections []models.Section `json:"sections" validate:"required"`
	Total    int              `json:"total" example:"42" validate:"required"`
}

// BookListResponse wraps the static book registry.
type BookListResponse struct {
	Books []models.Book `json:"books" validate:"required"`
}

// NotesResponse wraps all stored notes keyed by section ID.
type NotesResponse struct {
	Notes map[string]models.Note `json:"notes" validate:"required"`
}

// DiffResponse wraps the word-level diff of an overridden section.
type DiffResponse struct {
	Parts []diffutil.Part `json:"parts" validate:"required"`
}

// ReferencesResponse wraps the section labels referenced in a body.
type ReferencesResponse struct {
	References []string `json:"references" validate:"required"`
}
