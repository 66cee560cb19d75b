package library

import (
	"fmt"
	"sort"

	"github.com/kornthip/matra/internal/apperr"
	"github.com/kornthip/matra/internal/models"
)

// Notes returns all stored notes keyed by section ID.
func (s *Service) Notes() (map[string]models.Note, error) {
	notes, err := s.store.LoadNotes()
	if err != nil {
		return nil, fmt.Errorf("library: load notes: %w", err)
	}
	return notes, nil
}

// SaveNote upserts the note for its section. A note that holds no text, no
// flag, and no highlight spans is garbage-collected: any existing entry for
// that section is removed instead of persisting an empty record. The
// returned bool reports whether a note remains stored afterwards.
func (s *Service) SaveNote(note models.Note) (models.Note, bool, error) {
	if note.SectionID == "" {
		return models.Note{}, false, fmt.Errorf("%w: section id is required", apperr.ErrInvalidInput)
	}

	notes, err := s.store.LoadNotes()
	if err != nil {
		return models.Note{}, false, fmt.Errorf("library: load notes: %w", err)
	}

	if note.Empty() {
		delete(notes, note.SectionID)
		if err := s.store.SaveNotes(notes); err != nil {
			return models.Note{}, false, fmt.Errorf("library: save notes: %w", err)
		}
		return models.Note{}, false, nil
	}

	note.Highlights = normalizeHighlights(note.Highlights)
	note.UpdatedAt = s.now()
	notes[note.SectionID] = note
	if err := s.store.SaveNotes(notes); err != nil {
		return models.Note{}, false, fmt.Errorf("library: save notes: %w", err)
	}
	return note, true, nil
}

// normalizeHighlights drops inverted spans and orders the rest by start
// offset. Overlap removal happens on the editing side where the user picks
// the winning span; storage only guarantees a stable order.
func normalizeHighlights(spans []models.TextHighlight) []models.TextHighlight {
	if len(spans) == 0 {
		return nil
	}
	out := make([]models.TextHighlight, 0, len(spans))
	for _, h := range spans {
		if h.Start < h.End {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
