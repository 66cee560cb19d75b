package library

import (
	"fmt"
	"strings"

	"github.com/kornthip/matra/internal/apperr"
	"github.com/kornthip/matra/internal/models"
	"github.com/kornthip/matra/internal/thainum"
)

// Mode selects which slice of the assembled collection a listing shows.
type Mode string

const (
	ModeAll     Mode = "all"     // everything in scope
	ModeNotes   Mode = "notes"   // sections with a non-empty note text
	ModeFlagged Mode = "flagged" // sections whose note is flagged
	ModeSearch  Mode = "search"  // active search; empty query yields nothing
)

// ParseMode validates a mode string, defaulting empty to ModeAll.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAll, nil
	case ModeAll, ModeNotes, ModeFlagged, ModeSearch:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Filter assembles the collection, scopes it to bookID (empty = all books),
// applies the view mode, and matches the query. Matching is substring over
// the normalized number, body, and category, so it is case- and
// numeral-script-insensitive by construction.
func (s *Service) Filter(bookID string, mode Mode, query string) ([]models.Section, error) {
	secs, err := s.Assemble()
	if err != nil {
		return nil, err
	}

	if bookID != "" {
		scoped := secs[:0]
		for _, sec := range secs {
			if sec.BookID == bookID {
				scoped = append(scoped, sec)
			}
		}
		secs = scoped
	}

	switch mode {
	case ModeNotes, ModeFlagged:
		notes, err := s.store.LoadNotes()
		if err != nil {
			return nil, fmt.Errorf("library: load notes: %w", err)
		}
		kept := secs[:0]
		for _, sec := range secs {
			note, ok := notes[sec.ID]
			if !ok {
				continue
			}
			if mode == ModeNotes && strings.TrimSpace(note.Text) != "" {
				kept = append(kept, sec)
			}
			if mode == ModeFlagged && note.Flagged {
				kept = append(kept, sec)
			}
		}
		return kept, nil
	}

	if strings.TrimSpace(query) == "" {
		if mode == ModeSearch {
			// Distinguishes "haven't typed yet" from "no match".
			return []models.Section{}, nil
		}
		return secs, nil
	}

	q := thainum.NormalizeSearch(query)
	kept := secs[:0]
	for _, sec := range secs {
		if strings.Contains(thainum.NormalizeSearch(sec.Number), q) ||
			strings.Contains(thainum.NormalizeSearch(sec.Body), q) ||
			strings.Contains(thainum.NormalizeSearch(sec.Category), q) {
			kept = append(kept, sec)
		}
	}
	return kept, nil
}

// Resolve locates a section by its native-script number within an optional
// book scope, for deep-link addressing. Both the link's number and each
// candidate's number are normalized before comparing.
func (s *Service) Resolve(bookID, number string) (models.Section, error) {
	target := thainum.NormalizeSearch(number)
	if target == "" {
		return models.Section{}, fmt.Errorf("%w: number is required", apperr.ErrInvalidInput)
	}

	secs, err := s.Assemble()
	if err != nil {
		return models.Section{}, err
	}
	for _, sec := range secs {
		if bookID != "" && sec.BookID != bookID {
			continue
		}
		if thainum.NormalizeSearch(sec.Number) == target {
			return sec, nil
		}
	}
	return models.Section{}, apperr.ErrNotFound
}
