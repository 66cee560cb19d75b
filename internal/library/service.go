// Package library coordinates the corpus, the persistence store, and user
// edits into one assembled, ordered, searchable collection of sections.
package library

import (
	"fmt"
	"sort"
	"time"

	"github.com/kornthip/matra/internal/apperr"
	"github.com/kornthip/matra/internal/corpus"
	"github.com/kornthip/matra/internal/lawparse"
	"github.com/kornthip/matra/internal/models"
	"github.com/kornthip/matra/internal/store"
	"github.com/kornthip/matra/internal/thainum"
)

// CustomBookID is the sentinel book ID for ad-hoc sections that belong to
// no built-in book.
const CustomBookID = "custom"

// defaultCustomCategory labels ad-hoc sections created without one.
const defaultCustomCategory = "กฎหมายเพิ่มเติม"

// Service is the main application service over corpus and store.
type Service struct {
	corpus *corpus.Library
	store  store.Store
	now    func() time.Time
}

// NewService creates a library service.
func NewService(c *corpus.Library, s store.Store) *Service {
	return &Service{corpus: c, store: s, now: time.Now}
}

// Assemble merges built-in sections with user overrides and returns the
// deterministically ordered full collection. The merge is a two-phase map
// insert: built-ins first, then overrides, so an override always wins on an
// ID collision.
func (s *Service) Assemble() ([]models.Section, error) {
	builtins := s.corpus.Sections()
	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return nil, fmt.Errorf("library: load overrides: %w", err)
	}

	merged := make(map[string]models.Section, len(builtins)+len(overrides))
	order := make([]string, 0, len(builtins)+len(overrides))
	for _, sec := range builtins {
		if _, seen := merged[sec.ID]; !seen {
			order = append(order, sec.ID)
		}
		merged[sec.ID] = sec
	}
	for _, sec := range overrides {
		if _, seen := merged[sec.ID]; !seen {
			order = append(order, sec.ID)
		}
		merged[sec.ID] = sec
	}

	out := make([]models.Section, 0, len(order))
	for _, id := range order {
		out = append(out, merged[id])
	}
	sortSections(out)
	return out, nil
}

// sortSections orders the assembled collection: book priority first
// (unknown books last), then the numeral sort key; overrides without any
// book context go to the very end.
func sortSections(secs []models.Section) {
	sort.SliceStable(secs, func(i, j int) bool {
		a, b := secs[i], secs[j]

		ia, ib := bookRank(a.BookID), bookRank(b.BookID)
		if ia != ib {
			return ia < ib
		}

		aLoose := a.IsOverride && a.BookID == ""
		bLoose := b.IsOverride && b.BookID == ""
		if aLoose != bLoose {
			return bLoose
		}

		return thainum.SortKey(a.Number).Less(thainum.SortKey(b.Number))
	})
}

func bookRank(bookID string) int {
	if idx := corpus.PriorityIndex(bookID); idx >= 0 {
		return idx
	}
	return len(corpus.Books) + 1
}

// Section returns one assembled section by ID, override winning over
// built-in.
func (s *Service) Section(id string) (models.Section, error) {
	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return models.Section{}, fmt.Errorf("library: load overrides: %w", err)
	}
	for _, sec := range overrides {
		if sec.ID == id {
			return sec, nil
		}
	}
	if sec, ok := s.corpus.Section(id); ok {
		return sec, nil
	}
	return models.Section{}, apperr.ErrNotFound
}

// Original returns the pristine built-in section for an ID, bypassing any
// override.
func (s *Service) Original(id string) (models.Section, error) {
	if sec, ok := s.corpus.Section(id); ok {
		return sec, nil
	}
	return models.Section{}, apperr.ErrNotFound
}

// OverrideInput carries the fields for creating or updating an override.
type OverrideInput struct {
	ID       string
	Number   string
	Body     string
	Category string
	BookID   string
}

// SaveOverride upserts a user override and returns the finalized section.
//
// ID resolution: an explicit ID wins; otherwise a real book context derives
// the deterministic built-in-style ID, so editing "มาตรา ๑๑๒ of crim"
// shadows the built-in crim-112; with no book context a fresh time-based ID
// is minted and the category defaults to a generic placeholder.
func (s *Service) SaveOverride(in OverrideInput) (models.Section, error) {
	if in.Number == "" || in.Body == "" {
		return models.Section{}, fmt.Errorf("%w: number and body are required", apperr.ErrInvalidInput)
	}

	sec := models.Section{
		ID:         in.ID,
		Number:     thainum.ToArabic(in.Number),
		Body:       in.Body,
		Category:   in.Category,
		IsOverride: true,
		BookID:     in.BookID,
	}

	if sec.ID == "" && sec.BookID != "" && sec.BookID != CustomBookID {
		sec.ID = lawparse.SectionID(sec.BookID, sec.Number)
	}
	if sec.ID == "" {
		sec.ID = fmt.Sprintf("custom-%d", s.now().UnixMilli())
		if sec.Category == "" {
			sec.Category = defaultCustomCategory
		}
		if sec.BookID == "" {
			sec.BookID = CustomBookID
		}
	}

	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return models.Section{}, fmt.Errorf("library: load overrides: %w", err)
	}
	replaced := false
	for i, o := range overrides {
		if o.ID == sec.ID {
			overrides[i] = sec
			replaced = true
			break
		}
	}
	if !replaced {
		overrides = append(overrides, sec)
	}
	if err := s.store.SaveOverrides(overrides); err != nil {
		return models.Section{}, fmt.Errorf("library: save overrides: %w", err)
	}
	return sec, nil
}

// RevertOverride removes the override for id. When a built-in counterpart
// exists it becomes visible again; when none exists this is a plain delete.
func (s *Service) RevertOverride(id string) error {
	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return fmt.Errorf("library: load overrides: %w", err)
	}
	kept := overrides[:0]
	for _, o := range overrides {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if err := s.store.SaveOverrides(kept); err != nil {
		return fmt.Errorf("library: save overrides: %w", err)
	}
	return nil
}
