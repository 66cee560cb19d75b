// Package models defines the domain types for Matra.
package models

import "time"

// Section is one numbered unit of statutory text (a มาตรา).
type Section struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Body       string `json:"body"`
	Category   string `json:"category,omitempty"`
	IsOverride bool   `json:"is_override,omitempty"`
	BookID     string `json:"book_id,omitempty"`
}

// Book is the static metadata for one statute book in the corpus.
type Book struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description,omitempty"`
	SourceURL    string `json:"source_url,omitempty"`
	LastUpdated  string `json:"last_updated,omitempty"`
	SourceFile   string `json:"-"`
}

// TextHighlight is a span-level highlight over a section body.
// Start and End are byte offsets into the body; Start < End.
type TextHighlight struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Color string `json:"color"`
}

// Note is a user annotation attached to a section by ID.
type Note struct {
	SectionID  string          `json:"section_id"`
	Text       string          `json:"text"`
	Flagged    bool            `json:"flagged,omitempty"`
	Highlights []TextHighlight `json:"highlights,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Empty reports whether the note carries no content at all. Empty notes are
// garbage-collected on save instead of being persisted as blank records.
func (n Note) Empty() bool {
	return trimmedLen(n.Text) == 0 && !n.Flagged && len(n.Highlights) == 0
}

func trimmedLen(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			n++
		}
	}
	return n
}

// Backup is the versioned export/import document.
type Backup struct {
	Version   int             `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Notes     map[string]Note `json:"notes"`
	Overrides []Section       `json:"overrides"`
}

// BackupVersion is the current backup document version.
const BackupVersion = 1
