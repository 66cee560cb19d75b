// Package store persists user state: section overrides, notes, and display
// settings. Core logic never touches a database directly; it depends on the
// Store interface so tests can run against the in-memory implementation.
package store

import "github.com/kornthip/matra/internal/models"

// Store is the persistence port. Each mutation in the service layer reads
// the full current state, applies one change, and writes the full state
// back.
type Store interface {
	LoadOverrides() ([]models.Section, error)
	SaveOverrides([]models.Section) error
	LoadNotes() (map[string]models.Note, error)
	SaveNotes(map[string]models.Note) error
	LoadSettings() (models.Settings, error)
	SaveSettings(models.Settings) error
	Close() error
}

// Verify implementations satisfy Store at compile time.
var (
	_ Store = (*DB)(nil)
	_ Store = (*Memory)(nil)
)
