package library

import (
	"encoding/json"
	"fmt"

	"github.com/kornthip/matra/internal/apperr"
	"github.com/kornthip/matra/internal/diffutil"
	"github.com/kornthip/matra/internal/models"
	"github.com/kornthip/matra/internal/thainum"
)

// Export serializes all notes and overrides into the versioned backup
// document.
func (s *Service) Export() ([]byte, error) {
	notes, err := s.store.LoadNotes()
	if err != nil {
		return nil, fmt.Errorf("library: load notes: %w", err)
	}
	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return nil, fmt.Errorf("library: load overrides: %w", err)
	}
	if overrides == nil {
		overrides = []models.Section{}
	}

	backup := models.Backup{
		Version:   models.BackupVersion,
		Timestamp: s.now().UnixMilli(),
		Notes:     notes,
		Overrides: overrides,
	}
	return json.MarshalIndent(backup, "", "  ")
}

// rawBackup defers the notes/overrides payloads so their shape can be
// checked before anything is written.
type rawBackup struct {
	Version   int             `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Notes     json.RawMessage `json:"notes"`
	Overrides json.RawMessage `json:"overrides"`
}

// Import replaces stored notes and overrides from a backup document. The
// document is fully validated before the first write, so a malformed or
// wrong-shaped payload leaves existing state untouched.
func (s *Service) Import(data []byte) error {
	var raw rawBackup
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidBackup, err)
	}
	if len(raw.Notes) == 0 || string(raw.Notes) == "null" {
		return fmt.Errorf("%w: notes field is missing", apperr.ErrInvalidBackup)
	}
	var notes map[string]models.Note
	if err := json.Unmarshal(raw.Notes, &notes); err != nil {
		return fmt.Errorf("%w: notes is not an object: %v", apperr.ErrInvalidBackup, err)
	}

	if len(raw.Overrides) == 0 || string(raw.Overrides) == "null" {
		return fmt.Errorf("%w: overrides field is missing", apperr.ErrInvalidBackup)
	}
	var overrides []models.Section
	if err := json.Unmarshal(raw.Overrides, &overrides); err != nil {
		return fmt.Errorf("%w: overrides is not an array: %v", apperr.ErrInvalidBackup, err)
	}
	if notes == nil {
		notes = map[string]models.Note{}
	}

	if err := s.store.SaveNotes(notes); err != nil {
		return fmt.Errorf("library: save notes: %w", err)
	}
	if err := s.store.SaveOverrides(overrides); err != nil {
		return fmt.Errorf("library: save overrides: %w", err)
	}
	return nil
}

// Settings returns the persisted display settings.
func (s *Service) Settings() (models.Settings, error) {
	return s.store.LoadSettings()
}

// SaveSettings validates and persists display settings.
func (s *Service) SaveSettings(settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return s.store.SaveSettings(settings)
}

// Diff returns the word-level diff between the built-in text of a section
// and its override. Both sides must exist.
func (s *Service) Diff(id string) ([]diffutil.Part, error) {
	original, err := s.Original(id)
	if err != nil {
		return nil, err
	}
	overrides, err := s.store.LoadOverrides()
	if err != nil {
		return nil, fmt.Errorf("library: load overrides: %w", err)
	}
	for _, o := range overrides {
		if o.ID == id {
			return diffutil.Compute(original.Body, o.Body), nil
		}
	}
	return nil, apperr.ErrNotFound
}

// References returns the section labels referenced inline in the body of
// the given section, for cross-reference linking.
func (s *Service) References(id string) ([]string, error) {
	sec, err := s.Section(id)
	if err != nil {
		return nil, err
	}
	return thainum.FindReferences(sec.Body), nil
}
