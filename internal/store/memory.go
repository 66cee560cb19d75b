package store

import "github.com/kornthip/matra/internal/models"

// Memory implements Store entirely in memory. It copies state on every load
// and save so callers cannot alias internal slices or maps.
type Memory struct {
	overrides []models.Section
	notes     map[string]models.Note
	settings  *models.Settings
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadOverrides() ([]models.Section, error) {
	out := make([]models.Section, len(m.overrides))
	copy(out, m.overrides)
	return out, nil
}

func (m *Memory) SaveOverrides(sections []models.Section) error {
	m.overrides = make([]models.Section, len(sections))
	copy(m.overrides, sections)
	return nil
}

func (m *Memory) LoadNotes() (map[string]models.Note, error) {
	out := make(map[string]models.Note, len(m.notes))
	for k, v := range m.notes {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) SaveNotes(notes map[string]models.Note) error {
	m.notes = make(map[string]models.Note, len(notes))
	for k, v := range notes {
		m.notes[k] = v
	}
	return nil
}

func (m *Memory) LoadSettings() (models.Settings, error) {
	if m.settings == nil {
		return models.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *Memory) SaveSettings(s models.Settings) error {
	m.settings = &s
	return nil
}

func (m *Memory) Close() error { return nil }
