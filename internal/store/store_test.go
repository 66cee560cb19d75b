package store

import (
	"os"
	"testing"
	"time"

	"github.com/kornthip/matra/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "matra-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// stores returns both implementations so every contract test runs against
// SQLite and the in-memory store.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"sqlite": testDB(t),
		"memory": NewMemory(),
	}
}

func TestOverridesRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := []models.Section{
				{ID: "crim-112", Number: "112", Body: "แก้ไขแล้ว", Category: "ป.อ.", IsOverride: true, BookID: "crim"},
				{ID: "custom-1700000000000", Number: "9/9", Body: "เพิ่มเอง", IsOverride: true},
			}
			if err := s.SaveOverrides(in); err != nil {
				t.Fatalf("SaveOverrides: %v", err)
			}
			got, err := s.LoadOverrides()
			if err != nil {
				t.Fatalf("LoadOverrides: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("len = %d, want 2", len(got))
			}
			byID := map[string]models.Section{}
			for _, sec := range got {
				if !sec.IsOverride {
					t.Errorf("section %s should load as override", sec.ID)
				}
				byID[sec.ID] = sec
			}
			if byID["crim-112"].Body != "แก้ไขแล้ว" || byID["crim-112"].BookID != "crim" {
				t.Errorf("crim-112 = %+v", byID["crim-112"])
			}
		})
	}
}

func TestSaveOverridesReplacesPrevious(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SaveOverrides([]models.Section{{ID: "a", Number: "1"}, {ID: "b", Number: "2"}}); err != nil {
				t.Fatal(err)
			}
			if err := s.SaveOverrides([]models.Section{{ID: "c", Number: "3"}}); err != nil {
				t.Fatal(err)
			}
			got, err := s.LoadOverrides()
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].ID != "c" {
				t.Errorf("got = %+v, want only c", got)
			}
		})
	}
}

func TestNotesRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := map[string]models.Note{
				"crim-112": {
					SectionID: "crim-112",
					Text:      "สำคัญมาก",
					Flagged:   true,
					Highlights: []models.TextHighlight{
						{Start: 0, End: 10, Color: "yellow"},
						{Start: 20, End: 30, Color: "green"},
					},
					UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				},
			}
			if err := s.SaveNotes(in); err != nil {
				t.Fatalf("SaveNotes: %v", err)
			}
			got, err := s.LoadNotes()
			if err != nil {
				t.Fatalf("LoadNotes: %v", err)
			}
			n, ok := got["crim-112"]
			if !ok {
				t.Fatal("note missing after round trip")
			}
			if n.Text != "สำคัญมาก" || !n.Flagged {
				t.Errorf("note = %+v", n)
			}
			if len(n.Highlights) != 2 || n.Highlights[1].Color != "green" {
				t.Errorf("highlights = %+v", n.Highlights)
			}
		})
	}
}

func TestLoadNotes_EmptyIsUsableMap(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.LoadNotes()
			if err != nil {
				t.Fatal(err)
			}
			if got == nil {
				t.Fatal("LoadNotes should return a non-nil map")
			}
		})
	}
}

func TestSettings_DefaultWhenUnset(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.LoadSettings()
			if err != nil {
				t.Fatal(err)
			}
			if got != models.DefaultSettings() {
				t.Errorf("settings = %+v, want defaults", got)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := models.Settings{Theme: models.ThemeDark, FontScale: 4, FontStyle: models.FontTraditional}
			if err := s.SaveSettings(in); err != nil {
				t.Fatal(err)
			}
			// Saving again overwrites the single row.
			in.FontScale = 5
			if err := s.SaveSettings(in); err != nil {
				t.Fatal(err)
			}
			got, err := s.LoadSettings()
			if err != nil {
				t.Fatal(err)
			}
			if got != in {
				t.Errorf("settings = %+v, want %+v", got, in)
			}
		})
	}
}
