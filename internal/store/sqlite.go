package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kornthip/matra/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS overrides (
	id       TEXT PRIMARY KEY,
	number   TEXT NOT NULL,
	body     TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	book_id  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS notes (
	section_id TEXT PRIMARY KEY,
	text       TEXT NOT NULL DEFAULT '',
	flagged    INTEGER NOT NULL DEFAULT 0,
	highlights TEXT NOT NULL DEFAULT '[]',
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	theme      TEXT NOT NULL,
	font_scale INTEGER NOT NULL,
	font_style TEXT NOT NULL
);
`

// DB implements Store backed by SQLite.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// LoadOverrides returns all persisted override sections.
func (db *DB) LoadOverrides() ([]models.Section, error) {
	rows, err := db.conn.Query(`SELECT id, number, body, category, book_id FROM overrides`)
	if err != nil {
		return nil, fmt.Errorf("store: load overrides: %w", err)
	}
	defer rows.Close()

	var out []models.Section
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Number, &s.Body, &s.Category, &s.BookID); err != nil {
			return nil, err
		}
		s.IsOverride = true
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveOverrides replaces the full override set within one transaction.
func (db *DB) SaveOverrides(sections []models.Section) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if _, err := tx.Exec(`DELETE FROM overrides`); err != nil {
		return fmt.Errorf("store: clear overrides: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO overrides (id, number, body, category, book_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare override insert: %w", err)
	}
	defer stmt.Close()
	for _, s := range sections {
		if _, err := stmt.Exec(s.ID, s.Number, s.Body, s.Category, s.BookID); err != nil {
			return fmt.Errorf("store: insert override %s: %w", s.ID, err)
		}
	}
	return tx.Commit()
}

// LoadNotes returns all notes keyed by section ID.
func (db *DB) LoadNotes() (map[string]models.Note, error) {
	rows, err := db.conn.Query(`SELECT section_id, text, flagged, highlights, updated_at FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("store: load notes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]models.Note)
	for rows.Next() {
		var n models.Note
		var highlightsJSON string
		if err := rows.Scan(&n.SectionID, &n.Text, &n.Flagged, &highlightsJSON, &n.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(highlightsJSON), &n.Highlights); err != nil {
			return nil, fmt.Errorf("store: decode highlights for %s: %w", n.SectionID, err)
		}
		out[n.SectionID] = n
	}
	return out, rows.Err()
}

// SaveNotes replaces the full note set within one transaction.
func (db *DB) SaveNotes(notes map[string]models.Note) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("store: clear notes: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO notes (section_id, text, flagged, highlights, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare note insert: %w", err)
	}
	defer stmt.Close()
	for id, n := range notes {
		highlights := n.Highlights
		if highlights == nil {
			highlights = []models.TextHighlight{}
		}
		highlightsJSON, _ := json.Marshal(highlights)
		if _, err := stmt.Exec(id, n.Text, n.Flagged, string(highlightsJSON), n.UpdatedAt); err != nil {
			return fmt.Errorf("store: insert note %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// LoadSettings returns the persisted settings, or the defaults when none
// have been saved yet.
func (db *DB) LoadSettings() (models.Settings, error) {
	var s models.Settings
	err := db.conn.QueryRow(`SELECT theme, font_scale, font_style FROM settings WHERE id = 1`).
		Scan(&s.Theme, &s.FontScale, &s.FontStyle)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("store: load settings: %w", err)
	}
	return s, nil
}

// SaveSettings upserts the single settings row.
func (db *DB) SaveSettings(s models.Settings) error {
	_, err := db.conn.Exec(`
		INSERT INTO settings (id, theme, font_scale, font_style)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme      = excluded.theme,
			font_scale = excluded.font_scale,
			font_style = excluded.font_style
	`, s.Theme, s.FontScale, s.FontStyle)
	if err != nil {
		return fmt.Errorf("store: save settings: %w", err)
	}
	return nil
}
