// Package testutil provides shared test helpers for setting up corpus
// directories and databases.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/kornthip/matra/internal/corpus"
	"github.com/kornthip/matra/internal/storage"
	"github.com/kornthip/matra/internal/store"
)

// TestDB creates a temporary SQLite store that is automatically cleaned up.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "matra-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestCorpus creates a temporary corpus directory seeded with the given
// files (name → raw statute text) and returns a synced library over it.
func TestCorpus(t *testing.T, files map[string]string) (string, *corpus.Library) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := fs.Write(name, []byte(content)); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	lib := corpus.NewLibrary(fs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := lib.SyncAll(); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	return dir, lib
}
