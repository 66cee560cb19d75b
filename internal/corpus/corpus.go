package corpus

import (
	"log/slog"
	"sync"

	"github.com/kornthip/matra/internal/checksum"
	"github.com/kornthip/matra/internal/lawparse"
	"github.com/kornthip/matra/internal/models"
	"github.com/kornthip/matra/internal/storage"
)

// Library holds the parsed built-in sections for every book. Source text is
// immutable between file changes, so each book is parsed once and memoized
// by content checksum; SyncAll and the watcher re-parse only when the
// checksum moves.
type Library struct {
	store  storage.Provider
	logger *slog.Logger

	mu     sync.RWMutex
	parsed map[string]parsedBook // book ID → cache entry
}

type parsedBook struct {
	checksum string
	sections []models.Section
}

// NewLibrary creates a library over the given corpus provider.
func NewLibrary(store storage.Provider, logger *slog.Logger) *Library {
	return &Library{
		store:  store,
		logger: logger,
		parsed: make(map[string]parsedBook),
	}
}

// SyncAll brings the cache up to date with the corpus directory: changed
// files are re-parsed, missing files drop their book's sections. A book
// with no source file simply contributes nothing; that is not an error.
func (l *Library) SyncAll() error {
	infos, err := l.store.List()
	if err != nil {
		return err
	}
	onDisk := make(map[string]string, len(infos)) // file name → checksum
	for _, info := range infos {
		onDisk[info.Name] = info.Checksum
	}

	for _, book := range Books {
		cs, ok := onDisk[book.SourceFile]
		if !ok {
			l.drop(book.ID)
			continue
		}
		l.mu.RLock()
		cached, hit := l.parsed[book.ID]
		l.mu.RUnlock()
		if hit && cached.checksum == cs {
			continue
		}
		if err := l.reloadBook(book); err != nil {
			l.logger.Warn("corpus: reload failed",
				slog.String("book", book.ID),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// ReloadFile re-parses the book backed by the given corpus file name.
// Unregistered file names are ignored.
func (l *Library) ReloadFile(name string) {
	book, ok := bookBySourceFile(name)
	if !ok {
		return
	}
	if err := l.reloadBook(book); err != nil {
		l.logger.Warn("corpus: reload failed",
			slog.String("book", book.ID),
			slog.String("error", err.Error()))
	}
}

// RemoveFile drops the cached sections for the book backed by the given
// corpus file name.
func (l *Library) RemoveFile(name string) {
	if book, ok := bookBySourceFile(name); ok {
		l.drop(book.ID)
	}
}

func (l *Library) reloadBook(book models.Book) error {
	data, err := l.store.Read(book.SourceFile)
	if err != nil {
		return err
	}
	sections := lawparse.Parse(string(data), book.ID, book.Name)

	l.mu.Lock()
	l.parsed[book.ID] = parsedBook{
		checksum: checksum.Sum(data),
		sections: sections,
	}
	l.mu.Unlock()

	l.logger.Debug("corpus: parsed",
		slog.String("book", book.ID),
		slog.Int("sections", len(sections)))
	return nil
}

func (l *Library) drop(bookID string) {
	l.mu.Lock()
	delete(l.parsed, bookID)
	l.mu.Unlock()
}

// Sections returns every built-in section, books in registry order,
// sections in document order. The returned slice is owned by the caller.
func (l *Library) Sections() []models.Section {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []models.Section
	for _, book := range Books {
		out = append(out, l.parsed[book.ID].sections...)
	}
	return out
}

// Section returns the pristine built-in section with the given ID, used to
// diff an override against its original.
func (l *Library) Section(id string) (models.Section, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, pb := range l.parsed {
		for _, s := range pb.sections {
			if s.ID == id {
				return s, true
			}
		}
	}
	return models.Section{}, false
}
