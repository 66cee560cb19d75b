package corpus

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after a watcher-driven corpus change.
// kind is one of "updated" or "removed"; bookID names the affected book.
type EventCallback func(kind, bookID string)

// Watch starts an fsnotify watcher on the corpus directory and re-parses
// books as their source files change, until ctx is cancelled. Rename events
// schedule a debounced full re-sync, because fsnotify reports a rename on
// the old path only.
func (l *Library) Watch(ctx context.Context, root string, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}

	l.logger.Info("watcher: started", slog.String("root", root))

	var resyncTimer *time.Timer
	var resyncCh <-chan time.Time

	scheduleResync := func() {
		if resyncTimer == nil {
			resyncTimer = time.NewTimer(200 * time.Millisecond)
			resyncCh = resyncTimer.C
		} else {
			resyncTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if resyncTimer != nil {
				resyncTimer.Stop()
			}
			l.logger.Info("watcher: stopped")
			return nil

		case <-resyncCh:
			if err := l.SyncAll(); err != nil {
				l.logger.Warn("watcher: resync failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".txt") {
				continue
			}
			book, registered := bookBySourceFile(name)
			if !registered {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				l.ReloadFile(name)
				l.logger.Debug("watcher: reparsed", slog.String("book", book.ID))
				if cb != nil {
					cb("updated", book.ID)
				}

			case ev.Op&fsnotify.Remove != 0:
				l.RemoveFile(name)
				l.logger.Debug("watcher: removed", slog.String("book", book.ID))
				if cb != nil {
					cb("removed", book.ID)
				}

			case ev.Op&fsnotify.Rename != 0:
				l.RemoveFile(name)
				if cb != nil {
					cb("removed", book.ID)
				}
				scheduleResync()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
