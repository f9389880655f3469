package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher reports changes to a single file.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a new file watcher. No OS resources are held
// until Watch is called.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch emits changes to path until ctx is cancelled. The returned
// channel is closed when watching stops.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan domain.FileChange, error) {
	target, err := filepath.Abs(ResolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	w.mu.Lock()
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.watcher = fw
	w.mu.Unlock()

	changes := make(chan domain.FileChange)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				change := handleFsEvent(target, event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

// handleFsEvent maps an fsnotify event on the watched directory to a
// change of target. Events for other files and chmod-only events are dropped.
func handleFsEvent(target string, event fsnotify.Event) *domain.FileChange {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return nil
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return &domain.FileChange{Type: domain.ChangeUpdated, Path: target}
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// Some editors remove and recreate in one step.
		if _, err := os.Stat(target); err == nil {
			return &domain.FileChange{Type: domain.ChangeUpdated, Path: target}
		}
		return &domain.FileChange{Type: domain.ChangeDeleted, Path: target}
	default:
		return nil
	}
}
