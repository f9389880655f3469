package driven

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch emits changes to path until ctx is cancelled.
	// The channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan domain.FileChange, error)

	// Close releases watcher resources.
	Close() error
}
