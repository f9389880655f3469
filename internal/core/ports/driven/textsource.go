package driven

import "context"

// TextSource supplies text bodies by name.
type TextSource interface {
	// Read returns the full contents of the named source.
	// Failures wrap domain.ErrRead; invalid UTF-8 wraps domain.ErrInvalidEncoding.
	Read(ctx context.Context, name string) (string, error)
}
