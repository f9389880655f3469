package filesystem

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.TextSource = (*Reader)(nil)

// Reader loads whole files as text.
type Reader struct{}

// NewReader creates a new file reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the contents of the file at name, which may be a path
// or a file:// URI. The file must be valid UTF-8.
func (r *Reader) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := ResolvePath(name)
	logger.Debug("Reading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRead, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, domain.ErrInvalidEncoding)
	}
	return string(data), nil
}
