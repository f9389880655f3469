// Package tui provides an interactive terminal user interface for minigrep.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
)

// ErrMissingSearchService is returned by Validate when Ports has no
// search service to filter the document with.
var ErrMissingSearchService = errors.New("tui: no search service to filter the document")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Search filters the loaded document.
	Search driving.SearchService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}

// Document is the text the TUI searches. It is read once at startup.
type Document struct {
	// Name is shown in the header, usually the file path.
	Name string

	// Body is the full text.
	Body string

	// IgnoreCase selects the initial case policy.
	IgnoreCase bool
}
