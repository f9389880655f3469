package driving

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// SearchService provides line search to external actors.
type SearchService interface {
	// Search reads the requested file and returns its matching lines.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchReport, error)

	// SearchText matches against an in-memory body. It cannot fail.
	SearchText(ctx context.Context, query, body string, policy domain.CasePolicy) *domain.SearchReport

	// Run searches and writes the report to w.
	Run(ctx context.Context, req domain.SearchRequest, w driven.ResultWriter) error

	// Watch runs once, then again after every change to the file,
	// until ctx is cancelled or the file is removed.
	Watch(ctx context.Context, req domain.SearchRequest, w driven.ResultWriter) error
}
