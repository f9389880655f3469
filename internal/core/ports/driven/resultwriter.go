package driven

import "github.com/custodia-labs/minigrep/internal/core/domain"

// ResultWriter consumes search results, preserving their order.
type ResultWriter interface {
	Write(report *domain.SearchReport) error
}
