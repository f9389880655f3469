// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// SearchCompleted carries a finished search back to the model.
// Query and Policy identify the search so stale results can be dropped.
type SearchCompleted struct {
	Query  string
	Policy domain.CasePolicy
	Report *domain.SearchReport
}
