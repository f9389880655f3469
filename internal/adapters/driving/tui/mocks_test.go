package tui

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/matcher"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// MockSearchService runs the real matcher over in-memory text and records
// each call.
type MockSearchService struct {
	calls []string
}

func (m *MockSearchService) Search(_ context.Context, _ domain.SearchRequest) (*domain.SearchReport, error) {
	return nil, domain.ErrRead
}

func (m *MockSearchService) SearchText(
	_ context.Context, query, body string, policy domain.CasePolicy,
) *domain.SearchReport {
	m.calls = append(m.calls, query+"|"+policy.String())
	return &domain.SearchReport{
		ID:           "report-1",
		Query:        query,
		Policy:       policy,
		Matches:      matcher.Find(query, body, policy),
		LinesScanned: len(matcher.Lines(body)),
	}
}

func (m *MockSearchService) Run(_ context.Context, _ domain.SearchRequest, _ driven.ResultWriter) error {
	return nil
}

func (m *MockSearchService) Watch(_ context.Context, _ domain.SearchRequest, _ driven.ResultWriter) error {
	return nil
}
