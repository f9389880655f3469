package mcp

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	report   *domain.SearchReport
	err      error
	lastReq  domain.SearchRequest
	lastText string
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchReport, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.reportOrEmpty(), nil
}

func (m *mockSearchService) SearchText(
	_ context.Context, query, body string, policy domain.CasePolicy,
) *domain.SearchReport {
	m.lastReq = domain.SearchRequest{Query: query, Policy: policy}
	m.lastText = body
	return m.reportOrEmpty()
}

func (m *mockSearchService) Run(_ context.Context, _ domain.SearchRequest, _ driven.ResultWriter) error {
	return m.err
}

func (m *mockSearchService) Watch(_ context.Context, _ domain.SearchRequest, _ driven.ResultWriter) error {
	return m.err
}

func (m *mockSearchService) reportOrEmpty() *domain.SearchReport {
	if m.report != nil {
		return m.report
	}
	return &domain.SearchReport{ID: "empty", Matches: []domain.Match{}}
}
