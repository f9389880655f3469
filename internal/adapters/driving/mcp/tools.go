package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// ToolSearchLines is the name of the line search tool.
const ToolSearchLines = "search_lines"

// SearchInput is the input schema for the search_lines tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"the substring to look for; empty matches every line"`
	Path       string `json:"path,omitempty" jsonschema:"path of a local UTF-8 text file to search"`
	Text       string `json:"text,omitempty" jsonschema:"text to search instead of a file"`
	IgnoreCase bool   `json:"ignore_case,omitempty" jsonschema:"compare lowercase forms of query and line"`
}

// SearchOutput is the output schema for the search_lines tool.
type SearchOutput struct {
	ID           string        `json:"id"`
	Matches      []MatchOutput `json:"matches"`
	Count        int           `json:"count"`
	LinesScanned int           `json:"lines_scanned"`
}

// MatchOutput represents a single matched line.
type MatchOutput struct {
	LineNumber int    `json:"line_number"`
	Line       string `json:"line"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolSearchLines,
		Description: "Return every line of a file or text that contains a query, in order",
	}, s.handleSearch)
}

// handleSearch handles the search_lines tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if (input.Path == "") == (input.Text == "") {
		return nil, SearchOutput{}, ErrAmbiguousSource
	}

	policy := domain.PolicyFor(input.IgnoreCase)

	var report *domain.SearchReport
	if input.Path != "" {
		var err error
		report, err = s.ports.Search.Search(ctx, domain.SearchRequest{
			Query:    input.Query,
			Filename: input.Path,
			Policy:   policy,
		})
		if err != nil {
			return nil, SearchOutput{}, err
		}
	} else {
		report = s.ports.Search.SearchText(ctx, input.Query, input.Text, policy)
	}

	output := SearchOutput{
		ID:           report.ID,
		Matches:      make([]MatchOutput, len(report.Matches)),
		Count:        report.Count(),
		LinesScanned: report.LinesScanned,
	}
	for i, m := range report.Matches {
		output.Matches[i] = MatchOutput{LineNumber: m.LineNumber, Line: m.Line}
	}

	return nil, output, nil
}
