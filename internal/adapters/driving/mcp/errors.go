// Package mcp provides an MCP (Model Context Protocol) server adapter for minigrep.
// It lets AI assistants run line searches over local files or supplied text.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: no search service behind search_lines")

// ErrAmbiguousSource is returned when a call names both or neither of path and text.
var ErrAmbiguousSource = errors.New("mcp: exactly one of path or text is required")
