package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/minigrep/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ServerName identifies minigrep to MCP clients.
const ServerName = "minigrep"

// Instructions is sent to clients during initialization.
const Instructions = `minigrep finds the lines of a text that contain a query.

Call ` + ToolSearchLines + ` with a query and exactly one of path (a local
UTF-8 file) or text (inline content). Matching is a plain substring test;
set ignore_case to compare lowercase forms. Lines come back in order with
their 1-based numbers and original case. An empty query returns every line.`

const shutdownGrace = 5 * time.Second

// Server exposes the line search over the Model Context Protocol.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a server backed by ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Title:   "minigrep line search",
			Version: Version,
		}, &mcp.ServerOptions{Instructions: Instructions}),
	}
	s.registerTools()

	return s, nil
}

// Run serves a single client over stdio until ctx is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves on ln until ctx is cancelled. A cancelled context is
// not an error.
func (s *Server) RunHTTP(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP HTTP shutdown: %v", err)
		}
	}()

	logger.Debug("MCP server on http://%s", ln.Addr())
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-stopped
		return nil
	}
	return err
}
