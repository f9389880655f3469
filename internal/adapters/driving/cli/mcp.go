package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose line search to MCP clients",
	Long: `Model Context Protocol integration. The server offers one tool,
search_lines, which returns the numbered lines of a file or inline
text that contain a query.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search_lines tool",
	Long: `Serve the search_lines tool to an MCP client.

Without --http the server speaks JSON-RPC on stdin and stdout, which is
what editors and assistants expect when they launch minigrep themselves.
With --http it listens for streamable HTTP sessions until interrupted.

  minigrep mcp serve
  minigrep mcp serve --http 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "listen for HTTP sessions on `addr` instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{Search: searchService})
	if err != nil {
		return err
	}

	if mcpHTTPAddr == "" {
		return server.Run(cmd.Context())
	}

	ln, err := net.Listen("tcp", mcpHTTPAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", mcpHTTPAddr, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "search_lines available at http://%s\n", ln.Addr())
	return server.RunHTTP(cmd.Context(), ln)
}
