// Package cli provides the cobra command tree for minigrep.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	searchService   driving.SearchService
	settingsService driving.SettingsService
	textSource      driven.TextSource

	// lookupEnv is swapped in tests.
	lookupEnv = os.LookupEnv
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <filename>",
	Short: "Print lines of a file that contain a query",
	Long: `Searches a file for lines containing the query string and prints
each matching line, in file order.

Matching is a plain substring test. Set CASE_INSENSITIVE in the
environment (any value) or pass --ignore-case to compare lowercase
forms instead; printed lines always keep their original case.

A query that begins with '-' must follow '--' so it is not read as
a flag:

  minigrep -- -> notes.txt

Defaults for case, line numbers and colour can be stored with
'minigrep settings set'.`,
	Args:          validateArgs,
	RunE:          runSearch,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	})
}

// Services holds the core services the commands run against.
type Services struct {
	Search   driving.SearchService
	Settings driving.SettingsService
	Source   driven.TextSource
}

// SetServices configures the services used by all commands.
func SetServices(s Services) {
	searchService = s.Search
	settingsService = s.Settings
	textSource = s.Source
}

// Execute runs the root command and reports any error on stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), describeError(err))
	}
	return err
}

// describeError prefixes err by where it came from: bad invocation or failed run.
func describeError(err error) string {
	if errors.Is(err, domain.ErrConfiguration) {
		return "Problem parsing arguments: " + err.Error()
	}
	return "Application error: " + err.Error()
}
