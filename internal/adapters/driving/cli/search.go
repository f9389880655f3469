package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/output"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/logger"
)

var (
	searchIgnoreCase  bool
	searchLineNumbers bool
	searchCount       bool
	searchJSON        bool
	searchColor       string
	searchWatch       bool
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&searchIgnoreCase, "ignore-case", "i", false, "ignore case (overrides CASE_INSENSITIVE)")
	flags.BoolVarP(&searchLineNumbers, "line-number", "n", false, "prefix each line with its line number")
	flags.BoolVarP(&searchCount, "count", "c", false, "print only the number of matching lines")
	flags.BoolVar(&searchJSON, "json", false, "output results as JSON")
	flags.StringVar(&searchColor, "color", "", "highlight matches: auto, always or never")
	flags.BoolVarP(&searchWatch, "watch", "w", false, "search again whenever the file changes")
	rootCmd.MarkFlagsMutuallyExclusive("count", "json")
}

// validateArgs reports missing positional arguments before anything runs.
func validateArgs(_ *cobra.Command, args []string) error {
	_, err := domain.NewConfig(args, false)
	return err
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	settings := currentSettings()

	cfg, err := domain.NewConfig(args, resolveIgnoreCase(cmd, settings))
	if err != nil {
		return err
	}

	printer, err := newPrinter(cmd, settings)
	if err != nil {
		return err
	}

	req := cfg.Request()
	logger.Info("Searching %s for %q (%s)", req.Filename, req.Query, req.Policy)

	if searchWatch {
		return searchService.Watch(cmd.Context(), req, printer)
	}
	return searchService.Run(cmd.Context(), req, printer)
}

// resolveIgnoreCase applies flag, then environment, then stored default.
func resolveIgnoreCase(cmd *cobra.Command, settings domain.AppSettings) bool {
	if cmd.Flags().Changed("ignore-case") {
		return searchIgnoreCase
	}
	if _, ok := lookupEnv(domain.EnvCaseInsensitive); ok {
		logger.Debug("%s is set", domain.EnvCaseInsensitive)
		return true
	}
	return settings.Search.IgnoreCase
}

func newPrinter(cmd *cobra.Command, settings domain.AppSettings) (*output.Printer, error) {
	opts := output.Options{
		LineNumbers: settings.Output.LineNumbers,
	}
	if cmd.Flags().Changed("line-number") {
		opts.LineNumbers = searchLineNumbers
	}

	switch {
	case searchCount:
		opts.Format = output.FormatCount
	case searchJSON:
		opts.Format = output.FormatJSON
	}

	mode := settings.Output.Color
	if searchColor != "" {
		mode = domain.ColorMode(searchColor)
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: --color must be auto, always or never, got %q",
				domain.ErrConfiguration, searchColor)
		}
	}
	opts.Color = output.ShouldColor(mode, cmd.OutOrStdout())

	return output.NewPrinter(cmd.OutOrStdout(), opts), nil
}

// currentSettings falls back to defaults when no settings service is
// configured or the stored settings cannot be read.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}
