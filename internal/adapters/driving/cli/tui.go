package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/minigrep/internal/adapters/driving/tui"
	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// runProgram is swapped in tests so no terminal is needed.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

var tuiCmd = &cobra.Command{
	Use:   "tui <filename>",
	Short: "Search a file interactively",
	Long: `Load a file and filter its lines as you type.

Controls:
  Tab      - Toggle case sensitivity
  ↑/↓      - Scroll results
  Esc      - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if searchService == nil || textSource == nil {
		return errors.New("search service not configured")
	}

	body, err := textSource.Read(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	settings := currentSettings()
	_, envSet := lookupEnv(domain.EnvCaseInsensitive)

	app, err := tui.NewApp(&tui.Ports{Search: searchService}, tui.Document{
		Name:       args[0],
		Body:       body,
		IgnoreCase: envSet || settings.Search.IgnoreCase,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
