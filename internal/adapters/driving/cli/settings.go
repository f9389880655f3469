package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage default settings",
	Long: `View and change the defaults applied when flags are not given.

Settings are stored as TOML in ~/.minigrep/config.toml, or in
$MINIGREP_CONFIG_DIR when set.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  search.ignore_case   true|false         case-insensitive by default
  output.line_numbers  true|false         prefix lines with line numbers
  output.color         auto|always|never  highlight matches`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Ignore case: %s\n", yesNo(settings.Search.IgnoreCase))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Line numbers: %s\n", yesNo(settings.Output.LineNumbers))
	cmd.Printf("  Color: %s\n", settings.Output.Color.Description())
	cmd.Println()

	cmd.Printf("Keys: %s\n", strings.Join(settingsService.Keys(), ", "))
	cmd.Printf("File: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
