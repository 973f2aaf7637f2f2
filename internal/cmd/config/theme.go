package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and export color themes",
	Long: `List and export color themes for the tasklist TUI.

A custom theme is a YAML file set with 'config set tui.theme_file <path>'.
Use 'theme export' to start one from a built-in theme.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a built-in theme to YAML",
	Long: `Export a built-in theme to YAML as a starting point for a custom theme.

If no output file is specified, the YAML is printed to stdout.

Examples:
  tasklist config theme export nord
  tasklist config theme export dracula ~/.config/tasklist/mine.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	data, err := styles.ExportTheme(styles.ThemeName(args[0]))
	if err != nil {
		return err
	}
	if len(args) == 1 {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[1], data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to %s\n", args[1])
	return nil
}
