// Package config provides CLI commands for managing tasklist configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appconfig "github.com/Iron-Ham/tasklist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify tasklist configuration",
	Long: `View or modify tasklist configuration.

Use 'config show' to display the effective configuration.
Use subcommands to modify settings or create a config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  tasklist config set storage.backend sqlite
  tasklist config set tui.delete_delay_ms 0
  tasklist config set display.locale id

Valid keys:
  storage.backend       - Storage backend (file/sqlite)
  storage.path          - Data directory (empty = default)
  storage.key           - Key holding the task list
  tui.theme             - Color theme (default/monokai/dracula/nord)
  tui.theme_file        - Custom YAML theme, overrides tui.theme
  tui.delete_delay_ms   - Delay before a deleted row disappears
  tui.default_filter    - Filter on start (all/pending/done)
  display.locale        - Date format locale (en/id)
  logging.enabled       - Write a debug log (true/false)
  logging.level         - Log level (debug/info/warn/error)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tasklist/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(themeCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	writeConfig(out, cfg)
	return nil
}

func writeConfig(out io.Writer, cfg *appconfig.Config) {
	fmt.Fprintln(out, "storage:")
	fmt.Fprintf(out, "  backend: %s\n", cfg.Storage.Backend)
	fmt.Fprintf(out, "  path: %s\n", cfg.Storage.ResolvePath())
	fmt.Fprintf(out, "  key: %s\n", cfg.Storage.Key)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  theme_file: %s\n", cfg.TUI.ThemeFile)
	fmt.Fprintf(out, "  delete_delay_ms: %d\n", cfg.TUI.DeleteDelayMs)
	fmt.Fprintf(out, "  default_filter: %s\n", cfg.TUI.DefaultFilter)

	fmt.Fprintln(out, "display:")
	fmt.Fprintf(out, "  locale: %s\n", cfg.Display.Locale)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
}

// settableKeys maps each key accepted by 'config set' to its value kind.
// Enumerated kinds carry their allowed values.
var settableKeys = map[string]func() []string{
	"storage.backend":     appconfig.ValidBackends,
	"storage.path":        nil,
	"storage.key":         nil,
	"tui.theme":           appconfig.ValidThemes,
	"tui.theme_file":      nil,
	"tui.delete_delay_ms": nil,
	"tui.default_filter":  appconfig.ValidFilters,
	"display.locale":      appconfig.ValidLocales,
	"logging.enabled":     nil,
	"logging.level":       appconfig.ValidLogLevels,
}

// coerceValue converts the command line value for key to the type stored
// in the config file.
func coerceValue(key, value string) (any, error) {
	options, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'tasklist config set --help' to see valid keys", key)
	}

	switch key {
	case "logging.enabled":
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "tui.delete_delay_ms":
		n, err := cast.ToIntE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return n, nil
	}

	if options != nil {
		value = strings.ToLower(value)
		if !slices.Contains(options(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(options(), ", "))
		}
	}
	return cast.ToString(value), nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := coerceValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check the whole configuration still validates before writing it
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		return err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = appconfig.ConfigFile()
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

// defaultConfigContent is written by 'config init'.
const defaultConfigContent = `# Tasklist Configuration

# Where tasks are stored
storage:
  # Backend: file (one JSON file per key) or sqlite
  backend: file
  # Data directory; empty means $XDG_DATA_HOME/tasklist
  path: ""
  # Key holding the task list
  key: tasks

# TUI (terminal user interface) settings
tui:
  # Color theme: default, monokai, dracula, nord
  theme: default
  # Custom YAML theme file (overrides theme)
  theme_file: ""
  # How long a deleted task stays visible before it is removed (0 = immediately)
  delete_delay_ms: 300
  # Filter shown on start: all, pending, done
  default_filter: all

# Display settings
display:
  # Due date format: en (20 Oct 2026) or id (20 Okt 2026)
  locale: en

# Debug logging to <data dir>/debug.log
logging:
  enabled: false
  level: info
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'tasklist config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintf(out, "Data directory: %s\n", appconfig.Get().Storage.ResolvePath())
	fmt.Fprintln(out, "\nEnvironment variables: TASKLIST_* (e.g., TASKLIST_STORAGE_BACKEND)")
	return nil
}
