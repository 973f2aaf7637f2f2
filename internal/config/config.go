package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tasklist configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig selects where tasks are kept
type StorageConfig struct {
	// Backend is the key-value store implementation (default: "file")
	// Options: "file", "sqlite"
	Backend string `mapstructure:"backend"`
	// Path is the data directory. Empty means $XDG_DATA_HOME/tasklist.
	// A leading ~ expands to the home directory.
	Path string `mapstructure:"path"`
	// Key is the storage key holding the task collection (default: "tasks")
	Key string `mapstructure:"key"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the built-in color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ThemeFile is an optional YAML theme that overrides Theme
	ThemeFile string `mapstructure:"theme_file"`
	// DeleteDelayMs is how long a deleted row stays visible, marked as
	// removing, before it is dropped (default: 300, 0 = immediate)
	DeleteDelayMs int `mapstructure:"delete_delay_ms"`
	// DefaultFilter is the filter the TUI opens with (default: "all")
	// Options: "all", "pending", "done"
	DefaultFilter string `mapstructure:"default_filter"`
}

// DisplayConfig controls how values are formatted
type DisplayConfig struct {
	// Locale selects the due date format (default: "en")
	// Options: "en" (20 Oct 2026), "id" (20 Okt 2026)
	Locale string `mapstructure:"locale"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled writes a JSON debug log to <data dir>/debug.log (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written (default: "info")
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    "",
			Key:     "tasks",
		},
		TUI: TUIConfig{
			Theme:         "default",
			ThemeFile:     "",
			DeleteDelayMs: 300,
			DefaultFilter: "all",
		},
		Display: DisplayConfig{
			Locale: "en",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// DeleteDelay returns DeleteDelayMs as a duration.
func (c *TUIConfig) DeleteDelay() time.Duration {
	return time.Duration(c.DeleteDelayMs) * time.Millisecond
}

// ResolvePath returns the data directory: Path with ~ expanded, or
// DataDir() when Path is empty.
func (s *StorageConfig) ResolvePath() string {
	if s.Path == "" {
		return DataDir()
	}
	return expandHome(s.Path)
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Storage defaults
	viper.SetDefault("storage.backend", defaults.Storage.Backend)
	viper.SetDefault("storage.path", defaults.Storage.Path)
	viper.SetDefault("storage.key", defaults.Storage.Key)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.theme_file", defaults.TUI.ThemeFile)
	viper.SetDefault("tui.delete_delay_ms", defaults.TUI.DeleteDelayMs)
	viper.SetDefault("tui.default_filter", defaults.TUI.DefaultFilter)

	// Display defaults
	viper.SetDefault("display.locale", defaults.Display.Locale)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tasklist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasklist"
	}
	return filepath.Join(home, ".config", "tasklist")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the default data directory
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tasklist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tasklist"
	}
	return filepath.Join(home, ".local", "share", "tasklist")
}

func expandHome(path string) string {
	if path != "~" && !(len(path) > 1 && path[0] == '~' && path[1] == '/') {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
