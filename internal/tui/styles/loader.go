package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Badge colors default to secondary (done) and warning (pending).
	BadgeDone    string `yaml:"badge_done,omitempty"`
	BadgePending string `yaml:"badge_pending,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return ParseThemeFile(data)
}

// ParseThemeFile parses and validates theme YAML.
func ParseThemeFile(data []byte) (*ThemeFile, error) {
	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version == "" {
		return errors.New("theme version is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	required := []struct {
		field string
		value string
	}{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.value == "" {
			return fmt.Errorf("color %q is required", c.field)
		}
		if !isValidHexColor(c.value) {
			return fmt.Errorf("color %q has invalid hex value %q", c.field, c.value)
		}
	}

	for field, value := range map[string]string{
		"badge_done":    t.Colors.BadgeDone,
		"badge_pending": t.Colors.BadgePending,
	} {
		if value != "" && !isValidHexColor(value) {
			return fmt.Errorf("color %q has invalid hex value %q", field, value)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),

		BadgeDone:    colorOrDefault(t.Colors.BadgeDone, t.Colors.Secondary),
		BadgePending: colorOrDefault(t.Colors.BadgePending, t.Colors.Warning),
	}
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// ResolvePalette picks the palette for the tui.theme and tui.theme_file
// settings. A theme file wins over the name; an unreadable file is an error.
func ResolvePalette(theme, themeFile string) (*ColorPalette, error) {
	if themeFile != "" {
		tf, err := LoadThemeFile(themeFile)
		if err != nil {
			return nil, err
		}
		return tf.ToPalette(), nil
	}
	return GetPalette(ThemeName(theme)), nil
}

// ExportTheme renders a built-in palette as theme YAML, as a starting
// point for a custom theme file.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsBuiltinTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	p := GetPalette(name)
	tf := ThemeFile{
		Name:    string(name),
		Version: "1",
		Colors: ThemeColors{
			Primary:      string(p.Primary),
			Secondary:    string(p.Secondary),
			Warning:      string(p.Warning),
			Error:        string(p.Error),
			Muted:        string(p.Muted),
			Surface:      string(p.Surface),
			Text:         string(p.Text),
			Border:       string(p.Border),
			BadgeDone:    string(p.BadgeDone),
			BadgePending: string(p.BadgePending),
		},
	}
	return yaml.Marshal(&tf)
}
