package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"memory backend not selectable", func(c *Config) { c.Storage.Backend = "memory" }, "storage.backend"},
		{"empty key", func(c *Config) { c.Storage.Key = "  " }, "storage.key"},
		{"key escapes directory", func(c *Config) { c.Storage.Key = "../tasks" }, "storage.key"},
		{"null in path", func(c *Config) { c.Storage.Path = "a\x00b" }, "storage.path"},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "solarized" }, "tui.theme"},
		{"negative delay", func(c *Config) { c.TUI.DeleteDelayMs = -1 }, "tui.delete_delay_ms"},
		{"huge delay", func(c *Config) { c.TUI.DeleteDelayMs = 60000 }, "tui.delete_delay_ms"},
		{"unknown filter", func(c *Config) { c.TUI.DefaultFilter = "today" }, "tui.default_filter"},
		{"unknown locale", func(c *Config) { c.Display.Locale = "fr" }, "display.locale"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidate_ThemeFileSkipsThemeName(t *testing.T) {
	cfg := Default()
	cfg.TUI.Theme = "custom"
	cfg.TUI.ThemeFile = "/themes/custom.yaml"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidate_NestedKeyAllowed(t *testing.T) {
	cfg := Default()
	cfg.Storage.Key = "lists/work"

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	single := ValidationErrors{{Field: "tui.theme", Value: "x", Message: "bad"}}
	if got := single.Error(); got != "tui.theme: bad (got: x)" {
		t.Errorf("single Error() = %q", got)
	}

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "one"},
		{Field: "b", Value: 2, Message: "two"},
	}
	got := multi.Error()
	if !strings.HasPrefix(got, "2 validation errors:") || !strings.Contains(got, "  2. b: two (got: 2)") {
		t.Errorf("multi Error() = %q", got)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have empty message")
	}
}
