package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/tasklist/internal/tui/styles"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    any
		wantErr string
	}{
		{"storage.backend", "sqlite", "sqlite", ""},
		{"storage.backend", "SQLite", "sqlite", ""},
		{"storage.backend", "memory", nil, "Valid options: file, sqlite"},
		{"storage.path", "~/tasks", "~/tasks", ""},
		{"tui.theme", "nord", "nord", ""},
		{"tui.delete_delay_ms", "0", 0, ""},
		{"tui.delete_delay_ms", "250", 250, ""},
		{"tui.delete_delay_ms", "-1", nil, "must be non-negative"},
		{"tui.delete_delay_ms", "soon", nil, "expected integer"},
		{"tui.default_filter", "done", "done", ""},
		{"display.locale", "id", "id", ""},
		{"logging.enabled", "true", true, ""},
		{"logging.enabled", "0", false, ""},
		{"logging.enabled", "maybe", nil, "expected true or false"},
		{"logging.level", "debug", "debug", ""},
		{"nope.key", "x", nil, "unknown configuration key"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			got, err := coerceValue(tt.key, tt.value)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("coerceValue() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerceValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("coerceValue() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSettableKeysCoverDefaults(t *testing.T) {
	for _, key := range []string{
		"storage.backend", "storage.path", "storage.key",
		"tui.theme", "tui.theme_file", "tui.delete_delay_ms", "tui.default_filter",
		"display.locale", "logging.enabled", "logging.level",
	} {
		if _, ok := settableKeys[key]; !ok {
			t.Errorf("key %q is not settable", key)
		}
	}
}

func TestRunConfigInit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	configInitCmd.SetOut(&buf)
	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "tasklist", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "delete_delay_ms: 300") {
		t.Errorf("config file missing defaults:\n%s", data)
	}

	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("second runConfigInit() should refuse to overwrite")
	}
}

func TestRunThemeExport(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "exported.yaml")

	var buf bytes.Buffer
	themeExportCmd.SetOut(&buf)
	if err := runThemeExport(themeExportCmd, []string{"dracula", outputPath}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}

	tf, err := styles.LoadThemeFile(outputPath)
	if err != nil {
		t.Fatalf("exported theme does not load: %v", err)
	}
	if tf.ToPalette().Primary != styles.DraculaPalette().Primary {
		t.Errorf("exported primary = %q", tf.ToPalette().Primary)
	}

	if err := runThemeExport(themeExportCmd, []string{"nonexistent"}); err == nil {
		t.Error("exporting an unknown theme should fail")
	}
}

func TestRunThemeList(t *testing.T) {
	var buf bytes.Buffer
	themeListCmd.SetOut(&buf)
	if err := runThemeList(themeListCmd, nil); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}
	for _, name := range styles.BuiltinThemes() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("theme list missing %q", name)
		}
	}
}
