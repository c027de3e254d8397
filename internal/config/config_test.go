package config

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/helios/internal/project/vfs"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Editor.DefaultSaveName != "untitled.txt" {
		t.Errorf("DefaultSaveName = %q", cfg.Editor.DefaultSaveName)
	}
	if cfg.Logging.File != "" {
		t.Errorf("default log file = %q, want discard", cfg.Logging.File)
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	err := cfg.Apply(map[string]any{
		"logging": map[string]any{"level": "debug", "max_backups": int64(7)},
		"editor": map[string]any{
			"status_timeout": "1500ms",
			"undo_limit":     50,
			"tab_width":      float64(2),
		},
		"ui":      map[string]any{"show_line_numbers": "false"},
		"unknown": map[string]any{"x": 1},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.MaxBackups != 7 {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Editor.StatusTimeout != 1500*time.Millisecond {
		t.Errorf("StatusTimeout = %v", cfg.Editor.StatusTimeout)
	}
	if cfg.Editor.UndoLimit != 50 || cfg.Editor.TabWidth != 2 {
		t.Errorf("Editor = %+v", cfg.Editor)
	}
	if cfg.UI.ShowLineNumbers {
		t.Error("ShowLineNumbers should be false")
	}
	if cfg.Editor.DefaultSaveName != "untitled.txt" {
		t.Errorf("untouched field changed: %q", cfg.Editor.DefaultSaveName)
	}
}

func TestApplyTypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"string for int", map[string]any{"editor": map[string]any{"tab_width": "wide"}}},
		{"fraction for int", map[string]any{"editor": map[string]any{"undo_limit": 1.5}}},
		{"bad duration", map[string]any{"editor": map[string]any{"status_timeout": "soon"}}},
		{"list for bool", map[string]any{"ui": map[string]any{"show_line_numbers": []any{true}}}},
		{"map for string", map[string]any{"logging": map[string]any{"level": map[string]any{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.Apply(tt.values)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("err = %v, want ErrTypeMismatch", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path == "" {
				t.Errorf("err = %v, want *ValidationError with a path", err)
			}
			if cfg != Default() {
				t.Errorf("config changed despite error: %+v", cfg)
			}
		})
	}
}

func TestApplyDurationForms(t *testing.T) {
	tests := []struct {
		in   any
		want time.Duration
	}{
		{"2s", 2 * time.Second},
		{int64(4), 4 * time.Second},
		{5, 5 * time.Second},
		{0.5, 500 * time.Millisecond},
		{750 * time.Millisecond, 750 * time.Millisecond},
	}
	for _, tt := range tests {
		cfg := Default()
		if err := cfg.Apply(map[string]any{"editor": map[string]any{"status_timeout": tt.in}}); err != nil {
			t.Fatalf("Apply(%v): %v", tt.in, err)
		}
		if cfg.Editor.StatusTimeout != tt.want {
			t.Errorf("status_timeout %v = %v, want %v", tt.in, cfg.Editor.StatusTimeout, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"negative size", func(c *Config) { c.Logging.MaxSizeMB = -1 }},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }},
		{"empty save name", func(c *Config) { c.Editor.DefaultSaveName = "" }},
		{"zero timeout", func(c *Config) { c.Editor.StatusTimeout = 0 }},
		{"negative undo", func(c *Config) { c.Editor.UndoLimit = -3 }},
		{"tab too small", func(c *Config) { c.Editor.TabWidth = 0 }},
		{"tab too large", func(c *Config) { c.Editor.TabWidth = 17 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrValidationFailed) {
				t.Errorf("Validate() = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestPathsCoverSections(t *testing.T) {
	want := map[string]bool{
		"logging.level": true, "logging.file": true, "logging.max_size_mb": true, "logging.max_backups": true,
		"editor.default_save_name": true, "editor.status_timeout": true, "editor.undo_limit": true,
		"editor.tab_width": true, "ui.show_line_numbers": true,
	}
	paths := Paths()
	if len(paths) != len(want) {
		t.Fatalf("Paths() = %v", paths)
	}
	for _, p := range paths {
		if !want[p] {
			t.Errorf("unexpected path %q", p)
		}
	}
}

func TestLoaderPrecedence(t *testing.T) {
	fsys := vfs.NewMemFS()
	err := fsys.AddFile("/home/u/.config/helios/config.toml", `
[logging]
level = "warn"
file = "/var/log/helios.log"

[editor]
tab_width = 8
undo_limit = 10
default_save_name = "from-file.txt"
`)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("HELIOS_EDITOR_TAB_WIDTH", "2")
	t.Setenv("HELIOS_LOG_LEVEL", "error")

	l := NewLoader(
		WithFileSystem(fsys),
		WithFile("/home/u/.config/helios/config.toml"),
		WithOverrides(map[string]any{"logging": map[string]any{"level": "debug"}}),
	)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want flag value debug", cfg.Logging.Level)
	}
	if cfg.Editor.TabWidth != 2 {
		t.Errorf("tab_width = %d, want env value 2", cfg.Editor.TabWidth)
	}
	if cfg.Editor.UndoLimit != 10 || cfg.Logging.File != "/var/log/helios.log" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Editor.StatusTimeout != Default().Editor.StatusTimeout {
		t.Errorf("default lost: %v", cfg.Editor.StatusTimeout)
	}
}

func TestLoaderYAMLFile(t *testing.T) {
	fsys := vfs.NewMemFS()
	if err := fsys.AddFile("/etc/helios.yaml", "editor:\n  default_save_name: scratch.md\nui:\n  show_line_numbers: false\n"); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader(WithFileSystem(fsys), WithFile("/etc/helios.yaml"), WithEnvPrefix("")).Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.DefaultSaveName != "scratch.md" || cfg.UI.ShowLineNumbers {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader(WithFileSystem(vfs.NewMemFS()), WithFile("/none.toml"), WithEnvPrefix("")).Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoaderErrors(t *testing.T) {
	fsys := vfs.NewMemFS()
	if err := fsys.AddFile("/bad.toml", "[editor\n"); err != nil {
		t.Fatal(err)
	}
	if err := fsys.AddFile("/range.toml", "[editor]\ntab_width = 40\n"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		is   error
	}{
		{"unsupported", "/c.ini", nil},
		{"parse", "/bad.toml", nil},
		{"range", "/range.toml", ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(WithFileSystem(fsys), WithFile(tt.path), WithEnvPrefix("")).Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestOverridesAreCopied(t *testing.T) {
	overrides := map[string]any{"editor": map[string]any{"tab_width": 3}}
	l := NewLoader(WithEnvPrefix(""), WithOverrides(overrides))
	overrides["editor"].(map[string]any)["tab_width"] = 99

	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.TabWidth != 3 {
		t.Errorf("tab_width = %d, want 3", cfg.Editor.TabWidth)
	}
}
