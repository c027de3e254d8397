package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dshills/helios/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HELIOS_"

// Config is the resolved editor configuration.
type Config struct {
	Logging LoggingConfig
	Editor  EditorConfig
	UI      UIConfig
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Editor: EditorConfig{
			DefaultSaveName: "untitled.txt",
			StatusTimeout:   10 * time.Second,
			UndoLimit:       1000,
			TabWidth:        4,
		},
		UI: UIConfig{
			ShowLineNumbers: true,
		},
	}
}

// setting binds a dotted config path to a field of Config.
type setting struct {
	path  string
	apply func(c *Config, path string, v any) error
}

var settings = []setting{
	{"logging.level", func(c *Config, p string, v any) (err error) {
		c.Logging.Level, err = asString(p, v)
		return
	}},
	{"logging.file", func(c *Config, p string, v any) (err error) {
		c.Logging.File, err = asString(p, v)
		return
	}},
	{"logging.max_size_mb", func(c *Config, p string, v any) (err error) {
		c.Logging.MaxSizeMB, err = asInt(p, v)
		return
	}},
	{"logging.max_backups", func(c *Config, p string, v any) (err error) {
		c.Logging.MaxBackups, err = asInt(p, v)
		return
	}},
	{"editor.default_save_name", func(c *Config, p string, v any) (err error) {
		c.Editor.DefaultSaveName, err = asString(p, v)
		return
	}},
	{"editor.status_timeout", func(c *Config, p string, v any) (err error) {
		c.Editor.StatusTimeout, err = asDuration(p, v)
		return
	}},
	{"editor.undo_limit", func(c *Config, p string, v any) (err error) {
		c.Editor.UndoLimit, err = asInt(p, v)
		return
	}},
	{"editor.tab_width", func(c *Config, p string, v any) (err error) {
		c.Editor.TabWidth, err = asInt(p, v)
		return
	}},
	{"ui.show_line_numbers", func(c *Config, p string, v any) (err error) {
		c.UI.ShowLineNumbers, err = asBool(p, v)
		return
	}},
}

// Paths returns the dotted paths of every known setting.
func Paths() []string {
	out := make([]string, len(settings))
	for i, s := range settings {
		out[i] = s.path
	}
	return out
}

// Apply overlays the values found in a nested settings map onto c.
// Unknown keys are ignored. Every bad value is reported; fields with bad
// values keep their previous contents.
func (c *Config) Apply(values map[string]any) error {
	var errs []error
	for _, s := range settings {
		v, ok := loader.Lookup(values, s.path)
		if !ok {
			continue
		}
		next := *c
		if err := s.apply(&next, s.path, v); err != nil {
			errs = append(errs, err)
			continue
		}
		*c = next
	}
	return errors.Join(errs...)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, invalid("logging.level", "must be debug, info, warn or error", c.Logging.Level))
	}
	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, invalid("logging.max_size_mb", "must not be negative", c.Logging.MaxSizeMB))
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, invalid("logging.max_backups", "must not be negative", c.Logging.MaxBackups))
	}
	if c.Editor.DefaultSaveName == "" {
		errs = append(errs, invalid("editor.default_save_name", "must not be empty", c.Editor.DefaultSaveName))
	}
	if c.Editor.StatusTimeout <= 0 {
		errs = append(errs, invalid("editor.status_timeout", "must be positive", c.Editor.StatusTimeout))
	}
	if c.Editor.UndoLimit < 0 {
		errs = append(errs, invalid("editor.undo_limit", "must not be negative", c.Editor.UndoLimit))
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, invalid("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth))
	}
	return errors.Join(errs...)
}

// Loader resolves a Config from its sources. Precedence from lowest to
// highest: defaults, config file, environment, overrides.
type Loader struct {
	fs        loader.FileSystem
	path      string
	envPrefix string
	overrides map[string]any
}

// Option configures a Loader.
type Option func(*Loader)

// WithFile sets the config file. The format follows the extension.
func WithFile(path string) Option {
	return func(l *Loader) {
		l.path = path
	}
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(l *Loader) {
		if fsys != nil {
			l.fs = fsys
		}
	}
}

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables the environment source.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides sets the highest priority values, typically from flags.
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		l.overrides = loader.Clone(values)
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fs:        loader.DefaultFS(),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the config file path, or "" when none is configured.
func (l *Loader) Path() string {
	return l.path
}

// Load reads every source and returns the merged, validated Config.
// A configured file that does not exist is treated as empty.
func (l *Loader) Load() (Config, error) {
	merged := make(map[string]any)

	if l.path != "" {
		fl, err := loader.ForPath(l.fs, l.path)
		if err != nil {
			return Config{}, err
		}
		values, err := fl.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, values)
	}

	if l.envPrefix != "" {
		values, err := loader.NewEnvLoader(l.envPrefix).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, values)
	}

	merged = loader.DeepMerge(merged, loader.Clone(l.overrides))

	cfg := Default()
	if err := cfg.Apply(merged); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the first existing default config file, checking
// config.toml then config.yaml under the user config directory. It
// returns "" when neither exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, "helios", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func asString(path string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int, int64, float64, bool:
		return fmt.Sprint(t), nil
	default:
		return "", mismatch(path, "string", v)
	}
}

func asInt(path string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, invalid(path, "out of range", v)
		}
		return int(t), nil
	case uint64:
		if t > math.MaxInt32 {
			return 0, invalid(path, "out of range", v)
		}
		return int(t), nil
	case float64:
		if t != math.Trunc(t) || math.Abs(t) > math.MaxInt32 {
			return 0, mismatch(path, "integer", v)
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, mismatch(path, "integer", v)
		}
		return n, nil
	default:
		return 0, mismatch(path, "integer", v)
	}
}

func asBool(path string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, mismatch(path, "boolean", v)
		}
		return b, nil
	default:
		return false, mismatch(path, "boolean", v)
	}
}

// asDuration accepts a duration, a duration string such as "3s", or a
// plain number of seconds.
func asDuration(path string, v any) (time.Duration, error) {
	switch t := v.(type) {
	case time.Duration:
		return t, nil
	case string:
		d, err := time.ParseDuration(t)
		if err != nil {
			return 0, mismatch(path, "duration", v)
		}
		return d, nil
	case int:
		return time.Duration(t) * time.Second, nil
	case int64:
		return time.Duration(t) * time.Second, nil
	case float64:
		return time.Duration(t * float64(time.Second)), nil
	default:
		return 0, mismatch(path, "duration", v)
	}
}
