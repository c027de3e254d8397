package config

import "time"

// LoggingConfig controls the application log.
type LoggingConfig struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string

	// File is the log file path. Empty discards log output, since the
	// terminal owns stdout and stderr while the editor runs.
	File string

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept.
	MaxBackups int
}

// EditorConfig holds editing behavior.
type EditorConfig struct {
	// DefaultSaveName is the file written by :w when neither the command
	// nor the buffer names a path.
	DefaultSaveName string

	// StatusTimeout is how long a status message stays visible.
	StatusTimeout time.Duration

	// UndoLimit bounds the undo stack. Zero selects the built-in default.
	UndoLimit int

	// TabWidth is the display width of a tab character.
	TabWidth int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// ShowLineNumbers draws a line number gutter.
	ShowLineNumbers bool
}
