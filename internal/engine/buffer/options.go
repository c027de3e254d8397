package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithFilePath associates the buffer with a file. The file format is
// derived from the path's extension unless set explicitly afterwards.
func WithFilePath(path string) Option {
	return func(b *Buffer) {
		b.filePath = path
		b.fileFormat = FormatFromPath(path)
	}
}

// WithFileFormat overrides the buffer's file format.
func WithFileFormat(format string) Option {
	return func(b *Buffer) {
		if format != "" {
			b.fileFormat = format
		}
	}
}

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithUndoLimit bounds the number of undo snapshots kept.
func WithUndoLimit(limit int) Option {
	return func(b *Buffer) {
		b.history.SetMaxEntries(limit)
	}
}
