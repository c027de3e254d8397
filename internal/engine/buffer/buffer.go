package buffer

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/helios/internal/engine/history"
	"github.com/dshills/helios/internal/engine/rope"
)

// DefaultFileFormat is used when a path has no extension.
const DefaultFileFormat = "txt"

// Buffer wraps a Rope with file metadata and undo/redo history.
// It provides the primary interface for text manipulation.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	id         uuid.UUID
	rope       rope.Rope
	revisionID RevisionID
	savedRevID RevisionID
	fileFormat string
	filePath   string
	tabWidth   int
	history    *history.History
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	rev := NewRevisionID()
	b := &Buffer{
		id:         uuid.New(),
		rope:       rope.New(),
		revisionID: rev,
		savedRevID: rev,
		fileFormat: DefaultFileFormat,
		tabWidth:   4,
		history:    history.NewHistory(history.DefaultMaxEntries),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The new buffer is not considered modified.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.rope = rope.FromString(s)
	return b
}

// FormatFromPath returns the path's extension without the dot, or
// DefaultFileFormat when there is none.
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFileFormat
	}
	return ext
}

// Read Operations

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.IsEmpty()
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// CharCount returns the number of characters.
func (b *Buffer) CharCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.CharCount()
}

// LineLength returns the number of characters on a line, excluding the
// trailing newline. Returns 0 for lines out of range.
func (b *Buffer) LineLength(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineLength(line)
}

func (b *Buffer) lineLength(line int) int {
	n := b.rope.LineLen(line)
	// Every line but the last ends with a newline.
	if n > 0 && line < b.rope.LineCount()-1 {
		n--
	}
	return n
}

// LineText returns the text of a line without its trailing newline.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.TrimSuffix(b.rope.Line(line), "\n")
}

// CharAt returns the character at (line, col). col may address the
// line's trailing newline. Returns false when out of range.
func (b *Buffer) CharAt(line, col int) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= b.rope.LineCount() || col < 0 || col >= b.rope.LineLen(line) {
		return 0, false
	}
	return b.rope.CharAt(b.rope.LineToChar(line) + col)
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// Write Operations

// InsertChar inserts ch at (line, col). col may equal the line length.
// Returns false if the position is out of range.
func (b *Buffer) InsertChar(line, col int, ch rune) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 0 || line >= b.rope.LineCount() || col < 0 || col > b.lineLength(line) {
		return false
	}

	b.rope = b.rope.InsertChar(b.rope.LineToChar(line)+col, ch)
	b.revisionID = NewRevisionID()
	return true
}

// InsertLine splits line at col by inserting a newline.
func (b *Buffer) InsertLine(line, col int) bool {
	return b.InsertChar(line, col, '\n')
}

// DeleteChar removes the character at (line, col). When col equals the
// line length the trailing newline is removed, joining the next line.
// Returns false if nothing was removed.
func (b *Buffer) DeleteChar(line, col int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 0 || line >= b.rope.LineCount() || col < 0 || col >= b.rope.LineLen(line) {
		return false
	}

	start := b.rope.LineToChar(line) + col
	b.rope = b.rope.Remove(start, start+1)
	b.revisionID = NewRevisionID()
	return true
}

// DeleteLine removes a line including its trailing newline. Deleting the
// last line removes the preceding newline instead so no empty line is
// left behind. A sole remaining line is emptied, never removed.
// Returns false if nothing was removed.
func (b *Buffer) DeleteLine(line int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := b.rope.LineCount()
	if line < 0 || line >= count {
		return false
	}

	start := b.rope.LineToChar(line)
	end := b.rope.LineToChar(line + 1)
	if line == count-1 && line > 0 {
		start--
	}
	if start >= end {
		return false
	}

	b.rope = b.rope.Remove(start, end)
	b.revisionID = NewRevisionID()
	return true
}

// History Operations

// SaveSnapshot records the current text as an undo point and clears the
// redo stack.
func (b *Buffer) SaveSnapshot() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.Push(b.rope)
}

// Undo restores the most recent snapshot. Returns false if there was
// nothing to undo.
func (b *Buffer) Undo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	text, err := b.history.Undo(b.rope)
	if err != nil {
		return false
	}
	b.rope = text
	b.revisionID = NewRevisionID()
	return true
}

// Redo reapplies the most recently undone state. Returns false if there
// was nothing to redo.
func (b *Buffer) Redo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	text, err := b.history.Redo(b.rope)
	if err != nil {
		return false
	}
	b.rope = text
	b.revisionID = NewRevisionID()
	return true
}

// CanUndo returns true if undo is available.
func (b *Buffer) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (b *Buffer) CanRedo() bool {
	return b.history.CanRedo()
}

// SetUndoLimit changes the maximum number of undo snapshots kept.
func (b *Buffer) SetUndoLimit(limit int) {
	b.history.SetMaxEntries(limit)
}

// Metadata

// FileFormat returns the buffer's file format (extension without dot).
func (b *Buffer) FileFormat() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fileFormat
}

// FilePath returns the associated file path, or "" if there is none.
func (b *Buffer) FilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filePath
}

// SetFilePath associates the buffer with path and updates its format.
func (b *Buffer) SetFilePath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filePath = path
	b.fileFormat = FormatFromPath(path)
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsModified reports whether the text changed since it was loaded or last
// saved.
func (b *Buffer) IsModified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID != b.savedRevID
}

// MarkSaved marks the current revision as saved.
func (b *Buffer) MarkSaved() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.savedRevID = b.revisionID
}

// MarkSavedRevision marks rev as saved. Edits made after rev was
// snapshotted keep the buffer modified.
func (b *Buffer) MarkSavedRevision(rev RevisionID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.savedRevID = rev
}

// Clone returns the current text. The rope is immutable, so the copy is
// independent of later edits.
func (b *Buffer) Clone() rope.Rope {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope
}

// Snapshot returns a read-only snapshot of the buffer's current state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{
		rope:       b.rope,
		bufferID:   b.id,
		revisionID: b.revisionID,
		filePath:   b.filePath,
		fileFormat: b.fileFormat,
	}
}
