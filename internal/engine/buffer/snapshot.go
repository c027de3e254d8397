package buffer

import (
	"io"

	"github.com/google/uuid"

	"github.com/dshills/helios/internal/engine/rope"
)

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	rope       rope.Rope
	bufferID   uuid.UUID
	revisionID RevisionID
	filePath   string
	fileFormat string
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.rope.String()
}

// WriteTo streams the snapshot's text to w. Implements io.WriterTo.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	return s.rope.WriteTo(w)
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() int64 {
	return int64(s.rope.Len())
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.rope.LineCount()
}

// CharCount returns the number of characters.
func (s *Snapshot) CharCount() int {
	return s.rope.CharCount()
}

// Rope returns the underlying immutable rope.
func (s *Snapshot) Rope() rope.Rope {
	return s.rope
}

// BufferID returns the ID of the buffer the snapshot was taken from.
func (s *Snapshot) BufferID() uuid.UUID {
	return s.bufferID
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// FilePath returns the buffer's file path at snapshot time.
func (s *Snapshot) FilePath() string {
	return s.filePath
}

// FileFormat returns the buffer's file format at snapshot time.
func (s *Snapshot) FileFormat() string {
	return s.fileFormat
}
