// Package buffer provides the document buffer: one rope of text plus file
// metadata and snapshot-based undo/redo history.
//
// All positions are (line, column) pairs measured in characters. A line's
// length excludes its trailing newline; addressing the column equal to the
// line length refers to that newline, so deleting there joins the line with
// the next one.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//
//	buf.SaveSnapshot()
//	buf.InsertChar(0, 5, '!')  // "hello!\nworld"
//	buf.DeleteLine(1)          // "hello!"
//	buf.Undo()                 // "hello\nworld"
//
// Out-of-range positions are ignored rather than reported. Editing
// operations return whether the text changed.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock. Snapshot returns
// an immutable view that background savers can stream without holding the
// lock.
package buffer
