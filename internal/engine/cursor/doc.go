// Package cursor provides the cursor position type and the motion engine.
//
// Motions are pure functions taking a read-only Text view and a Cursor and
// returning the new Cursor. They operate in character units, so they stay
// correct for multi-byte text. Every motion returns a clamped cursor:
//
//	0 <= Line < LineCount()
//	0 <= Column <= LineLength(Line)
//
// Basic usage:
//
//	c := cursor.Cursor{}
//	c = cursor.MoveWordForward(buf, c)   // w
//	c = cursor.MoveToLineEnd(buf, c)     // $
//	c = cursor.DeleteToNextWhitespace(buf, c) // dw
//
// Word motions treat the newline ending a line as whitespace, so they
// cross line boundaries naturally.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position
//
// The selection can extend forward (head after anchor) or backward,
// preserving the user's selection direction.
//
// Thread Safety:
//
// Cursor and Selection types are immutable value types and safe for
// concurrent use.
package cursor
