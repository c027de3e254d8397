// Package history provides snapshot-based undo/redo for the editing engine.
//
// Each undo step is a whole-text snapshot. Because ropes are immutable and
// share unchanged subtrees, a snapshot costs O(1) to take and only the
// edited paths of the tree are retained per step.
//
// # History Stack
//
//	h := NewHistory(1000) // Max 1000 undo entries
//
//	h.Push(text)          // before an edit gesture
//	text = text.InsertChar(0, 'x')
//
//	text, _ = h.Undo(text) // back to the snapshot
//	text, _ = h.Redo(text) // forward again
//
// Pushing a new snapshot clears the redo stack, so no redo survives a fresh
// edit branch.
package history
