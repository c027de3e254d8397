// Package rope provides an immutable rope data structure for efficient text storage and manipulation.
//
// The text lives in chunks of a few hundred bytes held by the leaves of a
// shallow tree. Every node records the byte, character and newline counts
// of its subtree, so offset and line lookups descend a single path.
//
// Key features:
//   - O(log n) insertion, deletion, and line/character index translation
//   - Immutable operations return new ropes; originals are never modified
//   - Character-indexed API: every public offset counts Unicode scalar
//     values (runes), never bytes
//   - Copy-on-write semantics make cloning a constant-time value copy
//   - Thread-safe for concurrent read access
//
// A line is the run of characters up to and including a newline; the
// final line may lack one. "a\nb" and "a\n" both have two lines, the
// empty rope has one.
//
// Basic usage:
//
//	r := rope.FromString("hello\nworld")
//	r = r.InsertChar(5, '!')       // "hello!\nworld"
//	r = r.Remove(0, 7)             // "world"
//	n := r.LineCount()             // 1
//
// Out-of-range edits are ignored rather than reported, so callers holding
// a stale position degrade gracefully.
package rope
