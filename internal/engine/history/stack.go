package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/helios/internal/engine/rope"
)

// DefaultMaxEntries is used when a non-positive limit is given.
const DefaultMaxEntries = 1000

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// snapshot wraps a text state with metadata.
type snapshot struct {
	text      rope.Rope
	timestamp time.Time
}

// Info describes a stored snapshot.
type Info struct {
	Chars     int
	Lines     int
	Timestamp time.Time
}

func (s snapshot) info() Info {
	return Info{
		Chars:     s.text.CharCount(),
		Lines:     s.text.LineCount(),
		Timestamp: s.timestamp,
	}
}

// History manages undo/redo snapshot stacks for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []snapshot
	redoStack []snapshot

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push records text as the state to return to on the next Undo.
// Clears the redo stack.
func (h *History) Push(text rope.Rope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, snapshot{
		text:      text,
		timestamp: time.Now(),
	})

	h.redoStack = nil

	h.trimLocked()
}

// trimLocked drops the oldest undo entries beyond maxEntries.
func (h *History) trimLocked() {
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = append([]snapshot(nil), h.undoStack[excess:]...)
	}
}

// Undo pops the most recent snapshot and returns it. current is pushed onto
// the redo stack so that Redo can restore it.
func (h *History) Undo(current rope.Rope) (rope.Rope, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return current, ErrNothingToUndo
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, snapshot{text: current, timestamp: time.Now()})
	return entry.text, nil
}

// Redo is the mirror of Undo.
func (h *History) Redo(current rope.Rope) (rope.Rope, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return current, ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, snapshot{text: current, timestamp: time.Now()})
	h.trimLocked()
	return entry.text, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
}

// PeekUndo returns info about the next undo snapshot without removing it.
func (h *History) PeekUndo() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return Info{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo snapshot without removing it.
func (h *History) PeekRedo() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return Info{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
