// Package mode provides the modal state machine of the editor.
//
// Four modes exist:
//   - Navigate mode: cursor motion, undo/redo and mode switching (initial)
//   - Edit mode: text input
//   - Select mode: anchored selection with cursor motion
//   - Command mode: ex-style command line
//
// # Architecture
//
// Every mode is a type implementing the sealed State interface, and each
// exposes only the operations legal in that mode. Transition methods hand
// the shared Session to the new mode and leave the receiver inert, so two
// modes never drive the same session:
//
//	nav := NewNavigateMode(session)
//	ed := nav.Insert() // nav is inert from here on
//	ed.Insert('x')
//	nav = ed.Navigate()
//
// The Machine owns the current State, routes key events to it, applies the
// returned transition and hands the resulting Intent to the host.
//
// # Mode Graph
//
//	Navigate ──i/a/o──▶ Edit ──Esc──▶ Navigate
//	Navigate ──v──▶ Select ──i──▶ Edit
//	Navigate/Select ──:──▶ Command ──Enter/Esc──▶ Navigate
//	Select ──Esc──▶ Navigate
//
// Command mode is reachable only from Navigate and Select.
package mode
