// Package key provides the key event types delivered to the mode machine.
//
//   - Key: Identifies a keyboard key (a special key or KeyRune)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//   - Sequence: Pending keys of a multi-key command such as "g g" or "d w"
//
// Only key presses are modeled; the terminal backend filters out release
// and repeat events before they reach this package.
package key
