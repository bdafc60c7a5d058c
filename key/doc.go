// Package key provides key identifiers, modifier flags, and live keyboard
// state for the shortcut system.
//
// This package defines the fundamental types consumed by package shortcut:
//
//   - Key: Identifies a physical keyboard key by its canonical name
//   - Modifier: Represents modifier channels (Ctrl, Alt, Shift, Super)
//   - State: A per-tick snapshot of which keys are down and which
//     transitioned down this tick
//
// # Canonical names
//
// Every Key has a stable canonical name ("KeyA", "ArrowLeft", "Numpad7",
// "ControlLeft"). Canonical names are the identifiers used by configuration
// files; they round-trip through Key.String and FromName.
//
// # Display labels
//
// Separately from its canonical name, every Key has a short display label
// intended for UI text ("A", "←", "Num 7", "Ctrl"). Labels come from a fixed
// table enumerated per key; LabelFor falls back to the raw canonical name for
// unknown input, so label lookup never fails.
//
// # Live state
//
// State is maintained by the host's input layer: Press and Release record
// physical transitions, Tick ends the current tick and clears the just-pressed
// edge set. All reads are O(1). State is for single-goroutine use; the
// matching side of the shortcut system only ever reads it.
package key
