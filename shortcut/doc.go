// Package shortcut implements keyboard shortcut matching and display.
//
// A shortcut pairs a primary key with a modifier policy; a group holds
// ordered alternative shortcuts that all trigger the same action, plus a
// repeats flag selecting level-triggered (held) or edge-triggered
// (just-pressed) matching:
//
//	save := shortcut.SinglePress(key.KeyS).WithCtrl()
//	left := shortcut.Repeating(key.KeyA, key.KeyArrowLeft)
//
//	if save.Active(st) {
//	    // fired once on the Ctrl+S down-transition
//	}
//	if left.Active(st) {
//	    // fires every tick while A or Left stays held
//	}
//
// Matching is a pure predicate over the host-supplied KeyState snapshot;
// groups hold no runtime state and are immutable after construction.
//
// # Modifier policies
//
// Each of the four modifier channels (Ctrl, Alt, Shift, Super) is either
// ignored (the default), required pressed, or required not pressed. Required
// and forbidden channels are checked conjunctively, and a channel counts as
// down if either of its physical keys is down.
//
// # Builder scope
//
// The With*/Without* builders attach a constraint to the first alternative
// only. This is a documented contract, not an oversight: modifier constraints
// target one representative shortcut, and generalizing them to every
// alternative would silently change the behavior of existing configurations.
//
// # Strict mode
//
// Setting a channel that already carries a requirement is a configuration
// defect. In strict mode (the default) the builders panic at construction;
// after SetStrict(false) the duplicate is ignored and the first value kept.
// The flag is an explicit startup-time choice, not tied to a build profile.
//
// # Display
//
// Label renders a group as a single line for UI display: required modifiers
// in fixed Ctrl, Alt, Shift, Super order joined by " + ", then the key's
// display label, with alternatives joined by ", ". Forbidden modifiers are
// never rendered.
package shortcut
