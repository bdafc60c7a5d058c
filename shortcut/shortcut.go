package shortcut

import "github.com/dshills/hotkey/key"

// Shortcut pairs one primary key with a modifier policy.
type Shortcut struct {
	// Key is the primary key that must be pressed.
	Key key.Key

	// Mods are the modifier requirements gating the key.
	Mods Policy
}

// Held reports whether the primary key is currently down and the modifier
// policy holds.
func (s Shortcut) Held(st KeyState) bool {
	return st.Down(s.Key) && s.Mods.Holds(st)
}

// JustActivated reports whether the primary key transitioned from up to down
// this tick and the modifier policy holds.
func (s Shortcut) JustActivated(st KeyState) bool {
	return st.JustPressed(s.Key) && s.Mods.Holds(st)
}

// Label renders the shortcut for UI display: required modifiers first, then
// the key's display label, joined by " + ". A shortcut with no required
// modifier renders as the bare key label.
func (s Shortcut) Label() string {
	if mods := s.Mods.Label(); mods != "" {
		return mods + " + " + s.Key.Label()
	}
	return s.Key.Label()
}
