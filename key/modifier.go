package key

import "strings"

// Modifier represents keyboard modifier channels.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control channel.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt channel (Option on macOS).
	ModAlt

	// ModShift indicates the Shift channel.
	ModShift

	// ModSuper indicates the Super channel (Cmd on macOS, Win on Windows).
	ModSuper
)

// Channels lists the modifier channels in canonical display order.
var Channels = [4]Modifier{ModCtrl, ModAlt, ModShift, ModSuper}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Keys returns the left and right physical keys for a single modifier
// channel. Combined or empty modifiers return KeyNone pairs.
func (m Modifier) Keys() (left, right Key) {
	switch m {
	case ModCtrl:
		return KeyControlLeft, KeyControlRight
	case ModAlt:
		return KeyAltLeft, KeyAltRight
	case ModShift:
		return KeyShiftLeft, KeyShiftRight
	case ModSuper:
		return KeySuperLeft, KeySuperRight
	default:
		return KeyNone, KeyNone
	}
}

// String returns a human-readable representation like "Ctrl+Alt".
// Channels always render in Ctrl, Alt, Shift, Super order.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"meta":    ModSuper,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}
