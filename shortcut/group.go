package shortcut

import (
	"fmt"
	"strings"

	"github.com/dshills/hotkey/key"
)

// strictMode controls duplicate-constraint handling in the builders.
// Set it once during startup, before constructing shortcuts.
var strictMode = true

// SetStrict selects duplicate-constraint handling. In strict mode (the
// default) setting a channel that already carries a requirement panics at
// construction; otherwise the duplicate is silently ignored and the first
// value kept.
func SetStrict(strict bool) {
	strictMode = strict
}

// Strict reports whether strict duplicate-constraint handling is active.
func Strict() bool {
	return strictMode
}

// Group is an ordered list of alternative shortcuts that all trigger the
// same action, plus a repeat flag. The zero value has no alternatives and
// never matches any state.
//
// Groups are configuration objects: construct them once, then only read
// them. The builders return the modified group and are meant to be chained
// directly after a constructor.
type Group struct {
	alternatives []Shortcut
	repeats      bool
}

// SinglePress creates an edge-triggered group: it matches only on the tick
// one of its keys transitions from up to down. Use it for one-shot actions
// like saving or opening a menu.
func SinglePress(keys ...key.Key) Group {
	return newGroup(false, keys)
}

// Repeating creates a level-triggered group: it matches on every tick one of
// its keys is held. Use it for continuous actions like movement or scrolling.
func Repeating(keys ...key.Key) Group {
	return newGroup(true, keys)
}

func newGroup(repeats bool, keys []key.Key) Group {
	alts := make([]Shortcut, 0, len(keys))
	for _, k := range keys {
		alts = append(alts, Shortcut{Key: k})
	}
	return Group{alternatives: alts, repeats: repeats}
}

// NewGroup creates a group from fully specified shortcuts. The configuration
// layer uses it to rebuild groups from their structured form.
func NewGroup(repeats bool, shortcuts ...Shortcut) Group {
	alts := make([]Shortcut, len(shortcuts))
	copy(alts, shortcuts)
	return Group{alternatives: alts, repeats: repeats}
}

// Active reports whether the group matches the live keyboard state.
// A repeating group matches while any alternative is held; a single-press
// group matches only on the tick any alternative just activated. Alternatives
// are checked in order with any-match semantics.
func (g Group) Active(st KeyState) bool {
	for _, s := range g.alternatives {
		if g.repeats {
			if s.Held(st) {
				return true
			}
		} else if s.JustActivated(st) {
			return true
		}
	}
	return false
}

// Label renders each alternative's label joined by ", ", preserving
// alternative order. An empty group renders as the empty string.
func (g Group) Label() string {
	if len(g.alternatives) == 0 {
		return ""
	}

	labels := make([]string, len(g.alternatives))
	for i, s := range g.alternatives {
		labels[i] = s.Label()
	}
	return strings.Join(labels, ", ")
}

// Repeats reports whether the group is level-triggered.
func (g Group) Repeats() bool {
	return g.repeats
}

// Alternatives returns a copy of the group's shortcuts in order.
func (g Group) Alternatives() []Shortcut {
	alts := make([]Shortcut, len(g.alternatives))
	copy(alts, g.alternatives)
	return alts
}

// WithCtrl requires the Control channel to be pressed.
//
// Like every builder below, it applies to the first alternative only and is
// a no-op on an empty group. In strict mode it panics if the channel already
// carries a requirement.
func (g Group) WithCtrl() Group {
	return g.constrain(key.ModCtrl, RequirePressed)
}

// WithAlt requires the Alt channel to be pressed.
func (g Group) WithAlt() Group {
	return g.constrain(key.ModAlt, RequirePressed)
}

// WithShift requires the Shift channel to be pressed.
func (g Group) WithShift() Group {
	return g.constrain(key.ModShift, RequirePressed)
}

// WithSuper requires the Super channel to be pressed.
func (g Group) WithSuper() Group {
	return g.constrain(key.ModSuper, RequirePressed)
}

// WithoutCtrl requires the Control channel to NOT be pressed. Useful when
// "S" must behave differently from "Ctrl+S".
func (g Group) WithoutCtrl() Group {
	return g.constrain(key.ModCtrl, RequireNotPressed)
}

// WithoutAlt requires the Alt channel to NOT be pressed.
func (g Group) WithoutAlt() Group {
	return g.constrain(key.ModAlt, RequireNotPressed)
}

// WithoutShift requires the Shift channel to NOT be pressed.
func (g Group) WithoutShift() Group {
	return g.constrain(key.ModShift, RequireNotPressed)
}

// WithoutSuper requires the Super channel to NOT be pressed.
func (g Group) WithoutSuper() Group {
	return g.constrain(key.ModSuper, RequireNotPressed)
}

// constrain sets a channel requirement on the first alternative.
// Duplicate configuration of a channel is a defect: strict mode panics,
// non-strict mode keeps the first value.
//
// The alternatives slice is copied before writing so earlier copies of the
// group keep their configuration.
func (g Group) constrain(ch key.Modifier, r Requirement) Group {
	if len(g.alternatives) == 0 {
		return g
	}

	if *g.alternatives[0].Mods.channel(ch) != Ignored {
		if strictMode {
			panic(fmt.Sprintf("shortcut: %s requirement already set", ch))
		}
		return g
	}

	alts := make([]Shortcut, len(g.alternatives))
	copy(alts, g.alternatives)
	*alts[0].Mods.channel(ch) = r
	g.alternatives = alts
	return g
}
