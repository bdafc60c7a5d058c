package shortcut

import (
	"strings"

	"github.com/dshills/hotkey/key"
)

// Policy holds the modifier requirements for one shortcut: one Requirement
// per channel. The zero value is the neutral policy that ignores every
// channel.
type Policy struct {
	Control Requirement
	Alt     Requirement
	Shift   Requirement
	Super   Requirement
}

// Holds reports whether the live keyboard state satisfies every channel's
// requirement. Channels are checked conjunctively; an Ignored channel always
// passes.
func (p Policy) Holds(st KeyState) bool {
	return p.Control.Matches(channelDown(st, key.ModCtrl)) &&
		p.Alt.Matches(channelDown(st, key.ModAlt)) &&
		p.Shift.Matches(channelDown(st, key.ModShift)) &&
		p.Super.Matches(channelDown(st, key.ModSuper))
}

// IsNeutral reports whether every channel is Ignored.
func (p Policy) IsNeutral() bool {
	return p == Policy{}
}

// Label renders the required channels in fixed Ctrl, Alt, Shift, Super order
// joined by " + ". Forbidden (RequireNotPressed) channels are not shown;
// a policy with no required channel renders as the empty string.
func (p Policy) Label() string {
	var parts []string
	if p.Control == RequirePressed {
		parts = append(parts, "Ctrl")
	}
	if p.Alt == RequirePressed {
		parts = append(parts, "Alt")
	}
	if p.Shift == RequirePressed {
		parts = append(parts, "Shift")
	}
	if p.Super == RequirePressed {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, " + ")
}

// channel returns the requirement field for a single modifier channel.
// Combined or empty modifiers return nil.
func (p *Policy) channel(ch key.Modifier) *Requirement {
	switch ch {
	case key.ModCtrl:
		return &p.Control
	case key.ModAlt:
		return &p.Alt
	case key.ModShift:
		return &p.Shift
	case key.ModSuper:
		return &p.Super
	default:
		return nil
	}
}
