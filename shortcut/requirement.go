package shortcut

import "github.com/dshills/hotkey/key"

// Requirement specifies how a modifier channel gates a shortcut.
// The zero value Ignored means the channel is not constrained.
type Requirement uint8

const (
	// Ignored means the channel has no bearing on the match.
	Ignored Requirement = iota

	// RequirePressed means the channel must be down for the shortcut to match.
	RequirePressed

	// RequireNotPressed means the channel must NOT be down for the shortcut
	// to match.
	RequireNotPressed
)

// Matches reports whether the channel's live state satisfies this requirement.
func (r Requirement) Matches(down bool) bool {
	switch r {
	case RequirePressed:
		return down
	case RequireNotPressed:
		return !down
	default:
		return true
	}
}

// String returns the canonical requirement name.
func (r Requirement) String() string {
	switch r {
	case RequirePressed:
		return "RequirePressed"
	case RequireNotPressed:
		return "RequireNotPressed"
	default:
		return ""
	}
}

// RequirementFromName returns the Requirement for a canonical name.
// The empty string maps to Ignored. The second result is false for
// unrecognized names.
func RequirementFromName(name string) (Requirement, bool) {
	switch name {
	case "":
		return Ignored, true
	case "RequirePressed":
		return RequirePressed, true
	case "RequireNotPressed":
		return RequireNotPressed, true
	default:
		return Ignored, false
	}
}

// KeyState is the live keyboard snapshot consumed during matching.
// key.State satisfies it; hosts with their own input layer can supply any
// implementation.
type KeyState interface {
	// Down reports whether the key is currently held.
	Down(key.Key) bool

	// JustPressed reports whether the key transitioned from up to down
	// this tick.
	JustPressed(key.Key) bool
}

// channelDown reports the live state of one modifier channel: down if either
// of the channel's physical keys is down.
func channelDown(st KeyState, ch key.Modifier) bool {
	left, right := ch.Keys()
	return st.Down(left) || st.Down(right)
}
