package key

// State is a snapshot of keyboard state for one input tick: which keys are
// currently down, and which transitioned from up to down this tick.
//
// The host's input layer owns a State and feeds it physical transitions via
// Press and Release. Tick marks the end of an input tick and clears the
// just-pressed edge set, so edge-triggered shortcuts fire at most once per
// physical press.
//
// State is not safe for concurrent mutation. The shortcut matching side only
// reads it, so sharing a constructed snapshot across readers is fine.
type State struct {
	down        map[Key]bool
	justPressed map[Key]bool
}

// NewState creates an empty keyboard state.
func NewState() *State {
	return &State{
		down:        make(map[Key]bool),
		justPressed: make(map[Key]bool),
	}
}

// Press records a key going down. The just-pressed edge is only recorded on
// an up-to-down transition; auto-repeat presses of a held key do not re-arm it.
func (s *State) Press(k Key) {
	if k == KeyNone {
		return
	}
	if !s.down[k] {
		s.justPressed[k] = true
	}
	s.down[k] = true
}

// Release records a key going up.
func (s *State) Release(k Key) {
	delete(s.down, k)
	delete(s.justPressed, k)
}

// Tick ends the current input tick, clearing all just-pressed edges.
// Keys that remain physically down stay down.
func (s *State) Tick() {
	clear(s.justPressed)
}

// ClearJustPressed clears the just-pressed edge for a single key without
// releasing it.
func (s *State) ClearJustPressed(k Key) {
	delete(s.justPressed, k)
}

// Reset releases every key and clears all edges.
func (s *State) Reset() {
	clear(s.down)
	clear(s.justPressed)
}

// Down returns true if the key is currently held down.
func (s *State) Down(k Key) bool {
	return s.down[k]
}

// JustPressed returns true if the key transitioned from up to down this tick.
func (s *State) JustPressed(k Key) bool {
	return s.justPressed[k]
}

// ModifierDown returns true if every modifier channel in m has at least one
// of its physical keys down. Left and right variants are deliberately
// conflated: Ctrl is down if either ControlLeft or ControlRight is down.
func (s *State) ModifierDown(m Modifier) bool {
	for _, ch := range Channels {
		if !m.Has(ch) {
			continue
		}
		left, right := ch.Keys()
		if !s.down[left] && !s.down[right] {
			return false
		}
	}
	return true
}
