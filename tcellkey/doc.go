// Package tcellkey translates tcell key events into hotkey key state.
//
// Terminal hosts receive key input as tcell events rather than as a keyboard
// snapshot. Translate maps an event to a canonical key.Key plus modifier
// flags; Press records a translated event on a key.State, including the
// physical modifier keys implied by the event's modifier mask.
//
// Terminals report key presses only, never releases. Hosts should therefore
// treat each event as a one-tick tap: Press the event, run shortcut matching,
// then Reset the state before the next tick. Repeating (held) shortcuts still
// work because terminals deliver auto-repeat as a stream of press events.
package tcellkey
