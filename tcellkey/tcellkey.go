package tcellkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkey/key"
)

// Translate converts a tcell key event into a canonical key and modifier
// flags. Events with no canonical equivalent return key.KeyNone.
//
// Shifted punctuation and uppercase letters are normalized to their physical
// key with ModShift added, so "?" translates to KeySlash+Shift.
func Translate(ev *tcell.EventKey) (key.Key, key.Modifier) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		k, shifted := runeKey(ev.Rune())
		if shifted {
			mods = mods.With(key.ModShift)
		}
		return k, mods
	case tcell.KeyEnter:
		return key.KeyEnter, mods
	case tcell.KeyTab:
		return key.KeyTab, mods
	case tcell.KeyBacktab:
		return key.KeyTab, mods.With(key.ModShift)
	case tcell.KeyBackspace:
		return key.KeyBackspace, mods
	case tcell.KeyBackspace2:
		return key.KeyBackspace, mods
	case tcell.KeyEsc:
		return key.KeyEscape, mods
	case tcell.KeyDelete:
		return key.KeyDelete, mods
	case tcell.KeyInsert:
		return key.KeyInsert, mods
	case tcell.KeyUp:
		return key.KeyArrowUp, mods
	case tcell.KeyDown:
		return key.KeyArrowDown, mods
	case tcell.KeyLeft:
		return key.KeyArrowLeft, mods
	case tcell.KeyRight:
		return key.KeyArrowRight, mods
	case tcell.KeyHome:
		return key.KeyHome, mods
	case tcell.KeyEnd:
		return key.KeyEnd, mods
	case tcell.KeyPgUp:
		return key.KeyPageUp, mods
	case tcell.KeyPgDn:
		return key.KeyPageDown, mods
	case tcell.KeyPause:
		return key.KeyPause, mods
	case tcell.KeyPrint:
		return key.KeyPrintScreen, mods
	case tcell.KeyHelp:
		return key.KeyHelp, mods
	}

	switch k := ev.Key(); {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Ctrl+letter arrives as a control code; recover the letter.
		return key.KeyA + key.Key(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)
	case k >= tcell.KeyF1 && k <= tcell.KeyF35:
		return key.KeyF1 + key.Key(k-tcell.KeyF1), mods
	}

	return key.KeyNone, mods
}

// Press translates the event and records it on the state, pressing the
// physical modifier keys implied by the event's modifier mask first.
// It returns the translated key, which is key.KeyNone for untranslatable
// events (nothing is recorded in that case).
func Press(st *key.State, ev *tcell.EventKey) key.Key {
	k, mods := Translate(ev)
	if k == key.KeyNone {
		return key.KeyNone
	}

	for _, ch := range key.Channels {
		if mods.Has(ch) {
			left, _ := ch.Keys()
			st.Press(left)
		}
	}
	st.Press(k)
	return k
}

// translateMods converts a tcell modifier mask. tcell's Meta maps to the
// Super channel.
func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}

// runeKey maps a printable rune to its physical key. The second result is
// true when the rune is the shifted form of the key.
func runeKey(r rune) (key.Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Key(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return key.KeyA + key.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return key.KeyDigit0 + key.Key(r-'0'), false
	}

	switch r {
	case ' ':
		return key.KeySpace, false
	case '`':
		return key.KeyBackquote, false
	case '~':
		return key.KeyBackquote, true
	case '-':
		return key.KeyMinus, false
	case '_':
		return key.KeyMinus, true
	case '=':
		return key.KeyEqual, false
	case '+':
		return key.KeyEqual, true
	case '[':
		return key.KeyBracketLeft, false
	case '{':
		return key.KeyBracketLeft, true
	case ']':
		return key.KeyBracketRight, false
	case '}':
		return key.KeyBracketRight, true
	case '\\':
		return key.KeyBackslash, false
	case '|':
		return key.KeyBackslash, true
	case ';':
		return key.KeySemicolon, false
	case ':':
		return key.KeySemicolon, true
	case '\'':
		return key.KeyQuote, false
	case '"':
		return key.KeyQuote, true
	case ',':
		return key.KeyComma, false
	case '<':
		return key.KeyComma, true
	case '.':
		return key.KeyPeriod, false
	case '>':
		return key.KeyPeriod, true
	case '/':
		return key.KeySlash, false
	case '?':
		return key.KeySlash, true
	case '!':
		return key.KeyDigit1, true
	case '@':
		return key.KeyDigit2, true
	case '#':
		return key.KeyDigit3, true
	case '$':
		return key.KeyDigit4, true
	case '%':
		return key.KeyDigit5, true
	case '^':
		return key.KeyDigit6, true
	case '&':
		return key.KeyDigit7, true
	case '*':
		return key.KeyDigit8, true
	case '(':
		return key.KeyDigit9, true
	case ')':
		return key.KeyDigit0, true
	}

	return key.KeyNone, false
}
