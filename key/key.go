package key

import (
	"fmt"
	"sync"
)

// Key identifies a physical keyboard key.
// The zero value KeyNone represents no key and never matches anything.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Punctuation and symbol keys
	KeyBackquote
	KeyBackslash
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyEqual
	KeyMinus
	KeyPeriod
	KeyQuote
	KeySemicolon
	KeySlash

	// Editing and special keys
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace

	// Navigation keys
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Lock keys
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// System keys
	KeyPrintScreen
	KeyPause
	KeyContextMenu
	KeyInsert

	// Letter keys. Canonical names follow the "KeyA".."KeyZ" convention,
	// so the constants carry the canonical name directly.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit keys
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	// Numeric keypad digits
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	// Numeric keypad operators and memory keys
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEqual
	KeyNumpadEnter
	KeyNumpadComma
	KeyNumpadBackspace
	KeyNumpadClear
	KeyNumpadClearEntry
	KeyNumpadHash
	KeyNumpadParenLeft
	KeyNumpadParenRight
	KeyNumpadStar
	KeyNumpadMemoryAdd
	KeyNumpadMemoryClear
	KeyNumpadMemoryRecall
	KeyNumpadMemoryStore
	KeyNumpadMemorySubtract

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	// Media keys
	KeyMediaPlayPause
	KeyMediaStop
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyMediaSelect
	KeyAudioVolumeUp
	KeyAudioVolumeDown
	KeyAudioVolumeMute

	// Browser keys
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome

	// Application keys
	KeyLaunchMail
	KeyLaunchApp1
	KeyLaunchApp2
	KeyCopy
	KeyCut
	KeyPaste
	KeyUndo
	KeyFind
	KeyOpen
	KeySelect

	// Modifier keys (left/right pairs)
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyShiftLeft
	KeyShiftRight
	KeySuperLeft
	KeySuperRight

	// International keys
	KeyIntlBackslash
	KeyIntlRo
	KeyIntlYen

	// Language keys
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyKanaMode
	KeyHiragana
	KeyKatakana
	KeyConvert
	KeyNonConvert

	// Additional application and system keys
	KeyAgain
	KeyResume
	KeySuspend
	KeyAbort
	KeyProps
	KeyHelp

	// Power keys
	KeyPower
	KeySleep
	KeyWakeUp
	KeyEject

	// Function lock and other special keys
	KeyFn
	KeyFnLock
	KeyTurbo
	KeyMeta
	KeyHyper

	// keyCount marks the end of the enumeration. New keys go above.
	keyCount
)

// keyNames maps each Key to its canonical name. The table is exhaustive;
// every constant above has an entry.
var keyNames = [keyCount]string{
	KeyNone: "None",

	KeyBackquote:    "Backquote",
	KeyBackslash:    "Backslash",
	KeyBracketLeft:  "BracketLeft",
	KeyBracketRight: "BracketRight",
	KeyComma:        "Comma",
	KeyEqual:        "Equal",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeyQuote:        "Quote",
	KeySemicolon:    "Semicolon",
	KeySlash:        "Slash",

	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeySpace:     "Space",

	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",

	KeyCapsLock:   "CapsLock",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",

	KeyPrintScreen: "PrintScreen",
	KeyPause:       "Pause",
	KeyContextMenu: "ContextMenu",
	KeyInsert:      "Insert",

	KeyA: "KeyA",
	KeyB: "KeyB",
	KeyC: "KeyC",
	KeyD: "KeyD",
	KeyE: "KeyE",
	KeyF: "KeyF",
	KeyG: "KeyG",
	KeyH: "KeyH",
	KeyI: "KeyI",
	KeyJ: "KeyJ",
	KeyK: "KeyK",
	KeyL: "KeyL",
	KeyM: "KeyM",
	KeyN: "KeyN",
	KeyO: "KeyO",
	KeyP: "KeyP",
	KeyQ: "KeyQ",
	KeyR: "KeyR",
	KeyS: "KeyS",
	KeyT: "KeyT",
	KeyU: "KeyU",
	KeyV: "KeyV",
	KeyW: "KeyW",
	KeyX: "KeyX",
	KeyY: "KeyY",
	KeyZ: "KeyZ",

	KeyDigit0: "Digit0",
	KeyDigit1: "Digit1",
	KeyDigit2: "Digit2",
	KeyDigit3: "Digit3",
	KeyDigit4: "Digit4",
	KeyDigit5: "Digit5",
	KeyDigit6: "Digit6",
	KeyDigit7: "Digit7",
	KeyDigit8: "Digit8",
	KeyDigit9: "Digit9",

	KeyNumpad0: "Numpad0",
	KeyNumpad1: "Numpad1",
	KeyNumpad2: "Numpad2",
	KeyNumpad3: "Numpad3",
	KeyNumpad4: "Numpad4",
	KeyNumpad5: "Numpad5",
	KeyNumpad6: "Numpad6",
	KeyNumpad7: "Numpad7",
	KeyNumpad8: "Numpad8",
	KeyNumpad9: "Numpad9",

	KeyNumpadAdd:            "NumpadAdd",
	KeyNumpadSubtract:       "NumpadSubtract",
	KeyNumpadMultiply:       "NumpadMultiply",
	KeyNumpadDivide:         "NumpadDivide",
	KeyNumpadDecimal:        "NumpadDecimal",
	KeyNumpadEqual:          "NumpadEqual",
	KeyNumpadEnter:          "NumpadEnter",
	KeyNumpadComma:          "NumpadComma",
	KeyNumpadBackspace:      "NumpadBackspace",
	KeyNumpadClear:          "NumpadClear",
	KeyNumpadClearEntry:     "NumpadClearEntry",
	KeyNumpadHash:           "NumpadHash",
	KeyNumpadParenLeft:      "NumpadParenLeft",
	KeyNumpadParenRight:     "NumpadParenRight",
	KeyNumpadStar:           "NumpadStar",
	KeyNumpadMemoryAdd:      "NumpadMemoryAdd",
	KeyNumpadMemoryClear:    "NumpadMemoryClear",
	KeyNumpadMemoryRecall:   "NumpadMemoryRecall",
	KeyNumpadMemoryStore:    "NumpadMemoryStore",
	KeyNumpadMemorySubtract: "NumpadMemorySubtract",

	KeyF1:  "F1",
	KeyF2:  "F2",
	KeyF3:  "F3",
	KeyF4:  "F4",
	KeyF5:  "F5",
	KeyF6:  "F6",
	KeyF7:  "F7",
	KeyF8:  "F8",
	KeyF9:  "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",
	KeyF13: "F13",
	KeyF14: "F14",
	KeyF15: "F15",
	KeyF16: "F16",
	KeyF17: "F17",
	KeyF18: "F18",
	KeyF19: "F19",
	KeyF20: "F20",
	KeyF21: "F21",
	KeyF22: "F22",
	KeyF23: "F23",
	KeyF24: "F24",
	KeyF25: "F25",
	KeyF26: "F26",
	KeyF27: "F27",
	KeyF28: "F28",
	KeyF29: "F29",
	KeyF30: "F30",
	KeyF31: "F31",
	KeyF32: "F32",
	KeyF33: "F33",
	KeyF34: "F34",
	KeyF35: "F35",

	KeyMediaPlayPause:     "MediaPlayPause",
	KeyMediaStop:          "MediaStop",
	KeyMediaTrackNext:     "MediaTrackNext",
	KeyMediaTrackPrevious: "MediaTrackPrevious",
	KeyMediaSelect:        "MediaSelect",
	KeyAudioVolumeUp:      "AudioVolumeUp",
	KeyAudioVolumeDown:    "AudioVolumeDown",
	KeyAudioVolumeMute:    "AudioVolumeMute",

	KeyBrowserBack:      "BrowserBack",
	KeyBrowserForward:   "BrowserForward",
	KeyBrowserRefresh:   "BrowserRefresh",
	KeyBrowserStop:      "BrowserStop",
	KeyBrowserSearch:    "BrowserSearch",
	KeyBrowserFavorites: "BrowserFavorites",
	KeyBrowserHome:      "BrowserHome",

	KeyLaunchMail: "LaunchMail",
	KeyLaunchApp1: "LaunchApp1",
	KeyLaunchApp2: "LaunchApp2",
	KeyCopy:       "Copy",
	KeyCut:        "Cut",
	KeyPaste:      "Paste",
	KeyUndo:       "Undo",
	KeyFind:       "Find",
	KeyOpen:       "Open",
	KeySelect:     "Select",

	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeySuperLeft:    "SuperLeft",
	KeySuperRight:   "SuperRight",

	KeyIntlBackslash: "IntlBackslash",
	KeyIntlRo:        "IntlRo",
	KeyIntlYen:       "IntlYen",

	KeyLang1:      "Lang1",
	KeyLang2:      "Lang2",
	KeyLang3:      "Lang3",
	KeyLang4:      "Lang4",
	KeyLang5:      "Lang5",
	KeyKanaMode:   "KanaMode",
	KeyHiragana:   "Hiragana",
	KeyKatakana:   "Katakana",
	KeyConvert:    "Convert",
	KeyNonConvert: "NonConvert",

	KeyAgain:   "Again",
	KeyResume:  "Resume",
	KeySuspend: "Suspend",
	KeyAbort:   "Abort",
	KeyProps:   "Props",
	KeyHelp:    "Help",

	KeyPower:  "Power",
	KeySleep:  "Sleep",
	KeyWakeUp: "WakeUp",
	KeyEject:  "Eject",

	KeyFn:     "Fn",
	KeyFnLock: "FnLock",
	KeyTurbo:  "Turbo",
	KeyMeta:   "Meta",
	KeyHyper:  "Hyper",
}

// String returns the canonical name for the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsModifier returns true if this is one of the modifier keys.
func (k Key) IsModifier() bool {
	return k >= KeyControlLeft && k <= KeySuperRight
}

// IsFunctionKey returns true if this is a function key (F1-F35).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF35
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyArrowUp && k <= KeyArrowRight
}

// IsLetter returns true if this is a letter key (A-Z).
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a digit key (0-9, main row).
func (k Key) IsDigit() bool {
	return k >= KeyDigit0 && k <= KeyDigit9
}

// IsNumpadKey returns true if this is a numeric keypad key.
func (k Key) IsNumpadKey() bool {
	return k >= KeyNumpad0 && k <= KeyNumpadMemorySubtract
}

// keyNameIndex builds the canonical name to Key lookup once, on first use.
var keyNameIndex = sync.OnceValue(func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(1); k < keyCount; k++ {
		m[keyNames[k]] = k
	}
	return m
})

// FromName returns the Key for a canonical name ("KeyA", "ArrowLeft").
// The second result is false if the name is not recognized.
func FromName(name string) (Key, bool) {
	k, ok := keyNameIndex()[name]
	return k, ok
}
