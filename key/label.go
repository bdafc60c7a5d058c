package key

// keyLabels maps each Key to its display label. The table is enumerated per
// key rather than derived at runtime, so label lookup is a plain array read.
// Keys whose label equals their canonical name are still listed to keep the
// table exhaustive.
var keyLabels = [keyCount]string{
	KeyNone: "None",

	// Punctuation and symbols show their literal character.
	KeyBackquote:    "`",
	KeyBackslash:    `\`,
	KeyBracketLeft:  "[",
	KeyBracketRight: "]",
	KeyComma:        ",",
	KeyEqual:        "=",
	KeyMinus:        "-",
	KeyPeriod:       ".",
	KeyQuote:        "'",
	KeySemicolon:    ";",
	KeySlash:        "/",

	// Special keys with symbols or short words.
	KeyBackspace: "⌫",
	KeyDelete:    "⌦",
	KeyEnter:     "↵",
	KeyEscape:    "Esc",
	KeyTab:       "⇥",
	KeySpace:     "Space",

	// Navigation keys.
	KeyArrowUp:    "↑",
	KeyArrowDown:  "↓",
	KeyArrowLeft:  "←",
	KeyArrowRight: "→",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PgUp",
	KeyPageDown:   "PgDn",

	// Lock keys.
	KeyCapsLock:   "CapsLock",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",

	// System keys.
	KeyPrintScreen: "PrtScr",
	KeyPause:       "Pause",
	KeyContextMenu: "Menu",
	KeyInsert:      "Insert",

	// Letter keys show the bare letter.
	KeyA: "A",
	KeyB: "B",
	KeyC: "C",
	KeyD: "D",
	KeyE: "E",
	KeyF: "F",
	KeyG: "G",
	KeyH: "H",
	KeyI: "I",
	KeyJ: "J",
	KeyK: "K",
	KeyL: "L",
	KeyM: "M",
	KeyN: "N",
	KeyO: "O",
	KeyP: "P",
	KeyQ: "Q",
	KeyR: "R",
	KeyS: "S",
	KeyT: "T",
	KeyU: "U",
	KeyV: "V",
	KeyW: "W",
	KeyX: "X",
	KeyY: "Y",
	KeyZ: "Z",

	// Digit keys show the bare digit.
	KeyDigit0: "0",
	KeyDigit1: "1",
	KeyDigit2: "2",
	KeyDigit3: "3",
	KeyDigit4: "4",
	KeyDigit5: "5",
	KeyDigit6: "6",
	KeyDigit7: "7",
	KeyDigit8: "8",
	KeyDigit9: "9",

	// Numpad keys are prefixed to distinguish them from the main row.
	KeyNumpad0: "Num 0",
	KeyNumpad1: "Num 1",
	KeyNumpad2: "Num 2",
	KeyNumpad3: "Num 3",
	KeyNumpad4: "Num 4",
	KeyNumpad5: "Num 5",
	KeyNumpad6: "Num 6",
	KeyNumpad7: "Num 7",
	KeyNumpad8: "Num 8",
	KeyNumpad9: "Num 9",

	KeyNumpadAdd:            "Num +",
	KeyNumpadSubtract:       "Num -",
	KeyNumpadMultiply:       "Num *",
	KeyNumpadDivide:         "Num /",
	KeyNumpadDecimal:        "Num .",
	KeyNumpadEqual:          "Num =",
	KeyNumpadEnter:          "Num Enter",
	KeyNumpadComma:          "Num ,",
	KeyNumpadBackspace:      "Num ⌫",
	KeyNumpadClear:          "Num Clear",
	KeyNumpadClearEntry:     "Num CE",
	KeyNumpadHash:           "Num #",
	KeyNumpadParenLeft:      "Num (",
	KeyNumpadParenRight:     "Num )",
	KeyNumpadStar:           "Num *",
	KeyNumpadMemoryAdd:      "Num M+",
	KeyNumpadMemoryClear:    "Num MC",
	KeyNumpadMemoryRecall:   "Num MR",
	KeyNumpadMemoryStore:    "Num MS",
	KeyNumpadMemorySubtract: "Num M-",

	// Function keys.
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

	// Media keys.
	KeyMediaPlayPause:     "Play/Pause",
	KeyMediaStop:          "Stop",
	KeyMediaTrackNext:     "Next Track",
	KeyMediaTrackPrevious: "Prev Track",
	KeyMediaSelect:        "Media Select",
	KeyAudioVolumeUp:      "Vol+",
	KeyAudioVolumeDown:    "Vol-",
	KeyAudioVolumeMute:    "Mute",

	// Browser keys.
	KeyBrowserBack:      "Browser Back",
	KeyBrowserForward:   "Browser Forward",
	KeyBrowserRefresh:   "Refresh",
	KeyBrowserStop:      "Browser Stop",
	KeyBrowserSearch:    "Browser Search",
	KeyBrowserFavorites: "Favorites",
	KeyBrowserHome:      "Browser Home",

	// Application keys.
	KeyLaunchMail: "Mail",
	KeyLaunchApp1: "App1",
	KeyLaunchApp2: "App2",
	KeyCopy:       "Copy",
	KeyCut:        "Cut",
	KeyPaste:      "Paste",
	KeyUndo:       "Undo",
	KeyFind:       "Find",
	KeyOpen:       "Open",
	KeySelect:     "Select",

	// Left/right modifier pairs collapse to a single display name.
	KeyControlLeft:  "Ctrl",
	KeyControlRight: "Ctrl",
	KeyAltLeft:      "Alt",
	KeyAltRight:     "Alt",
	KeyShiftLeft:    "Shift",
	KeyShiftRight:   "Shift",
	KeySuperLeft:    "Super",
	KeySuperRight:   "Super",

	// International keys.
	KeyIntlBackslash: `Intl \`,
	KeyIntlRo:        "Ro",
	KeyIntlYen:       "¥",

	// Language keys.
	KeyLang1:      "Lang1",
	KeyLang2:      "Lang2",
	KeyLang3:      "Lang3",
	KeyLang4:      "Lang4",
	KeyLang5:      "Lang5",
	KeyKanaMode:   "Kana",
	KeyHiragana:   "Hiragana",
	KeyKatakana:   "Katakana",
	KeyConvert:    "Convert",
	KeyNonConvert: "NonConvert",

	// Additional application and system keys.
	KeyAgain:   "Again",
	KeyResume:  "Resume",
	KeySuspend: "Suspend",
	KeyAbort:   "Abort",
	KeyProps:   "Props",
	KeyHelp:    "Help",

	// Power keys.
	KeyPower:  "Power",
	KeySleep:  "Sleep",
	KeyWakeUp: "WakeUp",
	KeyEject:  "⏏",

	// Function lock and other special keys.
	KeyFn:     "Fn",
	KeyFnLock: "FnLock",
	KeyTurbo:  "Turbo",
	KeyMeta:   "Meta",
	KeyHyper:  "Hyper",
}

// Label returns the display label for the key, suitable for UI text.
// Unknown keys fall back to the canonical name.
func (k Key) Label() string {
	if k < keyCount && keyLabels[k] != "" {
		return keyLabels[k]
	}
	return k.String()
}

// LabelFor returns the display label for a canonical key name.
// Unrecognized names are returned unchanged; the lookup never fails.
func LabelFor(name string) string {
	if k, ok := FromName(name); ok {
		return k.Label()
	}
	return name
}
