package key

import "testing"

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		// Punctuation shows the literal character
		{KeyBackquote, "`"},
		{KeyBackslash, `\`},
		{KeySemicolon, ";"},
		// Special keys show symbols or short words
		{KeyBackspace, "⌫"},
		{KeyDelete, "⌦"},
		{KeyEnter, "↵"},
		{KeyEscape, "Esc"},
		{KeyTab, "⇥"},
		{KeySpace, "Space"},
		// Navigation
		{KeyArrowUp, "↑"},
		{KeyArrowDown, "↓"},
		{KeyArrowLeft, "←"},
		{KeyArrowRight, "→"},
		{KeyPageUp, "PgUp"},
		{KeyPageDown, "PgDn"},
		// Letters and digits are bare
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyDigit0, "0"},
		{KeyDigit9, "9"},
		// Numpad keys carry the Num prefix
		{KeyNumpad3, "Num 3"},
		{KeyNumpadAdd, "Num +"},
		{KeyNumpadMemoryRecall, "Num MR"},
		// Function keys
		{KeyF1, "F1"},
		{KeyF35, "F35"},
		// Media and system
		{KeyMediaPlayPause, "Play/Pause"},
		{KeyAudioVolumeUp, "Vol+"},
		{KeyPrintScreen, "PrtScr"},
		{KeyContextMenu, "Menu"},
		{KeyEject, "⏏"},
		// Modifier pairs collapse to one name
		{KeyControlLeft, "Ctrl"},
		{KeyControlRight, "Ctrl"},
		{KeyAltLeft, "Alt"},
		{KeyShiftRight, "Shift"},
		{KeySuperLeft, "Super"},
		{KeySuperRight, "Super"},
	}

	for _, tt := range tests {
		if got := tt.key.Label(); got != tt.want {
			t.Errorf("%v.Label() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyLabelsExhaustive(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		if keyLabels[k] == "" {
			t.Errorf("Key(%d) %q has no display label", k, keyNames[k])
		}
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"KeyA", "A"},
		{"ArrowLeft", "←"},
		{"Backspace", "⌫"},
		{"Numpad7", "Num 7"},
		{"ControlRight", "Ctrl"},
	}

	for _, tt := range tests {
		if got := LabelFor(tt.name); got != tt.want {
			t.Errorf("LabelFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLabelForUnknownPassesThrough(t *testing.T) {
	tests := []string{"", "Bogus", "keyA", "F99", "Gamepad1"}
	for _, name := range tests {
		if got := LabelFor(name); got != name {
			t.Errorf("LabelFor(%q) = %q, want input unchanged", name, got)
		}
	}
}
