package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyA, "KeyA"},
		{KeyZ, "KeyZ"},
		{KeyDigit0, "Digit0"},
		{KeyDigit9, "Digit9"},
		{KeyArrowLeft, "ArrowLeft"},
		{KeyBackquote, "Backquote"},
		{KeyNumpad7, "Numpad7"},
		{KeyNumpadMemorySubtract, "NumpadMemorySubtract"},
		{KeyF1, "F1"},
		{KeyF35, "F35"},
		{KeyControlLeft, "ControlLeft"},
		{KeySuperRight, "SuperRight"},
		{KeyIntlYen, "IntlYen"},
		{KeyHyper, "Hyper"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyStringOutOfRange(t *testing.T) {
	k := Key(60000)
	if got := k.String(); got != "Key(60000)" {
		t.Errorf("String() = %q, want %q", got, "Key(60000)")
	}
}

func TestKeyNamesExhaustive(t *testing.T) {
	// Every key in the enumeration must carry a canonical name.
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == "" {
			t.Errorf("Key(%d) has no canonical name", k)
		}
	}
}

func TestFromNameRoundTrip(t *testing.T) {
	for k := Key(1); k < keyCount; k++ {
		got, ok := FromName(k.String())
		if !ok {
			t.Errorf("FromName(%q) not recognized", k.String())
			continue
		}
		if got != k {
			t.Errorf("FromName(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestFromNameUnknown(t *testing.T) {
	tests := []string{"", "keya", "KEYA", "Bogus", "F36", "None"}
	for _, name := range tests {
		if name == "None" {
			continue
		}
		if k, ok := FromName(name); ok {
			t.Errorf("FromName(%q) = %v, want miss", name, k)
		}
	}
}

func TestKeyPredicates(t *testing.T) {
	tests := []struct {
		key      Key
		modifier bool
		fn       bool
		arrow    bool
		letter   bool
		digit    bool
		numpad   bool
	}{
		{KeyA, false, false, false, true, false, false},
		{KeyDigit5, false, false, false, false, true, false},
		{KeyNumpad5, false, false, false, false, false, true},
		{KeyNumpadMemoryAdd, false, false, false, false, false, true},
		{KeyF12, false, true, false, false, false, false},
		{KeyArrowUp, false, false, true, false, false, false},
		{KeyControlLeft, true, false, false, false, false, false},
		{KeySuperRight, true, false, false, false, false, false},
		{KeyEnter, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsModifier(); got != tt.modifier {
			t.Errorf("%v.IsModifier() = %v, want %v", tt.key, got, tt.modifier)
		}
		if got := tt.key.IsFunctionKey(); got != tt.fn {
			t.Errorf("%v.IsFunctionKey() = %v, want %v", tt.key, got, tt.fn)
		}
		if got := tt.key.IsArrowKey(); got != tt.arrow {
			t.Errorf("%v.IsArrowKey() = %v, want %v", tt.key, got, tt.arrow)
		}
		if got := tt.key.IsLetter(); got != tt.letter {
			t.Errorf("%v.IsLetter() = %v, want %v", tt.key, got, tt.letter)
		}
		if got := tt.key.IsDigit(); got != tt.digit {
			t.Errorf("%v.IsDigit() = %v, want %v", tt.key, got, tt.digit)
		}
		if got := tt.key.IsNumpadKey(); got != tt.numpad {
			t.Errorf("%v.IsNumpadKey() = %v, want %v", tt.key, got, tt.numpad)
		}
	}
}
