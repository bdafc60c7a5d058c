package shortcut

import (
	"testing"

	"github.com/dshills/hotkey/key"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("save", SinglePress(key.KeyS).WithCtrl()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	g, ok := r.Get("save")
	if !ok {
		t.Fatal("Get() should find the registered group")
	}
	if got := g.Label(); got != "Ctrl + S" {
		t.Errorf("Label() = %q, want %q", got, "Ctrl + S")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get() should miss for unknown names")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", SinglePress(key.KeyA)); err == nil {
		t.Error("Register() with empty name should fail")
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	r.Register("quit", SinglePress(key.KeyQ))
	r.Register("quit", SinglePress(key.KeyEscape))

	g, _ := r.Get("quit")
	if got := g.Label(); got != "Esc" {
		t.Errorf("replaced group Label() = %q, want %q", got, "Esc")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("quit", SinglePress(key.KeyQ))
	r.Unregister("quit")

	if _, ok := r.Get("quit"); ok {
		t.Error("Get() should miss after Unregister")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("zoom_in", Repeating(key.KeyEqual))
	r.Register("move_left", Repeating(key.KeyA))
	r.Register("save", SinglePress(key.KeyS))

	names := r.Names()
	want := []string{"move_left", "save", "zoom_in"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestRegistryActive(t *testing.T) {
	r := NewRegistry()
	r.Register("move_left", Repeating(key.KeyA, key.KeyArrowLeft))

	st := key.NewState()
	st.Press(key.KeyArrowLeft)

	if !r.Active("move_left", st) {
		t.Error("registered group should match")
	}
	if r.Active("missing", st) {
		t.Error("unknown names should never match")
	}
}
