package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/hotkey/key"
	"github.com/dshills/hotkey/shortcut"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"shortcuts.json", FormatJSON, true},
		{"shortcuts.toml", FormatTOML, true},
		{"shortcuts.yaml", FormatYAML, true},
		{"shortcuts.yml", FormatYAML, true},
		{"shortcuts.lua", FormatLua, true},
		{"SHORTCUTS.YAML", FormatYAML, true},
		{"shortcuts.ini", "", false},
		{"shortcuts", "", false},
	}

	for _, tt := range tests {
		format, ok := FormatForPath(tt.path)
		if format != tt.format || ok != tt.ok {
			t.Errorf("FormatForPath(%q) = %v, %v, want %v, %v", tt.path, format, ok, tt.format, tt.ok)
		}
	}
}

const yamlConfig = `
move_left:
  repeats: true
  shortcuts:
    - key: "KeyA"
    - key: "ArrowLeft"

save:
  shortcuts:
    - key: "KeyS"
      modifiers:
        control: RequirePressed
`

const jsonConfig = `{
  "move_left": {
    "repeats": true,
    "shortcuts": [{"key": "KeyA"}, {"key": "ArrowLeft"}]
  },
  "save": {
    "shortcuts": [{"key": "KeyS", "modifiers": {"control": "RequirePressed"}}]
  }
}`

const tomlConfig = `
[move_left]
repeats = true

[[move_left.shortcuts]]
key = "KeyA"

[[move_left.shortcuts]]
key = "ArrowLeft"

[[save.shortcuts]]
key = "KeyS"

[save.shortcuts.modifiers]
control = "RequirePressed"
`

// checkLoaded verifies the shared fixture shape used by every format test.
func checkLoaded(t *testing.T, groups map[string]shortcut.Group) {
	t.Helper()

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	left, ok := groups["move_left"]
	if !ok {
		t.Fatal("move_left missing")
	}
	if !left.Repeats() {
		t.Error("move_left should repeat")
	}
	if got := left.Label(); got != "A, ←" {
		t.Errorf("move_left Label() = %q, want %q", got, "A, ←")
	}

	save, ok := groups["save"]
	if !ok {
		t.Fatal("save missing")
	}
	if save.Repeats() {
		t.Error("save should be single-press")
	}
	if got := save.Label(); got != "Ctrl + S" {
		t.Errorf("save Label() = %q, want %q", got, "Ctrl + S")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	groups, err := Load(writeConfig(t, "shortcuts.yaml", yamlConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkLoaded(t, groups)
}

func TestLoadJSON(t *testing.T) {
	groups, err := Load(writeConfig(t, "shortcuts.json", jsonConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkLoaded(t, groups)
}

func TestLoadTOML(t *testing.T) {
	groups, err := Load(writeConfig(t, "shortcuts.toml", tomlConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkLoaded(t, groups)
}

func TestLoadReader(t *testing.T) {
	groups, err := LoadReader(strings.NewReader(yamlConfig), FormatYAML)
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	checkLoaded(t, groups)
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "shortcuts.ini", ""))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}

func TestLoadBadKeyName(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", "jump:\n  shortcuts:\n    - key: Bogus\n")
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Load() error = %v, want ErrUnknownKey", err)
	}
}

func TestLoadAndRegister(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", yamlConfig)
	registry := shortcut.NewRegistry()

	if err := LoadAndRegister(path, registry); err != nil {
		t.Fatalf("LoadAndRegister() error = %v", err)
	}

	st := key.NewState()
	st.Press(key.KeyArrowLeft)
	if !registry.Active("move_left", st) {
		t.Error("registered move_left should match ArrowLeft")
	}
}
