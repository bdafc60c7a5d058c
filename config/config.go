package config

import (
	"fmt"

	"github.com/dshills/hotkey/key"
	"github.com/dshills/hotkey/shortcut"
)

// GroupDef is the structured form of a shortcut group.
type GroupDef struct {
	// Repeats selects level-triggered matching. Defaults to false
	// (single-press).
	Repeats bool `json:"repeats,omitempty" yaml:"repeats,omitempty" toml:"repeats,omitempty"`

	// Shortcuts are the alternative shortcut definitions, in order.
	Shortcuts []ShortcutDef `json:"shortcuts" yaml:"shortcuts" toml:"shortcuts"`
}

// ShortcutDef is the structured form of a single shortcut.
type ShortcutDef struct {
	// Key is the canonical key name ("KeyA", "ArrowLeft").
	Key string `json:"key" yaml:"key" toml:"key"`

	// Modifiers are the per-channel requirements. All default to ignored.
	Modifiers ModifiersDef `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
}

// ModifiersDef holds the per-channel requirement names. Valid values are
// "RequirePressed", "RequireNotPressed", and "" (ignored).
type ModifiersDef struct {
	Control string `json:"control,omitempty" yaml:"control,omitempty" toml:"control,omitempty"`
	Alt     string `json:"alt,omitempty" yaml:"alt,omitempty" toml:"alt,omitempty"`
	Shift   string `json:"shift,omitempty" yaml:"shift,omitempty" toml:"shift,omitempty"`
	Super   string `json:"super,omitempty" yaml:"super,omitempty" toml:"super,omitempty"`
}

// Group builds the shortcut group this definition describes.
func (d GroupDef) Group() (shortcut.Group, error) {
	shortcuts := make([]shortcut.Shortcut, 0, len(d.Shortcuts))
	for i, sd := range d.Shortcuts {
		s, err := sd.Shortcut()
		if err != nil {
			return shortcut.Group{}, fmt.Errorf("shortcut %d: %w", i, err)
		}
		shortcuts = append(shortcuts, s)
	}
	return shortcut.NewGroup(d.Repeats, shortcuts...), nil
}

// Shortcut builds the shortcut this definition describes.
func (d ShortcutDef) Shortcut() (shortcut.Shortcut, error) {
	k, ok := key.FromName(d.Key)
	if !ok {
		return shortcut.Shortcut{}, fmt.Errorf("%w: %q", ErrUnknownKey, d.Key)
	}

	policy, err := d.Modifiers.Policy()
	if err != nil {
		return shortcut.Shortcut{}, err
	}
	return shortcut.Shortcut{Key: k, Mods: policy}, nil
}

// Policy builds the modifier policy this definition describes.
func (d ModifiersDef) Policy() (shortcut.Policy, error) {
	var p shortcut.Policy

	channels := []struct {
		name  string
		value string
		field *shortcut.Requirement
	}{
		{"control", d.Control, &p.Control},
		{"alt", d.Alt, &p.Alt},
		{"shift", d.Shift, &p.Shift},
		{"super", d.Super, &p.Super},
	}

	for _, ch := range channels {
		r, ok := shortcut.RequirementFromName(ch.value)
		if !ok {
			return shortcut.Policy{}, fmt.Errorf("%w: %s=%q", ErrUnknownRequirement, ch.name, ch.value)
		}
		*ch.field = r
	}
	return p, nil
}

// FromGroup converts a group back to its structured form. The result
// rebuilds an identical group via GroupDef.Group.
func FromGroup(g shortcut.Group) GroupDef {
	alts := g.Alternatives()
	def := GroupDef{
		Repeats:   g.Repeats(),
		Shortcuts: make([]ShortcutDef, 0, len(alts)),
	}
	for _, s := range alts {
		def.Shortcuts = append(def.Shortcuts, FromShortcut(s))
	}
	return def
}

// FromShortcut converts a shortcut back to its structured form.
func FromShortcut(s shortcut.Shortcut) ShortcutDef {
	return ShortcutDef{
		Key: s.Key.String(),
		Modifiers: ModifiersDef{
			Control: s.Mods.Control.String(),
			Alt:     s.Mods.Alt.String(),
			Shift:   s.Mods.Shift.String(),
			Super:   s.Mods.Super.String(),
		},
	}
}

// groupsFromDefs builds groups from every definition in a file's map.
func groupsFromDefs(defs map[string]GroupDef) (map[string]shortcut.Group, error) {
	groups := make(map[string]shortcut.Group, len(defs))
	for name, def := range defs {
		g, err := def.Group()
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		groups[name] = g
	}
	return groups, nil
}
