package config

import (
	"bytes"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// decodeLua evaluates a Lua chunk that returns a table of group definitions.
//
// The chunk runs in a restricted state: base, table, and string libraries
// only. io, os, debug, and package are intentionally not opened.
func decodeLua(data []byte, source string) (map[string]GroupDef, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)

	fn, err := L.Load(bytes.NewReader(data), source)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", source, err)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", source, err)
	}

	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s must return a table", ErrInvalidConfig, source)
	}

	defs := make(map[string]GroupDef)
	var convErr error
	tbl.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}

		name, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("%w: group names must be strings, got %s", ErrInvalidConfig, k.Type())
			return
		}

		def, err := luaGroupDef(v)
		if err != nil {
			convErr = fmt.Errorf("group %q: %w", string(name), err)
			return
		}
		defs[string(name)] = def
	})
	if convErr != nil {
		return nil, convErr
	}
	return defs, nil
}

// luaGroupDef converts a Lua table to a group definition.
func luaGroupDef(v lua.LValue) (GroupDef, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return GroupDef{}, fmt.Errorf("%w: expected table, got %s", ErrInvalidConfig, v.Type())
	}

	def := GroupDef{Repeats: luaBool(tbl, "repeats")}

	shortcuts := tbl.RawGetString("shortcuts")
	if shortcuts == lua.LNil {
		return def, nil
	}

	list, ok := shortcuts.(*lua.LTable)
	if !ok {
		return GroupDef{}, fmt.Errorf("%w: shortcuts must be a table, got %s", ErrInvalidConfig, shortcuts.Type())
	}

	var convErr error
	for i := 1; i <= list.Len(); i++ {
		sd, err := luaShortcutDef(list.RawGetInt(i))
		if err != nil {
			convErr = fmt.Errorf("shortcut %d: %w", i, err)
			break
		}
		def.Shortcuts = append(def.Shortcuts, sd)
	}
	return def, convErr
}

// luaShortcutDef converts a Lua table to a shortcut definition.
func luaShortcutDef(v lua.LValue) (ShortcutDef, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return ShortcutDef{}, fmt.Errorf("%w: expected table, got %s", ErrInvalidConfig, v.Type())
	}

	def := ShortcutDef{Key: luaString(tbl, "key")}

	mods := tbl.RawGetString("modifiers")
	if mods == lua.LNil {
		return def, nil
	}

	modsTbl, ok := mods.(*lua.LTable)
	if !ok {
		return ShortcutDef{}, fmt.Errorf("%w: modifiers must be a table, got %s", ErrInvalidConfig, mods.Type())
	}

	def.Modifiers = ModifiersDef{
		Control: luaString(modsTbl, "control"),
		Alt:     luaString(modsTbl, "alt"),
		Shift:   luaString(modsTbl, "shift"),
		Super:   luaString(modsTbl, "super"),
	}
	return def, nil
}

// luaString reads a string field from a table, returning "" when absent.
func luaString(tbl *lua.LTable, field string) string {
	if s, ok := tbl.RawGetString(field).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// luaBool reads a boolean field from a table, returning false when absent.
func luaBool(tbl *lua.LTable, field string) bool {
	if b, ok := tbl.RawGetString(field).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
