package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/hotkey/shortcut"
)

// Format identifies a configuration file format.
type Format string

const (
	// FormatJSON is JSON-encoded configuration.
	FormatJSON Format = "json"

	// FormatTOML is TOML-encoded configuration.
	FormatTOML Format = "toml"

	// FormatYAML is YAML-encoded configuration.
	FormatYAML Format = "yaml"

	// FormatLua is a Lua chunk returning a definition table.
	FormatLua Format = "lua"
)

// FormatForPath returns the format implied by a file's extension.
// The second result is false for unrecognized extensions.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".lua":
		return FormatLua, true
	default:
		return "", false
	}
}

// Load reads shortcut groups from a file, dispatching on its extension.
func Load(path string) (map[string]shortcut.Group, error) {
	defs, err := LoadDefs(path)
	if err != nil {
		return nil, err
	}
	return groupsFromDefs(defs)
}

// LoadDefs reads raw group definitions from a file, dispatching on its
// extension.
func LoadDefs(path string) (map[string]GroupDef, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shortcut config %s: %w", path, err)
	}
	return decode(data, format, path)
}

// LoadReader reads shortcut groups from a reader in the given format.
func LoadReader(r io.Reader, format Format) (map[string]shortcut.Group, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading shortcut config: %w", err)
	}

	defs, err := decode(data, format, "config")
	if err != nil {
		return nil, err
	}
	return groupsFromDefs(defs)
}

// LoadAndRegister loads a file and registers every group in the registry.
func LoadAndRegister(path string, registry *shortcut.Registry) error {
	groups, err := Load(path)
	if err != nil {
		return err
	}

	for name, g := range groups {
		if err := registry.Register(name, g); err != nil {
			return fmt.Errorf("registering group %q: %w", name, err)
		}
	}
	return nil
}

// decode parses definition data in the given format. source names the origin
// for error messages.
func decode(data []byte, format Format, source string) (map[string]GroupDef, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data, source)
	case FormatTOML:
		return decodeTOML(data, source)
	case FormatYAML:
		return decodeYAML(data, source)
	case FormatLua:
		return decodeLua(data, source)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
