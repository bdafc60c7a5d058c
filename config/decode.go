package config

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// decodeJSON parses JSON definition data.
func decodeJSON(data []byte, source string) (map[string]GroupDef, error) {
	var defs map[string]GroupDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	return defs, nil
}

// decodeTOML parses TOML definition data.
func decodeTOML(data []byte, source string) (map[string]GroupDef, error) {
	var defs map[string]GroupDef
	if err := toml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	return defs, nil
}

// decodeYAML parses YAML definition data.
func decodeYAML(data []byte, source string) (map[string]GroupDef, error) {
	var defs map[string]GroupDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	return defs, nil
}
