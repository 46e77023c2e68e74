// Package config loads the provisioning manifest. Sections are kept as raw
// maps; each provider parses its own section.
package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifest is the parsed provisioning manifest.
type Manifest struct {
	sections map[string]interface{}
}

// ParseYAML parses a YAML manifest.
func ParseYAML(data []byte) (*Manifest, error) {
	sections := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parse yaml manifest: %w", err)
	}
	return &Manifest{sections: normalize(sections)}, nil
}

// ParseTOML parses a TOML manifest.
func ParseTOML(data []byte) (*Manifest, error) {
	sections := make(map[string]interface{})
	if err := toml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parse toml manifest: %w", err)
	}
	return &Manifest{sections: normalize(sections)}, nil
}

// Sections returns the full raw configuration.
func (m *Manifest) Sections() map[string]interface{} {
	return m.sections
}

// GetSection returns a named section of the manifest.
// Returns nil if the section doesn't exist or isn't a map.
func (m *Manifest) GetSection(key string) map[string]interface{} {
	if m == nil || m.sections == nil {
		return nil
	}
	section, ok := m.sections[key]
	if !ok {
		return nil
	}
	sectionMap, ok := section.(map[string]interface{})
	if !ok {
		return nil
	}
	return sectionMap
}

// normalize rewrites nested map[interface{}]interface{} values, which older
// YAML decoders produce, into map[string]interface{} so providers see one
// shape regardless of the manifest format.
func normalize(v map[string]interface{}) map[string]interface{} {
	for key, val := range v {
		v[key] = normalizeValue(val)
	}
	return v
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return normalize(val)
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[fmt.Sprintf("%v", k)] = normalizeValue(inner)
		}
		return out
	case []interface{}:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
