// Package authkeys provides the authorized_keys provisioning provider.
package authkeys

import "fmt"

// DefaultPath is the default authorized keys file.
const DefaultPath = "~/.ssh/authorized_keys"

// Config represents the authorized_keys section of the manifest.
type Config struct {
	Path   string
	Prompt bool
	Keys   []string
}

// ParseConfig parses the authorized_keys configuration from a raw map.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{
		Path: DefaultPath,
		Keys: make([]string, 0),
	}

	if path, ok := raw["path"].(string); ok && path != "" {
		cfg.Path = path
	}

	if prompt, ok := raw["prompt"].(bool); ok {
		cfg.Prompt = prompt
	}

	if keys, ok := raw["keys"]; ok {
		keyList, ok := keys.([]interface{})
		if !ok {
			return nil, fmt.Errorf("keys must be a list")
		}
		for _, k := range keyList {
			keyStr, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("key must be a string")
			}
			cfg.Keys = append(cfg.Keys, keyStr)
		}
	}

	return cfg, nil
}
