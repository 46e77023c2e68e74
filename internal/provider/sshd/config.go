// Package sshd provides the SSH daemon configuration provider.
package sshd

import (
	"fmt"
	"sort"
)

// Defaults for the sshd section.
const (
	DefaultConfigPath = "/etc/ssh/sshd_config"
	DefaultService    = "ssh"
)

// Config represents the sshd section of the manifest.
type Config struct {
	Path       string
	Directives map[string]string
	Restart    bool
	Service    string
}

// DirectiveKeys returns the directive names in stable sorted order, so the
// compiled step sequence is deterministic.
func (c *Config) DirectiveKeys() []string {
	keys := make([]string, 0, len(c.Directives))
	for k := range c.Directives {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseConfig parses the sshd configuration from a raw map.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{
		Path:       DefaultConfigPath,
		Directives: make(map[string]string),
		Restart:    true,
		Service:    DefaultService,
	}

	if path, ok := raw["path"].(string); ok && path != "" {
		cfg.Path = path
	}

	if restart, ok := raw["restart"].(bool); ok {
		cfg.Restart = restart
	}

	if service, ok := raw["service"].(string); ok && service != "" {
		cfg.Service = service
	}

	if directives, ok := raw["directives"]; ok {
		directiveMap, ok := directives.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("directives must be a map")
		}
		for key, val := range directiveMap {
			switch v := val.(type) {
			case string:
				cfg.Directives[key] = v
			case bool:
				if v {
					cfg.Directives[key] = "yes"
				} else {
					cfg.Directives[key] = "no"
				}
			default:
				return nil, fmt.Errorf("directive %s must be a string", key)
			}
		}
	}

	return cfg, nil
}
