// Package apt provides the apt provider for package management on Debian/Ubuntu.
package apt

import (
	"fmt"
	"time"
)

// DefaultMaxAge is how long a package index refresh stays satisfied.
const DefaultMaxAge = 24 * time.Hour

// Config represents the apt section of the manifest.
type Config struct {
	Update   bool
	MaxAge   time.Duration
	Packages []string
}

// ParseConfig parses the apt configuration from a raw map.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{
		Update:   true,
		MaxAge:   DefaultMaxAge,
		Packages: make([]string, 0),
	}

	if update, ok := raw["update"].(bool); ok {
		cfg.Update = update
	}

	if maxAge, ok := raw["max_age"]; ok {
		ageStr, ok := maxAge.(string)
		if !ok {
			return nil, fmt.Errorf("max_age must be a duration string")
		}
		d, err := time.ParseDuration(ageStr)
		if err != nil {
			return nil, fmt.Errorf("invalid max_age: %w", err)
		}
		cfg.MaxAge = d
	}

	if packages, ok := raw["packages"]; ok {
		packageList, ok := packages.([]interface{})
		if !ok {
			return nil, fmt.Errorf("packages must be a list")
		}
		for _, p := range packageList {
			name, ok := p.(string)
			if !ok {
				return nil, fmt.Errorf("package must be a string")
			}
			cfg.Packages = append(cfg.Packages, name)
		}
	}

	return cfg, nil
}
