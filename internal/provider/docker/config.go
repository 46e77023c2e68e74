// Package docker provides the Docker engine installation provider.
package docker

// DefaultPackage is the Debian/Ubuntu docker engine package.
const DefaultPackage = "docker.io"

// Config represents the docker section of the manifest.
type Config struct {
	Install       bool
	EnableService bool
	Package       string
}

// ParseConfig parses the docker configuration from a raw map.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{
		Install:       true,
		EnableService: true,
		Package:       DefaultPackage,
	}

	if install, ok := raw["install"].(bool); ok {
		cfg.Install = install
	}

	if enable, ok := raw["enable_service"].(bool); ok {
		cfg.EnableService = enable
	}

	if pkg, ok := raw["package"].(string); ok && pkg != "" {
		cfg.Package = pkg
	}

	return cfg, nil
}
