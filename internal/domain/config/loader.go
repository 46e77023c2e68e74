package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader loads manifests from the filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest, choosing the parser by file extension.
// Supported: .yaml, .yml, .toml.
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewManifestNotFoundError(path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (use .yaml, .yml, or .toml)", filepath.Ext(path))
	}
}
