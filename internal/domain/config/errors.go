package config

import (
	"errors"
	"fmt"
)

// ErrManifestNotFound indicates the manifest file does not exist.
var ErrManifestNotFound = errors.New("manifest not found")

// NewManifestNotFoundError wraps ErrManifestNotFound with the missing path
// and a hint for the operator.
func NewManifestNotFoundError(path string) error {
	return fmt.Errorf("%w: %s (create it or pass --config)", ErrManifestNotFound, path)
}
