//go:build !windows

// Package privilege provides process privilege adapters.
package privilege

import (
	"os"

	"github.com/hostprep/hostprep/internal/ports"
)

// EUIDChecker reports privilege based on the effective user ID.
type EUIDChecker struct{}

// NewEUIDChecker creates a new EUIDChecker.
func NewEUIDChecker() *EUIDChecker {
	return &EUIDChecker{}
}

// Elevated returns true when the process runs as root.
func (c *EUIDChecker) Elevated() bool {
	return os.Geteuid() == 0
}

// Ensure EUIDChecker implements ports.Privilege.
var _ ports.Privilege = (*EUIDChecker)(nil)
