//go:build windows

package privilege

import (
	"os"

	"github.com/hostprep/hostprep/internal/ports"
)

// EUIDChecker reports privilege on Windows.
// Provisioning targets are Unix hosts; a Windows build can only run checks,
// so privilege is approximated by write access to the system root.
type EUIDChecker struct{}

// NewEUIDChecker creates a new EUIDChecker.
func NewEUIDChecker() *EUIDChecker {
	return &EUIDChecker{}
}

// Elevated returns true when the windir directory is writable.
func (c *EUIDChecker) Elevated() bool {
	windir := os.Getenv("windir")
	if windir == "" {
		return false
	}
	f, err := os.CreateTemp(windir, "hostprep-elevation-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// Ensure EUIDChecker implements ports.Privilege.
var _ ports.Privilege = (*EUIDChecker)(nil)
