package ports

// Privilege reports whether the current process holds the elevated
// privilege a provisioning run requires. It is consulted once, before
// any step executes.
type Privilege interface {
	// Elevated returns true if the process is running with root-equivalent
	// privilege.
	Elevated() bool
}
