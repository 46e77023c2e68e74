package step

// Provider compiles one manifest section into executable steps.
// Each provider handles a specific concern (apt, docker, sshd, ...).
type Provider interface {
	// Name returns the provider's manifest section key.
	Name() string

	// Compile transforms the provider's raw manifest section into steps.
	// A nil or empty section compiles to zero steps. Step order within the
	// returned slice is execution order.
	Compile(section map[string]interface{}) ([]Step, error)
}
