// Package step defines the provisioning step model: an idempotent unit of
// work with a completion check and an apply action, and the ordered registry
// steps are declared in.
package step

import "context"

// Step represents an idempotent unit of provisioning work.
// Check must be side-effect-free and safely re-callable. Apply must be safe
// to call even if a previous run left it partially applied.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() ID

	// Check reports whether the step's desired state is already met.
	// A true result means the runner records the step as skipped.
	Check(ctx context.Context) (bool, error)

	// Apply executes the step's changes.
	// Running it multiple times must produce the same end state.
	Apply(ctx context.Context) error

	// Describe returns a one-line narration shown while the step runs.
	Describe() string
}
