package step

import (
	"errors"
	"fmt"
)

// ErrDuplicateStepName is returned when a step with the same ID is
// registered twice. Registration fails fast so the collision surfaces
// before any step runs.
var ErrDuplicateStepName = errors.New("step with this name already registered")

// Registry holds the ordered sequence of steps for one run.
// Declaration order is the only ordering primitive: steps that depend on
// earlier steps must simply be registered after them.
type Registry struct {
	steps []Step
	names map[string]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		steps: make([]Step, 0),
		names: make(map[string]bool),
	}
}

// Register appends a step to the sequence.
// Returns ErrDuplicateStepName if a step with the same ID exists.
func (r *Registry) Register(s Step) error {
	name := s.ID().String()
	if r.names[name] {
		return fmt.Errorf("%w: %s", ErrDuplicateStepName, name)
	}
	r.names[name] = true
	r.steps = append(r.steps, s)
	return nil
}

// RegisterAll registers steps in order, stopping at the first error.
func (r *Registry) RegisterAll(steps ...Step) error {
	for _, s := range steps {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the registered steps in declaration order.
func (r *Registry) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.steps)
}

// IsEmpty returns true if no steps are registered.
func (r *Registry) IsEmpty() bool {
	return len(r.steps) == 0
}
