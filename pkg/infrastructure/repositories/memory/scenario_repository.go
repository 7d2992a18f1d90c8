package memory

import (
	"fmt"
	"sync"

	"github.com/optiship/optiship/pkg/transport"
)

// ScenarioRepository provides in-memory storage of named planning
// scenarios. Inputs are immutable once built, so the repository hands
// out the stored value directly.
type ScenarioRepository struct {
	mu        sync.RWMutex
	scenarios map[string]transport.Inputs
	names     []string
}

// NewScenarioRepository creates an empty in-memory scenario repository
func NewScenarioRepository() *ScenarioRepository {
	return &ScenarioRepository{
		scenarios: make(map[string]transport.Inputs),
	}
}

// Save stores a scenario under a unique name
func (r *ScenarioRepository) Save(name string, inputs transport.Inputs) error {
	if name == "" {
		return fmt.Errorf("scenario name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scenarios[name]; exists {
		return fmt.Errorf("scenario %q already exists", name)
	}
	r.scenarios[name] = inputs
	r.names = append(r.names, name)
	return nil
}

// Get returns the scenario stored under the name
func (r *ScenarioRepository) Get(name string) (transport.Inputs, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inputs, ok := r.scenarios[name]
	return inputs, ok
}

// Names returns the stored scenario names in registration order
func (r *ScenarioRepository) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of stored scenarios
func (r *ScenarioRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}
