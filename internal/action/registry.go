package action

import (
	"sync"

	"github.com/gravitational/trace"
)

// Factory returns a new zero-value instance of a registered Action variant,
// suitable as an unmarshal target.
type Factory func() Action

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a variant's factory to the registry under its typetag.
// Concrete variant packages (internal/steps) call this from an init().
func Register(typetag string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typetag] = factory
}

// New constructs a zero-value Action for the given typetag, as recorded in
// a receipt, so it can be used as a json.Unmarshal target.
func New(typetag string) (Action, error) {
	registryMu.RLock()
	factory, ok := registry[typetag]
	registryMu.RUnlock()
	if !ok {
		return nil, trace.BadParameter("unknown action typetag %q", typetag)
	}
	return factory(), nil
}
