// Package planner defines the interface InstallPlan consumes to obtain its
// initial action list, its settings, and (optionally) diagnostic data. A
// concrete Planner is an external collaborator — host detection plus user
// settings go in, an ordered action list comes out — and is not
// reimplemented by the engine itself. DefaultPlanner in this package is a
// reference implementation wiring the variants in internal/steps, kept
// here so the engine is exercised end-to-end.
package planner

import (
	"encoding/json"

	"github.com/gravitational/rtinstall/internal/action"
)

// Planner produces an initial action list from host detection and user
// settings, and is retained afterward only for descriptions and
// diagnostics.
type Planner interface {
	// Plan returns the ordered list of actions that make up the install.
	Plan() ([]*action.StatefulAction[action.Action], error)

	// Settings returns all recognized settings, including defaults.
	Settings() map[string]string

	// ConfiguredSettings returns only the settings the user overrode.
	ConfiguredSettings() map[string]string

	// TypetagName identifies the planner implementation in a receipt.
	TypetagName() string
}

// DiagnosticDataProvider is implemented by planners that have diagnostic
// data to attach to Success/Failure/Cancelled sends. Optional: not every
// planner has anything worth reporting.
type DiagnosticDataProvider interface {
	DiagnosticData() (json.RawMessage, bool)
}
