// Package plan implements InstallPlan: the ordered, versioned,
// serializable sequence of StatefulActions that is this engine's unit of
// install and uninstall.
package plan

import (
	"encoding/json"
	"sort"

	"github.com/gravitational/rtinstall/internal/action"
	"github.com/gravitational/rtinstall/internal/planner"
)

// Info is the planner snapshot embedded in a plan: a tag plus the
// settings the user actually overrode, enough to re-render descriptions
// after a receipt reload without needing the live Planner back.
type Info struct {
	Tag      string            `json:"tag"`
	Settings map[string]string `json:"settings,omitempty"`
}

// InstallPlan is an ordered list of StatefulActions plus the metadata
// needed to describe, execute, revert, and durably persist them.
type InstallPlan struct {
	// Version is the engine version that produced this plan; a reader
	// whose own version does not equal it rejects the plan (see version.go).
	Version string `json:"version"`
	// Planner records the planner tag and its configured settings.
	Planner Info `json:"planner"`
	// Actions is the execution order; uninstall walks it in reverse.
	Actions []*action.StatefulAction[action.Action] `json:"actions"`
	// DiagnosticData is optional diagnostic payload captured at plan
	// build time, value-copied to the diagnostics sink at each send point.
	DiagnosticData json.RawMessage `json:"diagnostic_data,omitempty"`

	// live is the Planner that built this plan, retained only in memory
	// (never serialized) for the lifetime of the current install/uninstall
	// call. It is nil on a plan reloaded from a receipt.
	live planner.Planner
}

// New builds an InstallPlan for the given engine version by invoking the
// planner's Plan(). The planner is retained on the returned plan for
// descriptions and diagnostics.
func New(version string, p planner.Planner) (*InstallPlan, error) {
	actions, err := p.Plan()
	if err != nil {
		return nil, err
	}
	plan := &InstallPlan{
		Version: version,
		Planner: Info{
			Tag:      p.TypetagName(),
			Settings: p.ConfiguredSettings(),
		},
		Actions: actions,
		live:    p,
	}
	if dp, ok := p.(planner.DiagnosticDataProvider); ok {
		if data, ok := dp.DiagnosticData(); ok {
			plan.DiagnosticData = data
		}
	}
	return plan, nil
}

// Clone returns a deep copy of the plan via a JSON round-trip, safe to
// call at any point in the plan's lifecycle. Action registry dispatch
// makes this safe even though the plan embeds an interface-typed action
// list.
func (p *InstallPlan) Clone() (*InstallPlan, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var clone InstallPlan
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	clone.live = p.live
	return &clone, nil
}

// sortedSettingsKeys returns the configured setting keys in lexicographic
// order for stable rendering.
func sortedSettingsKeys(settings map[string]string) []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
