// Package action defines the abstract contract every install step obeys:
// the Action interface, its lifecycle wrapper StatefulAction, and the
// composite action that lets a single step own an ordered sub-list of
// its own. Concrete variants live in internal/steps; this package never
// imports them.
package action

import "context"

// Description is a one-line human-readable summary of an action's effect,
// plus optional paragraph-form explanation shown only in "explain" mode.
type Description struct {
	Description string   `json:"description"`
	Explanation []string `json:"explanation,omitempty"`
}

// Action is a single reversible host mutation. Implementations are
// heterogeneous (directory, user, service, volume, ...) and opaque to the
// engine; every variant captures at construction time the inputs it will
// need so Execute requires no further configuration and Revert requires
// only what Execute itself recorded.
type Action interface {
	// Typetag is the stable short string used to pick this variant back
	// out of a serialized receipt.
	Typetag() string

	// DescribeExecute is deterministic and side-effect free.
	DescribeExecute() []Description

	// DescribeRevert is deterministic and side-effect free.
	DescribeRevert() []Description

	// Execute mutates the host. It may return a partially-applied host
	// state on error; the caller is responsible for retry/revert policy.
	Execute(ctx context.Context) error

	// Revert undoes whatever Execute did.
	Revert(ctx context.Context) error

	// TracingSynopsis is a single-line label for progress logs.
	TracingSynopsis() string
}

// NetworkValidator is implemented by actions that reach out over the
// network during Execute, so callers (sandboxes, offline installs) can
// decide whether to allow them.
type NetworkValidator interface {
	RequiresNetwork() bool
}
