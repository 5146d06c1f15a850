package action

import "github.com/gravitational/trace"

// These are the structural assertions of the engine: they fire only on the
// direct, non-Try* entry points reserved for sanity checks, never on the
// TryExecute/TryRevert hot path the plan's install/uninstall loops use.
var (
	// ErrAlreadyExecuted is returned by Execute on an action already in
	// StateCompleted.
	ErrAlreadyExecuted = trace.BadParameter("action already executed")
	// ErrNotExecuted is returned by Revert on an action still in
	// StateUncompleted.
	ErrNotExecuted = trace.BadParameter("action not executed")
	// ErrAlreadyReverted is reserved for symmetry with ErrAlreadyExecuted;
	// no current engine path emits it.
	ErrAlreadyReverted = trace.BadParameter("action already reverted")
)
