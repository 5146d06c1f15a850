package action

import "context"

// State is the three-value lifecycle of a StatefulAction.
type State string

const (
	// StateUncompleted is the state of a freshly planned action.
	StateUncompleted State = "uncompleted"
	// StateProgress is used exclusively by composite actions partway
	// through their sub-list; leaves never enter this state.
	StateProgress State = "progress"
	// StateCompleted is the state of an action whose Execute succeeded.
	StateCompleted State = "completed"
)

// StatefulAction pairs an action with its lifecycle state and enforces the
// idempotence invariants on TryExecute/TryRevert so the engine can
// re-enter an action safely after a crash or a cancellation.
type StatefulAction[A Action] struct {
	Action A     `json:"action"`
	State  State `json:"state"`
}

// NewStatefulAction wraps a freshly planned action in StateUncompleted.
func NewStatefulAction[A Action](a A) *StatefulAction[A] {
	return &StatefulAction[A]{Action: a, State: StateUncompleted}
}

// TryExecute is a no-op returning nil when the action is already
// StateCompleted. Otherwise it invokes Execute; on success it sets the
// state to StateCompleted. On failure it leaves the state as
// StateProgress when the action is a composite that completed some but
// not all of its sub-actions (see ProgressCapable), and otherwise leaves
// it exactly as it was on entry.
func (s *StatefulAction[A]) TryExecute(ctx context.Context) error {
	if s.State == StateCompleted {
		return nil
	}
	err := s.Action.Execute(ctx)
	if err != nil {
		if pc, ok := any(s.Action).(ProgressCapable); ok && pc.PartiallyCompleted() {
			s.State = StateProgress
		}
		return err
	}
	s.State = StateCompleted
	return nil
}

// TryRevert is a no-op returning nil when the action is already
// StateUncompleted. Otherwise it invokes Revert; on success it sets the
// state to StateUncompleted, on failure it leaves the state unchanged
// except to record StateProgress for a partially-reverted composite.
func (s *StatefulAction[A]) TryRevert(ctx context.Context) error {
	if s.State == StateUncompleted {
		return nil
	}
	err := s.Action.Revert(ctx)
	if err != nil {
		if pc, ok := any(s.Action).(ProgressCapable); ok && pc.PartiallyCompleted() {
			s.State = StateProgress
		}
		return err
	}
	s.State = StateUncompleted
	return nil
}

// Execute is the direct, non-idempotent entry point reserved for engine
// sanity checks: it refuses to run on a completed action.
func (s *StatefulAction[A]) Execute(ctx context.Context) error {
	if s.State == StateCompleted {
		return ErrAlreadyExecuted
	}
	if err := s.Action.Execute(ctx); err != nil {
		return err
	}
	s.State = StateCompleted
	return nil
}

// Revert is the direct, non-idempotent entry point reserved for engine
// sanity checks: it refuses to run on an uncompleted action.
func (s *StatefulAction[A]) Revert(ctx context.Context) error {
	if s.State == StateUncompleted {
		return ErrNotExecuted
	}
	if err := s.Action.Revert(ctx); err != nil {
		return err
	}
	s.State = StateUncompleted
	return nil
}

// DescribeExecute delegates to the wrapped action.
func (s *StatefulAction[A]) DescribeExecute() []Description { return s.Action.DescribeExecute() }

// DescribeRevert delegates to the wrapped action.
func (s *StatefulAction[A]) DescribeRevert() []Description { return s.Action.DescribeRevert() }

// TracingSynopsis delegates to the wrapped action.
func (s *StatefulAction[A]) TracingSynopsis() string { return s.Action.TracingSynopsis() }
