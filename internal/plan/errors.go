package plan

import "github.com/gravitational/trace"

// ErrCancelled is returned by Install/Uninstall when the cancellation probe
// observes a signal between actions.
var ErrCancelled = trace.BadParameter("cancelled")

// wrapAction builds the install-time error for the single action that
// aborted the walk, carrying its tracing synopsis for a user-actionable
// message.
func wrapAction(synopsis string, err error) error {
	return trace.Wrap(err, "action %q failed", synopsis)
}

// ActionRevertError aggregates the per-action failures accumulated during a
// best-effort uninstall walk; every failure is reported, none is dropped.
type ActionRevertError struct {
	Errors []error
}

// Error renders the aggregate using trace's own aggregate formatting.
func (e *ActionRevertError) Error() string {
	return trace.NewAggregate(e.Errors...).Error()
}

// Unwrap exposes the individual errors to errors.Is/As callers.
func (e *ActionRevertError) Unwrap() []error {
	return e.Errors
}

// wrapActionRevert builds the uninstall-time error from accumulated
// per-action failures; returns nil if errs is empty.
func wrapActionRevert(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ActionRevertError{Errors: errs}
}

// wrapRecordingReceipt wraps a failure to persist the receipt file.
func wrapRecordingReceipt(path string, err error) error {
	return trace.Wrap(err, "recording receipt at %v", path)
}

// wrapSerializingReceipt wraps a failure to encode the plan itself.
func wrapSerializingReceipt(err error) error {
	return trace.Wrap(err, "serializing receipt")
}
