package plan

import (
	"context"

	"github.com/gravitational/rtinstall/internal/diagnostics"
	"github.com/gravitational/rtinstall/internal/logutil"
)

var execLog = logutil.New("plan")

// probeCancel performs a single non-blocking poll: it never waits, and a
// nil channel (no receiver configured) disables cancellation entirely
// since a receive on a nil channel never proceeds.
func probeCancel(cancel <-chan struct{}) bool {
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// Install walks Actions forward. Before each action it performs a
// non-blocking cancellation probe; on a signal it checkpoints the receipt,
// sends a Cancelled diagnostic, and returns ErrCancelled. Otherwise it logs
// the action's tracing synopsis and calls TryExecute; on failure it
// checkpoints, sends a Failure diagnostic, and returns the wrapped action
// error. After the last action it checkpoints once more and sends Success.
//
// cancel may be nil, in which case cancellation is permanently disabled.
// sink may be nil, in which case diagnostics are silently skipped.
func (p *InstallPlan) Install(ctx context.Context, cancel <-chan struct{}, sink diagnostics.Sink) error {
	for _, a := range p.Actions {
		if probeCancel(cancel) {
			checkpoint(p)
			p.send(sink, diagnostics.Cancelled(diagnostics.ActionInstall, p.DiagnosticData))
			return ErrCancelled
		}

		execLog.Info(a.TracingSynopsis())

		if err := a.TryExecute(ctx); err != nil {
			checkpoint(p)
			wrapped := wrapAction(a.TracingSynopsis(), err)
			p.send(sink, diagnostics.Failure(diagnostics.ActionInstall, wrapped, p.DiagnosticData))
			return wrapped
		}
	}

	checkpoint(p)
	p.send(sink, diagnostics.Success(diagnostics.ActionInstall, p.DiagnosticData))
	return nil
}

// Uninstall walks Actions in reverse. It performs the same non-blocking
// cancellation probe as Install, but per-action revert failures are
// accumulated rather than short-circuiting, since during uninstall a
// missing sub-artifact is common and the user benefits from reverting as
// much as possible. After the walk, an empty error list sends Success and
// returns nil; otherwise it sends Failure carrying the aggregate and
// returns it.
func (p *InstallPlan) Uninstall(ctx context.Context, cancel <-chan struct{}, sink diagnostics.Sink) error {
	var errs []error
	for i := len(p.Actions) - 1; i >= 0; i-- {
		a := p.Actions[i]

		if probeCancel(cancel) {
			checkpoint(p)
			p.send(sink, diagnostics.Cancelled(diagnostics.ActionUninstall, p.DiagnosticData))
			return ErrCancelled
		}

		execLog.Info(a.TracingSynopsis())

		if err := a.TryRevert(ctx); err != nil {
			errs = append(errs, wrapAction(a.TracingSynopsis(), err))
		}
	}

	checkpoint(p)
	if len(errs) == 0 {
		p.send(sink, diagnostics.Success(diagnostics.ActionUninstall, p.DiagnosticData))
		return nil
	}
	aggregate := wrapActionRevert(errs)
	p.send(sink, diagnostics.Failure(diagnostics.ActionUninstall, aggregate, p.DiagnosticData))
	return aggregate
}

// send emits a diagnostic event, logging and discarding any send failure:
// diagnostics are explicitly best-effort and never gate engine state.
func (p *InstallPlan) send(sink diagnostics.Sink, event diagnostics.Event) {
	if sink == nil {
		return
	}
	if err := sink.Send(event); err != nil {
		execLog.WithError(err).Debug("Failed to send diagnostic event.")
	}
}
