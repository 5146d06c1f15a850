package plan

import (
	"github.com/coreos/go-semver/semver"
	"github.com/gravitational/trace"
)

// checkVersion rejects a plan whose version does not exactly equal the
// running engine's own version: a receipt written by engine X can only be
// read by engine X. The comparison is semver-aware so pre-release and
// build-metadata equality rules apply rather than a bare string compare.
func checkVersion(planVersion, engineVersion string) error {
	pv, err := semver.NewVersion(planVersion)
	if err != nil {
		return trace.BadParameter("receipt has an unreadable version %q: %v", planVersion, err)
	}
	ev, err := semver.NewVersion(engineVersion)
	if err != nil {
		return trace.BadParameter("engine has an unreadable version %q: %v", engineVersion, err)
	}
	if !ev.Equal(*pv) {
		return trace.BadParameter(
			"receipt was written by version %v but this engine is version %v; "+
				"uninstall with the matching release, see the project's release page", pv, ev)
	}
	return nil
}
