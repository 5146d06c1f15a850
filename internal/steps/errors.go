// Package steps provides the concrete, host-mutating Action variants this
// engine ships with: directory layout, user/group provisioning, archive
// fetch, config file and shell profile edits, the systemd daemon unit, and
// (darwin only) an encrypted storage volume and a launchd daemon unit.
// Every variant is self
// contained: it captures at construction time the inputs Execute needs and
// records whatever Revert needs inside itself.
package steps

import (
	"strings"

	"github.com/gravitational/trace"
)

// convertUserToolError classifies useradd/groupadd/userdel/groupdel output
// so callers can branch on trace.IsAlreadyExists/trace.IsNotFound.
func convertUserToolError(output string) error {
	switch {
	case strings.Contains(output, "already exists"):
		return trace.AlreadyExists(output)
	case strings.Contains(output, "does not exist"), strings.Contains(output, "not found"):
		return trace.NotFound(output)
	default:
		return trace.BadParameter(output)
	}
}
