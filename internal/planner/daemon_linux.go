//go:build linux

package planner

import (
	"path/filepath"

	"github.com/gravitational/rtinstall/internal/action"
	"github.com/gravitational/rtinstall/internal/steps"
)

// daemonComposite on Linux is just the systemd unit.
func (p *DefaultPlanner) daemonComposite(s Settings) action.Action {
	return action.NewComposite("daemon", "Install and start the runtime daemon",
		&steps.SystemdUnit{
			Name:        "nix-daemon",
			Description: "Runtime package manager daemon",
			ExecStart:   filepath.Join(s.InstallRoot, "bin/nix-daemon"),
			User:        "root",
		},
	)
}
