//go:build darwin

package planner

import (
	"path/filepath"

	"github.com/gravitational/rtinstall/internal/action"
	"github.com/gravitational/rtinstall/internal/steps"
)

// daemonComposite on Darwin provisions the encrypted store volume before
// installing the service, and reverts in the opposite order (service
// first, then volume) since CompositeAction.Revert walks its sub-actions
// in reverse.
func (p *DefaultPlanner) daemonComposite(s Settings) action.Action {
	return action.NewComposite("daemon", "Provision the runtime volume and start its daemon",
		&steps.EncryptedVolume{
			ContainerDisk: "disk1",
			VolumeName:    "nix store",
		},
		&steps.LaunchdUnit{
			Label:     "org.nixos.nix-daemon",
			ExecStart: filepath.Join(s.InstallRoot, "bin/nix-daemon"),
		},
	)
}
