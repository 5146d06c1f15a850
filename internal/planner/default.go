package planner

import (
	"fmt"
	"path/filepath"

	"github.com/gravitational/rtinstall/internal/action"
	"github.com/gravitational/rtinstall/internal/steps"
)

// DefaultPlanner is the reference Planner: it assembles the canonical
// install sequence for the runtime from Settings, keeping plan-building
// separate from the engine that executes the resulting actions.
type DefaultPlanner struct {
	settings Settings
}

// NewDefaultPlanner validates settings and returns a planner ready to
// build a plan from them.
func NewDefaultPlanner(settings Settings) (*DefaultPlanner, error) {
	if err := settings.CheckAndSetDefaults(); err != nil {
		return nil, err
	}
	return &DefaultPlanner{settings: settings}, nil
}

// TypetagName identifies this planner in a receipt.
func (p *DefaultPlanner) TypetagName() string { return "default" }

// Settings returns every recognized setting, including defaults.
func (p *DefaultPlanner) Settings() map[string]string {
	return p.settings.all()
}

// ConfiguredSettings returns only the settings the caller overrode.
func (p *DefaultPlanner) ConfiguredSettings() map[string]string {
	return p.settings.configured
}

// Plan builds the ordered action list: root directory layout, service
// group/user, archive fetch, daemon config, shell profile, then a
// platform-specific composite carrying the long-running service (and, on
// darwin, the encrypted store volume).
func (p *DefaultPlanner) Plan() ([]*action.StatefulAction[action.Action], error) {
	s := p.settings
	var acts []action.Action

	acts = append(acts, &steps.MkdirTree{
		Path: s.InstallRoot,
		Mode: 0o755,
	})
	acts = append(acts, &steps.AddGroup{Name: s.ServiceGroup})
	acts = append(acts, &steps.AddUser{Name: s.ServiceUser, Group: s.ServiceGroup})
	acts = append(acts, &steps.FetchArchive{
		URL:     archiveURL(s.Channel),
		DestDir: filepath.Join(s.InstallRoot, "store"),
	})
	acts = append(acts, &steps.WriteConfigFile{
		Path:    filepath.Join(s.InstallRoot, "nix.conf"),
		Content: []byte(fmt.Sprintf("build-users-group = %v\n", s.ServiceGroup)),
		Mode:    0o644,
	})
	acts = append(acts, &steps.EditShellProfile{
		Path: "/etc/profile.d/nix.sh",
		Line: fmt.Sprintf(". %v/etc/profile.d/nix-daemon.sh", s.InstallRoot),
	})

	if !s.NoDaemon {
		acts = append(acts, p.daemonComposite(s))
	}

	wrapped := make([]*action.StatefulAction[action.Action], len(acts))
	for i, a := range acts {
		wrapped[i] = action.NewStatefulAction[action.Action](a)
	}
	return wrapped, nil
}

func archiveURL(channel string) string {
	return fmt.Sprintf("https://releases.example.com/runtime/%v/latest.tar.gz", channel)
}
