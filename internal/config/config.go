// Package config parses install-time settings from CLI flags and
// environment variables, validating required fields and filling in
// defaults before use.
package config

import (
	"os"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/planner"
)

// Config is the top-level set of values the CLI gathers before building a
// plan.
type Config struct {
	// Explain turns on paragraph-form descriptions.
	Explain bool
	// Settings is forwarded to planner.NewDefaultPlanner.
	Settings planner.Settings
}

// CheckAndSetDefaults validates the config and fills in values sourced
// from the environment when the corresponding flag was left unset.
func (c *Config) CheckAndSetDefaults() error {
	if c.Settings.Channel == "" {
		if ch := os.Getenv("RTINSTALL_CHANNEL"); ch != "" {
			c.Settings.Channel = ch
		}
	}
	if c.Settings.Proxy == "" {
		if proxy := os.Getenv("RTINSTALL_PROXY"); proxy != "" {
			c.Settings.Proxy = proxy
		}
	}
	if c.Settings.InstallRoot == "" {
		if root := os.Getenv("RTINSTALL_ROOT"); root != "" {
			c.Settings.InstallRoot = root
		}
	}
	return nil
}

// Planner builds the reference DefaultPlanner from the config's settings.
func (c *Config) Planner() (*planner.DefaultPlanner, error) {
	p, err := planner.NewDefaultPlanner(c.Settings)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return p, nil
}
