package planner

// Settings is the user-configurable surface DefaultPlanner builds an
// install sequence from. CheckAndSetDefaults fills in the unconfigured
// fields with defaults and records which ones the caller actually set.
type Settings struct {
	// InstallRoot is the runtime's root directory.
	InstallRoot string
	// Channel selects the release channel the archive is fetched from.
	Channel string
	// Proxy is an optional HTTP(S) proxy URL for the archive fetch.
	Proxy string
	// NoDaemon skips installing and starting the long-running service.
	NoDaemon bool
	// ServiceUser/ServiceGroup name the system account the daemon runs as.
	ServiceUser  string
	ServiceGroup string

	configured map[string]string
}

const (
	defaultInstallRoot  = "/nix"
	defaultChannel      = "stable"
	defaultServiceUser  = "nix-daemon"
	defaultServiceGroup = "nix-daemon"
)

// CheckAndSetDefaults fills in unconfigured fields and records, before
// doing so, which keys the caller actually set — the distinction
// ConfiguredSettings() exposes to DescribeInstall's rendering.
func (s *Settings) CheckAndSetDefaults() error {
	s.configured = make(map[string]string)
	if s.InstallRoot != "" {
		s.configured["install-root"] = s.InstallRoot
	} else {
		s.InstallRoot = defaultInstallRoot
	}
	if s.Channel != "" {
		s.configured["channel"] = s.Channel
	} else {
		s.Channel = defaultChannel
	}
	if s.Proxy != "" {
		s.configured["proxy"] = s.Proxy
	}
	if s.NoDaemon {
		s.configured["no-daemon"] = "true"
	}
	if s.ServiceUser != "" {
		s.configured["service-user"] = s.ServiceUser
	} else {
		s.ServiceUser = defaultServiceUser
	}
	if s.ServiceGroup != "" {
		s.configured["service-group"] = s.ServiceGroup
	} else {
		s.ServiceGroup = defaultServiceGroup
	}
	return nil
}

// all returns every recognized setting, including ones left at default.
func (s *Settings) all() map[string]string {
	return map[string]string{
		"install-root":  s.InstallRoot,
		"channel":       s.Channel,
		"proxy":         s.Proxy,
		"no-daemon":     boolString(s.NoDaemon),
		"service-user":  s.ServiceUser,
		"service-group": s.ServiceGroup,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
