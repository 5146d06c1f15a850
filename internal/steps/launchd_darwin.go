//go:build darwin

package steps

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

const launchDaemonDir = "/Library/LaunchDaemons/"

// LaunchdUnit installs and loads a launchd daemon, the macOS counterpart
// of SystemdUnit using the same general exec-wrapping convention.
type LaunchdUnit struct {
	Label     string `json:"label"`
	ExecStart string `json:"exec_start"`
}

func (s *LaunchdUnit) Typetag() string { return "launchd_unit" }

func (s *LaunchdUnit) plistPath() string {
	return filepath.Join(launchDaemonDir, s.Label+".plist")
}

func (s *LaunchdUnit) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Install and load the %v service", s.Label)}}
}

func (s *LaunchdUnit) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Unload and remove the %v service", s.Label)}}
}

func (s *LaunchdUnit) TracingSynopsis() string {
	return fmt.Sprintf("install service %v", s.Label)
}

func (s *LaunchdUnit) Execute(ctx context.Context) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%v</string>
	<key>ProgramArguments</key>
	<array>
		<string>%v</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
</dict>
</plist>
`, s.Label, s.ExecStart)

	if err := os.WriteFile(s.plistPath(), []byte(content), 0o644); err != nil {
		return trace.ConvertSystemError(err)
	}
	return launchctl(ctx, "load", "-w", s.plistPath())
}

func (s *LaunchdUnit) Revert(ctx context.Context) error {
	var errs []error
	if err := launchctl(ctx, "unload", "-w", s.plistPath()); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(s.plistPath()); err != nil && !os.IsNotExist(err) {
		errs = append(errs, trace.ConvertSystemError(err))
	}
	return trace.NewAggregate(errs...)
}

func launchctl(ctx context.Context, args ...string) error {
	out, err := exec.CommandContext(ctx, "launchctl", args...).CombinedOutput()
	if err != nil {
		return trace.Wrap(err, "launchctl %v: %s", args, out)
	}
	return nil
}

func init() {
	action.Register("launchd_unit", func() action.Action { return &LaunchdUnit{} })
}
