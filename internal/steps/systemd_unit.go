package steps

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/coreos/go-systemd/unit"
	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

const systemdUnitDir = "/etc/systemd/system/"

// SystemdUnit installs a unit file for the runtime's daemon and enables and
// starts it, grounded on lib/systemservice's unit rendering
// (coreos/go-systemd/unit) and install/enable/start sequencing via
// systemctl. Revert runs the same sequence backwards: stop, disable,
// remove the unit file, daemon-reload.
type SystemdUnit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ExecStart   string `json:"exec_start"`
	User        string `json:"user,omitempty"`
}

func (s *SystemdUnit) Typetag() string { return "systemd_unit" }

func (s *SystemdUnit) unitFile() string {
	return filepath.Join(systemdUnitDir, s.Name+".service")
}

func (s *SystemdUnit) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Install and start the %v service", s.Name)}}
}

func (s *SystemdUnit) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Stop and remove the %v service", s.Name)}}
}

func (s *SystemdUnit) TracingSynopsis() string {
	return fmt.Sprintf("install service %v", s.Name)
}

func (s *SystemdUnit) Execute(ctx context.Context) error {
	opts := []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", s.Description),
		unit.NewUnitOption("Service", "ExecStart", s.ExecStart),
		unit.NewUnitOption("Service", "Restart", "on-failure"),
		unit.NewUnitOption("Install", "WantedBy", "multi-user.target"),
	}
	if s.User != "" {
		opts = append(opts, unit.NewUnitOption("Service", "User", s.User))
	}
	content, err := io.ReadAll(unit.Serialize(opts))
	if err != nil {
		return trace.Wrap(err, "rendering unit file")
	}
	if err := os.WriteFile(s.unitFile(), content, 0o644); err != nil {
		return trace.ConvertSystemError(err)
	}
	if err := invokeSystemctl(ctx, "daemon-reload"); err != nil {
		return err
	}
	if err := invokeSystemctl(ctx, "enable", s.Name); err != nil {
		return err
	}
	return invokeSystemctl(ctx, "start", s.Name)
}

func (s *SystemdUnit) Revert(ctx context.Context) error {
	var errs []error
	if err := invokeSystemctl(ctx, "stop", s.Name); err != nil {
		errs = append(errs, err)
	}
	if err := invokeSystemctl(ctx, "disable", s.Name); err != nil {
		errs = append(errs, err)
	}
	if err := os.Remove(s.unitFile()); err != nil && !os.IsNotExist(err) {
		errs = append(errs, trace.ConvertSystemError(err))
	}
	if err := invokeSystemctl(ctx, "daemon-reload"); err != nil {
		errs = append(errs, err)
	}
	return trace.NewAggregate(errs...)
}

func invokeSystemctl(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "systemctl", append(args, "--no-pager")...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return trace.Wrap(err, "systemctl %v: %s", args, out.String())
	}
	return nil
}

func init() {
	action.Register("systemd_unit", func() action.Action { return &SystemdUnit{} })
}
