package steps

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// AddUser creates a system user with no home directory, grounded on
// lib/systeminfo/user.go's userAddCommand ("/usr/sbin/useradd --system
// --no-create-home --gid <group> <name>"). Revert runs userdel and
// tolerates the user already being gone.
type AddUser struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

func (s *AddUser) Typetag() string { return "add_user" }

func (s *AddUser) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Create system user %q in group %q", s.Name, s.Group)}}
}

func (s *AddUser) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove system user %q", s.Name)}}
}

func (s *AddUser) TracingSynopsis() string {
	return fmt.Sprintf("create user %v", s.Name)
}

func (s *AddUser) Execute(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "/usr/sbin/useradd",
		"--system", "--no-create-home", "--gid", s.Group, s.Name).CombinedOutput()
	if err != nil {
		cerr := convertUserToolError(string(out))
		if trace.IsAlreadyExists(cerr) {
			return nil
		}
		return trace.Wrap(cerr, "failed to create user %q: %s", s.Name, out)
	}
	return nil
}

func (s *AddUser) Revert(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "/usr/sbin/userdel", s.Name).CombinedOutput()
	if err != nil {
		cerr := convertUserToolError(string(out))
		if trace.IsNotFound(cerr) {
			return nil
		}
		return trace.Wrap(cerr, "failed to remove user %q: %s", s.Name, out)
	}
	return nil
}

func init() {
	action.Register("add_user", func() action.Action { return &AddUser{} })
}
