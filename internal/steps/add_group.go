package steps

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// AddGroup creates a system group, grounded on
// lib/systeminfo/user.go's groupAddCommand ("/usr/sbin/groupadd --system
// <name>"). Revert runs groupdel and tolerates the group already being
// gone.
type AddGroup struct {
	Name string `json:"name"`
}

func (s *AddGroup) Typetag() string { return "add_group" }

func (s *AddGroup) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Create system group %q", s.Name)}}
}

func (s *AddGroup) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove system group %q", s.Name)}}
}

func (s *AddGroup) TracingSynopsis() string {
	return fmt.Sprintf("create group %v", s.Name)
}

func (s *AddGroup) Execute(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "/usr/sbin/groupadd", "--system", s.Name).CombinedOutput()
	if err != nil {
		cerr := convertUserToolError(string(out))
		if trace.IsAlreadyExists(cerr) {
			return nil
		}
		return trace.Wrap(cerr, "failed to create group %q: %s", s.Name, out)
	}
	return nil
}

func (s *AddGroup) Revert(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "/usr/sbin/groupdel", s.Name).CombinedOutput()
	if err != nil {
		cerr := convertUserToolError(string(out))
		if trace.IsNotFound(cerr) {
			return nil
		}
		return trace.Wrap(cerr, "failed to remove group %q: %s", s.Name, out)
	}
	return nil
}

func init() {
	action.Register("add_group", func() action.Action { return &AddGroup{} })
}
