package steps

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// MkdirTree creates the runtime's root directory and chowns it to a
// service user/group, shelling out to "chown -R" rather than walking the
// tree with os.Chown.
type MkdirTree struct {
	Path string      `json:"path"`
	Mode os.FileMode `json:"mode"`
	UID  int         `json:"uid"`
	GID  int         `json:"gid"`
}

// Typetag identifies this variant in a receipt.
func (s *MkdirTree) Typetag() string { return "mkdir_tree" }

// DescribeExecute describes the directory creation.
func (s *MkdirTree) DescribeExecute() []action.Description {
	return []action.Description{{
		Description: fmt.Sprintf("Create directory %v", s.Path),
		Explanation: []string{fmt.Sprintf("mkdir -p %v, then chown to %v:%v", s.Path, s.UID, s.GID)},
	}}
}

// DescribeRevert describes the removal.
func (s *MkdirTree) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove directory %v", s.Path)}}
}

// TracingSynopsis is a single-line progress label.
func (s *MkdirTree) TracingSynopsis() string {
	return fmt.Sprintf("create directory %v", s.Path)
}

// Execute creates the directory tree and chowns it.
func (s *MkdirTree) Execute(ctx context.Context) error {
	if err := os.MkdirAll(s.Path, s.Mode); err != nil {
		return trace.ConvertSystemError(err)
	}
	out, err := exec.CommandContext(ctx, "chown", "-R", fmt.Sprintf("%v:%v", s.UID, s.GID), s.Path).CombinedOutput()
	if err != nil {
		return trace.Wrap(err, "failed to chown %q to %v:%v: %s", s.Path, s.UID, s.GID, out)
	}
	return nil
}

// Revert best-effort removes the directory tree; a missing directory is
// not an error.
func (s *MkdirTree) Revert(ctx context.Context) error {
	if err := os.RemoveAll(s.Path); err != nil && !os.IsNotExist(err) {
		return trace.ConvertSystemError(err)
	}
	return nil
}

func init() {
	action.Register("mkdir_tree", func() action.Action { return &MkdirTree{} })
}
