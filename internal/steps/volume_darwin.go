//go:build darwin

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// EncryptedVolume provisions an encrypted APFS volume for the runtime
// store via diskutil, the macOS-only counterpart to the Linux install
// path: capture CombinedOutput and wrap a non-zero exit with the command's
// own output attached.
type EncryptedVolume struct {
	ContainerDisk string `json:"container_disk"`
	VolumeName    string `json:"volume_name"`
	Passphrase    string `json:"-"`
}

func (s *EncryptedVolume) Typetag() string { return "encrypted_volume" }

func (s *EncryptedVolume) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Create encrypted APFS volume %q", s.VolumeName)}}
}

func (s *EncryptedVolume) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove APFS volume %q", s.VolumeName)}}
}

func (s *EncryptedVolume) TracingSynopsis() string {
	return fmt.Sprintf("create volume %v", s.VolumeName)
}

func (s *EncryptedVolume) Execute(ctx context.Context) error {
	return diskutil(ctx, "apfs", "addVolume", s.ContainerDisk, "APFS",
		s.VolumeName, "-passphrase", s.Passphrase)
}

func (s *EncryptedVolume) Revert(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "diskutil", "info", s.VolumeName).CombinedOutput()
	if err != nil {
		if bytes.Contains(out, []byte("could not find")) {
			return nil
		}
		return trace.Wrap(err, "diskutil info %v: %s", s.VolumeName, out)
	}
	return diskutil(ctx, "apfs", "deleteVolume", s.VolumeName)
}

func diskutil(ctx context.Context, args ...string) error {
	out, err := exec.CommandContext(ctx, "diskutil", args...).CombinedOutput()
	if err != nil {
		return trace.Wrap(err, "diskutil %v: %s", args, out)
	}
	return nil
}

func init() {
	action.Register("encrypted_volume", func() action.Action { return &EncryptedVolume{} })
}
