package steps

import (
	"context"
	"fmt"
	"os"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// WriteConfigFile writes a captured byte payload to a captured path with
// captured permissions, grounded on lib/utils.WritePath. Revert restores
// whatever was at Path before Execute ran (captured into PrevContent at
// Execute time), or removes the file if none existed.
type WriteConfigFile struct {
	Path    string      `json:"path"`
	Content []byte      `json:"content"`
	Mode    os.FileMode `json:"mode"`

	PrevContent []byte `json:"prev_content,omitempty"`
	PrevExisted bool   `json:"prev_existed"`
}

func (s *WriteConfigFile) Typetag() string { return "write_config_file" }

func (s *WriteConfigFile) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Write configuration file %v", s.Path)}}
}

func (s *WriteConfigFile) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Restore previous contents of %v", s.Path)}}
}

func (s *WriteConfigFile) TracingSynopsis() string {
	return fmt.Sprintf("write %v", s.Path)
}

func (s *WriteConfigFile) Execute(ctx context.Context) error {
	prev, err := os.ReadFile(s.Path)
	switch {
	case err == nil:
		s.PrevContent = prev
		s.PrevExisted = true
	case os.IsNotExist(err):
		s.PrevExisted = false
	default:
		return trace.ConvertSystemError(err)
	}

	if err := os.WriteFile(s.Path, s.Content, s.Mode); err != nil {
		return trace.ConvertSystemError(err)
	}
	return nil
}

func (s *WriteConfigFile) Revert(ctx context.Context) error {
	if s.PrevExisted {
		if err := os.WriteFile(s.Path, s.PrevContent, s.Mode); err != nil {
			return trace.ConvertSystemError(err)
		}
		return nil
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return trace.ConvertSystemError(err)
	}
	return nil
}

func init() {
	action.Register("write_config_file", func() action.Action { return &WriteConfigFile{} })
}
