package steps

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gravitational/trace"

	"github.com/gravitational/rtinstall/internal/action"
)

// EditShellProfile idempotently appends a sourcing line to a shell rc file.
// Execute scans for the line first and treats it already being present as
// success rather than an error, since a re-run install step must be
// idempotent. Revert removes every line equal to Line (ignoring
// surrounding whitespace), including identical copies added by hand, and
// leaves all other lines alone; the blank line Execute wrote before Line
// is not removed.
type EditShellProfile struct {
	Path string `json:"path"`
	Line string `json:"line"`
}

func (s *EditShellProfile) Typetag() string { return "edit_shell_profile" }

func (s *EditShellProfile) DescribeExecute() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Add %q to %v", s.Line, s.Path)}}
}

func (s *EditShellProfile) DescribeRevert() []action.Description {
	return []action.Description{{Description: fmt.Sprintf("Remove %q from %v", s.Line, s.Path)}}
}

func (s *EditShellProfile) TracingSynopsis() string {
	return fmt.Sprintf("edit %v", s.Path)
}

func (s *EditShellProfile) Execute(ctx context.Context) error {
	present, err := lineInFile(s.Path, s.Line)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return trace.ConvertSystemError(err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "\n%v", strings.TrimSpace(s.Line)); err != nil {
		return trace.ConvertSystemError(err)
	}
	return nil
}

func (s *EditShellProfile) Revert(ctx context.Context) error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return trace.ConvertSystemError(err)
	}
	lines := strings.Split(string(data), "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == strings.TrimSpace(s.Line) {
			continue
		}
		out = append(out, line)
	}
	return trace.ConvertSystemError(os.WriteFile(s.Path, []byte(strings.Join(out, "\n")), 0o644))
}

func lineInFile(path, line string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, trace.ConvertSystemError(err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == strings.TrimSpace(line) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, trace.Wrap(err)
	}
	return false, nil
}

func init() {
	action.Register("edit_shell_profile", func() action.Action { return &EditShellProfile{} })
}
