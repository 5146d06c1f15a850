package steps

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditShellProfileAppendsOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile")
	require.NoError(t, os.WriteFile(path, []byte("existing line\n"), 0o644))

	a := &EditShellProfile{Path: path, Line: "source /nix/etc/profile.d/nix.sh"}
	require.NoError(t, a.Execute(context.Background()))
	require.NoError(t, a.Execute(context.Background()))

	present, err := lineInFile(path, a.Line)
	require.NoError(t, err)
	assert.True(t, present)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), a.Line))
}

func TestEditShellProfileRevertRemovesOnlyItsLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile")
	require.NoError(t, os.WriteFile(path, []byte("keep this\n"), 0o644))

	a := &EditShellProfile{Path: path, Line: "source /nix/etc/profile.d/nix.sh"}
	require.NoError(t, a.Execute(context.Background()))
	require.NoError(t, a.Revert(context.Background()))

	present, err := lineInFile(path, a.Line)
	require.NoError(t, err)
	assert.False(t, present)
	keepPresent, err := lineInFile(path, "keep this")
	require.NoError(t, err)
	assert.True(t, keepPresent)
}
