package steps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigFileExecuteAndRevertNoPriorFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.conf")
	a := &WriteConfigFile{Path: path, Content: []byte("hello"), Mode: 0o644}

	require.NoError(t, a.Execute(context.Background()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.False(t, a.PrevExisted)

	require.NoError(t, a.Revert(context.Background()))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteConfigFileRevertRestoresPriorContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.conf")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	a := &WriteConfigFile{Path: path, Content: []byte("replacement"), Mode: 0o644}
	require.NoError(t, a.Execute(context.Background()))
	assert.True(t, a.PrevExisted)

	require.NoError(t, a.Revert(context.Background()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}
