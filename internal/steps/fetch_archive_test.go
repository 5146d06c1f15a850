package steps

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTarGz(t *testing.T, files map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return &buf
}

func TestExtractTarGzWritesFiles(t *testing.T) {
	dir := t.TempDir()
	archive := buildTarGz(t, map[string]string{
		"bin/nix-daemon": "binary contents",
		"etc/nix.conf":   "conf contents",
	})

	require.NoError(t, extractTarGz(archive, dir))

	data, err := os.ReadFile(filepath.Join(dir, "bin/nix-daemon"))
	require.NoError(t, err)
	assert.Equal(t, "binary contents", string(data))
}

func TestExtractTarGzRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	archive := buildTarGz(t, map[string]string{
		"../escape.txt": "malicious",
	})

	err := extractTarGz(archive, dir)
	assert.Error(t, err)
}
