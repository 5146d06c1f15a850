package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndSetDefaultsFillsUnconfigured(t *testing.T) {
	var s Settings
	require.NoError(t, s.CheckAndSetDefaults())

	assert.Equal(t, defaultInstallRoot, s.InstallRoot)
	assert.Equal(t, defaultChannel, s.Channel)
	assert.Empty(t, s.configured)
}

func TestCheckAndSetDefaultsRecordsConfiguredOnly(t *testing.T) {
	s := Settings{Channel: "beta", NoDaemon: true}
	require.NoError(t, s.CheckAndSetDefaults())

	assert.Equal(t, "beta", s.configured["channel"])
	assert.Equal(t, "true", s.configured["no-daemon"])
	_, installRootConfigured := s.configured["install-root"]
	assert.False(t, installRootConfigured)
}
