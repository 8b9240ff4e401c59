package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Show(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	requireContains(t, out, "# memory://settings", "base_url", "accountId")
}

func TestConfigCmd_ShowMasksToken(t *testing.T) {
	setupTestServices(t)
	// The first command runs the bootstrap that sets services.
	_, err := execute(t, "config", "path")
	require.NoError(t, err)

	settings, err := services.Settings.Load()
	require.NoError(t, err)
	settings.API.Token = "secret-token"
	require.NoError(t, services.Settings.Save(settings))

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "********")
}

func TestConfigCmd_Path(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "memory://settings")
}

func TestConfigCmd_Init(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote memory://settings")
	settings, err := services.Settings.Load()
	require.NoError(t, err)
	require.Len(t, settings.Fields, 1)
	assert.Equal(t, "account", settings.Fields[0].Preset)
}
