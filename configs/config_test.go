package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefault(t *testing.T) {
	file := filepath.Join(t.TempDir(), "akid", "akid.toml")

	v := viper.New()
	require.NoError(t, Load(v, file))

	written, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, defaultConfigFile, written)
	assert.Equal(t, "wwise", v.GetString("package"))
	assert.Equal(t, "wwise/ids.go", v.GetString("output"))
	assert.False(t, v.GetBool("debug"))
}

func TestLoadExistingAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "akid.toml")
	require.NoError(t, os.WriteFile(file, []byte("package = \"sfx\"\noutput = \"sfx/ids.go\"\n"), 0o600))
	t.Setenv("AKID_OUTPUT", "audio/ids.go")

	v := viper.New()
	require.NoError(t, Load(v, file))
	assert.Equal(t, "sfx", v.GetString("package"))
	assert.Equal(t, "audio/ids.go", v.GetString("output"))
}

func TestLoadBadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "akid.toml")
	require.NoError(t, os.WriteFile(file, []byte("package = \n"), 0o600))

	assert.Error(t, Load(viper.New(), file))
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "akid"), GetConfigDir())
}
