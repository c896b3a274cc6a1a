package config

import (
	"path/filepath"
	"testing"

	"github.com/irjudson/codalab-cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := testutil.CreateTempDir(t)
	t.Setenv("CODALAB_HOME", home)
	t.Setenv("CODALAB_LOG_LEVEL", "")

	c, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, home, c.Home)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, filepath.Join(home, "env.db"), c.Paths().EnvDBPath())
}

func TestLoad_HomeFlagWins(t *testing.T) {
	envHome := testutil.CreateTempDir(t)
	flagHome := testutil.CreateTempDir(t)
	t.Setenv("CODALAB_HOME", envHome)

	c, err := Load(flagHome, "")
	require.NoError(t, err)
	assert.Equal(t, flagHome, c.Home)
}

func TestLoad_ConfigFileInHome(t *testing.T) {
	home := testutil.CreateTempDir(t)
	testutil.CreateFile(t, home, "config.yaml", "log:\n  level: debug\n  format: json\n")
	t.Setenv("CODALAB_HOME", "")
	t.Setenv("CODALAB_LOG_LEVEL", "")

	c, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := testutil.CreateTempDir(t)
	testutil.CreateFile(t, home, "config.yaml", "log:\n  level: debug\n")
	t.Setenv("CODALAB_LOG_LEVEL", "warn")

	c, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	home := testutil.CreateTempDir(t)
	_, err := Load(home, filepath.Join(home, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	home := testutil.CreateTempDir(t)
	testutil.CreateFile(t, home, "config.yaml", "log: [unterminated\n")

	_, err := Load(home, "")
	assert.Error(t, err)
}
