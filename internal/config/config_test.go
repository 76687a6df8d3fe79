package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithViper_Defaults(t *testing.T) {
	cfg, err := LoadConfigWithViper("", viper.New())
	require.NoError(t, err)

	assert.Equal(t, "generic", cfg.DefaultDialect)
	assert.Equal(t, "ordered", cfg.DefaultOrderPolicy)
	assert.Equal(t, "fixtures", cfg.FixturesDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Output.JSON)
}

func TestLoadConfigWithViper_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_dialect: junos\nlogging:\n  level: debug\n"), 0o600))

	cfg, err := LoadConfigWithViper(path, viper.New())
	require.NoError(t, err)

	assert.Equal(t, "junos", cfg.DefaultDialect)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigWithViper_InvalidDialectFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_dialect: not-a-dialect\n"), 0o600))

	_, err := LoadConfigWithViper(path, viper.New())
	assert.Error(t, err)
}

func TestLoadConfigWithViper_EnvOverride(t *testing.T) {
	t.Setenv("CONFIGDIFF_DEFAULT_DIALECT", "eos")

	cfg, err := LoadConfigWithViper("", viper.New())
	require.NoError(t, err)
	assert.Equal(t, "eos", cfg.DefaultDialect)
}
