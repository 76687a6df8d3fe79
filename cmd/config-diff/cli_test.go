package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netform-dev/netform/internal/clierr"
)

func writeConfigFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigDiff_MarkdownDefault_ReplaceSingleLine(t *testing.T) {
	dir := t.TempDir()
	a := writeConfigFile(t, dir, "a.cfg", "interface Ethernet1\n  description old\n")
	b := writeConfigFile(t, dir, "b.cfg", "interface Ethernet1\n  description new\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--color", "never", a, b})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Replace")
}

func TestConfigDiff_JSONOutput_NoChanges(t *testing.T) {
	dir := t.TempDir()
	a := writeConfigFile(t, dir, "a.cfg", "interface Ethernet1\n")
	b := writeConfigFile(t, dir, "b.cfg", "interface Ethernet1\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--json", a, b})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"has_changes": false`)
}

func TestConfigDiff_YAMLOutput_NoChanges(t *testing.T) {
	dir := t.TempDir()
	a := writeConfigFile(t, dir, "a.cfg", "interface Ethernet1\n")
	b := writeConfigFile(t, dir, "b.cfg", "interface Ethernet1\n")

	// rootCmd is shared across tests: clear the --json state an earlier
	// test left behind so it neither trips the json/yaml exclusivity check
	// nor takes precedence over --yaml.
	rootCmd.Flags().Lookup("json").Changed = false
	jsonOutput = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--yaml", a, b})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "has_changes: false")
}

func TestConfigDiff_UnknownDialect_ExitArgError(t *testing.T) {
	dir := t.TempDir()
	a := writeConfigFile(t, dir, "a.cfg", "x\n")
	b := writeConfigFile(t, dir, "b.cfg", "y\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--dialect", "bogus", a, b})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, clierr.ExitArgError, clierr.DetermineExitCode(err))
}
