package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dbPath, configPath, logFile, verbosity = "", "", "", 0

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "musicdb dev (commit: none, built: unknown)\n", out)
}

func TestInitThenConsole(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "music.db")

	_, err := execute(t, "", "init", "--db", db)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "musicdb.log"))
	require.NoError(t, err)

	out, err := execute(t, "1\n0\n", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1: The Beatles (Rock)")
	assert.Contains(t, out, "Exiting client.")
}

func TestConsole_ConfigDisablesSeed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "musicdb.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed = false\n"), 0o644))

	out, err := execute(t, "1\n0\n", "--db", filepath.Join(dir, "empty.db"), "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Artists:\nNo results.")
}

func TestMaintenanceCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "music.db")

	_, err := execute(t, "", "init", "-d", db)
	require.NoError(t, err)

	_, err = execute(t, "", "optimize", "-d", db)
	require.NoError(t, err)
	_, err = execute(t, "", "vacuum", "-d", db)
	require.NoError(t, err)
}

func TestUnreadableConfigFails(t *testing.T) {
	_, err := execute(t, "", "init", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
