package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/red/internal/renderer/backend"
)

func testCLI(t *testing.T, keys ...string) (*cli, *backend.Memory) {
	t.Helper()
	mem := backend.NewMemory(40, 5)
	mem.PostKeys(keys...)
	return &cli{
		isTerminal: func() bool { return true },
		newBackend: func() (backend.Backend, error) { return mem, nil },
		environ:    func() []string { return nil },
	}, mem
}

func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(c)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	c, _ := testCLI(t)
	out, err := execute(t, c, "--version")
	require.NoError(t, err)
	require.Contains(t, out, version)
}

func TestRunEditsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	cfgPath := filepath.Join(dir, "red.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[editor]\nline_numbers = false\n"), 0o644))

	c, mem := testCLI(t, "i", "o", "k", "<Esc>", "<C-s>", "q")
	_, err := execute(t, c, "--config", cfgPath, "--log-file", "", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ok", string(data))
	require.True(t, strings.HasPrefix(mem.Line(0), "ok"))
}

func TestLogFileFlag(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "red.log")

	c, _ := testCLI(t, "q")
	_, err := execute(t, c, "--config", filepath.Join(dir, "none.toml"), "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] red: quit")
}

func TestRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	noConfig := filepath.Join(dir, "none.toml")

	c, _ := testCLI(t)
	_, err := execute(t, c, "--config", noConfig, "--log-level", "shout")
	require.Error(t, err)

	_, err = execute(t, c, "--config", noConfig, "a", "b")
	require.Error(t, err, "only one file is accepted")

	c.isTerminal = func() bool { return false }
	_, err = execute(t, c, "--config", noConfig, "--log-file", "")
	require.ErrorIs(t, err, errNotTerminal)
}
