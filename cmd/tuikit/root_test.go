package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
	tuikiterrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		// nil would make cobra fall back to the test binary's arguments.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuikit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dropdown:\n  side: top\ntheme: dark\n"), 0o600))

	out, err := execute(t, "config", "--config", path, "--align", "end")
	require.NoError(t, err)
	require.Contains(t, out, "side: top")
	require.Contains(t, out, "align: end")
	require.Contains(t, out, "theme: dark")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TUIKIT_DROPDOWN_SIDE", "left")

	cfg, err := loadConfig(&rootFlags{side: "right", verbose: true})
	require.NoError(t, err)
	require.Equal(t, "right", cfg.Dropdown.Side)
	require.Equal(t, "debug", cfg.Log.Level)

	cfg, err = loadConfig(&rootFlags{})
	require.NoError(t, err)
	require.Equal(t, "left", cfg.Dropdown.Side)
}

func TestInvalidFlagIsReported(t *testing.T) {
	_, err := execute(t, "config", "--side", "diagonal")
	require.True(t, tuikiterrors.IsValidation(err))
}

func TestDemoRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	_, err := execute(t)
	require.ErrorIs(t, err, errNotInteractive)
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuikit.log")
	log, closeLog, err := openLogger(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	log.Debug("menu opened")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "menu opened")
}

func TestOpenLoggerDiscardsWithoutFile(t *testing.T) {
	log, closeLog, err := openLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	log.Info("nothing to see")
	require.NoError(t, closeLog())

	_, _, err = openLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}
