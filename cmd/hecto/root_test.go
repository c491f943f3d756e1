package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/hecto/internal/log"
)

func execute(t *testing.T, args ...string) (options, string, error) {
	t.Helper()
	var got options
	cmd := newRootCmd(func(opts options, _ io.Writer) error {
		got = opts
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, out.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	opts, _, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, options{ui: uiTcell, logFile: "hecto.log"}, opts)
}

func TestRoot_FlagsAndPath(t *testing.T) {
	opts, _, err := execute(t, "--ui", "TEA", "--debug", "--log-file", "/tmp/h.log", "notes.txt")
	require.NoError(t, err)
	require.Equal(t, options{path: "notes.txt", ui: uiTea, debug: true, logFile: "/tmp/h.log"}, opts)

	opts, _, err = execute(t, "--debug", "--log-level", "WARN")
	require.NoError(t, err)
	require.Equal(t, log.LevelWarn, opts.logLevel)
}

func TestRoot_Environment(t *testing.T) {
	t.Setenv("HECTO_UI", "tea")
	t.Setenv("HECTO_DEBUG", "true")
	t.Setenv("HECTO_LOG_FILE", "env.log")
	t.Setenv("HECTO_LOG_LEVEL", "error")

	opts, _, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, options{ui: uiTea, debug: true, logFile: "env.log", logLevel: log.LevelError}, opts)

	// Flags win over the environment.
	opts, _, err = execute(t, "--ui", "tcell")
	require.NoError(t, err)
	require.Equal(t, uiTcell, opts.ui)
}

func TestRoot_Rejects(t *testing.T) {
	_, _, err := execute(t, "--ui", "gtk")
	require.ErrorContains(t, err, `unknown --ui "gtk"`)

	_, _, err = execute(t, "a.txt", "b.txt")
	require.Error(t, err)

	_, _, err = execute(t, "--debug", "--log-file", "")
	require.ErrorContains(t, err, "--log-file")

	_, _, err = execute(t, "--log-level", "trace")
	require.ErrorContains(t, err, `unknown log level "trace"`)
}

func TestRoot_Version(t *testing.T) {
	_, out, err := execute(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, "hecto version 0.1.0")
}

func TestRoot_HelpListsKeys(t *testing.T) {
	_, out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Keys: ctrl+s save, ctrl+q quit")
}
