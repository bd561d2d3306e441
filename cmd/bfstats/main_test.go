package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opswiki/bfstats/internal/cli"
)

func TestRun_HelpExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error for -h")
	assert.Contains(t, out.String(), "bfstats, version 1.0")
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_HelpWinsOverOtherFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-i", "-h"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_NoArgumentsPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_MissingFlagArgumentIsUsageError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-c", "current.html", "-t"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "bfstats")
	assert.Contains(t, exitErr.Message, "-t")
	assert.Contains(t, out.String(), "usage:", "usage must accompany the error")
}

func TestRun_UnknownFlagsAreIgnored(t *testing.T) {
	t.Parallel()

	// An unknown flag with no input files behaves like no arguments.
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"--definitely-not-a-flag"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "usage:")
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	report := filepath.Join(dir, "deploy-20140131.html")
	targets := filepath.Join(dir, "targets.csv")
	require.NoError(t, os.WriteFile(report, []byte("<tr><td>OS</td><td>40</td></tr>\n"), 0o644))
	require.NoError(t, os.WriteFile(targets, []byte("OS,100\n"), 0o644))

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(out, logs, []string{"-c", report, "-t", targets})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "|| Nodes")
	assert.Contains(t, out.String(), "*40*")
	assert.Contains(t, out.String(), "|| Date || OS || TOTAL ||")
}

func TestRun_UnreadableSingleFileReportFails(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-i", filepath.Join(t.TempDir(), "absent.html")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input data")
}
