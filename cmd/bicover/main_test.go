// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/run"
)

func TestSolve_MissingConfigFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"solve", "does/not/exist.yaml"})
	require.Error(t, cmd.Execute())
}

func TestSolve_RunFailuresDoNotFailCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "runs.yaml")
	// The graph path does not exist, so the run ends in an error report
	// while the command itself succeeds.
	require.NoError(t, os.WriteFile(cfg, []byte(
		"runs:\n  - name: broken\n    graph: missing.txt\n"), 0o644))

	out := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"solve", cfg})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "broken")
	require.Contains(t, out.String(), string(run.StateError))
}

func TestPrintReport(t *testing.T) {
	out := new(bytes.Buffer)
	printReport(out, []run.Report{{
		Name:      "grid9-natural",
		Model:     "natural",
		LB:        2,
		UB:        3,
		Status:    run.StateOptimal,
		Objective: 2,
		WallTime:  1500 * time.Millisecond,
	}})
	require.Contains(t, out.String(), "NAME")
	require.Contains(t, out.String(), "grid9-natural")
	require.Contains(t, out.String(), "optimal")
}
