package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosDir = "../harness/testdata/scenarios"

func TestTestCommandMissingArgs(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	_, _, err := execute(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentDir(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	_, _, err := execute(cmd, "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyDir(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	out, _, err := execute(cmd, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandPasses(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	out, _, err := execute(cmd, scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "bell")
	assert.Contains(t, out, "5 passed, 0 failed, 5 total")
}

func TestTestCommandJSONWithFilter(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "json"})
	out, _, err := execute(cmd, scenariosDir, "--filter", "b*")
	require.NoError(t, err)

	var result TestResult
	decodeData(t, decodeResponse(t, out), &result)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Passed)
	require.Len(t, result.Scenarios, 1)
	assert.Equal(t, "bell", result.Scenarios[0].Name)
	assert.Equal(t, bellURL, result.Scenarios[0].URL)
}

func TestTestCommandFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(`
name: wrong
description: "expects the wrong column"
inline: |
  qubits: 1
  ops:
    - {gate: h, qubits: [0]}
expect:
  cols: [["X"]]
`), 0o644))

	cmd := NewTestCommand(&RootOptions{Format: "text"})
	out, _, err := execute(cmd, dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "cols mismatch")
	assert.Contains(t, out, "0 passed, 1 failed, 1 total")
}

func TestTestCommandMalformedScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: bad\n"), 0o644))

	cmd := NewTestCommand(&RootOptions{Format: "text"})
	_, _, err := execute(cmd, dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load scenarios")
}

func TestTestCommandGolden(t *testing.T) {
	golden := t.TempDir()

	// Update writes one golden file per scenario.
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	_, _, err := execute(cmd, scenariosDir, "--golden", golden, "--update")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(golden, "bell.golden"))
	require.NoError(t, err)
	assert.Equal(t, bellURL, string(data))

	data, err = os.ReadFile(filepath.Join(golden, "swap.golden"))
	require.NoError(t, err)
	assert.Equal(t, "error: UNSUPPORTED_GATE", string(data))

	// A second run compares against them.
	cmd = NewTestCommand(&RootOptions{Format: "text"})
	_, _, err = execute(cmd, scenariosDir, "--golden", golden)
	require.NoError(t, err)

	// A stale golden file fails.
	require.NoError(t, os.WriteFile(filepath.Join(golden, "bell.golden"), []byte("stale"), 0o644))
	cmd = NewTestCommand(&RootOptions{Format: "text"})
	out, _, err := execute(cmd, scenariosDir, "--golden", golden)
	require.Error(t, err)
	assert.Contains(t, out, "golden mismatch")
}

func TestTestCommandUpdateNeedsGolden(t *testing.T) {
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	_, _, err := execute(cmd, scenariosDir, "--update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--update requires --golden")
}
