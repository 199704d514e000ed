package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ResolvesCircuitPath(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/bell.yaml")
	require.NoError(t, err)

	assert.Equal(t, "bell", s.Name)
	assert.Equal(t, filepath.Join("testdata", "circuits", "bell.yaml"), s.Circuit)
	assert.Equal(t, `https://algassert.com/quirk#circuit={"cols":[["H"],["•","X"]]}`, s.Expect.URL)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MissingCircuitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: s
description: d
circuit: missing.yaml
expect:
  error: NOT_CIRCUIT
`), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit file not found")
}

func TestParseScenario_Inline(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: inline
description: "inline circuit"
inline: |
  qubits: 1
  ops:
    - {gate: h, qubits: [0]}
expect:
  cols: [["H"]]
`))
	require.NoError(t, err)

	assert.Contains(t, s.Inline, "gate: h")
	assert.Equal(t, []any{[]any{"H"}}, s.Expect.Cols)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: a\ndescription: b\ninline: x\nexpects: {}\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			yaml:    "description: b\ninline: x\nexpect: {error: NOT_CIRCUIT}\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: a\ninline: x\nexpect: {error: NOT_CIRCUIT}\n",
			wantErr: "description is required",
		},
		{
			name:    "no circuit",
			yaml:    "name: a\ndescription: b\nexpect: {error: NOT_CIRCUIT}\n",
			wantErr: "one of circuit or inline is required",
		},
		{
			name:    "both circuit and inline",
			yaml:    "name: a\ndescription: b\ncircuit: c.yaml\ninline: x\nexpect: {error: NOT_CIRCUIT}\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "empty expect",
			yaml:    "name: a\ndescription: b\ninline: x\nexpect: {}\n",
			wantErr: "one of url, cols or error is required",
		},
		{
			name:    "error with url",
			yaml:    "name: a\ndescription: b\ninline: x\nexpect: {error: NOT_CIRCUIT, url: u}\n",
			wantErr: "error excludes url and cols",
		},
		{
			name:    "unknown error code",
			yaml:    "name: a\ndescription: b\ninline: x\nexpect: {error: BOOM}\n",
			wantErr: `unknown error code "BOOM"`,
		},
		{
			name:    "cols not a list",
			yaml:    "name: a\ndescription: b\ninline: x\nexpect: {cols: H}\n",
			wantErr: "cols must be a list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDir_SortedAndFiltered(t *testing.T) {
	all, err := LoadDir("testdata/scenarios", "")
	require.NoError(t, err)

	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"bell", "parallel", "rotation", "swap", "toffoli"}, names)

	some, err := LoadDir("testdata/scenarios", "*o*")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "rotation", some[0].Name)
	assert.Equal(t, "toffoli", some[1].Name)
}

func TestLoadDir_BadFilter(t *testing.T) {
	_, err := LoadDir("testdata/scenarios", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}
