package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "quirkurl", cmd.Use)
	assert.Contains(t, cmd.Long, "Quirk")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"convert", "validate", "test", "history", "gates"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("db"))
}

func TestConvertCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	convertCmd, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)

	outputFlag := convertCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	require.NotNil(t, convertCmd.Flags().Lookup("grid"))
	require.NotNil(t, convertCmd.Flags().Lookup("history"))
}

func TestRootInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	_, _, err := execute(cmd, "--format", "xml", "gates")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootConvertEndToEnd(t *testing.T) {
	cmd := NewRootCommand()
	out, _, err := execute(cmd, "--config", writeConfig(t, ""), "convert", "testdata/bell.yaml")
	require.NoError(t, err)
	assert.Equal(t, "https://algassert.com/quirk#circuit={\"cols\":[[\"H\"],[\"•\",\"X\"]]}\n", out)
}

func TestRootConfigSuppliesFormat(t *testing.T) {
	cfg := writeConfig(t, "format = \"json\"\n")

	cmd := NewRootCommand()
	out, _, err := execute(cmd, "--config", cfg, "gates")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
}

func TestRootFlagBeatsConfig(t *testing.T) {
	cfg := writeConfig(t, "format = \"json\"\n")

	cmd := NewRootCommand()
	out, _, err := execute(cmd, "--config", cfg, "--format", "text", "gates")
	require.NoError(t, err)
	assert.Contains(t, out, "Rzft")
	assert.NotContains(t, out, `"status"`)
}

func TestRootVerboseLogsToStderr(t *testing.T) {
	cmd := NewRootCommand()
	out, errOut, err := execute(cmd, "--config", writeConfig(t, ""), "-v", "convert", "testdata/bell.yaml")
	require.NoError(t, err)
	assert.NotContains(t, out, "layout complete")
	assert.Contains(t, errOut, "layout complete")
}

func TestRootBadConfig(t *testing.T) {
	cmd := NewRootCommand()
	_, _, err := execute(cmd, "--config", filepath.Join(t.TempDir(), "missing.toml"), "gates")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// writeConfig writes a TOML config to a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quirkurl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
