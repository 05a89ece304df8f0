package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/version"
)

const cliSample = "LWKLQNWKDWLVKDOOQHYHUVHHDSRHPDVORYHOBDVDWUHH"

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, cliExecutable)
	assert.Contains(t, stdout, "identify")
	assert.Contains(t, stdout, "Analysis Commands")
}

func TestIdentifyTableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "identify", "--text", cliSample, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RANK")
	assert.Contains(t, stdout, "CIPHER")
	assert.Contains(t, stdout, "best match:")
}

func TestIdentifyJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "identify", "--text", cliSample, "--json", "-n", "3")
	require.NoError(t, err)

	var result analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, len(strings.TrimSpace(cliSample)), result.Length)
	assert.Len(t, result.Candidates, 3)
	assert.Equal(t, 1, result.Candidates[0].Rank)
}

func TestIdentifyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cipher.txt")
	require.NoError(t, os.WriteFile(path, []byte(cliSample), 0o644))

	stdout, _, err := executeCommand(t, "identify", "--file", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RANK")
}

func TestIdentifyRejectsBothSources(t *testing.T) {
	_, _, err := executeCommand(t, "identify", "--text", cliSample, "--file", "x.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestIdentifyRequiresASource(t *testing.T) {
	_, _, err := executeCommand(t, "identify")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestIdentifyInvalidNumber(t *testing.T) {
	_, _, err := executeCommand(t, "identify", "--text", cliSample, "-n", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, analyzer.ErrInvalidN)
}

func TestIdentifyUnknownHighlightWarns(t *testing.T) {
	_, stderr, err := executeCommand(t, "identify", "--text", cliSample, "--cipher", "caesar", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stderr, "unknown cipher")
}

func TestIdentifyShortInputWarnsOnStderr(t *testing.T) {
	_, stderr, err := executeCommand(t, "identify", "--text", "SHORTTEXT", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning:")
}

func TestIdentifyEmptyInputFails(t *testing.T) {
	_, _, err := executeCommand(t, "identify", "--text", "1234 !!!")
	require.Error(t, err)
	assert.True(t, WasReported(err))
	assert.Equal(t, 3, analyzer.ExitCode(err))
}

func TestStatsTableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "stats", "--text", cliSample, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "IoC")
	assert.Contains(t, stdout, "BinaryRandom")
}

func TestStatsJSONKeys(t *testing.T) {
	stdout, _, err := executeCommand(t, "stats", "--text", cliSample, "--json")
	require.NoError(t, err)

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Len(t, decoded, 11)
	for _, key := range []string{"IoC", "MIC", "MKA", "DIC", "EDI", "LR", "ROD", "LDI", "SDD", "Shannon", "BinaryRandom"} {
		assert.Contains(t, decoded, key)
	}
}

func TestCatalogList(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Vigenere")
	assert.Contains(t, stdout, "playfair")
}

func TestCatalogSingleEntry(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "playfair", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Types")
	assert.Contains(t, stdout, "5x5")
}

func TestCatalogUnknownEntry(t *testing.T) {
	stdout, _, err := executeCommand(t, "catalog", "caesar", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "unknown")
}

func TestCatalogTypeFilterNoMatches(t *testing.T) {
	_, _, err := executeCommand(t, "catalog", "--type", "quantum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantum")
}

func TestVersionShort(t *testing.T) {
	stdout, _, err := executeCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version, strings.TrimSpace(stdout))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, err := executeCommand(t, "identify", "--bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestBenchmarkCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.jsonl")
	line := `{"ciphertype": "Vigenere", "ciphertext": "` + cliSample + `"}`
	require.NoError(t, os.WriteFile(path, []byte(line+"\n"+line+"\n"), 0o644))

	stdout, _, err := executeCommand(t, "benchmark", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Top-1")
}
