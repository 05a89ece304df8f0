package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
)

const benchText = "WKHTXLFNEURZQIRAMXPSVRYHUWKHODCBGRJDQGWKHQVRPHPRUHOHWWHUVIRUJRRGPHDVXUH"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDatasetJSONL(t *testing.T) {
	path := writeFile(t, "set.jsonl",
		`{"ciphertype": "Vigenere", "ciphertext": "ABCDEF"}

{"ciphertype": "playfair", "ciphertext": "GHIJKL"}
`)

	samples, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "Vigenere", samples[0].CipherType)
	assert.Equal(t, "GHIJKL", samples[1].Ciphertext)
}

func TestLoadDatasetJSONLBadLine(t *testing.T) {
	path := writeFile(t, "set.jsonl", `{"ciphertype": "Vigenere"`)

	_, err := LoadDataset(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadDatasetYAML(t *testing.T) {
	path := writeFile(t, "set.yaml", `
- ciphertype: Vigenere
  ciphertext: ABCDEF
- ciphertype: bifid
  ciphertext: GHIJKL
`)

	samples, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "bifid", samples[1].CipherType)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestRunCountsAndRates(t *testing.T) {
	a, err := analyzer.New()
	require.NoError(t, err)

	samples := []Sample{
		{CipherType: "Vigenere", Ciphertext: benchText},
		{CipherType: "playfair", Ciphertext: benchText},
		{CipherType: "Vigenere", Ciphertext: benchText},
	}

	report, err := Run(a, "unit", samples)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, "unit", report.Dataset)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 0, report.Skipped)
	assert.GreaterOrEqual(t, report.TopKCount, report.Top1Count)
	assert.InDelta(t, float64(report.Top1Count)/3.0, report.Top1Accuracy, 1e-12)
	assert.InDelta(t, float64(report.TopKCount)/3.0, report.TopKAccuracy, 1e-12)

	require.Len(t, report.PerCipher, 2)
	assert.Equal(t, "Vigenere", report.PerCipher[0].Cipher)
	assert.Equal(t, "playfair", report.PerCipher[1].Cipher)
	assert.Equal(t, 2, report.PerCipher[0].Total)
}

func TestRunSkipsUnnormalizableSamples(t *testing.T) {
	a, err := analyzer.New()
	require.NoError(t, err)

	samples := []Sample{
		{CipherType: "Vigenere", Ciphertext: "12345 !!!"},
		{CipherType: "Vigenere", Ciphertext: benchText},
	}

	report, err := Run(a, "unit", samples)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Total)
}

func TestRunEmptyDataset(t *testing.T) {
	a, err := analyzer.New()
	require.NoError(t, err)

	_, err = Run(a, "unit", nil)
	assert.Error(t, err)
}

func TestRunAllSamplesSkipped(t *testing.T) {
	a, err := analyzer.New()
	require.NoError(t, err)

	_, err = Run(a, "unit", []Sample{{CipherType: "Vigenere", Ciphertext: "0000"}})
	assert.Error(t, err)
}
