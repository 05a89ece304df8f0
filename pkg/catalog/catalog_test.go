package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherscope/cipherscope/pkg/profiles"
)

func TestLoadEmbeddedCoversAllProfiles(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cat)

	assert.Equal(t, len(profiles.KnownCiphers), cat.Len())
	for _, name := range profiles.KnownCiphers {
		meta, ok := cat.Get(name)
		require.True(t, ok, "missing catalog entry for %s", name)
		assert.NotEmpty(t, meta.Types, "cipher %s", name)
		assert.NotEmpty(t, meta.Size, "cipher %s", name)
	}
}

func TestLoadReturnsSameInstance(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestPrimaryType(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	meta, ok := cat.Get("Vigenere")
	require.True(t, ok)
	assert.Equal(t, meta.Types[0], cat.PrimaryType("Vigenere"))

	assert.Equal(t, Unknown, cat.PrimaryType("caesar"))
}

func TestTypesAndSizeUnknownFallback(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{Unknown}, cat.Types("caesar"))
	assert.Equal(t, Unknown, cat.Size("caesar"))
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrCatalogParse)
}

func TestLoadFileMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrCatalogParse)
}

func TestLoadFileMissingCipherEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Vigenere": {"types": ["periodic"], "size": "variable"}}`), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrCatalogParse)
	assert.Contains(t, err.Error(), "missing cipher")
}

func TestLoadFileInvalidSizeTag(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	// Rebuild the full catalog but corrupt one size value so validation,
	// not coverage, is what trips.
	entries := make(map[string]Metadata, cat.Len())
	for _, name := range profiles.KnownCiphers {
		meta, _ := cat.Get(name)
		entries[name] = meta
	}
	bad := entries["playfair"]
	bad.Size = "7x7"
	entries["playfair"] = bad

	data := marshalEntries(t, entries)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrCatalogParse)
	assert.Contains(t, err.Error(), "playfair")
}

func marshalEntries(t *testing.T, entries map[string]Metadata) []byte {
	t.Helper()
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	return data
}

func TestParseEmptyData(t *testing.T) {
	_, err := parse(nil)
	assert.ErrorIs(t, err, ErrCatalogParse)
}
