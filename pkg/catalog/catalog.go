// Package catalog maps cipher names to display metadata. The catalog does
// not participate in scoring.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/cipherscope/cipherscope/pkg/profiles"
)

//go:embed data/cipher_types.json
var embeddedCatalogJSON []byte

// Unknown is returned for lookups on names the catalog does not carry.
const Unknown = "unknown"

// ErrCatalogParse indicates the catalog JSON is malformed or missing a
// required cipher entry. Fatal at startup.
var ErrCatalogParse = errors.New("catalog parse error")

// Metadata describes one cipher type for display purposes.
type Metadata struct {
	Types     []string `json:"types" validate:"required,min=1,dive,required"`
	Subtypes  []string `json:"subtypes"`
	Subtypes2 []string `json:"subtypes2"`
	Table     []string `json:"table"`
	Size      string   `json:"size" validate:"required,oneof=5x5 6x6 10x10 variable fixed"`
	Notes     string   `json:"notes"`
}

// Catalog is the immutable name-to-metadata mapping. Construct via Load or
// LoadFile before any analysis begins and treat as read-only.
type Catalog struct {
	entries map[string]Metadata
}

var (
	catalogOnce sync.Once
	catalogInst *Catalog
	catalogErr  error
)

// Load returns the embedded catalog, parsing it on first use.
func Load() (*Catalog, error) {
	catalogOnce.Do(func() {
		catalogInst, catalogErr = parse(embeddedCatalogJSON)
	})
	if catalogErr != nil {
		return nil, catalogErr
	}
	return catalogInst, nil
}

// LoadFile parses a catalog from an external JSON file, overriding the
// embedded data for this Catalog instance only.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCatalogParse, path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: catalog data is empty", ErrCatalogParse)
	}
	var entries map[string]Metadata
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", ErrCatalogParse, err)
	}

	validate := validator.New()
	for _, name := range profiles.KnownCiphers {
		entry, ok := entries[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing cipher %q", ErrCatalogParse, name)
		}
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("%w: cipher %q: %v", ErrCatalogParse, name, err)
		}
	}
	return &Catalog{entries: entries}, nil
}

// Get returns the metadata for a cipher name.
func (c *Catalog) Get(name string) (Metadata, bool) {
	m, ok := c.entries[name]
	return m, ok
}

// PrimaryType returns the first declared type for a cipher, or Unknown.
func (c *Catalog) PrimaryType(name string) string {
	m, ok := c.entries[name]
	if !ok || len(m.Types) == 0 {
		return Unknown
	}
	return m.Types[0]
}

// Types returns all declared types for a cipher, or [Unknown].
func (c *Catalog) Types(name string) []string {
	m, ok := c.entries[name]
	if !ok || len(m.Types) == 0 {
		return []string{Unknown}
	}
	return m.Types
}

// Size returns the size tag for a cipher, or Unknown.
func (c *Catalog) Size(name string) string {
	m, ok := c.entries[name]
	if !ok || m.Size == "" {
		return Unknown
	}
	return m.Size
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
