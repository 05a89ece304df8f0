package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/internal/format"
	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/catalog"
)

// NewCatalogCommand creates the command that lists or looks up cipher
// metadata.
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog [cipher]",
		Short:   "List known cipher types or show one cipher's metadata",
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCatalog,
	}

	cmd.Flags().String("type", "", "Only list ciphers with this primary or secondary type")
	cmd.Flags().Bool("json", false, "Output catalog data in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	formatter := format.FromCommand(cmd)

	a, err := newAnalyzer(cmd)
	if err != nil {
		_ = formatter.PrintFailure("load reference data", err, analyzer.Suggestions(err))
		return Reported(err)
	}
	cat := a.Catalog()

	if len(args) == 1 {
		return printCatalogEntry(formatter, cat, args[0])
	}

	typeFilter, _ := cmd.Flags().GetString("type")
	rows := make([][]string, 0, cat.Len())
	for _, name := range a.ProfileSet().Names() {
		meta, _ := cat.Get(name)
		if typeFilter != "" && !containsType(meta, typeFilter) {
			continue
		}
		rows = append(rows, []string{
			name,
			strings.Join(meta.Types, ", "),
			strings.Join(meta.Subtypes, ", "),
			meta.Size,
		})
	}
	if len(rows) == 0 {
		return fmt.Errorf("no ciphers with type %q", typeFilter)
	}
	return formatter.PrintTable([]string{"Cipher", "Types", "Subtypes", "Size"}, rows)
}

func printCatalogEntry(formatter format.Formatter, cat *catalog.Catalog, name string) error {
	meta, ok := cat.Get(name)
	if !ok {
		return formatter.PrintTable(
			[]string{"Cipher", "Type"},
			[][]string{{name, catalog.Unknown}},
		)
	}

	if formatter.Mode() == format.ModeJSON {
		return formatter.PrintJSON(map[string]catalog.Metadata{name: meta})
	}

	rows := [][]string{
		{"Types", strings.Join(meta.Types, ", ")},
		{"Subtypes", strings.Join(meta.Subtypes, ", ")},
		{"Subtypes2", strings.Join(meta.Subtypes2, ", ")},
		{"Table", strings.Join(meta.Table, ", ")},
		{"Size", meta.Size},
		{"Notes", meta.Notes},
	}
	return formatter.PrintTable([]string{name, ""}, rows)
}

func containsType(meta catalog.Metadata, want string) bool {
	for _, t := range meta.Types {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	for _, t := range meta.Subtypes {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
