package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/pkg/analyzer"
)

// addInputFlags registers the ciphertext source flags shared by analysis
// commands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "Inline ciphertext")
	cmd.Flags().StringP("file", "f", "", "Ciphertext file (UTF-8)")
}

// readInput resolves the ciphertext from --text or --file. Exactly one
// source must be given.
func readInput(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")

	switch {
	case text != "" && file != "":
		return "", fmt.Errorf("%w: only one of --text or --file may be provided", ErrUsage)
	case text != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read ciphertext file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: either --text or --file must be provided", ErrUsage)
	}
}

// newAnalyzer builds an Analyzer from the loaded configuration plus the
// --catalog override.
func newAnalyzer(cmd *cobra.Command) (*analyzer.Analyzer, error) {
	cfg := currentConfig(cmd)

	opts := []analyzer.Option{analyzer.WithLengthFloor(cfg.Analysis.LengthFloor)}
	catalogPath := cfg.Analysis.CatalogPath
	if flagPath, _ := cmd.Flags().GetString("catalog"); flagPath != "" {
		catalogPath = flagPath
	}
	if catalogPath != "" {
		opts = append(opts, analyzer.WithCatalogFile(catalogPath))
	}
	return analyzer.New(opts...)
}
