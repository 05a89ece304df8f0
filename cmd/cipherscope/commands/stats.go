package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/internal/format"
	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/stats"
)

// NewStatsCommand creates the command that prints the raw feature vector
// for a ciphertext.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Compute the statistical feature vector for a ciphertext",
		GroupID: "analysis",
		Args:    cobra.NoArgs,
		RunE:    runStats,
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("json", false, "Output the feature vector in JSON format")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	formatter := format.FromCommand(cmd)

	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	a, err := newAnalyzer(cmd)
	if err != nil {
		_ = formatter.PrintFailure("load reference data", err, analyzer.Suggestions(err))
		return Reported(err)
	}

	vector, warning, err := a.Stats(text)
	if err != nil {
		_ = formatter.PrintFailure("compute statistics", err, analyzer.Suggestions(err))
		return Reported(err)
	}

	_ = formatter.PrintWarning(warning)

	if formatter.Mode() == format.ModeJSON {
		return formatter.PrintJSON(vector)
	}

	values := vector.Values()
	rows := make([][]string, 0, stats.NumFeatures)
	for i, name := range stats.FeatureNames {
		rows = append(rows, []string{name, fmt.Sprintf("%.4f", values[i])})
	}
	return formatter.PrintTable([]string{"Feature", "Value"}, rows)
}
