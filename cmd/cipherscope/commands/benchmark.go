package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/internal/format"
	"github.com/cipherscope/cipherscope/pkg/analyzer"
	"github.com/cipherscope/cipherscope/pkg/benchmark"
)

// NewBenchmarkCommand creates the command that measures identification
// accuracy over a labeled dataset.
func NewBenchmarkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "benchmark <dataset-file>",
		Short:   "Measure identification accuracy over a labeled dataset",
		Long: `Benchmark runs the identifier over every sample in a labeled dataset and
reports top-1 and top-5 accuracy, overall and per cipher. The dataset is
JSONL with {"ciphertype": ..., "ciphertext": ...} per line, or a YAML list
of the same shape.`,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE:    runBenchmark,
	}

	cmd.Flags().Bool("json", false, "Output the report in JSON format")
	cmd.Flags().Bool("per-cipher", false, "Include the per-cipher accuracy table")

	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	formatter := format.FromCommand(cmd)

	samples, err := benchmark.LoadDataset(args[0])
	if err != nil {
		_ = formatter.PrintFailure("load dataset", err, nil)
		return Reported(err)
	}

	a, err := newAnalyzer(cmd)
	if err != nil {
		_ = formatter.PrintFailure("load reference data", err, analyzer.Suggestions(err))
		return Reported(err)
	}

	report, err := benchmark.Run(a, args[0], samples)
	if err != nil {
		_ = formatter.PrintFailure("run benchmark", err, nil)
		return Reported(err)
	}

	if formatter.Mode() == format.ModeJSON {
		return formatter.PrintJSON(report)
	}

	rows := [][]string{
		{"Report", report.ReportID},
		{"Samples", fmt.Sprintf("%d", report.Total)},
		{"Skipped", fmt.Sprintf("%d", report.Skipped)},
		{"Top-1 accuracy", fmt.Sprintf("%.2f%%", report.Top1Accuracy*100)},
		{"Top-5 accuracy", fmt.Sprintf("%.2f%%", report.TopKAccuracy*100)},
		{"Duration", fmt.Sprintf("%dms", report.DurationMS)},
	}
	if err := formatter.PrintTable([]string{"Metric", "Value"}, rows); err != nil {
		return err
	}

	if perCipher, _ := cmd.Flags().GetBool("per-cipher"); perCipher {
		fmt.Fprintln(cmd.OutOrStdout())
		detail := make([][]string, 0, len(report.PerCipher))
		for _, acc := range report.PerCipher {
			detail = append(detail, []string{
				acc.Cipher,
				fmt.Sprintf("%d", acc.Total),
				fmt.Sprintf("%.2f%%", acc.Top1Rate*100),
				fmt.Sprintf("%.2f%%", acc.TopKRate*100),
			})
		}
		if err := formatter.PrintTable([]string{"Cipher", "Samples", "Top-1", "Top-5"}, detail); err != nil {
			return err
		}
	}

	return formatter.PrintSummary(fmt.Sprintf("Benchmark complete: %d/%d in top 5", report.TopKCount, report.Total))
}
