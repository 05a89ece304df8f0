package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/internal/format"
	"github.com/cipherscope/cipherscope/pkg/analyzer"
)

// NewIdentifyCommand creates the command that ranks cipher-type candidates
// for a ciphertext.
func NewIdentifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identify",
		Short:   "Rank the most likely cipher types for a ciphertext",
		GroupID: "analysis",
		Args:    cobra.NoArgs,
		RunE:    runIdentify,
	}

	addInputFlags(cmd)
	cmd.Flags().IntP("number", "n", 5, "Number of ranked candidates to show")
	cmd.Flags().StringP("cipher", "c", "", "Cipher name to highlight in the ranking")
	cmd.Flags().Bool("json", false, "Output results in JSON format")

	return cmd
}

func runIdentify(cmd *cobra.Command, args []string) error {
	formatter := format.FromCommand(cmd)

	text, err := readInput(cmd)
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("number")
	if n < 1 {
		return fmt.Errorf("%w: %w", ErrUsage, analyzer.NewInvalidNError(n))
	}
	highlight, _ := cmd.Flags().GetString("cipher")

	a, err := newAnalyzer(cmd)
	if err != nil {
		_ = formatter.PrintFailure("load reference data", err, analyzer.Suggestions(err))
		return Reported(err)
	}

	if highlight != "" {
		if _, ok := a.ProfileSet().Get(highlight); !ok {
			_ = formatter.PrintWarning(fmt.Sprintf("unknown cipher %q, highlight ignored", highlight))
		}
	}

	// At info and above, show the basic statistics before the ranking
	if log.Logger.GetLevel() <= zerolog.InfoLevel {
		basic, berr := a.DisplayBasic(text)
		if berr == nil && formatter.Mode() == format.ModeTable {
			printBasicStats(cmd, basic)
		}
	}

	result, err := a.Identify(text, n, highlight)
	if err != nil {
		_ = formatter.PrintFailure("identify ciphertext", err, analyzer.Suggestions(err))
		return Reported(err)
	}

	_ = formatter.PrintWarning(result.Warning)

	if formatter.Mode() == format.ModeJSON {
		return formatter.PrintJSON(result)
	}

	fmt.Fprint(cmd.OutOrStdout(), format.RenderRanked(result.Candidates, formatter.ColorEnabled()))
	return formatter.PrintSummary(fmt.Sprintf("Analyzed %d letters, best match: %s", result.Length, result.Candidates[0].Cipher))
}

func printBasicStats(cmd *cobra.Command, basic *analyzer.BasicStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Length:          %d\n", basic.Length)
	fmt.Fprintf(out, "Unique letters:  %d\n", basic.UniqueLetters)
	missing := basic.MissingLetters
	if missing == "" {
		missing = "(none)"
	}
	fmt.Fprintf(out, "Missing letters: %s\n", missing)
	fmt.Fprintln(out)
}
