package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/cmd/cipherscope/internal/format"
	"github.com/cipherscope/cipherscope/pkg/version"
)

// NewVersionCommand creates the command that prints build metadata.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Show cipherscope version information",
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    runVersion,
	}

	cmd.Flags().Bool("short", false, "Print only the version number")
	cmd.Flags().Bool("json", false, "Output version information in JSON format")

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return nil
	}

	formatter := format.FromCommand(cmd)
	if formatter.Mode() == format.ModeJSON {
		return formatter.PrintJSON(version.Get())
	}

	fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	return nil
}
