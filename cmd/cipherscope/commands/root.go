package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cipherscope/cipherscope/pkg/appctx"
	"github.com/cipherscope/cipherscope/pkg/config"
	"github.com/cipherscope/cipherscope/pkg/logging"
)

const cliExecutable = "cipherscope"

// ErrUsage marks command-line misuse so main can map it to exit code 2.
var ErrUsage = errors.New("usage error")

// reportedError marks an error a command has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// Reported wraps err once it has been printed so main does not repeat it.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// WasReported tells whether err was already shown to the user.
func WasReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// NewRootCommand constructs the top-level cipherscope CLI command, wiring
// global flags, configuration, and logging.
func NewRootCommand() *cobra.Command {
	var verbosityCount int

	cmd := &cobra.Command{
		Use:   cliExecutable,
		Short: "cipherscope identifies classical cipher types from ciphertext statistics",
		Long: `cipherscope normalizes a ciphertext, extracts a statistical feature
vector, and ranks candidate classical cipher types by closeness to
reference profiles.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			manager := config.NewManager()
			if err := manager.Load(cmd.Flags()); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			cfg := manager.Get()

			if err := logging.ConfigureGlobalLogging(cfg.Log.Level); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			ctx := appctx.WithConfig(cmd.Context(), manager)
			cmd.SetContext(ctx)
			if root := cmd.Root(); root != nil && root != cmd {
				root.SetContext(ctx)
			}

			log.Debug().Str("log_level", cfg.Log.Level).Msg("configuration loaded")
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	cmd.PersistentFlags().CountVarP(&verbosityCount, "verbose", "v", "Increase logging verbosity (repeatable)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable ANSI colors")
	cmd.PersistentFlags().Bool("quiet", false, "Suppress summary output")
	cmd.PersistentFlags().String("catalog", "", "External cipher catalog JSON file")

	cmd.AddGroup(&cobra.Group{ID: "analysis", Title: "Analysis Commands"})
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands"})

	cmd.AddCommand(NewIdentifyCommand())
	cmd.AddCommand(NewStatsCommand())
	cmd.AddCommand(NewCatalogCommand())
	cmd.AddCommand(NewBenchmarkCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// currentConfig fetches the loaded configuration from the command context.
func currentConfig(cmd *cobra.Command) config.Config {
	if manager, ok := appctx.Config(cmd.Context()); ok {
		return manager.Get()
	}
	return config.DefaultConfig()
}
