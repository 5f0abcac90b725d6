package cmd

import (
	"log/slog"

	"github.com/govalues/fixed/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	logger  = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "fixcalc",
	Short: "Deterministic fixed-point calculator",
	Long: `fixcalc evaluates expressions with Q21.10 fixed-point numbers.
Every result is bit-exact across platforms.

Commands:
  eval     - evaluate prefix expressions
  table    - print the lookup tables
  vectors  - generate test vectors
  verify   - verify test vectors`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in sweep)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig returns the configuration from --config or the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		logger.Debug("using default config")
		return config.Default(), nil
	}
	logger.Debug("loading config", "path", cfgFile)
	return config.Load(cfgFile)
}
