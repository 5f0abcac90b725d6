package cmd

import (
	"fmt"
	"os"

	"github.com/govalues/fixed/internal/vectors"
	"github.com/spf13/cobra"
)

var vectorsOut string

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Generate test vectors",
	Long: `Evaluates the configured functions over the configured sweep and
writes the raw results to a YAML file.

Examples:
  fixcalc vectors
  fixcalc vectors --config sweep.toml --out vectors.yaml`,
	Args: cobra.NoArgs,
	RunE: runVectors,
}

func init() {
	rootCmd.AddCommand(vectorsCmd)

	vectorsCmd.Flags().StringVarP(&vectorsOut, "out", "o", "", "output file (default: output path from config)")
}

func runVectors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := vectorsOut
	if path == "" {
		path = cfg.Output.Path
	}

	logger.Debug("generating vectors",
		"start", cfg.Sweep.Start,
		"stop", cfg.Sweep.Stop,
		"step", cfg.Sweep.Step,
		"functions", cfg.Sweep.Functions,
	)
	f, err := vectors.Generate(cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := vectors.Write(out, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("vectors written", "path", path, "cases", len(f.Cases))
	fmt.Fprintf(cmd.OutOrStdout(), "%v vectors written to %v\n", len(f.Cases), path)
	return nil
}
