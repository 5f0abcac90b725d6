package cmd

import (
	"fmt"
	"os"

	"github.com/govalues/fixed/internal/vectors"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify test vectors",
	Long: `Recomputes every vector in a file produced by "fixcalc vectors"
and reports the ones whose result differs on this machine.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open vectors: %w", err)
	}
	defer in.Close()

	f, err := vectors.Read(in)
	if err != nil {
		return err
	}

	mismatches := vectors.Verify(f)
	for _, m := range mismatches {
		fmt.Fprintln(cmd.OutOrStdout(), m)
		logger.Debug("mismatch", "diff", m.Diff)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%v of %v vectors mismatch", len(mismatches), len(f.Cases))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "all %v vectors match\n", len(f.Cases))
	return nil
}
