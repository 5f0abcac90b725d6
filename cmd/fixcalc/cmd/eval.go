package cmd

import (
	"fmt"

	"github.com/govalues/fixed/internal/calc"
	"github.com/govalues/fixed/locale"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	evalRaw    bool
	evalLocale string
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>...",
	Short: "Evaluate prefix expressions",
	Long: `Evaluates expressions written in prefix (Polish) notation.
Each argument is a separate expression, angles are in degrees.

Examples:
  fixcalc eval "* 10 + 1.25 sin 30"
  fixcalc eval "atan2 1 -1" "pow 2 0.5"
  fixcalc eval --locale de "/ 1 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalRaw, "raw", false, "print raw values next to the results")
	evalCmd.Flags().StringVar(&evalLocale, "locale", "", "format results for a BCP 47 language tag")
}

func runEval(cmd *cobra.Command, args []string) error {
	sym := locale.Canonical
	if evalLocale != "" {
		tag, err := language.Parse(evalLocale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", evalLocale, err)
		}
		var ok bool
		sym, ok = locale.Lookup(tag)
		if !ok {
			logger.Warn("locale does not use ASCII digits, using canonical format", "locale", tag)
		}
	}

	for _, expr := range args {
		d, err := calc.Eval(expr)
		if err != nil {
			return fmt.Errorf("evaluating %q: %w", expr, err)
		}
		logger.Debug("evaluated", "expr", expr, "raw", d.Raw())
		if evalRaw {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", sym.Format(d), d.Raw())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), sym.Format(d))
		}
	}
	return nil
}
