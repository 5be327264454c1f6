package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	logLevel string
	maxDen   int64
	maxExp   int64
	repr     bool

	log *slog.Logger
}

// NewRootCmd builds a fresh ratcalc command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "ratcalc",
		Short: "Exact complex rational calculator",
		Long: `ratcalc evaluates expressions over complex numbers with exact rational parts.

Numbers are written like "1/3-1/4j", "-11/10j+2.1", "1.2-1/3*1j" or "5/2".
"1/3j" means (1/3)*j.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.maxDen < 0 {
				return fmt.Errorf("--max-denominator must be >= 0, got %d", o.maxDen)
			}
			if o.maxExp < 0 {
				return fmt.Errorf("--max-exponent must be >= 0, got %d", o.maxExp)
			}
			o.log = newLogger(cmd.ErrOrStderr(), o.logLevel)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.logLevel, "log-level", LevelWarn, "log level: debug|info|warn|error")
	pf.Int64Var(&o.maxDen, "max-denominator", ratcomplex.DefaultMaxDenominator, "limit denominators when printing; 0 prints exact values")
	pf.Int64Var(&o.maxExp, "max-exponent", defaultMaxExponent, "largest integer exponent evaluated exactly")
	pf.BoolVar(&o.repr, "repr", false, "print values as ComplexRational('<re>','<im>')")

	root.AddCommand(
		newEvalCmd(o),
		newShowCmd(o),
		newSplitCmd(o),
		newPowCmd(o),
		newTowerCmd(o),
		newBatchCmd(o),
	)
	return root
}

// Execute runs ratcalc with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ratcalc:", err)
		os.Exit(1)
	}
}

// render formats z according to --repr and --max-denominator.
func (o *options) render(z *ratcomplex.Complex) string {
	if o.repr {
		return z.Repr()
	}
	if o.maxDen == 0 {
		return z.Text()
	}
	l, err := z.LimitDenominator(o.maxDen)
	if err != nil {
		// maxDen was validated in PersistentPreRunE
		return z.Text()
	}
	return l.Text()
}

func (o *options) println(w io.Writer, z *ratcomplex.Complex) {
	fmt.Fprintln(w, o.render(z))
}
