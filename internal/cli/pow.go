package cli

import (
	"fmt"
	"math/big"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

const defaultMaxExponent = 1 << 16

func newPowCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pow <base> <exp>",
		Short: "Raise base to exp",
		Long: `Pow computes base**exp. Integer exponents are exact; any other exponent is
evaluated in complex128 and converted back, so the result carries float rounding.

Example:
  ratcalc pow 1+1j 8
  ratcalc pow 4 1/2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := ratcomplex.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse base: %w", err)
			}
			n, err := ratcomplex.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parse exponent: %w", err)
			}
			if err := checkExponent(n, o.maxExp); err != nil {
				return err
			}
			res, err := z.Pow(n)
			if err != nil {
				return err
			}
			o.log.Debug("pow", "base", z.Text(), "exp", n.Text(), "exact", isInteger(n))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "z = %s\n", o.render(z))
			fmt.Fprintf(w, "n = %s\n", o.render(n))
			fmt.Fprintf(w, "exact = %t\n", isInteger(n))
			fmt.Fprintf(w, "z^n = %s\n", o.render(res))
			fmt.Fprintf(w, "Re(z^n) = %s\n", res.Real().RatString())
			fmt.Fprintf(w, "Im(z^n) = %s\n", res.Imag().RatString())
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// isInteger reports whether p is a real integer small enough for the exact path.
func isInteger(p *ratcomplex.Complex) bool {
	re := p.Real()
	return p.IsReal() && re.IsInt() && re.Num().IsInt64()
}

// checkExponent rejects integer exponents whose exact power would be too large to
// compute. Non-integer exponents go through complex128 and are not limited.
func checkExponent(p *ratcomplex.Complex, limit int64) error {
	re := p.Real()
	if !p.IsReal() || !re.IsInt() {
		return nil
	}
	if new(big.Int).Abs(re.Num()).Cmp(big.NewInt(limit)) > 0 {
		return fmt.Errorf("exponent %s exceeds --max-exponent %d", re.RatString(), limit)
	}
	return nil
}
