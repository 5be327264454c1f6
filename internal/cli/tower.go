package cli

import (
	"fmt"
	"strconv"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

func newTowerCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tower <base> <height>",
		Short: "Evaluate a power tower b^(b^(...^b)) of integer height",
		Long: `Tower computes T_b(n) = f^n(1) with f(z) = b^z, so T_b(0) = 1, T_b(1) = b,
T_b(2) = b^b, and so on (right-associated).

Every level whose exponent is a real integer is exact. Once an exponent is not
an integer the remaining levels are evaluated in complex128.

Example:
  ratcalc tower 2 4
  ratcalc tower 1/2 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ratcomplex.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse base: %w", err)
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid height %q; need a non-negative integer", args[1])
			}
			res, exact, err := powerTower(b, n, o.maxExp)
			if err != nil {
				return err
			}
			method := "exact integer tower"
			if !exact {
				method = "complex128 above the first non-integer level"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "method: %s\n", method)
			fmt.Fprintf(w, "T_b(n) with b=%s, n=%d\n", o.render(b), n)
			fmt.Fprintf(w, "result: %s\n", o.render(res))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// powerTower computes f^n(1) for f(z) = b^z. exact is false once any level had to
// use a non-integer exponent.
func powerTower(b *ratcomplex.Complex, n int, maxExp int64) (res *ratcomplex.Complex, exact bool, err error) {
	x := ratcomplex.MustNew(1, 0)
	exact = true
	for i := 0; i < n; i++ {
		if err := checkExponent(x, maxExp); err != nil {
			return nil, false, fmt.Errorf("level %d: %w", i+1, err)
		}
		if !isInteger(x) {
			exact = false
		}
		x, err = b.Pow(x)
		if err != nil {
			return nil, false, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return x, exact, nil
}
