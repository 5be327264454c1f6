package cli

import (
	"fmt"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

var binaryOps = map[string]func(x, y any) (*ratcomplex.Complex, error){
	"+":  ratcomplex.Add,
	"-":  ratcomplex.Sub,
	"*":  ratcomplex.Mul,
	"/":  ratcomplex.Quo,
	"**": ratcomplex.Pow,
}

func newEvalCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Evaluate a binary expression",
		Long: `Eval applies one of + - * / ** == to two complex rationals.

Put "--" before the operands when the first one starts with '-'.

Example:
  ratcalc eval 1/3-1/4j / -1/2j
  ratcalc eval -- -1/3 '**' -2
  ratcalc eval 1/2+1j == 0.5+1j`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, op, rhs := args[0], args[1], args[2]
			o.log.Debug("eval", "lhs", lhs, "op", op, "rhs", rhs)
			if op == "==" {
				eq, err := ratcomplex.Equal(lhs, rhs)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), eq)
				return nil
			}
			z, err := o.evaluate(lhs, op, rhs)
			if err != nil {
				return err
			}
			o.println(cmd.OutOrStdout(), z)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// evaluate applies a binary operator to two literals.
func (o *options) evaluate(lhs, op, rhs string) (*ratcomplex.Complex, error) {
	f, ok := binaryOps[op]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q (want + - * / **)", op)
	}
	if op == "**" {
		p, err := ratcomplex.Parse(rhs)
		if err != nil {
			return nil, err
		}
		if err := checkExponent(p, o.maxExp); err != nil {
			return nil, err
		}
	}
	return f(lhs, rhs)
}
