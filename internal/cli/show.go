package cli

import (
	"errors"
	"fmt"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

func newShowCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <z>",
		Short: "Print a value and its derived quantities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := ratcomplex.Parse(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value:      %s\n", o.render(z))
			fmt.Fprintf(w, "repr:       %s\n", z.Repr())
			fmt.Fprintf(w, "conjugate:  %s\n", o.render(z.Conj()))
			fmt.Fprintf(w, "|z|^2:      %s\n", z.MagnitudeSquared().RatString())
			fmt.Fprintf(w, "|z|:        %v\n", z.Abs())
			r, err := z.Reciprocal()
			switch {
			case errors.Is(err, ratcomplex.ErrDivisionByZero):
				fmt.Fprintln(w, "reciprocal: undefined")
			case err != nil:
				return err
			default:
				fmt.Fprintf(w, "reciprocal: %s\n", o.render(r))
			}
			fmt.Fprintf(w, "complex128: %v\n", z.Complex128())
			fmt.Fprintf(w, "hash:       %016x\n", z.Hash())
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
