package cli

import (
	"fmt"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/spf13/cobra"
)

func newSplitCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <z>",
		Short: "Show how a literal splits into real and imaginary parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, im := ratcomplex.SplitComplexString(args[0])
			o.log.Debug("split", "in", args[0], "re", re, "im", im)
			fmt.Fprintf(cmd.OutOrStdout(), "re: %s\nim: %s\n", re, im)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
