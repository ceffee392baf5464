package cli

import (
	"fmt"

	"token-recovery-dapp/internal/core/domain"

	"github.com/spf13/cobra"
)

func newOctasCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:     "octas <amount>",
		Short:   "Convert an APT amount to octas",
		Example: "  dapp octas 1.5\n  dapp octas --reverse 150000000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert := domain.ToOctas
			if reverse {
				convert = domain.FromOctas
			}
			out, err := convert(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "convert octas back to APT")
	return cmd
}
