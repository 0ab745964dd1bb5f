package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avdva/apdecimal/internal/calc"
)

// List returns the command, that prints all the operations.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range calc.Names() {
				op, err := calc.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", op.Name, op.Arity, op.Help)
			}
			return w.Flush()
		},
	}
}
