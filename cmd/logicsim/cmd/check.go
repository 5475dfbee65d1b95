package cmd

import (
	"fmt"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <netlist>",
		Short: "Report inputs driven by more than one output",
		Long: `Load a circuit and report every input node that is wired to more than one
output node. Such inputs take the value of the last wire added, which is
rarely intended.

Examples:
  logicsim check halfadder.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0], false)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			err = c.Check()
			var de *logicsim.DriverError
			if errors.As(err, &de) {
				for _, dc := range de.Conflicts {
					fmt.Fprintf(w, "%s: driven by %d outputs\n", dc.Input, len(dc.Drivers))
				}
				return errors.Wrap(err, args[0])
			}
			fmt.Fprintf(w, "%s: ok, %d components, %d wires\n", args[0], c.Size(), len(c.Wires()))
			return nil
		},
	}
}
