package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	var (
		sets  []string
		ticks int
	)
	cmd := &cobra.Command{
		Use:   "run <netlist>",
		Short: "Simulate a circuit and print its bulbs",
		Long: `Set switches, run the simulation until the circuit settles or the tick
budget is exhausted, then print the state of every bulb.

Examples:
  logicsim run halfadder.net
  logicsim run --set a=1 --set b=0 halfadder.net
  logicsim run --ticks 100 ring.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0], a.cfg.Strict)
			if err != nil {
				return err
			}
			if err = setSwitches(c, sets); err != nil {
				return err
			}
			settled := c.Simulate(a.ticks(ticks))

			w := cmd.OutOrStdout()
			for _, b := range c.Bulbs() {
				v := 0
				if b.IsLit() {
					v = 1
				}
				fmt.Fprintf(w, "%s\t%d\n", b.Name, v)
			}
			if settled {
				fmt.Fprintf(w, "settled after %d steps\n", c.Steps())
			} else {
				fmt.Fprintf(w, "not settled after %d steps\n", c.Steps())
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "set switch `NAME=0|1` (repeatable)")
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 0, "maximum number of steps (default from configuration)")
	return cmd
}
