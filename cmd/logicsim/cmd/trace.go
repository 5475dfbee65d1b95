package cmd

import (
	"fmt"

	"github.com/db47h/logicsim/trace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) traceCmd() *cobra.Command {
	var (
		sets  []string
		ticks int
		out   string
	)
	cmd := &cobra.Command{
		Use:   "trace <netlist>",
		Short: "Plot switch and bulb values at each step",
		Long: `Set switches, simulate the circuit and save a waveform plot of every
switch and bulb, one sample per step. The image format is selected by the
output file extension (png, svg, pdf, ...).

Examples:
  logicsim trace --set a=1 --out adder.png halfadder.net
  logicsim trace --ticks 12 --out ring.svg ring.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0], a.cfg.Strict)
			if err != nil {
				return err
			}
			if err = setSwitches(c, sets); err != nil {
				return err
			}
			r := trace.NewRecorder(c)
			settled := r.Run(a.ticks(ticks))
			if err = r.Plot(out); err != nil {
				return err
			}
			a.log.Debug("trace saved", zap.String("file", out), zap.Int("samples", r.Len()), zap.Bool("settled", settled))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d probes, %d samples\n", out, len(r.Probes()), r.Len())
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "set switch `NAME=0|1` (repeatable)")
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 0, "maximum number of steps (default from configuration)")
	cmd.Flags().StringVarP(&out, "out", "o", "trace.png", "output file")
	return cmd
}
