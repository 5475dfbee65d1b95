package cmd

import (
	"bytes"
	"os"

	"github.com/db47h/logicsim/netlist"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) fmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <netlist>",
		Short: "Reformat a netlist",
		Long: `Load a netlist and print it back in canonical form: part declarations in
order, followed by wires. Comments are not preserved.

Examples:
  logicsim fmt halfadder.net
  logicsim fmt -w halfadder.net`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0], false)
			if err != nil {
				return err
			}
			var b bytes.Buffer
			if err = netlist.Write(&b, c); err != nil {
				return err
			}
			if !write {
				_, err = cmd.OutOrStdout().Write(b.Bytes())
				return err
			}
			return errors.Wrap(os.WriteFile(args[0], b.Bytes(), 0o644), "failed to write netlist")
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")
	return cmd
}
