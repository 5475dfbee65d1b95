package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)
	inputStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	outputStyle = inputStyle.Foreground(lipgloss.Color("#00FF00"))
)

func (a *app) tableCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "table <netlist>",
		Short: "Print the truth table of a circuit",
		Long: `Enumerate every combination of switch states, simulate the circuit for
each one and print the resulting bulb states.

Switches and bulbs are listed by name. The first switch is the most
significant bit.

Examples:
  logicsim table halfadder.net
  logicsim table --format csv halfadder.net > halfadder.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Format
			}
			c, err := a.load(args[0], a.cfg.Strict)
			if err != nil {
				return err
			}
			t, err := c.TruthTable()
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			w := cmd.OutOrStdout()
			switch format {
			case config.FormatTable:
				return writeTable(w, t)
			case config.FormatCSV:
				return writeCSV(w, t)
			default:
				return errors.Errorf("unknown output format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "",
		"output format: table or csv (default from configuration)")
	return cmd
}

func cells(row []int) []string {
	s := make([]string, len(row))
	for i, v := range row {
		s[i] = strconv.Itoa(v)
	}
	return s
}

func writeTable(w io.Writer, t *logicsim.TruthTable) error {
	tb := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= t.Inputs:
				return outputStyle
			default:
				return inputStyle
			}
		})
	for _, r := range t.Rows {
		tb.Row(cells(r)...)
	}
	_, err := fmt.Fprintln(w, tb.Render())
	return err
}

func writeCSV(w io.Writer, t *logicsim.TruthTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(cells(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to write csv")
}
