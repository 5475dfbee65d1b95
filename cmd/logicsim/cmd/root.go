// Package cmd implements the logicsim command line.
//
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/config"
	"github.com/db47h/logicsim/netlist"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all subcommands.
//
type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd returns the logicsim root command with all its subcommands.
//
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "logicsim",
		Short: "Discrete time digital logic simulator",
		Long: `Load circuits of logic gates, switches and bulbs from netlist files,
simulate them step by step and print their truth table.

Examples:
  logicsim table halfadder.net                  # Truth table of a circuit
  logicsim run --set a=1 --set b=1 adder.net    # Simulate with switches set
  logicsim trace --out ring.png ring.net        # Plot node values per step
  logicsim check adder.net                      # Report conflicting drivers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "",
		"configuration file (default $"+config.EnvPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"verbose output")

	root.AddCommand(
		a.tableCmd(),
		a.runCmd(),
		a.traceCmd(),
		a.checkCmd(),
		a.fmtCmd(),
	)
	return root
}

// Execute runs the root command.
//
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log, err = newLogger(cfg, a.verbose)
	return errors.Wrap(err, "failed to create logger")
}

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if verbose || cfg.LogLevel == "debug" {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// load builds the circuit in the named netlist file.
//
func (a *app) load(name string, strict bool) (*logicsim.Circuit, error) {
	c, err := netlist.Load(name, strict,
		logicsim.WithLogger(a.log.Named("circuit")),
		logicsim.WithTableTicks(a.cfg.TableTicks))
	if err != nil {
		return nil, err
	}
	a.log.Debug("circuit loaded",
		zap.String("file", name),
		zap.Int("components", c.Size()),
		zap.Int("wires", len(c.Wires())))
	return c, nil
}

func (a *app) ticks(n int) int {
	if n < 1 {
		return a.cfg.DefaultTicks
	}
	return n
}

// setSwitches applies NAME=VALUE assignments to the switches of c.
//
func setSwitches(c *logicsim.Circuit, sets []string) error {
	for _, s := range sets {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return errors.Errorf("invalid switch assignment %q, want NAME=0|1", s)
		}
		p := c.Component(name)
		if p == nil || p.Kind() != logicsim.Switch {
			return errors.Errorf("no switch named %q", name)
		}
		on, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Errorf("invalid value %q for switch %s", val, name)
		}
		p.SetState(on)
	}
	return nil
}
