// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "go.uber.org/zap"

// Tick budgets.
//
const (
	// DefaultTicks is the step budget used by Simulate when given a
	// non-positive tick count.
	DefaultTicks = 10
	// TableTicks is the step budget used for each truth table row.
	TableTicks = 20
)

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.steps
}

// Step advances the simulation by one step and reports whether any value
// changed.
//
// A step first propagates values across wires: for every wire connecting an
// output to an input, in wire insertion order, the input takes the output's
// value. Wires connecting two inputs or two outputs are inert. If an input is
// driven by several outputs, the last wire added wins. Then every component is
// evaluated in insertion order.
//
// Step returns false once the circuit has reached a fixed point, in which case
// further steps leave every value unchanged.
//
func (c *Circuit) Step() bool {
	changed := false
	for _, w := range c.wires {
		src, dst := w.route()
		if src == nil {
			continue
		}
		if dst.value != src.value {
			dst.value = src.value
			changed = true
		}
	}
	for _, p := range c.parts {
		if p.update() {
			changed = true
		}
	}
	c.steps++
	return changed
}

// Simulate runs the simulation until a step reports no change or ticks steps
// have been run, whichever comes first. If ticks is less than 1, DefaultTicks
// is used.
//
// Simulate returns true if the circuit reached a fixed point. Circuits with
// feedback loops may never do so, in which case they are left in their last
// computed state.
//
func (c *Circuit) Simulate(ticks int) bool {
	if ticks < 1 {
		ticks = DefaultTicks
	}
	for i := 0; i < ticks; i++ {
		if !c.Step() {
			return true
		}
	}
	c.log.Debug("circuit did not settle", zap.Int("ticks", ticks), zap.Uint("steps", c.steps))
	return false
}
