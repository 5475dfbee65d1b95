/*
Package logicsim provides a naive discrete-time simulator for boolean logic
circuits built from gates, switches and bulbs.

A Circuit holds components and the wires connecting their nodes. Each call to
Step propagates output values across wires to the inputs they drive, then
re-evaluates every component. Simulate repeats Step until the circuit reaches a
fixed point or runs out of ticks:

	c := logicsim.New()
	a, b := logicsim.NewComponent(logicsim.Switch), logicsim.NewComponent(logicsim.Switch)
	and := logicsim.NewComponent(logicsim.And)
	q := logicsim.NewComponent(logicsim.Bulb)
	c.AddComponent(a)
	c.AddComponent(b)
	c.AddComponent(and)
	c.AddComponent(q)
	c.AddWire(a.Output("Q"), and.Input("A"))
	c.AddWire(b.Output("Q"), and.Input("B"))
	c.AddWire(and.Output("Q"), q.Input("A"))

	a.SetState(true)
	b.SetState(true)
	c.Simulate(logicsim.DefaultTicks)
	fmt.Println(q.IsLit()) // true

Propagation delays, glitches and races are not modelled. Only logical
stabilization within a bounded number of steps is.
*/
package logicsim
