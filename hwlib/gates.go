// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/logicsim"

// inverted mounts a two input gate followed by a NOT.
//
func inverted(c *logicsim.Circuit, name string, kind logicsim.Kind) *Block {
	bl := newBuilder(c, name)
	g := bl.part(kind, kind.String())
	n := bl.part(logicsim.Not, "not")
	bl.wire(g.Output("Q"), n.Input("A"))
	bl.input(pA, g.Input("A"))
	bl.input(pB, g.Input("B"))
	bl.output(pOut, n.Output("Q"))
	return bl.b
}

// Nor mounts a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(c *logicsim.Circuit, name string) *Block {
	return inverted(c, name, logicsim.Or)
}

// Xnor mounts a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(c *logicsim.Circuit, name string) *Block {
	return inverted(c, name, logicsim.Xor)
}

// Mux mounts a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(c *logicsim.Circuit, name string) *Block {
	bl := newBuilder(c, name)
	not := bl.part(logicsim.Not, "not")
	a := bl.part(logicsim.And, "and_a")
	b := bl.part(logicsim.And, "and_b")
	or := bl.part(logicsim.Or, "or")
	bl.wire(not.Output("Q"), a.Input("B"))
	bl.wire(a.Output("Q"), or.Input("A"))
	bl.wire(b.Output("Q"), or.Input("B"))
	bl.input(pA, a.Input("A"))
	bl.input(pB, b.Input("A"))
	bl.input(pSel, not.Input("A"), b.Input("B"))
	bl.output(pOut, or.Output("Q"))
	return bl.b
}

// SRLatch mounts a set/reset latch made of two cross-coupled NAND gates.
// Both inputs are active low.
//
//	Inputs: s, r
//	Outputs: q, qn
//	Function: s=0, r=1: q = 1
//	          s=1, r=0: q = 0
//	          s=1, r=1: hold
//
// With both inputs high from power-up the latch has no stable state and the
// circuit keeps oscillating.
//
func SRLatch(c *logicsim.Circuit, name string) *Block {
	bl := newBuilder(c, name)
	s := bl.part(logicsim.Nand, "s")
	r := bl.part(logicsim.Nand, "r")
	bl.wire(r.Output("Q"), s.Input("B"))
	bl.wire(s.Output("Q"), r.Input("B"))
	bl.input("s", s.Input("A"))
	bl.input("r", r.Input("A"))
	bl.output("q", s.Output("Q"))
	bl.output("qn", r.Output("Q"))
	return bl.b
}
