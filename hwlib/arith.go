// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// HalfAdder mounts a half adder.
//
//	Inputs: a, b
//	Outputs: sum, carry
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(c *logicsim.Circuit, name string) *Block {
	bl := newBuilder(c, name)
	x := bl.part(logicsim.Xor, "xor")
	a := bl.part(logicsim.And, "and")
	bl.input(pA, x.Input("A"), a.Input("A"))
	bl.input(pB, x.Input("B"), a.Input("B"))
	bl.output("sum", x.Output("Q"))
	bl.output("carry", a.Output("Q"))
	return bl.b
}

// FullAdder mounts a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: sum, cout
//	Function: sum = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c *logicsim.Circuit, name string) *Block {
	bl := newBuilder(c, name)
	h1 := bl.sub(HalfAdder, "h1")
	h2 := bl.sub(HalfAdder, "h2")
	or := bl.part(logicsim.Or, "or")
	for _, n := range h2.In(pA) {
		bl.wire(h1.Out("sum"), n)
	}
	bl.wire(h1.Out("carry"), or.Input("A"))
	bl.wire(h2.Out("carry"), or.Input("B"))
	bl.input(pA, h1.In(pA)...)
	bl.input(pB, h1.In(pB)...)
	bl.input("cin", h2.In(pB)...)
	bl.output("sum", h2.Out("sum"))
	bl.output("cout", or.Output("Q"))
	return bl.b
}

// AdderN mounts a N-bits ripple carry adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//
// Bus pins are named "a0", "a1", ... with bit 0 as the lsb.
//
func AdderN(c *logicsim.Circuit, name string, bits int) *Block {
	bl := newBuilder(c, name)
	var carry *logicsim.Node
	for i := 0; i < bits; i++ {
		bit := strconv.Itoa(i)
		var sum *logicsim.Node
		if i == 0 {
			h := bl.sub(HalfAdder, "b"+bit)
			bl.input(pA+bit, h.In(pA)...)
			bl.input(pB+bit, h.In(pB)...)
			sum, carry = h.Out("sum"), h.Out("carry")
		} else {
			f := bl.sub(FullAdder, "b"+bit)
			for _, n := range f.In("cin") {
				bl.wire(carry, n)
			}
			bl.input(pA+bit, f.In(pA)...)
			bl.input(pB+bit, f.In(pB)...)
			sum, carry = f.Out("sum"), f.Out("cout")
		}
		bl.output(pOut+bit, sum)
	}
	if carry != nil {
		bl.output("c", carry)
	}
	return bl.b
}
