// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable blocks built from logicsim
// primitives.
//
// A block adds its components and internal wires to a circuit. Its input pins
// are then driven with Connect and its output pins read or wired with Out.
//
package hwlib

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pSel = "sel"
	pOut = "out"
)

// A Block is a group of components wired together in a circuit and exposing
// named input and output pins.
//
// An input pin may fan out to several component inputs. An output pin is a
// single component output.
//
type Block struct {
	Name  string
	Parts []*logicsim.Component

	ins  []string
	outs []string
	in   map[string][]*logicsim.Node
	out  map[string]*logicsim.Node
}

// Inputs returns the block's input pin names.
//
func (b *Block) Inputs() []string { return append([]string(nil), b.ins...) }

// Outputs returns the block's output pin names.
//
func (b *Block) Outputs() []string { return append([]string(nil), b.outs...) }

// In returns the component inputs behind the named input pin.
//
func (b *Block) In(pin string) []*logicsim.Node { return b.in[pin] }

// Out returns the component output behind the named output pin, or nil.
//
func (b *Block) Out(pin string) *logicsim.Node { return b.out[pin] }

// Connect wires src to every component input behind the named input pin.
//
func (b *Block) Connect(c *logicsim.Circuit, pin string, src *logicsim.Node) error {
	ns, ok := b.in[pin]
	if !ok {
		return errors.Errorf("block %s: invalid input pin %q", b.Name, pin)
	}
	if src == nil {
		return errors.Errorf("block %s: nil source for pin %q", b.Name, pin)
	}
	for _, n := range ns {
		c.AddWire(src, n)
	}
	return nil
}

// Remove removes all of the block's components (and their wires) from c.
//
func (b *Block) Remove(c *logicsim.Circuit) {
	for _, p := range b.Parts {
		c.RemoveComponent(p)
	}
}

// builder mounts parts of a block into a circuit.
type builder struct {
	c *logicsim.Circuit
	b *Block
}

func newBuilder(c *logicsim.Circuit, name string) *builder {
	return &builder{c, &Block{
		Name: name,
		in:   make(map[string][]*logicsim.Node),
		out:  make(map[string]*logicsim.Node),
	}}
}

// part adds a new component named "<block>_<suffix>".
//
func (bl *builder) part(kind logicsim.Kind, suffix string) *logicsim.Component {
	p := logicsim.NewNamed(kind, bl.b.Name+"_"+suffix)
	bl.c.AddComponent(p)
	bl.b.Parts = append(bl.b.Parts, p)
	return p
}

// sub mounts a child block and adopts its parts.
//
func (bl *builder) sub(mount func(*logicsim.Circuit, string) *Block, suffix string) *Block {
	s := mount(bl.c, bl.b.Name+"_"+suffix)
	bl.b.Parts = append(bl.b.Parts, s.Parts...)
	return s
}

func (bl *builder) wire(src, dst *logicsim.Node) {
	bl.c.AddWire(src, dst)
}

// input exports ns as input pin name.
//
func (bl *builder) input(name string, ns ...*logicsim.Node) {
	if _, ok := bl.b.in[name]; !ok {
		bl.b.ins = append(bl.b.ins, name)
	}
	bl.b.in[name] = append(bl.b.in[name], ns...)
}

func (bl *builder) output(name string, n *logicsim.Node) {
	bl.b.outs = append(bl.b.outs, name)
	bl.b.out[name] = n
}
