// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Kind identifies a component variant.
//
type Kind int

// Component kinds.
//
const (
	And Kind = iota
	Or
	Not
	Xor
	Nand
	Switch
	Bulb
	kindCount
)

// common pin names
const (
	pA = "A"
	pB = "B"
	pQ = "Q"
)

// Point is a placement hint. The simulator never looks at it.
//
type Point struct {
	X, Y float64
}

// partSpec is the blueprint of a component kind.
type partSpec struct {
	tag      string // kind tag, as used in netlists
	name     string // default component name
	inputs   []string
	outputs  []string
	evaluate func(c *Component)
}

// other gates
type gate func(a, b bool) bool

func (g gate) evaluate(c *Component) {
	c.outputs[0].value = g(c.inputs[0].value, c.inputs[1].value)
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pQ}

	specs = [kindCount]partSpec{
		And:  {"and", "AND", gateIn, gateOut, gate(func(a, b bool) bool { return a && b }).evaluate},
		Or:   {"or", "OR", gateIn, gateOut, gate(func(a, b bool) bool { return a || b }).evaluate},
		Xor:  {"xor", "XOR", gateIn, gateOut, gate(func(a, b bool) bool { return a != b }).evaluate},
		Nand: {"nand", "NAND", gateIn, gateOut, gate(func(a, b bool) bool { return !(a && b) }).evaluate},
		Not: {"not", "NOT", []string{pA}, gateOut, func(c *Component) {
			c.outputs[0].value = !c.inputs[0].value
		}},
		Switch: {"switch", "Switch", nil, gateOut, func(c *Component) {
			c.outputs[0].value = c.on
		}},
		Bulb: {"bulb", "Bulb", []string{pA}, nil, func(c *Component) {
			c.lit = c.inputs[0].value
		}},
	}
)

func (k Kind) valid() bool { return k >= 0 && k < kindCount }

// String returns the kind tag: "and", "or", "not", "xor", "nand", "switch" or
// "bulb".
//
func (k Kind) String() string {
	if !k.valid() {
		return "Kind(?)"
	}
	return specs[k].tag
}

// ParseKind returns the Kind for the given tag. Case is ignored.
//
func ParseKind(tag string) (Kind, error) {
	for k := range specs {
		if strings.EqualFold(specs[k].tag, tag) {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown component kind %q", tag)
}

// Kinds returns all component kinds.
//
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// A Component is a logic element with named input and output nodes.
//
// The pin set of a component is fixed by its kind:
//
//	And, Or, Xor, Nand:
//		Inputs: A, B
//		Outputs: Q
//	Not:
//		Inputs: A
//		Outputs: Q
//	Switch:
//		Outputs: Q = on
//	Bulb:
//		Inputs: A
//		Function: lit = A
//
type Component struct {
	// Name is used as a display and truth table key. Uniqueness is up to the
	// caller.
	Name string
	// Position is a placement hint for rendering layers.
	Position Point

	id      uuid.UUID
	kind    Kind
	inputs  []*Node
	outputs []*Node
	on      bool // Switch
	lit     bool // Bulb
}

// NewComponent returns a new component of the given kind with its default name.
// It panics if kind is not one of the declared kinds.
//
func NewComponent(kind Kind) *Component {
	if !kind.valid() {
		panic(errors.Errorf("invalid component kind %d", int(kind)))
	}
	sp := &specs[kind]
	c := &Component{Name: sp.name, id: uuid.New(), kind: kind}
	for _, n := range sp.inputs {
		c.inputs = append(c.inputs, newNode(c, n, Input))
	}
	for _, n := range sp.outputs {
		c.outputs = append(c.outputs, newNode(c, n, Output))
	}
	return c
}

// NewNamed is a shorthand for NewComponent followed by setting the
// component's name.
//
func NewNamed(kind Kind, name string) *Component {
	c := NewComponent(kind)
	c.Name = name
	return c
}

// ID returns the component's unique id.
//
func (c *Component) ID() uuid.UUID { return c.id }

// Kind returns the component kind.
//
func (c *Component) Kind() Kind { return c.kind }

// Inputs returns the component's input nodes in pin declaration order.
//
func (c *Component) Inputs() []*Node { return append([]*Node(nil), c.inputs...) }

// Outputs returns the component's output nodes in pin declaration order.
//
func (c *Component) Outputs() []*Node { return append([]*Node(nil), c.outputs...) }

// Input returns the named input node or nil.
//
func (c *Component) Input(name string) *Node { return find(c.inputs, name) }

// Output returns the named output node or nil.
//
func (c *Component) Output(name string) *Node { return find(c.outputs, name) }

// Pin returns the named node, looking up inputs first, or nil.
//
func (c *Component) Pin(name string) *Node {
	if n := c.Input(name); n != nil {
		return n
	}
	return c.Output(name)
}

func find(ns []*Node, name string) *Node {
	for _, n := range ns {
		if n.name == name {
			return n
		}
	}
	return nil
}

// Evaluate recomputes the component outputs from its current input values.
//
func (c *Component) Evaluate() {
	specs[c.kind].evaluate(c)
}

// update evaluates c and reports whether any output value changed.
//
func (c *Component) update() bool {
	var buf [4]bool
	old := buf[:0]
	for _, o := range c.outputs {
		old = append(old, o.value)
	}
	c.Evaluate()
	for i, o := range c.outputs {
		if o.value != old[i] {
			return true
		}
	}
	return false
}

// IsOn returns the state of a switch. It is always false for other kinds.
//
func (c *Component) IsOn() bool { return c.on }

// IsLit returns the state of a bulb. It is always false for other kinds.
//
func (c *Component) IsLit() bool { return c.lit }

// Toggle flips the state of a switch and updates its output. It does nothing
// on other kinds.
//
func (c *Component) Toggle() {
	if c.kind != Switch {
		return
	}
	c.on = !c.on
	c.Evaluate()
}

// SetState sets the state of a switch and updates its output. It does nothing
// on other kinds.
//
func (c *Component) SetState(on bool) {
	if c.kind != Switch {
		return
	}
	c.on = on
	c.Evaluate()
}

func (c *Component) nodes() []*Node {
	ns := make([]*Node, 0, len(c.inputs)+len(c.outputs))
	ns = append(ns, c.inputs...)
	return append(ns, c.outputs...)
}

func (c *Component) String() string {
	return c.Name + " (" + c.kind.String() + ")"
}
