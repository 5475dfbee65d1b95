package logicsim

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Circuit is a runnable circuit simulation. It owns a set of components and the
// wires between their nodes.
//
// A Circuit is not safe for concurrent use.
//
type Circuit struct {
	parts   []*Component
	members map[*Component]int // multiplicity of each component in parts
	wires   []*Wire
	wireIdx map[wireKey]*Wire
	steps   uint
	tticks  int
	log     *zap.Logger
}

// An Option configures a Circuit.
//
type Option func(c *Circuit)

// WithLogger sets the logger used to trace structural changes and
// non-converging simulations. The default is a no-op logger.
//
func WithLogger(l *zap.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTableTicks sets the step budget of each truth table row. Values less
// than 1 are ignored. The default is TableTicks.
//
func WithTableTicks(ticks int) Option {
	return func(c *Circuit) {
		if ticks > 0 {
			c.tticks = ticks
		}
	}
}

// New returns a new empty circuit.
//
func New(opts ...Option) *Circuit {
	c := &Circuit{
		members: make(map[*Component]int),
		wireIdx: make(map[wireKey]*Wire),
		tticks:  TableTicks,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// AddComponent appends p to the circuit's components.
//
func (c *Circuit) AddComponent(p *Component) {
	if p == nil {
		return
	}
	c.parts = append(c.parts, p)
	c.members[p]++
	c.log.Debug("component added", zap.String("name", p.Name), zap.Stringer("kind", p.kind))
}

// RemoveComponent removes p from the circuit together with every wire touching
// one of its nodes. It returns false if p is not part of the circuit.
//
func (c *Circuit) RemoveComponent(p *Component) bool {
	i := c.indexOf(p)
	if i < 0 {
		return false
	}
	copy(c.parts[i:], c.parts[i+1:])
	c.parts[len(c.parts)-1] = nil
	c.parts = c.parts[:len(c.parts)-1]
	if c.members[p]--; c.members[p] > 0 {
		// still mounted: keep its wires.
		return true
	}
	delete(c.members, p)
	for _, n := range p.nodes() {
		for _, o := range n.Connections() {
			c.RemoveWire(n, o)
		}
	}
	c.log.Debug("component removed", zap.String("name", p.Name), zap.Stringer("kind", p.kind))
	return true
}

func (c *Circuit) indexOf(p *Component) int {
	for i, q := range c.parts {
		if q == p {
			return i
		}
	}
	return -1
}

// Contains returns true if p is part of the circuit.
//
func (c *Circuit) Contains(p *Component) bool { return c.members[p] > 0 }

// AddWire connects n1 and n2. Wires are unordered: AddWire(n1, n2) and
// AddWire(n2, n1) are equivalent and a wire is never duplicated.
//
// No restriction is placed on the node directions, but only wires connecting an
// output to an input carry a value (see Step).
//
// AddWire returns false if no wire was added, either because it already exists
// or because one of the nodes does not belong to a component of the circuit.
//
func (c *Circuit) AddWire(n1, n2 *Node) bool {
	if n1 == nil || n2 == nil || !c.Contains(n1.owner) || !c.Contains(n2.owner) {
		return false
	}
	k := keyOf(n1, n2)
	if _, ok := c.wireIdx[k]; ok {
		return false
	}
	w := &Wire{n1, n2}
	c.wires = append(c.wires, w)
	c.wireIdx[k] = w
	n1.connect(n2)
	c.log.Debug("wire added", zap.Stringer("a", n1), zap.Stringer("b", n2))
	return true
}

// RemoveWire removes the wire between n1 and n2 in either order. It returns
// false if there is no such wire.
//
func (c *Circuit) RemoveWire(n1, n2 *Node) bool {
	if n1 == nil || n2 == nil {
		return false
	}
	k := keyOf(n1, n2)
	w, ok := c.wireIdx[k]
	if !ok {
		return false
	}
	delete(c.wireIdx, k)
	for i, x := range c.wires {
		if x == w {
			copy(c.wires[i:], c.wires[i+1:])
			c.wires[len(c.wires)-1] = nil
			c.wires = c.wires[:len(c.wires)-1]
			break
		}
	}
	n1.disconnect(n2)
	c.log.Debug("wire removed", zap.Stringer("a", n1), zap.Stringer("b", n2))
	return true
}

// HasWire returns true if n1 and n2 are wired together.
//
func (c *Circuit) HasWire(n1, n2 *Node) bool {
	if n1 == nil || n2 == nil {
		return false
	}
	_, ok := c.wireIdx[keyOf(n1, n2)]
	return ok
}

// Components returns the circuit's components in insertion order.
//
func (c *Circuit) Components() []*Component {
	return append([]*Component(nil), c.parts...)
}

// Wires returns the circuit's wires in insertion order.
//
func (c *Circuit) Wires() []Wire {
	ws := make([]Wire, len(c.wires))
	for i, w := range c.wires {
		ws[i] = *w
	}
	return ws
}

// Component returns the first component with the given name, or nil.
//
func (c *Circuit) Component(name string) *Component {
	for _, p := range c.parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Switches returns all switches, in insertion order.
//
func (c *Circuit) Switches() []*Component { return c.ofKind(Switch) }

// Bulbs returns all bulbs, in insertion order.
//
func (c *Circuit) Bulbs() []*Component { return c.ofKind(Bulb) }

func (c *Circuit) ofKind(k Kind) []*Component {
	var ps []*Component
	for _, p := range c.parts {
		if p.kind == k {
			ps = append(ps, p)
		}
	}
	return ps
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.parts) }

// Clear removes all components and wires.
//
func (c *Circuit) Clear() {
	for len(c.parts) > 0 {
		c.RemoveComponent(c.parts[len(c.parts)-1])
	}
	c.steps = 0
}

// A DriverConflict lists the outputs driving a single input.
//
type DriverConflict struct {
	Input   *Node
	Drivers []*Node
}

// DriverError is returned by Check.
//
type DriverError struct {
	Conflicts []DriverConflict
}

func (e *DriverError) Error() string {
	var b strings.Builder
	for i, cf := range e.Conflicts {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString("input ")
		b.WriteString(cf.Input.String())
		b.WriteString(" driven by ")
		for j, d := range cf.Drivers {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.String())
		}
	}
	return b.String()
}

// Check returns a *DriverError if any input node is driven by more than one
// output. Such circuits still simulate: within one step the last wire added
// wins.
//
func (c *Circuit) Check() error {
	drivers := make(map[*Node][]*Node)
	var order []*Node
	for _, w := range c.wires {
		src, dst := w.route()
		if src == nil {
			continue
		}
		if _, ok := drivers[dst]; !ok {
			order = append(order, dst)
		}
		drivers[dst] = append(drivers[dst], src)
	}
	var e DriverError
	for _, in := range order {
		if ds := drivers[in]; len(ds) > 1 {
			e.Conflicts = append(e.Conflicts, DriverConflict{in, ds})
		}
	}
	if len(e.Conflicts) == 0 {
		return nil
	}
	sort.SliceStable(e.Conflicts, func(i, j int) bool {
		return e.Conflicts[i].Input.String() < e.Conflicts[j].Input.String()
	})
	return &e
}
