package logicsim

import "github.com/google/uuid"

// Direction tags a node as a component input or output.
//
type Direction int

// Node directions.
//
const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// A Node is a single bit signal terminal on a component.
//
// Nodes are created together with their owning component and are linked to
// other nodes by the wires of the Circuit that holds the component.
//
type Node struct {
	id    uuid.UUID
	owner *Component
	name  string
	dir   Direction
	value bool
	conns []*Node
}

func newNode(owner *Component, name string, dir Direction) *Node {
	return &Node{id: uuid.New(), owner: owner, name: name, dir: dir}
}

// ID returns the node's unique id.
//
func (n *Node) ID() uuid.UUID { return n.id }

// Owner returns the component the node belongs to.
//
func (n *Node) Owner() *Component { return n.owner }

// Name returns the pin name of the node within its owner.
//
func (n *Node) Name() string { return n.name }

// Direction returns the node direction.
//
func (n *Node) Direction() Direction { return n.dir }

// IsInput returns true for input nodes.
//
func (n *Node) IsInput() bool { return n.dir == Input }

// Value returns the current signal value.
//
func (n *Node) Value() bool { return n.value }

// Connections returns the nodes n is wired to. The order is irrelevant.
//
func (n *Node) Connections() []*Node {
	return append([]*Node(nil), n.conns...)
}

// String returns "owner.pin".
//
func (n *Node) String() string {
	if n.owner == nil {
		return n.name
	}
	return n.owner.Name + "." + n.name
}

func (n *Node) connectedTo(o *Node) bool {
	for _, c := range n.conns {
		if c == o {
			return true
		}
	}
	return false
}

// connect links n and o both ways. It does nothing if they are already linked.
//
func (n *Node) connect(o *Node) {
	if n.connectedTo(o) {
		return
	}
	n.conns = append(n.conns, o)
	if o != n {
		o.conns = append(o.conns, n)
	}
}

// disconnect removes the link between n and o, if any.
//
func (n *Node) disconnect(o *Node) {
	if !n.connectedTo(o) {
		return
	}
	n.conns = remove(n.conns, o)
	if o != n {
		o.conns = remove(o.conns, n)
	}
}

func remove(ns []*Node, o *Node) []*Node {
	for i, c := range ns {
		if c == o {
			copy(ns[i:], ns[i+1:])
			ns[len(ns)-1] = nil
			return ns[:len(ns)-1]
		}
	}
	return ns
}
