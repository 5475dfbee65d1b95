package logicsim

import "bytes"

// A Wire is an unordered pair of connected nodes.
//
type Wire struct {
	A, B *Node
}

// wireKey is the canonical form of a wire: endpoints ordered by id.
type wireKey struct {
	lo, hi *Node
}

func keyOf(a, b *Node) wireKey {
	if bytes.Compare(a.id[:], b.id[:]) > 0 {
		a, b = b, a
	}
	return wireKey{a, b}
}

// route returns the driving and driven ends of w. A wire only carries a value
// from an output to an input; any other combination returns nil, nil.
//
func (w *Wire) route() (src, dst *Node) {
	switch {
	case w.A.dir == Output && w.B.dir == Input:
		return w.A, w.B
	case w.B.dir == Output && w.A.dir == Input:
		return w.B, w.A
	}
	return nil, nil
}

// Other returns the end of w opposite to n, or nil if n is not an end of w.
//
func (w Wire) Other(n *Node) *Node {
	switch n {
	case w.A:
		return w.B
	case w.B:
		return w.A
	}
	return nil
}
