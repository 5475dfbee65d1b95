package logicsim

import "testing"

func TestNode_connect(t *testing.T) {
	a := newNode(nil, "a", Output)
	b := newNode(nil, "b", Input)
	c := newNode(nil, "c", Input)

	a.connect(b)
	a.connect(b)
	b.connect(a)
	a.connect(c)
	if len(a.conns) != 2 || len(b.conns) != 1 || len(c.conns) != 1 {
		t.Fatalf("bad connection sets: a=%v b=%v c=%v", a.conns, b.conns, c.conns)
	}
	if b.conns[0] != a || c.conns[0] != a {
		t.Fatal("connection is not symmetric")
	}

	b.disconnect(a)
	b.disconnect(a)
	if len(a.conns) != 1 || a.conns[0] != c || len(b.conns) != 0 {
		t.Fatalf("bad connection sets after disconnect: a=%v b=%v", a.conns, b.conns)
	}
	// not connected
	b.disconnect(c)
	if len(c.conns) != 1 {
		t.Fatal("disconnect of unconnected nodes changed c")
	}
}

func TestWire_route(t *testing.T) {
	out := newNode(nil, "out", Output)
	in := newNode(nil, "in", Input)
	in2 := newNode(nil, "in2", Input)
	out2 := newNode(nil, "out2", Output)
	td := []struct {
		name     string
		w        Wire
		src, dst *Node
	}{
		{"out_in", Wire{out, in}, out, in},
		{"in_out", Wire{in, out}, out, in},
		{"in_in", Wire{in, in2}, nil, nil},
		{"out_out", Wire{out, out2}, nil, nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			src, dst := d.w.route()
			if src != d.src || dst != d.dst {
				t.Errorf("expected %v -> %v, got %v -> %v", d.src, d.dst, src, dst)
			}
		})
	}
	if keyOf(out, in) != keyOf(in, out) {
		t.Fatal("wire keys are order dependent")
	}
}
