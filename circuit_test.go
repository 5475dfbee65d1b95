package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(ns []*ls.Node, n *ls.Node) int {
	cnt := 0
	for _, x := range ns {
		if x == n {
			cnt++
		}
	}
	return cnt
}

func TestAddWire_symmetry(t *testing.T) {
	c := ls.New()
	s := ls.NewComponent(ls.Switch)
	q := ls.NewComponent(ls.Bulb)
	c.AddComponent(s)
	c.AddComponent(q)
	n1, n2 := s.Output("Q"), q.Input("A")

	require.True(t, c.AddWire(n1, n2))
	assert.False(t, c.AddWire(n2, n1), "reversed wire must not be duplicated")
	assert.False(t, c.AddWire(n1, n2), "wire must not be duplicated")

	assert.Len(t, c.Wires(), 1)
	assert.Equal(t, 1, count(n1.Connections(), n2))
	assert.Equal(t, 1, count(n2.Connections(), n1))
	assert.True(t, c.HasWire(n2, n1))

	require.True(t, c.RemoveWire(n2, n1))
	assert.False(t, c.RemoveWire(n1, n2))
	assert.Empty(t, c.Wires())
	assert.Empty(t, n1.Connections())
	assert.Empty(t, n2.Connections())
}

func TestAddWire_foreignNodes(t *testing.T) {
	c := ls.New()
	s := ls.NewComponent(ls.Switch)
	q := ls.NewComponent(ls.Bulb)
	c.AddComponent(s)

	assert.False(t, c.AddWire(s.Output("Q"), q.Input("A")))
	assert.False(t, c.AddWire(nil, s.Output("Q")))
	assert.Empty(t, c.Wires())
	assert.Empty(t, s.Output("Q").Connections())
}

func TestRemoveComponent_cascade(t *testing.T) {
	c := ls.New()
	a := ls.NewNamed(ls.Switch, "a")
	b := ls.NewNamed(ls.Switch, "b")
	g := ls.NewComponent(ls.Or)
	q := ls.NewComponent(ls.Bulb)
	for _, p := range []*ls.Component{a, b, g, q} {
		c.AddComponent(p)
	}
	c.AddWire(a.Output("Q"), g.Input("A"))
	c.AddWire(b.Output("Q"), g.Input("B"))
	c.AddWire(g.Output("Q"), q.Input("A"))
	c.AddWire(a.Output("Q"), q.Input("A"))
	require.Len(t, c.Wires(), 4)

	require.True(t, c.RemoveComponent(g))
	assert.False(t, c.RemoveComponent(g), "second removal is a no-op")
	assert.False(t, c.Contains(g))
	assert.Equal(t, 3, c.Size())

	ws := c.Wires()
	require.Len(t, ws, 1)
	assert.Equal(t, a.Output("Q"), ws[0].A)
	assert.Equal(t, q.Input("A"), ws[0].B)

	assert.Equal(t, 0, count(a.Output("Q").Connections(), g.Input("A")))
	assert.Empty(t, b.Output("Q").Connections())
	assert.Equal(t, 0, count(q.Input("A").Connections(), g.Output("Q")))
	for _, n := range append(g.Inputs(), g.Outputs()...) {
		assert.Empty(t, n.Connections(), n.String())
	}
}

func TestCircuit_lookup(t *testing.T) {
	c := ls.New()
	a := ls.NewNamed(ls.Switch, "a")
	g := ls.NewComponent(ls.Nand)
	q := ls.NewNamed(ls.Bulb, "q")
	c.AddComponent(a)
	c.AddComponent(g)
	c.AddComponent(q)

	assert.Equal(t, []*ls.Component{a, g, q}, c.Components())
	assert.Equal(t, []*ls.Component{a}, c.Switches())
	assert.Equal(t, []*ls.Component{q}, c.Bulbs())
	assert.Same(t, g, c.Component("NAND"))
	assert.Nil(t, c.Component("missing"))

	c.AddWire(a.Output("Q"), g.Input("A"))
	c.Clear()
	assert.Zero(t, c.Size())
	assert.Empty(t, c.Wires())
	assert.Empty(t, a.Output("Q").Connections())
	assert.Zero(t, c.Steps())
}

func TestCircuit_Check(t *testing.T) {
	c := ls.New()
	a := ls.NewNamed(ls.Switch, "a")
	b := ls.NewNamed(ls.Switch, "b")
	q := ls.NewNamed(ls.Bulb, "q")
	c.AddComponent(a)
	c.AddComponent(b)
	c.AddComponent(q)
	c.AddWire(a.Output("Q"), q.Input("A"))
	require.NoError(t, c.Check())

	c.AddWire(q.Input("A"), b.Output("Q"))
	err := c.Check()
	require.Error(t, err)
	var de *ls.DriverError
	require.True(t, errors.As(err, &de))
	require.Len(t, de.Conflicts, 1)
	assert.Same(t, q.Input("A"), de.Conflicts[0].Input)
	assert.Equal(t, []*ls.Node{a.Output("Q"), b.Output("Q")}, de.Conflicts[0].Drivers)
	assert.Equal(t, "input q.A driven by a.Q, b.Q", err.Error())
}

func TestComponent_pins(t *testing.T) {
	td := []struct {
		kind    ls.Kind
		name    string
		inputs  []string
		outputs []string
	}{
		{ls.And, "AND", []string{"A", "B"}, []string{"Q"}},
		{ls.Or, "OR", []string{"A", "B"}, []string{"Q"}},
		{ls.Not, "NOT", []string{"A"}, []string{"Q"}},
		{ls.Xor, "XOR", []string{"A", "B"}, []string{"Q"}},
		{ls.Nand, "NAND", []string{"A", "B"}, []string{"Q"}},
		{ls.Switch, "Switch", nil, []string{"Q"}},
		{ls.Bulb, "Bulb", []string{"A"}, nil},
	}
	require.Len(t, ls.Kinds(), len(td))
	for _, d := range td {
		t.Run(d.kind.String(), func(t *testing.T) {
			p := ls.NewComponent(d.kind)
			assert.Equal(t, d.name, p.Name)
			assert.Equal(t, d.kind, p.Kind())
			var ins, outs []string
			for _, n := range p.Inputs() {
				assert.True(t, n.IsInput())
				assert.Same(t, p, n.Owner())
				ins = append(ins, n.Name())
			}
			for _, n := range p.Outputs() {
				assert.Equal(t, ls.Output, n.Direction())
				assert.Same(t, p, n.Owner())
				outs = append(outs, n.Name())
			}
			assert.Equal(t, d.inputs, ins)
			assert.Equal(t, d.outputs, outs)

			k, err := ls.ParseKind(d.kind.String())
			require.NoError(t, err)
			assert.Equal(t, d.kind, k)
		})
	}
	_, err := ls.ParseKind("nor")
	assert.Error(t, err)
}

func TestSwitch_state(t *testing.T) {
	s := ls.NewComponent(ls.Switch)
	s.SetState(true)
	assert.True(t, s.IsOn())
	assert.True(t, s.Output("Q").Value())
	s.Toggle()
	assert.False(t, s.IsOn())
	assert.False(t, s.Output("Q").Value())

	// no-op on other kinds
	g := ls.NewComponent(ls.And)
	g.Toggle()
	g.SetState(true)
	assert.False(t, g.IsOn())
}
