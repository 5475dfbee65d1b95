package hwlib_test

import (
	"testing"

	"github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func Test_block_builtin(t *testing.T) {
	td := []struct {
		name  string
		mount hwtest.MountFn
		f     func(in []bool) []bool
	}{
		{"NOR", hl.Nor, func(in []bool) []bool { return []bool{!(in[0] || in[1])} }},
		{"XNOR", hl.Xnor, func(in []bool) []bool { return []bool{in[0] == in[1]} }},
		{"MUX", hl.Mux, func(in []bool) []bool {
			if in[2] {
				return []bool{in[1]}
			}
			return []bool{in[0]}
		}},
		// outputs sort as carry, sum
		{"HalfAdder", hl.HalfAdder, func(in []bool) []bool {
			return []bool{in[0] && in[1], in[0] != in[1]}
		}},
		// inputs sort as a, b, cin; outputs as cout, sum
		{"FullAdder", hl.FullAdder, func(in []bool) []bool {
			n := b2i(in[0]) + b2i(in[1]) + b2i(in[2])
			return []bool{n >= 2, n&1 != 0}
		}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c, _ := hwtest.Harness(t, d.mount)
			hwtest.CheckFunc(t, c, d.f)
		})
	}
}

func TestAdderN(t *testing.T) {
	const bits = 3
	c, b := hwtest.Harness(t, func(c *logicsim.Circuit, name string) *hl.Block {
		return hl.AdderN(c, name, bits)
	})
	require.Equal(t, []string{"a0", "b0", "a1", "b1", "a2", "b2"}, b.Inputs())
	require.Equal(t, []string{"out0", "out1", "out2", "c"}, b.Outputs())

	// columns: a0 a1 a2 b0 b1 b2 | c out0 out1 out2
	hwtest.CheckFunc(t, c, func(in []bool) []bool {
		var a, b int
		for i := 0; i < bits; i++ {
			a |= b2i(in[i]) << uint(i)
			b |= b2i(in[bits+i]) << uint(i)
		}
		s := a + b
		out := []bool{s>>bits != 0}
		for i := 0; i < bits; i++ {
			out = append(out, s&(1<<uint(i)) != 0)
		}
		return out
	})
}

func TestBlock_Connect(t *testing.T) {
	c := logicsim.New()
	m := hl.Mux(c, "m")
	assert.Len(t, m.In("sel"), 2)
	assert.Nil(t, m.Out("nope"))
	s := logicsim.NewComponent(logicsim.Switch)
	c.AddComponent(s)
	assert.Error(t, m.Connect(c, "nope", s.Output("Q")))
	assert.Error(t, m.Connect(c, "a", nil))
	require.NoError(t, m.Connect(c, "sel", s.Output("Q")))
	assert.Len(t, s.Output("Q").Connections(), 2)
	for _, p := range m.Parts {
		assert.Contains(t, p.Name, "m_")
	}

	m.Remove(c)
	assert.Equal(t, 1, c.Size())
	assert.Empty(t, s.Output("Q").Connections())
}

func TestSRLatch(t *testing.T) {
	c := logicsim.New()
	l := hl.SRLatch(c, "latch")
	s := logicsim.NewNamed(logicsim.Switch, "s")
	r := logicsim.NewNamed(logicsim.Switch, "r")
	q := logicsim.NewNamed(logicsim.Bulb, "q")
	qn := logicsim.NewNamed(logicsim.Bulb, "qn")
	for _, p := range []*logicsim.Component{s, r, q, qn} {
		c.AddComponent(p)
	}
	require.NoError(t, l.Connect(c, "s", s.Output("Q")))
	require.NoError(t, l.Connect(c, "r", r.Output("Q")))
	c.AddWire(l.Out("q"), q.Input("A"))
	c.AddWire(l.Out("qn"), qn.Input("A"))

	// both inputs inactive from power-up: no stable state.
	s.SetState(true)
	r.SetState(true)
	assert.False(t, c.Simulate(logicsim.TableTicks))

	td := []struct {
		name  string
		s, r  bool
		q, qn bool
	}{
		{"set", false, true, true, false},
		{"hold_set", true, true, true, false},
		{"reset", true, false, false, true},
		{"hold_reset", true, true, false, true},
		{"set_again", false, true, true, false},
	}
	for _, d := range td {
		s.SetState(d.s)
		r.SetState(d.r)
		require.True(t, c.Simulate(logicsim.TableTicks), d.name)
		assert.Equal(t, d.q, q.IsLit(), d.name)
		assert.Equal(t, d.qn, qn.IsLit(), d.name)
	}
}
