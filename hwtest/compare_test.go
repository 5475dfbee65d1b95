package hwtest_test

import (
	"testing"

	"github.com/db47h/logicsim"
	hl "github.com/db47h/logicsim/hwlib"
	"github.com/db47h/logicsim/hwtest"
)

func TestCompareCircuits(t *testing.T) {
	or := logicsim.New()
	{
		a, b := logicsim.NewNamed(logicsim.Switch, "a"), logicsim.NewNamed(logicsim.Switch, "b")
		g := logicsim.NewComponent(logicsim.Or)
		q := logicsim.NewNamed(logicsim.Bulb, "out")
		for _, p := range []*logicsim.Component{a, b, g, q} {
			or.AddComponent(p)
		}
		or.AddWire(a.Output("Q"), g.Input("A"))
		or.AddWire(b.Output("Q"), g.Input("B"))
		or.AddWire(g.Output("Q"), q.Input("A"))
	}

	// out = NAND(NAND(a, a), NAND(b, b))
	custom := logicsim.New()
	{
		a, b := logicsim.NewNamed(logicsim.Switch, "a"), logicsim.NewNamed(logicsim.Switch, "b")
		notA, notB := logicsim.NewComponent(logicsim.Nand), logicsim.NewComponent(logicsim.Nand)
		g := logicsim.NewComponent(logicsim.Nand)
		q := logicsim.NewNamed(logicsim.Bulb, "out")
		for _, p := range []*logicsim.Component{a, b, notA, notB, g, q} {
			custom.AddComponent(p)
		}
		custom.AddWire(a.Output("Q"), notA.Input("A"))
		custom.AddWire(a.Output("Q"), notA.Input("B"))
		custom.AddWire(b.Output("Q"), notB.Input("A"))
		custom.AddWire(b.Output("Q"), notB.Input("B"))
		custom.AddWire(notA.Output("Q"), g.Input("A"))
		custom.AddWire(notB.Output("Q"), g.Input("B"))
		custom.AddWire(g.Output("Q"), q.Input("A"))
	}
	hwtest.CompareCircuits(t, or, custom)
}

func TestHarness(t *testing.T) {
	c, b := hwtest.Harness(t, hl.Nor)
	if len(b.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(b.Parts))
	}
	hwtest.CheckTable(t, c, [][]int{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 1, 0},
	})
}
