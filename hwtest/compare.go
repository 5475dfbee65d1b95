// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwlib"
)

// A MountFn mounts a block into a circuit under the given name.
//
type MountFn func(c *logicsim.Circuit, name string) *hwlib.Block

// Harness mounts a block into a new circuit and attaches one switch per input
// pin and one bulb per output pin, each named after the pin.
//
// Input pins are sorted by name in truth tables, so harnessed blocks should use
// pin names that sort in the desired column order.
//
func Harness(t testing.TB, mount MountFn) (*logicsim.Circuit, *hwlib.Block) {
	t.Helper()
	c := logicsim.New()
	b := mount(c, "dut")
	for _, pin := range b.Inputs() {
		s := logicsim.NewNamed(logicsim.Switch, pin)
		c.AddComponent(s)
		if err := b.Connect(c, pin, s.Output("Q")); err != nil {
			t.Fatal(err)
		}
	}
	for _, pin := range b.Outputs() {
		q := logicsim.NewNamed(logicsim.Bulb, pin)
		c.AddComponent(q)
		if !c.AddWire(b.Out(pin), q.Input("A")) {
			t.Fatalf("failed to wire output pin %s", pin)
		}
	}
	return c, b
}

func table(t testing.TB, c *logicsim.Circuit) *logicsim.TruthTable {
	t.Helper()
	tt, err := c.TruthTable()
	if err != nil {
		t.Fatal(err)
	}
	return tt
}

func rowString(headers []string, row []int) string {
	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", h, row[i])
	}
	return b.String()
}

// CheckTable compares the truth table of c with want, one row per switch
// combination, switch values first.
//
func CheckTable(t testing.TB, c *logicsim.Circuit, want [][]int) {
	t.Helper()
	tt := table(t, c)
	if len(tt.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(tt.Rows))
	}
	for i, r := range tt.Rows {
		if len(r) != len(want[i]) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(want[i]), len(r))
		}
		for j := range r {
			if r[j] != want[i][j] {
				t.Errorf("\nExpected %s\nGot      %s", rowString(tt.Headers, want[i]), rowString(tt.Headers, r))
				break
			}
		}
	}
}

// CheckFunc checks every row of the truth table of c against f. f receives the
// switch values in column order and must return the expected bulb values in
// column order.
//
func CheckFunc(t testing.TB, c *logicsim.Circuit, f func(in []bool) []bool) {
	t.Helper()
	tt := table(t, c)
	in := make([]bool, tt.Inputs)
	for _, r := range tt.Rows {
		for i := range in {
			in[i] = r[i] != 0
		}
		exp := f(in)
		got := r[tt.Inputs:]
		if len(exp) != len(got) {
			t.Fatalf("expected %d outputs, got %d", len(exp), len(got))
		}
		for o := range exp {
			if (got[o] != 0) != exp[o] {
				t.Errorf("\nExpected %s => %s=%v\nGot %v", rowString(tt.Headers, r), tt.Headers[tt.Inputs+o], exp[o], got[o] != 0)
			}
		}
	}
}

// CompareCircuits takes two circuits and compares their truth tables. Both
// circuits must have the same switch and bulb names.
//
func CompareCircuits(t testing.TB, c1, c2 *logicsim.Circuit) {
	t.Helper()
	t1, t2 := table(t, c1), table(t, c2)
	if strings.Join(t1.Headers, ",") != strings.Join(t2.Headers, ",") || t1.Inputs != t2.Inputs {
		t.Fatalf("interface mismatch: %v != %v", t1.Headers, t2.Headers)
	}
	for i := range t1.Rows {
		for j := t1.Inputs; j < len(t1.Headers); j++ {
			if t1.Rows[i][j] != t2.Rows[i][j] {
				t.Errorf("\nInputs %s\nExpected %s=%d\nGot %d", rowString(t1.Headers[:t1.Inputs], t1.Rows[i]), t1.Headers[j], t1.Rows[i][j], t2.Rows[i][j])
			}
		}
	}
	t.Logf("%d/%d components. %d rows", c1.Size(), c2.Size(), len(t1.Rows))
}
