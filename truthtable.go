package logicsim

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Errors returned by (*Circuit).TruthTable. Both are informational: the circuit
// is left untouched.
//
var (
	ErrNoSwitches = errors.New("no switches found")
	ErrNoBulbs    = errors.New("no bulbs found")
)

// A TruthTable maps every switch combination of a circuit to the resulting bulb
// states.
//
// Headers holds the switch names sorted by name, followed by the bulb names
// sorted by name. Each row holds one 0/1 value per header.
//
type TruthTable struct {
	Headers []string
	Inputs  int // number of switch columns
	Rows    [][]int
}

// TruthTable enumerates all switch combinations of c, simulates each one for up
// to TableTicks steps (see WithTableTicks) and records the bulb states.
//
// Rows come in ascending binary order, the first switch being the most
// significant bit. The switches are left in the state of the last row.
//
// It returns ErrNoSwitches or ErrNoBulbs if the circuit has no switch or no bulb.
//
func (c *Circuit) TruthTable() (*TruthTable, error) {
	sw, bulbs := c.Switches(), c.Bulbs()
	if len(sw) == 0 {
		return nil, ErrNoSwitches
	}
	if len(bulbs) == 0 {
		return nil, ErrNoBulbs
	}
	byName := func(ps []*Component) {
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	}
	byName(sw)
	byName(bulbs)

	t := &TruthTable{Inputs: len(sw)}
	for _, p := range sw {
		t.Headers = append(t.Headers, p.Name)
	}
	for _, p := range bulbs {
		t.Headers = append(t.Headers, p.Name)
	}

	vals := make([]bool, len(sw))
	for {
		for i, p := range sw {
			p.SetState(vals[i])
		}
		c.Simulate(c.tticks)
		row := make([]int, 0, len(t.Headers))
		for _, v := range vals {
			row = append(row, bit(v))
		}
		for _, p := range bulbs {
			row = append(row, bit(p.lit))
		}
		t.Rows = append(t.Rows, row)
		if !next(vals) {
			break
		}
	}
	return t, nil
}

// next advances vals as a big-endian binary counter and returns false on
// wrap-around.
//
func next(vals []bool) bool {
	for i := len(vals) - 1; i >= 0; i-- {
		if !vals[i] {
			vals[i] = true
			return true
		}
		vals[i] = false
	}
	return false
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Outputs returns the bulb names.
//
func (t *TruthTable) Outputs() []string { return t.Headers[t.Inputs:] }

// Lookup returns the bulb values for the given switch values, in header order.
//
func (t *TruthTable) Lookup(in ...bool) ([]int, bool) {
	if len(in) != t.Inputs {
		return nil, false
	}
	i := 0
	for _, v := range in {
		i = i<<1 | bit(v)
	}
	if i >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[i][t.Inputs:], true
}

// String renders the table as text, one row per line.
//
func (t *TruthTable) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Headers, " "))
	for _, r := range t.Rows {
		b.WriteByte('\n')
		for i, v := range r {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}
