// Package netlist reads and writes circuits in a small line oriented text
// format:
//
//	# comment
//	switch A on
//	and G1 at 120 40
//	bulb Q
//	wire A.Q G1.A
//
// A part statement declares a component by kind and name, with an optional
// placement hint and, for switches, an initial "on" state. A wire statement
// connects two pins designated as name.pin. Part names must be unique and
// declared before being wired.
//
package netlist

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/hdl"
	"github.com/pkg/errors"
)

// A Netlist is a parsed circuit description.
//
type Netlist struct {
	f *hdl.File
}

// Parse parses a netlist from r.
//
func Parse(r io.Reader) (*Netlist, error) {
	f, err := hdl.Parse("", r)
	if err != nil {
		return nil, err
	}
	return &Netlist{f}, nil
}

// ParseString parses a netlist from a string.
//
func ParseString(s string) (*Netlist, error) {
	f, err := hdl.ParseString("", s)
	if err != nil {
		return nil, err
	}
	return &Netlist{f}, nil
}

// ParseFile parses the named netlist file.
//
func ParseFile(name string) (*Netlist, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open netlist")
	}
	defer r.Close()
	f, err := hdl.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return &Netlist{f}, nil
}

// Len returns the number of statements in the netlist.
//
func (n *Netlist) Len() int { return len(n.f.Stmts) }

// Build creates a new circuit from the netlist. The options are passed on to
// logicsim.New.
//
func (n *Netlist) Build(opts ...logicsim.Option) (*logicsim.Circuit, error) {
	c := logicsim.New(opts...)
	parts := make(map[string]*logicsim.Component)
	for _, st := range n.f.Stmts {
		switch {
		case st.Part != nil:
			p, err := newPart(st.Part)
			if err != nil {
				return nil, err
			}
			if _, ok := parts[p.Name]; ok {
				return nil, errors.Errorf("%s: duplicate part name %q", st.Part.Pos, p.Name)
			}
			parts[p.Name] = p
			c.AddComponent(p)
		case st.Wire != nil:
			from, err := pin(parts, st.Wire.From)
			if err != nil {
				return nil, err
			}
			to, err := pin(parts, st.Wire.To)
			if err != nil {
				return nil, err
			}
			c.AddWire(from, to)
		}
	}
	return c, nil
}

func newPart(d *hdl.Part) (*logicsim.Component, error) {
	k, err := logicsim.ParseKind(d.Kind)
	if err != nil {
		return nil, errors.Wrap(err, d.Pos.String())
	}
	p := logicsim.NewNamed(k, d.Name)
	if d.At != nil {
		p.Position = logicsim.Point{X: d.At.X, Y: d.At.Y}
	}
	if d.On {
		if k != logicsim.Switch {
			return nil, errors.Errorf("%s: %s %q cannot be on, only switches can", d.Pos, k, d.Name)
		}
		p.SetState(true)
	}
	return p, nil
}

func pin(parts map[string]*logicsim.Component, r *hdl.Ref) (*logicsim.Node, error) {
	p, ok := parts[r.Part]
	if !ok {
		return nil, errors.Errorf("%s: unknown part %q", r.Pos, r.Part)
	}
	n := p.Pin(r.Pin)
	if n == nil {
		return nil, errors.Errorf("%s: invalid pin name %s for %s", r.Pos, r.Pin, p)
	}
	return n, nil
}

// Load parses and builds the named netlist file. If strict is true, circuits
// where an input is driven by more than one output are rejected.
//
func Load(name string, strict bool, opts ...logicsim.Option) (*logicsim.Circuit, error) {
	n, err := ParseFile(name)
	if err != nil {
		return nil, err
	}
	c, err := n.Build(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build circuit")
	}
	if strict {
		if err = c.Check(); err != nil {
			return nil, errors.Wrap(err, name)
		}
	}
	return c, nil
}

var ident = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Write writes c to w in netlist format: parts first, in insertion order, then
// wires in insertion order.
//
// It fails if a component name is not a valid identifier or is used twice, since
// such circuits could not be read back.
//
func Write(w io.Writer, c *logicsim.Circuit) error {
	bw := bufio.NewWriter(w)
	seen := make(map[string]bool)
	for _, p := range c.Components() {
		if !ident.MatchString(p.Name) {
			return errors.Errorf("invalid part name %q", p.Name)
		}
		if seen[p.Name] {
			return errors.Errorf("duplicate part name %q", p.Name)
		}
		seen[p.Name] = true
		bw.WriteString(p.Kind().String())
		bw.WriteByte(' ')
		bw.WriteString(p.Name)
		if pos := p.Position; pos != (logicsim.Point{}) {
			bw.WriteString(" at ")
			bw.WriteString(strconv.FormatFloat(pos.X, 'f', -1, 64))
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(pos.Y, 'f', -1, 64))
		}
		if p.IsOn() {
			bw.WriteString(" on")
		}
		bw.WriteByte('\n')
	}
	for _, wr := range c.Wires() {
		bw.WriteString("wire ")
		bw.WriteString(wr.A.String())
		bw.WriteByte(' ')
		bw.WriteString(wr.B.String())
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "failed to write netlist")
}
