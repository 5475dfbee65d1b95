// Package hdl implements the lexer and grammar of the netlist language.
//
//	# half adder
//	switch a on
//	switch b at 0 40
//	xor x
//	and n
//	bulb sum
//	bulb carry
//	wire a.Q x.A
//	wire b.Q x.B
//	wire a.Q n.A
//	wire b.Q n.B
//	wire x.Q sum.A
//	wire n.Q carry.A
//
// Keywords are case insensitive. Names are case sensitive.
//
package hdl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Lexer is the netlist lexer.
//
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Dot", Pattern: `\.`},
})

// File is a parsed netlist.
//
type File struct {
	Pos   lexer.Position
	Stmts []*Stmt `@@*`
}

// Stmt is either a part declaration or a wire.
//
type Stmt struct {
	Part *Part `  @@`
	Wire *Wire `| @@`
}

// Part declares a component: kind name [at x y] [on]
//
type Part struct {
	Pos  lexer.Position
	Kind string `@("and" | "or" | "not" | "xor" | "nand" | "switch" | "bulb")`
	Name string `@Ident`
	At   *Point `( "at" @@ )?`
	On   bool   `@"on"?`
}

// Point is a placement hint.
//
type Point struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// Wire connects two pins: wire part.pin part.pin
//
type Wire struct {
	Pos  lexer.Position
	From *Ref `"wire" @@`
	To   *Ref `@@`
}

// Ref is a pin reference: part.pin
//
type Ref struct {
	Pos  lexer.Position
	Part string `@Ident Dot`
	Pin  string `@Ident`
}

func (r *Ref) String() string { return r.Part + "." + r.Pin }

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// Parse parses a netlist from r. The filename is only used in error positions.
//
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := parser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}
	return f, nil
}

// ParseString parses a netlist from a string.
//
func ParseString(filename, input string) (*File, error) {
	f, err := parser.ParseString(filename, input)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}
	return f, nil
}
