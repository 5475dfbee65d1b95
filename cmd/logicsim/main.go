// Command logicsim loads circuits from netlist files, simulates them and
// prints their truth table.
//
package main

import "github.com/db47h/logicsim/cmd/logicsim/cmd"

func main() {
	cmd.Execute()
}
