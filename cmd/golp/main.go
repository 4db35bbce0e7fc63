// Command golp tokenizes, parses, and inspects CPLEX-style LP files.
package main

import (
	"os"

	"github.com/cwbudde/golp/cmd/golp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
