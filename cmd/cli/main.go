// linesift - streaming log filter
//
// linesift reads lines from stdin or files, runs each one through an
// ordered pipeline of filter, exclude, substitute, time-range, and
// highlight commands, and prints the survivors.
package main

import (
	"os"

	"linesift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
