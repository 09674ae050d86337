// Command primer runs a guided tour of programming fundamentals.
package main

import (
	"os"

	"github.com/roach88/primer/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
