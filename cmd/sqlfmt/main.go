// Command sqlfmt is the CLI surface over package format: format and lint
// subcommands over files or stdin, grounded on vippsas-sqlcode/cli/main.go
// and its cmd package's cobra wiring.
package main

import (
	"os"

	"github.com/freeeve/machparse/cmd/sqlfmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
