// Command sqlalias prints table and column aliases for SQL identifiers.
package main

import (
	"os"

	"github.com/coregx/sqlalias/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
