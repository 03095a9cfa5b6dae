package main

import (
	"os"

	"github.com/raywall/glue-catalog-toolkit/cmd/gluectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
