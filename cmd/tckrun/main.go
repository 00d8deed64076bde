package main

import (
	"os"

	"github.com/cypherkit/tckrun/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
