package main

import (
	"os"

	"github.com/idilsaglam/items/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
