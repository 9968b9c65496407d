package main

import (
	"os"

	"github.com/glutara/glutara/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
