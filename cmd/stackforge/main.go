package main

import (
	"os"

	"github.com/stackforge-dev/stackforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
