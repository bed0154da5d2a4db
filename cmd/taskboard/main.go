// Command taskboard is a terminal board for tracking projects as active
// or finished, moved between lists by drag and drop.
//
// Usage:
//
//	taskboard [--config DIR] [--log-level LEVEL] [--log-file PATH] [--no-mouse]
package main

import (
	"os"

	"github.com/riordanpawley/taskboard/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
