// Package main provides the yzroll binary: a terminal dice roller for the
// Year Zero Engine family of tabletop games.
package main

import (
	"fmt"
	"os"

	"github.com/cory-johannsen/yearzero/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
