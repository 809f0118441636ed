// Package main provides the auralis CLI: the command surface over the
// Auralis data layer (areas, projects, tasks, notes, inbox) and the note
// summarisation service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
