// Package main is the entry point for the mxfdict RP210 dictionary tool.
package main

import (
	"fmt"
	"os"

	"github.com/johnwheeler/go-mxf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
