// SPDX-License-Identifier: MIT

// Command gjinv inverts a square matrix by Gauss–Jordan elimination.
//
// Usage:
//
//	gjinv [flags] [input]
//	echo "7 9 3
//	4 6 8
//	5 2 5" | gjinv -verify
//	gjinv -random 6 -seed 42 -partial
package main

import (
	"flag"
	"log"
	"os"

	"github.com/luciusluo/matrix-inverse/internal/platform/config"
	"github.com/luciusluo/matrix-inverse/internal/tools/invert"
)

func main() {
	cfg, err := invert.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	logger := log.New(os.Stderr, "gjinv: ", log.LstdFlags)
	if err := invert.Run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		config.Exitf("Error: %v", err)
	}
}
