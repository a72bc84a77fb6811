// Shadeforge - A colour palette generator for design themes
//
// Shadeforge turns a base colour into a 50-900 shade ramp, derives colour
// harmonies and gradients, checks WCAG contrast and adjusts whole palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/shadeforge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
