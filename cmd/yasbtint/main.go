// Yasbtint - wallpaper-derived accent colours for YASB
//
// Yasbtint reads the current desktop wallpaper, asks pywal for a colour
// palette and writes the chosen accent into YASB's stylesheet and widget
// configuration.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/yasbtint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
