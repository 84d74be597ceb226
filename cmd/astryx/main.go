// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/astryx-hash/astryx/cmd/astryx/commands"
)

func main() {
	rootCmd, err := commands.NewRootCommand()
	if err != nil {
		panic(err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
