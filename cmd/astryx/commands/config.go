// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"github.com/spf13/cobra"
)

func newConfigCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `The config command prints the configuration resulting from the defaults,
the --config file, the ASTRYX_ environment variables and the flags.
Example:
	ASTRYX_DIGEST_BITS=512 astryx config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.config.ExportTOML(cmd.OutOrStdout())
		},
	}
}
