// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"strings"

	"github.com/astryx-hash/astryx/lib/astryx"
	"github.com/spf13/cobra"
)

type demoCase struct {
	label string
	data  string
}

var demoCases = []demoCase{
	{label: "Word: 'Astryx'", data: "Astryx"},
	{label: "Word: 'astryx'", data: "astryx"},
	{label: "Wallet Key (Mock):", data: "5Kb8kLf9zgWQandEC27nYPGZizS8469C365Z"},
	{label: "Ethereum Address (Mock):", data: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
	{label: "Large Transaction Data:", data: "tx_in:0x123...tx_out:0x456...value:100BTC"},
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the 256 bit digests of a fixed set of sample inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), demoTable())
			return err
		},
	}
}

func demoTable() string {
	separator := strings.Repeat("-", 50) + "\n"

	var b strings.Builder
	b.WriteString("=== Astryx GAQWH Result Production ===\n")
	b.WriteString(separator)
	for _, c := range demoCases {
		fmt.Fprintf(&b, "%-25s | %s\n", c.label, astryx.Sum256([]byte(c.data)))
	}
	b.WriteString(separator)
	return b.String()
}
