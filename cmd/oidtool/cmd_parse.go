// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse OID...",
		Short: "Print the arcs of each OID in dotted notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				arcs, err := a.registry.ParseOid(arg)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), arcs.String())
			}

			return nil
		},
	}
}
