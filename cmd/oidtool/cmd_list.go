// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golang-auth/go-oid"
)

func newListCmd(a *app) *cobra.Command {
	var arcsOnly, leavesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered names with their OIDs",
		Long: "List the registered names with their OIDs.  Names used as the prefix of another OID\n" +
			"are arcs, the others are leaves.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if arcsOnly && leavesOnly {
				return errors.New("--arcs and --leaves are mutually exclusive")
			}

			var names []string
			switch {
			case arcsOnly:
				names = a.registry.RegisteredOidArcs()
			case leavesOnly:
				names = a.registry.RegisteredOidLeaves()
			default:
				names = append(a.registry.RegisteredOidArcs(), a.registry.RegisteredOidLeaves()...)
			}

			w := cmd.OutOrStdout()
			for _, name := range names {
				arcs, kind, ok := a.registry.Lookup(name)
				if !ok {
					return fmt.Errorf("%w %s", oid.ErrUndefinedIdentifier, name)
				}

				fmt.Fprintf(w, "%-4s %s %s\n", kind, name, arcs)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&arcsOnly, "arcs", false, "only list names used as the prefix of another OID")
	cmd.Flags().BoolVar(&leavesOnly, "leaves", false, "only list names never used as a prefix")

	return cmd
}
