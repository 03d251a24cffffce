// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/asn1"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golang-auth/go-oid"
)

func newEncodeCmd(a *app) *cobra.Command {
	var withHeader bool

	cmd := &cobra.Command{
		Use:   "encode OID...",
		Short: "Print the DER encoding of each OID in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				enc, err := a.registry.EncodeOid(arg)
				if err != nil {
					return err
				}

				out := []byte(enc)
				if withHeader {
					if out, err = derObject(enc); err != nil {
						return err
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "% x\n", out)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withHeader, "der", false, "include the OBJECT IDENTIFIER tag and length")

	return cmd
}

// derObject prefixes content octets with the universal OBJECT IDENTIFIER tag and the length.
func derObject(content oid.Oid) ([]byte, error) {
	return asn1.Marshal(asn1.RawValue{
		Class: asn1.ClassUniversal,
		Tag:   asn1.TagOID,
		Bytes: content,
	})
}
