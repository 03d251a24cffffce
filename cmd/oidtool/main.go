// SPDX-License-Identifier: Apache-2.0

// Command oidtool parses and encodes ASN.1 object identifiers, using names read from OID
// definition files.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
