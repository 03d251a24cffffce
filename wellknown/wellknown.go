// SPDX-License-Identifier: Apache-2.0

// Package wellknown provides the DER encodings of commonly used algorithm OIDs, and the
// definitions they were generated from.
package wellknown

import (
	"embed"
	"slices"

	"github.com/golang-auth/go-oid"
	"github.com/golang-auth/go-oid/defs"
)

//go:generate go run ../build-tools/gen-der-oids -o der_oids_gen.go -pkg wellknown pkcs1.asn1 x962.asn1

// definition files in registration order
var sources = []string{"pkcs1.asn1", "x962.asn1"}

//go:embed *.asn1
var files embed.FS

// Oid returns the DER encoding of the named OID.  Only leaves of the definitions are
// available, eg. "rsaEncryption" but not "pkcs-1".
func Oid(name string) (oid.Oid, bool) {
	for _, e := range derOids {
		if e.name == name {
			return slices.Clone(e.der), true
		}
	}

	return nil, false
}

// OidString returns the dotted form of the named OID.
func OidString(name string) (string, bool) {
	for _, e := range derOids {
		if e.name == name {
			return e.oidString, true
		}
	}

	return "", false
}

// Names returns the names of the available OIDs, sorted.
func Names() []string {
	names := make([]string, len(derOids))
	for i, e := range derOids {
		names[i] = e.name
	}

	return names
}

// Register adds every definition of the package, arcs included, to reg.
func Register(reg defs.Registerer) error {
	for _, name := range sources {
		src, err := files.ReadFile(name)
		if err != nil {
			return err
		}

		d, err := defs.Parse(name, src)
		if err != nil {
			return err
		}

		if err := defs.Apply(reg, d); err != nil {
			return err
		}
	}

	return nil
}
