// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"math/big"
	"strings"
)

// Oid represents the DER encoding of an object identifier.  Elements of the byte slice
// are the content octets only, excluding the ASN.1 header (two bytes: tag value 0x06 and
// length) as per the Microsoft documentation on object identifiers.
type Oid []byte

// Arcs is a resolved object identifier: the ordered sequence of its arc values.  Arc values
// are arbitrary precision so that arcs wider than a machine word (UUID based arcs under
// 2.25 for example) can be represented.
type Arcs []*big.Int

// NewArcs returns an Arcs value built from machine sized integers.
func NewArcs(nums ...uint64) Arcs {
	arcs := make(Arcs, len(nums))
	for i, n := range nums {
		arcs[i] = new(big.Int).SetUint64(n)
	}

	return arcs
}

// String returns the dotted form of the arcs, eg. "1.2.840.113549".
func (a Arcs) String() string {
	strs := make([]string, len(a))
	for i, arc := range a {
		strs[i] = arc.String()
	}

	return strings.Join(strs, ".")
}

// Equal reports whether a and b contain the same arc values in the same order.
func (a Arcs) Equal(b Arcs) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the arcs.  Registry entries hand out clones so that
// callers cannot modify a registered definition.
func (a Arcs) Clone() Arcs {
	if a == nil {
		return nil
	}

	c := make(Arcs, len(a))
	for i, arc := range a {
		c[i] = new(big.Int).Set(arc)
	}

	return c
}
