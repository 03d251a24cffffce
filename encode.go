// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"math/big"
)

var (
	maxFirstArc  = big.NewInt(2)
	maxSecondArc = big.NewInt(39)
	low7Mask     = big.NewInt(0x7f)
)

// EncodeArcs returns the DER content octets of the OID made of arcs.  The first two arcs
// are combined into a single octet (first*40 + second), every further arc is written
// base 128, most significant group first, with the high bit set on all but the last
// octet of each arc.
//
// There must be at least two arcs, the first in 0..2 and the second in 0..39 (for every
// value of the first arc).  Otherwise a *ValueError is returned.
func EncodeArcs(arcs Arcs) (Oid, error) {
	if err := checkArcs(arcs); err != nil {
		return nil, err
	}

	out := make(Oid, 0, encodedLen(arcs))
	out = append(out, byte(arcs[0].Uint64()*40+arcs[1].Uint64()))

	for _, arc := range arcs[2:] {
		out = appendBase128(out, arc)
	}

	return out, nil
}

// EncodedLen returns the number of content octets EncodeArcs would produce for arcs.
func EncodedLen(arcs Arcs) (int, error) {
	if err := checkArcs(arcs); err != nil {
		return 0, err
	}

	return encodedLen(arcs), nil
}

func checkArcs(arcs Arcs) error {
	if len(arcs) < 2 {
		return &ValueError{Arcs: arcs, Reason: "at least two arcs are required"}
	}

	for _, arc := range arcs {
		if arc == nil {
			return &ValueError{Arcs: arcs, Reason: "missing arc value"}
		}
		if arc.Sign() < 0 {
			return &ValueError{Arcs: arcs, Reason: "negative arc " + arc.String()}
		}
	}

	if arcs[0].Cmp(maxFirstArc) > 0 {
		return &ValueError{Arcs: arcs, Reason: "first arc must be 0, 1 or 2"}
	}
	if arcs[1].Cmp(maxSecondArc) > 0 {
		return &ValueError{Arcs: arcs, Reason: "second arc must be in the range 0..39"}
	}

	return nil
}

func encodedLen(arcs Arcs) int {
	n := 1
	for _, arc := range arcs[2:] {
		n += base128Len(arc)
	}

	return n
}

func base128Len(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}

	return (v.BitLen() + 6) / 7
}

// appendBase128 collects the 7 bit groups of v least significant first, then appends them
// to dst in reverse.
func appendBase128(dst []byte, v *big.Int) []byte {
	if v.Sign() == 0 {
		return append(dst, 0x00)
	}

	groups := make([]byte, 0, base128Len(v))
	n := new(big.Int).Set(v)
	low := new(big.Int)

	for n.Sign() > 0 {
		low.And(n, low7Mask)
		groups = append(groups, byte(low.Uint64()))
		n.Rsh(n, 7)
	}

	for i := len(groups) - 1; i >= 0; i-- {
		b := groups[i]
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}

	return dst
}
