// SPDX-License-Identifier: Apache-2.0

/*
Package oid parses ASN.1 OBJECT IDENTIFIER notation and produces the DER encoding of
object identifiers.

Two notations are understood: the ASN.1 value notation used in module definitions

	{ iso(1) member-body(2) us(840) rsadsi(113549) pkcs(1) 1 }

and the dotted notation

	1.2.840.113549.1.1

A [Registry] records names for OIDs so that later expressions can start with a name
instead of the full arc list:

	reg := oid.NewRegistry()
	_ = reg.Register("pkcs", "1.2.840.113549")
	_ = reg.Register("pkcs-1", "pkcs.1")
	der, _ := reg.EncodeOid("{ pkcs-1 1 }") // 2a 86 48 86 f7 0d 01 01

Only the first component of an expression may be a name without a number; relative OIDs
are not supported.  Encoded OIDs ([Oid]) are the content octets only, without the tag and
length header.
*/
package oid
