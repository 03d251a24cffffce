// SPDX-License-Identifier: Apache-2.0

package oid

// ParseOid parses an OID expression in bracketed or dotted notation and returns its arcs.
// The first component may name an identifier registered with r.
//
//	r.ParseOid("{ iso(1) member-body(2) us(840) rsadsi(113549) }")
//	r.ParseOid("pkcs-1.1")
func (r *Registry) ParseOid(input string) (Arcs, error) {
	comps, err := ParseComponents(input)
	if err != nil {
		return nil, err
	}

	res, err := r.Resolve(comps)
	if err != nil {
		return nil, err
	}

	return res.Arcs, nil
}

// EncodeOid parses input as ParseOid does and returns the DER content octets of the result.
func (r *Registry) EncodeOid(input string) (Oid, error) {
	arcs, err := r.ParseOid(input)
	if err != nil {
		return nil, err
	}

	return EncodeArcs(arcs)
}

// EncodeOidNums returns the DER content octets of an OID given as arc values.
// It is the same as EncodeArcs.
func EncodeOidNums(arcs Arcs) (Oid, error) {
	return EncodeArcs(arcs)
}

// RegisterOid is the same as Register.  name must be an identifier as accepted by
// IsIdentifier (lower-case letter first, no trailing hyphen or underscore), otherwise
// ErrInvalidName is returned and nothing is registered.
func (r *Registry) RegisterOid(name, expr string) error {
	return r.Register(name, expr)
}

// RegisteredOidArcs returns the names that have been used as the prefix of another OID.
func (r *Registry) RegisteredOidArcs() []string {
	return r.ListByKind(KindArc)
}

// RegisteredOidLeaves returns the names that have only ever been used as complete OIDs.
func (r *Registry) RegisteredOidLeaves() []string {
	return r.ListByKind(KindLeaf)
}
