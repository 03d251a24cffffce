// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"sync"
)

// Kind classifies a registered name by how it has been used.
type Kind int

const (
	// KindLeaf - the name has only been used on its own, as a complete OID.
	KindLeaf Kind = iota
	// KindArc - the name has been used as the prefix of a longer OID.
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindArc:
		return "arc"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

type entry struct {
	arcs Arcs
	kind Kind
}

// Registry maps identifier names to the OIDs they stand for.  Registered names can be used
// as the first component of later OID expressions.  A Registry is safe for concurrent use;
// entries are never removed.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  *slog.Logger
}

// RegistryOption is a function type for configuring a Registry.
type RegistryOption func(r *Registry)

// WithLogger configures the logger used to report registrations and promotions.  Without
// this option nothing is logged.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry returns an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolution is the outcome of resolving parsed components against the registry.
type Resolution struct {
	// Arcs is the complete arc sequence.
	Arcs Arcs
	// Promoted is the name of the entry whose kind this resolution changed from KindLeaf
	// to KindArc, or empty if no entry changed.
	Promoted string
}

// Resolve turns parsed components into arcs.  A number in the first component is used as
// is, otherwise the first component's identifier is replaced by the arcs registered for
// it.  Every later component must carry a number.
//
// Resolving may write to the registry: when a registered name is followed by further
// components, its entry becomes KindArc.  The lookup and the promotion happen atomically
// and the promoted name is reported in the Resolution.
//
// Parameters:
//   - comps: components as returned by ParseComponents; must not be empty
//
// Returns:
//   - Resolution: the arcs, and the promoted name if any
//   - error: *UndefinedIdentifierError or *RelativeOidError
func (r *Registry) Resolve(comps []Component) (Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, base, err := r.resolveLocked(comps)
	if err != nil {
		return Resolution{}, err
	}
	r.promoteLocked(&res, base, comps)

	return res, nil
}

// resolveLocked computes the arcs for comps without changing the registry.  It also
// returns the entry named by the first component, if any.
func (r *Registry) resolveLocked(comps []Component) (Resolution, *entry, error) {
	if len(comps) == 0 {
		panic(ErrInternal)
	}

	var (
		res   Resolution
		first = comps[0]
		base  *entry
	)

	switch {
	case first.Number != nil:
		res.Arcs = append(res.Arcs, new(big.Int).Set(first.Number))
	case first.Identifier != "":
		var ok bool
		base, ok = r.entries[first.Identifier]
		if !ok {
			return Resolution{}, nil, &UndefinedIdentifierError{Name: first.Identifier}
		}
		res.Arcs = append(res.Arcs, base.arcs.Clone()...)
	default:
		panic(ErrInternal)
	}

	for _, c := range comps[1:] {
		if c.Number == nil {
			return Resolution{}, nil, &RelativeOidError{Name: c.Identifier}
		}
		res.Arcs = append(res.Arcs, new(big.Int).Set(c.Number))
	}

	return res, base, nil
}

// promoteLocked marks base as KindArc when comps extends it with further components.
func (r *Registry) promoteLocked(res *Resolution, base *entry, comps []Component) {
	if base == nil || len(comps) < 2 || base.kind != KindLeaf {
		return
	}

	base.kind = KindArc
	res.Promoted = comps[0].Identifier
	r.logger.Debug("identifier promoted to arc", "name", res.Promoted, "oid", base.arcs.String())
}

// Register defines name as the OID described by expr.  Registering a name again is
// allowed as long as expr resolves to the same arcs; otherwise a *ConflictError is
// returned and the registry is unchanged.  New names start as KindLeaf.
//
// expr may itself start with a registered name, which is then promoted to KindArc if
// expr has further components and the registration succeeds.
func (r *Registry) Register(name, expr string) error {
	if !IsIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	comps, err := ParseComponents(expr)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, base, err := r.resolveLocked(comps)
	if err != nil {
		return err
	}

	e, exists := r.entries[name]
	if exists && !e.arcs.Equal(res.Arcs) {
		return &ConflictError{Name: name, Existing: e.arcs.Clone(), New: res.Arcs}
	}
	r.promoteLocked(&res, base, comps)
	if exists {
		return nil
	}

	r.entries[name] = &entry{arcs: res.Arcs, kind: KindLeaf}
	r.logger.Debug("identifier registered", "name", name, "oid", res.Arcs.String())

	return nil
}

// Lookup returns a copy of the arcs registered for name and its current kind.
func (r *Registry) Lookup(name string) (Arcs, Kind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, 0, false
	}

	return e.arcs.Clone(), e.kind, true
}

// ListByKind returns the sorted names of all entries currently of the given kind.
func (r *Registry) ListByKind(kind Kind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for name, e := range r.entries {
		if e.kind == kind {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
