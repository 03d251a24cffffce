// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"errors"
	"fmt"
)

// Error variables for each failure class.  The detailed error types below wrap one of
// these so that callers can test the class with errors.Is.

var ErrInvalidSyntax = errors.New("oid: the input does not match the OID notation")
var ErrUndefinedIdentifier = errors.New("oid: undefined identifier")
var ErrUnsupportedRelativeOid = errors.New("oid: relative OIDs are not supported")
var ErrConflictingDefinition = errors.New("oid: identifier already registered with different arcs")
var ErrInvalidOidValue = errors.New("oid: invalid OID arc values")
var ErrInvalidName = errors.New("oid: invalid identifier name")

// ErrInternal is the panic value used when an invariant of the parser is violated.  It is
// never returned as an ordinary error.
var ErrInternal = errors.New("oid: internal error")

// SyntaxError is returned when an input matches neither the bracketed nor the dotted notation.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSyntax, e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidSyntax
}

// UndefinedIdentifierError is returned when the first component of an OID names an
// identifier that has not been registered.
type UndefinedIdentifierError struct {
	Name string
}

func (e *UndefinedIdentifierError) Error() string {
	return fmt.Sprintf("%s %s", ErrUndefinedIdentifier, e.Name)
}

func (e *UndefinedIdentifierError) Unwrap() error {
	return ErrUndefinedIdentifier
}

// RelativeOidError is returned when a component after the first one carries a name but
// no number.
type RelativeOidError struct {
	Name string
}

func (e *RelativeOidError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedRelativeOid, e.Name)
}

func (e *RelativeOidError) Unwrap() error {
	return ErrUnsupportedRelativeOid
}

// ConflictError is returned when a name is registered a second time with different arcs.
type ConflictError struct {
	Name     string
	Existing Arcs
	New      Arcs
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s is %s, not %s", ErrConflictingDefinition, e.Name, e.Existing, e.New)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflictingDefinition
}

// ValueError is returned by the encoder when the arcs cannot be encoded.
type ValueError struct {
	Arcs   Arcs
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s ( %s ): %s", ErrInvalidOidValue, e.Arcs, e.Reason)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidOidValue
}
