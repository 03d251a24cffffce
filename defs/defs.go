// SPDX-License-Identifier: Apache-2.0

// Package defs reads OID definition files and registers their contents with an oid.Registry.
//
// Two formats are supported: ASN.1 module text, from which every
//
//	name OBJECT IDENTIFIER ::= { ... }
//
// assignment is taken, and YAML documents listing name / OID pairs.  Definitions are
// registered in file order, so a definition may use any name defined before it.
package defs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownFormat          = errors.New("defs: unknown definition file format")
	ErrUnterminatedAssignment = errors.New("defs: unterminated OBJECT IDENTIFIER assignment")
	ErrBadDocument            = errors.New("defs: malformed definition document")
)

// Definition is a single name to OID assignment read from a definition file.
type Definition struct {
	Name  string
	Value string // OID expression, in either notation

	Source string // file the definition was read from, if any
	Line   int    // 1-based line of the name
}

func (d Definition) position() string {
	if d.Source == "" {
		return fmt.Sprintf("line %d", d.Line)
	}

	return fmt.Sprintf("%s:%d", d.Source, d.Line)
}

// Registerer is the part of *oid.Registry used to apply definitions.
type Registerer interface {
	Register(name, expr string) error
}

// Apply registers defs with reg in order and stops at the first failure.  The returned
// error wraps the registry's error, so errors.Is works with the oid package errors.
func Apply(reg Registerer, defs []Definition) error {
	for _, d := range defs {
		if err := reg.Register(d.Name, d.Value); err != nil {
			return fmt.Errorf("%s: %s: %w", d.position(), d.Name, err)
		}
	}

	return nil
}

// Parse reads definitions from src, using the format implied by the file name extension:
// .asn1 or .asn for ASN.1 modules, .yaml or .yml for YAML.
func Parse(name string, src []byte) ([]Definition, error) {
	var parse func([]byte) ([]Definition, error)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".asn1", ".asn":
		parse = ParseModule
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}

	defs, err := parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	for i := range defs {
		defs[i].Source = name
	}

	return defs, nil
}

// LoadFile reads the definitions in the file at path.
func LoadFile(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	return Parse(path, src)
}

// LoadFiles reads each file in turn and applies its definitions to reg.  It returns the
// number of definitions applied.
func LoadFiles(reg Registerer, paths ...string) (int, error) {
	n := 0
	for _, path := range paths {
		defs, err := LoadFile(path)
		if err != nil {
			return n, err
		}

		if err := Apply(reg, defs); err != nil {
			return n, err
		}
		n += len(defs)
	}

	return n, nil
}
