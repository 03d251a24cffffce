// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"math/big"
)

// Component is one element of a parsed OID expression.  At least one of Identifier and
// Number is set: a bare name ("pkcs"), a name with an explicit arc value ("iso(1)" or
// "iso.(1)"), or a bare arc value ("840").
type Component struct {
	Identifier string
	Number     *big.Int
}

// componentParser attempts to read one component at the current position of the scanner.
// It reports whether it succeeded; a parser that fails may leave the position anywhere,
// scanner.component restores it.
type componentParser func(s *scanner) (Component, bool)

// Alternatives for a single component, in the order they must be tried.  The named number
// forms come first so that "iso(1)" is not read as the bare identifier "iso", and bare
// identifiers come before bare numbers.
var (
	bracketedComponent = []componentParser{namedNumber(false), bareIdentifier, bareNumber}
	dottedComponent    = []componentParser{namedNumber(true), bareIdentifier, bareNumber}
)

// grammars are tried in order, each against the whole input.
var grammars = []func(s *scanner) ([]Component, bool){
	parseBracketed,
	parseDotted,
}

// ParseComponents splits an OID expression into its components without resolving any
// identifiers.  Two notations are accepted, with surrounding white space ignored:
//
//	{ iso(1) member-body(2) 840 113549 }    ASN.1 value notation
//	iso.(1).2.840.113549                    dotted notation
//
// Input matching neither notation returns a *SyntaxError.
func ParseComponents(input string) ([]Component, error) {
	for _, grammar := range grammars {
		s := &scanner{in: input}
		s.skipSpace()

		comps, ok := grammar(s)
		if !ok {
			continue
		}

		s.skipSpace()
		if s.eof() {
			return comps, nil
		}
	}

	return nil, &SyntaxError{Input: input}
}

// IsIdentifier reports whether name is a valid identifier: a lower case letter followed by
// letters, digits, hyphens and underscores, not ending in a hyphen or underscore.
func IsIdentifier(name string) bool {
	s := &scanner{in: name}
	_, ok := s.identifier()

	return ok && s.eof()
}

func parseBracketed(s *scanner) ([]Component, bool) {
	if !s.accept('{') {
		return nil, false
	}
	s.skipSpace()

	c, ok := s.component(bracketedComponent)
	if !ok {
		return nil, false
	}
	comps := []Component{c}

	for {
		spaces := s.skipSpace()
		if s.accept('}') {
			return comps, true
		}

		// components must be separated by white space
		if spaces == 0 {
			return nil, false
		}

		c, ok := s.component(bracketedComponent)
		if !ok {
			return nil, false
		}
		comps = append(comps, c)
	}
}

func parseDotted(s *scanner) ([]Component, bool) {
	c, ok := s.component(dottedComponent)
	if !ok {
		return nil, false
	}
	comps := []Component{c}

	for s.accept('.') {
		c, ok := s.component(dottedComponent)
		if !ok {
			return nil, false
		}
		comps = append(comps, c)
	}

	return comps, true
}

// namedNumber matches `name ( 123 )`, or `name . ( 123 )` in dotted notation.
func namedNumber(dotted bool) componentParser {
	return func(s *scanner) (Component, bool) {
		name, ok := s.identifier()
		if !ok {
			return Component{}, false
		}

		s.skipSpace()
		if dotted {
			if !s.accept('.') {
				return Component{}, false
			}
			s.skipSpace()
		}

		if !s.accept('(') {
			return Component{}, false
		}
		s.skipSpace()

		num, ok := s.number()
		if !ok {
			return Component{}, false
		}

		s.skipSpace()
		if !s.accept(')') {
			return Component{}, false
		}

		return Component{Identifier: name, Number: num}, true
	}
}

func bareIdentifier(s *scanner) (Component, bool) {
	name, ok := s.identifier()

	return Component{Identifier: name}, ok
}

func bareNumber(s *scanner) (Component, bool) {
	num, ok := s.number()

	return Component{Number: num}, ok
}

type scanner struct {
	in  string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.in)
}

// component tries each alternative from the same starting position and returns the
// first match.
func (s *scanner) component(alts []componentParser) (Component, bool) {
	start := s.pos
	for _, alt := range alts {
		if c, ok := alt(s); ok {
			return c, true
		}
		s.pos = start
	}

	return Component{}, false
}

func (s *scanner) accept(c byte) bool {
	if s.eof() || s.in[s.pos] != c {
		return false
	}
	s.pos++

	return true
}

// skipSpace advances past white space and returns the number of bytes skipped.
func (s *scanner) skipSpace() int {
	start := s.pos
	for !s.eof() && isSpace(s.in[s.pos]) {
		s.pos++
	}

	return s.pos - start
}

func (s *scanner) identifier() (string, bool) {
	start := s.pos
	if s.eof() || !isLower(s.in[start]) {
		return "", false
	}

	end := start + 1
	for end < len(s.in) && isIdentChar(s.in[end]) {
		end++
	}

	// the longest match that ends in a letter or digit
	for end > start+1 && (s.in[end-1] == '-' || s.in[end-1] == '_') {
		end--
	}

	s.pos = end

	return s.in[start:end], true
}

func (s *scanner) number() (*big.Int, bool) {
	start := s.pos
	for !s.eof() && isDigit(s.in[s.pos]) {
		s.pos++
	}

	if s.pos == start {
		return nil, false
	}

	n, ok := new(big.Int).SetString(s.in[start:s.pos], 10)

	return n, ok
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isLower(c) || isDigit(c) || (c >= 'A' && c <= 'Z') || c == '-' || c == '_'
}
