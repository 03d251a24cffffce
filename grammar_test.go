// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golang-auth/go-oid/test"
)

// componentStrings renders components as "name", "name(1)" or "1" for easy comparison
func componentStrings(comps []Component) []string {
	strs := make([]string, len(comps))
	for i, c := range comps {
		switch {
		case c.Identifier != "" && c.Number != nil:
			strs[i] = c.Identifier + "(" + c.Number.String() + ")"
		case c.Identifier != "":
			strs[i] = c.Identifier
		default:
			strs[i] = c.Number.String()
		}
	}

	return strs
}

func TestParseComponentsDotted(t *testing.T) {
	assert := test.NewAssert(t)

	comps, err := ParseComponents(" 1.2.840.113549.1.1 ")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"1", "2", "840", "113549", "1", "1"}, componentStrings(comps))

	comps, err = ParseComponents("pkcs-1.1")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"pkcs-1", "1"}, componentStrings(comps))

	comps, err = ParseComponents("iso.(1).2.840")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"iso(1)", "2", "840"}, componentStrings(comps))

	comps, err = ParseComponents("iso . ( 1 ).member-body.(2)")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"iso(1)", "member-body(2)"}, componentStrings(comps))

	comps, err = ParseComponents("\tpkcs\n")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"pkcs"}, componentStrings(comps))
}

func TestParseComponentsBracketed(t *testing.T) {
	assert := test.NewAssert(t)

	comps, err := ParseComponents(" { iso (1) 2 840 113549 1 1 } ")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"iso(1)", "2", "840", "113549", "1", "1"}, componentStrings(comps))

	comps, err = ParseComponents("{pkcs-1 1 }")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"pkcs-1", "1"}, componentStrings(comps))

	comps, err = ParseComponents("{iso(1) member-body(2)\n\tus(840) rsadsi(113549)}")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"iso(1)", "member-body(2)", "us(840)", "rsadsi(113549)"}, componentStrings(comps))

	comps, err = ParseComponents("{ 2 }")
	assert.NoErrorFatal(err)
	assert.Equal([]string{"2"}, componentStrings(comps))
}

// The named number alternative must be tried before the bare identifier, and the bare
// identifier before the bare number.
func TestParseComponentsAlternativeOrder(t *testing.T) {
	assert := test.NewAssert(t)

	s := &scanner{in: "iso(1)"}
	c, ok := s.component(bracketedComponent)
	assert.True(ok)
	assert.Equal("iso", c.Identifier)
	assert.Equal("1", c.Number.String())
	assert.True(s.eof())

	s = &scanner{in: "iso.(1)"}
	c, ok = s.component(dottedComponent)
	assert.True(ok)
	assert.Equal("iso", c.Identifier)
	assert.Equal("1", c.Number.String())
	assert.True(s.eof())

	// a named number that does not complete falls back to the bare identifier
	s = &scanner{in: "iso(x)"}
	c, ok = s.component(bracketedComponent)
	assert.True(ok)
	assert.Equal("iso", c.Identifier)
	assert.Nil(c.Number)
	assert.Equal(3, s.pos)

	s = &scanner{in: "iso.2"}
	c, ok = s.component(dottedComponent)
	assert.True(ok)
	assert.Equal("iso", c.Identifier)
	assert.Nil(c.Number)
	assert.Equal(3, s.pos)

	s = &scanner{in: "42"}
	c, ok = s.component(dottedComponent)
	assert.True(ok)
	assert.Empty(c.Identifier)
	assert.Equal("42", c.Number.String())

	s = &scanner{in: "(42)"}
	_, ok = s.component(bracketedComponent)
	assert.False(ok)
	assert.Equal(0, s.pos)
}

func TestParseComponentsInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		" { 1.2.840.113549.1.1 } ",
		"{}",
		"{ 1 2",
		"1 2 }",
		"{iso(1)2}",
		"1..2",
		"1.2.",
		".1.2",
		"1. 2",
		"Iso.1",
		"pkcs-.1",
		"pkcs_",
		"1.2 3",
		"{ iso (x) }",
		"-1.2",
		"1.2.3a",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseComponents(in)
			assert.ErrorIs(t, err, ErrInvalidSyntax)

			var se *SyntaxError
			if assert.ErrorAs(t, err, &se) {
				assert.Equal(t, in, se.Input)
			}
		})
	}
}

func TestParseComponentsBigNumber(t *testing.T) {
	assert := test.NewAssert(t)

	comps, err := ParseComponents("2.25.329800735698586629295641978511506172918")
	assert.NoErrorFatal(err)
	assert.Len(comps, 3)
	assert.Equal("329800735698586629295641978511506172918", comps[2].Number.String())
}

func TestIsIdentifier(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsIdentifier("a"))
	assert.True(IsIdentifier("pkcs"))
	assert.True(IsIdentifier("pkcs-1"))
	assert.True(IsIdentifier("id_ecPublicKey"))
	assert.True(IsIdentifier("x9-62"))

	assert.False(IsIdentifier(""))
	assert.False(IsIdentifier("Pkcs"))
	assert.False(IsIdentifier("1pkcs"))
	assert.False(IsIdentifier("pkcs-"))
	assert.False(IsIdentifier("pkcs_"))
	assert.False(IsIdentifier("pkcs 1"))
	assert.False(IsIdentifier("pkcs.1"))
}
