// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golang-auth/go-oid/test"
)

func TestParseOid(t *testing.T) {
	assert := test.NewAssert(t)
	reg := NewRegistry()

	arcs, err := reg.ParseOid(" 1.2.840.113549.1.1 ")
	assert.NoErrorFatal(err)
	assert.Equal("1.2.840.113549.1.1", arcs.String())

	arcs, err = reg.ParseOid(" { iso (1) 2 840 113549 1 1 } ")
	assert.NoErrorFatal(err)
	assert.Equal("1.2.840.113549.1.1", arcs.String())

	_, err = reg.ParseOid(" { 1.2.840.113549.1.1 } ")
	assert.ErrorIs(err, ErrInvalidSyntax)
}

func TestParseOidWithRegisteredNames(t *testing.T) {
	assert := test.NewAssert(t)
	reg := NewRegistry()

	assert.NoErrorFatal(reg.RegisterOid("pkcs", "1.2.840.113549"))
	assert.NoErrorFatal(reg.RegisterOid("pkcs-1", "pkcs.1"))

	arcs, err := reg.ParseOid("pkcs-1.1")
	assert.NoErrorFatal(err)
	assert.Equal("1.2.840.113549.1.1", arcs.String())

	oid, err := reg.EncodeOid("{pkcs-1 1 }")
	assert.NoErrorFatal(err)
	assert.Equal(Oid{42, 134, 72, 134, 247, 13, 1, 1}, oid)

	assert.Equal([]string{"pkcs", "pkcs-1"}, reg.RegisteredOidArcs())
	assert.Empty(reg.RegisteredOidLeaves())

	assert.NoErrorFatal(reg.RegisterOid("sha256WithRSAEncryption", "{ pkcs-1 11 }"))
	assert.Equal([]string{"sha256WithRSAEncryption"}, reg.RegisteredOidLeaves())
}

func TestEncodeOidNums(t *testing.T) {
	assert := assert.New(t)

	oid, err := EncodeOidNums(NewArcs(1, 2, 840, 113549, 1, 1))
	assert.NoError(err)
	assert.Equal(Oid{42, 134, 72, 134, 247, 13, 1, 1}, oid)

	_, err = EncodeOidNums(NewArcs(3, 0))
	assert.ErrorIs(err, ErrInvalidOidValue)
}

func TestEncodeOidErrors(t *testing.T) {
	assert := assert.New(t)
	reg := NewRegistry()

	_, err := reg.EncodeOid("not an oid")
	assert.ErrorIs(err, ErrInvalidSyntax)

	_, err = reg.EncodeOid("undefined.1")
	assert.ErrorIs(err, ErrUndefinedIdentifier)

	// a single arc parses but cannot be encoded
	arcs, err := reg.ParseOid("1")
	assert.NoError(err)
	assert.Equal("1", arcs.String())

	_, err = reg.EncodeOid("1")
	assert.ErrorIs(err, ErrInvalidOidValue)
}

func TestArcs(t *testing.T) {
	assert := assert.New(t)

	a := NewArcs(1, 2, 840)
	assert.Equal("1.2.840", a.String())
	assert.True(a.Equal(NewArcs(1, 2, 840)))
	assert.False(a.Equal(NewArcs(1, 2)))
	assert.False(a.Equal(NewArcs(1, 2, 841)))

	c := a.Clone()
	c[2].SetInt64(1)
	assert.Equal("1.2.840", a.String())

	assert.Nil(Arcs(nil).Clone())
	assert.Equal("", Arcs{}.String())
}

func TestRegisterOidNames(t *testing.T) {
	assert := test.NewAssert(t)
	reg := NewRegistry()

	for _, name := range []string{"Foo", "1abc", "id-", "id_", "", "id kp"} {
		assert.ErrorIs(reg.RegisterOid(name, "1.2"), ErrInvalidName, name)
	}
	assert.Equal(0, reg.Len())

	assert.NoErrorFatal(reg.RegisterOid("id-kp_2", "1.3.6.1.5.5.7.3"))
	assert.Equal([]string{"id-kp_2"}, reg.RegisteredOidLeaves())
}
