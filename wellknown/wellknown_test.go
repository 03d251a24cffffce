// SPDX-License-Identifier: Apache-2.0

package wellknown

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golang-auth/go-oid"
	"github.com/golang-auth/go-oid/test"
)

func TestOid(t *testing.T) {
	assert := assert.New(t)

	der, ok := Oid("rsaEncryption")
	assert.True(ok)
	assert.Equal(oid.Oid{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}, der)

	// callers get their own copy
	der[0] = 0
	der, _ = Oid("rsaEncryption")
	assert.Equal(byte(0x2a), der[0])

	s, ok := OidString("id-ecPublicKey")
	assert.True(ok)
	assert.Equal("1.2.840.10045.2.1", s)

	// arcs are not part of the table
	_, ok = Oid("pkcs-1")
	assert.False(ok)
	_, ok = OidString("pkcs-1")
	assert.False(ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.True(t, slices.IsSorted(names))
}

// The generated table must agree with the embedded definitions; if this fails run go generate.
func TestGeneratedTableUpToDate(t *testing.T) {
	assert := test.NewAssert(t)

	reg := oid.NewRegistry()
	assert.NoErrorFatal(Register(reg))

	assert.Equal(Names(), reg.RegisteredOidLeaves())
	assert.Equal([]string{"ansi-X9-62", "ecdsa-with-SHA2", "id-ecSigType", "id-publicKeyType", "pkcs-1"},
		reg.RegisteredOidArcs())

	for _, name := range Names() {
		want, err := reg.EncodeOid(name)
		assert.NoErrorFatal(err)

		got, _ := Oid(name)
		assert.Equal(want, got, name)

		s, _ := OidString(name)
		arcs, _, _ := reg.Lookup(name)
		assert.Equal(arcs.String(), s, name)
	}
}

func TestRegisterTwice(t *testing.T) {
	assert := test.NewAssert(t)

	reg := oid.NewRegistry()
	assert.NoErrorFatal(Register(reg))
	assert.NoErrorFatal(Register(reg))
	assert.Equal(15, reg.Len())
}
