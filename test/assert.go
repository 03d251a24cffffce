// SPDX-License-Identifier: Apache-2.0

// Package test holds assertion helpers shared by the tests of this module.
package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is testify/assert with some extensions
type Assert struct {
	*assert.Assertions

	t *testing.T
}

// NewAssert returns an Assert bound to t.
func NewAssert(t *testing.T) *Assert {
	a := assert.New(t)
	return &Assert{a, t}
}

// NoErrorFatal fails the test immediately on error
func (a *Assert) NoErrorFatal(err error) {
	a.NoError(err)
	if err != nil {
		a.t.Logf("Stopping test %s due to fatal error", a.t.Name())
		a.t.FailNow()
	}
}
