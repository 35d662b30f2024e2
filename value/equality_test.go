/*
File    : husk/value/equality_test.go
Author  : husk contributors
*/

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual_NumberCrossesIntAndFloat(t *testing.T) {
	h := NewHeap()
	assert.True(t, Equal(NewInt(h, 2), NewFloat(h, 2.0)))
	assert.False(t, Equal(NewInt(h, 2), NewFloat(h, 2.5)))
}

func TestEqual_StringAndVariableByBytes(t *testing.T) {
	h := NewHeap()
	assert.True(t, Equal(NewString(h, "abc"), NewString(h, "abc")))
	assert.False(t, Equal(NewString(h, "abc"), NewString(h, "abd")))
	assert.True(t, Equal(NewVariable(h, "x"), NewVariable(h, "x")))
	assert.False(t, Equal(NewString(h, "x"), NewVariable(h, "x")), "different kinds never compare equal")
}

func TestEqual_ScopeIsOrderIndependentMultiset(t *testing.T) {
	h := NewHeap()
	a := NewScope(h)
	a.Set(NewVariable(h, "x"), NewInt(h, 1))
	a.Set(NewVariable(h, "y"), NewInt(h, 2))

	b := NewScope(h)
	b.Set(NewVariable(h, "y"), NewInt(h, 2))
	b.Set(NewVariable(h, "x"), NewInt(h, 1))

	assert.True(t, Equal(a, b))

	b.Set(NewVariable(h, "x"), NewInt(h, 99))
	assert.False(t, Equal(a, b))
}

func TestEqual_OperationIsIdentityOnly(t *testing.T) {
	h := NewHeap()
	opA := NewOperation(h, OpAdd, NewInt(h, 1), NewInt(h, 2))
	opB := NewOperation(h, OpAdd, NewInt(h, 1), NewInt(h, 2))

	assert.True(t, Equal(opA, opA))
	assert.False(t, Equal(opA, opB), "structurally identical Operations are still not equal unless identical by identity")
}

func TestEqual_NullAlwaysEqual(t *testing.T) {
	h := NewHeap()
	assert.True(t, Equal(NewNull(h), NewNull(h)))
}
