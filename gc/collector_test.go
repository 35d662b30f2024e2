/*
File    : husk/gc/collector_test.go
Author  : husk contributors
*/

package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huskylang/husk/value"
)

func TestCollect_FreesUnreachableValues(t *testing.T) {
	h := value.NewHeap()
	root := value.NewInt(h, 1)
	garbage := value.NewInt(h, 2)

	freed := Collect(h, root)

	assert.Equal(t, 1, freed)
	assert.True(t, h.Contains(root))
	assert.False(t, h.Contains(garbage))
}

func TestCollect_TracesEveryKind(t *testing.T) {
	h := value.NewHeap()

	scope := value.NewScope(h)
	key := value.NewVariable(h, "x")
	val := value.NewInt(h, 1)
	scope.Set(key, val)

	scopes := value.NewScopeCollection(h)
	scopes.Push(scope)

	body := value.NewVariable(h, "x")
	closure := value.NewClosure(h, body, nil, scopes)

	op := value.NewOperation(h, value.OpAdd, value.NewInt(h, 1), value.NewInt(h, 2))
	seq := value.NewSequence(h, []value.Statement{{value.NewVariable(h, "do"), op}})

	Collect(h, closure, seq)

	for _, v := range []*value.Value{scope, key, val, scopes, body, closure, op, seq} {
		assert.True(t, h.Contains(v))
	}
}

func TestCollect_ToleratesCycles(t *testing.T) {
	h := value.NewHeap()

	scope := value.NewScope(h)
	scopes := value.NewScopeCollection(h)
	scopes.Push(scope)
	closure := value.NewClosure(h, value.NewNull(h), nil, scopes)

	// The Scope comes to reference the Closure that captured it,
	// forming a cycle the mark phase must not loop forever on.
	scope.Set(value.NewVariable(h, "self"), closure)

	assert.NotPanics(t, func() {
		Collect(h, closure)
	})
	assert.True(t, h.Contains(scope))
	assert.True(t, h.Contains(closure))
}
