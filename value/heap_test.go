/*
File    : husk/value/heap_test.go
Author  : husk contributors
*/

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeap_RegistersOnConstruction(t *testing.T) {
	h := NewHeap()
	n := NewInt(h, 42)
	s := NewString(h, "hi")

	assert.Equal(t, 2, h.Len())
	assert.True(t, h.Contains(n))
	assert.True(t, h.Contains(s))
}

func TestHeap_SweepRemovesUnmarked(t *testing.T) {
	h := NewHeap()
	root := NewInt(h, 1)
	garbage := NewInt(h, 2)

	root.SetGCChecked(true)
	freed := h.Sweep()

	assert.Equal(t, 1, freed)
	assert.True(t, h.Contains(root))
	assert.False(t, h.Contains(garbage))
	assert.False(t, root.GCChecked(), "sweep must clear the mark bit on survivors")
}

func TestHeap_SweepKeepsEverythingMarked(t *testing.T) {
	h := NewHeap()
	a := NewInt(h, 1)
	b := NewInt(h, 2)
	a.SetGCChecked(true)
	b.SetGCChecked(true)

	freed := h.Sweep()

	assert.Equal(t, 0, freed)
	assert.Equal(t, 2, h.Len())
}
