/*
File    : husk/gc/collector.go
Author  : husk contributors
*/

// Package gc implements the mark-and-sweep collector described in
// spec.md §4.5. It traces every kind of Value reachable from an
// explicit root set and sweeps package value's Heap of anything left
// unmarked. The collector has no knowledge of the evaluator's internal
// state beyond the roots it is handed; this keeps GC fully decoupled
// from evaluation order, matching §5's "must not run concurrently with
// evaluation" note (trivially true here, since both run on one
// goroutine and Collect is only ever called between statements).
package gc

import "github.com/huskylang/husk/value"

// Collect runs one full mark-and-sweep cycle over heap, marking every
// Value reachable from roots and freeing everything else. It returns
// the number of Values freed. Cycles through Closures that capture a
// Scope which is later mutated to reference the Closure back are
// handled correctly: mark uses the GCChecked bit as a visited guard, so
// a cycle is traversed exactly once per Value.
func Collect(heap *value.Heap, roots ...*value.Value) int {
	for _, r := range roots {
		mark(r)
	}
	return heap.Sweep()
}

// mark recursively visits v and everything reachable from it, setting
// the GC mark bit along the way. The GCChecked guard both prevents
// infinite recursion on cycles and avoids re-walking shared subtrees.
func mark(v *value.Value) {
	if v == nil || v.GCChecked() {
		return
	}
	v.SetGCChecked(true)

	switch v.Kind {
	case value.Operation:
		mark(v.A)
		mark(v.B)
	case value.Sequence:
		for _, stmt := range v.Statements {
			for _, elem := range stmt {
				mark(elem)
			}
		}
	case value.ScopeCollection:
		for _, scope := range v.Scopes {
			mark(scope)
		}
	case value.Scope:
		for _, e := range v.Entries {
			mark(e.Key)
			mark(e.Val)
		}
	case value.Closure:
		mark(v.Body)
		mark(v.Param)
		mark(v.Captured)
	}
}
