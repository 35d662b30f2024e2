/*
File    : husk/value/scope.go
Author  : husk contributors
*/

package value

// NewScope constructs an empty Scope Value and registers it on heap.
// Scope is the single building block for both lexical variable frames
// and user-facing objects (§3); nothing distinguishes the two by type.
func NewScope(heap *Heap) *Value {
	return heap.register(&Value{Kind: Scope})
}

// Get performs a linear scan for k under structural equality (§4.6)
// and returns the bound value, or (nil, false) if k is absent. The
// receiver must have Kind == Scope.
func (s *Value) Get(k *Value) (*Value, bool) {
	for _, e := range s.Entries {
		if Equal(e.Key, k) {
			return e.Val, true
		}
	}
	return nil, false
}

// Has reports whether k is bound in s. The receiver must have
// Kind == Scope.
func (s *Value) Has(k *Value) bool {
	_, ok := s.Get(k)
	return ok
}

// Set updates the existing mapping for k in place if present,
// otherwise appends a new (k, v) entry, preserving insertion order.
// The receiver must have Kind == Scope.
func (s *Value) Set(k, v *Value) {
	for i, e := range s.Entries {
		if Equal(e.Key, k) {
			s.Entries[i].Val = v
			return
		}
	}
	s.Entries = append(s.Entries, Entry{Key: k, Val: v})
}

// Delete removes at most one mapping for k, shifting later entries
// back to preserve order, and reports whether a mapping was removed.
// The receiver must have Kind == Scope.
func (s *Value) Delete(k *Value) bool {
	for i, e := range s.Entries {
		if Equal(e.Key, k) {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// NewScopeCollection constructs an empty ScopeCollection Value (a
// lexical-scope chain stack) and registers it on heap.
func NewScopeCollection(heap *Heap) *Value {
	return heap.register(&Value{Kind: ScopeCollection})
}

// Push appends scope as the new innermost frame. The receiver must
// have Kind == ScopeCollection.
func (sc *Value) Push(scope *Value) {
	sc.Scopes = append(sc.Scopes, scope)
}

// Pop removes and returns the innermost frame. Calling Pop on an empty
// ScopeCollection is a programming error in the evaluator (every push
// must be matched), so it panics rather than silently misbehaving.
func (sc *Value) Pop() *Value {
	n := len(sc.Scopes)
	top := sc.Scopes[n-1]
	sc.Scopes = sc.Scopes[:n-1]
	return top
}

// Top returns the innermost frame without removing it.
func (sc *Value) Top() *Value {
	return sc.Scopes[len(sc.Scopes)-1]
}

// ShallowCopy returns a new ScopeCollection Value holding the same
// Scope references in a fresh backing slice, registered on heap. This
// is exactly the snapshot §3 requires for Closure capture: later
// pushes/pops on the original stack do not affect the copy, but
// mutations to the shared Scope values remain visible through it.
func (sc *Value) ShallowCopy(heap *Heap) *Value {
	cp := make([]*Value, len(sc.Scopes))
	copy(cp, sc.Scopes)
	return heap.register(&Value{Kind: ScopeCollection, Scopes: cp})
}

// Lookup searches the chain innermost-to-outer for k and returns the
// first binding found, per §4.3's Variable-evaluation rule.
func (sc *Value) Lookup(k *Value) (*Value, bool) {
	for i := len(sc.Scopes) - 1; i >= 0; i-- {
		if v, ok := sc.Scopes[i].Get(k); ok {
			return v, true
		}
	}
	return nil, false
}

// SetNearest binds k to v in the nearest enclosing scope that already
// binds k, searching outer... no, innermost-to-outer as the chain is
// actually walked, falling back to the innermost scope if no frame
// already has the key. This implements both `set` (§4.3.1) and the
// "nearest enclosing scope or innermost" rule `input` uses (§9).
func (sc *Value) SetNearest(k, v *Value) {
	for i := len(sc.Scopes) - 1; i >= 0; i-- {
		if sc.Scopes[i].Has(k) {
			sc.Scopes[i].Set(k, v)
			return
		}
	}
	sc.Top().Set(k, v)
}
