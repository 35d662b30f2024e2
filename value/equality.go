/*
File    : husk/value/equality.go
Author  : husk contributors
*/

package value

// Equal implements husk's structural equality (§4.6): two Values are
// equal if they share identity, or their kinds match and their
// payloads compare equal per kind. Operation, Sequence,
// ScopeCollection, and Closure are not structurally comparable and are
// only ever equal by identity.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Null:
		return true
	case Number:
		return a.Num.AsFloat() == b.Num.AsFloat()
	case String, Variable:
		return string(a.Bytes) == string(b.Bytes)
	case Scope:
		return scopesEqual(a, b)
	default:
		return false
	}
}

// scopesEqual implements the Scope case of §4.6: same entry count, and
// every entry in a has a matching key in b with an equal value, order
// independent.
func scopesEqual(a, b *Value) bool {
	if len(a.Entries) != len(b.Entries) {
		return false
	}
	for _, ea := range a.Entries {
		bv, ok := b.Get(ea.Key)
		if !ok || !Equal(ea.Val, bv) {
			return false
		}
	}
	return true
}
