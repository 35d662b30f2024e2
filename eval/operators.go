/*
File    : husk/eval/operators.go
Author  : husk contributors
*/

package eval

import (
	"math"

	"github.com/huskylang/husk/herr"
	"github.com/huskylang/husk/value"
)

// evalOperation evaluates an Operation node per §4.3.2. Operands are
// evaluated eagerly except for Closure, whose operands are captured
// unevaluated.
func (e *Evaluator) evalOperation(node *value.Value) (*value.Value, error) {
	switch node.Op {
	case value.OpClosure:
		return e.makeClosure(node)
	case value.OpAccess:
		return e.evalAccess(node)
	case value.OpApplication:
		return e.evalApplication(node)
	}

	a, err := e.evaluate(node.A)
	if err != nil {
		return nil, err
	}
	b, err := e.evaluate(node.B)
	if err != nil {
		return nil, err
	}

	switch node.Op {
	case value.OpEq:
		return e.boolNumber(value.Equal(a, b)), nil
	case value.OpNe:
		return e.boolNumber(!value.Equal(a, b)), nil
	case value.OpAdd, value.OpSub, value.OpMul, value.OpDiv, value.OpMod, value.OpPow:
		return e.evalArith(node.Op, a, b)
	case value.OpLt, value.OpGt, value.OpLe, value.OpGe:
		return e.evalCompare(node.Op, a, b)
	case value.OpBitAnd, value.OpBitOr, value.OpBitXor, value.OpShl, value.OpShr:
		return e.evalBitwise(node.Op, a, b)
	case value.OpSubstrLeft, value.OpSubstrRight:
		return e.evalSubstring(node.Op, a, b)
	default:
		return nil, herr.New(herr.TypeMismatch, "unsupported operator")
	}
}

// makeClosure implements the Closure operator (§4.3.2): a's and b's
// token forms are kept as-is (never evaluated), and the current
// ScopeCollection is shallow-copied to capture it by reference.
func (e *Evaluator) makeClosure(node *value.Value) (*value.Value, error) {
	var param *value.Value
	if node.A != nil && node.A.Kind != value.Null {
		param = node.A
	}
	captured := e.Scopes.ShallowCopy(e.Heap)
	return value.NewClosure(e.Heap, node.B, param, captured), nil
}

// evalAccess implements the Access operator (§4.3.2): the left operand
// must evaluate to a Scope; the right operand is used as a literal
// key, never evaluated.
func (e *Evaluator) evalAccess(node *value.Value) (*value.Value, error) {
	a, err := e.evaluate(node.A)
	if err != nil {
		return nil, err
	}
	if a.Kind != value.Scope {
		return nil, herr.New(herr.TypeMismatch, "'.' requires a scope on the left")
	}
	v, ok := a.Get(node.B)
	if !ok {
		return nil, herr.New(herr.MissingScopeKey, "scope has no key %s", describeKey(node.B))
	}
	return v, nil
}

// evalApplication implements juxtaposition (§4.3.2), dispatching by
// the kind of the evaluated left operand.
func (e *Evaluator) evalApplication(node *value.Value) (*value.Value, error) {
	a, err := e.evaluate(node.A)
	if err != nil {
		return nil, err
	}
	switch a.Kind {
	case value.Scope:
		b, err := e.evaluate(node.B)
		if err != nil {
			return nil, err
		}
		v, ok := a.Get(b)
		if !ok {
			return nil, herr.New(herr.MissingScopeKey, "scope has no key %s", describeKey(b))
		}
		return v, nil
	case value.Closure:
		b, err := e.evaluate(node.B)
		if err != nil {
			return nil, err
		}
		return e.callClosure(a, b)
	case value.String:
		b, err := e.evaluate(node.B)
		if err != nil {
			return nil, err
		}
		if b.Kind != value.String {
			return nil, herr.New(herr.TypeMismatch, "cannot apply a string to a non-string")
		}
		return value.NewString(e.Heap, string(a.Bytes)+string(b.Bytes)), nil
	default:
		return nil, herr.New(herr.TypeMismatch, "value of kind %s is not applicable", a.Kind)
	}
}

// callClosure implements the closure call protocol of §4.3.3. The
// pops are performed via defer so they happen on every exit path,
// including an error returned from evaluating the body.
func (e *Evaluator) callClosure(c, arg *value.Value) (*value.Value, error) {
	scopes := c.Captured.ShallowCopy(e.Heap)
	if c.Param != nil {
		paramScope := value.NewScope(e.Heap)
		paramScope.Set(c.Param, arg)
		scopes.Push(paramScope)
	}

	// The caller's collection is pushed onto ScopeStack, not just a Go
	// local, so it stays a GC root for the duration of the call: the
	// collector runs after every statement the closure's body
	// evaluates, while e.Scopes points at the closure's own copy.
	e.ScopeStack = append(e.ScopeStack, e.Scopes)
	savedScopes := e.Scopes
	e.Scopes = scopes
	e.CallStack = append(e.CallStack, c)
	defer func() {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
		e.Scopes = savedScopes
		e.ScopeStack = e.ScopeStack[:len(e.ScopeStack)-1]
	}()

	return e.evaluate(c.Body)
}

func describeKey(k *value.Value) string {
	if k.Kind == value.Variable || k.Kind == value.String {
		return string(k.Bytes)
	}
	return k.Kind.String()
}

func (e *Evaluator) boolNumber(b bool) *value.Value {
	if b {
		return value.NewInt(e.Heap, 1)
	}
	return value.NewInt(e.Heap, 0)
}

func numberOf(v *value.Value) (value.Number, bool) {
	if v.Kind != value.Number {
		return value.Number{}, false
	}
	return v.Num, true
}

func intOf(v *value.Value) (int64, bool) {
	n, ok := numberOf(v)
	if !ok || n.IsFloat {
		return 0, false
	}
	return n.Int, true
}

// evalArith implements arithmetic operators (§4.3.2): the result is a
// double if either operand is a double; integer division promotes to
// double when the divisor is zero or the division is inexact.
func (e *Evaluator) evalArith(op value.Operator, a, b *value.Value) (*value.Value, error) {
	an, aok := numberOf(a)
	bn, bok := numberOf(b)
	if !aok || !bok {
		return nil, herr.New(herr.TypeMismatch, "arithmetic requires number operands")
	}

	if op == value.OpPow {
		return value.NewFloat(e.Heap, math.Pow(an.AsFloat(), bn.AsFloat())), nil
	}
	if op == value.OpMod {
		if an.IsFloat || bn.IsFloat {
			return nil, herr.New(herr.TypeMismatch, "'%%' requires integer operands")
		}
		if bn.Int == 0 {
			return nil, herr.New(herr.TypeMismatch, "modulo by zero")
		}
		return value.NewInt(e.Heap, an.Int%bn.Int), nil
	}

	if !an.IsFloat && !bn.IsFloat {
		switch op {
		case value.OpAdd:
			return value.NewInt(e.Heap, an.Int+bn.Int), nil
		case value.OpSub:
			return value.NewInt(e.Heap, an.Int-bn.Int), nil
		case value.OpMul:
			return value.NewInt(e.Heap, an.Int*bn.Int), nil
		case value.OpDiv:
			if bn.Int == 0 || an.Int%bn.Int != 0 {
				return value.NewFloat(e.Heap, float64(an.Int)/float64(bn.Int)), nil
			}
			return value.NewInt(e.Heap, an.Int/bn.Int), nil
		}
	}

	af, bf := an.AsFloat(), bn.AsFloat()
	switch op {
	case value.OpAdd:
		return value.NewFloat(e.Heap, af+bf), nil
	case value.OpSub:
		return value.NewFloat(e.Heap, af-bf), nil
	case value.OpMul:
		return value.NewFloat(e.Heap, af*bf), nil
	case value.OpDiv:
		return value.NewFloat(e.Heap, af/bf), nil
	default:
		return nil, herr.New(herr.TypeMismatch, "unsupported arithmetic operator")
	}
}

// evalCompare implements the ordering operators (§4.3.2), always
// yielding Number 0 or 1.
func (e *Evaluator) evalCompare(op value.Operator, a, b *value.Value) (*value.Value, error) {
	an, aok := numberOf(a)
	bn, bok := numberOf(b)
	if !aok || !bok {
		return nil, herr.New(herr.TypeMismatch, "comparison requires number operands")
	}
	af, bf := an.AsFloat(), bn.AsFloat()
	var res bool
	switch op {
	case value.OpLt:
		res = af < bf
	case value.OpGt:
		res = af > bf
	case value.OpLe:
		res = af <= bf
	case value.OpGe:
		res = af >= bf
	}
	return e.boolNumber(res), nil
}

// evalBitwise implements the bitwise and shift operators (§4.3.2),
// which require integer operands.
func (e *Evaluator) evalBitwise(op value.Operator, a, b *value.Value) (*value.Value, error) {
	ai, aok := intOf(a)
	bi, bok := intOf(b)
	if !aok || !bok {
		return nil, herr.New(herr.TypeMismatch, "bitwise operators require integer operands")
	}
	switch op {
	case value.OpBitAnd:
		return value.NewInt(e.Heap, ai&bi), nil
	case value.OpBitOr:
		return value.NewInt(e.Heap, ai|bi), nil
	case value.OpBitXor:
		return value.NewInt(e.Heap, ai^bi), nil
	case value.OpShl:
		return value.NewInt(e.Heap, ai<<uint(bi)), nil
	case value.OpShr:
		return value.NewInt(e.Heap, ai>>uint(bi)), nil
	default:
		return nil, herr.New(herr.TypeMismatch, "unsupported bitwise operator")
	}
}

// evalSubstring implements `</` and `>/` (§4.3.2): the left operand
// must be a String, the right a non-negative integer byte count.
func (e *Evaluator) evalSubstring(op value.Operator, a, b *value.Value) (*value.Value, error) {
	if a.Kind != value.String {
		return nil, herr.New(herr.TypeMismatch, "substring operators require a string on the left")
	}
	n, ok := intOf(b)
	if !ok || n < 0 {
		return nil, herr.New(herr.TypeMismatch, "substring operators require a non-negative integer on the right")
	}
	bytes := a.Bytes
	switch op {
	case value.OpSubstrLeft:
		if int(n) > len(bytes) {
			n = int64(len(bytes))
		}
		return value.NewString(e.Heap, string(bytes[:n])), nil
	case value.OpSubstrRight:
		if int(n) >= len(bytes) {
			return value.NewString(e.Heap, ""), nil
		}
		return value.NewString(e.Heap, string(bytes[n:])), nil
	default:
		return nil, herr.New(herr.TypeMismatch, "unsupported substring operator")
	}
}
