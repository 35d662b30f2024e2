/*
File    : husk/parser/precedence.go
Author  : husk contributors
*/

package parser

import (
	"github.com/huskylang/husk/herr"
	"github.com/huskylang/husk/value"
)

// resolve folds the flat operand/operator run list[start:end] into a
// single AST node, per §4.2's precedence-resolver algorithm:
//
//  1. A window of one element resolves to that element directly.
//  2. Otherwise scan left-to-right for the last unbound Operation
//     whose precedence is ≥ the current record, with one exception:
//     once the champion is the right-associative Closure operator,
//     a later candidate needs strictly greater precedence to dethrone
//     it (this is what makes "a=>b=>c" group as a=>(b=>c) while
//     "a+b+c" groups as (a+b)+c).
//  3. If no operator was found and the second-to-last element is
//     itself an Operation, it is chosen as the pivot (the Access
//     operator reaching here via juxtaposition).
//  4. Otherwise the window collapses to an application by
//     juxtaposition: Application(resolve(start, end-1), list[end-1]).
//
// Once a pivot is chosen, its A and B operands are wired to the
// recursively resolved left and right sub-windows and the pivot
// itself is returned as the root of this window.
func resolve(heap *value.Heap, list []*value.Value, start, end int) (*value.Value, error) {
	if end <= start {
		return nil, herr.New(herr.SyntaxError, "empty expression")
	}
	if end-start == 1 {
		return list[start], nil
	}

	pivot := findPivot(list, start, end)

	if pivot == -1 && end-start >= 2 && list[end-2].Kind == value.Operation {
		pivot = end - 2
	}

	if pivot == -1 {
		left, err := resolve(heap, list, start, end-1)
		if err != nil {
			return nil, err
		}
		return value.NewOperation(heap, value.OpApplication, left, list[end-1]), nil
	}

	left, err := resolve(heap, list, start, pivot)
	if err != nil {
		return nil, err
	}
	right, err := resolve(heap, list, pivot+1, end)
	if err != nil {
		return nil, err
	}
	node := list[pivot]
	node.A = left
	node.B = right
	return node, nil
}

// findPivot scans list[start:end] for the Operation token that should
// become this window's root, applying the tie-break and
// right-associativity rules documented on resolve. It returns -1 if
// the window contains no eligible Operation.
func findPivot(list []*value.Value, start, end int) int {
	champion := -1
	championPrec := 0

	for i := start; i < end; i++ {
		v := list[i]
		if v.Kind != value.Operation || v.A != nil {
			continue
		}
		prec := value.Precedence[v.Op]

		if champion == -1 {
			champion = i
			championPrec = prec
			continue
		}

		if list[champion].Op == value.OpClosure {
			if prec > championPrec {
				champion = i
				championPrec = prec
			}
			continue
		}

		if prec >= championPrec {
			champion = i
			championPrec = prec
		}
	}

	return champion
}
