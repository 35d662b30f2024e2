/*
File    : husk/eval/evaluator.go
Author  : husk contributors
*/

// Package eval walks the AST package parser produces, per spec.md
// §4.3: it dispatches on node kind, maintains the active
// ScopeCollection and call stack that also serve as garbage-collector
// roots, and runs the collector after every statement.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/huskylang/husk/gc"
	"github.com/huskylang/husk/herr"
	"github.com/huskylang/husk/lexer"
	"github.com/huskylang/husk/parser"
	"github.com/huskylang/husk/value"
)

// Evaluator holds all the state one execution needs: the heap
// tracker, the most recently parsed AST (a GC root), the active
// ScopeCollection, and the call stack of currently-executing Closures.
// A single Evaluator can run an entire source file (Run) or a REPL's
// successive lines (EvalLine) against one persistent global scope.
type Evaluator struct {
	Heap   *value.Heap
	AST    *value.Value
	Scopes *value.Value

	// ScopeStack holds every caller's ScopeCollection that callClosure
	// has suspended beneath a still-running closure call. e.Scopes only
	// ever points at the *innermost* active collection; without this,
	// a collector run partway through a closure's body would see no
	// root for the caller's collection and sweep it out from under the
	// call, per §4.3.3's "both serve as GC roots."
	ScopeStack []*value.Value
	CallStack  []*value.Value

	out io.Writer
	in  *bufio.Reader
}

// gcRoots assembles every Value the collector must not sweep: the AST,
// the innermost active ScopeCollection, every suspended caller
// collection beneath it, and the Closures currently on the call stack.
func (e *Evaluator) gcRoots() []*value.Value {
	roots := make([]*value.Value, 0, 2+len(e.ScopeStack)+len(e.CallStack))
	roots = append(roots, e.AST, e.Scopes)
	roots = append(roots, e.ScopeStack...)
	roots = append(roots, e.CallStack...)
	return roots
}

// NewEvaluator constructs an Evaluator with a fresh heap, one
// persistent global Scope already pushed, and the given stdout/stdin.
func NewEvaluator(out io.Writer, in io.Reader) *Evaluator {
	heap := value.NewHeap()
	scopes := value.NewScopeCollection(heap)
	scopes.Push(value.NewScope(heap))
	return &Evaluator{
		Heap:   heap,
		Scopes: scopes,
		out:    out,
		in:     bufio.NewReader(in),
	}
}

// SetOutput replaces the writer `print`/`whoops` write to.
func (e *Evaluator) SetOutput(w io.Writer) { e.out = w }

// SetInput replaces the reader `input` reads from.
func (e *Evaluator) SetInput(r io.Reader) { e.in = bufio.NewReader(r) }

// Run lexes, parses, and evaluates a complete source file, reusing
// the Evaluator's persistent global scope. It runs the collector
// after every statement and once more at the end with the global
// scope no longer rooted, per §4.5.
func (e *Evaluator) Run(src string) error {
	root, err := e.parse(src)
	if err != nil {
		return err
	}
	_, err = e.evalStatements(root.Statements)
	if err != nil {
		return err
	}
	e.Scopes.Pop()
	gc.Collect(e.Heap, e.gcRoots()...)
	return nil
}

// EvalLine lexes, parses, and evaluates one REPL line against the
// Evaluator's persistent global scope, leaving it pushed so later
// lines observe earlier `let` bindings.
func (e *Evaluator) EvalLine(src string) error {
	root, err := e.parse(src)
	if err != nil {
		return err
	}
	_, err = e.evalStatements(root.Statements)
	return err
}

func (e *Evaluator) parse(src string) (*value.Value, error) {
	tokens, err := lexer.Lex(src, e.Heap)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(tokens, e.Heap)
	if err != nil {
		return nil, err
	}
	e.AST = root
	return root, nil
}

// execResult threads whether a `return` statement fired, per §4.3.1:
// a Sequence stops evaluating further statements as soon as one does.
type execResult struct {
	value    *value.Value
	returned bool
}

// evalStatements evaluates stmts in order against the Evaluator's
// current scope, stopping early if one of them returns. The collector
// runs after every statement (§4.3.1, §4.5).
func (e *Evaluator) evalStatements(stmts []value.Statement) (execResult, error) {
	for _, stmt := range stmts {
		res, err := e.evalStatement(stmt)
		gc.Collect(e.Heap, e.gcRoots()...)
		if rs, ok := err.(*returnSignal); ok {
			return execResult{value: rs.value, returned: true}, nil
		}
		if err != nil {
			return execResult{}, err
		}
		if res.returned {
			return res, nil
		}
	}
	return execResult{}, nil
}

// evaluate dispatches by node kind, per §4.3.
func (e *Evaluator) evaluate(node *value.Value) (*value.Value, error) {
	switch node.Kind {
	case value.Number, value.String, value.Null, value.Scope, value.Closure:
		return node, nil
	case value.Variable:
		if v, ok := e.Scopes.Lookup(node); ok {
			return v, nil
		}
		return nil, herr.New(herr.UndefinedVar, "undefined variable %q", string(node.Bytes))
	case value.Sequence:
		if node.Inline {
			return e.evalInlineStatement(node)
		}
		return e.evalSequence(node)
	case value.Operation:
		return e.evalOperation(node)
	default:
		return nil, herr.New(herr.TypeMismatch, "cannot evaluate token of kind %s", node.Kind)
	}
}

// evalSequence pushes a fresh Scope, evaluates the block's statements,
// pops the Scope, and returns it as the Sequence's value unless a
// `return` short-circuited, per §4.3.
func (e *Evaluator) evalSequence(node *value.Value) (*value.Value, error) {
	scope := value.NewScope(e.Heap)
	e.Scopes.Push(scope)
	res, err := e.evalStatements(node.Statements)
	e.Scopes.Pop()
	if err != nil {
		return nil, err
	}
	if res.returned {
		return res.value, nil
	}
	return scope, nil
}

// returnSignal unwinds a `return` evaluated through an Inline Sequence
// (a bracket-wrapped command used as an argument, e.g. the `(return 1)`
// in `if (x < 0) (return 1);`) back out to the nearest real `{ ... }`
// block, since only evalStatements' loop is positioned to absorb it.
type returnSignal struct{ value *value.Value }

func (r *returnSignal) Error() string { return "return outside a block" }

// evalInlineStatement runs the single Statement an Inline Sequence
// wraps directly in the current scope, with no push/pop of its own: it
// is an argument position, not a block. A `return` inside it does not
// stop here; it is re-raised as a returnSignal so the nearest enclosing
// evalStatements call can absorb it, per §4.3.1's `return`.
func (e *Evaluator) evalInlineStatement(node *value.Value) (*value.Value, error) {
	res, err := e.evalStatement(node.Statements[0])
	if err != nil {
		return nil, err
	}
	if res.returned {
		return nil, &returnSignal{value: res.value}
	}
	return value.NewNull(e.Heap), nil
}

// stdin/stdout access for the `input` statement, kept here rather than
// in statements.go since it is the one place Evaluator's unexported io
// fields are read directly.
func (e *Evaluator) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = trimNewline(line)
	return line, nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Stdin is the default input source for a CLI-driven Evaluator.
var Stdin io.Reader = os.Stdin
