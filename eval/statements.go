/*
File    : husk/eval/statements.go
Author  : husk contributors
*/

package eval

import (
	"io"
	"strings"

	"github.com/huskylang/husk/herr"
	"github.com/huskylang/husk/iohelper"
	"github.com/huskylang/husk/printer"
	"github.com/huskylang/husk/value"
)

// evalStatement dispatches one Statement by its head command name, per
// the table in §4.3.1. The head must be a Variable naming a built-in.
func (e *Evaluator) evalStatement(stmt value.Statement) (execResult, error) {
	if len(stmt) == 0 {
		return execResult{}, nil
	}
	head := stmt[0]
	if head.Kind != value.Variable {
		return execResult{}, herr.New(herr.UnknownCommand, "statement head must be a command name")
	}
	args := stmt[1:]

	switch string(head.Bytes) {
	case "do":
		return e.execDo(args)
	case "return":
		return e.execReturn(args)
	case "print":
		return e.execPrint(args)
	case "whoops":
		return e.execWhoops(args)
	case "input":
		return e.execInput(args)
	case "readfile":
		return e.execReadfile(args)
	case "writefile":
		return e.execWritefile(args)
	case "if":
		return e.execIf(args)
	case "while":
		return e.execWhile(args)
	case "let":
		return e.execLet(args)
	case "set":
		return e.execSet(args)
	case "mut":
		return e.execMut(args)
	case "edit":
		return e.execEdit(args)
	default:
		return execResult{}, herr.New(herr.UnknownCommand, "unknown command %q", string(head.Bytes))
	}
}

func (e *Evaluator) execDo(args []*value.Value) (execResult, error) {
	for _, a := range args {
		if _, err := e.evaluate(a); err != nil {
			return execResult{}, err
		}
	}
	return execResult{}, nil
}

func (e *Evaluator) execReturn(args []*value.Value) (execResult, error) {
	if len(args) != 1 {
		return execResult{}, herr.New(herr.WrongArity, "return takes exactly 1 argument, got %d", len(args))
	}
	v, err := e.evaluate(args[0])
	if err != nil {
		return execResult{}, err
	}
	return execResult{value: v, returned: true}, nil
}

func (e *Evaluator) execPrint(args []*value.Value) (execResult, error) {
	for _, a := range args {
		v, err := e.evaluate(a)
		if err != nil {
			return execResult{}, err
		}
		printer.WriteNonLiteral(e.out, v)
	}
	return execResult{}, nil
}

func (e *Evaluator) execWhoops(args []*value.Value) (execResult, error) {
	var msg strings.Builder
	for _, a := range args {
		v, err := e.evaluate(a)
		if err != nil {
			return execResult{}, err
		}
		text := printer.NonLiteral(v)
		io.WriteString(e.out, text)
		msg.WriteString(text)
	}
	return execResult{}, herr.New(herr.WhoopsAbort, "%s", msg.String())
}

func (e *Evaluator) execInput(args []*value.Value) (execResult, error) {
	if len(args) != 1 {
		return execResult{}, herr.New(herr.WrongArity, "input takes exactly 1 argument, got %d", len(args))
	}
	name := args[0]
	if name.Kind != value.Variable {
		return execResult{}, herr.New(herr.TypeMismatch, "input's argument must be a variable name")
	}
	line, err := e.readLine()
	if err != nil {
		return execResult{}, herr.New(herr.UnreadableFile, "input: %v", err)
	}
	e.Scopes.SetNearest(name, value.NewString(e.Heap, line))
	return execResult{}, nil
}

func (e *Evaluator) execReadfile(args []*value.Value) (execResult, error) {
	if len(args) != 2 {
		return execResult{}, herr.New(herr.WrongArity, "readfile takes exactly 2 arguments, got %d", len(args))
	}
	name := args[0]
	if name.Kind != value.Variable {
		return execResult{}, herr.New(herr.TypeMismatch, "readfile's first argument must be a variable name")
	}
	path, err := e.evaluate(args[1])
	if err != nil {
		return execResult{}, err
	}
	if path.Kind != value.String {
		return execResult{}, herr.New(herr.TypeMismatch, "readfile's path argument must be a string")
	}
	content, ok := iohelper.ReadFile(string(path.Bytes))
	var bound *value.Value
	if ok {
		bound = value.NewString(e.Heap, content)
	} else {
		bound = value.NewNull(e.Heap)
	}
	e.Scopes.Top().Set(name, bound)
	return execResult{}, nil
}

func (e *Evaluator) execWritefile(args []*value.Value) (execResult, error) {
	if len(args) != 3 {
		return execResult{}, herr.New(herr.WrongArity, "writefile takes exactly 3 arguments, got %d", len(args))
	}
	name := args[0]
	if name.Kind != value.Variable {
		return execResult{}, herr.New(herr.TypeMismatch, "writefile's first argument must be a variable name")
	}
	payload, err := e.evaluate(args[1])
	if err != nil {
		return execResult{}, err
	}
	if payload.Kind != value.String {
		return execResult{}, herr.New(herr.TypeMismatch, "writefile's payload argument must be a string")
	}
	path, err := e.evaluate(args[2])
	if err != nil {
		return execResult{}, err
	}
	if path.Kind != value.String {
		return execResult{}, herr.New(herr.TypeMismatch, "writefile's path argument must be a string")
	}
	ok := iohelper.WriteFile(string(path.Bytes), string(payload.Bytes))
	result := int64(0)
	if ok {
		result = 1
	}
	e.Scopes.Top().Set(name, value.NewInt(e.Heap, result))
	return execResult{}, nil
}

func (e *Evaluator) execIf(args []*value.Value) (execResult, error) {
	if len(args) < 2 {
		return execResult{}, herr.New(herr.WrongArity, "if takes at least 2 arguments, got %d", len(args))
	}
	i := 0
	for i+1 < len(args) {
		cond, err := e.evaluate(args[i])
		if err != nil {
			return execResult{}, err
		}
		if cond.Truthy() {
			_, err := e.evaluate(args[i+1])
			return execResult{}, err
		}
		i += 2
	}
	if i < len(args) {
		if _, err := e.evaluate(args[i]); err != nil {
			return execResult{}, err
		}
	}
	return execResult{}, nil
}

func (e *Evaluator) execWhile(args []*value.Value) (execResult, error) {
	if len(args) != 2 {
		return execResult{}, herr.New(herr.WrongArity, "while takes exactly 2 arguments, got %d", len(args))
	}
	cond, action := args[0], args[1]
	for {
		c, err := e.evaluate(cond)
		if err != nil {
			return execResult{}, err
		}
		if !c.Truthy() {
			return execResult{}, nil
		}
		if _, err := e.evaluate(action); err != nil {
			return execResult{}, err
		}
	}
}

func (e *Evaluator) execLet(args []*value.Value) (execResult, error) {
	if len(args) != 2 {
		return execResult{}, herr.New(herr.WrongArity, "let takes exactly 2 arguments, got %d", len(args))
	}
	val, err := e.evaluate(args[1])
	if err != nil {
		return execResult{}, err
	}
	e.Scopes.Top().Set(args[0], val)
	return execResult{}, nil
}

func (e *Evaluator) execSet(args []*value.Value) (execResult, error) {
	if len(args) != 2 {
		return execResult{}, herr.New(herr.WrongArity, "set takes exactly 2 arguments, got %d", len(args))
	}
	val, err := e.evaluate(args[1])
	if err != nil {
		return execResult{}, err
	}
	e.Scopes.SetNearest(args[0], val)
	return execResult{}, nil
}

func (e *Evaluator) execMut(args []*value.Value) (execResult, error) {
	if len(args) != 3 {
		return execResult{}, herr.New(herr.WrongArity, "mut takes exactly 3 arguments, got %d", len(args))
	}
	scope, err := e.evaluate(args[0])
	if err != nil {
		return execResult{}, err
	}
	if scope.Kind != value.Scope {
		return execResult{}, herr.New(herr.TypeMismatch, "mut's first argument must be a scope")
	}
	key, err := e.evaluate(args[1])
	if err != nil {
		return execResult{}, err
	}
	val, err := e.evaluate(args[2])
	if err != nil {
		return execResult{}, err
	}
	scope.Set(key, val)
	return execResult{}, nil
}

func (e *Evaluator) execEdit(args []*value.Value) (execResult, error) {
	if len(args) != 3 {
		return execResult{}, herr.New(herr.WrongArity, "edit takes exactly 3 arguments, got %d", len(args))
	}
	scope, err := e.evaluate(args[0])
	if err != nil {
		return execResult{}, err
	}
	if scope.Kind != value.Scope {
		return execResult{}, herr.New(herr.TypeMismatch, "edit's first argument must be a scope")
	}
	val, err := e.evaluate(args[2])
	if err != nil {
		return execResult{}, err
	}
	scope.Set(args[1], val)
	return execResult{}, nil
}
