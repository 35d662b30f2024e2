/*
File    : husk/eval/evaluator_test.go
Author  : husk contributors
*/

package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runOrFail(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	err := ev.Run(src)
	assert.NoError(t, err)
	return buf.String()
}

// The following cover the worked scenarios of spec.md §8 end to end.

func TestRun_ArithmeticPrecedenceScenario(t *testing.T) {
	out := runOrFail(t, "print 1 + 2 * 3;")
	assert.Equal(t, "7", out)
}

func TestRun_StringConcatenationScenario(t *testing.T) {
	out := runOrFail(t, `print "hello" " " "world";`)
	assert.Equal(t, "hello world", out)
}

func TestRun_ScopeEditAndAccessScenario(t *testing.T) {
	out := runOrFail(t, "let s {}; edit s key 42; print s.key;")
	assert.Equal(t, "42", out)
}

func TestRun_WhileLoopWithDoScenario(t *testing.T) {
	out := runOrFail(t, "let i 0; while (i < 3) { do (print i) (set i i + 1); };")
	assert.Equal(t, "012", out)
}

func TestRun_ClosureApplicationScenario(t *testing.T) {
	out := runOrFail(t, "let f (x => x * x); print f 5;")
	assert.Equal(t, "25", out)
}

func TestRun_CurriedClosureScenario(t *testing.T) {
	out := runOrFail(t, "let mkAdder (x => (y => x + y)); let add3 mkAdder 3; print add3 4;")
	assert.Equal(t, "7", out)
}

// The remaining tests exercise individual statement forms and error
// paths not covered by the scenario table above.

func TestRun_IfPicksFirstTruthyBranch(t *testing.T) {
	out := runOrFail(t, `if (1) (print "yes") (0) (print "no") (print "fallback");`)
	assert.Equal(t, "yes", out)
}

func TestRun_IfFallsThroughToElse(t *testing.T) {
	out := runOrFail(t, `if (0) (print "yes") (print "fallback");`)
	assert.Equal(t, "fallback", out)
}

func TestRun_ReturnShortCircuitsASequence(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	err := ev.Run(`let s { do (return 1); do (print "unreached"); };`)
	assert.NoError(t, err)
	assert.Empty(t, buf.String(), "the second statement must never run")
}

func TestRun_ReturnInsideIfEscapesTheEnclosingSequence(t *testing.T) {
	out := runOrFail(t, `let classify (x => { if (x < 0) (return "neg"); return "nonneg"; }); print (classify (0 - 5));`)
	assert.Equal(t, "neg", out, "the return nested inside if's bracketed action must still exit the closure body, not just the if")
}

func TestRun_MutEditsAnExplicitScopeValue(t *testing.T) {
	out := runOrFail(t, `let s {}; let k s; mut k "key" 7; print k "key";`)
	assert.Equal(t, "7", out)
}

func TestRun_UndefinedVariableIsAFatalError(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	err := ev.Run("print nope;")
	assert.Error(t, err)
}

func TestRun_WrongArityIsAFatalError(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	err := ev.Run("let x;")
	assert.Error(t, err)
}

func TestRun_WhoopsAbortsAndWritesItsMessage(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	err := ev.Run(`whoops "bad state";`)
	assert.Error(t, err)
	assert.Equal(t, "bad state", buf.String())
}

func TestEvalLine_PersistsBindingsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(&buf, strings.NewReader(""))
	assert.NoError(t, ev.EvalLine("let i 0;"))
	assert.NoError(t, ev.EvalLine("set i i + 1;"))
	assert.NoError(t, ev.EvalLine("print i;"))
	assert.Equal(t, "1", buf.String())
}
