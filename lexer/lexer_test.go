/*
File    : husk/lexer/lexer_test.go
Author  : husk contributors
*/

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huskylang/husk/value"
)

func lexOrFail(t *testing.T, src string) []*value.Value {
	t.Helper()
	heap := value.NewHeap()
	tokens, err := Lex(src, heap)
	assert.NoError(t, err)
	return tokens
}

func TestLex_NumbersAndOperators(t *testing.T) {
	tokens := lexOrFail(t, "123 + 2 - 12")

	assert.Len(t, tokens, 5)
	assert.Equal(t, value.Number, tokens[0].Kind)
	assert.Equal(t, int64(123), tokens[0].Num.Int)
	assert.Equal(t, value.Operation, tokens[1].Kind)
	assert.Equal(t, value.OpAdd, tokens[1].Op)
	assert.Equal(t, int64(2), tokens[2].Num.Int)
	assert.Equal(t, value.OpSub, tokens[3].Op)
	assert.Equal(t, int64(12), tokens[4].Num.Int)
}

func TestLex_NegativeNumberVsSubtraction(t *testing.T) {
	tokens := lexOrFail(t, "5-3")
	assert.Len(t, tokens, 3, "a '-' right after a Number always starts a fresh operator, forcing a boundary")
	assert.Equal(t, value.Number, tokens[0].Kind)
	assert.Equal(t, value.Operation, tokens[1].Kind)
	assert.Equal(t, value.OpSub, tokens[1].Op)
	assert.Equal(t, value.Number, tokens[2].Kind)

	tokens = lexOrFail(t, "x -3")
	assert.Len(t, tokens, 2, "a '-' at a token boundary followed by a digit starts a negative Number")
	assert.Equal(t, value.Variable, tokens[0].Kind)
	assert.Equal(t, value.Number, tokens[1].Kind)
	assert.Equal(t, int64(-3), tokens[1].Num.Int)
}

func TestLex_FloatNumber(t *testing.T) {
	tokens := lexOrFail(t, "3.14")
	assert.Len(t, tokens, 1)
	assert.True(t, tokens[0].Num.IsFloat)
	assert.Equal(t, 3.14, tokens[0].Num.Float)
}

func TestLex_MultiCharOperators(t *testing.T) {
	tokens := lexOrFail(t, "a <= b >= c == d != e => f")
	var ops []value.Operator
	for _, tok := range tokens {
		if tok.Kind == value.Operation {
			ops = append(ops, tok.Op)
		}
	}
	assert.Equal(t, []value.Operator{value.OpLe, value.OpGe, value.OpEq, value.OpNe, value.OpClosure}, ops)
}

func TestLex_StringEscapes(t *testing.T) {
	tokens := lexOrFail(t, `"a\nb\tc\x41"`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, value.String, tokens[0].Kind)
	assert.Equal(t, "a\nb\tcA", string(tokens[0].Bytes))
}

func TestLex_Comments(t *testing.T) {
	tokens := lexOrFail(t, "1 # this is ignored # + 2")
	assert.Len(t, tokens, 3)
	assert.Equal(t, value.Number, tokens[0].Kind)
	assert.Equal(t, value.Operation, tokens[1].Kind)
	assert.Equal(t, value.Number, tokens[2].Kind)
}

func TestLex_BackslashForcesVariable(t *testing.T) {
	tokens := lexOrFail(t, `a\+b`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, value.Variable, tokens[0].Kind)
	assert.Equal(t, "a+b", string(tokens[0].Bytes))
}

func TestLex_BracesBracketsTerminatorsAreSingleByte(t *testing.T) {
	tokens := lexOrFail(t, "{(});")
	assert.Len(t, tokens, 5)
	assert.Equal(t, value.Brace, tokens[0].Kind)
	assert.False(t, tokens[0].Closing)
	assert.Equal(t, value.Bracket, tokens[1].Kind)
	assert.False(t, tokens[1].Closing)
	assert.Equal(t, value.Bracket, tokens[2].Kind)
	assert.True(t, tokens[2].Closing)
	assert.Equal(t, value.Brace, tokens[3].Kind)
	assert.True(t, tokens[3].Closing)
}

func TestLex_NullLiteral(t *testing.T) {
	tokens := lexOrFail(t, "?")
	assert.Len(t, tokens, 1)
	assert.Equal(t, value.Null, tokens[0].Kind)
}

func TestLex_UnrecognizedOperatorKeepsApplicationTag(t *testing.T) {
	tokens := lexOrFail(t, "$")
	assert.Len(t, tokens, 1)
	assert.Equal(t, value.Operation, tokens[0].Kind)
	assert.Equal(t, value.OpApplication, tokens[0].Op)
}
