/*
File    : husk/lexer/lexer.go
Author  : husk contributors
*/

package lexer

import (
	"strconv"
	"strings"

	"github.com/huskylang/husk/herr"
	"github.com/huskylang/husk/value"
)

// lexer holds the scanning state for one call to Lex. It is not
// exported: callers only ever see the resulting token slice.
type lexer struct {
	src  string
	pos  int
	heap *value.Heap

	tokens []*value.Value

	cur    class
	buf    []byte
	hasDot bool // true once the in-progress Number has consumed a '.'

	inString bool
	strBuf   []byte

	inComment bool
}

// Lex tokenizes src into a sequence of tokens, registering every
// constructed token Value on heap as required by §3's ownership rule.
// A synthetic terminating newline is appended internally to flush the
// final in-progress token, per §4.1.
func Lex(src string, heap *value.Heap) ([]*value.Value, error) {
	lx := &lexer{src: src + "\n", heap: heap}
	if err := lx.run(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}

func (lx *lexer) peekByte() byte {
	if lx.pos+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+1]
}

func (lx *lexer) run() error {
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]

		if lx.inString {
			if err := lx.consumeStringByte(); err != nil {
				return err
			}
			continue
		}

		if b == '\\' {
			lx.pos++
			if lx.pos >= len(lx.src) {
				break
			}
			lx.consume(lx.src[lx.pos], classVariable)
			lx.pos++
			continue
		}

		if lx.inComment {
			if b == '#' {
				lx.inComment = false
			}
			lx.pos++
			continue
		}

		if b == '#' {
			lx.finalize()
			lx.inComment = true
			lx.pos++
			continue
		}

		if b == '"' {
			lx.finalize()
			lx.inString = true
			lx.strBuf = nil
			lx.pos++
			continue
		}

		lx.consume(b, lx.classify(b))
		lx.pos++
	}
	lx.finalize()
	return nil
}

// consume feeds one byte with its (possibly forced) classification
// into the in-progress token, starting a new token whenever the
// classification changes or the current token is a forced single-byte
// kind.
func (lx *lexer) consume(b byte, c class) {
	if c != lx.cur || lx.cur.singleByte() {
		lx.finalize()
		lx.cur = c
		lx.hasDot = false
	}
	if c == classNothing {
		return
	}
	lx.buf = append(lx.buf, b)
	if c == classNumber && b == '.' {
		lx.hasDot = true
	}
	if lx.cur.singleByte() {
		lx.finalize()
	}
}

// classify computes the provisional class of byte b given the lexer's
// current accumulation state, per §4.1's character classification
// table.
func (lx *lexer) classify(b byte) class {
	switch {
	case isWhitespace(b):
		return classNothing
	case b == ';':
		return classTerminator
	case b == '(' || b == ')':
		return classBracket
	case b == '{' || b == '}':
		return classBrace
	case b == '?':
		return classNull
	case b == '-':
		if lx.cur == classNumber {
			// A '-' seen mid-number is always a fresh operator: only a
			// '-' at the start of a token can begin a negative Number.
			return classOperation
		}
		if isDigit(lx.peekByte()) {
			return classNumber
		}
		return classOperation
	case b == '.':
		if lx.cur == classNumber && !lx.hasDot {
			return classNumber
		}
		return classOperation
	case isOperatorChar(b):
		return classOperation
	case isDigit(b):
		if lx.cur == classVariable {
			return classVariable
		}
		return classNumber
	default:
		return classVariable
	}
}

// finalize emits the in-progress token (if any) as a Value and resets
// the accumulator.
func (lx *lexer) finalize() {
	defer func() {
		lx.cur = classNothing
		lx.buf = nil
		lx.hasDot = false
	}()

	if lx.cur == classNothing || len(lx.buf) == 0 {
		return
	}

	switch lx.cur {
	case classTerminator:
		lx.emit(value.NewTerminator(lx.heap))
	case classBracket:
		lx.emit(value.NewBracket(lx.heap, lx.buf[0] == ')'))
	case classBrace:
		lx.emit(value.NewBrace(lx.heap, lx.buf[0] == '}'))
	case classNull:
		lx.emit(value.NewNull(lx.heap))
	case classOperation:
		text := string(lx.buf)
		lx.emit(value.NewOperation(lx.heap, value.LookupOperator(text), nil, nil))
	case classNumber:
		lx.emit(lx.numberValue())
	case classVariable:
		lx.emit(value.NewVariable(lx.heap, string(lx.buf)))
	}
}

func (lx *lexer) numberValue() *value.Value {
	text := string(lx.buf)
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			f = 0
		}
		return value.NewFloat(lx.heap, f)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		n = 0
	}
	return value.NewInt(lx.heap, n)
}

func (lx *lexer) emit(v *value.Value) {
	lx.tokens = append(lx.tokens, v)
}

// consumeStringByte advances the lexer by one logical unit while
// inside a string literal: either one literal byte, or a whole escape
// sequence (\n, \r, \t, \xHH, or "becomes itself").
func (lx *lexer) consumeStringByte() error {
	b := lx.src[lx.pos]

	if b == '"' {
		lx.emit(value.NewString(lx.heap, string(lx.strBuf)))
		lx.inString = false
		lx.strBuf = nil
		lx.pos++
		return nil
	}

	if b != '\\' {
		lx.strBuf = append(lx.strBuf, b)
		lx.pos++
		return nil
	}

	// Escape sequence.
	lx.pos++
	if lx.pos >= len(lx.src) {
		return herr.New(herr.SyntaxError, "unterminated escape at end of input")
	}
	esc := lx.src[lx.pos]
	switch esc {
	case 'n':
		lx.strBuf = append(lx.strBuf, '\n')
		lx.pos++
	case 'r':
		lx.strBuf = append(lx.strBuf, '\r')
		lx.pos++
	case 't':
		lx.strBuf = append(lx.strBuf, '\t')
		lx.pos++
	case 'x':
		lx.pos++
		hi := lx.hexDigitOrZero()
		lo := lx.hexDigitOrZero()
		lx.strBuf = append(lx.strBuf, hi<<4|lo)
	default:
		lx.strBuf = append(lx.strBuf, esc)
		lx.pos++
	}
	return nil
}

// hexDigitOrZero consumes one hex digit if available, advancing pos,
// or returns 0 without advancing if the input runs out. A truncated
// \x escape is undefined behavior per §4.1; husk follows
// original_source's own handling of treating a missing digit as zero.
func (lx *lexer) hexDigitOrZero() byte {
	if lx.pos >= len(lx.src) {
		return 0
	}
	d := hexValue(lx.src[lx.pos])
	if d < 0 {
		return 0
	}
	lx.pos++
	return byte(d)
}

func hexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOperatorChar(b byte) bool {
	switch b {
	case '+', '*', '/', '%', '=', '<', '>', '&', '|', '^', '!', '$':
		return true
	default:
		return false
	}
}
