/*
File    : husk/printer/printer.go
Author  : husk contributors
*/

// Package printer implements husk's print format (§6): integers in
// decimal, doubles with round-trip precision, Strings either raw
// (non-literal, used by `print`/`whoops`) or double-quoted and escaped
// (literal, used when a String appears nested inside a printed
// Scope), and Scopes as brace-delimited, indented `let K V;` lines.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huskylang/husk/value"
)

// WriteNonLiteral writes v to w using the non-literal form `print` and
// `whoops` use: Strings print as raw bytes, everything else as Literal
// would.
func WriteNonLiteral(w io.Writer, v *value.Value) {
	io.WriteString(w, NonLiteral(v))
}

// NonLiteral renders v the way `print`/`whoops` do.
func NonLiteral(v *value.Value) string {
	if v.Kind == value.String {
		return string(v.Bytes)
	}
	return Literal(v, 0)
}

// Literal renders v the way it appears nested inside a printed Scope:
// Strings are double-quoted with embedded quotes escaped, Scopes are
// indented by depth, everything else matches NonLiteral.
func Literal(v *value.Value, depth int) string {
	switch v.Kind {
	case value.Null:
		return "?"
	case value.Number:
		return formatNumber(v.Num)
	case value.String:
		return quoteString(string(v.Bytes))
	case value.Variable:
		return string(v.Bytes)
	case value.Scope:
		return formatScope(v, depth)
	case value.Closure:
		return "<closure>"
	case value.ScopeCollection:
		return "<scope-collection>"
	case value.Sequence:
		return "<sequence>"
	case value.Operation:
		return "<operation>"
	default:
		return ""
	}
}

func formatNumber(n value.Number) string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// formatScope renders a Scope as a brace-delimited block with one
// `let K V;` line per entry, indented by depth (§6).
func formatScope(s *value.Value, depth int) string {
	indent := strings.Repeat("  ", depth)
	innerIndent := strings.Repeat("  ", depth+1)
	if len(s.Entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%slet %s %s;\n", innerIndent, Literal(e.Key, depth+1), Literal(e.Val, depth+1))
	}
	b.WriteString(indent)
	b.WriteByte('}')
	return b.String()
}
