/*
File    : husk/replio/repl.go
Author  : husk contributors
*/

// Package replio implements husk's interactive Read-Eval-Print Loop,
// adapted from the teacher project's repl package: readline-backed
// line editing and history, colored feedback, and one Evaluator kept
// alive across lines so `let` bindings persist between them.
package replio

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/huskylang/husk/eval"
	"github.com/huskylang/husk/herr"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl constructs a Repl with the given banner, version, separator
// line, and prompt.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner to w.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "husk "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type husk statements and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against out, reading lines via readline
// until EOF, Ctrl+D, or the `.exit` command. One Evaluator persists
// for the whole session so successive `let` bindings accumulate in
// the same global scope.
func (r *Repl) Start(out io.Writer) error {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.NewEvaluator(out, eval.Stdin)

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("bye\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("bye\n"))
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(out, ev, line)
	}
}

// evalLine runs one line against ev, printing a FatalError in red and
// continuing the session rather than aborting it (unlike file-mode
// execution, the REPL survives its own errors).
func (r *Repl) evalLine(out io.Writer, ev *eval.Evaluator, line string) {
	err := ev.EvalLine(line)
	if err == nil {
		return
	}
	if fe, ok := err.(*herr.FatalError); ok {
		redColor.Fprintf(out, "%s\n", fe.Error())
		return
	}
	redColor.Fprintf(out, "error: %v\n", err)
}
