/*
File    : husk/cmd/husk/main.go
Author  : husk contributors
*/

// Command husk is the CLI entry point for the interpreter: `husk run
// <path>` executes a source file, `husk repl` starts an interactive
// session. Out of scope per spec.md §1, kept thin: all real work is
// package eval's job.
package main

import (
	"os"

	"github.com/huskylang/husk/cmd/husk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
