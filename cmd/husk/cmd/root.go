/*
File    : husk/cmd/husk/cmd/root.go
Author  : husk contributors
*/

// Package cmd wires husk's cobra command tree: the root command plus
// its `run` and `repl` subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the interpreter's reported version string.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "husk",
	Short: "husk is a small dynamically-typed scripting language",
	Long: "husk is a tree-walking interpreter: a source file (or a REPL line) is\n" +
		"lexed, parsed into an AST, and evaluated against a chain of scopes,\n" +
		"with a mark-and-sweep collector run after every statement.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, returning any error from cobra or
// from the subcommand's own RunE.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}
