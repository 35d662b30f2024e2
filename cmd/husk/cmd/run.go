/*
File    : husk/cmd/husk/cmd/run.go
Author  : husk contributors
*/

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huskylang/husk/eval"
	"github.com/huskylang/husk/herr"
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Execute a husk source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		// Execute prints the returned error; printing here too would
		// emit the diagnostic twice.
		return herr.New(herr.UnreadableFile, "could not read %q: %v", path, err)
	}

	ev := eval.NewEvaluator(cmd.OutOrStdout(), eval.Stdin)
	if err := ev.Run(string(src)); err != nil {
		return err
	}
	return nil
}
