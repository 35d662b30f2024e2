/*
File    : husk/cmd/husk/cmd/repl.go
Author  : husk contributors
*/

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huskylang/husk/replio"
)

const banner = `
 _               _
| |__  _   _ ___| | __
| '_ \| | | / __| |/ /
| | | | |_| \__ \   <
|_| |_|\__,_|___/_|\_\
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive husk session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := replio.NewRepl(banner, Version, "----------------------------------------", "husk> ")
		return r.Start(cmd.OutOrStdout())
	},
}
