package cmd

import (
	"github.com/josephlewis42/rshell/commands"
	"github.com/spf13/cobra"
)

func runShell(cmd *cobra.Command, args []string) error {
	return runProgram(cmd, commands.RunShell, []string{"rshell"})
}
