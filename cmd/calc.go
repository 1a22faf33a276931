package cmd

import (
	"github.com/josephlewis42/rshell/commands"
	"github.com/spf13/cobra"
)

// calcCmd runs the calculator
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Add, subtract, multiply or divide two integers.",
	Long: `Reads the first value, an operation (+, -, *, /) and the second value from
stdin, one per line, then prints the result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgram(cmd, commands.Calc, []string{"calc"})
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
