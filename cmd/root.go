package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephlewis42/rshell/core/config"
	"github.com/spf13/cobra"
)

var (
	colorMode string
	verbose   bool
)

func loadConfig() (*config.Configuration, error) {
	configuration := config.Default()
	configuration.Color = colorMode
	configuration.Verbose = verbose

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return configuration, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rshell",
	Short: "A tiny interactive shell",
	Long: `A tiny interactive shell that understands echo, ls and exit.

Run without a subcommand to start the shell, or use "calc" for the calculator.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE:          runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", config.ColorAuto, "colorize ls output (always|auto|never)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log session events to stderr")
}
