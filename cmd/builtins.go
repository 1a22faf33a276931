package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/rshell/commands"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var builtinsOutput string

type builtinsListing struct {
	Programs      []string `json:"programs"`
	ShellBuiltins []string `json:"shell_builtins"`
}

// builtinsCmd lists the programs and shell builtins
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin programs and shell commands.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validator.New().Var(builtinsOutput, "oneof=text yaml json"); err != nil {
			return fmt.Errorf("invalid --output %q: must be one of text, yaml, json", builtinsOutput)
		}

		var listing builtinsListing
		for _, entry := range commands.ListBuiltinCommands() {
			listing.Programs = append(listing.Programs, entry.Name)
		}
		listing.ShellBuiltins = commands.ListShellBuiltins()

		w := cmd.OutOrStdout()
		switch builtinsOutput {
		case outputYAML:
			out, err := yaml.Marshal(listing)
			if err != nil {
				return err
			}
			_, err = w.Write(out)
			return err

		case outputJSON:
			out, err := json.MarshalIndent(listing, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(out))
			return err

		default:
			builtins := append([]string(nil), listing.Programs...)
			for _, name := range listing.ShellBuiltins {
				builtins = append(builtins, "shell:"+name)
			}
			sort.Strings(builtins)

			for _, v := range builtins {
				fmt.Fprintln(w, v)
			}
			return nil
		}
	},
}

func init() {
	builtinsCmd.Flags().StringVarP(&builtinsOutput, "output", "o", outputText, "output format (text|yaml|json)")
	rootCmd.AddCommand(builtinsCmd)
}
