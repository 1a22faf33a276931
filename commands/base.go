package commands

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/rshell/core/vos"
)

// AllCommands holds a list of all registered programs.
var AllCommands = make(map[string]vos.ProcessFunc)

// mustAddCmd registers a program, panicking if the name is already taken.
func mustAddCmd(name string, cmd vos.ProcessFunc) {
	if _, ok := AllCommands[name]; ok {
		panic(fmt.Sprintf("duplicate command %q", name))
	}
	AllCommands[name] = cmd
}

// CommandEntry is a registered program.
type CommandEntry struct {
	Name string
	Proc vos.ProcessFunc
}

// ListBuiltinCommands returns every registered program sorted by name.
func ListBuiltinCommands() []CommandEntry {
	var out []CommandEntry
	for name, proc := range AllCommands {
		out = append(out, CommandEntry{Name: name, Proc: proc})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}

// ListShellBuiltins returns the names of the shell builtins sorted by name.
func ListShellBuiltins() []string {
	var out []string
	for name := range AllBuiltins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
