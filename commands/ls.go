package commands

import (
	"fmt"
	"path"

	"github.com/josephlewis42/rshell/core/vos"
)

// Ls prints the names of the entries in the working directory, one per line.
//
// Entries are printed in the order the filesystem returns them and any
// arguments are ignored. Entries that can't be stat'd are printed without
// color.
func Ls(s *Shell, args []string) int {
	virtOS := s.VirtualOS
	dir := virtOS.Getwd()

	names, err := vos.ReadDirNames(virtOS, dir)

	color := NewColorPrinter(virtOS)
	w := virtOS.Stdout()
	for _, name := range names {
		if !color.ShouldColor() {
			fmt.Fprintln(w, name)
			continue
		}

		info, statErr := vos.Lstat(virtOS, path.Join(dir, name))
		if statErr != nil {
			virtOS.LogInvalidInvocation(args, statErr)
			fmt.Fprintln(w, name)
			continue
		}
		fmt.Fprintln(w, color.Sprintf(Dircolor(info), "%s", name))
	}

	if err != nil {
		virtOS.LogInvalidInvocation(args, err)
		fmt.Fprintf(virtOS.Stderr(), "ls error: %v\n", err)
		return 1
	}

	return 0
}
