package commands

import (
	"fmt"
	"strings"
)

// Echo prints its arguments separated by single spaces.
func Echo(s *Shell, args []string) int {
	fmt.Fprintln(s.VirtualOS.Stdout(), strings.Join(args[1:], " "))
	return 0
}
