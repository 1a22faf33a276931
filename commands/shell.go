package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/josephlewis42/rshell/core/vos"
)

const (
	// Prompt is shown before each line is read.
	Prompt = "rshell> "

	// ExitCommand ends the session.
	ExitCommand = "exit"

	// unknownCommandFmt must not change, spelling included.
	unknownCommandFmt = "unkown command: %s\n"

	exitUnknownCommand = 127
)

// Shell is an interactive session that dispatches lines to the builtins.
type Shell struct {
	VirtualOS vos.VOS

	lines   lineReader
	lastRet int

	// Set to true to quit the shell
	Quit bool
}

// RunShell runs an interactive session until exit or the end of input.
func RunShell(virtualOS vos.VOS) int {
	s, err := NewShell(virtualOS)
	if err != nil {
		fmt.Fprintf(virtualOS.Stderr(), "rshell: %s\n", err)
		return 1
	}
	defer s.Close()

	return s.runInteractive()
}

// NewShell creates a shell reading lines from the process's stdin.
func NewShell(virtualOS vos.VOS) (*Shell, error) {
	lines, err := newLineReader(virtualOS)
	if err != nil {
		return nil, err
	}

	return &Shell{
		VirtualOS: virtualOS,
		lines:     lines,
	}, nil
}

// Close releases the terminal.
func (s *Shell) Close() error {
	return s.lines.Close()
}

// LastReturn is the exit code of the last command that was dispatched.
func (s *Shell) LastReturn() int {
	return s.lastRet
}

func (s *Shell) runInteractive() int {
	for !s.Quit {
		line, err := s.lines.ReadLine(Prompt)
		if err != nil {
			return 0 // Input closed or unreadable, quit.
		}

		s.RunCommand(line)
	}
	return 0
}

// RunCommand dispatches a single line of input.
func (s *Shell) RunCommand(line string) {
	input := strings.TrimRightFunc(line, unicode.IsSpace)

	switch input {
	case ExitCommand:
		s.Quit = true
		return
	case "":
		return
	}

	args := strings.Fields(input)
	if len(args) == 0 {
		return
	}

	if builtin, ok := AllBuiltins[args[0]]; ok {
		s.VirtualOS.LogRunCommand(args)
		s.lastRet = builtin.Main(s, args)
		return
	}

	s.VirtualOS.LogUnknownCommand(args)
	fmt.Fprintf(s.VirtualOS.Stdout(), unknownCommandFmt, args[0])
	s.lastRet = exitUnknownCommand
}

func init() {
	mustAddCmd("rshell", RunShell)
}
