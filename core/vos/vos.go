package vos

import (
	"io"

	"github.com/josephlewis42/rshell/core/config"
)

// PTY describes the terminal attached to a process, if any.
type PTY struct {
	// Width of the terminal in columns, used for line editing.
	Width int
	IsPTY bool
}

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VProc holds information about the running process.
type VProc interface {
	// Args returns the process arguments, starting with the program name.
	Args() []string
	// Getwd returns the working directory of the process.
	Getwd() string
}

// VLog records session events on behalf of a process.
type VLog interface {
	LogRunCommand(args []string)
	LogUnknownCommand(args []string)
	LogInvalidInvocation(args []string, err error)
}

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VFS
	VProc
	VLog

	GetPTY() PTY
	Config() *config.Configuration
}

// ProcessFunc is the entrypoint of a program, it returns the exit code.
type ProcessFunc func(virtOS VOS) int
