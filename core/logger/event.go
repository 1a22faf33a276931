package logger

import (
	"fmt"
	"strings"
)

// EventKind identifies the type of an Event.
type EventKind int

const (
	// RunCommand is recorded whenever a recognized command is dispatched.
	RunCommand EventKind = iota
	// UnknownCommand is recorded when a command isn't recognized.
	UnknownCommand
	// InvalidInvocation is recorded when a command fails because of its input
	// or environment.
	InvalidInvocation
)

func (k EventKind) String() string {
	switch k {
	case RunCommand:
		return "run_command"
	case UnknownCommand:
		return "unknown_command"
	case InvalidInvocation:
		return "invalid_invocation"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single thing that happened in a session.
type Event struct {
	Kind    EventKind
	Command []string
	Error   string
}

func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	fmt.Fprintf(&sb, " command=%q", e.Command)
	if e.Error != "" {
		fmt.Fprintf(&sb, " error=%q", e.Error)
	}
	return sb.String()
}

// CommandName returns the first word of the command or an empty string.
func (e Event) CommandName() string {
	if len(e.Command) == 0 {
		return ""
	}
	return e.Command[0]
}
