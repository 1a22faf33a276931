package vos

import (
	"os"

	"github.com/josephlewis42/rshell/core/config"
	"github.com/josephlewis42/rshell/core/logger"
	"github.com/spf13/afero"
)

// ProcAttr holds the attributes that will be applied to a new process.
type ProcAttr struct {
	// Dir is the working directory of the process.
	Dir string
	// Args holds the process arguments, starting with the program name.
	Args []string
	// Files holds the standard streams, nil uses NewNullIO.
	Files VIO
	// PTY describes the attached terminal.
	PTY PTY
	// Config holds the runtime configuration, nil uses config.Default.
	Config *config.Configuration
	// Recorder receives session events, nil drops them.
	Recorder logger.Recorder
}

// ProcOS is a VOS for a single process running over a VFS.
type ProcOS struct {
	VFS
	VIO

	dir      string
	args     []string
	pty      PTY
	config   *config.Configuration
	recorder logger.Recorder
}

var _ VOS = (*ProcOS)(nil)
var _ afero.Lstater = (*ProcOS)(nil)

// NewProcOS creates a process over the filesystem with the given attributes.
func NewProcOS(fs VFS, attr *ProcAttr) *ProcOS {
	if attr == nil {
		attr = &ProcAttr{}
	}

	proc := &ProcOS{
		VFS:      fs,
		VIO:      attr.Files,
		dir:      attr.Dir,
		args:     append([]string(nil), attr.Args...),
		pty:      attr.PTY,
		config:   attr.Config,
		recorder: attr.Recorder,
	}

	if proc.VIO == nil {
		proc.VIO = NewNullIO()
	}
	if proc.dir == "" {
		proc.dir = "."
	}
	if proc.config == nil {
		proc.config = config.Default()
	}
	if proc.recorder == nil {
		proc.recorder = logger.NewNopRecorder()
	}

	return proc
}

// Run executes the process function and returns its exit code.
func (p *ProcOS) Run(process ProcessFunc) int {
	return process(p)
}

// LstatIfPossible uses the filesystem's Lstat if it has one, otherwise Stat.
func (p *ProcOS) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lstater, ok := p.VFS.(afero.Lstater); ok {
		return lstater.LstatIfPossible(name)
	}
	info, err := p.VFS.Stat(name)
	return info, false, err
}

func (p *ProcOS) Args() []string {
	return p.args
}

func (p *ProcOS) Getwd() string {
	return p.dir
}

func (p *ProcOS) GetPTY() PTY {
	return p.pty
}

func (p *ProcOS) Config() *config.Configuration {
	return p.config
}

func (p *ProcOS) LogRunCommand(args []string) {
	p.record(logger.Event{Kind: logger.RunCommand, Command: args})
}

func (p *ProcOS) LogUnknownCommand(args []string) {
	p.record(logger.Event{Kind: logger.UnknownCommand, Command: args})
}

func (p *ProcOS) LogInvalidInvocation(args []string, err error) {
	event := logger.Event{Kind: logger.InvalidInvocation, Command: args}
	if err != nil {
		event.Error = err.Error()
	}
	p.record(event)
}

func (p *ProcOS) record(event logger.Event) {
	// Recorder failures are ignored.
	_ = p.recorder.Record(event)
}
