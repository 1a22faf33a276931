// Package vostest runs programs against a deterministic in-memory OS.
package vostest

import (
	"bytes"
	"io"

	"github.com/josephlewis42/rshell/core/config"
	"github.com/josephlewis42/rshell/core/logger"
	"github.com/josephlewis42/rshell/core/vos"
)

// WorkingDir is the working directory of every deterministic process.
const WorkingDir = "/home/rshell"

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// If Dir is non-empty, the process runs in that directory instead of
	// WorkingDir. The directory isn't created.
	Dir string
	// Config overrides the default configuration.
	Config *config.Configuration
	// Recorder receives session events, nil drops them.
	Recorder logger.Recorder

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// Setup is called with the filesystem before the process starts.
	Setup func(vos.VFS) error
	// WrapFs, if set, replaces the filesystem seen by the process after Setup
	// has run.
	WrapFs func(vos.VFS) vos.VFS
}

func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

func (c *Cmd) CombinedOutput() ([]byte, error) {
	// stdout, stderr
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the comand and waits for it to complete.
func (c *Cmd) Run() error {
	fs := vos.NewMemFs()
	if err := fs.MkdirAll(WorkingDir, 0755); err != nil {
		return err
	}

	if c.Setup != nil {
		if err := c.Setup(fs); err != nil {
			return err
		}
	}

	var procFs vos.VFS = fs
	if c.WrapFs != nil {
		procFs = c.WrapFs(fs)
	}

	dir := c.Dir
	if dir == "" {
		dir = WorkingDir
	}

	proc := vos.NewProcOS(procFs, &vos.ProcAttr{
		Dir:      dir,
		Args:     c.Argv,
		Files:    vos.NewVIOAdapter(c.Stdin, c.Stdout, c.Stderr),
		Config:   c.Config,
		Recorder: c.Recorder,
	})

	c.ExitStatus = proc.Run(c.Process)
	return nil
}
