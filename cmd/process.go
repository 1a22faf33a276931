package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/rshell/core/logger"
	"github.com/josephlewis42/rshell/core/vos"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

// exitCodeError carries a non-zero program exit code back to Execute.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// runProgram runs a program over the host filesystem and the command's stdio.
func runProgram(cmd *cobra.Command, process vos.ProcessFunc, argv []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	appLogger := log.New(io.Discard, "[rshell] ", log.LstdFlags)
	if cfg.Verbose {
		appLogger.SetOutput(cmd.ErrOrStderr())
	}
	session := logger.NewSessionRecorder(logger.NewTextRecorder(appLogger))

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("couldn't get working directory: %w", err)
	}

	proc := vos.NewProcOS(vos.NewOsFs(), &vos.ProcAttr{
		Dir:      wd,
		Args:     argv,
		Files:    vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		PTY:      detectPTY(cmd),
		Config:   cfg,
		Recorder: session,
	})

	exitCode := proc.Run(process)

	if report, err := session.ReportJSON(); err == nil {
		appLogger.Printf("session report: %s", report)
	}

	if exitCode != 0 {
		return &exitCodeError{code: exitCode}
	}
	return nil
}

// detectPTY reports a terminal only if both stdin and stdout are attached to
// one.
func detectPTY(cmd *cobra.Command) vos.PTY {
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if !inOK || !outOK {
		return vos.PTY{}
	}

	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return vos.PTY{}
	}

	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil {
		width = defaultWidth
	}

	return vos.PTY{
		Width: width,
		IsPTY: true,
	}
}
