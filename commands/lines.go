package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/rshell/core/vos"
)

// lineReader reads one line of input at a time after showing a prompt.
type lineReader interface {
	// ReadLine returns the next line without its line terminator. io.EOF is
	// returned once the input is closed.
	ReadLine(prompt string) (string, error)
	Close() error
}

// newLineReader uses readline for terminals so users get line editing and
// falls back to plain buffered reads for pipes and files.
func newLineReader(virtOS vos.VOS) (lineReader, error) {
	if virtOS.GetPTY().IsPTY {
		return newReadlineReader(virtOS)
	}

	return &bufferedLineReader{
		in:  bufio.NewReader(virtOS.Stdin()),
		out: virtOS.Stdout(),
	}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(virtOS vos.VOS) (*readlineReader, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(virtOS.Stdin()),
		Stdout: virtOS.Stdout(),
		Stderr: virtOS.Stderr(),
		FuncGetWidth: func() int {
			return virtOS.GetPTY().Width
		},
		FuncIsTerminal: func() bool {
			return virtOS.GetPTY().IsPTY
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		// Interrupt clears the line.
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type bufferedLineReader struct {
	in  *bufio.Reader
	out io.Writer
}

type flusher interface {
	Flush() error
}

func (b *bufferedLineReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(b.out, prompt); err != nil {
			return "", err
		}
		if f, ok := b.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return "", err
			}
		}
	}

	line, err := b.in.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		// Unterminated final line, the next read reports EOF.
	case err != nil:
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (b *bufferedLineReader) Close() error {
	return nil
}
