package vos

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/josephlewis42/rshell/core/config"
	"github.com/josephlewis42/rshell/core/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNullIO(t *testing.T) {
	nullIO := NewNullIO()

	n, err := nullIO.Stdin().Read(make([]byte, 8))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	n, err = nullIO.Stdout().Write([]byte("discarded"))
	assert.Nil(t, err)
	assert.Equal(t, 9, n)
}

func TestNewVIOAdapter(t *testing.T) {
	stdout := &bytes.Buffer{}
	adapter := NewVIOAdapter(strings.NewReader("input"), stdout, nil)

	in, err := io.ReadAll(adapter.Stdin())
	require.Nil(t, err)
	assert.Equal(t, "input", string(in))

	io.WriteString(adapter.Stdout(), "out")
	io.WriteString(adapter.Stderr(), "err")
	assert.Nil(t, adapter.Stdout().Close())
	assert.Equal(t, "out", stdout.String())
}

// deniedStatFs fails to stat a single path, like an entry in a directory the
// user can list but not search.
type deniedStatFs struct {
	afero.Fs
	denied string
}

func (d *deniedStatFs) Stat(name string) (os.FileInfo, error) {
	if name == d.denied {
		return nil, &os.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
	}
	return d.Fs.Stat(name)
}

func (d *deniedStatFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if name == d.denied {
		return nil, true, &os.PathError{Op: "lstat", Path: name, Err: fs.ErrPermission}
	}
	info, err := d.Fs.Stat(name)
	return info, true, err
}

func TestReadDirNames(t *testing.T) {
	memFs := NewMemFs()
	require.Nil(t, memFs.MkdirAll("/work/b", 0755))
	require.Nil(t, afero.WriteFile(memFs, "/work/a.txt", []byte("a"), 0644))
	require.Nil(t, afero.WriteFile(memFs, "/work/b/nested", []byte("n"), 0644))

	t.Run("lists immediate entries", func(t *testing.T) {
		names, err := ReadDirNames(memFs, "/work")
		require.Nil(t, err)

		sort.Strings(names)
		assert.Equal(t, []string{"a.txt", "b"}, names)
	})

	t.Run("unstattable entry still listed", func(t *testing.T) {
		names, err := ReadDirNames(&deniedStatFs{Fs: memFs, denied: "/work/b"}, "/work")
		require.Nil(t, err)

		sort.Strings(names)
		assert.Equal(t, []string{"a.txt", "b"}, names)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := ReadDirNames(memFs, "/missing")
		assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	})
}

func TestLstat(t *testing.T) {
	memFs := NewMemFs()
	require.Nil(t, memFs.MkdirAll("/work/b", 0755))
	denied := &deniedStatFs{Fs: memFs, denied: "/work/b"}

	info, err := Lstat(memFs, "/work/b")
	require.Nil(t, err)
	assert.True(t, info.IsDir())

	_, err = Lstat(denied, "/work/b")
	assert.ErrorIs(t, err, fs.ErrPermission)

	proc := NewProcOS(denied, nil)
	_, err = Lstat(proc, "/work/b")
	assert.ErrorIs(t, err, fs.ErrPermission, "ProcOS forwards to the wrapped Lstat")

	info, _, err = NewProcOS(memFs, nil).LstatIfPossible("/work")
	require.Nil(t, err)
	assert.True(t, info.IsDir())
}

func TestNewProcOS_defaults(t *testing.T) {
	proc := NewProcOS(NewMemFs(), nil)

	assert.Equal(t, ".", proc.Getwd())
	assert.Empty(t, proc.Args())
	assert.Equal(t, config.Default(), proc.Config())
	assert.False(t, proc.GetPTY().IsPTY)

	// Nop recorder must not panic.
	proc.LogRunCommand([]string{"echo"})
}

func TestProcOS_Run(t *testing.T) {
	var events []logger.Event
	proc := NewProcOS(NewMemFs(), &ProcAttr{
		Dir:  "/home",
		Args: []string{"prog", "arg"},
		Recorder: logger.RecorderFunc(func(event logger.Event) error {
			events = append(events, event)
			return errors.New("ignored")
		}),
	})

	exitCode := proc.Run(func(virtOS VOS) int {
		assert.Equal(t, []string{"prog", "arg"}, virtOS.Args())
		assert.Equal(t, "/home", virtOS.Getwd())

		virtOS.LogRunCommand([]string{"echo", "hi"})
		virtOS.LogUnknownCommand([]string{"foo"})
		virtOS.LogInvalidInvocation([]string{"ls"}, errors.New("denied"))
		return 3
	})

	assert.Equal(t, 3, exitCode)
	assert.Equal(t, []logger.Event{
		{Kind: logger.RunCommand, Command: []string{"echo", "hi"}},
		{Kind: logger.UnknownCommand, Command: []string{"foo"}},
		{Kind: logger.InvalidInvocation, Command: []string{"ls"}, Error: "denied"},
	}, events)
}
