package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/rshell/core/vos"
	"github.com/josephlewis42/rshell/core/vos/vostest"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func ExampleListShellBuiltins() {
	fmt.Println(ListShellBuiltins())

	// Output: [echo ls]
}

func TestAllCommands(t *testing.T) {
	var names []string
	for _, cmdEntry := range ListBuiltinCommands() {
		names = append(names, cmdEntry.Name)
		t.Run(cmdEntry.Name, func(t *testing.T) {
			if cmdEntry.Proc == nil {
				t.Fatal("nil command", cmdEntry.Name)
			}
		})
	}

	assert.Equal(t, []string{"calc", "rshell"}, names)
}

func TestMustAddCmd_duplicate(t *testing.T) {
	assert.Panics(t, func() {
		mustAddCmd("calc", Calc)
	})
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	Args  []string
	Stdin string
	Dir   string
	Setup func(vos.VFS) error
}

func (gts goldenTestSuite) Run(t *testing.T, cmd vos.ProcessFunc) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	for tn, tc := range gts {
		tc := tc
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(cmd, tc.Args[0], tc.Args[1:]...)
			cmd.Stdin = strings.NewReader(tc.Stdin)
			cmd.Dir = tc.Dir
			cmd.Setup = tc.Setup
			out, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatal(err)
			}

			g.Assert(t, tn, out)
		})
	}
}
