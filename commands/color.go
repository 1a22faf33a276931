package commands

import (
	"fmt"
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/josephlewis42/rshell/core/vos"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
	ColorDevice    = color.New(color.FgYellow, color.BgBlack, color.Bold)
	ColorDefault   = color.New(color.FgHiWhite)
)

// ColorPrinter colors output if the configuration and terminal allow it.
type ColorPrinter struct {
	enabled bool
}

// NewColorPrinter determines whether to color based on the process
// configuration and whether it's attached to a terminal.
func NewColorPrinter(virtOS vos.VOS) *ColorPrinter {
	return &ColorPrinter{
		enabled: virtOS.Config().ShouldColor(virtOS.GetPTY().IsPTY),
	}
}

func (c *ColorPrinter) ShouldColor() bool {
	return c.enabled
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}

	// The color package disables itself globally when the host stdout isn't a
	// terminal, which would defeat --color=always.
	forced := *col
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}

type LsColorTest struct {
	color *color.Color
	test  func(fileInfo os.FileInfo) bool
}

// Color listing comes from: https://askubuntu.com/a/884513
var dircolors = []LsColorTest{
	// Directories are bold blue.
	{color: ColorBoldBlue, test: os.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: ColorBoldCyan, test: func(fi os.FileInfo) bool {
		return fi.Mode()&os.ModeSymlink > 0
	}},
	// Yellow with black background pipe, block device, char device.
	{color: ColorDevice, test: func(fi os.FileInfo) bool {
		return fi.Mode()&(os.ModeDevice|os.ModeNamedPipe|os.ModeSocket|os.ModeCharDevice) > 0
	}},
	// Executables are bold green.
	{color: ColorBoldGreen, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Archives are bold red.
	{color: ColorBoldRed, test: func(fi os.FileInfo) bool {
		return archiveExtensions[path.Ext(fi.Name())]
	}},
}

var archiveExtensions = map[string]bool{
	".tar": true,
	".tgz": true,
	".zip": true,
	".gz":  true,
	".bz2": true,
	".bz":  true,
	".tbz": true,
	".deb": true,
	".rpm": true,
	".jar": true,
	".war": true,
	".rar": true,
}

// Dircolor picks the color for a directory entry.
func Dircolor(fileInfo os.FileInfo) *color.Color {
	for _, dc := range dircolors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	// Anything else defaults to white.
	return ColorDefault
}
