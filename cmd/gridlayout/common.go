package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/grindlemire/go-grid/internal/debug"
)

// viewport holds the flags shared by render and measure.
type viewport struct {
	width   int
	height  int
	logPath string
}

func (v *viewport) register(fs *flag.FlagSet) {
	fs.IntVar(&v.width, "width", 0, "layout width")
	fs.IntVar(&v.height, "height", 0, "layout height")
	fs.StringVar(&v.logPath, "log", "", "debug log path")
}

// resolve fills unset dimensions from the terminal, falling back to 80x24,
// and opens the debug log if requested.
func (v *viewport) resolve() error {
	if v.width <= 0 || v.height <= 0 {
		w, h := terminalSize()
		if v.width <= 0 {
			v.width = w
		}
		if v.height <= 0 {
			v.height = h
		}
	}
	if v.logPath != "" {
		if err := debug.Init(v.logPath); err != nil {
			return err
		}
	}
	return nil
}

func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80, 24
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// documentArg returns the single positional argument.
func documentArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s needs exactly one layout file", fs.Name())
	}
	return fs.Arg(0), nil
}
