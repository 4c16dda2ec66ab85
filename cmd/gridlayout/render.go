package main

import (
	"flag"
	"fmt"
	"io"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/canvas"
	"github.com/grindlemire/go-grid/gridfile"
	"github.com/grindlemire/go-grid/internal/debug"
)

func runRender(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var vp viewport
	vp.register(fs)
	border := fs.String("border", "single", "box style")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := documentArg(fs)
	if err != nil {
		return err
	}
	if err := vp.resolve(); err != nil {
		return err
	}
	defer debug.Close()

	style, ok := canvas.ParseBorderStyle(*border)
	if !ok {
		return fmt.Errorf("unknown border style %q", *border)
	}

	doc, err := gridfile.Load(path)
	if err != nil {
		return err
	}
	c := canvas.New(canvas.WithBorder(style))
	layout, err := gridfile.Build(doc, grid.WithBackend(c))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	buf := c.Render(layout.Root, vp.width, vp.height)
	_, err = fmt.Fprintln(w, buf.StringTrimmed())
	return err
}
