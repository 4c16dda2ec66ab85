package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/grindlemire/go-grid/gridfile"
)

// runFmt implements the fmt subcommand: it rebuilds the document and writes
// it back out in normalized form.
func runFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write result to the file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := documentArg(fs)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading layout: %w", err)
	}
	out, err := normalize(source)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !*write {
		_, err := os.Stdout.Write(out)
		return err
	}
	if bytes.Equal(source, out) {
		return nil
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	fmt.Printf("formatted %s\n", path)
	return nil
}

func normalize(source []byte) ([]byte, error) {
	doc, err := gridfile.Parse(source)
	if err != nil {
		return nil, err
	}
	layout, err := gridfile.Build(doc)
	if err != nil {
		return nil, err
	}
	return gridfile.Marshal(gridfile.FromGrid(layout.Root))
}
