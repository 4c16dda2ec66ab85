// Package main provides the CLI for laying out YAML grid documents.
//
// Usage:
//
//	gridlayout render [options] layout.yaml     Draw the layout as text
//	gridlayout measure [options] layout.yaml    Print sizes and frames
//	gridlayout fmt [-w] layout.yaml             Normalize a layout document
//	gridlayout help                             Show help
//
// Examples:
//
//	gridlayout render -width 60 -height 20 dashboard.yaml
//	gridlayout measure -stats dashboard.yaml
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `gridlayout - single-axis grid layouts from YAML documents

Usage:
  gridlayout <command> [options] <layout.yaml>

Commands:
  render      Lay out the document and draw it as text
  measure     Print the intrinsic size and every content frame
  fmt         Rewrite a document in normalized form
  version     Print version information
  help        Show this help message

Options:
  -width N    Layout width (default: terminal width, or 80)
  -height N   Layout height (default: terminal height, or 24)
  -border S   Box style for render: single, rounded, double, ascii
  -stats      Print layout metrics after measure
  -log PATH   Write debug logs to PATH (also set by GRID_DEBUG)
  -w          Write fmt output back to the file

Examples:
  gridlayout render dashboard.yaml
  gridlayout render -width 60 -height 20 -border rounded dashboard.yaml
  gridlayout measure -width 100 dashboard.yaml
  gridlayout fmt -w dashboard.yaml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := runRender(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "measure":
		if err := runMeasure(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "fmt":
		if err := runFmt(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("gridlayout version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
