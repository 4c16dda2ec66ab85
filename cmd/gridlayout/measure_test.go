package main

import (
	"bytes"
	"strings"
	"testing"
)

const dashboard = "../../examples/layouts/dashboard.yaml"

func TestRunMeasure_Dashboard(t *testing.T) {
	t.Setenv("GRID_DEBUG", "")

	var out bytes.Buffer
	if err := runMeasure(&out, []string{"-width", "40", "-height", "20", "-stats", dashboard}); err != nil {
		t.Fatalf("runMeasure() error = %v", err)
	}

	header := map[string][]string{}
	var frames [][]string
	totals := map[string]string{}
	section := "header"
	for _, line := range strings.Split(out.String(), "\n") {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "NAME":
			section = "frames"
			continue
		case fields[0] == "METRIC":
			section = "stats"
			continue
		}
		switch section {
		case "header":
			header[fields[0]] = fields[1:]
		case "frames":
			frames = append(frames, fields)
		case "stats":
			totals[fields[0]] = fields[1]
		}
	}

	if got := strings.Join(header["bounds"], " "); got != "40 x 20" {
		t.Errorf("bounds = %q, want %q", got, "40 x 20")
	}
	if got := strings.Join(header["content"], " "); got != "40 x 20" {
		t.Errorf("content = %q, want %q", got, "40 x 20")
	}
	if _, ok := header["intrinsic"]; !ok {
		t.Error("missing intrinsic row")
	}

	want := [][]string{
		{"title", "12", "0", "16", "1"},
		{"body", "0", "1", "40", "14"},
		{"charts", "0", "1", "16", "14"},
		{"cpu", "0", "1", "16", "7"},
		{"logs", "17", "1", "22", "14"},
		{"memory", "0", "8", "16", "7"},
		{"status", "2", "15", "36", "2"},
		{"badge", "28", "17", "12", "3"},
	}
	if len(frames) != len(want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	for i := range want {
		if strings.Join(frames[i], " ") != strings.Join(want[i], " ") {
			t.Errorf("frame %d = %v, want %v", i, frames[i], want[i])
		}
	}

	// The root, body and charts grids each run one pass.
	if got := totals["grid.layout.passes"]; got != "3" {
		t.Errorf("grid.layout.passes = %q, want 3", got)
	}
}

func TestRunRender_Dashboard(t *testing.T) {
	t.Setenv("GRID_DEBUG", "")

	var out bytes.Buffer
	if err := runRender(&out, []string{"-width", "40", "-height", "20", "-border", "ascii", dashboard}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("rendered %d lines, want 20:\n%s", len(lines), out.String())
	}

	type tc struct {
		line int
		want string
	}
	tests := map[string]tc{
		"centered title":     {line: 0, want: strings.Repeat(" ", 12) + "Service overview"},
		"status first line":  {line: 15, want: "  3 nodes healthy, 1 degraded. Last"},
		"status second line": {line: 16, want: "  deploy 12 minutes ago."},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := lines[tt.line]; got != tt.want {
				t.Errorf("line %d = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestRunRender_UnknownBorder(t *testing.T) {
	var out bytes.Buffer
	err := runRender(&out, []string{"-width", "10", "-height", "5", "-border", "wavy", dashboard})
	if err == nil || !strings.Contains(err.Error(), "unknown border style") {
		t.Errorf("runRender() error = %v, want unknown border style", err)
	}
}
