package report

import (
	"bytes"
	"go/token"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mazrean/kozue/internal/kozue"
)

func TestReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	n := NewReporter(&buf).Report([]*kozue.Diagnostic{
		{
			Pos:     token.Position{Filename: "tree.go", Line: 12, Column: 2},
			Code:    kozue.CodeMethodParams,
			Host:    "Window",
			Member:  "Resize",
			Message: "marked method Resize must not take parameters",
		},
		{
			Pos:     token.Position{Filename: "tree.go", Line: 30, Column: 1},
			Code:    kozue.CodeNotExtensible,
			Host:    "Size",
			Message: "Size is not a struct type",
		},
	})

	if n != 2 {
		t.Fatalf("Report returned %d, want 2", n)
	}

	out := buf.String()
	for _, want := range []string{
		"tree.go:12:2: KZ002: marked method Resize must not take parameters (type Window, member Resize)",
		"tree.go:30:1: KZ001: Size is not a struct type (type Size)",
		"2 problem(s) found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if n := NewReporter(&buf).Report(nil); n != 0 {
		t.Fatalf("Report returned %d, want 0", n)
	}
	if buf.Len() != 0 {
		t.Errorf("empty report produced output: %q", buf.String())
	}
}
