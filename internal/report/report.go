// Package report prints generator diagnostics for terminal consumption.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mazrean/kozue/internal/kozue"
)

var (
	codeStyle = color.New(color.FgRed, color.Bold)
	posStyle  = color.New(color.Bold)
)

// Reporter writes human-readable diagnostics to a single destination.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report prints each diagnostic with its position, code and subject,
// followed by a summary line. It returns the number of diagnostics.
func (r *Reporter) Report(diags []*kozue.Diagnostic) int {
	for _, d := range diags {
		posStyle.Fprintf(r.w, "%s: ", d.Pos)
		codeStyle.Fprint(r.w, string(d.Code))
		fmt.Fprintf(r.w, ": %s", d.Message)

		if d.Host != "" {
			fmt.Fprintf(r.w, " (type %s", d.Host)
			if d.Member != "" {
				fmt.Fprintf(r.w, ", member %s", d.Member)
			}
			fmt.Fprint(r.w, ")")
		}
		fmt.Fprintln(r.w)
	}

	if len(diags) > 0 {
		fmt.Fprintf(r.w, "\n%d problem(s) found\n", len(diags))
	}

	return len(diags)
}
