package kozue

import (
	"fmt"
	"go/token"
	"sort"
)

// Code identifies one entry of the build-time diagnostic taxonomy.
type Code string

const (
	// CodeNotExtensible: the marked type is not a named struct type of
	// the scanned package, so no Bindings method can be attached to it.
	CodeNotExtensible Code = "KZ001"
	// CodeMethodParams: a marked method takes parameters.
	CodeMethodParams Code = "KZ002"
	// CodeMethodNoValue: a marked method does not return exactly one value.
	CodeMethodNoValue Code = "KZ003"
	// CodeFieldNoReader: a marked field cannot be read (blank identifier).
	CodeFieldNoReader Code = "KZ004"
	// CodeDuplicateProvider: two markers on one type resolve to the
	// same provided value type.
	CodeDuplicateProvider Code = "KZ005"
	// CodeBadDirective: a kozue: comment that cannot be parsed, names
	// an unknown directive, or sits on the wrong kind of declaration.
	CodeBadDirective Code = "KZ006"
	// CodeBadAsType: the as= parameter is not a valid type in package
	// scope, or the member's value is not assignable to it.
	CodeBadAsType Code = "KZ007"
)

// Diagnostic is one build-time finding. A diagnostic is fatal to the
// affected member or host type only; the rest of the file still
// generates.
type Diagnostic struct {
	Pos     token.Position
	Code    Code
	Host    string
	Member  string
	Message string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Code, d.Message)
}

// sortDiagnostics orders diagnostics by position for deterministic
// reporting across concurrently processed files.
func sortDiagnostics(diags []*Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Pos.Filename != diags[j].Pos.Filename {
			return diags[i].Pos.Filename < diags[j].Pos.Filename
		}
		if diags[i].Pos.Line != diags[j].Pos.Line {
			return diags[i].Pos.Line < diags[j].Pos.Line
		}
		return diags[i].Pos.Column < diags[j].Pos.Column
	})
}
