// Package kozue implements the build-time generator that turns
// //kozue:provide markers into Bindings methods.
package kozue

import "go/token"

// MemberKind distinguishes the two markable member forms.
type MemberKind int

const (
	MemberField MemberKind = iota
	MemberMethod
)

// ImportRef is one import the emitted type expression depends on. Name
// is empty unless the source file imported the package under an alias.
type ImportRef struct {
	Name string
	Path string
}

// ProvideMember is one marked struct field or method that backs a
// generated injector binding.
type ProvideMember struct {
	Name     string
	Kind     MemberKind
	TypeText string // provided type as it appears in generated source
	TypeKey  string // canonical type string, used for duplicate detection
	Imports  []*ImportRef
	Pos      token.Position
}

// HostType is one struct type that receives a generated Bindings
// method. Marked is set by a type-level //kozue:bindings directive;
// unmarked hosts exist implicitly once a member carries a provide
// marker.
type HostType struct {
	Name    string
	Marked  bool
	Members []*ProvideMember
	Pos     token.Position

	seen map[string]*ProvideMember // TypeKey -> first member
}

// File is the parse result for one scanned source file.
type File struct {
	Name        string
	Package     string
	PkgPath     string
	Hosts       []*HostType
	Diagnostics []*Diagnostic
}

// generatable reports whether the host produces output: explicitly
// marked types always do, implicit hosts need at least one surviving
// member.
func (h *HostType) generatable() bool {
	return h.Marked || len(h.Members) > 0
}
