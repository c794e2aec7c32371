package kozue

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Parser analyzes one Go source file for kozue directives.
type Parser struct {
	fset *token.FileSet
}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{
		fset: token.NewFileSet(),
	}
}

// ParseFile loads the package containing filename and extracts the
// marked host types. Marker problems surface as Diagnostics on the
// returned File, not as errors: a diagnostic kills the affected member
// or host only.
func (p *Parser) ParseFile(filename string) (*File, error) {
	pkg, err := p.loadPackage(filename)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	targetFile, err := p.targetSyntax(pkg, filename)
	if err != nil {
		return nil, err
	}

	scan := &fileScan{
		fset: p.fset,
		pkg:  pkg,
		file: targetFile,
		out: &File{
			Name:    filename,
			Package: pkg.Name,
			PkgPath: pkg.PkgPath,
		},
		hosts: make(map[string]*HostType),
	}
	scan.run()

	return scan.out, nil
}

// loadPackage loads the package that contains filename with full type
// information.
func (p *Parser) loadPackage(filename string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
		Fset: p.fset,
	}

	pkgs, err := packages.Load(cfg, "file="+filename)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	// Allow some errors but continue if we have valid packages
	errorCount := packages.PrintErrors(pkgs)
	if errorCount > 0 && len(pkgs) == 0 {
		return nil, errors.New("package loading errors occurred and no packages loaded")
	}

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("absolute path of %s: %w", filename, err)
	}

	for _, pkg := range pkgs {
		for _, goFile := range pkg.GoFiles {
			absGoFile, err := filepath.Abs(goFile)
			if err != nil {
				slog.Debug("failed to get absolute filename", "error", err, "filename", goFile)
				continue
			}

			if absGoFile == absFilename {
				return pkg, nil
			}
		}
	}

	return nil, errors.New("file is not in the loaded package")
}

// targetSyntax finds the syntax tree of filename inside the loaded
// package.
func (p *Parser) targetSyntax(pkg *packages.Package, filename string) (*ast.File, error) {
	absFilename, _ := filepath.Abs(filename)
	for i, f := range pkg.Syntax {
		if f == nil || i >= len(pkg.GoFiles) {
			continue
		}

		absGoFile, _ := filepath.Abs(pkg.GoFiles[i])
		if absGoFile == absFilename {
			return f, nil
		}
	}

	return nil, errors.New("target file not found in package syntax")
}

type rawDirective struct {
	text string
	pos  token.Pos
}

// directiveComments collects kozue directive lines from the given
// comment groups.
func directiveComments(groups ...*ast.CommentGroup) []rawDirective {
	var out []rawDirective
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			if isDirective(comment.Text) {
				out = append(out, rawDirective{text: comment.Text, pos: comment.Pos()})
			}
		}
	}

	return out
}

// fileScan walks one file's declarations and builds its host model.
type fileScan struct {
	fset  *token.FileSet
	pkg   *packages.Package
	file  *ast.File
	out   *File
	hosts map[string]*HostType
}

func (s *fileScan) run() {
	for _, decl := range s.file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}

			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				s.scanTypeSpec(d, ts)
			}
		case *ast.FuncDecl:
			s.scanFuncDecl(d)
		}
	}
}

func (s *fileScan) scanTypeSpec(decl *ast.GenDecl, ts *ast.TypeSpec) {
	for _, raw := range directiveComments(decl.Doc, ts.Doc, ts.Comment) {
		dir, err := parseDirective(raw.text)
		if err != nil {
			s.diag(raw.pos, CodeBadDirective, ts.Name.Name, "", "%v", err)
			continue
		}

		switch dir.Name {
		case directiveBind:
			if host := s.ensureHost(ts.Name.Name, raw.pos); host != nil {
				host.Marked = true
			}
		case directiveProvide:
			s.diag(raw.pos, CodeBadDirective, ts.Name.Name, "",
				"kozue:provide must mark a struct field or method, not a type; use kozue:bindings on types")
		default:
			s.diag(raw.pos, CodeBadDirective, ts.Name.Name, "", "unknown directive kozue:%s", dir.Name)
		}
	}

	if st, ok := ts.Type.(*ast.StructType); ok {
		s.scanFields(ts.Name.Name, st)
	}
}

func (s *fileScan) scanFields(typeName string, st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		for _, raw := range directiveComments(field.Doc, field.Comment) {
			dir, err := parseDirective(raw.text)
			if err != nil {
				s.diag(raw.pos, CodeBadDirective, typeName, "", "%v", err)
				continue
			}
			if dir.Name != directiveProvide {
				s.diag(raw.pos, CodeBadDirective, typeName, "", "unknown directive kozue:%s on field", dir.Name)
				continue
			}

			s.provideField(typeName, field, dir, raw.pos)
		}
	}
}

func (s *fileScan) provideField(typeName string, field *ast.Field, dir *Directive, pos token.Pos) {
	host := s.ensureHost(typeName, pos)
	if host == nil {
		return
	}

	names := make([]string, 0, 1)
	if len(field.Names) == 0 {
		// Embedded field: the accessor is the unqualified type name.
		if name := embeddedName(field.Type); name != "" {
			names = append(names, name)
		}
	} else {
		for _, ident := range field.Names {
			if ident.Name == "_" {
				s.diag(pos, CodeFieldNoReader, typeName, "_",
					"blank field has no reader and cannot back an injector")
				continue
			}
			names = append(names, ident.Name)
		}
	}

	memberType := s.pkg.TypesInfo.TypeOf(field.Type)
	if memberType == nil {
		s.diag(pos, CodeBadDirective, typeName, "", "cannot resolve field type")
		return
	}

	for _, name := range names {
		member := &ProvideMember{
			Name:     name,
			Kind:     MemberField,
			TypeText: s.typeText(field.Type),
			TypeKey:  memberType.String(),
			Imports:  s.collectImports(field.Type),
			Pos:      s.fset.Position(pos),
		}

		if !s.applyAs(host, member, memberType, dir, pos) {
			continue
		}
		s.addMember(host, member, pos)
	}
}

func (s *fileScan) scanFuncDecl(d *ast.FuncDecl) {
	dirs := directiveComments(d.Doc)
	if len(dirs) == 0 {
		return
	}

	typeName := receiverTypeName(d.Recv)

	for _, raw := range dirs {
		dir, err := parseDirective(raw.text)
		if err != nil {
			s.diag(raw.pos, CodeBadDirective, typeName, d.Name.Name, "%v", err)
			continue
		}
		if dir.Name != directiveProvide {
			s.diag(raw.pos, CodeBadDirective, typeName, d.Name.Name, "unknown directive kozue:%s on method", dir.Name)
			continue
		}

		if typeName == "" {
			s.diag(raw.pos, CodeBadDirective, "", d.Name.Name,
				"kozue:provide must mark a method, not a plain function")
			continue
		}

		s.provideMethod(typeName, d, dir, raw.pos)
	}
}

func (s *fileScan) provideMethod(typeName string, d *ast.FuncDecl, dir *Directive, pos token.Pos) {
	host := s.ensureHost(typeName, pos)
	if host == nil {
		return
	}

	if d.Type.Params != nil && len(d.Type.Params.List) > 0 {
		s.diag(pos, CodeMethodParams, typeName, d.Name.Name,
			"marked method %s must not take parameters", d.Name.Name)
		return
	}

	if d.Type.Results == nil || d.Type.Results.NumFields() != 1 {
		s.diag(pos, CodeMethodNoValue, typeName, d.Name.Name,
			"marked method %s must return exactly one value", d.Name.Name)
		return
	}

	resultExpr := d.Type.Results.List[0].Type
	memberType := s.pkg.TypesInfo.TypeOf(resultExpr)
	if memberType == nil {
		s.diag(pos, CodeBadDirective, typeName, d.Name.Name, "cannot resolve method result type")
		return
	}

	member := &ProvideMember{
		Name:     d.Name.Name,
		Kind:     MemberMethod,
		TypeText: s.typeText(resultExpr),
		TypeKey:  memberType.String(),
		Imports:  s.collectImports(resultExpr),
		Pos:      s.fset.Position(pos),
	}

	if !s.applyAs(host, member, memberType, dir, pos) {
		return
	}
	s.addMember(host, member, pos)
}

// applyAs rewrites the member's provided type when the directive
// carries an as= parameter. Unknown parameters are rejected here too.
func (s *fileScan) applyAs(host *HostType, member *ProvideMember, memberType types.Type, dir *Directive, pos token.Pos) bool {
	for _, param := range dir.Params {
		if param.Key != paramAs {
			s.diag(pos, CodeBadDirective, host.Name, member.Name,
				"unknown parameter %s on kozue:provide", param.Key)
			return false
		}
	}

	raw, ok := dir.Param(paramAs)
	if !ok {
		return true
	}

	tv, err := types.Eval(s.fset, s.pkg.Types, pos, raw)
	if err != nil || !tv.IsType() {
		s.diag(pos, CodeBadAsType, host.Name, member.Name, "as=%s is not a type in package scope", raw)
		return false
	}

	if !types.AssignableTo(memberType, tv.Type) {
		s.diag(pos, CodeBadAsType, host.Name, member.Name,
			"%s is not assignable to %s", memberType, tv.Type)
		return false
	}

	member.TypeText = raw
	member.TypeKey = tv.Type.String()
	member.Imports = s.textImports(raw)

	return true
}

// ensureHost returns the host model for typeName, creating it on first
// use. A nil return means the type cannot carry generated code; the
// diagnostic has already been recorded.
func (s *fileScan) ensureHost(typeName string, pos token.Pos) *HostType {
	if host, ok := s.hosts[typeName]; ok {
		return host
	}

	obj := s.pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		s.diag(pos, CodeNotExtensible, typeName, "", "type %s is not declared in this package", typeName)
		return nil
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		s.diag(pos, CodeNotExtensible, typeName, "", "%s is not a type", typeName)
		return nil
	}
	if tn.IsAlias() {
		s.diag(pos, CodeNotExtensible, typeName, "", "alias type %s cannot receive a generated Bindings method", typeName)
		return nil
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		s.diag(pos, CodeNotExtensible, typeName, "", "%s is not a named type", typeName)
		return nil
	}
	if named.TypeParams().Len() > 0 {
		s.diag(pos, CodeNotExtensible, typeName, "", "generic type %s is not supported", typeName)
		return nil
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		s.diag(pos, CodeNotExtensible, typeName, "", "%s is not a struct type", typeName)
		return nil
	}

	host := &HostType{
		Name: typeName,
		Pos:  s.fset.Position(pos),
		seen: make(map[string]*ProvideMember),
	}
	s.hosts[typeName] = host
	s.out.Hosts = append(s.out.Hosts, host)

	return host
}

// addMember appends the member, rejecting a second provider for the
// same value type on one host.
func (s *fileScan) addMember(host *HostType, member *ProvideMember, pos token.Pos) {
	if first, ok := host.seen[member.TypeKey]; ok {
		s.diag(pos, CodeDuplicateProvider, host.Name, member.Name,
			"type %s is already provided by %s", member.TypeKey, first.Name)
		return
	}

	host.seen[member.TypeKey] = member
	host.Members = append(host.Members, member)
}

func (s *fileScan) diag(pos token.Pos, code Code, host, member, format string, args ...any) {
	s.out.Diagnostics = append(s.out.Diagnostics, &Diagnostic{
		Pos:     s.fset.Position(pos),
		Code:    code,
		Host:    host,
		Member:  member,
		Message: fmt.Sprintf(format, args...),
	})
}

// typeText renders a source type expression back to text.
func (s *fileScan) typeText(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.fset, expr); err != nil {
		return ""
	}

	return buf.String()
}

// collectImports extracts the package imports a type expression from
// the source file depends on.
func (s *fileScan) collectImports(expr ast.Expr) []*ImportRef {
	var refs []*ImportRef
	seen := make(map[string]struct{})

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		pkgName, ok := s.pkg.TypesInfo.ObjectOf(ident).(*types.PkgName)
		if !ok {
			return true
		}

		path := pkgName.Imported().Path()
		if _, dup := seen[path]; dup {
			return true
		}
		seen[path] = struct{}{}

		ref := &ImportRef{Path: path}
		if ident.Name != pkgName.Imported().Name() {
			ref.Name = ident.Name
		}
		refs = append(refs, ref)

		return true
	})

	return refs
}

// textImports resolves the imports referenced by a directive-supplied
// type expression, matching qualifiers against the source file's
// import table.
func (s *fileScan) textImports(raw string) []*ImportRef {
	expr, err := goparser.ParseExpr(raw)
	if err != nil {
		return nil
	}

	var refs []*ImportRef
	seen := make(map[string]struct{})

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		ref, ok := s.importNamed(ident.Name)
		if !ok {
			return true
		}
		if _, dup := seen[ref.Path]; dup {
			return true
		}
		seen[ref.Path] = struct{}{}
		refs = append(refs, ref)

		return true
	})

	return refs
}

// importNamed finds the source file import whose effective name matches
// the given qualifier.
func (s *fileScan) importNamed(name string) (*ImportRef, bool) {
	for _, spec := range s.file.Imports {
		path := strings.Trim(spec.Path.Value, `"`)

		effective := ""
		aliased := false
		switch {
		case spec.Name != nil:
			effective = spec.Name.Name
			aliased = true
		default:
			if imp, ok := s.pkg.Imports[path]; ok && imp != nil {
				effective = imp.Name
			} else {
				effective = path[strings.LastIndex(path, "/")+1:]
			}
		}

		if effective != name {
			continue
		}

		ref := &ImportRef{Path: path}
		if aliased {
			ref.Name = effective
		}
		return ref, true
	}

	return nil, false
}

// embeddedName returns the accessor name of an embedded field.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	}

	return ""
}

// receiverTypeName returns the base type name of a method receiver, or
// "" for a plain function.
func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	expr := recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}
