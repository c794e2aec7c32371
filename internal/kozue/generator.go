package kozue

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"

	pkgstrings "github.com/mazrean/kozue/internal/pkg/strings"
)

const fileTemplate = `// Code generated by kozue. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Hosts}}
// Bindings implements kozue.Bound for *{{.Type}}.
func ({{.Recv}} *{{.Type}}) Bindings() *kozue.Bindings {
	b := kozue.NewBindings()
{{- range .Bindings}}
	kozue.MustBindInjector(b, func() {{.TypeText}} { return {{.Accessor}} })
{{- end}}
	return b
}
{{end}}`

var fileTmpl = template.Must(template.New("branch").Parse(fileTemplate))

type genBinding struct {
	TypeText string
	Accessor string
}

type genHost struct {
	Type     string
	Recv     string
	Bindings []*genBinding
}

type genFile struct {
	Package string
	Imports []*ImportRef
	Hosts   []*genHost
}

// Generate writes the Bindings methods for every generatable host in f.
func Generate(w io.Writer, f *File) error {
	data := buildGenFile(f)

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("write generated source: %w", err)
	}

	return nil
}

func buildGenFile(f *File) *genFile {
	data := &genFile{
		Package: f.Package,
	}

	imports := map[string]*ImportRef{
		kozuePkgPath: {Path: kozuePkgPath},
	}

	// Import qualifiers must stay visible inside the generated method
	// bodies, so receivers may not shadow them.
	taken := make(map[string]struct{})

	for _, host := range f.Hosts {
		if !host.generatable() {
			continue
		}

		for _, member := range host.Members {
			for _, ref := range member.Imports {
				if _, ok := imports[ref.Path]; !ok {
					imports[ref.Path] = ref
				}
			}
		}
	}

	for _, ref := range imports {
		taken[effectiveImportName(ref)] = struct{}{}
	}

	for _, host := range f.Hosts {
		if !host.generatable() {
			continue
		}

		gh := &genHost{
			Type: host.Name,
			Recv: receiverIdent(host.Name, taken),
		}

		for _, member := range host.Members {
			accessor := gh.Recv + "." + member.Name
			if member.Kind == MemberMethod {
				accessor += "()"
			}

			gh.Bindings = append(gh.Bindings, &genBinding{
				TypeText: member.TypeText,
				Accessor: accessor,
			})
		}

		data.Hosts = append(data.Hosts, gh)
	}

	data.Imports = make([]*ImportRef, 0, len(imports))
	for _, ref := range imports {
		data.Imports = append(data.Imports, ref)
	}
	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

func effectiveImportName(ref *ImportRef) string {
	if ref.Name != "" {
		return ref.Name
	}

	return ref.Path[strings.LastIndex(ref.Path, "/")+1:]
}

// receiverIdent picks a receiver name for the generated method that
// collides with neither reserved identifiers nor import qualifiers.
func receiverIdent(typeName string, taken map[string]struct{}) string {
	available := func(name string) bool {
		if name == "" {
			return false
		}
		if _, ok := reservedIdents[name]; ok {
			return false
		}
		_, ok := taken[name]
		return !ok
	}

	if short := pkgstrings.Receiver(typeName); available(short) {
		return short
	}
	if camel := pkgstrings.ToLowerCamel(typeName); available(camel) {
		return camel
	}

	base := pkgstrings.Receiver(typeName)
	if base == "" {
		base = "r"
	}
	for i := 0; ; i++ {
		if name := fmt.Sprintf("%s%d", base, i); available(name) {
			return name
		}
	}
}
