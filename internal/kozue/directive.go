package kozue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Directive is one parsed //kozue: comment.
type Directive struct {
	Name   string            `parser:"Comment Kozue Colon @Value"`
	Params []*DirectiveParam `parser:"@@*"`
}

// DirectiveParam is a key=value parameter of a directive.
type DirectiveParam struct {
	Key   string `parser:"@Value Equals"`
	Value string `parser:"@(String | Value)"`
}

// Param returns the value of the named parameter, unquoting string
// literals.
func (d *Directive) Param(key string) (string, bool) {
	for _, p := range d.Params {
		if p.Key != key {
			continue
		}

		if strings.HasPrefix(p.Value, `"`) {
			if unquoted, err := strconv.Unquote(p.Value); err == nil {
				return unquoted, true
			}
		}
		return p.Value, true
	}

	return "", false
}

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//`},
	{Name: "Kozue", Pattern: `kozue`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Equals", Pattern: `=`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Value", Pattern: `[\*\[\]a-zA-Z0-9_./]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var directiveParser = participle.MustBuild[Directive](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
)

// isDirective reports whether a comment line is a kozue directive.
// Directives follow the Go tool convention: no space after the slashes.
func isDirective(text string) bool {
	return strings.HasPrefix(text, directivePrefix)
}

// parseDirective parses a raw comment line such as
// "//kozue:provide as=io.Writer".
func parseDirective(text string) (*Directive, error) {
	d, err := directiveParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("parse directive %q: %w", text, err)
	}

	return d, nil
}
