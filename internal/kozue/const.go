package kozue

const (
	kozuePkgPath    = "github.com/mazrean/kozue"
	kozuePkgName    = "kozue"
	generatedSuffix = "_branch"

	directivePrefix  = "//kozue:"
	directiveProvide = "provide"
	directiveBind    = "bindings"

	paramAs = "as"
)

// reservedIdents are identifiers the generator must not pick for
// receivers or locals in emitted code: Go keywords, predeclared names,
// and the names the generated method body already uses.
var reservedIdents = func() map[string]struct{} {
	names := []string{
		// Keywords.
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var",
		// Predeclared types, constants and functions.
		"any", "bool", "byte", "comparable", "complex64", "complex128",
		"error", "float32", "float64", "int", "int8", "int16", "int32",
		"int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
		"uint64", "uintptr", "true", "false", "iota", "nil", "append",
		"cap", "clear", "close", "complex", "copy", "delete", "imag",
		"len", "make", "max", "min", "new", "panic", "print", "println",
		"real", "recover",
		// Used by the generated method body.
		"b", kozuePkgName,
	}

	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}()
