package extract

import "regexp"

// Category identifies the kind of symbol a pattern extracts.
type Category int

const (
	CategoryFunction Category = iota
	CategoryClass
	CategoryMethod
	CategoryConstant
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryFunction:
		return "function"
	case CategoryClass:
		return "class"
	case CategoryMethod:
		return "method"
	case CategoryConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Categories returns all symbol categories in registry order.
func Categories() []Category {
	return []Category{CategoryFunction, CategoryClass, CategoryMethod, CategoryConstant}
}

// Each pattern carries exactly one capture group: the symbol name.
// Patterns are line-anchored so a declaration spanning multiple lines
// still yields a single name from its opening line.
var (
	functionPatterns = []string{
		// Standard function: function name(...)
		`(?m)^\s*function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
		// Function with return type: function name(...): type
		`(?m)^\s*function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^)]*\)\s*:`,
	}
	classPatterns = []string{
		`(?m)^\s*(?:abstract\s+)?class\s+([A-Z][a-zA-Z0-9_]*)`,
		`(?m)^\s*interface\s+([A-Z][a-zA-Z0-9_]*)`,
		`(?m)^\s*trait\s+([A-Z][a-zA-Z0-9_]*)`,
	}
	methodPatterns = []string{
		`(?m)^\s*(?:public|protected|private)?\s*(?:static\s+)?function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`,
	}
	constantPatterns = []string{
		`(?m)^\s*define\s*\(\s*['"]([A-Z_][A-Z0-9_]*)['"]`,
		`(?m)^\s*const\s+([A-Z_][A-Z0-9_]*)\s*=`,
	}
)

// Registry holds the compiled matchers for each symbol category.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	rules map[Category][]*regexp.Regexp
}

// NewRegistry compiles the built-in PHP stub patterns into a registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: map[Category][]*regexp.Regexp{
			CategoryFunction: compileAll(functionPatterns),
			CategoryClass:    compileAll(classPatterns),
			CategoryMethod:   compileAll(methodPatterns),
			CategoryConstant: compileAll(constantPatterns),
		},
	}
}

// Rules returns the ordered matchers for a category.
func (r *Registry) Rules(c Category) []*regexp.Regexp {
	return r.rules[c]
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
