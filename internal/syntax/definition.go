package syntax

import "strings"

// Rule maps a set of literal token strings to one color.
type Rule struct {
	Tokens []string
	Color  RGB
}

// Definition groups the rules for one family of file types, selected by
// file-extension match. Definitions are built once by the compiler and
// immutable afterwards.
type Definition struct {
	Extensions []string
	Rules      []Rule
}

// Matches returns true if the filename ends with one of the definition's
// extensions.
func (d *Definition) Matches(filename string) bool {
	for _, ext := range d.Extensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// Definitions is the full compiled rule document.
type Definitions []*Definition

// ForFile returns the first definition matching the filename, or nil.
func (ds Definitions) ForFile(filename string) *Definition {
	for _, d := range ds {
		if d.Matches(filename) {
			return d
		}
	}
	return nil
}
