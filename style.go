package htmlbuilder

import (
	"strings"
)

// Declaration is a CSS property with one or more values. Several values are
// rendered as repeated declarations of the same property, for example for
// vendor prefixed fallbacks.
type Declaration struct {
	Property string
	Values   []string
}

// Decl returns a declaration for property.
func Decl(property string, values ...string) Declaration {
	return Declaration{Property: property, Values: values}
}

// StyleRule is a CSS rule with one or more selectors and a list of
// declarations. It is a leaf in the node tree.
type StyleRule struct {
	Selectors    []string
	Declarations []Declaration
}

// NewStyleRule returns a rule for the selectors.
func NewStyleRule(selectors []string, decls ...Declaration) *StyleRule {
	return &StyleRule{
		Selectors:    selectors,
		Declarations: decls,
	}
}

// Style returns a rule for a single selector.
func Style(selector string, decls ...Declaration) *StyleRule {
	return NewStyleRule([]string{selector}, decls...)
}

// Set replaces the values of property or appends a new declaration.
func (sr *StyleRule) Set(property string, values ...string) {
	for i, d := range sr.Declarations {
		if d.Property == property {
			sr.Declarations[i].Values = values
			return
		}
	}
	sr.Declarations = append(sr.Declarations, Decl(property, values...))
}

// Get returns the values of property.
func (sr *StyleRule) Get(property string) []string {
	for _, d := range sr.Declarations {
		if d.Property == property {
			return d.Values
		}
	}
	return nil
}

// Render returns the rule on one line. The level is ignored.
func (sr *StyleRule) Render(level int) (string, error) {
	var b strings.Builder
	b.WriteString(strings.Join(sr.Selectors, ", "))
	b.WriteString(" {")
	for _, d := range sr.Declarations {
		for _, v := range d.Values {
			b.WriteString(" " + d.Property + ": " + v + ";")
		}
	}
	b.WriteString(" }\n")
	return b.String(), nil
}

func (sr *StyleRule) String() string {
	s, _ := sr.Render(0)
	return s
}

func (sr *StyleRule) element() *Node { return nil }
