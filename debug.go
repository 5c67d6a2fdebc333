package htmlbuilder

import (
	"strings"
)

func indent(s string) string {
	ret := []string{}
	for _, line := range strings.Split(s, "\n") {
		ret = append(ret, "    "+line)
	}
	return strings.Join(ret, "\n")
}

// Outline returns the structure of c, one element per line with its id and
// classes, children indented. Text is shown quoted and style rules by their
// selectors. Tables are not materialized.
func Outline(c Child) string {
	if isNilChild(c) {
		return ""
	}
	switch v := c.(type) {
	case Text:
		return `"` + string(v) + `"`
	case *StyleRule:
		return "{" + strings.Join(v.Selectors, ", ") + "}"
	}
	n := c.element()
	ret := []string{n.summary()}
	for _, child := range n.children {
		ret = append(ret, indent(Outline(child)))
	}
	return strings.Join(ret, "\n")
}

func (n *Node) summary() string {
	s := n.tag
	if id := n.ID(); id != "" {
		s += "#" + id
	}
	for _, c := range n.classes {
		s += "." + c
	}
	if n.selfClosing {
		s += "/"
	}
	return s
}
