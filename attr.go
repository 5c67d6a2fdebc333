package htmlbuilder

import (
	"strings"

	"golang.org/x/net/html"
)

// validAttributes lists the attributes a node can carry, in render order.
var validAttributes = [...]string{
	"title",
	"alt",
	"style",
	"id",
	"name",
	"type",
	"class",
	"href",
	"source",
	"rel",
}

// ValidAttributes returns the names of the attributes a node accepts in the
// order they are rendered.
func ValidAttributes() []string {
	ret := make([]string, len(validAttributes))
	copy(ret, validAttributes[:])
	return ret
}

// IsValidAttribute reports whether name is one of the recognized attributes.
func IsValidAttribute(name string) bool {
	for _, a := range validAttributes {
		if a == name {
			return true
		}
	}
	return false
}

// Only these four characters are escaped; html.EscapeString also rewrites '
// and \r which changes the output.
var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// SetAttr sets the attribute name to value. The pseudo attribute "class"
// replaces the class list, "content" and "innerHTML" replace all children with
// the text value.
func (n *Node) SetAttr(name, value string) error {
	switch name {
	case "class":
		n.SetClass(value)
		return nil
	case "content", "innerHTML":
		return n.SetContent(Text(value))
	}
	if !IsValidAttribute(name) {
		return unknownAttribute(name)
	}
	n.attrs[name] = value
	return nil
}

// Attr returns the value of the attribute name or the empty string if it is
// not set. "class" returns the class string, "content" and "innerHTML" the
// rendered children.
func (n *Node) Attr(name string) (string, error) {
	switch name {
	case "class":
		return n.ClassString(), nil
	case "content", "innerHTML":
		return n.Content()
	}
	if !IsValidAttribute(name) {
		return "", unknownAttribute(name)
	}
	return n.attrs[name], nil
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return n.attrs["id"]
}

// Attributes returns the attributes with a non-empty value in render order.
// The class attribute is built from the class list.
func (n *Node) Attributes() []html.Attribute {
	var ret []html.Attribute
	for _, name := range validAttributes {
		var val string
		if name == "class" {
			val = n.ClassString()
		} else {
			val = n.attrs[name]
		}
		if val != "" {
			ret = append(ret, html.Attribute{Key: name, Val: val})
		}
	}
	return ret
}

// SetClass replaces all classes by className.
func (n *Node) SetClass(className string) {
	n.classes = []string{className}
}

// AddClass appends the class names that are not already present.
func (n *Node) AddClass(classNames ...string) {
	for _, c := range classNames {
		if !n.HasClass(c) {
			n.classes = append(n.classes, c)
		}
	}
}

// RemoveClass removes className. It is not an error if the class is absent.
func (n *Node) RemoveClass(className string) {
	kept := n.classes[:0]
	for _, c := range n.classes {
		if c != className {
			kept = append(kept, c)
		}
	}
	n.classes = kept
}

// HasClass reports whether className is in the class list.
func (n *Node) HasClass(className string) bool {
	for _, c := range n.classes {
		if c == className {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return append([]string(nil), n.classes...)
}

// ClassString returns the classes separated by a space.
func (n *Node) ClassString() string {
	return strings.Join(n.classes, " ")
}
