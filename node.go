package htmlbuilder

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

// Child is an entry in the children list of a node. The only implementations
// are Text, *Node, *Table and *StyleRule.
type Child interface {
	// Render returns the text of the child at the given nesting level.
	Render(level int) (string, error)
	// element returns the node behind the child or nil for leaves.
	element() *Node
}

// Text is raw text content. It is not escaped.
type Text string

// Render returns the text followed by a newline.
func (t Text) Render(level int) (string, error) {
	return string(t) + "\n", nil
}

func (t Text) element() *Node { return nil }

// Node is an HTML element.
type Node struct {
	tag         string
	atom        atom.Atom
	attrs       map[string]string
	classes     []string
	children    []Child
	parent      *Node
	selfClosing bool
	// err is the first error of an option or helper, returned by Render.
	err error
	// self is the outermost value (a *Table for tables), used when the node
	// adds itself to a parent and for String.
	self Child
}

// Option configures a node on creation. An option that fails makes Render
// and Err of the new node return the error.
type Option func(*Node) error

// WithContent adds c as the first child.
func WithContent(c Child) Option {
	return func(n *Node) error {
		_, err := n.AddChild(c)
		return err
	}
}

// WithText adds s as the first child.
func WithText(s string) Option {
	return WithContent(Text(s))
}

// WithParent appends the new node to parent.
func WithParent(parent *Node) Option {
	return func(n *Node) error {
		return n.SetParent(parent)
	}
}

// SelfClosing makes the node render as <tag/> without children.
func SelfClosing() Option {
	return func(n *Node) error {
		n.selfClosing = true
		return nil
	}
}

// WithID sets the id attribute.
func WithID(id string) Option {
	return func(n *Node) error {
		n.attrs["id"] = id
		return nil
	}
}

// WithClass adds the classes to the new node.
func WithClass(classNames ...string) Option {
	return func(n *Node) error {
		n.AddClass(classNames...)
		return nil
	}
}

func newNode(tag string) *Node {
	n := &Node{
		tag:   tag,
		atom:  atom.Lookup([]byte(tag)),
		attrs: make(map[string]string),
	}
	n.self = n
	return n
}

// NewNode creates an element with the given tag name.
func NewNode(tag string, opts ...Option) *Node {
	n := newNode(tag)
	n.apply(opts)
	return n
}

func (n *Node) apply(opts []Option) {
	for _, opt := range opts {
		n.fail(opt(n))
	}
}

// fail records err unless an earlier error is already recorded.
func (n *Node) fail(err error) {
	if err != nil && n.err == nil {
		n.err = err
	}
}

// Err returns the first error of an option or helper method such as
// AddElement. Render returns the same error.
func (n *Node) Err() error {
	return n.err
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.tag
}

// IsSelfClosing reports whether the node renders without children and end tag.
func (n *Node) IsSelfClosing() bool {
	return n.selfClosing
}

// Parent returns the node this node is attached to or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the children list.
func (n *Node) Children() []Child {
	return append([]Child(nil), n.children...)
}

func (n *Node) element() *Node { return n }

func isNilChild(c Child) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Node:
		return v == nil
	case *Table:
		return v == nil || v.Node == nil
	case *StyleRule:
		return v == nil
	}
	return false
}

func sameChild(a, b Child) bool {
	if ae := a.element(); ae != nil {
		return ae == b.element()
	}
	return a == b
}

// AddChild appends c to the children and returns it. A node that is attached
// somewhere else is detached first.
func (n *Node) AddChild(c Child) (Child, error) {
	if isNilChild(c) {
		return nil, typeConstraint("add child", "child must be text, a node, a table or a style rule, not %T", c)
	}
	if e := c.element(); e != nil {
		if err := n.checkCycle("add child", e); err != nil {
			return nil, err
		}
		if e.parent != nil && e.parent != n {
			e.parent.RemoveChild(c)
		}
		e.parent = n
	}
	n.children = append(n.children, c)
	return c, nil
}

// checkCycle returns an error if e is n or one of its ancestors.
func (n *Node) checkCycle(op string, e *Node) error {
	for p := n; p != nil; p = p.parent {
		if p == e {
			return typeConstraint(op, "<%s> cannot contain itself", e.tag)
		}
	}
	return nil
}

// AddElement creates a node and appends it. If that fails, the error is
// recorded and returned by Render.
func (n *Node) AddElement(tag string, opts ...Option) *Node {
	e := NewNode(tag, opts...)
	_, err := n.AddChild(e)
	n.fail(err)
	return e
}

// AddTable creates a table and appends it. Errors are handled like in
// AddElement.
func (n *Node) AddTable(opts ...Option) *Table {
	t := NewTable(opts...)
	_, err := n.AddChild(t)
	n.fail(err)
	return t
}

// AddText appends raw text.
func (n *Node) AddText(s string) {
	n.children = append(n.children, Text(s))
}

// RemoveChild removes every occurrence of c. Nodes are compared by identity,
// text and style rules by value.
func (n *Node) RemoveChild(c Child) {
	if isNilChild(c) {
		return
	}
	kept := n.children[:0]
	for _, entry := range n.children {
		if sameChild(entry, c) {
			if e := entry.element(); e != nil && e.parent == n {
				e.parent = nil
			}
			continue
		}
		kept = append(kept, entry)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
}

// SetParent attaches the node to parent, detaching it from its current parent
// first.
func (n *Node) SetParent(parent *Node) error {
	if parent == nil {
		return typeConstraint("set parent", "parent must be a node")
	}
	if err := parent.checkCycle("set parent", n); err != nil {
		return err
	}
	if n.parent != nil {
		n.parent.RemoveChild(n.self)
	}
	_, err := parent.AddChild(n.self)
	return err
}

// RemoveParent detaches the node from its parent.
func (n *Node) RemoveParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n.self)
	}
	n.parent = nil
}

// ClearChildren removes all children.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		if e := c.element(); e != nil && e.parent == n {
			e.parent = nil
		}
	}
	n.children = nil
}

// Content returns the rendered children without the enclosing tag.
func (n *Node) Content() (string, error) {
	return n.renderChildren(0)
}

// SetContent replaces all children by c.
func (n *Node) SetContent(c Child) error {
	n.ClearChildren()
	_, err := n.AddChild(c)
	return err
}

func (n *Node) renderChildren(level int) (string, error) {
	var b strings.Builder
	for i, c := range n.children {
		s, err := c.Render(level)
		if err != nil {
			return "", err
		}
		if s == "" {
			return "", typeConstraint("render", "child %d (%T) of <%s> is empty", i, c, n.tag)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Render returns the HTML text of the node and its children. Closing tags are
// indented by four spaces per level.
func (n *Node) Render(level int) (string, error) {
	if n.err != nil {
		return "", errors.Wrapf(n.err, "<%s>", n.tag)
	}
	var b strings.Builder
	b.WriteString("<" + n.tag)
	for _, a := range n.Attributes() {
		b.WriteString(" " + a.Key + `="` + escapeAttr(a.Val) + `"`)
	}
	if n.selfClosing {
		b.WriteString("/>")
		return b.String(), nil
	}
	b.WriteString(">")
	content, err := n.renderChildren(level + 1)
	if err != nil {
		return "", errors.Wrapf(err, "<%s>", n.tag)
	}
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("    ", level) + "</" + n.tag + ">\n")
	return b.String(), nil
}

// String renders the node at level 0. On error it logs the error at debug
// level and returns an empty string; use Render to get the error.
func (n *Node) String() string {
	s, err := n.self.Render(0)
	if err != nil {
		logrus.WithError(err).Debug("render node")
		return ""
	}
	return s
}
