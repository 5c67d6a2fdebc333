package htmlbuilder

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Page is an HTML document with a head (title and style element) and a body.
type Page struct {
	html  *Node
	head  *Node
	title *Node
	style *Node
	body  *Node
}

// NewPage returns an empty page with the given title.
func NewPage(title string) *Page {
	p := &Page{}
	p.html = NewNode("html")
	p.head = p.html.AddElement("head")
	p.title = p.head.AddElement("title", WithText(title))
	p.style = p.head.AddElement("style")
	p.style.fail(p.style.SetAttr("type", "text/css"))
	p.body = p.html.AddElement("body")
	return p
}

// NewPageWithDefaults returns a page whose style element starts with
// DefaultStyles.
func NewPageWithDefaults(title string) *Page {
	p := NewPage(title)
	p.style.fail(p.AddStyleRules(DefaultStyles()...))
	return p
}

// HTML returns the root element.
func (p *Page) HTML() *Node { return p.html }

// Head returns the head element.
func (p *Page) Head() *Node { return p.head }

// Body returns the body element.
func (p *Page) Body() *Node { return p.body }

// StyleElement returns the style element in the head.
func (p *Page) StyleElement() *Node { return p.style }

// SetTitle replaces the document title.
func (p *Page) SetTitle(title string) error {
	return p.title.SetContent(Text(title))
}

// AddLink adds a link element to the head.
func (p *Page) AddLink(linkType, url string) *Node {
	link := p.head.AddElement("link", SelfClosing())
	link.fail(link.SetAttr("href", url))
	link.fail(link.SetAttr("type", linkType))
	return link
}

// AddJavaScriptLink adds a link to a script.
func (p *Page) AddJavaScriptLink(url string) *Node {
	return p.AddLink("text/javascript", url)
}

// AddCSSLink adds a link to a style sheet.
func (p *Page) AddCSSLink(url string) *Node {
	link := p.AddLink("text/css", url)
	link.fail(link.SetAttr("rel", "stylesheet"))
	return link
}

// AddChild appends c to the body.
func (p *Page) AddChild(c Child) (Child, error) {
	return p.body.AddChild(c)
}

// AddElement creates an element in the body.
func (p *Page) AddElement(tag string, opts ...Option) *Node {
	return p.body.AddElement(tag, opts...)
}

// AddTable creates a table in the body.
func (p *Page) AddTable(opts ...Option) *Table {
	return p.body.AddTable(opts...)
}

// CreateElement returns a new element that is not attached to the page.
func (p *Page) CreateElement(tag string, opts ...Option) *Node {
	return NewNode(tag, opts...)
}

// AddStyle adds a rule for selector to the style element.
func (p *Page) AddStyle(selector string, decls ...Declaration) *StyleRule {
	sr := Style(selector, decls...)
	p.style.children = append(p.style.children, sr)
	return sr
}

// AddStyleRules appends the rules to the style element. A nil rule is an
// error; the rules before it are added.
func (p *Page) AddStyleRules(rules ...*StyleRule) error {
	for i, sr := range rules {
		if _, err := p.style.AddChild(sr); err != nil {
			return errors.Wrapf(err, "style rule %d", i)
		}
	}
	return nil
}

// StyleRules returns the rules in the style element.
func (p *Page) StyleRules() []*StyleRule {
	var ret []*StyleRule
	for _, c := range p.style.children {
		if sr, ok := c.(*StyleRule); ok {
			ret = append(ret, sr)
		}
	}
	return ret
}

// Render returns the document type declaration followed by the html tree.
func (p *Page) Render() (string, error) {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("styles", len(p.StyleRules())).Debugf("render page\n%s", Outline(p.html))
	}
	s, err := p.html.Render(0)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n" + s, nil
}

// String returns the rendered page. On error it logs the error at debug level
// and returns an empty string; use Render to get the error.
func (p *Page) String() string {
	s, err := p.Render()
	if err != nil {
		logrus.WithError(err).Debug("render page")
		return ""
	}
	return s
}

// WriteTo writes the rendered page to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	s, err := p.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// DefaultStyles returns browser-like styling for some elements.
func DefaultStyles() []*StyleRule {
	return []*StyleRule{
		Style("html", Decl("font-size", "10pt"), Decl("tab-size", "4"), Decl("font-family", "sans-serif")),
		Style("head", Decl("display", "none")),
		Style("table", Decl("display", "table"), Decl("border-spacing", "2pt")),
		Style("tr", Decl("display", "table-row")),
		Style("thead", Decl("display", "table-header-group")),
		Style("tbody", Decl("display", "table-row-group")),
		Style("tfoot", Decl("display", "table-footer-group")),
		NewStyleRule([]string{"td", "th"}, Decl("display", "table-cell")),
		Style("caption", Decl("display", "table-caption"), Decl("text-align", "center")),
		Style("th", Decl("font-weight", "bold"), Decl("text-align", "center")),
		Style("body", Decl("margin", "0pt"), Decl("line-height", "1.2"), Decl("font-weight", "normal")),
		Style("p", Decl("font-size", "1em"), Decl("margin", "1.5em 0")),
		Style("h1", Decl("font-size", "2em"), Decl("margin", ".67em 0")),
		Style("h2", Decl("font-size", "1.5em"), Decl("margin", ".75em 0")),
		Style("h3", Decl("font-size", "1.17em"), Decl("margin", ".83em 0")),
		NewStyleRule([]string{"h1", "h2", "h3", "h4", "h5", "h6", "b", "strong"}, Decl("font-weight", "bold")),
		NewStyleRule([]string{"i", "cite", "em", "var", "address"}, Decl("font-style", "italic")),
		NewStyleRule([]string{"pre", "tt", "code", "kbd", "samp"}, Decl("font-family", "monospace")),
		NewStyleRule([]string{"thead", "tbody", "tfoot"}, Decl("vertical-align", "middle")),
		NewStyleRule([]string{"td", "th", "tr"}, Decl("vertical-align", "inherit")),
		Style("hr", Decl("border", "1px inset")),
		NewStyleRule([]string{"ol", "ul"}, Decl("padding-left", "20pt")),
		Style("ol", Decl("list-style-type", "decimal")),
		Style("ul", Decl("list-style-type", "disc")),
		Style("center", Decl("text-align", "center")),
	}
}
