package htmlbuilder

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
)

// Query renders c and parses the result into a goquery document. Fragments
// are placed in the body of the document the way an HTML parser does it.
func Query(c Child) (*goquery.Document, error) {
	s, err := c.Render(0)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(s))
}

// Document renders the page and parses it into a goquery document.
func (p *Page) Document() (*goquery.Document, error) {
	s, err := p.Render()
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(s))
}

// UnusedStyles returns the style rules of the page where no selector matches
// an element of the rendered page. A selector that cannot be compiled is an
// error.
func (p *Page) UnusedStyles() ([]*StyleRule, error) {
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}
	var unused []*StyleRule
	for _, sr := range p.StyleRules() {
		used := false
		for _, sel := range sr.Selectors {
			m, err := cascadia.Compile(sel)
			if err != nil {
				return nil, errors.Wrapf(err, "selector %q", sel)
			}
			if doc.FindMatcher(m).Length() > 0 {
				used = true
				break
			}
		}
		if !used {
			unused = append(unused, sr)
		}
	}
	return unused, nil
}
