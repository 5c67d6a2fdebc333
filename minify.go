package htmlbuilder

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
)

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/html", mhtml.Minify)
		minifier.AddFunc("text/css", css.Minify)
	})
	return minifier
}

// Minify renders c and removes the whitespace the renderer adds for
// indentation.
func Minify(c Child) (string, error) {
	s, err := c.Render(0)
	if err != nil {
		return "", err
	}
	return minifyString(s)
}

func minifyString(s string) (string, error) {
	ret, err := getMinifier().String("text/html", s)
	if err != nil {
		return "", errors.Wrap(err, "minify")
	}
	return ret, nil
}

// Minified returns the rendered and minified page.
func (p *Page) Minified() (string, error) {
	s, err := p.Render()
	if err != nil {
		return "", err
	}
	return minifyString(s)
}
