// Command htmlbuilder writes a sample page built with the htmlbuilder package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/boxesandglue/htmlbuilder"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		title    = flag.String("title", "Test Page: Hello World 123", "document title")
		styles   = flag.String("styles", "", "YAML file with additional style rules")
		output   = flag.String("o", "", "output file (default stdout)")
		minify   = flag.Bool("minify", false, "minify the output")
		lint     = flag.Bool("lint", false, "log style rules that match no element")
		defaults = flag.Bool("defaults", false, "start with the default style sheet")
		debug    = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config{
		title:    *title,
		styles:   *styles,
		output:   *output,
		minify:   *minify,
		lint:     *lint,
		defaults: *defaults,
	}
	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("htmlbuilder")
		os.Exit(1)
	}
}

type config struct {
	title    string
	styles   string
	output   string
	minify   bool
	lint     bool
	defaults bool
}

func run(cfg config) error {
	page, err := buildPage(cfg)
	if err != nil {
		return err
	}
	if cfg.lint {
		unused, err := page.UnusedStyles()
		if err != nil {
			return err
		}
		for _, sr := range unused {
			logrus.WithField("selectors", sr.Selectors).Warn("style rule matches no element")
		}
	}

	var text string
	if cfg.minify {
		text, err = page.Minified()
	} else {
		text, err = page.Render()
	}
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err = fmt.Fprint(w, text)
	return err
}

func buildPage(cfg config) (*htmlbuilder.Page, error) {
	var page *htmlbuilder.Page
	if cfg.defaults {
		page = htmlbuilder.NewPageWithDefaults(cfg.title)
	} else {
		page = htmlbuilder.NewPage(cfg.title)
	}

	mainDiv := page.AddElement("div", htmlbuilder.WithText("Hello World!"), htmlbuilder.WithID("main"))
	mainDiv.AddElement("hr", htmlbuilder.SelfClosing())
	mainDiv.AddElement("h1", htmlbuilder.WithText("Test Title"))
	table := mainDiv.AddTable()

	specialTd := page.CreateElement("td", htmlbuilder.WithText("S"))
	specialTd.AddClass("special")

	if _, err := table.SetMatrix([][]interface{}{
		{"A", "b", "c", "d"},
		{"e", "F", "g", "h"},
		{"i", "j", "K", "l"},
		{"m", "n", "o", "P"},
		{"q", "r", specialTd, "t", "u"},
		{"v", "W", "x", "y", "z"},
	}); err != nil {
		return nil, err
	}
	table.AddRowClass("red", 3)
	table.AddCellClass(0, 2, "awesome")
	table.AddColClass("border", 4)

	page.AddStyle("body", htmlbuilder.Decl("font-family", "Helvetica, Arial, Sans-Serif"))
	page.AddStyle("#main", htmlbuilder.Decl("border", "solid 1px grey"))
	page.AddStyle(".red", htmlbuilder.Decl("background", "red!important"))
	page.AddStyle(".awesome", htmlbuilder.Decl("border", "dotted goldenrod 3px"))
	page.AddStyle("table", htmlbuilder.Decl("border-collapse", "collapse"), htmlbuilder.Decl("width", "100%"))
	page.AddStyle("td", htmlbuilder.Decl("padding", "4px"), htmlbuilder.Decl("margin", "0px"))
	page.AddStyle("tr:nth-child(even)", htmlbuilder.Decl("background", "#ddd"))
	page.AddStyle(".border", htmlbuilder.Decl("border", "solid black 1px"))

	const gradient = "linear-gradient(bottom left, red 20px, yellow, green, blue 90%)"
	page.AddStyle(".special",
		htmlbuilder.Decl("background-color", "#f90"),
		htmlbuilder.Decl("background-image",
			gradient,
			"-o-"+gradient,
			"-moz-"+gradient,
			"-webkit-"+gradient,
			"-ms-"+gradient,
		),
	)

	if cfg.styles != "" {
		f, err := os.Open(cfg.styles)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rules, err := htmlbuilder.LoadStyles(f)
		if err != nil {
			return nil, errors.Wrap(err, cfg.styles)
		}
		if err = page.AddStyleRules(rules...); err != nil {
			return nil, errors.Wrap(err, cfg.styles)
		}
	}
	return page, nil
}
