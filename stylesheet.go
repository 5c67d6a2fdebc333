package htmlbuilder

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/speedata/css/scanner"
	"gopkg.in/yaml.v3"
)

// LoadStyles reads style rules from YAML. The document is a mapping from
// selectors to mappings from property names to a value or a list of values:
//
//	body:
//	  font-family: Helvetica, Arial, Sans-Serif
//	"h1, h2":
//	  margin: 0
//	.special:
//	  background-image:
//	    - linear-gradient(red, blue)
//	    - -webkit-linear-gradient(red, blue)
//
// Rules and declarations keep the order of the document.
func LoadStyles(r io.Reader) ([]*StyleRule, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read styles")
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("styles line %d: want a mapping of selectors", root.Line)
	}
	var rules []*StyleRule
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		sr, err := styleFromYAML(key, val)
		if err != nil {
			return nil, err
		}
		rules = append(rules, sr)
	}
	return rules, nil
}

func splitSelectors(s string) []string {
	var ret []string
	for _, sel := range strings.Split(s, ",") {
		if sel = strings.TrimSpace(sel); sel != "" {
			ret = append(ret, sel)
		}
	}
	return ret
}

func styleFromYAML(key, val *yaml.Node) (*StyleRule, error) {
	selectors := splitSelectors(key.Value)
	if len(selectors) == 0 {
		return nil, errors.Errorf("styles line %d: empty selector", key.Line)
	}
	sr := NewStyleRule(selectors)
	if val.Kind != yaml.MappingNode {
		return nil, errors.Errorf("styles line %d: declarations of %q must be a mapping", val.Line, key.Value)
	}
	for i := 0; i+1 < len(val.Content); i += 2 {
		prop, v := val.Content[i], val.Content[i+1]
		if err := checkProperty(prop.Value); err != nil {
			return nil, errors.Wrapf(err, "styles line %d", prop.Line)
		}
		var values []string
		switch v.Kind {
		case yaml.ScalarNode:
			values = []string{v.Value}
		case yaml.SequenceNode:
			for _, item := range v.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, errors.Errorf("styles line %d: values of %q must be scalars", item.Line, prop.Value)
				}
				values = append(values, item.Value)
			}
		default:
			return nil, errors.Errorf("styles line %d: invalid value for %q", v.Line, prop.Value)
		}
		sr.Declarations = append(sr.Declarations, Decl(prop.Value, values...))
	}
	return sr, nil
}

// checkProperty makes sure name is a single CSS identifier such as
// background-color or -webkit-box-shadow.
func checkProperty(name string) error {
	s := scanner.New(name)
	tok := s.Next()
	if tok.Type != scanner.Ident {
		return errors.Errorf("invalid property name %q", name)
	}
	if tok = s.Next(); tok.Type != scanner.EOF {
		return errors.Errorf("invalid property name %q", name)
	}
	return nil
}
