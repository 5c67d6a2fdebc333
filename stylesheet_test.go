package htmlbuilder

import (
	"strings"
	"testing"
)

func TestLoadStyles(t *testing.T) {
	str := `
body:
  font-family: Helvetica, Arial, Sans-Serif
"h1, h2":
  margin: 0
.special:
  background-color: "#f90"
  background-image:
    - linear-gradient(red, blue)
    - -webkit-linear-gradient(red, blue)
`
	rules, err := LoadStyles(strings.NewReader(str))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(rules), 3; got != want {
		t.Fatalf("len(rules) = %d, want %d", got, want)
	}
	if got, want := strings.Join(rules[1].Selectors, "|"), "h1|h2"; got != want {
		t.Errorf("rules[1].Selectors = %s, want %s", got, want)
	}
	special := rules[2]
	if got, want := special.Declarations[0].Property, "background-color"; got != want {
		t.Errorf("special.Declarations[0].Property = %s, want %s", got, want)
	}
	if got, want := len(special.Declarations[1].Values), 2; got != want {
		t.Errorf("len(special.Declarations[1].Values) = %d, want %d", got, want)
	}
	want := ".special { background-color: #f90; background-image: linear-gradient(red, blue); background-image: -webkit-linear-gradient(red, blue); }\n"
	if got := special.String(); got != want {
		t.Errorf("special.String() = %q, want %q", got, want)
	}
}

func TestLoadStylesEmpty(t *testing.T) {
	rules, err := LoadStyles(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 0 {
		t.Errorf("len(rules) = %d, want 0", len(rules))
	}
}

func TestLoadStylesErrors(t *testing.T) {
	for _, str := range []string{
		"- a\n- b\n",
		"p: red\n",
		"p:\n  \"color;\": red\n",
		"p:\n  color:\n    a: b\n",
		"\" , \":\n  color: red\n",
	} {
		if _, err := LoadStyles(strings.NewReader(str)); err == nil {
			t.Errorf("LoadStyles(%q) succeeded, want an error", str)
		}
	}
}

func TestCheckProperty(t *testing.T) {
	for _, name := range []string{"color", "background-color", "-webkit-box-shadow"} {
		if err := checkProperty(name); err != nil {
			t.Errorf("checkProperty(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"", "color: red", "a b", "1px"} {
		if err := checkProperty(name); err == nil {
			t.Errorf("checkProperty(%q) = nil, want an error", name)
		}
	}
}
