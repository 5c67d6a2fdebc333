package htmlbuilder

import (
	"testing"
)

func TestStyleRender(t *testing.T) {
	sr := Style("body", Decl("font-family", "Helvetica, Arial, Sans-Serif"))
	if got, want := sr.String(), "body { font-family: Helvetica, Arial, Sans-Serif; }\n"; got != want {
		t.Errorf("sr.String() = %q, want %q", got, want)
	}
}

func TestStyleMultipleValues(t *testing.T) {
	sr := NewStyleRule([]string{"h1", "h2"},
		Decl("margin", "0"),
		Decl("background-image", "linear-gradient(red, blue)", "-webkit-linear-gradient(red, blue)"),
	)
	want := "h1, h2 { margin: 0; background-image: linear-gradient(red, blue); background-image: -webkit-linear-gradient(red, blue); }\n"
	got, err := sr.Render(3)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("sr.Render(3) = %q, want %q", got, want)
	}
}

func TestStyleSet(t *testing.T) {
	sr := Style("td", Decl("padding", "4px"), Decl("margin", "0px"))
	sr.Set("padding", "2px")
	sr.Set("color", "red")
	if got, want := sr.String(), "td { padding: 2px; margin: 0px; color: red; }\n"; got != want {
		t.Errorf("sr.String() = %q, want %q", got, want)
	}
	if got := sr.Get("margin"); len(got) != 1 || got[0] != "0px" {
		t.Errorf(`sr.Get("margin") = %v, want [0px]`, got)
	}
	if got := sr.Get("border"); got != nil {
		t.Errorf(`sr.Get("border") = %v, want nil`, got)
	}
}

func TestStyleInElement(t *testing.T) {
	style := NewNode("style")
	if _, err := style.AddChild(Style("p", Decl("color", "red"))); err != nil {
		t.Fatal(err)
	}
	if got, want := style.String(), "<style>p { color: red; }\n</style>\n"; got != want {
		t.Errorf("style.String() = %q, want %q", got, want)
	}
	style.RemoveChild(style.Children()[0])
	if got := len(style.Children()); got != 0 {
		t.Errorf("len(style.Children()) = %d, want 0", got)
	}
}
