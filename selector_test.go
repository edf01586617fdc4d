package cssbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringifyAllCategories(t *testing.T) {
	got := Element("div").ID("main").Class("wide").Attr("data-x").PseudoClass("hover").PseudoElement("before").String()
	if want := "div#main.wide[data-x]:hover::before"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringifyIDWithClasses(t *testing.T) {
	if got, want := ID("main").Class("container").Class("editable").String(), "#main.container.editable"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringifyAttrPseudoClass(t *testing.T) {
	got := Element("a").Attr(`href$=".png"`).PseudoClass("focus").String()
	if want := `a[href$=".png"]:focus`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringifyEmpty(t *testing.T) {
	s := &SimpleSelector{}
	if got := s.String(); got != "" {
		t.Errorf("empty selector String() = %q, want \"\"", got)
	}
}

func TestStringifyRepeatable(t *testing.T) {
	s := Element("p").Class("lead")
	first := s.String()
	if second := s.String(); second != first {
		t.Errorf("second String() = %q, first was %q", second, first)
	}
}

func TestClassesKeepCallOrder(t *testing.T) {
	s := Class("a")
	for _, c := range []string{"b", "c", "b"} {
		s.Class(c)
	}
	if got, want := s.String(), ".a.b.c.b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDuplicateSingleCategories(t *testing.T) {
	assert.PanicsWithError(t, "cssbuilder: element may occur only once per selector", func() {
		Element("div").Element("p")
	})
	assert.PanicsWithError(t, "cssbuilder: id may occur only once per selector", func() {
		ID("main").ID("other")
	})
	assert.PanicsWithError(t, "cssbuilder: pseudo-element may occur only once per selector", func() {
		PseudoElement("before").PseudoElement("after")
	})
}

func TestDuplicateWinsOverOrder(t *testing.T) {
	// Both rules are violated here; the duplicate check comes first.
	assert.PanicsWithError(t, "cssbuilder: element may occur only once per selector", func() {
		Element("div").ID("main").Element("p")
	})
}

func TestOrderViolations(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
		want string
	}{
		{"element after id", func() { ID("main").Element("div") }, "cssbuilder: element written after id"},
		{"id after class", func() { Class("x").ID("main") }, "cssbuilder: id written after class"},
		{"class after attribute", func() { Attr("href").Class("x") }, "cssbuilder: class written after attribute"},
		{"attribute after pseudo-class", func() { PseudoClass("hover").Attr("href") }, "cssbuilder: attribute written after pseudo-class"},
		{"class after pseudo-element", func() { PseudoElement("after").Class("x") }, "cssbuilder: class written after pseudo-element"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.PanicsWithError(t, tc.want, tc.fn)
		})
	}
}

func TestOrderCheckedOnEveryCall(t *testing.T) {
	// The first class call is fine; the second arrives after a
	// pseudo-class and must still be rejected.
	s := Element("div").Class("a").PseudoClass("hover")
	assert.PanicsWithError(t, "cssbuilder: class written after pseudo-class", func() {
		s.Class("b")
	})
}

func TestValidOrderNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		Element("input").Class("field").Class("wide").Attr("type=text").Attr("required").PseudoClass("focus").PseudoClass("valid").PseudoElement("placeholder")
	})
}
