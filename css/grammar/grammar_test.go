package grammar

import (
	"errors"
	"strings"
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type mapDefinitions map[string]Node

func (m mapDefinitions) Property(name string) (Node, bool) {
	n, ok := m[name]
	return n, ok
}

func TestParseDefinition(t *testing.T) {
	for _, data := range [][2]string{
		{"<length> | auto", "<length> | auto"},
		{"a b? c#", "a b? c#"},
		{"[ a | b ]{1,2}", "[ a | b ]{1,2}"},
		{"a || b && c", "a || [ b && c ]"},
		{"<length [0,∞]>", "<length [0,∞]>"},
		{"<'margin-top'>{1,4}", "<'margin-top'>{1,4}"},
		{"rect( <length> ',' <length> )", "rect( <length> ',' <length> )"},
		{"scroll()", "scroll()"},
		{"'[' <custom-ident>* ']'", "'[' <custom-ident>* ']'"},
		{"<integer>#{1,3}", "<integer>#{1,3}"},
		{"[ a b ]!", "[ a b ]!"},
	} {
		node, err := Parse(data[0])
		tu.AssertNoErr(t, err)
		tu.AssertEqual(t, node.String(), data[1])
	}
}

func TestParseDefinitionErrors(t *testing.T) {
	for _, def := range []string{
		"<length",
		"a |",
		"[ a",
		"a{2,1}",
		"<>",
		"'a",
		"rect( a",
		"",
	} {
		_, err := Parse(def)
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("expected syntax error for %q, got %v", def, err)
		}
	}
}

func TestParseItems(t *testing.T) {
	node, err := ParseItems("<'a'> <'b'>")
	tu.AssertNoErr(t, err)
	seq := node.(*Sequence)
	tu.AssertEqual(t, seq.Items[0].(*PropertyRef).Item, true)

	node = MustParse("<'a'>")
	tu.AssertEqual(t, node.(*PropertyRef).Item, false)
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.grammar")
	defer teardown()

	for _, data := range []struct {
		def, input, expected string
	}{
		{"<length> | auto", "AUTO", "auto"},
		{"<length>", "0", "0px"},
		{"<length>", "1.50PX", "1.5px"},
		{"<length>", "calc(1px + 2%)", "calc(1px + 2%)"},
		{"<percentage>", "+12.0%", "12%"},
		{"<number>", "1e1", "10"},
		{"<integer>", "-3", "-3"},
		{"<color>", "#FFF", "#fff"},
		{"<color>", "currentColor", "currentcolor"},
		{"<color>", "RGB(0  0 0)", "rgb(0 0 0)"},
		{"<color>", "Red", "red"},
		{"<position>", "left 10px top 5%", "left 10px top 5%"},
		{"<position>", "center", "center"},
		{"<position>", "10px bottom", "10px bottom"},
		{"<bg-position>", "right 10px top", "right 10px top"},
		{"a || b || c", "c a", "a c"},
		{"a && b", "b a", "a b"},
		{"<length>#", "1px,2px", "1px, 2px"},
		{"<length>+", "1px 2px 3px", "1px 2px 3px"},
		{"<ratio>", "16/9", "16 / 9"},
		{"<shadow>", "inset 1px 2px red", "red 1px 2px inset"},
		{"<url>", "url(a.png)", `url("a.png")`},
		{"<url>", "url( 'a.png' )", `url("a.png")`},
		{"<custom-ident>", "Foo", "Foo"},
		{"<string>", "'a'", `"a"`},
		{"fit-content( <length-percentage [0,∞]> )", "fit-content(10PX)", "fit-content(10px)"},
		{"<track-size>", "minmax(10px,1fr)", "minmax(10px, 1fr)"},
		{"<line-names>", "[a  b]", "[a b]"},
		{"<track-list>", "[a] repeat(2, 1fr) [b]", "[a] repeat(2, 1fr) [b]"},
		{"<grid-line>", "span 2 foo", "span 2 foo"},
		{"<family-name>", "Times   New Roman", "Times New Roman"},
		{"<easing-function>", "steps(2,start)", "steps(2, start)"},
		{"<single-animation-timeline>", "scroll()", "scroll()"},
		{"[ a b? ]!", "a", "a"},
	} {
		value, ok := MatchString(data.input, MustParse(data.def), nil)
		if !ok {
			t.Fatalf("%s: expected a match for %q", data.def, data.input)
		}
		tu.AssertEqual(t, value.String(), data.expected)
	}
}

func TestNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.grammar")
	defer teardown()

	for _, data := range [][2]string{
		{"<length>", "1"},
		{"<length>", "1deg"},
		{"<length [0,∞]>", "-1px"},
		{"<integer>", "1.5"},
		{"<number [1,1000]>", "0"},
		{"<length>{2}", "1px"},
		{"<length>#", "1px,"},
		{"<length>#", ",1px"},
		{"<custom-ident>", "inherit"},
		{"<custom-ident>", "default"},
		{"<grid-line>", "span"},
		{"a || b", "a a"},
		{"a && b", "a"},
		{"<color>", "#ff"},
		{"<color>", "rgb()"},
		{"[ a? ]!", "b"},
		{"<length>", ""},
		{"<undefined-type>", "a"},
		{"<'a'>", "a"},
	} {
		if _, ok := MatchString(data[1], MustParse(data[0]), nil); ok {
			t.Fatalf("%s: unexpected match for %q", data[0], data[1])
		}
	}
}

func TestMatchProperties(t *testing.T) {
	defs := mapDefinitions{
		"a": MustParse("<length>#"),
		"b": MustParse("auto | <integer>"),
	}
	node, err := ParseItems("<'a'> || <'b'>")
	tu.AssertNoErr(t, err)

	value, ok := MatchString("3 1px", node, defs)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, value.String(), "1px 3")
	tu.AssertEqual(t, value.Find("a").String(), "1px")
	tu.AssertEqual(t, value.Find("b").String(), "3")
	tu.AssertEqual(t, value.Find("c") == nil, true)

	// only one item of the list
	_, ok = MatchString("1px, 2px", node, defs)
	tu.AssertEqual(t, ok, false)

	value, ok = MatchString("1px, 2px", MustParse("<'a'>"), defs)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, value.Property, "a")
	tu.AssertEqual(t, len(value.Items()), 2)
}

func TestValueLabels(t *testing.T) {
	value, ok := MatchString("left 10px top", MustParse("<bg-position>"), nil)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, value.Type, "bg-position")
	tu.AssertEqual(t, value.FindType("length-percentage").String(), "10px")
	tu.AssertEqual(t, value.IsKeyword("left"), false)

	dump := value.Dump()
	if !strings.Contains(dump, "<bg-position>") || !strings.Contains(dump, "10px") {
		t.Fatalf("unexpected dump:\n%s", dump)
	}
}

func TestUndefined(t *testing.T) {
	tu.AssertEqual(t, Undefined(MustParse("<foo> | <length> | <'a'>"), mapDefinitions{"a": nil}), []string{"<foo>"})
	tu.AssertEqual(t, len(Undefined(MustParse("<'b'>"), nil)), 1)
	tu.AssertEqual(t, IsDefined("position"), true)
	tu.AssertEqual(t, IsDefined("length"), true)
	tu.AssertEqual(t, IsDefined("foo"), false)
}

func TestRegister(t *testing.T) {
	Register("test-grammar-type", "foo | <length>")
	value, ok := MatchString("FOO", MustParse("<test-grammar-type>"), nil)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, value.String(), "foo")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register("length", "<number>")
}
