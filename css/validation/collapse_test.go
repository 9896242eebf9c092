package validation

import (
	"testing"

	pr "github.com/benoitkugler/cssom/css/properties"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

// roundTrip expands the shorthand value then serializes its longhands.
func roundTrip(t *testing.T, table *pr.Table, name, value string) (string, bool) {
	t.Helper()
	sh, ok := table.Shorthand(name)
	if !ok {
		t.Fatalf("unknown shorthand %s", name)
	}
	props, err := ParseString(table, name, value)
	tu.AssertNoErr(t, err)
	values := make([]DeclaredValue, len(props))
	for i, p := range props {
		values[i] = p.Value
	}
	return SerializeShorthand(table, sh, values)
}

func assertCollapse(t *testing.T, name, value, expected string) {
	t.Helper()
	got, ok := roundTrip(t, style, name, value)
	if !ok {
		t.Fatalf("%s: %s can't be serialized", name, value)
	}
	tu.AssertEqual(t, got, expected)
}

func TestCollapse(t *testing.T) {
	for _, data := range [][3]string{
		{"margin", "1px", "1px"},
		{"margin", "1px 2px 1px 2px", "1px 2px"},
		{"margin", "1px 2px 3px 2px", "1px 2px 3px"},
		{"margin", "1px 2px 3px 4px", "1px 2px 3px 4px"},
		{"margin-block", "1px 1px", "1px"},
		{"margin-block", "1px 2px", "1px 2px"},
		{"overflow", "hidden hidden", "hidden"},
		{"border", "1px solid red", "1px solid red"},
		{"border", "solid", "solid"},
		{"border-top", "red solid", "solid red"},
		{"flex", "none", "none"},
		{"flex", "2", "2"},
		{"flex", "2 2 10px", "2 2 10px"},
		{"text-align", "justify-all", "justify-all"},
		{"text-align", "center", "center"},
		{"text-align", "match-parent", "match-parent"},
		{"line-clamp", "none", "none"},
		{"line-clamp", "3", "3"},
		{"-webkit-line-clamp", "none", "none"},
		{"-webkit-line-clamp", "2", "2"},
		{"font-synthesis", "none", "none"},
		{"font-synthesis", "style weight", "weight style"},
		{"white-space", "pre", "pre"},
		{"white-space", "normal", "normal"},
		{"grid-area", "a / b / c", "a / b / c"},
		{"grid-area", "1 / 1 / 1 / 1", "1 / 1 / 1 / 1"},
		{"grid-area", "auto", "auto"},
		{"grid-row", "a", "a"},
		{"grid", "none", "none"},
		{"background", "red", "red"},
		{"background", "none", "none"},
		{"background", "url(a.png) repeat-x, red", "url(\"a.png\") repeat-x, red"},
		{"place-items", "normal legacy", "normal legacy"},
		{"place-items", "center", "center"},
		{"mask", "border-box no-clip", "no-clip"},
		{"mask", "content-box no-clip", "content-box no-clip"},
		{"border-clip", "normal", "normal"},
		{"corners", "round 0", "round"},
		{"corners", "angle", "angle"},
		{"corners", "1px", "1px"},
		{"corners", "1px angle", "angle 1px"},
		{"box-shadow", "currentColor none 0 0 outset", "currentcolor none"},
		{"box-shadow", "none", "none"},
		{"box-shadow", "0px 0px", "0px 0px"},
		{"box-shadow", "currentcolor none 0px 0px outset, currentcolor none 0px 0px outset", "currentcolor none, currentcolor none"},
		{"box-shadow", "1px 2px red, inset 0 0 3px", "red 1px 2px, 0px 0px 3px inset"},
		{"box-shadow", "1px 1px 0 2px", "1px 1px 0px 2px"},
	} {
		assertCollapse(t, data[0], data[1], data[2])
	}
}

func TestCollapseWideKeyword(t *testing.T) {
	assertCollapse(t, "margin", "inherit", "inherit")

	sh, _ := style.Shorthand("margin")
	values := []DeclaredValue{WideKeyword("inherit"), WideKeyword("inherit"), WideKeyword("inherit"), WideKeyword("initial")}
	_, ok := SerializeShorthand(style, sh, values)
	tu.AssertEqual(t, ok, false)

	all, _ := style.Shorthand("all")
	values = make([]DeclaredValue, len(all.Longhands))
	for i := range values {
		values[i] = WideKeyword("unset")
	}
	got, ok := SerializeShorthand(style, all, values)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, got, "unset")
}

func TestCollapsePending(t *testing.T) {
	assertCollapse(t, "margin", "var(--a)", "var(--a)")
	assertCollapse(t, "margin", "var(--a,1px)  2px", "var(--a, 1px) 2px")

	sh, _ := style.Shorthand("margin")
	pending := Pending{Text: "var(--a)", Shorthand: "padding"}
	_, ok := SerializeShorthand(style, sh, []DeclaredValue{pending, pending, pending, pending})
	tu.AssertEqual(t, ok, false)

	// a longhand set directly breaks the shorthand
	props, err := ParseString(style, "margin", "var(--a)")
	tu.AssertNoErr(t, err)
	top, err := parseText(style, "margin-top", "1px")
	tu.AssertNoErr(t, err)
	values := []DeclaredValue{top, props[1].Value, props[2].Value, props[3].Value}
	_, ok = SerializeShorthand(style, sh, values)
	tu.AssertEqual(t, ok, false)
}

func TestCollapseMismatch(t *testing.T) {
	sh, _ := style.Shorthand("border")
	props, err := ParseString(style, "border", "1px solid red")
	tu.AssertNoErr(t, err)
	values := make([]DeclaredValue, len(props))
	for i, p := range props {
		values[i] = p.Value
	}
	left, err := parseText(style, "border-left-width", "2px")
	tu.AssertNoErr(t, err)
	for i, l := range sh.Longhands {
		if l == "border-left-width" {
			values[i] = left
		}
	}
	_, ok := SerializeShorthand(style, sh, values)
	tu.AssertEqual(t, ok, false)

	// legacy names are never used
	legacy, _ := style.Shorthand("page-break-after")
	v, err := parseText(style, "break-after", "page")
	tu.AssertNoErr(t, err)
	_, ok = SerializeShorthand(style, legacy, []DeclaredValue{v})
	tu.AssertEqual(t, ok, false)
}

func TestCollapseGridTemplate(t *testing.T) {
	_, ok := roundTrip(t, style, "grid-template", "\"a\" \"b\" / 1px")
	tu.AssertEqual(t, ok, true)

	assertValue(t, style, "grid-template-areas", `"  a  .b.  c  " "a . . . c"`, `"a . b . c" "a . . . c"`)
	assertInvalid(t, style, "grid-template-areas", `"a b" "a"`)
	assertInvalid(t, style, "grid-template-areas", `"a b a"`)
}
