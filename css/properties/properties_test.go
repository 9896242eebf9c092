package properties

import (
	"testing"

	"github.com/benoitkugler/cssom/css/grammar"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func TestGrammarsAreDefined(t *testing.T) {
	for _, kind := range []Kind{Style, Keyframe, FontFace, Page, Margin, PositionTry} {
		table := Get(kind)
		for name, def := range table.longhands {
			if undef := grammar.Undefined(def.Syntax, table); len(undef) != 0 {
				t.Errorf("%s (%s): undefined %v", name, kind, undef)
			}
		}
		for name, sh := range table.shorthands {
			if undef := grammar.Undefined(sh.Syntax, table); len(undef) != 0 {
				t.Errorf("%s (%s): undefined %v", name, kind, undef)
			}
		}
	}
}

func TestInitialValuesMatch(t *testing.T) {
	table := Get(Style)
	for name, def := range table.longhands {
		value, ok := grammar.MatchString(def.Initial, def.Syntax, table)
		if !ok {
			t.Errorf("%s: initial value %q does not match %s", name, def.Initial, def.Syntax)
			continue
		}
		if value.String() != def.Initial {
			t.Errorf("%s: initial value %q is not canonical (%q)", name, def.Initial, value.String())
		}
	}
}

func TestShorthandLonghands(t *testing.T) {
	table := Get(Style)
	for name, sh := range table.shorthands {
		for _, l := range sh.Longhands {
			if _, ok := table.Longhand(l); !ok {
				t.Errorf("%s: unknown longhand %s", name, l)
			}
		}
		for _, l := range sh.ResetOnly {
			tu.AssertEqual(t, sh.Has(l), true)
		}
	}

	margin, _ := table.Shorthand("margin")
	tu.AssertEqual(t, margin.Longhands, []string{"margin-top", "margin-right", "margin-bottom", "margin-left"})
	marginBlock, _ := table.Shorthand("margin-block")
	tu.AssertEqual(t, marginBlock.Longhands, []string{"margin-block-start", "margin-block-end"})
	borderColor, _ := table.Shorthand("border-inline-color")
	tu.AssertEqual(t, borderColor.Longhands, []string{"border-inline-start-color", "border-inline-end-color"})
	overflow, _ := table.Shorthand("overflow")
	tu.AssertEqual(t, overflow.Longhands, []string{"overflow-x", "overflow-y"})

	all, _ := table.Shorthand("all")
	tu.AssertEqual(t, all.Has("direction"), false)
	tu.AssertEqual(t, all.Has("unicode-bidi"), false)
	tu.AssertEqual(t, all.Has("color"), true)

	_, ok := table.Shorthand("width")
	tu.AssertEqual(t, ok, false)
}

func TestLogicalGroups(t *testing.T) {
	table := Get(Style)
	top, _ := table.Longhand("border-top-color")
	start, _ := table.Longhand("border-block-start-color")
	tu.AssertEqual(t, top.Group, "border-color")
	tu.AssertEqual(t, start.Group, "border-color")
	tu.AssertEqual(t, top.Logical, false)
	tu.AssertEqual(t, start.Logical, true)

	inset, _ := table.Longhand("inset-inline-end")
	tu.AssertEqual(t, inset.Group, "inset")
	width, _ := table.Longhand("width")
	tu.AssertEqual(t, width.Group, "size")
	color, _ := table.Longhand("color")
	tu.AssertEqual(t, color.Group, "")
}

func TestOwners(t *testing.T) {
	table := Get(Style)
	var names []string
	for _, sh := range table.Owners("border-top-color") {
		names = append(names, sh.Name)
	}
	tu.AssertEqual(t, names, []string{"border", "border-color", "border-top"})

	names = names[:0]
	for _, sh := range table.Owners("max-lines") {
		names = append(names, sh.Name)
	}
	tu.AssertEqual(t, names, []string{"line-clamp", "-webkit-line-clamp"})

	names = names[:0]
	for _, sh := range table.Owners("border-top-left-radius") {
		names = append(names, sh.Name)
	}
	tu.AssertEqual(t, names, []string{"corners", "border-radius"})

	boxShadow, ok := table.Shorthand("box-shadow")
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, boxShadow.Repeated, true)
	name, _ := table.Resolve("-webkit-box-shadow")
	tu.AssertEqual(t, name, "box-shadow")

	tu.AssertEqual(t, len(table.Owners("color")), 0)
	tu.AssertEqual(t, len(table.Legacy("break-after")), 1)
}

func TestResolve(t *testing.T) {
	table := Get(Style)
	for _, data := range [][2]string{
		{"COLOR", "color"},
		{"-webkit-order", "order"},
		{"Word-Wrap", "overflow-wrap"},
		{"grid-gap", "gap"},
		{"font-stretch", "font-width"},
		{"--Custom", "--Custom"},
	} {
		name, ok := table.Resolve(data[0])
		tu.AssertEqual(t, ok, true)
		tu.AssertEqual(t, name, data[1])
	}
	for _, name := range []string{"fontSize", " color", "unknown", "size"} {
		_, ok := table.Resolve(name)
		tu.AssertEqual(t, ok, false)
	}
}

func TestKinds(t *testing.T) {
	for _, data := range []struct {
		kind     Kind
		accepted []string
		rejected []string
	}{
		{Keyframe, []string{"color", "animation-timing-function", "animation-composition"}, []string{"animation-delay", "animation", "-webkit-animation-name"}},
		{FontFace, []string{"font-display", "font-weight", "src", "font-stretch", "unicode-range"}, []string{"font-size-adjust", "color", "--custom"}},
		{Page, []string{"size", "color", "margin-top", "margin", "font"}, []string{"top", "width"}},
		{Margin, []string{"color", "content", "vertical-align", "width"}, []string{"top", "size"}},
		{PositionTry, []string{"top", "inset", "margin", "width", "position-area", "align-self"}, []string{"color", "--custom"}},
	} {
		table := Get(data.kind)
		for _, name := range data.accepted {
			if _, ok := table.Resolve(name); !ok {
				t.Errorf("%s: expected %s to be accepted", data.kind, name)
			}
		}
		for _, name := range data.rejected {
			if _, ok := table.Resolve(name); ok {
				t.Errorf("%s: expected %s to be rejected", data.kind, name)
			}
		}
	}

	size, _ := Get(Page).Longhand("size")
	tu.AssertEqual(t, size.Descriptor, true)
	color, _ := Get(Page).Longhand("color")
	tu.AssertEqual(t, color.Descriptor, false)

	tu.AssertEqual(t, Get(Style).Priority, true)
	tu.AssertEqual(t, Get(Keyframe).Priority, false)
	tu.AssertEqual(t, Get(Keyframe).Custom, true)
	tu.AssertEqual(t, Get(FontFace).Custom, false)
}

func TestAnimatable(t *testing.T) {
	table := Get(Style)
	for name, expected := range map[string]bool{
		"color":              true,
		"animation-name":     false,
		"transition-delay":   false,
		"direction":          false,
		"margin-block-start": true,
	} {
		def, _ := table.Longhand(name)
		tu.AssertEqual(t, def.Animatable, expected)
	}
}
