package validation

import (
	"errors"
	"testing"

	pr "github.com/benoitkugler/cssom/css/properties"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

var style = pr.Get(pr.Style)

// expandToDict returns the serialized value of each longhand.
func expandToDict(t *testing.T, table *pr.Table, name, value string) map[string]string {
	t.Helper()
	props, err := ParseString(table, name, value)
	if err != nil {
		t.Fatalf("parsing %s: %s: %s", name, value, err)
	}
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p.Name] = p.Value.String()
	}
	return out
}

func assertInvalid(t *testing.T, table *pr.Table, name, value string) {
	t.Helper()
	props, err := ParseString(table, name, value)
	if err == nil {
		t.Fatalf("%s: %s: expected an error, got %v", name, value, props)
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("unexpected error %s", err)
	}
}

func assertValue(t *testing.T, table *pr.Table, name, value, expected string) {
	t.Helper()
	props, err := ParseString(table, name, value)
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, len(props), 1)
	tu.AssertEqual(t, props[0].Value.String(), expected)
}

func TestLonghands(t *testing.T) {
	for _, data := range [][3]string{
		{"opacity", "0.5", "0.5"},
		{"opacity", "50%", "50%"},
		{"margin-top", "0", "0px"},
		{"margin-top", "1.50PX", "1.5px"},
		{"color", "RED", "red"},
		{"color", "#ABC", "#abc"},
		{"border-spacing", "1px 1px", "1px"},
		{"border-spacing", "1px 2px", "1px 2px"},
		{"background-position", "left", "left center"},
		{"overflow-x", "overlay", "auto"},
		{"paint-order", "fill stroke markers", "normal"},
		{"paint-order", "stroke fill", "stroke"},
		{"paint-order", "markers stroke", "markers stroke"},
		{"offset-rotate", "auto 0deg", "auto"},
		{"offset-rotate", "reverse 0deg", "reverse"},
		{"offset-rotate", "0deg auto", "auto"},
		{"content", `"abc`, `"abc"`},
		{"grid-template-areas", `"a . b . c" "a . . . c`, `"a . b . c" "a . . . c"`},
		{"background-image", "url(a.png", `url("a.png")`},
		{"voice-pitch", "x-low 100%", "x-low"},
		{"voice-pitch", "100%", "100%"},
		{"voice-pitch", "high 2st", "high 2st"},
		{"voice-pitch", "250hz absolute", "250hz absolute"},
		{"voice-range", "medium 100%", "medium"},
		{"voice-rate", "normal 100%", "normal"},
		{"voice-rate", "100%", "100%"},
		{"voice-rate", "fast 50%", "fast 50%"},
		{"voice-volume", "loud 6dB", "loud 6db"},
		{"voice-family", "old male 2, \"Carl\"", "old male 2, \"Carl\""},
		{"masonry-auto-flow", "pack definite-first", "pack"},
		{"masonry-auto-flow", "pack ordered", "ordered"},
		{"masonry-auto-flow", "next definite-first", "next"},
		{"masonry-auto-flow", "definite-first", "pack"},
		{"corner-shape", "angle round angle round", "angle round"},
		{"border-clip-top", "1px 2fr", "1px 2fr"},
	} {
		assertValue(t, style, data[0], data[1], data[2])
	}
}

func TestInvalidLonghands(t *testing.T) {
	for _, data := range [][2]string{
		{"opacity", "red"},
		{"opacity", ""},
		{"margin-top", "1px 2px"},
		{"color", "#12"},
		{"paint-order", "fill fill"},
		{"flex-grow", "-1"},
		{"unknown-property", "1px"},
	} {
		assertInvalid(t, style, data[0], data[1])
	}
}

func TestWideKeywords(t *testing.T) {
	props, err := ParseString(style, "opacity", "INHERIT")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, props, []Property{{Name: "opacity", Value: WideKeyword("inherit")}})

	d := expandToDict(t, style, "margin", "revert-layer")
	tu.AssertEqual(t, d, map[string]string{
		"margin-top": "revert-layer", "margin-right": "revert-layer",
		"margin-bottom": "revert-layer", "margin-left": "revert-layer",
	})

	// descriptors accept no CSS-wide keyword
	assertInvalid(t, pr.Get(pr.FontFace), "font-display", "inherit")
}

func TestCustomProperties(t *testing.T) {
	props, err := ParseString(style, "--Main-Color", "  rgb(1,2,3) /* c */ red ")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, props[0].Name, "--Main-Color")
	tu.AssertEqual(t, props[0].Value, Custom("rgb(1,2,3) /* c */ red"))

	assertInvalid(t, pr.Get(pr.FontFace), "--x", "1")
	assertInvalid(t, style, "--x", "var(x)")
}

func TestExpandFourSides(t *testing.T) {
	for _, data := range []struct {
		value    string
		expected [4]string
	}{
		{"1px", [4]string{"1px", "1px", "1px", "1px"}},
		{"1px 2px", [4]string{"1px", "2px", "1px", "2px"}},
		{"1px 2px 3px", [4]string{"1px", "2px", "3px", "2px"}},
		{"1px 2px 3px 4px", [4]string{"1px", "2px", "3px", "4px"}},
		{"0 auto", [4]string{"0px", "auto", "0px", "auto"}},
	} {
		d := expandToDict(t, style, "margin", data.value)
		tu.AssertEqual(t, d, map[string]string{
			"margin-top": data.expected[0], "margin-right": data.expected[1],
			"margin-bottom": data.expected[2], "margin-left": data.expected[3],
		})
	}
	assertInvalid(t, style, "margin", "1px 2px 3px 4px 5px")
	assertInvalid(t, style, "margin", "red")
}

func TestExpandBorder(t *testing.T) {
	d := expandToDict(t, style, "border", "1px solid red")
	for _, side := range [...]string{"top", "right", "bottom", "left"} {
		tu.AssertEqual(t, d["border-"+side+"-width"], "1px")
		tu.AssertEqual(t, d["border-"+side+"-style"], "solid")
		tu.AssertEqual(t, d["border-"+side+"-color"], "red")
	}

	d = expandToDict(t, style, "border-top", "solid")
	tu.AssertEqual(t, d, map[string]string{
		"border-top-width": "medium", "border-top-style": "solid", "border-top-color": "currentcolor",
	})
	assertInvalid(t, style, "border", "1px 2px")
	assertInvalid(t, style, "border-top", "solid solid")
}

func TestExpandFlex(t *testing.T) {
	for _, data := range []struct {
		value               string
		grow, shrink, basis string
	}{
		{"none", "0", "0", "auto"},
		{"2", "2", "1", "0px"},
		{"2 3", "2", "3", "0px"},
		{"2 3 10px", "2", "3", "10px"},
		{"10px", "1", "1", "10px"},
	} {
		d := expandToDict(t, style, "flex", data.value)
		tu.AssertEqual(t, d, map[string]string{
			"flex-grow": data.grow, "flex-shrink": data.shrink, "flex-basis": data.basis,
		})
	}
}

func TestExpandBorderClip(t *testing.T) {
	tu.AssertEqual(t, expandToDict(t, style, "border-clip", "normal"), map[string]string{
		"border-clip-top": "normal", "border-clip-right": "normal",
		"border-clip-bottom": "normal", "border-clip-left": "normal",
	})
	assertInvalid(t, style, "border-clip", "normal 1px")
}

func TestExpandCorners(t *testing.T) {
	radii := func(r string) map[string]string {
		return map[string]string{
			"border-top-left-radius": r, "border-top-right-radius": r,
			"border-bottom-right-radius": r, "border-bottom-left-radius": r,
		}
	}
	for _, data := range []struct {
		value, shape, radius string
	}{
		{"round 0", "round", "0px"},
		{"angle", "angle", "0px"},
		{"1px", "round", "1px"},
		{"1px / 2px angle", "angle", "1px 2px"},
	} {
		expected := radii(data.radius)
		expected["corner-shape"] = data.shape
		tu.AssertEqual(t, expandToDict(t, style, "corners", data.value), expected)
	}
	d := expandToDict(t, style, "corners", "1px 2px")
	tu.AssertEqual(t, d["border-top-left-radius"], "1px")
	tu.AssertEqual(t, d["border-top-right-radius"], "2px")
	assertInvalid(t, style, "corners", "round round round round round")
}

func TestExpandBoxShadow(t *testing.T) {
	shadow := func(color, offset, blur, spread, position string) map[string]string {
		return map[string]string{
			"box-shadow-color": color, "box-shadow-offset": offset, "box-shadow-blur": blur,
			"box-shadow-spread": spread, "box-shadow-position": position,
		}
	}
	tu.AssertEqual(t, expandToDict(t, style, "box-shadow", "currentColor none 0 0 outset"),
		shadow("currentcolor", "none", "0px", "0px", "outset"))
	tu.AssertEqual(t, expandToDict(t, style, "box-shadow", "none"),
		shadow("transparent", "none", "0px", "0px", "outset"))
	tu.AssertEqual(t, expandToDict(t, style, "box-shadow", "0px 0px"),
		shadow("currentcolor", "0px 0px", "0px", "0px", "outset"))
	tu.AssertEqual(t, expandToDict(t, style, "box-shadow", "1px 2px red, inset 0 0 3px"),
		shadow("red, currentcolor", "1px 2px, 0px 0px", "0px, 3px", "0px, 0px", "outset, inset"))

	assertInvalid(t, style, "box-shadow", "red")
	assertInvalid(t, style, "box-shadow", "1px")
	assertInvalid(t, style, "box-shadow", "1px 2px -1px")
}

func TestExpandTextAlign(t *testing.T) {
	tu.AssertEqual(t, expandToDict(t, style, "text-align", "justify-all"),
		map[string]string{"text-align-all": "justify", "text-align-last": "justify"})
	tu.AssertEqual(t, expandToDict(t, style, "text-align", "center"),
		map[string]string{"text-align-all": "center", "text-align-last": "auto"})
}

func TestExpandLineClamp(t *testing.T) {
	tu.AssertEqual(t, expandToDict(t, style, "line-clamp", "none"),
		map[string]string{"max-lines": "none", "block-ellipsis": "none", "continue": "auto"})
	tu.AssertEqual(t, expandToDict(t, style, "line-clamp", "3"),
		map[string]string{"max-lines": "3", "block-ellipsis": "auto", "continue": "discard"})
	tu.AssertEqual(t, expandToDict(t, style, "-webkit-line-clamp", "2"),
		map[string]string{"max-lines": "2", "block-ellipsis": "auto", "continue": "-webkit-discard"})
}

func TestExpandSystemFont(t *testing.T) {
	props, err := ParseString(style, "font", "caption")
	tu.AssertNoErr(t, err)
	for _, p := range props {
		if p.Name == "font-kerning" { // reset only
			tu.AssertEqual(t, p.Value.String(), "auto")
		} else if p.Name == "font-size" {
			tu.AssertEqual(t, p.Value, DeclaredValue(Pending{Text: "caption", Shorthand: "font"}))
		}
	}
}

func TestLegacy(t *testing.T) {
	assertValue(t, style, "page-break-before", "always", "page")
	assertValue(t, style, "page-break-inside", "avoid", "avoid")
	assertValue(t, style, "glyph-orientation-vertical", "0", "upright")
	assertValue(t, style, "glyph-orientation-vertical", "90deg", "sideways")
	assertValue(t, style, "glyph-orientation-vertical", "auto", "mixed")
	for _, value := range [...]string{"1", "1deg", "0rad", "calc(0deg)"} {
		assertInvalid(t, style, "glyph-orientation-vertical", value)
	}
	assertInvalid(t, style, "page-break-inside", "always")

	sh, _ := style.Shorthand("page-break-before")
	v, err := parseText(style, "break-before", "page")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, SerializeLegacy(sh, v), "always")
	v, err = parseText(style, "break-before", "recto")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, SerializeLegacy(sh, v), "")
}

func TestDescriptors(t *testing.T) {
	fontFace := pr.Get(pr.FontFace)
	assertValue(t, fontFace, "ascent-override", "1% 1%", "1%")
	assertValue(t, fontFace, "font-style", "oblique 14deg", "oblique")
	assertValue(t, fontFace, "font-style", "oblique 1deg 1deg", "oblique 1deg")
	assertInvalid(t, fontFace, "font-display", "var(--x)")
	assertInvalid(t, fontFace, "color", "red")
}
