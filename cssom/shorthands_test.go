package cssom

import (
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func assertAttributes(t *testing.T, sd *StyleDeclaration, expected map[string]string) {
	t.Helper()
	for attr, value := range expected {
		got, ok := sd.Get(attr)
		tu.AssertEqual(t, ok, true)
		tu.AssertEqual(t, got, value)
	}
}

func TestPlaceItems(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("placeItems", "normal legacy"))
	assertAttributes(t, sd, map[string]string{"alignItems": "normal", "justifyItems": "legacy", "placeItems": "normal legacy"})
	tu.AssertEqual(t, sd.CSSText(), "place-items: normal legacy;")
}

func TestMaskNoClip(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("mask", "border-box no-clip"))
	assertAttributes(t, sd, map[string]string{"maskOrigin": "border-box", "maskClip": "no-clip", "mask": "no-clip"})
	tu.AssertEqual(t, sd.CSSText(), "mask: no-clip;")
}

func TestVoice(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	for _, data := range [][3]string{
		{"voicePitch", "x-low 100%", "x-low"},
		{"voicePitch", "100%", "100%"},
		{"voiceRange", "x-low 100%", "x-low"},
		{"voiceRate", "normal 100%", "normal"},
		{"voiceRate", "100%", "100%"},
		{"voiceStress", "strong", "strong"},
		{"voiceBalance", "-50", "-50"},
		{"voiceDuration", "2s", "2s"},
		{"voiceVolume", "silent", "silent"},
		{"voiceFamily", "preserve", "preserve"},
	} {
		tu.AssertNoErr(t, sd.Set(data[0], data[1]))
		assertAttributes(t, sd, map[string]string{data[0]: data[2]})
	}
	tu.AssertNoErr(t, sd.Set("voiceRate", "-1%"))
	assertAttributes(t, sd, map[string]string{"voiceRate": "100%"})
}

func TestMasonryAutoFlow(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	for _, data := range [][2]string{
		{"pack definite-first", "pack"},
		{"pack ordered", "ordered"},
		{"next definite-first", "next"},
		{"next ordered", "next ordered"},
	} {
		tu.AssertNoErr(t, sd.Set("masonryAutoFlow", data[0]))
		assertAttributes(t, sd, map[string]string{"masonryAutoFlow": data[1]})
	}
}

func TestBorderClip(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("borderClip", "normal"))
	tu.AssertEqual(t, sd.Length(), 4)
	assertAttributes(t, sd, map[string]string{
		"borderClipTop": "normal", "borderClipRight": "normal", "borderClipBottom": "normal", "borderClipLeft": "normal",
		"borderClip": "normal",
	})
	tu.AssertEqual(t, sd.CSSText(), "border-clip: normal;")

	tu.AssertNoErr(t, sd.Set("borderClipTop", "1px"))
	tu.AssertEqual(t, sd.GetPropertyValue("border-clip"), "")
	tu.AssertEqual(t, sd.CSSText(), "border-clip-top: 1px; border-clip-right: normal; border-clip-bottom: normal; border-clip-left: normal;")
}

func TestBoxShadow(t *testing.T) {
	longhands := []string{"boxShadowColor", "boxShadowOffset", "boxShadowBlur", "boxShadowSpread", "boxShadowPosition"}
	initial := []string{"currentcolor", "none", "0px", "0px", "outset"}
	shadow := "currentcolor none 0px 0px outset"

	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("boxShadow", "currentColor none 0 0 outset"))
	for i, l := range longhands {
		assertAttributes(t, sd, map[string]string{l: initial[i]})
	}
	assertAttributes(t, sd, map[string]string{"boxShadow": "currentcolor none"})
	tu.AssertEqual(t, sd.CSSText(), "box-shadow: currentcolor none;")

	tu.AssertNoErr(t, sd.Set("boxShadow", "none"))
	assertAttributes(t, sd, map[string]string{"boxShadowColor": "transparent", "boxShadowOffset": "none", "boxShadow": "none"})

	tu.AssertNoErr(t, sd.Set("boxShadow", "0px 0px"))
	assertAttributes(t, sd, map[string]string{"boxShadowColor": "currentcolor", "boxShadowOffset": "0px 0px", "boxShadow": "0px 0px"})

	tu.AssertNoErr(t, sd.Set("boxShadow", shadow+", "+shadow))
	for i, l := range longhands {
		assertAttributes(t, sd, map[string]string{l: initial[i] + ", " + initial[i]})
	}
	assertAttributes(t, sd, map[string]string{"boxShadow": "currentcolor none, currentcolor none"})

	sd = NewStyleDeclaration(Style, nil)
	for i, l := range longhands {
		tu.AssertNoErr(t, sd.Set(l, initial[i]))
	}
	assertAttributes(t, sd, map[string]string{"boxShadow": "currentcolor none"})

	tu.AssertNoErr(t, sd.Set("boxShadowOffset", "0px 0px, 0px 0px"))
	tu.AssertEqual(t, sd.GetPropertyValue("box-shadow"), "")
	tu.AssertEqual(t, sd.CSSText(), "box-shadow-color: currentcolor; box-shadow-offset: 0px 0px, 0px 0px; "+
		"box-shadow-blur: 0px; box-shadow-spread: 0px; box-shadow-position: outset;")

	// vendor prefixed alias
	tu.AssertNoErr(t, sd.Set("webkitBoxShadow", "1px 2px red"))
	assertAttributes(t, sd, map[string]string{"boxShadow": "red 1px 2px"})
}

func TestCorners(t *testing.T) {
	radii := []string{"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"}

	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("corners", "round 0"))
	tu.AssertEqual(t, sd.Length(), 5)
	assertAttributes(t, sd, map[string]string{"cornerShape": "round", "corners": "round"})
	for _, r := range radii {
		assertAttributes(t, sd, map[string]string{r: "0px"})
	}
	tu.AssertEqual(t, sd.CSSText(), "corners: round;")

	tu.AssertNoErr(t, sd.Set("corners", "angle"))
	assertAttributes(t, sd, map[string]string{"cornerShape": "angle", "borderTopLeftRadius": "0px", "corners": "angle"})

	tu.AssertNoErr(t, sd.Set("corners", "1px"))
	assertAttributes(t, sd, map[string]string{"cornerShape": "round", "borderBottomLeftRadius": "1px", "corners": "1px"})

	sd = NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("cornerShape", "round"))
	for _, r := range radii {
		tu.AssertNoErr(t, sd.Set(r, "0px"))
	}
	assertAttributes(t, sd, map[string]string{"corners": "round"})

	// without a shape, the radii still form a border-radius
	sd = NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("borderRadius", "1px"))
	tu.AssertEqual(t, sd.GetPropertyValue("corners"), "")
	tu.AssertEqual(t, sd.CSSText(), "border-radius: 1px;")
}
