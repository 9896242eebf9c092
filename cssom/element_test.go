package cssom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestFromElement(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p style="color: green !important; color: orange; margin: 1px">text</p><div></div>`))
	tu.AssertNoErr(t, err)

	sd := FromElement(findElement(doc, "p"))
	tu.AssertEqual(t, sd.Kind(), Style)
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "green")
	tu.AssertEqual(t, sd.CSSText(), "color: green !important; margin: 1px;")

	sd = FromElement(findElement(doc, "div"))
	tu.AssertEqual(t, sd.Length(), 0)
	tu.AssertEqual(t, FromElement(nil).Length(), 0)
}

func TestKinds(t *testing.T) {
	fontFace := NewStyleDeclaration(FontFace, nil)
	tu.AssertNoErr(t, fontFace.SetProperty("font-weight", "bold", "important"))
	tu.AssertNoErr(t, fontFace.SetProperty("font-weight", "inherit", ""))
	tu.AssertNoErr(t, fontFace.SetProperty("font-weight", "var(--w)", ""))
	tu.AssertNoErr(t, fontFace.SetProperty("--custom", "1", ""))
	tu.AssertEqual(t, fontFace.Length(), 0)
	tu.AssertNoErr(t, fontFace.Set("fontStretch", "condensed"))
	v, _ := fontFace.Get("fontWidth")
	tu.AssertEqual(t, v, "condensed")
	_, ok := fontFace.Get("fontSizeAdjust")
	tu.AssertEqual(t, ok, false)

	keyframe := NewStyleDeclaration(Keyframe, "rule")
	tu.AssertEqual(t, keyframe.ParentRule(), "rule")
	tu.AssertNoErr(t, keyframe.SetProperty("animation-delay", "1s", ""))
	tu.AssertNoErr(t, keyframe.SetProperty("color", "red", "important"))
	tu.AssertEqual(t, keyframe.Length(), 0)
	tu.AssertNoErr(t, keyframe.SetCSSText("color: red !important; width: 1px"))
	tu.AssertEqual(t, keyframe.CSSText(), "width: 1px;")

	page := NewStyleDeclaration(Page, nil)
	tu.AssertNoErr(t, page.SetProperty("size", "initial", ""))
	tu.AssertNoErr(t, page.SetProperty("size", "var(--s)", ""))
	tu.AssertEqual(t, page.Length(), 0)
	tu.AssertNoErr(t, page.SetProperty("size", "1px 1px", ""))
	tu.AssertEqual(t, page.GetPropertyValue("size"), "1px")
	tu.AssertNoErr(t, page.SetProperty("margin-top", "1px", "important"))
	tu.AssertEqual(t, page.GetPropertyPriority("margin-top"), "important")

	positionTry := NewStyleDeclaration(PositionTry, nil)
	tu.AssertNoErr(t, positionTry.SetProperty("color", "red", ""))
	tu.AssertNoErr(t, positionTry.SetProperty("top", "1px", "important"))
	tu.AssertEqual(t, positionTry.Length(), 0)
	tu.AssertNoErr(t, positionTry.SetProperty("top", "var(--top)", ""))
	tu.AssertEqual(t, positionTry.GetPropertyValue("top"), "var(--top)")
}
