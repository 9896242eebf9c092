package cssom

import (
	"strings"
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func TestSetProperty(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.SetProperty("color", "RED", ""))
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "red")
	tu.AssertEqual(t, sd.GetPropertyPriority("color"), "")

	tu.AssertNoErr(t, sd.SetProperty("COLOR", "green", "IMPORTANT"))
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "green")
	tu.AssertEqual(t, sd.GetPropertyPriority("color"), "important")

	// ignored inputs
	for _, args := range [][3]string{
		{" color", "blue", ""},
		{"Color ", "blue", ""},
		{"unknown", "blue", ""},
		{"color", "blue", "!important"},
		{"color", "blue !important", ""},
		{"color", "1px", ""},
		{"color", "blue; width: 1px", ""},
	} {
		tu.AssertNoErr(t, sd.SetProperty(args[0], args[1], args[2]))
		tu.AssertEqual(t, sd.GetPropertyValue("color"), "green")
	}
	tu.AssertEqual(t, sd.Length(), 1)
	tu.AssertEqual(t, sd.Item(0), "color")
	tu.AssertEqual(t, sd.Item(1), "")
	tu.AssertEqual(t, sd.Item(-1), "")

	tu.AssertNoErr(t, sd.SetProperty("color", "", ""))
	tu.AssertEqual(t, sd.Length(), 0)
	tu.AssertEqual(t, sd.CSSText(), "")
}

func TestShorthandProperty(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.SetProperty("margin", "1px 2px", ""))
	tu.AssertEqual(t, sd.Length(), 4)
	tu.AssertEqual(t, sd.GetPropertyValue("margin"), "1px 2px")
	tu.AssertEqual(t, sd.GetPropertyValue("margin-left"), "2px")
	tu.AssertEqual(t, sd.CSSText(), "margin: 1px 2px;")

	tu.AssertNoErr(t, sd.SetProperty("margin-top", "1px", "important"))
	tu.AssertEqual(t, sd.GetPropertyValue("margin"), "")
	tu.AssertEqual(t, sd.GetPropertyPriority("margin"), "")
	tu.AssertEqual(t, sd.CSSText(), "margin-top: 1px !important; margin-right: 2px; margin-bottom: 1px; margin-left: 2px;")

	tu.AssertNoErr(t, sd.SetProperty("margin", "3px", "important"))
	tu.AssertEqual(t, sd.GetPropertyPriority("margin"), "important")
	tu.AssertEqual(t, sd.CSSText(), "margin: 3px !important;")

	previous, err := sd.RemoveProperty("margin")
	tu.AssertNoErr(t, err)
	tu.AssertEqual(t, previous, "3px")
	tu.AssertEqual(t, sd.Length(), 0)
}

func TestLegacyName(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.SetProperty("page-break-before", "always", ""))
	tu.AssertEqual(t, sd.GetPropertyValue("break-before"), "page")
	tu.AssertEqual(t, sd.GetPropertyValue("page-break-before"), "always")
	tu.AssertEqual(t, sd.CSSText(), "break-before: page;")

	tu.AssertNoErr(t, sd.SetProperty("break-before", "recto", ""))
	tu.AssertEqual(t, sd.GetPropertyValue("page-break-before"), "")
}

func TestCustomProperty(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.SetProperty("--Custom", " 1px  /**/ red ", ""))
	tu.AssertEqual(t, sd.GetPropertyValue("--Custom"), "1px  /**/ red")
	tu.AssertEqual(t, sd.GetPropertyValue("--custom"), "")

	tu.AssertNoErr(t, sd.SetCSSText("--custom: ; color: red"))
	tu.AssertEqual(t, sd.CSSText(), "--custom: ; color: red;")
}

func TestSetCSSText(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	for _, data := range [][2]string{
		{"font-size: 16px; font-size: 20px !important; font-size: 24px", "font-size: 20px !important;"},
		{"color: green; @page { color: red }; .selector { color: red }; font-size: 12px", "color: green; font-size: 12px;"},
		{"color: orange; width: 1px; color: green", "width: 1px; color: green;"},
		{"color: green !important; width: 1px; color: orange", "color: green !important; width: 1px;"},
		{"color: ", ""},
		{"", ""},
		// strings and urls closed by the end of the input
		{`grid-template-areas: "a . b . c" "a . . . c`, `grid-template-areas: "a . b . c" "a . . . c";`},
		{`content: "abc`, `content: "abc";`},
		{"background-image: url(a.png", `background-image: url("a.png");`},
	} {
		tu.AssertNoErr(t, sd.SetCSSText(data[0]))
		tu.AssertEqual(t, sd.CSSText(), data[1])
	}
}

func TestSetCSSTextWarnings(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	capture := tu.CaptureLogs()
	tu.AssertNoErr(t, sd.SetCSSText("color: 1px; width: 1px; unknown: 2"))
	logs := capture.Logs()
	tu.AssertEqual(t, len(logs), 2)
	tu.AssertEqual(t, strings.HasPrefix(logs[0], "Ignored `color:"), true)
	tu.AssertEqual(t, strings.HasPrefix(logs[1], "Ignored `unknown:"), true)
	tu.AssertEqual(t, sd.CSSText(), "width: 1px;")

	capture = tu.CaptureLogs()
	tu.AssertNoErr(t, sd.SetCSSText("color: red"))
	capture.AssertNoLogs(t)
}

func TestLogicalGroup(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("borderTopColor", "green"))
	tu.AssertNoErr(t, sd.Set("borderBlockStartColor", "orange"))
	tu.AssertNoErr(t, sd.Set("borderTopColor", "green"))
	tu.AssertEqual(t, sd.CSSText(), "border-block-start-color: orange; border-top-color: green;")

	tu.AssertNoErr(t, sd.Set("borderBlockStartColor", "green"))
	tu.AssertEqual(t, sd.CSSText(), "border-top-color: green; border-block-start-color: green;")

	// no conflict: updated in place
	tu.AssertNoErr(t, sd.Set("color", "red"))
	tu.AssertNoErr(t, sd.Set("borderBlockStartColor", "blue"))
	tu.AssertNoErr(t, sd.Set("color", "green"))
	tu.AssertEqual(t, sd.CSSText(), "border-top-color: green; border-block-start-color: blue; color: green;")
}

func TestInterleavedShorthand(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("border", "medium none currentColor"))
	tu.AssertEqual(t, sd.CSSText(), "border: medium;")

	tu.AssertNoErr(t, sd.Set("borderImageWidth", "1px"))
	tu.AssertEqual(t, sd.GetPropertyValue("border"), "")
	tu.AssertEqual(t, sd.CSSText(), "border-width: medium; border-style: none; border-color: currentcolor; border-image: 100% / 1px;")

	for _, data := range [][2]string{
		{
			"border: 1px solid red; border-block-start-width: 2px; border-block-end-width: 2px; border-color: green",
			"border: 1px solid green; border-block-width: 2px;",
		},
		{
			"border: 1px solid red; border-block-start-color: orange; border-block-end-color: orange; border-color: green",
			"border-width: 1px; border-style: solid; border-image: none; border-block-color: orange; border-color: green;",
		},
		{
			"border: 1px solid red; border-block-start-color: orange; border-block-start-width: 1px; border-color: green",
			"border-width: 1px; border-style: solid; border-image: none; border-block-start-color: orange; border-block-start-width: 1px; border-color: green;",
		},
	} {
		tu.AssertNoErr(t, sd.SetCSSText(data[0]))
		tu.AssertEqual(t, sd.GetPropertyValue("border"), "1px solid green")
		tu.AssertEqual(t, sd.CSSText(), data[1])
	}

	for _, data := range [][2]string{
		{
			"border-block-width: 1px; border-top-width: 2px; border-block-style: solid; border-block-color: green",
			"border-block: 1px solid green; border-top-width: 2px;",
		},
		{
			"border-block-width: 1px; border-top-style: none; border-block-style: solid; border-block-color: green",
			"border-block-width: 1px; border-top-style: none; border-block-style: solid; border-block-color: green;",
		},
	} {
		tu.AssertNoErr(t, sd.SetCSSText(data[0]))
		tu.AssertEqual(t, sd.GetPropertyValue("border-block"), "1px solid green")
		tu.AssertEqual(t, sd.CSSText(), data[1])
	}
}

func TestAll(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("all", "initial"))
	tu.AssertEqual(t, sd.CSSText(), "all: initial;")
	tu.AssertEqual(t, sd.GetPropertyValue("all"), "initial")
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "initial")
	tu.AssertEqual(t, sd.GetPropertyValue("direction"), "")

	tu.AssertNoErr(t, sd.Set("direction", "rtl"))
	tu.AssertEqual(t, sd.CSSText(), "all: initial; direction: rtl;")
}

func TestPendingSubstitution(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("background", "var(--custom)"))
	tu.AssertEqual(t, sd.GetPropertyValue("background"), "var(--custom)")
	tu.AssertEqual(t, sd.GetPropertyValue("background-color"), "")
	tu.AssertEqual(t, sd.CSSText(), "background: var(--custom);")

	tu.AssertNoErr(t, sd.Set("backgroundImage", "var(--custom)"))
	tu.AssertEqual(t, sd.GetPropertyValue("background"), "")
	tu.AssertEqual(t, strings.Contains(sd.CSSText(), "background-image: var(--custom);"), true)
	tu.AssertEqual(t, strings.Contains(sd.CSSText(), "background-color: ;"), true)

	tu.AssertNoErr(t, sd.Set("color", "var(--custom, )"))
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "var(--custom,)")
}

func TestReadOnly(t *testing.T) {
	sd := NewComputedStyle(Style, []Declaration{
		{Name: "color", Value: mustParse(t, "color", "red")},
		{Name: "unknown", Value: mustParse(t, "color", "red")},
	})
	tu.AssertEqual(t, sd.ReadOnly(), true)
	tu.AssertEqual(t, sd.Length(), 1)
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "red")
	tu.AssertEqual(t, sd.SetProperty("color", "blue", ""), ErrReadOnly)
	tu.AssertEqual(t, sd.Set("color", "blue"), ErrReadOnly)
	tu.AssertEqual(t, sd.SetCSSText("color: blue"), ErrReadOnly)
	_, err := sd.RemoveProperty("color")
	tu.AssertEqual(t, err, ErrReadOnly)
	tu.AssertEqual(t, sd.GetPropertyValue("color"), "red")
}
