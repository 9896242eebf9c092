package parser

import (
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func TestDeclarationList(t *testing.T) {
	l := ParseDeclarationListString("color: green !important; width: 1px; @page { color: red }; .selector { color: red }; font-size: 12px", true, true)
	var names []string
	for _, c := range l {
		if decl, ok := c.(Declaration); ok {
			names = append(names, decl.Name)
		}
	}
	tu.AssertEqual(t, names, []string{"color", "width", "font-size"})

	decl := l[0].(Declaration)
	tu.AssertEqual(t, decl.Important, true)
	tu.AssertEqual(t, Serialize(TrimWhitespace(decl.Value)), "green")

	rule := l[2].(AtRule)
	tu.AssertEqual(t, rule.AtKeyword, "page")
	tu.AssertEqual(t, Serialize(TrimWhitespace(rule.Content)), "color: red")

	_, isErr := l[3].(ParseError)
	tu.AssertEqual(t, isErr, true)
}

func TestOneDeclaration(t *testing.T) {
	decl, ok := ParseOneDeclaration(TokenizeString(" --Custom : a  !  IMPORTANT ", false)).(Declaration)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, decl.Name, "--Custom")
	tu.AssertEqual(t, decl.Important, true)
	tu.AssertEqual(t, Serialize(TrimWhitespace(decl.Value)), "a")

	_, isErr := ParseOneDeclaration(TokenizeString("", false)).(ParseError)
	tu.AssertEqual(t, isErr, true)
	_, isErr = ParseOneDeclaration(TokenizeString("color red", false)).(ParseError)
	tu.AssertEqual(t, isErr, true)
}

func TestSplitImportant(t *testing.T) {
	for _, test := range []struct {
		css       string
		important bool
	}{
		{"1px !important", true},
		{"1px ! /**/ important ", true},
		{"1px !important 2px", false},
		{"1px important", false},
		{"1px !! important", false},
	} {
		_, important := SplitImportant(TokenizeString(test.css, false))
		tu.AssertEqual(t, important, test.important)
	}
}

func TestNilContent(t *testing.T) {
	l := ParseDeclarationListString("@font-face{}", true, true)
	rule := l[0].(AtRule)
	tu.AssertEqual(t, rule.Content != nil, true)

	l = ParseDeclarationListString("@font-face", true, true)
	rule = l[0].(AtRule)
	tu.AssertEqual(t, rule.Content == nil, true)
}
