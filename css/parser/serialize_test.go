package parser

import (
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func TestIdentifiers(t *testing.T) {
	source := "\fezeze"
	ref := TokenizeString(source, false)
	resToTest := TokenizeString(Serialize(ref), false)
	tu.AssertEqual(t, kinds(resToTest), kinds(ref))
	tu.AssertEqual(t, resToTest[1].(Ident).Value, ref[1].(Ident).Value)
}

func TestCommentEof(t *testing.T) {
	source := "/* foo "
	parsed := TokenizeString(source, false)
	tu.AssertEqual(t, Serialize(parsed), "/* foo */")
}

func TestBackslashDelim(t *testing.T) {
	source := "\\\nfoo"
	tokens := TokenizeString(source, false)
	if len(tokens) != 3 {
		t.Fatalf("bad token length : expected 3 got %d", len(tokens))
	}
	if lit, ok := tokens[0].(Literal); !ok || lit.Value != "\\" {
		t.Errorf("expected litteral \\ got %s", tokens[0])
	}
	if k1, k2 := tokens[1].Kind(), tokens[2].Kind(); k1 != KWhitespace || k2 != KIdent {
		t.Errorf("expected whitespace and ident got : %s and %s", k1, k2)
	}
	tokens = []Token{tokens[0], tokens[2]}
	ser := Serialize(tokens)
	if ser != source {
		t.Errorf("expected %s got %s", source, ser)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, css := range []string{
		"a b c",
		"1px 50% 2e3",
		`"a\"b" url(c)`,
		"fn(a, [b] (c) {d})",
		"#id #123",
		"U+0-7F",
		"a/**/b",
		"--custom",
	} {
		tokens := TokenizeString(css, false)
		tu.AssertEqual(t, Serialize(tokens), css)
	}
	// bad pairs are kept apart
	tokens := []Token{NewIdent("a"), NewIdent("b")}
	tu.AssertEqual(t, Serialize(tokens), "a/**/b")
}

func TestCanonical(t *testing.T) {
	for _, test := range [][2]string{
		{"attr(title", "attr(title)"},
		{"  /**/  attr(  title, /**/ \"title\"  )  ", `attr(title, "title")`},
		{"env(  ab-test-color/*, 1 */, 0, 1e0  )", "env(ab-test-color, 0, 1)"},
		{"random-item(--key; 1; 2", "random-item(--key; 1; 2)"},
		{"var(--custom, )", "var(--custom,)"},
		{"var(  --PROPerty, /**/ 1e0 /**/)", "var(--PROPerty, 1)"},
		{"toggle(;)", "toggle(;)"},
		{"mix(50%;0;1)", "mix(50%; 0; 1)"},
		{"CALC( 1PX + 2.50Px )", "calc(1px + 2.5px)"},
		{"url( 'a b' )", `url("a b")`},
		{"a/**/b", "a/**/b"},
		{"a /**/ b", "a b"},
	} {
		tu.AssertEqual(t, Canonical(TokenizeString(test[0], false)), test[1])
	}
}
