package parser

import (
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind()
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected []Kind
	}{
		{"red", []Kind{KIdent}},
		{"1px 50% 2", []Kind{KDimension, KWhitespace, KPercentage, KWhitespace, KNumber}},
		{"#fff", []Kind{KHash}},
		{`"a" url(b)`, []Kind{KString, KWhitespace, KURL}},
		{"u+0-7f", []Kind{KUnicodeRange}},
		{"@page", []Kind{KAtKeyword}},
		{"/**/ a", []Kind{KComment, KWhitespace, KIdent}},
		{"[a] (b) {c}", []Kind{KSquareBracketsBlock, KWhitespace, KParenthesesBlock, KWhitespace, KCurlyBracketsBlock}},
		{"calc(1px)", []Kind{KFunctionBlock}},
		{"a, b", []Kind{KIdent, KLiteral, KWhitespace, KIdent}},
		{")", []Kind{KParseError}},
	} {
		tu.AssertEqual(t, kinds(TokenizeString(test.css, false)), test.expected)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tokens := TokenizeString("1e0 -0 .5 +3 2.50px", true)
	tokens = RemoveWhitespace(tokens)
	tu.AssertEqual(t, len(tokens), 5)
	n := tokens[0].(Number)
	tu.AssertEqual(t, n.Value, "1e0")
	tu.AssertEqual(t, n.IsInt(), false)
	tu.AssertEqual(t, n.Canonical(), "1")
	tu.AssertEqual(t, tokens[1].(Number).Canonical(), "0")
	tu.AssertEqual(t, tokens[2].(Number).Canonical(), "0.5")
	tu.AssertEqual(t, tokens[3].(Number).IsInt(), true)
	tu.AssertEqual(t, tokens[3].(Number).Int(), 3)
	d := tokens[4].(Dimension)
	tu.AssertEqual(t, d.Unit, "px")
	tu.AssertEqual(t, d.Float(), 2.5)
}

func TestTokenizeUnclosed(t *testing.T) {
	tokens := TokenizeString("attr(title", false)
	tu.AssertEqual(t, len(tokens), 1)
	fn := tokens[0].(FunctionBlock)
	tu.AssertEqual(t, fn.Name, "attr")
	tu.AssertEqual(t, kinds(fn.Arguments), []Kind{KIdent})

	tokens = TokenizeString("a(b[c", false)
	fn = tokens[0].(FunctionBlock)
	block := fn.Arguments[1].(SquareBracketsBlock)
	tu.AssertEqual(t, block.Arguments[0].(Ident).Value, "c")
}

func TestTokenizeEOF(t *testing.T) {
	// a string or an url ended by EOF is still a valid token
	tokens := TokenizeString(`"a . b`, false)
	tu.AssertEqual(t, kinds(tokens), []Kind{KString})
	tu.AssertEqual(t, tokens[0].(String).Value, "a . b")
	tu.AssertEqual(t, Serialize(tokens), `"a . b`)

	tokens = TokenizeString(`"a" "b`, true)
	tu.AssertEqual(t, kinds(tokens), []Kind{KString, KWhitespace, KString})
	tu.AssertEqual(t, tokens[2].(String).Value, "b")

	tokens = TokenizeString("url(a.png", false)
	tu.AssertEqual(t, kinds(tokens), []Kind{KURL})
	url := tokens[0].(URL)
	tu.AssertEqual(t, url.Value, "a.png")
	tu.AssertEqual(t, url.IsError(), true)
	tu.AssertEqual(t, Serialize(tokens), "url(a.png")

	// an unescaped newline is still an error
	tu.AssertEqual(t, kinds(TokenizeString("\"a\nb", false)), []Kind{KParseError, KWhitespace, KIdent})
	tu.AssertEqual(t, kinds(TokenizeString("url(a b)", false)), []Kind{KParseError})
}

func TestTokenizeNested(t *testing.T) {
	tokens := TokenizeString("var(--a, calc(1px + (2px)))", true)
	tu.AssertEqual(t, len(tokens), 1)
	fn := tokens[0].(FunctionBlock)
	args := RemoveWhitespace(fn.Arguments)
	tu.AssertEqual(t, args[0].(Ident).Value, "--a")
	tu.AssertEqual(t, IsLiteral(args[1], ","), true)
	calc := args[2].(FunctionBlock)
	tu.AssertEqual(t, calc.Name, "calc")
	tu.AssertEqual(t, kinds(RemoveWhitespace(calc.Arguments)), []Kind{KDimension, KLiteral, KParenthesesBlock})
}

func TestTokenizePositions(t *testing.T) {
	tokens := TokenizeString("a\n  b", false)
	tu.AssertEqual(t, tokens[0].Pos(), Pos{Line: 1, Column: 1})
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 2, Column: 3})
}

func TestTokenizeEscapes(t *testing.T) {
	tokens := TokenizeString(`\66 oo "a\"b" url(a\)b)`, true)
	tokens = RemoveWhitespace(tokens)
	tu.AssertEqual(t, tokens[0].(Ident).Value, "foo")
	tu.AssertEqual(t, tokens[1].(String).Value, `a"b`)
	tu.AssertEqual(t, tokens[2].(URL).Value, "a)b")
}

func TestSplit(t *testing.T) {
	tokens := TokenizeString("a, b c,, d", true)
	parts := SplitOnComma(tokens)
	tu.AssertEqual(t, len(parts), 4)
	tu.AssertEqual(t, Serialize(TrimWhitespace(parts[1])), "b c")
	tu.AssertEqual(t, len(parts[2]), 0)

	parts = SplitOn(TokenizeString("0; 1; 2", true), ";")
	tu.AssertEqual(t, len(parts), 3)
}

func TestTrimWhitespace(t *testing.T) {
	tokens := TokenizeString("  /**/  Red  ,  green  /**/  ", false)
	tu.AssertEqual(t, Serialize(TrimWhitespace(tokens)), "Red  ,  green")
	tu.AssertEqual(t, len(TrimWhitespace(TokenizeString(" /**/ ", false))), 0)
}
