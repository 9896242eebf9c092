package parser

import (
	"io"
	"strconv"

	"github.com/benoitkugler/cssom/utils"
)

// Pos is the position of a token in the source, starting at line 1, column 1.
type Pos struct {
	Line, Column int
}

func newPosition(line, column int) Pos { return Pos{Line: line, Column: column} }

func (p Pos) Pos() Pos { return p }

// Kind identifies the concrete type of a token.
type Kind uint8

const (
	KParseError Kind = iota
	KComment
	KWhitespace
	KLiteral
	KIdent
	KAtKeyword
	KHash
	KString
	KURL
	KUnicodeRange
	KNumber
	KPercentage
	KDimension
	KParenthesesBlock
	KSquareBracketsBlock
	KCurlyBracketsBlock
	KFunctionBlock
)

// String returns the name used in the serialization tables.
func (k Kind) String() string {
	switch k {
	case KParseError:
		return "error"
	case KComment:
		return "comment"
	case KWhitespace:
		return "whitespace"
	case KLiteral:
		return "literal"
	case KIdent:
		return "ident"
	case KAtKeyword:
		return "at-keyword"
	case KHash:
		return "hash"
	case KString:
		return "string"
	case KURL:
		return "url"
	case KUnicodeRange:
		return "unicode-range"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KParenthesesBlock:
		return "() block"
	case KSquareBracketsBlock:
		return "[] block"
	case KCurlyBracketsBlock:
		return "{} block"
	case KFunctionBlock:
		return "function"
	default:
		return "<invalid token kind>"
	}
}

// Token is a component value, as produced by `Tokenize`.
// Blocks and functions hold their nested content.
type Token interface {
	Pos() Pos
	Kind() Kind
	serializeTo(writer io.StringWriter)
}

type errorKind string

const (
	errBadString   errorKind = "bad-string"
	errBadURL      errorKind = "bad-url"
	errP           errorKind = ")"
	errB           errorKind = "]"
	errC           errorKind = "}"
	errEofInString errorKind = "eof-in-string"
	errEofInUrl    errorKind = "eof-in-url"
	errEmpty       errorKind = "empty"
	errExtraInput  errorKind = "extra-input"
	errInvalid     errorKind = "invalid"
)

type (
	// ParseError is emitted in place of an invalid or unbalanced input.
	ParseError struct {
		pos     Pos
		kind    errorKind
		Message string
	}

	Comment struct {
		pos   Pos
		Value string
	}

	Whitespace struct {
		pos   Pos
		Value string
	}

	// Literal is a delimiter: a single code point, or one of
	// "~=", "|=", "^=", "$=", "*=", "||", "<!--", "-->".
	Literal struct {
		pos   Pos
		Value string
	}

	Ident struct {
		pos   Pos
		Value string
	}

	AtKeyword struct {
		pos   Pos
		Value string
	}

	Hash struct {
		pos   Pos
		Value string
		ident bool
	}

	String struct {
		pos   Pos
		Value string
		eof   bool
	}

	URL struct {
		pos   Pos
		Value string
		flag  uint8
	}

	UnicodeRange struct {
		pos        Pos
		Start, End uint32
	}

	// numeric stores the representation of a number,
	// as written in the source.
	numeric struct {
		pos   Pos
		Value string
		isInt bool
	}

	Number struct {
		numeric
	}

	Percentage struct {
		numeric
	}

	Dimension struct {
		numeric
		Unit string
	}

	ParenthesesBlock struct {
		pos       Pos
		Arguments []Token
	}

	SquareBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}

	CurlyBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}

	FunctionBlock struct {
		pos       Pos
		Name      string
		Arguments []Token
	}
)

const (
	isErrorInString uint8 = 1 << iota
	isErrorInURL
)

func (t ParseError) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t Whitespace) Pos() Pos          { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t Ident) Pos() Pos               { return t.pos }
func (t AtKeyword) Pos() Pos           { return t.pos }
func (t Hash) Pos() Pos                { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t URL) Pos() Pos                 { return t.pos }
func (t UnicodeRange) Pos() Pos        { return t.pos }
func (t numeric) Pos() Pos             { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }
func (t FunctionBlock) Pos() Pos       { return t.pos }

func (ParseError) Kind() Kind          { return KParseError }
func (Comment) Kind() Kind             { return KComment }
func (Whitespace) Kind() Kind          { return KWhitespace }
func (Literal) Kind() Kind             { return KLiteral }
func (Ident) Kind() Kind               { return KIdent }
func (AtKeyword) Kind() Kind           { return KAtKeyword }
func (Hash) Kind() Kind                { return KHash }
func (String) Kind() Kind              { return KString }
func (URL) Kind() Kind                 { return KURL }
func (UnicodeRange) Kind() Kind        { return KUnicodeRange }
func (Number) Kind() Kind              { return KNumber }
func (Percentage) Kind() Kind          { return KPercentage }
func (Dimension) Kind() Kind           { return KDimension }
func (ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }
func (FunctionBlock) Kind() Kind       { return KFunctionBlock }

func (t Hash) isIdentifier() bool { return t.ident }
func (t String) isError() bool    { return t.eof }

// IsError returns true for the unclosed string and url tokens.
func (t URL) IsError() bool { return t.flag != 0 }

// IsInt returns true if the number was written without
// fractional part nor exponent.
func (t numeric) IsInt() bool { return t.isInt }

// Int returns the integer value, only meaningful if `IsInt` is true.
func (t numeric) Int() int {
	i, _ := strconv.Atoi(t.Value)
	return i
}

// Float returns the numeric value.
func (t numeric) Float() float64 {
	f, _ := strconv.ParseFloat(t.Value, 64)
	return f
}

// Canonical returns the shortest serialization of the number,
// so that "1e0", "1.0" and "+1" all give "1".
func (t numeric) Canonical() string {
	return utils.FormatNumber(t.Float())
}

// NewIdent, NewLiteral, NewNumber, NewDimension, NewString and NewFunction
// build tokens without source position, used to synthesize values.

func NewIdent(value string) Ident     { return Ident{Value: value} }
func NewLiteral(value string) Literal { return Literal{Value: value} }
func NewString(value string) String   { return String{Value: value} }

func NewNumber(repr string) Number {
	_, err := strconv.Atoi(repr)
	return Number{numeric{Value: repr, isInt: err == nil}}
}

func NewDimension(repr, unit string) Dimension {
	return Dimension{numeric: NewNumber(repr).numeric, Unit: unit}
}

func NewFunction(name string, args []Token) FunctionBlock {
	return FunctionBlock{Name: name, Arguments: args}
}

// LiteralValue returns the value of `t` if it is a literal, or an empty string.
func LiteralValue(t Token) string {
	if lit, ok := t.(Literal); ok {
		return lit.Value
	}
	return ""
}

// IsLiteral returns true if `t` is the literal `value`.
func IsLiteral(t Token, value string) bool {
	lit, ok := t.(Literal)
	return ok && lit.Value == value
}

// TokensIter walks a list of tokens.
type TokensIter struct {
	tokens []Token
	index  int
}

func NewIter(tokens []Token) *TokensIter {
	return &TokensIter{tokens: tokens}
}

func (it TokensIter) HasNext() bool {
	return it.index < len(it.tokens)
}

// Next panics if `HasNext` is false.
func (it *TokensIter) Next() (t Token) {
	t = it.tokens[it.index]
	it.index++
	return t
}

// NextSignificant returns the next token that is not whitespace
// nor a comment, or nil at the end of the input.
func (it *TokensIter) NextSignificant() Token {
	for it.HasNext() {
		token := it.Next()
		if k := token.Kind(); k != KWhitespace && k != KComment {
			return token
		}
	}
	return nil
}

// Rest returns the tokens not consumed yet.
func (it TokensIter) Rest() []Token { return it.tokens[it.index:] }

// RemoveWhitespace returns the tokens of `tokens`, without the top-level
// whitespace and comments.
func RemoveWhitespace(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if k := token.Kind(); k != KWhitespace && k != KComment {
			out = append(out, token)
		}
	}
	return out
}

// TrimWhitespace removes the leading and trailing whitespace and comments.
func TrimWhitespace(tokens []Token) []Token {
	start, end := 0, len(tokens)
	for start < end {
		if k := tokens[start].Kind(); k != KWhitespace && k != KComment {
			break
		}
		start++
	}
	for end > start {
		if k := tokens[end-1].Kind(); k != KWhitespace && k != KComment {
			break
		}
		end--
	}
	return tokens[start:end]
}

// SplitOn splits `tokens` on each top-level `delim` literal.
// The result has always len(separators) + 1 elements.
func SplitOn(tokens []Token, delim string) [][]Token {
	parts := [][]Token{nil}
	for _, token := range tokens {
		if IsLiteral(token, delim) {
			parts = append(parts, nil)
		} else {
			parts[len(parts)-1] = append(parts[len(parts)-1], token)
		}
	}
	return parts
}

// SplitOnComma splits `tokens` on each top-level comma.
func SplitOnComma(tokens []Token) [][]Token { return SplitOn(tokens, ",") }
