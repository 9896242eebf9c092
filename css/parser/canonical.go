package parser

import (
	"strings"

	"github.com/benoitkugler/cssom/utils"
)

// Canonical serializes `tokens` in a normalized form: comments are
// removed, whitespace is collapsed (and trimmed at each nesting level),
// numbers are written in their shortest form, units and function names
// are lowercased, strings and urls are double quoted, and commas
// and semicolons are followed by a single space.
func Canonical(tokens []Token) string {
	var w strings.Builder
	canonicalTo(tokens, &w)
	return w.String()
}

func isSeparator(t Token) bool {
	lit, ok := t.(Literal)
	return ok && (lit.Value == "," || lit.Value == ";")
}

func canonicalTo(tokens []Token, w *strings.Builder) {
	var (
		previous      Token // last written token
		pendingSpace  bool  // whitespace (or comment) seen since previous
		commentBetter bool  // only a comment separates previous from the next token
	)
	for _, token := range tokens {
		switch token.Kind() {
		case KWhitespace:
			pendingSpace = true
			commentBetter = false
			continue
		case KComment:
			if !pendingSpace {
				commentBetter = true
			}
			continue
		}
		if previous != nil {
			switch {
			case isSeparator(previous):
				w.WriteByte(' ')
			case isSeparator(token):
				// no space before a separator
			case pendingSpace:
				w.WriteByte(' ')
			case commentBetter && badPairs[[2]string{serializationType(previous), serializationType(token)}]:
				w.WriteString("/**/")
			}
		}
		canonicalToken(token, w)
		previous, pendingSpace, commentBetter = token, false, false
	}
}

func serializationType(t Token) string {
	if lit, ok := t.(Literal); ok {
		return lit.Value
	}
	return t.Kind().String()
}

func canonicalToken(token Token, w *strings.Builder) {
	switch token := token.(type) {
	case Number:
		w.WriteString(token.Canonical())
	case Percentage:
		w.WriteString(token.Canonical())
		w.WriteByte('%')
	case Dimension:
		w.WriteString(token.Canonical())
		unit := utils.AsciiLower(token.Unit)
		if unit == "e" || strings.HasPrefix(unit, "e-") {
			w.WriteString("\\65 ")
			w.WriteString(serializeName(unit[1:]))
		} else {
			w.WriteString(serializeIdentifier(unit))
		}
	case String:
		w.WriteString(SerializeString(token.Value))
	case URL:
		w.WriteString(SerializeURL(token.Value))
	case FunctionBlock:
		w.WriteString(serializeIdentifier(utils.AsciiLower(token.Name)))
		w.WriteByte('(')
		canonicalTo(token.Arguments, w)
		w.WriteByte(')')
	case ParenthesesBlock:
		w.WriteByte('(')
		canonicalTo(token.Arguments, w)
		w.WriteByte(')')
	case SquareBracketsBlock:
		w.WriteByte('[')
		canonicalTo(token.Arguments, w)
		w.WriteByte(']')
	case CurlyBracketsBlock:
		w.WriteByte('{')
		canonicalTo(token.Arguments, w)
		w.WriteByte('}')
	default:
		token.serializeTo(w)
	}
}
