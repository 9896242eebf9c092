package grammar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrSyntax is returned for invalid value definitions.
var ErrSyntax = errors.New("invalid value definition")

type syntaxKind uint8

const (
	sEOF       syntaxKind = iota
	sKeyword              // auto
	sType                 // <length>, <'margin'>
	sLiteral              // ',' '/' '[' ']'
	sFunction             // rect(
	sClose                // )
	sOpen                 // [
	sEnd                  // ]
	sBar                  // |
	sDoubleBar            // ||
	sAnd                  // &&
	sStar                 // *
	sPlus                 // +
	sQuestion             // ?
	sHash                 // #
	sBang                 // !
	sRange                // {1,4}
)

type syntaxToken struct {
	kind  syntaxKind
	value string
}

func isNameChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-' || c == '_'
}

func lexSyntax(def string) ([]syntaxToken, error) {
	var out []syntaxToken
	for pos := 0; pos < len(def); {
		c := def[pos]
		switch {
		case c == ' ' || c == '\n' || c == '\t':
			pos++
		case c == '<':
			end := strings.IndexByte(def[pos:], '>')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed type in %q", ErrSyntax, def)
			}
			out = append(out, syntaxToken{sType, def[pos+1 : pos+end]})
			pos += end + 1
		case c == '\'':
			end := strings.IndexByte(def[pos+1:], '\'')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed literal in %q", ErrSyntax, def)
			}
			out = append(out, syntaxToken{sLiteral, def[pos+1 : pos+1+end]})
			pos += end + 2
		case c == '{':
			end := strings.IndexByte(def[pos:], '}')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed range in %q", ErrSyntax, def)
			}
			out = append(out, syntaxToken{sRange, def[pos+1 : pos+end]})
			pos += end + 1
		case strings.HasPrefix(def[pos:], "||"):
			out = append(out, syntaxToken{sDoubleBar, "||"})
			pos += 2
		case strings.HasPrefix(def[pos:], "&&"):
			out = append(out, syntaxToken{sAnd, "&&"})
			pos += 2
		case c == '|':
			out = append(out, syntaxToken{sBar, "|"})
			pos++
		case c == '[':
			out = append(out, syntaxToken{sOpen, "["})
			pos++
		case c == ']':
			out = append(out, syntaxToken{sEnd, "]"})
			pos++
		case c == ')':
			out = append(out, syntaxToken{sClose, ")"})
			pos++
		case c == '*':
			out = append(out, syntaxToken{sStar, "*"})
			pos++
		case c == '+':
			out = append(out, syntaxToken{sPlus, "+"})
			pos++
		case c == '?':
			out = append(out, syntaxToken{sQuestion, "?"})
			pos++
		case c == '#':
			out = append(out, syntaxToken{sHash, "#"})
			pos++
		case c == '!':
			out = append(out, syntaxToken{sBang, "!"})
			pos++
		case c == ',' || c == '/' || c == ';':
			out = append(out, syntaxToken{sLiteral, string(c)})
			pos++
		case isNameChar(c):
			start := pos
			for pos < len(def) && isNameChar(def[pos]) {
				pos++
			}
			if pos < len(def) && def[pos] == '(' {
				out = append(out, syntaxToken{sFunction, strings.ToLower(def[start:pos])})
				pos++
			} else {
				out = append(out, syntaxToken{sKeyword, strings.ToLower(def[start:pos])})
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, c, def)
		}
	}
	return out, nil
}

type syntaxParser struct {
	tokens []syntaxToken
	pos    int
	items  bool // mark property references as list items
}

func (p *syntaxParser) peek() syntaxToken {
	if p.pos >= len(p.tokens) {
		return syntaxToken{kind: sEOF}
	}
	return p.tokens[p.pos]
}

func (p *syntaxParser) next() syntaxToken {
	t := p.peek()
	p.pos++
	return t
}

// Parse compiles a value definition, like "<length> | auto".
func Parse(def string) (Node, error) {
	return parse(def, false)
}

// ParseItems is like Parse, but the property references are restricted to
// one item of the referenced list-valued property, as used by the
// grammars of comma separated shorthands.
func ParseItems(def string) (Node, error) {
	return parse(def, true)
}

// MustParse is like Parse but panics on error. It is used to compile
// the static tables of this module.
func MustParse(def string) Node {
	n, err := Parse(def)
	if err != nil {
		panic(err)
	}
	return n
}

func parse(def string, items bool) (Node, error) {
	tokens, err := lexSyntax(def)
	if err != nil {
		return nil, err
	}
	p := syntaxParser{tokens: tokens, items: items}
	node, err := p.parseOneOf()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != sEOF {
		return nil, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, t.value, def)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: empty definition", ErrSyntax)
	}
	return node, nil
}

func (p *syntaxParser) parseOneOf() (Node, error) {
	var items []Node
	for {
		item, err := p.parseAnyOf()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().kind != sBar {
			break
		}
		p.next()
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &OneOf{Items: items}, nil
}

func (p *syntaxParser) parseAnyOf() (Node, error) {
	var items []Node
	for {
		item, err := p.parseAllOf()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().kind != sDoubleBar {
			break
		}
		p.next()
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &AnyOf{Items: items}, nil
}

func (p *syntaxParser) parseAllOf() (Node, error) {
	var items []Node
	for {
		item, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().kind != sAnd {
			break
		}
		p.next()
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &AllOf{Items: items}, nil
}

func (p *syntaxParser) parseSequence() (Node, error) {
	var items []Node
	for {
		switch p.peek().kind {
		case sEOF, sBar, sDoubleBar, sAnd, sEnd, sClose:
			if len(items) == 0 {
				return nil, fmt.Errorf("%w: empty group", ErrSyntax)
			}
			if len(items) == 1 {
				return items[0], nil
			}
			return &Sequence{Items: items}, nil
		case sLiteral:
			if p.peek().value == "]" {
				if len(items) == 0 {
					return nil, fmt.Errorf("%w: empty group", ErrSyntax)
				}
				if len(items) == 1 {
					return items[0], nil
				}
				return &Sequence{Items: items}, nil
			}
		}
		item, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *syntaxParser) parseTerm() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch t := p.peek(); t.kind {
		case sStar:
			p.next()
			node = &Repeat{Item: node, Min: 0, Max: -1}
		case sPlus:
			p.next()
			node = &Repeat{Item: node, Min: 1, Max: -1}
		case sQuestion:
			p.next()
			node = &Repeat{Item: node, Min: 0, Max: 1}
		case sBang:
			p.next()
			node = &Required{Item: node}
		case sHash:
			p.next()
			rep := &Repeat{Item: node, Min: 1, Max: -1, Comma: true}
			if p.peek().kind == sRange {
				rep.Min, rep.Max, err = parseRange(p.next().value)
				if err != nil {
					return nil, err
				}
			}
			node = rep
		case sRange:
			p.next()
			rep := &Repeat{Item: node}
			rep.Min, rep.Max, err = parseRange(t.value)
			if err != nil {
				return nil, err
			}
			node = rep
		default:
			return node, nil
		}
	}
}

// parseRange parses "m", "m," or "m,n".
func parseRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ",")
	min, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range {%s}", ErrSyntax, s)
	}
	switch len(parts) {
	case 1:
		return min, min, nil
	case 2:
		if strings.TrimSpace(parts[1]) == "" {
			return min, -1, nil
		}
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || max < min {
			return 0, 0, fmt.Errorf("%w: invalid range {%s}", ErrSyntax, s)
		}
		return min, max, nil
	}
	return 0, 0, fmt.Errorf("%w: invalid range {%s}", ErrSyntax, s)
}

func (p *syntaxParser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case sKeyword:
		return &Keyword{Value: t.value}, nil
	case sType:
		return p.parseType(t.value)
	case sLiteral:
		if t.value == "[" {
			if p.peek().kind == sLiteral && p.peek().value == "]" {
				p.next()
				return &Block{}, nil
			}
			args, err := p.parseOneOf()
			if err != nil {
				return nil, err
			}
			if end := p.next(); end.kind != sLiteral || end.value != "]" {
				return nil, fmt.Errorf("%w: expected ']' literal", ErrSyntax)
			}
			return &Block{Args: args}, nil
		}
		return &Delim{Value: t.value}, nil
	case sOpen:
		node, err := p.parseOneOf()
		if err != nil {
			return nil, err
		}
		if end := p.next(); end.kind != sEnd {
			return nil, fmt.Errorf("%w: expected ]", ErrSyntax)
		}
		return node, nil
	case sFunction:
		if p.peek().kind == sClose {
			p.next()
			return &Function{Name: t.value}, nil
		}
		args, err := p.parseOneOf()
		if err != nil {
			return nil, err
		}
		if end := p.next(); end.kind != sClose {
			return nil, fmt.Errorf("%w: expected ) after %s(", ErrSyntax, t.value)
		}
		return &Function{Name: t.value, Args: args}, nil
	}
	return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, t.value)
}

// parseType parses the content of <...>
func (p *syntaxParser) parseType(content string) (Node, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "'") {
		name := strings.Trim(content, "'")
		if name == "" {
			return nil, fmt.Errorf("%w: empty property reference", ErrSyntax)
		}
		return &PropertyRef{Name: name, Item: p.items}, nil
	}
	out := &Type{Name: content, Min: math.Inf(-1), Max: math.Inf(1)}
	if i := strings.IndexByte(content, '['); i != -1 {
		if !strings.HasSuffix(content, "]") {
			return nil, fmt.Errorf("%w: invalid range in <%s>", ErrSyntax, content)
		}
		out.Name = strings.TrimSpace(content[:i])
		bounds := strings.Split(content[i+1:len(content)-1], ",")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: invalid range in <%s>", ErrSyntax, content)
		}
		var err error
		if out.Min, err = parseBound(bounds[0]); err != nil {
			return nil, err
		}
		if out.Max, err = parseBound(bounds[1]); err != nil {
			return nil, err
		}
	}
	if out.Name == "" {
		return nil, fmt.Errorf("%w: empty type", ErrSyntax)
	}
	return out, nil
}

func parseBound(s string) (float64, error) {
	switch s = strings.TrimSpace(s); s {
	case "∞", "+∞":
		return math.Inf(1), nil
	case "-∞":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid bound %q", ErrSyntax, s)
	}
	return f, nil
}
