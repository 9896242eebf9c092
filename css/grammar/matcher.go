package grammar

import (
	"github.com/benoitkugler/cssom/css/parser"
	"github.com/benoitkugler/cssom/utils"
)

// Definitions provides the grammar of the properties
// referenced by <'name'> productions.
type Definitions interface {
	// Property returns the grammar of the longhand
	// or shorthand `name`.
	Property(name string) (Node, bool)
}

// bound the number of backtracking steps, so that pathological
// inputs fail instead of hanging
const maxSteps = 1 << 18

// cont is called with the position after a successful match,
// and returns true to accept it.
type cont func(pos int, v *Value) bool

type matcher struct {
	tokens []parser.Token
	defs   Definitions
	steps  *int
}

// Match returns the value built by matching all the `tokens` against `node`.
// Whitespace and comments are ignored. Alternatives are tried in order and
// multipliers are greedy, backtracking as needed, so that the first complete
// match is returned.
func Match(tokens []parser.Token, node Node, defs Definitions) (*Value, bool) {
	var steps int
	m := matcher{tokens: parser.RemoveWhitespace(tokens), defs: defs, steps: &steps}
	if len(m.tokens) == 0 {
		return nil, false
	}
	var out *Value
	ok := m.match(node, 0, func(pos int, v *Value) bool {
		if pos != len(m.tokens) {
			return false
		}
		out = v
		return true
	})
	if !ok {
		tracer().Debugf("no match for %s against %s (%d steps)", parser.Canonical(tokens), node, steps)
		return nil, false
	}
	if out == nil {
		out = NewList(" ")
	}
	return out, true
}

// MatchString is a convenience wrapper around Match,
// tokenizing `css` first.
func MatchString(css string, node Node, defs Definitions) (*Value, bool) {
	return Match(parser.TokenizeString(css, true), node, defs)
}

func (m matcher) token(pos int) parser.Token {
	if pos < len(m.tokens) {
		return m.tokens[pos]
	}
	return nil
}

func (m matcher) match(node Node, pos int, k cont) bool {
	*m.steps++
	if *m.steps > maxSteps {
		return false
	}
	switch node := node.(type) {
	case *Keyword:
		if id, ok := m.token(pos).(parser.Ident); ok && utils.AsciiLower(id.Value) == node.Value {
			return k(pos+1, NewKeyword(node.Value))
		}
		return false
	case *Delim:
		if parser.IsLiteral(m.token(pos), node.Value) {
			return k(pos+1, &Value{Kind: DelimValue, Text: node.Value})
		}
		return false
	case *Type:
		return m.matchType(node, pos, k)
	case *PropertyRef:
		return m.matchProperty(node, pos, k)
	case *Function:
		fn, ok := m.token(pos).(parser.FunctionBlock)
		if !ok || utils.AsciiLower(fn.Name) != node.Name {
			return false
		}
		args, ok := m.matchArguments(fn.Arguments, node.Args)
		if !ok {
			return false
		}
		if node.Args == nil {
			return k(pos+1, &Value{Kind: FunctionValue, Name: node.Name, Text: node.Name + "()"})
		}
		return k(pos+1, &Value{Kind: FunctionValue, Name: node.Name, Children: []*Value{args}})
	case *Block:
		block, ok := m.token(pos).(parser.SquareBracketsBlock)
		if !ok {
			return false
		}
		args, ok := m.matchArguments(block.Arguments, node.Args)
		if !ok {
			return false
		}
		return k(pos+1, &Value{Kind: BlockValue, Children: []*Value{args}})
	case *Sequence:
		return m.matchSequence(node.Items, pos, nil, k)
	case *OneOf:
		for _, item := range node.Items {
			if m.match(item, pos, k) {
				return true
			}
		}
		return false
	case *AnyOf:
		return m.matchUnordered(node.Items, false, pos, make([]*Value, len(node.Items)), make([]bool, len(node.Items)), 0, k)
	case *AllOf:
		return m.matchUnordered(node.Items, true, pos, make([]*Value, len(node.Items)), make([]bool, len(node.Items)), 0, k)
	case *Repeat:
		return m.matchRepeat(node, pos, nil, k)
	case *Required:
		return m.match(node.Item, pos, func(p int, v *Value) bool {
			return p > pos && k(p, v)
		})
	}
	return false
}

// matchArguments commits to the first match consuming all the arguments
func (m matcher) matchArguments(arguments []parser.Token, node Node) (*Value, bool) {
	sub := matcher{tokens: parser.RemoveWhitespace(arguments), defs: m.defs, steps: m.steps}
	if node == nil {
		return nil, len(sub.tokens) == 0
	}
	var out *Value
	ok := sub.match(node, 0, func(p int, v *Value) bool {
		if p != len(sub.tokens) {
			return false
		}
		out = v
		return true
	})
	return out, ok
}

func (m matcher) matchType(node *Type, pos int, k cont) bool {
	if term, ok := terminals[node.Name]; ok {
		token := m.token(pos)
		if token == nil {
			return false
		}
		v, ok := term(token)
		if !ok || !inRange(v, node) {
			return false
		}
		return k(pos+1, v.withType(node.Name))
	}
	def, ok := lookupType(node.Name)
	if !ok {
		tracer().Errorf("undefined type %s", node)
		return false
	}
	return m.match(def, pos, func(p int, v *Value) bool {
		return k(p, v.withType(node.Name))
	})
}

func inRange(v *Value, node *Type) bool {
	if !node.hasRange() {
		return true
	}
	switch v.Kind {
	case NumberValue, PercentageValue, DimensionValue:
		return node.Min <= v.Number && v.Number <= node.Max
	}
	return true
}

func (m matcher) matchProperty(node *PropertyRef, pos int, k cont) bool {
	if m.defs == nil {
		return false
	}
	def, ok := m.defs.Property(node.Name)
	if !ok {
		tracer().Errorf("undefined property %s", node)
		return false
	}
	if rep, isRepeat := def.(*Repeat); node.Item && isRepeat && rep.Comma {
		def = rep.Item
	}
	return m.match(def, pos, func(p int, v *Value) bool {
		return k(p, v.WithProperty(node.Name))
	})
}

func (m matcher) matchSequence(items []Node, pos int, acc []*Value, k cont) bool {
	if len(items) == 0 {
		return k(pos, NewList(" ", acc...))
	}
	return m.match(items[0], pos, func(p int, v *Value) bool {
		return m.matchSequence(items[1:], p, append(acc[:len(acc):len(acc)], v), k)
	})
}

// matchUnordered handles || and && combinators: items are tried in order
// at each position, and each may be used at most once. With `all`, every item
// must be used; otherwise at least one item must consume input.
// The children of the result follow the order of the items, with nil for
// the unused ones.
func (m matcher) matchUnordered(items []Node, all bool, pos int, used []*Value, done []bool, count int, k cont) bool {
	for i, item := range items {
		if done[i] {
			continue
		}
		i := i
		ok := m.match(item, pos, func(p int, v *Value) bool {
			if p == pos && !all {
				return false
			}
			nextUsed := append([]*Value(nil), used...)
			nextDone := append([]bool(nil), done...)
			nextUsed[i], nextDone[i] = v, true
			return m.matchUnordered(items, all, p, nextUsed, nextDone, count+1, k)
		})
		if ok {
			return true
		}
	}
	if count == 0 || (all && count < len(items)) {
		return false
	}
	return k(pos, NewList(" ", used...))
}

func (m matcher) matchRepeat(node *Repeat, pos int, acc []*Value, k cont) bool {
	if (node.Max < 0 || len(acc) < node.Max) && m.matchRepeatItem(node, pos, acc, k) {
		return true
	}
	if len(acc) < node.Min {
		return false
	}
	if !node.Comma && node.Min == 0 && node.Max == 1 {
		if len(acc) == 0 {
			return k(pos, nil)
		}
		return k(pos, acc[0])
	}
	sep := " "
	if node.Comma {
		sep = ", "
	}
	return k(pos, NewList(sep, acc...))
}

// matchRepeatItem matches one more item, which must consume input
func (m matcher) matchRepeatItem(node *Repeat, pos int, acc []*Value, k cont) bool {
	start := pos
	if node.Comma && len(acc) > 0 {
		if !parser.IsLiteral(m.token(pos), ",") {
			return false
		}
		start++
	}
	return m.match(node.Item, start, func(p int, v *Value) bool {
		if p == start {
			return false
		}
		return m.matchRepeat(node, p, append(acc[:len(acc):len(acc)], v), k)
	})
}
