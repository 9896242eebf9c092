// Package grammar compiles CSS value definition syntax
// (https://drafts.csswg.org/css-values-4/#value-defs)
// into productions, and matches component values against them,
// building a tree of typed values.
package grammar

import (
	"fmt"
	"math"
	"strings"
)

// Node is a compiled production.
// Nodes are immutable once compiled and may be shared.
type Node interface {
	// String returns the production in value definition syntax.
	String() string
}

type (
	// Keyword matches an identifier, ASCII case-insensitively.
	Keyword struct {
		Value string // lowercase
	}

	// Delim matches a delimiter, like ',' or '/'.
	Delim struct {
		Value string
	}

	// Type references a terminal or a named production, like <length [0,∞]>.
	Type struct {
		Name     string
		Min, Max float64 // range for numeric types
	}

	// PropertyRef references the grammar of a property, like <'margin-top'>.
	// When Item is true and the property accepts a comma separated list,
	// only one item of the list is matched.
	PropertyRef struct {
		Name string
		Item bool
	}

	// Function matches a function token whose arguments match Args.
	Function struct {
		Name string // lowercase
		Args Node   // may be nil for functions without arguments
	}

	// Block matches a [] block whose content matches Args,
	// written '[' ... ']' in the definition syntax.
	Block struct {
		Args Node // may be nil
	}

	// Sequence is the juxtaposition of its items.
	Sequence struct {
		Items []Node
	}

	// AllOf matches all its items, in any order (&&).
	AllOf struct {
		Items []Node
	}

	// AnyOf matches one or more of its items, in any order (||).
	AnyOf struct {
		Items []Node
	}

	// OneOf matches exactly one of its items (|).
	OneOf struct {
		Items []Node
	}

	// Repeat matches Item between Min and Max times.
	// Max is negative for an unbounded repetition.
	Repeat struct {
		Item     Node
		Min, Max int
		Comma    bool // items are separated by commas (#)
	}

	// Required matches Item, which must consume at least one component (!).
	Required struct {
		Item Node
	}
)

// hasRange returns true if the type has a numeric range.
func (t *Type) hasRange() bool {
	return !math.IsInf(t.Min, -1) || !math.IsInf(t.Max, 1)
}

func (n *Keyword) String() string { return n.Value }

func (n *Delim) String() string { return "'" + n.Value + "'" }

func formatBound(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return fmt.Sprint(f)
}

func (n *Type) String() string {
	if n.hasRange() {
		return fmt.Sprintf("<%s [%s,%s]>", n.Name, formatBound(n.Min), formatBound(n.Max))
	}
	return "<" + n.Name + ">"
}

func (n *PropertyRef) String() string { return "<'" + n.Name + "'>" }

func (n *Function) String() string {
	if n.Args == nil {
		return n.Name + "()"
	}
	return n.Name + "( " + n.Args.String() + " )"
}

func (n *Block) String() string {
	if n.Args == nil {
		return "'[' ']'"
	}
	return "'[' " + n.Args.String() + " ']'"
}

func joinNodes(items []Node, sep string) string {
	chunks := make([]string, len(items))
	for i, item := range items {
		switch item.(type) {
		case *Sequence, *AllOf, *AnyOf, *OneOf:
			chunks[i] = "[ " + item.String() + " ]"
		default:
			chunks[i] = item.String()
		}
	}
	return strings.Join(chunks, sep)
}

func (n *Sequence) String() string { return joinNodes(n.Items, " ") }
func (n *AllOf) String() string    { return joinNodes(n.Items, " && ") }
func (n *AnyOf) String() string    { return joinNodes(n.Items, " || ") }
func (n *OneOf) String() string    { return joinNodes(n.Items, " | ") }

func (n *Repeat) String() string {
	item := joinNodes([]Node{n.Item}, "")
	var mult string
	switch {
	case n.Comma && n.Min == 1 && n.Max < 0:
		mult = "#"
	case n.Comma && n.Max < 0:
		mult = fmt.Sprintf("#{%d,}", n.Min)
	case n.Comma:
		mult = fmt.Sprintf("#{%d,%d}", n.Min, n.Max)
	case n.Min == 0 && n.Max == 1:
		mult = "?"
	case n.Min == 0 && n.Max < 0:
		mult = "*"
	case n.Min == 1 && n.Max < 0:
		mult = "+"
	case n.Max < 0:
		mult = fmt.Sprintf("{%d,}", n.Min)
	case n.Min == n.Max:
		mult = fmt.Sprintf("{%d}", n.Min)
	default:
		mult = fmt.Sprintf("{%d,%d}", n.Min, n.Max)
	}
	return item + mult
}

func (n *Required) String() string { return "[ " + n.Item.String() + " ]!" }

// Walk calls fn for `node` and its descendants, depth first.
func Walk(node Node, fn func(Node)) {
	if node == nil {
		return
	}
	fn(node)
	switch n := node.(type) {
	case *Function:
		Walk(n.Args, fn)
	case *Block:
		Walk(n.Args, fn)
	case *Sequence:
		for _, item := range n.Items {
			Walk(item, fn)
		}
	case *AllOf:
		for _, item := range n.Items {
			Walk(item, fn)
		}
	case *AnyOf:
		for _, item := range n.Items {
			Walk(item, fn)
		}
	case *OneOf:
		for _, item := range n.Items {
			Walk(item, fn)
		}
	case *Repeat:
		Walk(n.Item, fn)
	case *Required:
		Walk(n.Item, fn)
	}
}
