package grammar

import (
	"strings"

	"github.com/xlab/treeprint"
)

// ValueKind is the kind of a component value.
type ValueKind uint8

const (
	KeywordValue ValueKind = iota
	IdentValue             // case sensitive identifier, like <custom-ident>
	NumberValue
	PercentageValue
	DimensionValue
	StringValue
	URLValue
	ColorValue
	DelimValue
	FunctionValue
	BlockValue
	ListValue
)

func (k ValueKind) String() string {
	switch k {
	case KeywordValue:
		return "keyword"
	case IdentValue:
		return "ident"
	case NumberValue:
		return "number"
	case PercentageValue:
		return "percentage"
	case DimensionValue:
		return "dimension"
	case StringValue:
		return "string"
	case URLValue:
		return "url"
	case ColorValue:
		return "color"
	case DelimValue:
		return "delim"
	case FunctionValue:
		return "function"
	case BlockValue:
		return "block"
	case ListValue:
		return "list"
	default:
		return "<invalid kind>"
	}
}

// Value is a node of the tree built by matching component values
// against a production. Values are never mutated once built:
// transformations return new values.
type Value struct {
	Kind ValueKind

	// Text is the canonical serialization of a leaf value,
	// and of the function values matched as a whole.
	Text string

	Number float64 // numeric value
	Unit   string  // lowercased unit of a dimension
	Name   string  // lowercased name of a function

	// Type is the name of the outermost <type> production
	// the value has been matched against.
	Type string
	// Property is the name of the outermost <'property'>
	// production the value has been matched against.
	Property string

	// Children of a list, function or block value. An absent
	// optional component is represented by a nil child.
	Children []*Value
	// Sep is the separator between the children of a list: " " or ", ".
	Sep string
}

// NewKeyword returns a keyword value.
func NewKeyword(kw string) *Value { return &Value{Kind: KeywordValue, Text: kw} }

// NewList returns a list value, with the given separator.
func NewList(sep string, children ...*Value) *Value {
	return &Value{Kind: ListValue, Sep: sep, Children: children}
}

// String returns the canonical serialization of the value.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case ListValue:
		return joinValues(v.Children, v.Sep)
	case FunctionValue:
		if v.Children == nil {
			return v.Text
		}
		return v.Name + "(" + joinValues(v.Children, " ") + ")"
	case BlockValue:
		return "[" + joinValues(v.Children, " ") + "]"
	default:
		return v.Text
	}
}

func joinValues(children []*Value, sep string) string {
	var b strings.Builder
	for _, child := range children {
		s := child.String()
		if s == "" {
			continue
		}
		if child.Kind == DelimValue && s == "," {
			b.WriteString(",")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}

// IsKeyword returns true if `v` is the keyword `kw`.
func (v *Value) IsKeyword(kw string) bool {
	return v != nil && v.Kind == KeywordValue && v.Text == kw
}

// Items returns the non nil children of a list, or the value itself
// for any other kind.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	if v.Kind != ListValue {
		return []*Value{v}
	}
	out := make([]*Value, 0, len(v.Children))
	for _, c := range v.Children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant (or `v` itself) labelled
// with `property`, or nil.
func (v *Value) Find(property string) *Value {
	if v == nil {
		return nil
	}
	if v.Property == property {
		return v
	}
	for _, c := range v.Children {
		if found := c.Find(property); found != nil {
			return found
		}
	}
	return nil
}

// FindType returns the first descendant (or `v` itself) whose
// type label is `name`, or nil.
func (v *Value) FindType(name string) *Value {
	if v == nil {
		return nil
	}
	if v.Type == name {
		return v
	}
	for _, c := range v.Children {
		if found := c.FindType(name); found != nil {
			return found
		}
	}
	return nil
}

// withType returns a copy of `v` labelled by the type `name`.
func (v *Value) withType(name string) *Value {
	if v == nil {
		return nil
	}
	out := *v
	out.Type = name
	return &out
}

// WithProperty returns a copy of `v` labelled by the property `name`.
func (v *Value) WithProperty(name string) *Value {
	if v == nil {
		return nil
	}
	out := *v
	out.Property = name
	return &out
}

// Dump returns a tree representation of `v`, for debugging purposes.
func (v *Value) Dump() string {
	tree := treeprint.New()
	tree.SetValue(v.label())
	v.dumpChildren(tree)
	return tree.String()
}

func (v *Value) label() string {
	if v == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(v.Kind.String())
	if v.Type != "" {
		b.WriteString(" <" + v.Type + ">")
	}
	if v.Property != "" {
		b.WriteString(" <'" + v.Property + "'>")
	}
	if v.Kind != ListValue && v.Kind != BlockValue {
		b.WriteString(" " + v.String())
	}
	return b.String()
}

func (v *Value) dumpChildren(tree treeprint.Tree) {
	if v == nil {
		return
	}
	for _, c := range v.Children {
		if c == nil || len(c.Children) == 0 {
			tree.AddNode(c.label())
		} else {
			c.dumpChildren(tree.AddBranch(c.label()))
		}
	}
}
