package validation

import (
	"errors"

	"github.com/benoitkugler/cssom/css/grammar"
)

// ErrInvalidValue is returned (wrapped) for the values rejected
// by the property grammar or the substitution rules.
var ErrInvalidValue = errors.New("invalid or unsupported value for a known CSS property")

// DeclaredValue is the value of a longhand (or custom property) in a declaration block.
// It is one of *grammar.Value, WideKeyword, Pending or Custom.
type DeclaredValue interface {
	// String returns the serialization of the value.
	String() string
}

var (
	_ DeclaredValue = (*grammar.Value)(nil)
	_ DeclaredValue = WideKeyword("")
	_ DeclaredValue = Pending{}
	_ DeclaredValue = Custom("")
)

// WideKeyword is a CSS-wide keyword, like 'inherit', lowercased.
type WideKeyword string

func (kw WideKeyword) String() string { return string(kw) }

// Pending is a value containing substitution functions, which is
// only validated at computed value time.
type Pending struct {
	// Text is the canonical serialization of the value.
	Text string
	// Shorthand is the name of the shorthand the value has been
	// assigned to, or empty if it has been assigned to the longhand itself.
	Shorthand string
}

// String returns an empty string for the longhands set by a shorthand.
func (p Pending) String() string {
	if p.Shorthand != "" {
		return ""
	}
	return p.Text
}

// Custom is the value of a custom property, stored as written,
// without leading and trailing whitespace.
type Custom string

func (c Custom) String() string { return string(c) }

// Property is a longhand or a custom property with its value.
type Property struct {
	Name  string
	Value DeclaredValue
}
