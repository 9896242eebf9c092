// Package properties defines the static tables describing CSS properties:
// the grammar and initial value of each longhand, the shorthands and
// their longhands, the logical property groups, the legacy aliases and
// mappings, and the descriptors accepted by each kind of declaration block.
//
// The tables are compiled once, at package initialization, and are
// read-only afterwards.
package properties

import (
	"fmt"

	"github.com/benoitkugler/cssom/css/grammar"
)

// Definition describes a longhand property or a descriptor.
type Definition struct {
	Name string
	// Syntax is the compiled grammar of the value.
	Syntax grammar.Node
	// Initial is the canonical initial value.
	Initial string

	// Animatable is false for the properties which can't
	// be interpolated, and thus can't be used with mix() or toggle().
	Animatable bool

	// Group is the logical property group, if any, and
	// Logical is true for the flow-relative properties of the group.
	Group   string
	Logical bool

	// Descriptor is true for the at-rule descriptors, which
	// accept neither CSS-wide keywords nor substitution functions.
	Descriptor bool
}

// IsList returns true if the value is a comma separated list.
func (d *Definition) IsList() bool {
	rep, ok := d.Syntax.(*grammar.Repeat)
	return ok && rep.Comma
}

func (d *Definition) String() string {
	return fmt.Sprintf("%s: %s (initial %s)", d.Name, d.Syntax, d.Initial)
}

// Shorthand describes a shorthand property.
type Shorthand struct {
	Name string
	// Longhands, in canonical order, including the reset only ones.
	Longhands []string
	// ResetOnly are the longhands which can't be set by the shorthand
	// value, and are reset to their initial value.
	ResetOnly []string

	// Syntax is the compiled grammar of the value, in which
	// <'longhand'> references match a single item of list valued longhands.
	// For Repeated shorthands, it is the grammar of one layer.
	Syntax grammar.Node
	// Repeated is true for shorthands whose value is a comma separated
	// list of layers, like background.
	Repeated bool

	// Legacy is true for the names kept for compatibility, which are
	// mapped to a standard longhand and never used to serialize
	// declaration blocks.
	Legacy bool
}

// IsResetOnly returns true if `longhand` is a reset only longhand of `sh`.
func (sh *Shorthand) IsResetOnly(longhand string) bool {
	for _, l := range sh.ResetOnly {
		if l == longhand {
			return true
		}
	}
	return false
}

// Has returns true if `longhand` is one of the longhands of `sh`.
func (sh *Shorthand) Has(longhand string) bool {
	for _, l := range sh.Longhands {
		if l == longhand {
			return true
		}
	}
	return false
}

// IsCustom returns true for custom property names, like "--main-color".
func IsCustom(name string) bool {
	return len(name) > 2 && name[0] == '-' && name[1] == '-'
}
