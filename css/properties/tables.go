package properties

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/cssom/css/grammar"
	"github.com/benoitkugler/cssom/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind identifies the kind of a declaration block, which
// determines the properties and descriptors it accepts.
type Kind uint8

const (
	Style       Kind = iota // style rules and inline styles
	Keyframe                // keyframe rules, inside @keyframes
	FontFace                // @font-face
	Page                    // @page
	Margin                  // margin rules, inside @page
	PositionTry             // @position-try
)

func (k Kind) String() string {
	switch k {
	case Style:
		return "style"
	case Keyframe:
		return "keyframe"
	case FontFace:
		return "font-face"
	case Page:
		return "page"
	case Margin:
		return "margin"
	case PositionTry:
		return "position-try"
	default:
		return fmt.Sprintf("<kind %d>", k)
	}
}

// Table is the set of longhands and shorthands accepted
// by a kind of declaration block. It implements grammar.Definitions.
type Table struct {
	Kind Kind
	// Custom is true if custom properties are accepted.
	Custom bool
	// Priority is true if declarations may be !important.
	Priority bool

	longhands  map[string]*Definition
	shorthands map[string]*Shorthand
	aliases    map[string]string

	// shorthands of each longhand, in the order they are
	// tried when serializing a declaration block
	owners map[string][]*Shorthand
}

// Get returns the table of the given kind.
func Get(kind Kind) *Table { return tables[kind] }

// Resolve normalizes `name` to the canonical name of a property
// supported by the table, returning false if there is none.
// Custom property names are case sensitive, the others are not.
func (t *Table) Resolve(name string) (string, bool) {
	if IsCustom(name) {
		return name, t.Custom
	}
	name = utils.AsciiLower(name)
	if target, ok := t.aliases[name]; ok {
		name = target
	}
	_, isLonghand := t.longhands[name]
	_, isShorthand := t.shorthands[name]
	return name, isLonghand || isShorthand
}

// Longhand returns the definition of a longhand or a descriptor.
func (t *Table) Longhand(name string) (*Definition, bool) {
	def, ok := t.longhands[name]
	return def, ok
}

// Shorthand returns the definition of a shorthand.
func (t *Table) Shorthand(name string) (*Shorthand, bool) {
	sh, ok := t.shorthands[name]
	return sh, ok
}

// Property implements grammar.Definitions.
func (t *Table) Property(name string) (grammar.Node, bool) {
	if def, ok := t.longhands[name]; ok {
		return def.Syntax, true
	}
	if sh, ok := t.shorthands[name]; ok {
		return sh.Syntax, true
	}
	// shorthand grammars may refer to longhands excluded from the table
	if def, ok := allLonghands[name]; ok {
		return def.Syntax, true
	}
	return nil, false
}

// Owners returns the shorthands including `longhand`, sorted
// by decreasing number of longhands, prefixed names last, then by name.
// Legacy shorthands are excluded.
func (t *Table) Owners(longhand string) []*Shorthand { return t.owners[longhand] }

// Legacy returns the legacy shorthands mapped to `longhand`.
func (t *Table) Legacy(longhand string) []*Shorthand {
	var out []*Shorthand
	for _, name := range t.sortedShorthands() {
		if sh := t.shorthands[name]; sh.Legacy && sh.Longhands[0] == longhand {
			out = append(out, sh)
		}
	}
	return out
}

// Names returns the sorted names of the supported longhands,
// shorthands and aliases.
func (t *Table) Names() []string {
	out := append(maps.Keys(t.longhands), maps.Keys(t.shorthands)...)
	out = append(out, maps.Keys(t.aliases)...)
	slices.Sort(out)
	return out
}

func (t *Table) sortedShorthands() []string {
	out := maps.Keys(t.shorthands)
	slices.Sort(out)
	return out
}

var (
	allLonghands  = map[string]*Definition{}
	allShorthands = map[string]*Shorthand{}

	tables [PositionTry + 1]*Table
)

// Longhands returns the names of all the longhands
// of the style table, sorted.
func Longhands() []string {
	out := maps.Keys(allLonghands)
	slices.Sort(out)
	return out
}

func compileLonghand(name, syntax, initial string) *Definition {
	node, err := grammar.Parse(syntax)
	if err != nil {
		panic(fmt.Sprintf("invalid grammar for %s: %s", name, err))
	}
	return &Definition{Name: name, Syntax: node, Initial: initial, Animatable: true}
}

func addShorthand(def shorthandDef) {
	node, err := grammar.ParseItems(def.syntax)
	if err != nil {
		panic(fmt.Sprintf("invalid grammar for %s: %s", def.name, err))
	}
	allShorthands[def.name] = &Shorthand{
		Name:      def.name,
		Longhands: def.longhands,
		ResetOnly: def.resetOnly,
		Syntax:    node,
		Repeated:  def.repeated,
		Legacy:    def.legacy,
	}
}

// groupShorthands returns the shorthands generated from the logical groups:
// four sides, block and inline pairs, and x and y pairs.
func groupShorthands() []shorthandDef {
	var out []shorthandDef
	for _, g := range logicalGroups {
		physical, logical := g.names()
		switch len(physical) {
		case 4:
			if g.name == "border-radius" { // defined with its own grammar
				continue
			}
			out = append(out, shorthandDef{
				name:      g.name,
				longhands: physical,
				syntax:    fmt.Sprintf("<'%s'>{1,4}", physical[0]),
			})
			for _, axis := range [2]string{"block", "inline"} {
				var pair []string
				for _, l := range logical {
					if strings.Contains(l, axis+"-") {
						pair = append(pair, l)
					}
				}
				out = append(out, shorthandDef{
					name:      axisShorthandName(g.name, axis),
					longhands: pair,
					syntax:    fmt.Sprintf("<'%s'>{1,2}", pair[0]),
				})
			}
		case 2:
			if g.pattern == "%s" || strings.HasPrefix(g.pattern, "min-") || strings.HasPrefix(g.pattern, "max-") {
				continue // sizes have no shorthand
			}
			out = append(out, shorthandDef{
				name:      g.name,
				longhands: physical,
				syntax:    fmt.Sprintf("<'%s'>{1,2}", physical[0]),
			})
		}
	}

	// border sides
	for _, side := range append(append([]string(nil), physicalSides...), logicalSides...) {
		name := "border-" + side
		out = append(out, shorthandDef{
			name:      name,
			longhands: []string{name + "-width", name + "-style", name + "-color"},
			syntax:    fmt.Sprintf("<'%s-width'> || <'%s-style'> || <'%s-color'>", name, name, name),
		})
	}
	return out
}

// axisShorthandName returns margin-block or border-block-color
func axisShorthandName(group, axis string) string {
	if strings.HasPrefix(group, "border-") {
		return "border-" + axis + strings.TrimPrefix(group, "border")
	}
	return group + "-" + axis
}

func init() {
	for _, l := range longhands {
		allLonghands[l[0]] = compileLonghand(l[0], l[1], l[2])
	}
	for _, g := range logicalGroups {
		physical, logical := g.names()
		for i, names := range [2][]string{physical, logical} {
			for _, name := range names {
				def := compileLonghand(name, g.syntax, g.initial)
				def.Group, def.Logical = g.name, i == 1
				allLonghands[name] = def
			}
		}
	}
	for _, name := range notAnimatable {
		allLonghands[name].Animatable = false
	}

	for _, def := range shorthands {
		addShorthand(def)
	}
	for _, def := range groupShorthands() {
		addShorthand(def)
	}
	var all []string
	for _, name := range Longhands() {
		if name != "direction" && name != "unicode-bidi" {
			all = append(all, name)
		}
	}
	allShorthands["all"] = &Shorthand{Name: "all", Longhands: all, Syntax: grammar.MustParse("<any-value>")}

	tables[Style] = newTable(Style, true, true, func(string) bool { return true }, nil)
	tables[Keyframe] = newTable(Keyframe, true, false, isKeyframeProperty, nil)
	tables[FontFace] = newTable(FontFace, false, false, func(string) bool { return false }, fontFaceDescriptors)
	tables[Page] = newTable(Page, true, true, isPageProperty, pageDescriptors)
	tables[Margin] = newTable(Margin, true, true, isMarginProperty, nil)
	tables[PositionTry] = newTable(PositionTry, false, false, isPositionTryProperty, nil)
}

// newTable selects the longhands accepted by `keep`, then adds the
// descriptors, the shorthands whose longhands are all supported, and
// the aliases of the supported names.
func newTable(kind Kind, custom, priority bool, keep func(name string) bool, descriptors [][3]string) *Table {
	t := &Table{
		Kind:       kind,
		Custom:     custom,
		Priority:   priority,
		longhands:  map[string]*Definition{},
		shorthands: map[string]*Shorthand{},
		aliases:    map[string]string{},
		owners:     map[string][]*Shorthand{},
	}
	for name, def := range allLonghands {
		if keep(name) {
			t.longhands[name] = def
		}
	}
	for _, d := range descriptors {
		def := compileLonghand(d[0], d[1], d[2])
		def.Descriptor = true
		t.longhands[d[0]] = def
	}
	for name, sh := range allShorthands {
		if name == "all" && kind != Style {
			continue
		}
		supported := true
		for _, l := range sh.Longhands {
			if _, ok := t.longhands[l]; !ok {
				supported = false
				break
			}
		}
		if supported {
			t.shorthands[name] = sh
		}
	}
	for alias, target := range aliases {
		if _, ok := t.longhands[target]; ok {
			t.aliases[alias] = target
		} else if _, ok := t.shorthands[target]; ok {
			t.aliases[alias] = target
		}
	}

	for _, sh := range t.shorthands {
		if sh.Legacy || sh.Name == "all" {
			continue
		}
		for _, l := range sh.Longhands {
			t.owners[l] = append(t.owners[l], sh)
		}
	}
	for _, list := range t.owners {
		slices.SortFunc(list, func(a, b *Shorthand) bool {
			if len(a.Longhands) != len(b.Longhands) {
				return len(a.Longhands) > len(b.Longhands)
			}
			if pa, pb := a.Name[0] == '-', b.Name[0] == '-'; pa != pb {
				return pb
			}
			return a.Name < b.Name
		})
	}
	return t
}

var keyframeExcluded = utils.NewSet(
	"animation-delay", "animation-direction", "animation-duration", "animation-fill-mode",
	"animation-iteration-count", "animation-name", "animation-play-state", "animation-timeline",
)

func isKeyframeProperty(name string) bool { return !keyframeExcluded.Has(name) }

// the properties applying to the page context
var pagePrefixes = [...]string{
	"background", "border", "box-", "color", "counter-", "direction", "font", "letter-spacing",
	"line-height", "margin", "opacity", "outline", "padding", "quotes", "text-", "unicode-bidi",
	"visibility", "white-space", "word-", "-webkit-text",
}

func isPageProperty(name string) bool {
	if strings.HasPrefix(name, "border-") && strings.HasSuffix(name, "-radius") {
		return false
	}
	for _, prefix := range pagePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

var marginExtra = utils.NewSet(
	"content", "vertical-align", "baseline-source", "alignment-baseline", "baseline-shift",
	"width", "height", "min-width", "min-height", "max-width", "max-height",
	"block-size", "inline-size", "min-block-size", "min-inline-size", "max-block-size", "max-inline-size",
)

func isMarginProperty(name string) bool { return isPageProperty(name) || marginExtra.Has(name) }

var positionTryProperties = utils.NewSet(
	"position-anchor", "position-area", "align-self", "justify-self",
)

func isPositionTryProperty(name string) bool {
	if positionTryProperties.Has(name) {
		return true
	}
	def := allLonghands[name]
	switch def.Group {
	case "inset", "margin", "size", "min-size", "max-size":
		return true
	}
	return false
}

var fontFaceDescriptors = [][3]string{
	{"ascent-override", "[ normal | <percentage [0,∞]> ]{1,2}", "normal"},
	{"descent-override", "[ normal | <percentage [0,∞]> ]{1,2}", "normal"},
	{"font-display", "auto | block | swap | fallback | optional", "auto"},
	{"font-family", "<family-name>", ""},
	{"font-feature-settings", "normal | <font-feature-tag>#", "normal"},
	{"font-language-override", "normal | <string>", "normal"},
	{"font-named-instance", "auto | <string>", "auto"},
	{"font-size", "auto | <number [0,∞]>{1,2}", "auto"},
	{"font-style", "auto | normal | italic | left | right | oblique <angle [-90,90]>{0,2}", "auto"},
	{"font-variation-settings", "normal | <font-variation-tag>#", "normal"},
	{"font-weight", "auto | <font-weight-absolute>{1,2}", "auto"},
	{"font-width", "auto | <font-stretch-absolute>{1,2}", "auto"},
	{"line-gap-override", "[ normal | <percentage [0,∞]> ]{1,2}", "normal"},
	{"size-adjust", "<percentage [0,∞]>", "100%"},
	{"src", "[ <url> [ format( <any-value> ) ]? [ tech( <any-value> ) ]? | local( <any-value> ) ]#", ""},
	{"subscript-position-override", "[ normal | <percentage> ]{1,2}", "normal"},
	{"subscript-size-override", "[ normal | <percentage [0,∞]> ]{1,2}", "normal"},
	{"superscript-position-override", "[ normal | <percentage> ]{1,2}", "normal"},
	{"superscript-size-override", "[ normal | <percentage [0,∞]> ]{1,2}", "normal"},
	{"unicode-range", "<unicode-range>#", "U+0-10FFFF"},
}

var pageDescriptors = [][3]string{
	{"bleed", "auto | <length>", "auto"},
	{"marks", "none | [ crop || cross ]", "none"},
	{"page-orientation", "upright | rotate-left | rotate-right", "upright"},
	{"size", "<length [0,∞]>{1,2} | auto | [ <page-size> || [ portrait | landscape ] ]", "auto"},
}
