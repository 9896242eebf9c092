package grammar

import (
	"fmt"
	"sync"
)

// composite types, defined from other productions
var (
	registryLock sync.RWMutex
	registry     = map[string]Node{}
)

// Register compiles `def` and makes it available as the type <name>.
// It panics on invalid definitions or if `name` is already registered.
func Register(name, def string) {
	node := MustParse(def)
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, has := registry[name]; has {
		panic(fmt.Sprintf("type <%s> already registered", name))
	}
	if _, has := terminals[name]; has {
		panic(fmt.Sprintf("type <%s> is a terminal", name))
	}
	registry[name] = node
}

// IsDefined returns true if <name> is a terminal or a registered type.
func IsDefined(name string) bool {
	if _, ok := terminals[name]; ok {
		return true
	}
	_, ok := lookupType(name)
	return ok
}

func lookupType(name string) (Node, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	n, ok := registry[name]
	return n, ok
}

// Undefined returns the names of the types and properties referenced
// in `node` which are neither terminals, registered types nor
// properties known by `defs`.
func Undefined(node Node, defs Definitions) []string {
	var out []string
	Walk(node, func(n Node) {
		switch n := n.(type) {
		case *Type:
			if !IsDefined(n.Name) {
				out = append(out, "<"+n.Name+">")
			}
		case *PropertyRef:
			if defs == nil {
				out = append(out, n.String())
			} else if _, ok := defs.Property(n.Name); !ok {
				out = append(out, n.String())
			}
		}
	})
	return out
}

func init() {
	for _, t := range [...][2]string{
		{"any-value", "<any-token>+"},
		{"length-percentage", "<length> | <percentage>"},
		{"number-percentage", "<number> | <percentage>"},
		{"angle-percentage", "<angle> | <percentage>"},
		{"time-percentage", "<time> | <percentage>"},
		{"frequency-percentage", "<frequency> | <percentage>"},
		{"ratio", "<number [0,∞]> [ '/' <number [0,∞]> ]?"},

		{"color", "<hex-color> | <named-color> | currentcolor | transparent | <color-function> | <system-color>"},
		{"image", "<url> | <image-function>"},
		{"line-style", "none | hidden | dotted | dashed | solid | double | groove | ridge | inset | outset"},
		{"line-width", "<length [0,∞]> | thin | medium | thick"},
		{"visual-box", "content-box | padding-box | border-box"},
		{"layout-box", "<visual-box> | margin-box"},
		{"paint-box", "<visual-box> | fill-box | stroke-box"},
		{"coord-box", "<paint-box> | view-box"},
		{"geometry-box", "<visual-box> | margin-box | fill-box | stroke-box | view-box"},
		{"shape-box", "<visual-box> | margin-box"},

		{"position", "[ [ left | right ] <length-percentage> ] && [ [ top | bottom ] <length-percentage> ] | " +
			"[ left | center | right | <length-percentage> ] [ top | center | bottom | <length-percentage> ] | " +
			"left | center | right | top | bottom | <length-percentage>"},
		{"bg-position", "<position> | " +
			"[ center | [ left | right ] <length-percentage>? ] && [ center | [ top | bottom ] <length-percentage>? ]"},
		{"bg-size", "[ <length-percentage [0,∞]> | auto ]{1,2} | cover | contain"},
		{"bg-clip", "<visual-box> | border-area | text"},
		{"repeat-style", "repeat-x | repeat-y | [ repeat | space | round | no-repeat ]{1,2}"},
		{"attachment", "scroll | fixed | local"},
		{"bg-image", "none | <image>"},
		{"shadow", "<color>? && [ <length>{2} <length [0,∞]>? <length>? ] && inset?"},
		{"spread-shadow", "<shadow>"},

		{"easing-function", "linear | ease | ease-in | ease-out | ease-in-out | step-start | step-end | <easing-function-call>"},
		{"single-animation-iteration-count", "infinite | <number [0,∞]>"},
		{"single-animation-direction", "normal | reverse | alternate | alternate-reverse"},
		{"single-animation-fill-mode", "none | forwards | backwards | both"},
		{"single-animation-play-state", "running | paused"},
		{"single-animation-timeline", "auto | none | <dashed-ident> | scroll() | view() | <timeline-function>"},
		{"single-animation-composition", "replace | add | accumulate"},
		{"timeline-range-name", "cover | contain | entry | exit | entry-crossing | exit-crossing"},
		{"single-transition-property", "all | <transition-ident>"},
		{"transition-behavior-value", "normal | allow-discrete"},

		{"absolute-size", "xx-small | x-small | small | medium | large | x-large | xx-large | xxx-large"},
		{"relative-size", "larger | smaller"},
		{"family-name", "<string> | <custom-ident>+"},
		{"generic-family", "serif | sans-serif | cursive | fantasy | monospace | system-ui | emoji | math | fangsong | " +
			"ui-serif | ui-sans-serif | ui-monospace | ui-rounded"},
		{"font-weight-absolute", "normal | bold | <number [1,1000]>"},
		{"font-stretch-absolute", "normal | ultra-condensed | extra-condensed | condensed | semi-condensed | " +
			"semi-expanded | expanded | extra-expanded | ultra-expanded | <percentage [0,∞]>"},
		{"font-style-value", "normal | italic | oblique <angle [-90,90]>?"},
		{"font-variant-css2", "normal | small-caps"},
		{"font-width-css3", "normal | ultra-condensed | extra-condensed | condensed | semi-condensed | " +
			"semi-expanded | expanded | extra-expanded | ultra-expanded"},
		{"font-feature-tag", "<string> [ <integer [0,∞]> | on | off ]?"},
		{"font-variation-tag", "<string> <number>"},
		{"common-lig-values", "common-ligatures | no-common-ligatures"},
		{"discretionary-lig-values", "discretionary-ligatures | no-discretionary-ligatures"},
		{"historical-lig-values", "historical-ligatures | no-historical-ligatures"},
		{"contextual-alt-values", "contextual | no-contextual"},
		{"numeric-figure-values", "lining-nums | oldstyle-nums"},
		{"numeric-spacing-values", "proportional-nums | tabular-nums"},
		{"numeric-fraction-values", "diagonal-fractions | stacked-fractions"},
		{"east-asian-variant-values", "jis78 | jis83 | jis90 | jis04 | simplified | traditional"},
		{"east-asian-width-values", "full-width | proportional-width"},

		{"line-names", "'[' <custom-ident>* ']'"},
		{"track-breadth", "<length-percentage [0,∞]> | <flex [0,∞]> | min-content | max-content | auto"},
		{"track-size", "<track-breadth> | minmax( <track-breadth> ',' <track-breadth> ) | fit-content( <length-percentage [0,∞]> )"},
		{"track-repeat", "repeat( <any-value> )"},
		{"name-repeat", "repeat( [ <integer [1,∞]> | auto-fill ] ',' <line-names>+ )"},
		{"track-list", "[ <line-names>? [ <track-size> | <track-repeat> ] ]+ <line-names>?"},
		{"grid-line", "auto | <grid-line-ident> | [ <integer> && <grid-line-ident>? ] | [ span && [ <integer [1,∞]> || <grid-line-ident> ] ]"},
		{"baseline-position", "[ first | last ]? baseline"},
		{"overflow-position", "unsafe | safe"},
		{"self-position", "center | start | end | self-start | self-end | flex-start | flex-end"},
		{"content-position", "center | start | end | flex-start | flex-end"},
		{"content-distribution", "space-between | space-around | space-evenly | stretch"},

		{"counter-style", "<counter-ident> | <symbols-function>"},
		{"quote", "open-quote | close-quote | no-open-quote | no-close-quote"},
		{"content-item", "<string> | <counter-function> | <image> | <quote> | <content-function>"},

		{"margin-width", "<length-percentage> | auto | <anchor-function>"},
		{"padding-width", "<length-percentage [0,∞]>"},
		{"inset-value", "auto | <length-percentage> | <anchor-function>"},
		{"size-value", "auto | <length-percentage [0,∞]> | min-content | max-content | fit-content | " +
			"fit-content( <length-percentage [0,∞]> ) | stretch | -webkit-fill-available | <anchor-function>"},
		{"max-size-value", "none | <length-percentage [0,∞]> | min-content | max-content | fit-content | " +
			"fit-content( <length-percentage [0,∞]> ) | stretch | -webkit-fill-available | <anchor-function>"},
		{"border-radius-value", "<length-percentage [0,∞]>{1,2}"},
		{"overflow-value", "visible | hidden | clip | scroll | auto"},
		{"text-decoration-line-value", "none | [ underline || overline || line-through || blink ] | spelling-error | grammar-error"},
		{"text-decoration-style-value", "solid | double | dotted | dashed | wavy"},
		{"text-emphasis-style-value", "none | [ [ filled | open ] || [ dot | circle | double-circle | triangle | sesame ] ] | <string>"},
		{"mask-reference", "none | <image>"},
		{"masking-mode", "alpha | luminance | match-source"},
		{"compositing-operator", "add | subtract | intersect | exclude"},
		{"transform-list", "<transform-function>+"},
		{"filter-value-list", "[ <filter-function> | <url> ]+"},
		{"outline-style-value", "auto | <line-style>"},
		{"paint", "none | <color> | <url> [ none | <color> ]? | context-fill | context-stroke"},
		{"display-outside", "block | inline | run-in"},
		{"display-inside", "flow | flow-root | table | flex | grid | ruby | math"},
		{"display-internal", "table-row-group | table-header-group | table-footer-group | table-row | table-cell | " +
			"table-column-group | table-column | table-caption | ruby-base | ruby-text | ruby-base-container | ruby-text-container"},
		{"display-box", "contents | none"},
		{"display-legacy", "inline-block | inline-table | inline-flex | inline-grid | -webkit-box | -webkit-inline-box"},
		{"page-size", "a5 | a4 | a3 | b5 | b4 | jis-b5 | jis-b4 | letter | legal | ledger"},
		{"display-listitem", "<display-outside>? && [ flow | flow-root ]? && list-item"},

		{"keyframes-name", "<keyframes-ident> | <string>"},
		{"blend-mode", "normal | multiply | screen | overlay | darken | lighten | color-dodge | color-burn | " +
			"hard-light | soft-light | difference | exclusion | hue | saturation | color | luminosity"},
		{"cursor-keyword", "auto | default | none | context-menu | help | pointer | progress | wait | cell | crosshair | " +
			"text | vertical-text | alias | copy | move | no-drop | not-allowed | grab | grabbing | e-resize | n-resize | " +
			"ne-resize | nw-resize | s-resize | se-resize | sw-resize | w-resize | ew-resize | ns-resize | nesw-resize | " +
			"nwse-resize | col-resize | row-resize | all-scroll | zoom-in | zoom-out"},
		{"position-area-keyword", "left | center | right | span-left | span-right | x-start | x-end | span-x-start | " +
			"span-x-end | self-x-start | self-x-end | span-self-x-start | span-self-x-end | span-all | top | bottom | " +
			"span-top | span-bottom | y-start | y-end | span-y-start | span-y-end | self-y-start | self-y-end | " +
			"span-self-y-start | span-self-y-end | block-start | block-end | span-block-start | span-block-end | " +
			"inline-start | inline-end | span-inline-start | span-inline-end | self-block-start | self-block-end | " +
			"self-inline-start | self-inline-end | start | end | span-start | span-end | self-start | self-end"},
		{"try-tactic", "flip-block || flip-inline || flip-start"},
		{"text-shadow-value", "<color>? && <length>{2,3}"},
		{"family-list", "[ <generic-family> | <family-name> ]#"},
		{"system-font", "caption | icon | menu | message-box | small-caption | status-bar"},
		{"font-variant-caps-value", "small-caps | all-small-caps | petite-caps | all-petite-caps | unicase | titling-caps"},
		{"baseline-source-keyword", "first | last"},
	} {
		Register(t[0], t[1])
	}
}
