package grammar

import (
	"strings"

	"github.com/benoitkugler/cssom/css/parser"
	"github.com/benoitkugler/cssom/utils"
)

// terminal matches a single component value.
type terminal func(token parser.Token) (*Value, bool)

var (
	lengthUnits = utils.NewSet(
		"em", "rem", "ex", "rex", "cap", "rcap", "ch", "rch", "ic", "ric", "lh", "rlh",
		"vw", "svw", "lvw", "dvw", "vh", "svh", "lvh", "dvh", "vi", "svi", "lvi", "dvi",
		"vb", "svb", "lvb", "dvb", "vmin", "svmin", "lvmin", "dvmin", "vmax", "svmax", "lvmax", "dvmax",
		"cqw", "cqh", "cqi", "cqb", "cqmin", "cqmax",
		"cm", "mm", "q", "in", "pt", "pc", "px",
	)
	angleUnits      = utils.NewSet("deg", "grad", "rad", "turn")
	timeUnits       = utils.NewSet("s", "ms")
	frequencyUnits  = utils.NewSet("hz", "khz")
	resolutionUnits = utils.NewSet("dpi", "dpcm", "dppx", "x")
	flexUnits       = utils.NewSet("fr")
	decibelUnits    = utils.NewSet("db")
	semitonesUnits  = utils.NewSet("st")

	mathFunctions = utils.NewSet(
		"calc", "min", "max", "clamp", "round", "mod", "rem", "sin", "cos", "tan",
		"asin", "acos", "atan", "atan2", "pow", "sqrt", "hypot", "log", "exp", "abs", "sign",
	)

	// CSSWideKeywords may be used as the value of any property.
	CSSWideKeywords = utils.NewSet("initial", "inherit", "unset", "revert", "revert-layer")
)

// terminals are the component values matched on a single token.
var terminals = map[string]terminal{
	"length":     dimensionTerminal(lengthUnits, true),
	"angle":      dimensionTerminal(angleUnits, false),
	"time":       dimensionTerminal(timeUnits, false),
	"frequency":  dimensionTerminal(frequencyUnits, false),
	"resolution": dimensionTerminal(resolutionUnits, false),
	"flex":       dimensionTerminal(flexUnits, false),
	"decibel":    dimensionTerminal(decibelUnits, false),
	"semitones":  dimensionTerminal(semitonesUnits, false),
	"percentage": percentageTerminal,
	"number":     numberTerminal(false),
	"integer":    numberTerminal(true),

	"string":        stringTerminal,
	"url":           urlTerminal,
	"ident":         identTerminal,
	"custom-ident":  customIdent(),
	"dashed-ident":  dashedIdentTerminal,
	"unicode-range": unicodeRangeTerminal,

	"hex-color":      hexColorTerminal,
	"named-color":    keywordSet(namedColors),
	"system-color":   keywordSet(systemColors),
	"color-function": functionTerminal(colorFunctions),

	"image-function": functionTerminal(utils.NewSet(
		"url", "src", "image", "image-set", "-webkit-image-set", "cross-fade", "element", "paint",
		"linear-gradient", "radial-gradient", "conic-gradient",
		"repeating-linear-gradient", "repeating-radial-gradient", "repeating-conic-gradient",
		"-webkit-linear-gradient", "-webkit-radial-gradient",
		"-webkit-repeating-linear-gradient", "-webkit-repeating-radial-gradient",
	)),
	"basic-shape": functionTerminal(utils.NewSet(
		"inset", "circle", "ellipse", "polygon", "path", "rect", "xywh", "shape",
	)),
	"transform-function": functionTerminal(utils.NewSet(
		"matrix", "matrix3d", "translate", "translatex", "translatey", "translatez", "translate3d",
		"scale", "scalex", "scaley", "scalez", "scale3d", "rotate", "rotatex", "rotatey", "rotatez",
		"rotate3d", "skew", "skewx", "skewy", "perspective",
	)),
	"filter-function": functionTerminal(utils.NewSet(
		"blur", "brightness", "contrast", "drop-shadow", "grayscale", "hue-rotate",
		"invert", "opacity", "saturate", "sepia",
	)),
	"easing-function-call": functionTerminal(utils.NewSet("cubic-bezier", "steps", "linear")),
	"counter-function":     functionTerminal(utils.NewSet("counter", "counters")),
	"content-function":     functionTerminal(utils.NewSet("content", "string", "leader", "target-counter", "target-counters", "target-text", "quote")),
	"anchor-function":      functionTerminal(utils.NewSet("anchor", "anchor-size")),
	"shape-function":       functionTerminal(utils.NewSet("ray")),
	"symbols-function":     functionTerminal(utils.NewSet("symbols")),
	"font-function":        functionTerminal(utils.NewSet("local", "format", "tech", "stylistic", "styleset", "character-variant", "swash", "ornaments", "annotation")),
	"element-function":     functionTerminal(utils.NewSet("element")),
	"timeline-function":    functionTerminal(utils.NewSet("scroll", "view")),

	"keyframes-ident":    customIdent("none"),
	"counter-ident":      customIdent("none"),
	"grid-line-ident":    customIdent("span", "auto"),
	"container-ident":    customIdent("none", "and", "or", "not"),
	"page-ident":         customIdent("auto"),
	"transition-ident":   customIdent("none", "all"),
	"view-transition-id": customIdent("none", "auto", "match-element"),
	"area-ident":         customIdent("auto"),
	"scheme-ident":       customIdent("normal", "only"),
	"flow-ident":         customIdent("none", "auto"),

	"any-token": anyTokenTerminal,
}

func isMathFunction(token parser.Token) (parser.FunctionBlock, bool) {
	fn, ok := token.(parser.FunctionBlock)
	if !ok || len(parser.RemoveWhitespace(fn.Arguments)) == 0 {
		return fn, false
	}
	return fn, mathFunctions.Has(utils.AsciiLower(fn.Name))
}

func functionValue(fn parser.FunctionBlock) *Value {
	return &Value{
		Kind: FunctionValue,
		Name: utils.AsciiLower(fn.Name),
		Text: parser.Canonical([]parser.Token{fn}),
	}
}

func dimensionTerminal(units utils.Set, unitlessZero bool) terminal {
	return func(token parser.Token) (*Value, bool) {
		switch token := token.(type) {
		case parser.Dimension:
			unit := utils.AsciiLower(token.Unit)
			if !units.Has(unit) {
				return nil, false
			}
			return &Value{Kind: DimensionValue, Number: token.Float(), Unit: unit, Text: token.Canonical() + unit}, true
		case parser.Number:
			if unitlessZero && token.Float() == 0 {
				return &Value{Kind: DimensionValue, Unit: "px", Text: "0px"}, true
			}
		case parser.FunctionBlock:
			if fn, ok := isMathFunction(token); ok {
				return functionValue(fn), true
			}
		}
		return nil, false
	}
}

func percentageTerminal(token parser.Token) (*Value, bool) {
	switch token := token.(type) {
	case parser.Percentage:
		return &Value{Kind: PercentageValue, Number: token.Float(), Text: token.Canonical() + "%"}, true
	case parser.FunctionBlock:
		if fn, ok := isMathFunction(token); ok {
			return functionValue(fn), true
		}
	}
	return nil, false
}

func numberTerminal(integer bool) terminal {
	return func(token parser.Token) (*Value, bool) {
		switch token := token.(type) {
		case parser.Number:
			if integer && !token.IsInt() {
				return nil, false
			}
			return &Value{Kind: NumberValue, Number: token.Float(), Text: token.Canonical()}, true
		case parser.FunctionBlock:
			if fn, ok := isMathFunction(token); ok {
				return functionValue(fn), true
			}
		}
		return nil, false
	}
}

func stringTerminal(token parser.Token) (*Value, bool) {
	if s, ok := token.(parser.String); ok {
		return &Value{Kind: StringValue, Text: parser.SerializeString(s.Value), Name: s.Value}, true
	}
	return nil, false
}

func urlTerminal(token parser.Token) (*Value, bool) {
	switch token := token.(type) {
	case parser.URL:
		return &Value{Kind: URLValue, Text: parser.SerializeURL(token.Value), Name: token.Value}, true
	case parser.FunctionBlock:
		name := utils.AsciiLower(token.Name)
		if name != "url" && name != "src" {
			return nil, false
		}
		args := parser.RemoveWhitespace(token.Arguments)
		if len(args) == 0 {
			return nil, false
		}
		s, ok := args[0].(parser.String)
		if !ok {
			return nil, false
		}
		if name == "url" && len(args) == 1 {
			return &Value{Kind: URLValue, Text: parser.SerializeURL(s.Value), Name: s.Value}, true
		}
		v := functionValue(token)
		v.Kind = URLValue
		return v, true
	}
	return nil, false
}

func identTerminal(token parser.Token) (*Value, bool) {
	if id, ok := token.(parser.Ident); ok {
		return &Value{Kind: IdentValue, Text: parser.SerializeIdentifier(id.Value), Name: id.Value}, true
	}
	return nil, false
}

// customIdent returns a terminal accepting an identifier which is
// not a CSS-wide keyword, "default" or one of `excluded`.
func customIdent(excluded ...string) terminal {
	set := utils.NewSet(excluded...)
	return func(token parser.Token) (*Value, bool) {
		id, ok := token.(parser.Ident)
		if !ok {
			return nil, false
		}
		lower := utils.AsciiLower(id.Value)
		if CSSWideKeywords.Has(lower) || lower == "default" || set.Has(lower) {
			return nil, false
		}
		return &Value{Kind: IdentValue, Text: parser.SerializeIdentifier(id.Value), Name: id.Value}, true
	}
}

func dashedIdentTerminal(token parser.Token) (*Value, bool) {
	id, ok := token.(parser.Ident)
	if !ok || !strings.HasPrefix(id.Value, "--") || len(id.Value) == 2 {
		return nil, false
	}
	return &Value{Kind: IdentValue, Text: parser.SerializeIdentifier(id.Value), Name: id.Value}, true
}

func unicodeRangeTerminal(token parser.Token) (*Value, bool) {
	if r, ok := token.(parser.UnicodeRange); ok {
		return &Value{Kind: KeywordValue, Text: parser.Serialize([]parser.Token{r})}, true
	}
	return nil, false
}

func hexColorTerminal(token parser.Token) (*Value, bool) {
	if h, ok := token.(parser.Hash); ok && isHexColor(h.Value) {
		return &Value{Kind: ColorValue, Text: "#" + utils.AsciiLower(h.Value)}, true
	}
	return nil, false
}

func keywordSet(set utils.Set) terminal {
	return func(token parser.Token) (*Value, bool) {
		if id, ok := token.(parser.Ident); ok {
			if kw := utils.AsciiLower(id.Value); set.Has(kw) {
				return NewKeyword(kw), true
			}
		}
		return nil, false
	}
}

// functionTerminal accepts the functions whose name is in `names`,
// with at least one argument. The arguments are not validated.
func functionTerminal(names utils.Set) terminal {
	return func(token parser.Token) (*Value, bool) {
		fn, ok := token.(parser.FunctionBlock)
		if !ok || !names.Has(utils.AsciiLower(fn.Name)) || len(parser.RemoveWhitespace(fn.Arguments)) == 0 {
			return nil, false
		}
		return functionValue(fn), true
	}
}

// anyTokenTerminal accepts any component value, used for
// arguments which are not validated.
func anyTokenTerminal(token parser.Token) (*Value, bool) {
	if lit, ok := token.(parser.Literal); ok {
		return &Value{Kind: DelimValue, Text: lit.Value}, true
	}
	return &Value{Kind: KeywordValue, Text: parser.Canonical([]parser.Token{token})}, true
}
