package validation

import (
	"unicode/utf8"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/utils"
)

// minimizer returns the shortest equivalent form of a value
// matched against the grammar of a longhand, or false
// if the value is invalid for reasons the grammar can't express.
type minimizer func(v *grammar.Value) (*grammar.Value, bool)

var (
	minimizers map[string]minimizer

	// descriptors sharing their name with a property
	descriptorMinimizers map[pr.Kind]map[string]minimizer
)

func init() {
	minimizers = map[string]minimizer{
		"animation-range-end":    perItem(minimizeRange("100%")),
		"animation-range-start":  perItem(minimizeRange("0%")),
		"background-position":    perItem(completePosition),
		"background-size":        perItem(minimizeBgSize),
		"border-image-outset":    minimizeSides,
		"border-image-repeat":    minimizePair,
		"border-image-slice":     minimizeSlice,
		"border-image-width":     minimizeSides,
		"border-spacing":         minimizePair,
		"clip-path":              dropBox("border-box"),
		"corner-shape":           minimizeSides,
		"counter-increment":      dropCounterValue("1"),
		"counter-reset":          dropCounterValue("0"),
		"counter-set":            dropCounterValue("0"),
		"cue-after":              minimizeCue,
		"cue-before":             minimizeCue,
		"display":                minimizeDisplay,
		"font-style":             minimizeFontStyle,
		"grid-auto-flow":         minimizeGridAutoFlow,
		"grid-template-areas":    minimizeTemplateAreas,
		"grid-template-columns":  minimizeTrackList,
		"grid-template-rows":     minimizeTrackList,
		"hyphenate-limit-chars":  minimizeHyphenateLimitChars,
		"image-resolution":       minimizeImageResolution,
		"initial-letter":         minimizeInitialLetter,
		"masonry-auto-flow":      minimizeMasonryAutoFlow,
		"mask-border-outset":     minimizeSides,
		"mask-border-repeat":     minimizePair,
		"mask-border-slice":      minimizeSlice,
		"mask-border-width":      minimizeSides,
		"mask-position":          perItem(completePosition),
		"mask-size":              perItem(minimizeBgSize),
		"object-fit":             minimizeObjectFit,
		"object-position":        completePosition,
		"offset-anchor":          completePosition,
		"offset-path":            minimizeOffsetPath,
		"offset-position":        completePosition,
		"offset-rotate":          minimizeOffsetRotate,
		"paint-order":            minimizePaintOrder,
		"perspective-origin":     completePosition,
		"scale":                  minimizeScale,
		"scroll-snap-align":      minimizePair,
		"scroll-snap-type":       minimizeSnapType,
		"shape-outside":          dropBox("margin-box"),
		"text-align-all":         checkAlignString,
		"text-emphasis-position": minimizeEmphasisPosition,
		"text-justify":           minimizeTextJustify,
		"translate":              minimizeTranslate,
		"voice-pitch":            dropFullLevel,
		"voice-range":            dropFullLevel,
		"voice-rate":             dropFullLevel,
	}
	for _, side := range [...]string{
		"top-left", "top-right", "bottom-right", "bottom-left",
		"start-start", "start-end", "end-end", "end-start",
	} {
		minimizers["border-"+side+"-radius"] = minimizePair
	}
	for _, side := range [...]string{
		"top", "right", "bottom", "left", "block-start", "block-end", "inline-start", "inline-end",
	} {
		minimizers["overflow-clip-margin-"+side] = minimizeClipMargin
	}
	for _, axis := range [...]string{"x", "y", "block", "inline"} {
		minimizers["overflow-"+axis] = minimizeOverflow
	}

	descriptorMinimizers = map[pr.Kind]map[string]minimizer{
		pr.FontFace: {
			"ascent-override":               minimizePair,
			"descent-override":              minimizePair,
			"font-size":                     minimizePair,
			"font-style":                    minimizeFontStyle,
			"font-weight":                   minimizePair,
			"font-width":                    minimizePair,
			"line-gap-override":             minimizePair,
			"subscript-position-override":   minimizePair,
			"subscript-size-override":       minimizePair,
			"superscript-position-override": minimizePair,
			"superscript-size-override":     minimizePair,
		},
		pr.Page: {
			"size": minimizePair,
		},
	}
}

// minimizerFor returns the minimizer of the longhand `name` in
// the declaration blocks of the given kind, or nil.
func minimizerFor(kind pr.Kind, name string) minimizer {
	if byName, ok := descriptorMinimizers[kind]; ok {
		if m, ok := byName[name]; ok {
			return m
		}
		if kind == pr.FontFace {
			return nil
		}
	}
	return minimizers[name]
}

// perItem applies `m` to each item of a comma separated list.
func perItem(m minimizer) minimizer {
	return func(v *grammar.Value) (*grammar.Value, bool) {
		if v.Kind != grammar.ListValue || v.Sep != ", " {
			return m(v)
		}
		items := make([]*grammar.Value, len(v.Children))
		for i, item := range v.Children {
			if item == nil {
				continue
			}
			min, ok := m(item)
			if !ok {
				return nil, false
			}
			items[i] = min
		}
		out := *v
		out.Children = items
		return &out, true
	}
}

func list(items ...*grammar.Value) *grammar.Value {
	if len(items) == 1 {
		return items[0]
	}
	return grammar.NewList(" ", items...)
}

// sidesCount returns the number of values required to
// represent the four sides `texts`.
func sidesCount(texts []string) int {
	n := len(texts)
	if n == 4 && texts[3] == texts[1] {
		n = 3
	}
	if n == 3 && texts[2] == texts[0] {
		n = 2
	}
	if n == 2 && texts[1] == texts[0] {
		n = 1
	}
	return n
}

func minimizeSides(v *grammar.Value) (*grammar.Value, bool) {
	items := v.Items()
	return list(items[:sidesCount(valueTexts(items))]...), true
}

func minimizePair(v *grammar.Value) (*grammar.Value, bool) {
	items := v.Items()
	if len(items) == 2 && items[0].String() == items[1].String() {
		return items[0], true
	}
	return v, true
}

// <number-percentage>{1,4} fill?
func minimizeSlice(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 {
		return v, true
	}
	sides, _ := minimizeSides(v.Children[0])
	if v.Children[1] == nil {
		return sides, true
	}
	return grammar.NewList(" ", sides, v.Children[1]), true
}

// completePosition adds the implicit 'center' of a single value <position>.
func completePosition(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue || (v.Type != "position" && v.Type != "bg-position") {
		return v, true
	}
	if v.IsKeyword("top") || v.IsKeyword("bottom") {
		return grammar.NewList(" ", grammar.NewKeyword("center"), v), true
	}
	return grammar.NewList(" ", v, grammar.NewKeyword("center")), true
}

func minimizeBgSize(v *grammar.Value) (*grammar.Value, bool) {
	if items := v.Items(); len(items) == 2 && items[1].IsKeyword("auto") {
		return items[0], true
	}
	return v, true
}

// dropBox removes the default reference box following a shape.
func dropBox(box string) minimizer {
	return func(v *grammar.Value) (*grammar.Value, bool) {
		if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0] != nil && v.Children[1].IsKeyword(box) {
			return v.Children[0], true
		}
		return v, true
	}
}

func minimizeOffsetPath(v *grammar.Value) (*grammar.Value, bool) {
	v, _ = dropBox("border-box")(v)
	switch {
	case v.Kind == grammar.FunctionValue && v.Name == "path":
		return dropFillRule(v), true
	case v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0] != nil && v.Children[0].Name == "path":
		return grammar.NewList(" ", dropFillRule(v.Children[0]), v.Children[1]), true
	}
	return v, true
}

// dropFillRule removes the fill rule of a path() function,
// which is meaningless for a motion path.
func dropFillRule(path *grammar.Value) *grammar.Value {
	tokens := pa.RemoveWhitespace(pa.TokenizeString(path.Text, true))
	if len(tokens) != 1 {
		return path
	}
	fn, ok := tokens[0].(pa.FunctionBlock)
	if !ok {
		return path
	}
	head, tail, found := splitFirst(fn.Arguments, ",")
	if !found {
		return path
	}
	rule := pa.RemoveWhitespace(head)
	if len(rule) != 1 {
		return path
	}
	if id, ok := rule[0].(pa.Ident); !ok || !utils.IsIn([]string{"evenodd", "nonzero"}, utils.AsciiLower(id.Value)) {
		return path
	}
	out := *path
	out.Text = pa.Canonical([]pa.Token{pa.NewFunction(fn.Name, pa.TrimWhitespace(tail))})
	return &out
}

// [ <counter-ident> <integer>? ]+, omitting the default value
func dropCounterValue(defaultValue string) minimizer {
	return func(v *grammar.Value) (*grammar.Value, bool) {
		if v.IsKeyword("none") {
			return v, true
		}
		counters := v.Items()
		out := make([]*grammar.Value, len(counters))
		for i, counter := range counters {
			out[i] = counter
			if counter.Kind == grammar.ListValue && len(counter.Children) == 2 && counter.Children[1].String() == defaultValue {
				out[i] = counter.Children[0]
			}
		}
		return grammar.NewList(" ", out...), true
	}
}

// <url> <decibel>?, omitting 0db
func minimizeCue(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 {
		if db := v.Children[1]; db == nil || (db.Kind == grammar.DimensionValue && db.Number == 0) {
			return v.Children[0], true
		}
	}
	return v, true
}

func keywordText(v *grammar.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// minimizeDisplay returns the shortest alias of a multi keyword display.
func minimizeDisplay(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue {
		return v, true
	}
	var keywords []string
	if v.Type == "display-listitem" {
		outside, inside := keywordText(v.Children[0]), keywordText(v.Children[1])
		if outside != "" && outside != "block" {
			keywords = append(keywords, outside)
		}
		if inside != "" && inside != "flow" {
			keywords = append(keywords, inside)
		}
		keywords = append(keywords, "list-item")
	} else {
		outside, inside := keywordText(v.Children[0]), keywordText(v.Children[1])
		if inside == "" {
			inside = "flow"
		}
		if outside == "" {
			outside = "block"
			if inside == "ruby" || inside == "math" {
				outside = "inline"
			}
		}
		switch {
		case outside == "inline" && inside == "flow-root":
			keywords = []string{"inline-block"}
		case outside == "inline" && utils.IsIn([]string{"table", "flex", "grid"}, inside):
			keywords = []string{"inline-" + inside}
		case outside == "inline" && utils.IsIn([]string{"ruby", "math"}, inside):
			keywords = []string{inside}
		case inside == "flow":
			keywords = []string{outside}
		case outside == "block" && !utils.IsIn([]string{"ruby", "math"}, inside):
			keywords = []string{inside}
		default:
			keywords = []string{outside, inside}
		}
	}
	items := make([]*grammar.Value, len(keywords))
	for i, kw := range keywords {
		items[i] = grammar.NewKeyword(kw)
	}
	return list(items...), true
}

// oblique <angle>{0,2}, where 14deg is the default angle
func minimizeFontStyle(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 || !v.Children[0].IsKeyword("oblique") {
		return v, true
	}
	angles := v.Children[1].Items()
	if len(angles) == 2 && angles[0].String() == angles[1].String() {
		angles = angles[:1]
	}
	if len(angles) == 1 && angles[0].String() == "14deg" {
		angles = nil
	}
	return list(append([]*grammar.Value{v.Children[0]}, angles...)...), true
}

func minimizeHyphenateLimitChars(v *grammar.Value) (*grammar.Value, bool) {
	items := v.Items()
	texts := valueTexts(items)
	n := len(items)
	if n == 3 && texts[2] == texts[1] {
		n = 2
	}
	if n == 2 && texts[1] == "auto" {
		n = 1
	}
	return list(items[:n]...), true
}

// [ from-image || <resolution> ] && snap?
func minimizeImageResolution(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 {
		return v, true
	}
	source := v.Children[0]
	if source.Kind != grammar.ListValue || len(source.Children) != 2 || source.Children[0] == nil {
		return v, true
	}
	if res := source.Children[1]; res != nil && res.Kind == grammar.DimensionValue &&
		res.Number == 1 && (res.Unit == "dppx" || res.Unit == "x") {
		source = source.Children[0]
	}
	if v.Children[1] == nil {
		return source, true
	}
	return grammar.NewList(" ", source, v.Children[1]), true
}

func minimizeInitialLetter(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[1].IsKeyword("drop") {
		return v.Children[0], true
	}
	return v, true
}

func minimizeObjectFit(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0].IsKeyword("contain") && v.Children[1] != nil {
		return v.Children[1], true
	}
	return v, true
}

// [ auto | reverse ] || <angle>, where reverse is auto 180deg
func minimizeOffsetRotate(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 || v.Children[0] == nil || v.Children[1] == nil {
		return v, true
	}
	kw, angle := v.Children[0].Text, v.Children[1]
	if angle.Kind != grammar.DimensionValue || angle.Unit != "deg" {
		return v, true
	}
	switch angle.Number {
	case 0:
		return v.Children[0], true
	case 180, -180:
		if kw == "auto" {
			return grammar.NewKeyword("reverse"), true
		}
		return grammar.NewKeyword("auto"), true
	}
	return v, true
}

// <visual-box> || <length [0,∞]>
func minimizeClipMargin(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0] != nil {
		if length := v.Children[1]; length == nil || (length.Kind == grammar.DimensionValue && length.Number == 0) {
			return v.Children[0], true
		}
	}
	return v, true
}

func minimizeOverflow(v *grammar.Value) (*grammar.Value, bool) {
	if v.IsKeyword("overlay") {
		return grammar.NewKeyword("auto"), true
	}
	return v, true
}

var paintOrderDefault = [...]string{"fill", "stroke", "markers"}

// completePaintOrder appends the missing keywords in their default order
func completePaintOrder(keywords []string) []string {
	out := append([]string(nil), keywords...)
	for _, kw := range paintOrderDefault {
		if !utils.IsIn(keywords, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func minimizePaintOrder(v *grammar.Value) (*grammar.Value, bool) {
	if v.IsKeyword("normal") {
		return v, true
	}
	keywords := valueTexts(v.Items())
	if len(utils.NewSet(keywords...)) != len(keywords) {
		return nil, false // duplicated keyword
	}
	full := completePaintOrder(keywords)
	for n := 0; n <= len(keywords); n++ {
		if !equalStrings(completePaintOrder(keywords[:n]), full) {
			continue
		}
		if n == 0 {
			return grammar.NewKeyword("normal"), true
		}
		items := make([]*grammar.Value, n)
		for i, kw := range keywords[:n] {
			items[i] = grammar.NewKeyword(kw)
		}
		return list(items...), true
	}
	return v, true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// [ <number> | <percentage> ]{1,3}, the third defaulting to 1
// and the second to the first
func minimizeScale(v *grammar.Value) (*grammar.Value, bool) {
	if v.IsKeyword("none") {
		return v, true
	}
	items := v.Items()
	texts := valueTexts(items)
	n := len(items)
	if n == 3 && (texts[2] == "1" || texts[2] == "100%") {
		n = 2
	}
	if n == 2 && texts[1] == texts[0] {
		n = 1
	}
	return list(items[:n]...), true
}

func minimizeSnapType(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 {
		if s := v.Children[1]; s == nil || s.IsKeyword("proximity") {
			return v.Children[0], true
		}
	}
	return v, true
}

func minimizeEmphasisPosition(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 {
		if side := v.Children[1]; side == nil || side.IsKeyword("right") {
			return v.Children[0], true
		}
	}
	return v, true
}

// checkAlignString only accepts single character strings.
func checkAlignString(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.StringValue {
		return v, utf8.RuneCountInString(v.Name) == 1
	}
	return v, true
}

func minimizeTextJustify(v *grammar.Value) (*grammar.Value, bool) {
	if v.IsKeyword("distribute") {
		return grammar.NewKeyword("inter-character"), true
	}
	if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0].IsKeyword("distribute") {
		return grammar.NewList(" ", grammar.NewKeyword("inter-character"), v.Children[1]), true
	}
	return v, true
}

func isZero(v *grammar.Value) bool {
	return (v.Kind == grammar.DimensionValue || v.Kind == grammar.PercentageValue) && v.Number == 0
}

// <length-percentage> [ <length-percentage> <length>? ]?
func minimizeTranslate(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 {
		return v, true
	}
	items := []*grammar.Value{v.Children[0]}
	if rest := v.Children[1]; rest != nil { // <length-percentage> <length>?
		items = append(items, rest.Items()...)
	}
	n := len(items)
	if n == 3 && isZero(items[2]) && items[2].Kind == grammar.DimensionValue {
		n = 2
	}
	if n == 2 && isZero(items[1]) {
		n = 1
	}
	return list(items[:n]...), true
}

// minimizeRange omits the default offset of a <timeline-range-name>.
func minimizeRange(defaultOffset string) minimizer {
	return func(v *grammar.Value) (*grammar.Value, bool) {
		if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0] != nil {
			if offset := v.Children[1]; offset == nil || offset.String() == defaultOffset {
				return v.Children[0], true
			}
		}
		return v, true
	}
}

// [ pack | next ] || [ definite-first | ordered ], omitting the defaults
func minimizeMasonryAutoFlow(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 {
		return v, true
	}
	flow, order := v.Children[0], v.Children[1]
	if order.IsKeyword("definite-first") {
		order = nil
	}
	if flow.IsKeyword("pack") && order != nil {
		flow = nil
	}
	switch {
	case flow == nil && order == nil:
		return grammar.NewKeyword("pack"), true
	case order == nil:
		return flow, true
	case flow == nil:
		return order, true
	}
	return grammar.NewList(" ", flow, order), true
}

// <keyword> || <percentage>, omitting a 100% following the keyword
func dropFullLevel(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind != grammar.ListValue || len(v.Children) != 2 || v.Children[0] == nil {
		return v, true
	}
	if level := v.Children[1]; level == nil || (level.Kind == grammar.PercentageValue && level.Number == 100) {
		return v.Children[0], true
	}
	return v, true
}
