package validation

import (
	"strings"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/utils"
)

// SerializeShorthand returns the value of the shorthand `sh` representing
// `values`, the declared values of its longhands in the order of sh.Longhands,
// or false if the longhands can't be represented by the shorthand.
// The returned value is the shortest one expanding to `values`.
func SerializeShorthand(table *pr.Table, sh *pr.Shorthand, values []DeclaredValue) (string, bool) {
	if len(values) != len(sh.Longhands) || len(values) == 0 || sh.Legacy {
		return "", false
	}
	var pending, keyword DeclaredValue
	for _, v := range values {
		switch v.(type) {
		case WideKeyword:
			keyword = v
		case Pending:
			pending = v
		}
	}
	if keyword != nil {
		for _, v := range values {
			if v != keyword {
				return "", false
			}
		}
		return keyword.String(), true
	}
	if sh.Name == "all" {
		return "", false
	}

	c := collapse{table: table, sh: sh, texts: make(map[string]string, len(values))}
	if pending != nil {
		p := pending.(Pending)
		if p.Shorthand != sh.Name {
			return "", false
		}
		for i, l := range sh.Longhands {
			if values[i] == pending {
				continue
			}
			if v, ok := values[i].(*grammar.Value); !ok || !sh.IsResetOnly(l) || v.String() != c.initial(l) {
				return "", false
			}
		}
		return p.Text, true
	}

	for i, l := range sh.Longhands {
		if _, ok := values[i].(*grammar.Value); !ok {
			return "", false
		}
		c.texts[l] = values[i].String()
	}
	var (
		candidate string
		ok        bool
	)
	if sh.Repeated {
		candidate, ok = collapseLayers(c)
	} else {
		candidate, ok = collapserFor(sh)(c)
	}
	if !ok || !c.verify(candidate) {
		return "", false
	}
	return candidate, true
}

// collapse stores the serialized values of the longhands
// of a shorthand, or of one layer of a repeated shorthand.
type collapse struct {
	table *pr.Table
	sh    *pr.Shorthand
	texts map[string]string
	layer bool
}

func (c collapse) get(longhand string) string { return c.texts[longhand] }

// initial returns the canonical initial value of `longhand`.
func (c collapse) initial(longhand string) string {
	v, err := parseText(c.table, longhand, initialValue(c.table, longhand))
	if err != nil {
		return initialValue(c.table, longhand)
	}
	return v.String()
}

func (c collapse) isInitial(longhand string) bool { return c.get(longhand) == c.initial(longhand) }

func (c collapse) join(longhands []string) string {
	parts := make([]string, len(longhands))
	for i, l := range longhands {
		parts[i] = c.get(l)
	}
	return strings.Join(parts, " ")
}

// verify returns true if `candidate` expands to the stored values.
func (c collapse) verify(candidate string) bool {
	if c.layer {
		return c.verifyLayer(candidate)
	}
	props, err := expandShorthand(c.table, c.sh, pa.TokenizeString(candidate, true))
	if err != nil {
		return false
	}
	for _, p := range props {
		if p.Value.String() != c.texts[p.Name] {
			return false
		}
	}
	return true
}

// verifyLayer ignores the reset only longhands.
func (c collapse) verifyLayer(candidate string) bool {
	v, ok := grammar.Match(pa.TokenizeString(candidate, true), c.sh.Syntax, c.table)
	if !ok {
		return false
	}
	texts, err := expanderFor(c.sh)(c.sh, v)
	if err != nil {
		return false
	}
	for _, l := range c.sh.Longhands {
		if c.sh.IsResetOnly(l) {
			continue
		}
		text, ok := texts[l]
		if !ok {
			text = initialValue(c.table, l)
		}
		value, err := parseText(c.table, l, text)
		if err != nil || value.String() != c.texts[l] {
			return false
		}
	}
	return true
}

// collapser returns a candidate value for a shorthand,
// which is then verified.
type collapser func(c collapse) (string, bool)

var collapsers map[string]collapser

func init() {
	collapsers = map[string]collapser{
		"border":                     collapseBorder,
		"border-block":               collapseBorderAxis,
		"border-inline":              collapseBorderAxis,
		"border-radius":              collapseRadius,
		"border-block-start-radius":  collapseRadius,
		"border-block-end-radius":    collapseRadius,
		"border-inline-start-radius": collapseRadius,
		"border-inline-end-radius":   collapseRadius,
		"border-image":               collapseBorderImage("border-image", false),
		"container":                  collapseContainer,
		"corners":                    collapseCorners,
		"flex":                       collapseFlex,
		"font":                       collapseFont,
		"font-synthesis":             collapseFontSynthesis,
		"font-variant":               collapseFontVariant,
		"grid":                       collapseGrid,
		"grid-area":                  collapseGridLines,
		"grid-column":                collapseGridLines,
		"grid-row":                   collapseGridLines,
		"grid-template":              collapseGridTemplate,
		"line-clamp":                 collapseLineClamp,
		"-webkit-line-clamp":         collapseWebkitLineClamp,
		"mask-border":                collapseBorderImage("mask-border", true),
		"offset":                     collapseOffset,
		"text-align":                 collapseTextAlign,
		"text-spacing":               collapseTextSpacing,
		"white-space":                collapseWhiteSpace,
	}
}

func collapserFor(sh *pr.Shorthand) collapser {
	if col, ok := collapsers[sh.Name]; ok {
		return col
	}
	switch syntax := sh.Syntax.(type) {
	case *grammar.Repeat:
		if !syntax.Comma && syntax.Min == 1 && syntax.Max == len(sh.Longhands) {
			switch syntax.Max {
			case 4:
				return collapseFourSides
			case 2:
				return collapsePair
			}
		}
	case *grammar.PropertyRef:
		return collapseSame
	}
	return shortest
}

func (c collapse) values() []string {
	out := make([]string, len(c.sh.Longhands))
	for i, l := range c.sh.Longhands {
		out[i] = c.get(l)
	}
	return out
}

func collapseFourSides(c collapse) (string, bool) {
	texts := c.values()
	return strings.Join(texts[:sidesCount(texts)], " "), true
}

func collapsePair(c collapse) (string, bool) {
	texts := c.values()
	if texts[0] == texts[1] {
		return texts[0], true
	}
	return texts[0] + " " + texts[1], true
}

func collapseSame(c collapse) (string, bool) {
	texts := c.values()
	for _, text := range texts[1:] {
		if text != texts[0] {
			return "", false
		}
	}
	return texts[0], true
}

// shortest omits as many longhands as possible.
func shortest(c collapse) (string, bool) {
	var components []string
	for _, l := range c.sh.Longhands {
		if !c.sh.IsResetOnly(l) {
			components = append(components, l)
		}
	}
	return c.shortestOf(components)
}

func (c collapse) shortestOf(components []string) (string, bool) {
	var kept []string
	for _, l := range components {
		if !c.isInitial(l) {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		for _, l := range components {
			if c.verify(c.get(l)) {
				return c.get(l), true
			}
		}
		// no single component sets all the others, as in 'normal legacy'
		kept = components
	}
	if !c.verify(c.join(kept)) {
		kept = components
		if !c.verify(c.join(kept)) {
			return "", false
		}
	}
	for i := 0; i < len(kept) && len(kept) > 1; {
		candidate := append(append([]string(nil), kept[:i]...), kept[i+1:]...)
		if c.verify(c.join(candidate)) {
			kept = candidate
		} else {
			i++
		}
	}
	return c.join(kept), true
}

func collapseBorder(c collapse) (string, bool) {
	for _, part := range [...]string{"width", "style", "color"} {
		top := c.get("border-top-" + part)
		for _, side := range [...]string{"right", "bottom", "left"} {
			if c.get("border-"+side+"-"+part) != top {
				return "", false
			}
		}
	}
	return c.shortestOf([]string{"border-top-width", "border-top-style", "border-top-color"})
}

func collapseBorderAxis(c collapse) (string, bool) {
	var start []string
	for _, part := range [...]string{"width", "style", "color"} {
		l := c.sh.Name + "-start-" + part
		if c.get(l) != c.get(c.sh.Name+"-end-"+part) {
			return "", false
		}
		start = append(start, l)
	}
	return c.shortestOf(start)
}

// radiusPair splits a radius into its horizontal and vertical values.
func radiusPair(text string) (string, string) {
	tokens := pa.RemoveWhitespace(pa.TokenizeString(text, true))
	if len(tokens) == 0 {
		return "", ""
	}
	h := pa.Canonical(tokens[:1])
	if len(tokens) == 1 {
		return h, h
	}
	return h, pa.Canonical(tokens[1:2])
}

func collapseRadius(c collapse) (string, bool) {
	var horizontal, vertical []string
	for _, l := range c.sh.Longhands {
		h, v := radiusPair(c.get(l))
		horizontal, vertical = append(horizontal, h), append(vertical, v)
	}
	minimize := func(values []string) []string {
		if len(values) == 4 {
			return values[:sidesCount(values)]
		}
		if values[0] == values[1] {
			return values[:1]
		}
		return values
	}
	out := strings.Join(minimize(horizontal), " ")
	if v := strings.Join(minimize(vertical), " "); v != out {
		out += " / " + v
	}
	return out, true
}

func collapseCorners(c collapse) (string, bool) {
	radii := c.sh.Longhands[1:]
	var parts []string
	if !c.isInitial("corner-shape") {
		parts = append(parts, c.get("corner-shape"))
	}
	for _, l := range radii {
		if !c.isInitial(l) {
			radius := collapse{table: c.table, sh: &pr.Shorthand{Name: "border-radius", Longhands: radii}, texts: c.texts}
			text, _ := collapseRadius(radius)
			parts = append(parts, text)
			break
		}
	}
	if len(parts) == 0 {
		return c.get("corner-shape"), true
	}
	return strings.Join(parts, " "), true
}

func collapseBorderImage(prefix string, withMode bool) collapser {
	return func(c collapse) (string, bool) {
		source, slice, width, outset, repeat := prefix+"-source", prefix+"-slice", prefix+"-width", prefix+"-outset", prefix+"-repeat"
		var parts []string
		if !c.isInitial(source) {
			parts = append(parts, c.get(source))
		}
		switch {
		case !c.isInitial(width) && !c.isInitial(outset):
			parts = append(parts, c.get(slice)+" / "+c.get(width)+" / "+c.get(outset))
		case !c.isInitial(width):
			parts = append(parts, c.get(slice)+" / "+c.get(width))
		case !c.isInitial(outset):
			parts = append(parts, c.get(slice)+" / / "+c.get(outset))
		case !c.isInitial(slice):
			parts = append(parts, c.get(slice))
		}
		if !c.isInitial(repeat) {
			parts = append(parts, c.get(repeat))
		}
		if mode := prefix + "-mode"; withMode && !c.isInitial(mode) {
			parts = append(parts, c.get(mode))
		}
		if len(parts) == 0 {
			return "none", true
		}
		return strings.Join(parts, " "), true
	}
}

func collapseContainer(c collapse) (string, bool) {
	if c.isInitial("container-type") {
		return c.get("container-name"), true
	}
	return c.get("container-name") + " / " + c.get("container-type"), true
}

func collapseFlex(c collapse) (string, bool) {
	grow, shrink, basis := c.get("flex-grow"), c.get("flex-shrink"), c.get("flex-basis")
	if grow == "0" && shrink == "0" && basis == "auto" {
		return "none", true
	}
	out := grow
	if shrink != "1" {
		out += " " + shrink
	}
	if basis != "0px" {
		out += " " + basis
	}
	return out, true
}

func collapseOffset(c collapse) (string, bool) {
	var parts []string
	if !c.isInitial("offset-position") {
		parts = append(parts, c.get("offset-position"))
	}
	if !c.isInitial("offset-path") || !c.isInitial("offset-distance") || !c.isInitial("offset-rotate") {
		parts = append(parts, c.get("offset-path"))
		for _, l := range [...]string{"offset-distance", "offset-rotate"} {
			if !c.isInitial(l) {
				parts = append(parts, c.get(l))
			}
		}
	}
	out := strings.Join(parts, " ")
	if out == "" {
		out = "normal"
	}
	if !c.isInitial("offset-anchor") {
		out += " / " + c.get("offset-anchor")
	}
	return out, true
}

func collapseLineClamp(c collapse) (string, bool) {
	lines, ellipsis, cont := c.get("max-lines"), c.get("block-ellipsis"), c.get("continue")
	if lines == "none" && ellipsis == "none" && cont == "auto" {
		return "none", true
	}
	if cont != "discard" {
		return "", false
	}
	switch {
	case lines == "none" && ellipsis == "auto":
		return "auto", true
	case ellipsis == "auto":
		return lines, true
	case lines == "none":
		return ellipsis, true
	}
	return lines + " " + ellipsis, true
}

func collapseWebkitLineClamp(c collapse) (string, bool) {
	lines, ellipsis, cont := c.get("max-lines"), c.get("block-ellipsis"), c.get("continue")
	switch {
	case lines == "none" && ellipsis == "auto" && cont == "auto":
		return "none", true
	case ellipsis == "auto" && cont == "-webkit-discard":
		return lines, true
	}
	return "", false
}

func collapseTextAlign(c collapse) (string, bool) {
	all, last := c.get("text-align-all"), c.get("text-align-last")
	switch {
	case last == "auto":
		return all, true
	case all == "match-parent" && last == "match-parent":
		return "match-parent", true
	case all == "justify" && last == "justify":
		return "justify-all", true
	}
	return "", false
}

func collapseTextSpacing(c collapse) (string, bool) {
	trim, autospace := c.get("text-spacing-trim"), c.get("text-autospace")
	switch {
	case trim == "space-all" && autospace == "no-autospace":
		return "none", true
	case trim == "auto" && autospace == "auto":
		return "auto", true
	}
	return shortest(c)
}

func collapseWhiteSpace(c collapse) (string, bool) {
	texts := c.values()
	for kw, values := range whiteSpaceKeywords {
		if values == [3]string{texts[0], texts[1], texts[2]} {
			return kw, true
		}
	}
	return shortest(c)
}

// layerCollapser collapses one layer of a repeated shorthand.
type layerCollapser func(c collapse, last bool) (string, bool)

var layerCollapsers map[string]layerCollapser

func init() {
	layerCollapsers = map[string]layerCollapser{
		"animation":       collapseAnimationLayer,
		"animation-range": collapseRangeLayer,
		"background":      collapseBackgroundLayer,
		"box-shadow":      collapseBoxShadowLayer,
		"mask":            collapseMaskLayer,
	}
}

// listItems splits the value of a list valued longhand.
func (c collapse) listItems(longhand string) ([]string, bool) {
	var out []string
	for _, part := range pa.SplitOnComma(pa.TokenizeString(c.get(longhand), true)) {
		v, err := parseText(c.table, longhand, pa.Serialize(part))
		if err != nil {
			return nil, false
		}
		out = append(out, v.String())
	}
	return out, true
}

// collapseLayers collapses each layer of a repeated shorthand,
// whose list valued longhands must have the same length.
func collapseLayers(c collapse) (string, bool) {
	lists := map[string][]string{}
	var single []string
	count := -1
	for _, l := range c.sh.Longhands {
		if c.sh.IsResetOnly(l) {
			continue
		}
		def, ok := c.table.Longhand(l)
		if !ok {
			return "", false
		}
		if !def.IsList() {
			single = append(single, l)
			continue
		}
		items, ok := c.listItems(l)
		if !ok || (count != -1 && len(items) != count) {
			return "", false
		}
		count = len(items)
		lists[l] = items
	}
	if count <= 0 {
		return "", false
	}
	col := layerCollapsers[c.sh.Name]
	if col == nil {
		col = func(c collapse, _ bool) (string, bool) { return shortest(c) }
	}
	layers := make([]string, count)
	for i := range layers {
		layer := collapse{table: c.table, sh: c.sh, texts: map[string]string{}, layer: true}
		for l, items := range lists {
			layer.texts[l] = items[i]
		}
		last := i == count-1
		for _, l := range single {
			if last {
				layer.texts[l] = c.get(l)
			} else {
				layer.texts[l] = c.initial(l)
			}
		}
		text, ok := col(layer, last)
		if !ok || !layer.verify(text) {
			return "", false
		}
		layers[i] = text
	}
	return strings.Join(layers, ", "), true
}

func collapseAnimationLayer(c collapse, _ bool) (string, bool) {
	var components []string
	for _, l := range c.sh.Longhands {
		if !c.sh.IsResetOnly(l) {
			components = append(components, l)
		}
	}
	return c.join(components), true
}

// rangeDefault returns the end implied by the start of an animation range.
func rangeDefault(start string) string {
	tokens := pa.RemoveWhitespace(pa.TokenizeString(start, true))
	if len(tokens) != 0 {
		if id, ok := tokens[0].(pa.Ident); ok && timelineRangeNames.Has(utils.AsciiLower(id.Value)) {
			return utils.AsciiLower(id.Value)
		}
	}
	return "normal"
}

var timelineRangeNames = utils.NewSet("cover", "contain", "entry", "exit", "entry-crossing", "exit-crossing")

func collapseRangeLayer(c collapse, _ bool) (string, bool) {
	start, end := c.get("animation-range-start"), c.get("animation-range-end")
	if end == rangeDefault(start) {
		return start, true
	}
	if timelineRangeNames.Has(start) && !timelineRangeNames.Has(rangeDefault(end)) && end != "normal" {
		return start + " 0% " + end, true
	}
	return start + " " + end, true
}

func collapseBoxShadowLayer(c collapse, _ bool) (string, bool) {
	color, offset := c.get("box-shadow-color"), c.get("box-shadow-offset")
	rest := c.isInitial("box-shadow-blur") && c.isInitial("box-shadow-spread") && c.isInitial("box-shadow-position")
	if color == "transparent" && offset == "none" && rest {
		return "none", true
	}
	var parts []string
	// a lone 'none' would be read as a transparent shadow
	if !c.isInitial("box-shadow-color") || offset == "none" {
		parts = append(parts, color)
	}
	parts = append(parts, offset)
	switch {
	case !c.isInitial("box-shadow-spread"):
		parts = append(parts, c.get("box-shadow-blur"), c.get("box-shadow-spread"))
	case !c.isInitial("box-shadow-blur"):
		parts = append(parts, c.get("box-shadow-blur"))
	}
	if !c.isInitial("box-shadow-position") {
		parts = append(parts, c.get("box-shadow-position"))
	}
	return strings.Join(parts, " "), true
}

// appendBoxes adds the origin and clip boxes of a layer.
func appendBoxes(c collapse, parts []string, origin, clip string) []string {
	switch {
	case c.isInitial(origin) && c.isInitial(clip):
		return parts
	case c.get(origin) == c.get(clip):
		return append(parts, c.get(origin))
	case c.isInitial(origin) && !c.matches(origin, c.get(clip)):
		// a single box which is not an origin only sets the clip, as in 'no-clip'
		return append(parts, c.get(clip))
	}
	return append(parts, c.get(origin), c.get(clip))
}

// matches returns true if `text` is a valid value of the longhand `name`.
func (c collapse) matches(name, text string) bool {
	def, ok := c.table.Longhand(name)
	if !ok {
		return false
	}
	_, ok = grammar.MatchString(text, def.Syntax, c.table)
	return ok
}

func appendPositionSize(c collapse, parts []string, position, size string) []string {
	switch {
	case !c.isInitial(size):
		return append(parts, c.get(position)+" / "+c.get(size))
	case !c.isInitial(position):
		return append(parts, c.get(position))
	}
	return parts
}

func collapseBackgroundLayer(c collapse, last bool) (string, bool) {
	var parts []string
	if !c.isInitial("background-image") {
		parts = append(parts, c.get("background-image"))
	}
	parts = appendPositionSize(c, parts, "background-position", "background-size")
	for _, l := range [...]string{"background-repeat", "background-attachment"} {
		if !c.isInitial(l) {
			parts = append(parts, c.get(l))
		}
	}
	parts = appendBoxes(c, parts, "background-origin", "background-clip")
	if last && !c.isInitial("background-color") {
		parts = append(parts, c.get("background-color"))
	}
	if len(parts) == 0 {
		return "none", true
	}
	return strings.Join(parts, " "), true
}

func collapseMaskLayer(c collapse, _ bool) (string, bool) {
	var parts []string
	if !c.isInitial("mask-image") {
		parts = append(parts, c.get("mask-image"))
	}
	parts = appendPositionSize(c, parts, "mask-position", "mask-size")
	if !c.isInitial("mask-repeat") {
		parts = append(parts, c.get("mask-repeat"))
	}
	parts = appendBoxes(c, parts, "mask-origin", "mask-clip")
	for _, l := range [...]string{"mask-composite", "mask-mode"} {
		if !c.isInitial(l) {
			parts = append(parts, c.get(l))
		}
	}
	if len(parts) == 0 {
		return "none", true
	}
	return strings.Join(parts, " "), true
}
