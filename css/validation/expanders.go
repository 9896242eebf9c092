package validation

import (
	"strings"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
)

// expansion maps longhands to the text of their value.
// Missing longhands are set to their initial value.
type expansion map[string]string

// expander splits the value of a shorthand, matched against
// its grammar, into the values of its longhands.
// For repeated shorthands, it is called on each layer.
type expander func(sh *pr.Shorthand, v *grammar.Value) (expansion, error)

var expanders map[string]expander

func init() {
	expanders = map[string]expander{
		"animation-range":            expandAnimationRange,
		"background":                 withCopies(copyClip("background-origin", "background-clip")),
		"border":                     expandBorder,
		"border-block":               expandBorderAxis,
		"border-inline":              expandBorderAxis,
		"border-radius":              expandRadius,
		"border-block-start-radius":  expandRadius,
		"border-block-end-radius":    expandRadius,
		"border-inline-start-radius": expandRadius,
		"border-inline-end-radius":   expandRadius,
		"box-shadow":                 expandBoxShadow,
		"corners":                    expandCorners,
		"cue":                        withCopies(copyFirst),
		"flex":                       expandFlex,
		"font":                       expandFont,
		"font-synthesis":             expandFontSynthesis,
		"font-variant":               expandFontVariant,
		"gap":                        withCopies(copyFirst),
		"grid":                       expandGrid,
		"grid-area":                  expandGridLines,
		"grid-column":                expandGridLines,
		"grid-row":                   expandGridLines,
		"grid-template":              expandGridTemplate,
		"line-clamp":                 expandLineClamp,
		"-webkit-line-clamp":         expandWebkitLineClamp,
		"list-style":                 withCopies(copyListStyleNone),
		"mask":                       withCopies(copyClip("mask-origin", "mask-clip")),
		"pause":                      withCopies(copyFirst),
		"place-content":              withCopies(copyPlaceContent),
		"place-items":                withCopies(copyFirst),
		"place-self":                 withCopies(copyFirst),
		"rest":                       withCopies(copyFirst),
		"scroll-start":               withCopies(copyFirst),
		"scroll-start-target":        withCopies(copyFirst),
		"text-align":                 expandTextAlign,
		"text-spacing":               expandTextSpacing,
		"vertical-align":             expandVerticalAlign,
		"white-space":                expandWhiteSpace,
	}
}

// expanderFor returns the expander of `sh`, which defaults to the
// four sides, pairs or copy rules according to the shape of its grammar,
// and to expandGeneric otherwise.
func expanderFor(sh *pr.Shorthand) expander {
	if exp, ok := expanders[sh.Name]; ok {
		return exp
	}
	switch syntax := sh.Syntax.(type) {
	case *grammar.Repeat:
		if !syntax.Comma && syntax.Min == 1 && syntax.Max == len(sh.Longhands) {
			switch syntax.Max {
			case 4:
				return expandFourSides
			case 2:
				return expandPair
			}
		}
	case *grammar.PropertyRef:
		return expandSame
	}
	return expandGeneric
}

// expandGeneric uses the sub-values labelled with the name of each longhand.
func expandGeneric(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	for _, l := range sh.Longhands {
		if sub := v.Find(l); sub != nil {
			out[l] = sub.String()
		}
	}
	return out, nil
}

// withCopies runs expandGeneric then `fill`, which
// completes the missing longhands.
func withCopies(fill func(sh *pr.Shorthand, out expansion)) expander {
	return func(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
		out, err := expandGeneric(sh, v)
		if err != nil {
			return nil, err
		}
		fill(sh, out)
		return out, nil
	}
}

// copyFirst sets the second longhand to the first one, if missing.
func copyFirst(sh *pr.Shorthand, out expansion) {
	first, second := sh.Longhands[0], sh.Longhands[1]
	if _, ok := out[second]; !ok {
		out[second] = out[first]
	}
}

func copyPlaceContent(sh *pr.Shorthand, out expansion) {
	if _, ok := out["justify-content"]; ok {
		return
	}
	if align := out["align-content"]; strings.HasSuffix(align, "baseline") {
		out["justify-content"] = "start"
	} else {
		out["justify-content"] = align
	}
}

// copyClip sets the clip box to the origin box, when only the latter is specified.
func copyClip(origin, clip string) func(*pr.Shorthand, expansion) {
	return func(_ *pr.Shorthand, out expansion) {
		if box, ok := out[origin]; ok {
			if _, ok := out[clip]; !ok {
				out[clip] = box
			}
		}
	}
}

// 'none' is matched as the image, and also sets the type
func copyListStyleNone(_ *pr.Shorthand, out expansion) {
	if _, ok := out["list-style-type"]; !ok && out["list-style-image"] == "none" {
		out["list-style-type"] = "none"
	}
}

// expandSame sets all the longhands to the same value.
func expandSame(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	for _, l := range sh.Longhands {
		out[l] = v.String()
	}
	return out, nil
}

// fourSides completes 1 to 4 values for top, right, bottom and left.
func fourSides(values []string) ([4]string, bool) {
	switch len(values) {
	case 1:
		return [4]string{values[0], values[0], values[0], values[0]}, true
	case 2:
		return [4]string{values[0], values[1], values[0], values[1]}, true
	case 3:
		return [4]string{values[0], values[1], values[2], values[1]}, true
	case 4:
		return [4]string{values[0], values[1], values[2], values[3]}, true
	}
	return [4]string{}, false
}

func valueTexts(values []*grammar.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func expandFourSides(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	sides, ok := fourSides(valueTexts(v.Items()))
	if !ok {
		return nil, invalid("expected 1 to 4 values for %s", sh.Name)
	}
	out := expansion{}
	for i, l := range sh.Longhands {
		out[l] = sides[i]
	}
	return out, nil
}

func expandPair(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	items := valueTexts(v.Items())
	if len(items) == 0 || len(items) > 2 {
		return nil, invalid("expected 1 or 2 values for %s", sh.Name)
	}
	out := expansion{sh.Longhands[0]: items[0], sh.Longhands[1]: items[0]}
	if len(items) == 2 {
		out[sh.Longhands[1]] = items[1]
	}
	return out, nil
}

// border sets the width, style and color of the four sides
func expandBorder(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	for _, part := range [3]string{"width", "style", "color"} {
		sub := v.Find("border-top-" + part)
		if sub == nil {
			continue
		}
		for _, side := range [4]string{"top", "right", "bottom", "left"} {
			out["border-"+side+"-"+part] = sub.String()
		}
	}
	return out, nil
}

// border-block and border-inline set the start and end sides
func expandBorderAxis(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	for _, part := range [3]string{"width", "style", "color"} {
		sub := v.Find(sh.Name + "-start-" + part)
		if sub == nil {
			continue
		}
		out[sh.Name+"-start-"+part] = sub.String()
		out[sh.Name+"-end-"+part] = sub.String()
	}
	return out, nil
}

// expandRadius handles border-radius and its logical variants,
// whose horizontal and vertical radii are separated by a '/'.
func expandRadius(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	horizontal := valueTexts(v.Children[0].Items())
	vertical := horizontal
	if slash := v.Children[1]; slash != nil {
		vertical = valueTexts(slash.Children[1].Items())
	}
	var h, w []string
	if len(sh.Longhands) == 4 {
		hs, ok1 := fourSides(horizontal)
		vs, ok2 := fourSides(vertical)
		if !ok1 || !ok2 {
			return nil, invalid("expected 1 to 4 radii")
		}
		h, w = hs[:], vs[:]
	} else {
		h = pairValues(horizontal)
		w = pairValues(vertical)
	}
	out := expansion{}
	for i, l := range sh.Longhands {
		out[l] = h[i] + " " + w[i]
	}
	return out, nil
}

// expandCorners splits the shape and the radii of the corners.
func expandCorners(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	if shape := v.Find("corner-shape"); shape != nil {
		out["corner-shape"] = shape.String()
	}
	if radius := v.Find("border-radius"); radius != nil {
		radii, err := expandRadius(&pr.Shorthand{Name: "border-radius", Longhands: sh.Longhands[1:]}, radius)
		if err != nil {
			return nil, err
		}
		for l, text := range radii {
			out[l] = text
		}
	}
	return out, nil
}

// expandBoxShadow handles one shadow: a single 'none' is a transparent shadow.
func expandBoxShadow(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.IsKeyword("none") {
		return expansion{"box-shadow-color": "transparent"}, nil
	}
	return expandGeneric(sh, v)
}

func pairValues(values []string) []string {
	if len(values) == 1 {
		return []string{values[0], values[0]}
	}
	return values
}

func expandFlex(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.IsKeyword("none") {
		return expansion{"flex-grow": "0", "flex-shrink": "0", "flex-basis": "auto"}, nil
	}
	out, _ := expandGeneric(sh, v)
	if _, ok := out["flex-grow"]; ok {
		if _, ok := out["flex-basis"]; !ok {
			out["flex-basis"] = "0px"
		}
	} else {
		out["flex-grow"] = "1"
	}
	if _, ok := out["flex-shrink"]; !ok {
		out["flex-shrink"] = "1"
	}
	return out, nil
}

func expandLineClamp(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.IsKeyword("none") {
		return expansion{}, nil
	}
	out := expansion{"max-lines": "none", "block-ellipsis": "auto", "continue": "discard"}
	if lines := v.FindType("integer"); lines != nil {
		out["max-lines"] = lines.String()
	}
	if ellipsis := v.Find("block-ellipsis"); ellipsis != nil {
		out["block-ellipsis"] = ellipsis.String()
	}
	return out, nil
}

func expandWebkitLineClamp(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.IsKeyword("none") {
		return expansion{"max-lines": "none", "block-ellipsis": "auto", "continue": "auto"}, nil
	}
	return expansion{"max-lines": v.String(), "block-ellipsis": "auto", "continue": "-webkit-discard"}, nil
}

func expandTextAlign(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	switch text := v.String(); text {
	case "match-parent":
		return expansion{"text-align-all": text, "text-align-last": text}, nil
	case "justify-all":
		return expansion{"text-align-all": "justify", "text-align-last": "justify"}, nil
	default:
		return expansion{"text-align-all": text, "text-align-last": "auto"}, nil
	}
}

func expandTextSpacing(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	switch {
	case v.IsKeyword("none"):
		return expansion{"text-spacing-trim": "space-all", "text-autospace": "no-autospace"}, nil
	case v.IsKeyword("auto"):
		return expansion{"text-spacing-trim": "auto", "text-autospace": "auto"}, nil
	}
	return expandGeneric(sh, v)
}

var whiteSpaceKeywords = map[string][3]string{
	"normal":   {"collapse", "wrap", "none"},
	"pre":      {"preserve", "nowrap", "none"},
	"pre-wrap": {"preserve", "wrap", "none"},
	"pre-line": {"preserve-breaks", "wrap", "none"},
}

func expandWhiteSpace(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.Kind == grammar.KeywordValue {
		if values, ok := whiteSpaceKeywords[v.Text]; ok {
			return expansion{
				"white-space-collapse": values[0],
				"text-wrap-mode":       values[1],
				"white-space-trim":     values[2],
			}, nil
		}
	}
	return expandGeneric(sh, v)
}

func expandVerticalAlign(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out, _ := expandGeneric(sh, v)
	if source := v.FindType("baseline-source-keyword"); source != nil {
		out["baseline-source"] = source.String()
	}
	return out, nil
}

// expandAnimationRange expands one layer: a missing end
// defaults to the range name of the start, or to 'normal'.
func expandAnimationRange(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out, _ := expandGeneric(sh, v)
	if _, ok := out["animation-range-end"]; !ok {
		out["animation-range-end"] = "normal"
		if start := v.Find("animation-range-start"); start != nil {
			if name := start.FindType("timeline-range-name"); name != nil {
				out["animation-range-end"] = name.String()
			}
		}
	}
	return out, nil
}

// expandLayers expands a comma separated list of layers, joining
// the values of each longhand. The longhands which are not lists
// may only be set in the last layer.
func expandLayers(table *pr.Table, sh *pr.Shorthand, tokens []pa.Token) (expansion, error) {
	layers := pa.SplitOnComma(tokens)
	exp := expanderFor(sh)
	lists := map[string][]string{}
	out := expansion{}
	for i, layer := range layers {
		v, ok := grammar.Match(layer, sh.Syntax, table)
		if !ok {
			return nil, invalid("%s does not match %s", pa.Canonical(layer), sh.Name)
		}
		texts, err := exp(sh, v)
		if err != nil {
			return nil, err
		}
		for _, l := range sh.Longhands {
			if sh.IsResetOnly(l) {
				continue
			}
			def, ok := table.Longhand(l)
			if !ok {
				return nil, invalid("unsupported longhand %s", l)
			}
			text, has := texts[l]
			if !def.IsList() {
				if has && i != len(layers)-1 {
					return nil, invalid("%s is only allowed in the last layer", l)
				}
				if has {
					out[l] = text
				}
				continue
			}
			if !has {
				text = def.Initial
			}
			lists[l] = append(lists[l], text)
		}
	}
	for l, items := range lists {
		out[l] = strings.Join(items, ", ")
	}
	return out, nil
}
