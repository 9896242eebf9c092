package validation

import (
	"strings"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/utils"
)

var (
	systemFonts = utils.NewSet("caption", "icon", "menu", "message-box", "small-caption", "status-bar")

	// the widths which may be set by the font shorthand
	fontWidthsCSS3 = utils.NewSet("normal", "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded")

	synthesisKeywords = [...]string{"weight", "style", "small-caps", "position"}
)

// systemFont returns the system font keyword `tokens` is made of, if any.
func systemFont(tokens []pa.Token) (string, bool) {
	significant := pa.RemoveWhitespace(tokens)
	if len(significant) != 1 {
		return "", false
	}
	id, ok := significant[0].(pa.Ident)
	if !ok {
		return "", false
	}
	kw := utils.AsciiLower(id.Value)
	return kw, systemFonts.Has(kw)
}

// expandSystemFont resolves the longhands to the system font
// at computed value time only.
func expandSystemFont(table *pr.Table, sh *pr.Shorthand, keyword string) ([]Property, error) {
	out := make([]Property, len(sh.Longhands))
	for i, l := range sh.Longhands {
		if !sh.IsResetOnly(l) {
			out[i] = Property{Name: l, Value: Pending{Text: keyword, Shorthand: sh.Name}}
			continue
		}
		v, err := parseText(table, l, initialValue(table, l))
		if err != nil {
			return nil, err
		}
		out[i] = Property{Name: l, Value: v}
	}
	return out, nil
}

func expandFont(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	set := func(longhand string, value *grammar.Value) {
		if value != nil {
			out[longhand] = value.String()
		}
	}
	set("font-style", v.Find("font-style"))
	set("font-variant-caps", v.FindType("font-variant-css2"))
	set("font-weight", v.FindType("font-weight-absolute"))
	set("font-width", v.FindType("font-width-css3"))
	set("font-size", v.Find("font-size"))
	set("line-height", v.Find("line-height"))
	set("font-family", v.FindType("family-list"))
	return out, nil
}

func expandFontSynthesis(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	out := expansion{}
	for i, l := range sh.Longhands {
		out[l] = "none"
		if !v.IsKeyword("none") && v.Kind == grammar.ListValue && i < len(v.Children) && v.Children[i] != nil {
			out[l] = "auto"
		}
	}
	return out, nil
}

// index ranges of the font-variant grammar items set by each longhand
var fontVariantGroups = [...]struct {
	longhand string
	from, to int
}{
	{"font-variant-ligatures", 0, 4},
	{"font-variant-caps", 4, 5},
	{"font-variant-alternates", 5, 7},
	{"font-variant-numeric", 7, 12},
	{"font-variant-east-asian", 12, 15},
	{"font-variant-position", 15, 16},
	{"font-variant-emoji", 16, 17},
}

func expandFontVariant(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	switch {
	case v.IsKeyword("normal"):
		return expansion{}, nil
	case v.IsKeyword("none"):
		return expansion{"font-variant-ligatures": "none"}, nil
	}
	if v.Kind != grammar.ListValue || len(v.Children) != 17 {
		return nil, invalid("unexpected font-variant value %s", v)
	}
	out := expansion{}
	for _, group := range fontVariantGroups {
		if text := grammar.NewList(" ", v.Children[group.from:group.to]...).String(); text != "" {
			out[group.longhand] = text
		}
	}
	return out, nil
}

func collapseFont(c collapse) (string, bool) {
	for _, l := range [...]string{
		"font-variant-ligatures", "font-variant-alternates", "font-variant-numeric",
		"font-variant-east-asian", "font-variant-position", "font-variant-emoji",
	} {
		if c.get(l) != "normal" {
			return "", false
		}
	}
	if caps := c.get("font-variant-caps"); caps != "normal" && caps != "small-caps" {
		return "", false
	}
	if !fontWidthsCSS3.Has(c.get("font-width")) {
		return "", false
	}
	for _, l := range c.sh.ResetOnly {
		if !c.isInitial(l) {
			return "", false
		}
	}
	var parts []string
	for _, l := range [...]string{"font-style", "font-variant-caps", "font-weight", "font-width"} {
		if text := c.get(l); text != "normal" {
			parts = append(parts, text)
		}
	}
	size := c.get("font-size")
	if lh := c.get("line-height"); lh != "normal" {
		size += " / " + lh
	}
	parts = append(parts, size, c.get("font-family"))
	return strings.Join(parts, " "), true
}

func collapseFontVariant(c collapse) (string, bool) {
	var parts []string
	for _, l := range c.sh.Longhands {
		if text := c.get(l); text != "normal" {
			parts = append(parts, text)
		}
	}
	switch {
	case len(parts) == 0:
		return "normal", true
	case c.get("font-variant-ligatures") == "none":
		return "none", len(parts) == 1
	}
	return strings.Join(parts, " "), true
}

func collapseFontSynthesis(c collapse) (string, bool) {
	var parts []string
	for i, l := range c.sh.Longhands {
		switch c.get(l) {
		case "auto":
			parts = append(parts, synthesisKeywords[i])
		case "none":
		default: // oblique-only
			return "", false
		}
	}
	if len(parts) == 0 {
		return "none", true
	}
	return strings.Join(parts, " "), true
}
