package validation

import (
	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
)

// legacyValues maps the values of the legacy names to the
// values of their standard longhand.
var legacyValues = map[string]map[string]string{
	"page-break-after":           {"auto": "auto", "always": "page", "avoid": "avoid", "left": "left", "right": "right"},
	"page-break-before":          {"auto": "auto", "always": "page", "avoid": "avoid", "left": "left", "right": "right"},
	"page-break-inside":          {"auto": "auto", "avoid": "avoid"},
	"glyph-orientation-vertical": {"auto": "mixed", "0deg": "upright", "90deg": "sideways"},
}

// parseLegacy sets the longhand mapped to a legacy name.
func parseLegacy(table *pr.Table, sh *pr.Shorthand, tokens []pa.Token) ([]Property, error) {
	longhand := sh.Longhands[0]
	def, ok := table.Longhand(longhand)
	if !ok {
		return nil, invalid("unsupported longhand %s", longhand)
	}
	if len(pa.RemoveWhitespace(tokens)) == 0 {
		return nil, invalid("empty value for %s", sh.Name)
	}
	if kw, ok := wideKeyword(tokens); ok {
		return []Property{{Name: longhand, Value: kw}}, nil
	}
	checker := substitutionChecker{
		validate: func(arg []pa.Token) error {
			_, err := legacyValue(table, sh, arg)
			return err
		},
		animatable: def.Animatable,
	}
	hasSubstitution, err := checker.detectSubstitution(tokens)
	if err != nil {
		return nil, err
	}
	if hasSubstitution {
		return []Property{{Name: longhand, Value: Pending{Text: substitutionText(tokens)}}}, nil
	}
	v, err := legacyValue(table, sh, tokens)
	if err != nil {
		return nil, err
	}
	return []Property{{Name: longhand, Value: v}}, nil
}

func legacyValue(table *pr.Table, sh *pr.Shorthand, tokens []pa.Token) (*grammar.Value, error) {
	v, ok := grammar.Match(tokens, sh.Syntax, table)
	if !ok {
		return nil, invalid("%s does not match %s", pa.Canonical(tokens), sh.Name)
	}
	text := v.String()
	switch v.Kind {
	case grammar.NumberValue: // unitless angle
		text += "deg"
	case grammar.DimensionValue:
		if v.Unit != "deg" {
			return nil, invalid("unsupported angle %s for %s", text, sh.Name)
		}
	}
	mapped, ok := legacyValues[sh.Name][text]
	if !ok {
		return nil, invalid("unsupported value %s for %s", text, sh.Name)
	}
	return parseText(table, sh.Longhands[0], mapped)
}

// SerializeLegacy returns the value of the legacy name `sh`
// from the value of its standard longhand, or an empty string
// if it has no legacy equivalent.
func SerializeLegacy(sh *pr.Shorthand, value DeclaredValue) string {
	if _, ok := value.(*grammar.Value); !ok {
		return value.String()
	}
	text := value.String()
	for legacy, standard := range legacyValues[sh.Name] {
		if standard == text {
			return legacy
		}
	}
	return ""
}
