// Package validation validates CSS property values against their grammar,
// expands shorthands into their longhands, and serializes a set
// of longhand values back into the shortest equivalent shorthand value.
//
// Values are stored in their canonical and minimal form, so that
// 'left' is stored as 'left center' for background-position,
// and '10px 10px' as '10px' for border-spacing.
package validation

import (
	"fmt"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

// Parse validates `tokens` as the value of the property `name`,
// which must be a canonical name supported by `table` (see properties.Table.Resolve).
// It returns the declared value of each longhand set by the property:
// one for a longhand or a custom property, all its longhands for a shorthand,
// and the mapped longhand for a legacy name.
// The returned error wraps ErrInvalidValue.
func Parse(table *pr.Table, name string, tokens []pa.Token) ([]Property, error) {
	tokens = pa.TrimWhitespace(tokens)
	if pr.IsCustom(name) {
		if !table.Custom {
			return nil, invalid("custom property %s not allowed", name)
		}
		v, err := parseCustom(tokens)
		if err != nil {
			return nil, err
		}
		return []Property{{Name: name, Value: v}}, nil
	}
	if def, ok := table.Longhand(name); ok {
		v, err := parseLonghand(table, def, tokens)
		if err != nil {
			return nil, err
		}
		return []Property{{Name: name, Value: v}}, nil
	}
	sh, ok := table.Shorthand(name)
	if !ok {
		return nil, invalid("unknown property %s", name)
	}
	if sh.Legacy {
		return parseLegacy(table, sh, tokens)
	}
	return parseShorthand(table, sh, tokens)
}

// ParseString is a convenience wrapper for Parse.
func ParseString(table *pr.Table, name, value string) ([]Property, error) {
	return Parse(table, name, pa.TokenizeString(value, false))
}

// parseCustom checks the substitution functions of a custom property,
// whose value is otherwise kept as written.
func parseCustom(tokens []pa.Token) (DeclaredValue, error) {
	if _, err := (substitutionChecker{animatable: true}).detectSubstitution(tokens); err != nil {
		return nil, err
	}
	return Custom(pa.Serialize(tokens)), nil
}

func parseLonghand(table *pr.Table, def *pr.Definition, tokens []pa.Token) (DeclaredValue, error) {
	if len(pa.RemoveWhitespace(tokens)) == 0 {
		return nil, invalid("empty value for %s", def.Name)
	}
	if kw, ok := wideKeyword(tokens); ok {
		if def.Descriptor {
			return nil, invalid("CSS-wide keyword not allowed for the %s descriptor", def.Name)
		}
		return kw, nil
	}
	checker := substitutionChecker{
		validate: func(arg []pa.Token) error {
			_, err := matchLonghand(table, def, arg)
			return err
		},
		animatable: def.Animatable,
	}
	hasSubstitution, err := checker.detectSubstitution(tokens)
	if err != nil {
		return nil, err
	}
	if hasSubstitution {
		if def.Descriptor {
			return nil, invalid("substitution not allowed for the %s descriptor", def.Name)
		}
		return Pending{Text: substitutionText(tokens)}, nil
	}
	v, err := matchLonghand(table, def, tokens)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// matchLonghand matches the grammar of the longhand and minimizes the result.
func matchLonghand(table *pr.Table, def *pr.Definition, tokens []pa.Token) (*grammar.Value, error) {
	v, ok := grammar.Match(tokens, def.Syntax, table)
	if !ok {
		return nil, invalid("%s does not match %s", pa.Canonical(tokens), def.Syntax)
	}
	if min := minimizerFor(table.Kind, def.Name); min != nil {
		v, ok = min(v)
		if !ok {
			return nil, invalid("%s is not a valid %s", pa.Canonical(tokens), def.Name)
		}
	}
	return v, nil
}

// parseText parses the value of a longhand built by a shorthand expander.
func parseText(table *pr.Table, longhand, text string) (*grammar.Value, error) {
	def, ok := table.Longhand(longhand)
	if !ok {
		return nil, invalid("unsupported longhand %s", longhand)
	}
	v, err := matchLonghand(table, def, pa.TokenizeString(text, true))
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", longhand, err)
	}
	return v, nil
}

func parseShorthand(table *pr.Table, sh *pr.Shorthand, tokens []pa.Token) ([]Property, error) {
	if len(pa.RemoveWhitespace(tokens)) == 0 {
		return nil, invalid("empty value for %s", sh.Name)
	}
	if kw, ok := wideKeyword(tokens); ok {
		return distribute(sh, func(string) DeclaredValue { return kw }), nil
	}

	animatable := true
	for _, l := range sh.Longhands {
		if def, ok := table.Longhand(l); ok && !def.Animatable {
			animatable = false
		}
	}
	checker := substitutionChecker{
		validate: func(arg []pa.Token) error {
			_, err := expandShorthand(table, sh, arg)
			return err
		},
		animatable: animatable,
	}
	hasSubstitution, err := checker.detectSubstitution(tokens)
	if err != nil {
		return nil, err
	}
	if hasSubstitution {
		pending := Pending{Text: substitutionText(tokens), Shorthand: sh.Name}
		return distribute(sh, func(string) DeclaredValue { return pending }), nil
	}
	if sh.Name == "all" {
		return nil, invalid("all only accepts CSS-wide keywords")
	}
	return expandShorthand(table, sh, tokens)
}

func distribute(sh *pr.Shorthand, value func(longhand string) DeclaredValue) []Property {
	out := make([]Property, len(sh.Longhands))
	for i, l := range sh.Longhands {
		out[i] = Property{Name: l, Value: value(l)}
	}
	return out
}

// expandShorthand returns the longhands of a shorthand value,
// without CSS-wide keyword nor substitution.
func expandShorthand(table *pr.Table, sh *pr.Shorthand, tokens []pa.Token) ([]Property, error) {
	if sh.Name == "font" {
		if text, ok := systemFont(tokens); ok {
			return expandSystemFont(table, sh, text)
		}
	}
	var (
		texts expansion
		err   error
	)
	if sh.Repeated {
		texts, err = expandLayers(table, sh, tokens)
	} else {
		v, ok := grammar.Match(tokens, sh.Syntax, table)
		if !ok {
			return nil, invalid("%s does not match %s", pa.Canonical(tokens), sh.Name)
		}
		texts, err = expanderFor(sh)(sh, v)
	}
	if err != nil {
		return nil, err
	}
	out := make([]Property, len(sh.Longhands))
	for i, l := range sh.Longhands {
		text, ok := texts[l]
		if !ok || sh.IsResetOnly(l) {
			text = initialValue(table, l)
		}
		v, err := parseText(table, l, text)
		if err != nil {
			return nil, err
		}
		out[i] = Property{Name: l, Value: v}
	}
	return out, nil
}

func initialValue(table *pr.Table, longhand string) string {
	if def, ok := table.Longhand(longhand); ok {
		return def.Initial
	}
	return ""
}
