package validation

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	"github.com/benoitkugler/cssom/utils"
)

// maxSubstitutionDepth limits the nesting of functions
// in a value containing substitutions.
const maxSubstitutionDepth = 32

var (
	// replaced by a value at computed value time, anywhere in a value
	arbitrarySubstitutions = utils.NewSet("var", "env", "attr", "random-item")
	// must be the whole value, or the whole argument of one of them
	wholeValueSubstitutions = utils.NewSet("first-valid", "mix", "toggle")
)

var errTooDeep = fmt.Errorf("%w: substitution nested too deeply", ErrInvalidValue)

func functionName(token pa.Token) (string, bool) {
	fn, ok := token.(pa.FunctionBlock)
	if !ok {
		return "", false
	}
	return utils.AsciiLower(fn.Name), true
}

// wideKeyword returns the CSS-wide keyword `tokens` is made of, if any.
func wideKeyword(tokens []pa.Token) (WideKeyword, bool) {
	significant := pa.RemoveWhitespace(tokens)
	if len(significant) != 1 {
		return "", false
	}
	id, ok := significant[0].(pa.Ident)
	if !ok {
		return "", false
	}
	kw := utils.AsciiLower(id.Value)
	return WideKeyword(kw), grammar.CSSWideKeywords.Has(kw)
}

// splitFirst splits `tokens` on the first top level `delim` literal.
func splitFirst(tokens []pa.Token, delim string) (head, tail []pa.Token, found bool) {
	for i, token := range tokens {
		if pa.IsLiteral(token, delim) {
			return tokens[:i], tokens[i+1:], true
		}
	}
	return tokens, nil, false
}

// checkArbitrary returns true if `tokens` contains an arbitrary substitution
// function, checking the syntax of each one. Whole value functions
// are rejected.
func checkArbitrary(tokens []pa.Token, depth int) (bool, error) {
	if depth > maxSubstitutionDepth {
		return false, errTooDeep
	}
	found := false
	for _, token := range tokens {
		var (
			has bool
			err error
		)
		switch token := token.(type) {
		case pa.FunctionBlock:
			name := utils.AsciiLower(token.Name)
			switch {
			case arbitrarySubstitutions.Has(name):
				err = checkArbitraryFunction(name, token.Arguments, depth+1)
				has = true
			case wholeValueSubstitutions.Has(name):
				err = fmt.Errorf("%w: %s() must be the whole value", ErrInvalidValue, name)
			default:
				has, err = checkArbitrary(token.Arguments, depth+1)
			}
		case pa.ParenthesesBlock:
			has, err = checkArbitrary(token.Arguments, depth+1)
		case pa.SquareBracketsBlock:
			has, err = checkArbitrary(token.Arguments, depth+1)
		case pa.CurlyBracketsBlock:
			has, err = checkArbitrary(token.Arguments, depth+1)
		}
		if err != nil {
			return false, err
		}
		found = found || has
	}
	return found, nil
}

func checkArbitraryFunction(name string, args []pa.Token, depth int) error {
	if name == "random-item" {
		return checkRandomItem(args, depth)
	}
	head, fallback, _ := splitFirst(args, ",")
	head = pa.RemoveWhitespace(head)
	ok := false
	switch name {
	case "var":
		if len(head) == 1 {
			id, isIdent := head[0].(pa.Ident)
			ok = isIdent && strings.HasPrefix(id.Value, "--") && len(id.Value) > 2
		}
	case "env":
		if len(head) != 0 {
			_, ok = head[0].(pa.Ident)
			for _, token := range head[1:] {
				n, isNumber := token.(pa.Number)
				ok = ok && isNumber && n.IsInt()
			}
		}
	case "attr":
		if len(head) == 1 || len(head) == 2 {
			_, ok = head[0].(pa.Ident)
			if len(head) == 2 {
				switch t := head[1].(type) {
				case pa.Ident:
				case pa.FunctionBlock:
					ok = ok && utils.AsciiLower(t.Name) == "type"
				default:
					ok = ok && pa.IsLiteral(t, "%")
				}
			}
		}
	}
	if !ok {
		return fmt.Errorf("%w: invalid %s() arguments", ErrInvalidValue, name)
	}
	_, err := checkArbitrary(fallback, depth)
	return err
}

func checkRandomItem(args []pa.Token, depth int) error {
	parts := pa.SplitOn(args, ";")
	if len(parts) < 2 {
		return fmt.Errorf("%w: missing random-item() values", ErrInvalidValue)
	}
	options := pa.RemoveWhitespace(parts[0])
	var hasKey, perElement bool
	for _, token := range options {
		id, ok := token.(pa.Ident)
		switch {
		case ok && !hasKey && strings.HasPrefix(id.Value, "--") && len(id.Value) > 2:
			hasKey = true
		case ok && !perElement && utils.AsciiLower(id.Value) == "per-element":
			perElement = true
		default:
			return fmt.Errorf("%w: invalid random-item() caching options", ErrInvalidValue)
		}
	}
	if !hasKey && !perElement {
		return fmt.Errorf("%w: missing random-item() caching options", ErrInvalidValue)
	}
	for _, part := range parts[1:] {
		if _, err := checkArbitrary(part, depth); err != nil {
			return err
		}
	}
	return nil
}

// substitutionChecker validates the whole value functions.
type substitutionChecker struct {
	// validate checks the value of an argument of mix() and toggle()
	// without substitution, and is nil for custom properties
	validate func(tokens []pa.Token) error
	// animatable is false if mix() is not allowed
	animatable bool
}

func (c substitutionChecker) checkWhole(fn pa.FunctionBlock, inToggle bool, depth int) error {
	if depth > maxSubstitutionDepth {
		return errTooDeep
	}
	name := utils.AsciiLower(fn.Name)
	parts := pa.SplitOn(fn.Arguments, ";")
	switch name {
	case "first-valid":
		for _, part := range parts {
			if err := c.checkArgument(part, false, inToggle, depth); err != nil {
				return err
			}
		}
	case "mix":
		if len(parts) != 3 {
			return fmt.Errorf("%w: mix() expects 3 arguments", ErrInvalidValue)
		}
		if !c.animatable {
			return fmt.Errorf("%w: mix() requires an animatable property", ErrInvalidValue)
		}
		if _, err := checkArbitrary(parts[0], depth+1); err != nil {
			return err
		}
		for _, part := range parts[1:] {
			if err := c.checkArgument(part, true, inToggle, depth); err != nil {
				return err
			}
		}
	case "toggle":
		if inToggle {
			return fmt.Errorf("%w: nested toggle()", ErrInvalidValue)
		}
		for _, part := range parts {
			if err := c.checkArgument(part, true, true, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c substitutionChecker) checkArgument(tokens []pa.Token, validate, inToggle bool, depth int) error {
	if significant := pa.RemoveWhitespace(tokens); len(significant) == 1 {
		if name, ok := functionName(significant[0]); ok && wholeValueSubstitutions.Has(name) {
			return c.checkWhole(significant[0].(pa.FunctionBlock), inToggle, depth+1)
		}
	}
	hasSubstitution, err := checkArbitrary(tokens, depth+1)
	if err != nil {
		return err
	}
	if validate && !hasSubstitution && c.validate != nil {
		return c.validate(tokens)
	}
	return nil
}

// detectSubstitution returns true if `tokens` contains substitution functions,
// which are checked but not replaced.
func (c substitutionChecker) detectSubstitution(tokens []pa.Token) (bool, error) {
	if significant := pa.RemoveWhitespace(tokens); len(significant) == 1 {
		if name, ok := functionName(significant[0]); ok && wholeValueSubstitutions.Has(name) {
			return true, c.checkWhole(significant[0].(pa.FunctionBlock), false, 0)
		}
	}
	return checkArbitrary(tokens, 0)
}

// substitutionText returns the canonical serialization of a value
// with substitution functions.
func substitutionText(tokens []pa.Token) string {
	return pa.Canonical(simplifyAttr(tokens))
}

// simplifyAttr removes the default 'string' type of attr() functions,
// and their empty string fallback when the type is a string.
func simplifyAttr(tokens []pa.Token) []pa.Token {
	out := make([]pa.Token, len(tokens))
	for i, token := range tokens {
		switch t := token.(type) {
		case pa.FunctionBlock:
			args := simplifyAttr(t.Arguments)
			if utils.AsciiLower(t.Name) == "attr" {
				args = simplifyAttrArguments(args)
			}
			out[i] = pa.NewFunction(t.Name, args)
		case pa.ParenthesesBlock:
			t.Arguments = simplifyAttr(t.Arguments)
			out[i] = t
		case pa.SquareBracketsBlock:
			t.Arguments = simplifyAttr(t.Arguments)
			out[i] = t
		default:
			out[i] = token
		}
	}
	return out
}

func simplifyAttrArguments(args []pa.Token) []pa.Token {
	head, fallback, hasFallback := splitFirst(args, ",")
	significant := pa.RemoveWhitespace(head)
	isString := len(significant) == 1
	if len(significant) == 2 {
		if id, ok := significant[1].(pa.Ident); ok && utils.AsciiLower(id.Value) == "string" {
			significant, isString = significant[:1], true
		}
	}
	out := []pa.Token{}
	for i, token := range significant {
		if i > 0 {
			out = append(out, pa.Whitespace{Value: " "})
		}
		out = append(out, token)
	}
	if !hasFallback {
		return out
	}
	if f := pa.RemoveWhitespace(fallback); isString && len(f) == 1 {
		if s, ok := f[0].(pa.String); ok && s.Value == "" {
			return out
		}
	}
	out = append(out, pa.NewLiteral(","))
	return append(out, fallback...)
}
