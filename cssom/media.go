package cssom

import (
	"strings"

	pa "github.com/benoitkugler/cssom/css/parser"
	"github.com/benoitkugler/cssom/utils"
)

// MediaList is the list of media queries of a rule or a stylesheet.
// Invalid queries are kept, and serialized as "not all".
type MediaList struct {
	queries []mediaQuery
}

// NewMediaList parses `text` as a comma separated list of media queries.
func NewMediaList(text string) *MediaList {
	return &MediaList{queries: parseMediaQueryList(text)}
}

// MediaText serializes the list.
func (ml *MediaList) MediaText() string {
	items := make([]string, len(ml.queries))
	for i, q := range ml.queries {
		items[i] = q.String()
	}
	return strings.Join(items, ", ")
}

// SetMediaText replaces the queries by the ones parsed from `text`.
func (ml *MediaList) SetMediaText(text string) { ml.queries = parseMediaQueryList(text) }

func (ml *MediaList) Length() int { return len(ml.queries) }

// Item returns the serialization of the i-th query, or false
// if `i` is out of range.
func (ml *MediaList) Item(i int) (string, bool) {
	if i < 0 || i >= len(ml.queries) {
		return "", false
	}
	return ml.queries[i].String(), true
}

// AppendMedium adds a single media query, if not already present.
func (ml *MediaList) AppendMedium(medium string) {
	queries := parseMediaQueryList(medium)
	if len(queries) != 1 {
		return
	}
	for _, q := range ml.queries {
		if q == queries[0] {
			return
		}
	}
	ml.queries = append(ml.queries, queries[0])
}

// DeleteMedium removes all the occurrences of a single media query.
func (ml *MediaList) DeleteMedium(medium string) error {
	queries := parseMediaQueryList(medium)
	if len(queries) != 1 {
		return nil
	}
	kept := ml.queries[:0]
	for _, q := range ml.queries {
		if q != queries[0] {
			kept = append(kept, q)
		}
	}
	found := len(kept) != len(ml.queries)
	ml.queries = kept
	if !found {
		return ErrMediumNotFound
	}
	return nil
}

// mediaQuery is a parsed query, normalized so that
// equal queries have equal fields.
type mediaQuery struct {
	modifier  string // "not", "only" or empty
	mediaType string // empty for a bare condition
	condition string
}

var notAll = mediaQuery{modifier: "not", mediaType: "all"}

func (q mediaQuery) String() string {
	if q.mediaType == "" {
		return q.condition
	}
	out := q.mediaType
	if q.modifier != "" {
		out = q.modifier + " " + out
	}
	if q.condition != "" {
		out += " and " + q.condition
	}
	return out
}

func parseMediaQueryList(text string) []mediaQuery {
	tokens := pa.TokenizeString(text, false)
	if len(pa.RemoveWhitespace(tokens)) == 0 {
		return nil
	}
	parts := pa.SplitOnComma(tokens)
	out := make([]mediaQuery, len(parts))
	for i, part := range parts {
		q, ok := parseMediaQuery(pa.RemoveWhitespace(part))
		if !ok {
			q = notAll
		}
		out[i] = q
	}
	return out
}

var reservedMediaTypes = utils.NewSet("only", "not", "and", "or", "layer")

func parseMediaQuery(tokens []pa.Token) (mediaQuery, bool) {
	if len(tokens) == 0 {
		return mediaQuery{}, false
	}
	var q mediaQuery
	if first, ok := tokens[0].(pa.Ident); ok {
		switch keyword := utils.AsciiLower(first.Value); keyword {
		case "not", "only":
			if len(tokens) < 2 {
				return q, false
			}
			if _, ok := tokens[1].(pa.Ident); !ok {
				// not (condition)
				cond, ok := parseMediaCondition(tokens, true)
				return mediaQuery{condition: cond}, ok && keyword == "not"
			}
			q.modifier = keyword
			tokens = tokens[1:]
		}
		mediaType := utils.AsciiLower(tokens[0].(pa.Ident).Value)
		if reservedMediaTypes.Has(mediaType) {
			return q, false
		}
		q.mediaType = mediaType
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return q, true
		}
		if len(tokens) < 2 || !isKeyword(tokens[0], "and") {
			return q, false
		}
		cond, ok := parseMediaCondition(tokens[1:], false)
		q.condition = cond
		if q.mediaType == "all" && q.modifier == "" {
			q.mediaType = "" // all and (color) is (color)
		}
		return q, ok
	}
	cond, ok := parseMediaCondition(tokens, true)
	return mediaQuery{condition: cond}, ok
}

// parseMediaCondition returns the serialization of a condition,
// and false if it is invalid.
func parseMediaCondition(tokens []pa.Token, allowOr bool) (string, bool) {
	if isKeyword(tokens[0], "not") {
		if len(tokens) != 2 || !isMediaInParens(tokens[1]) {
			return "", false
		}
		return "not " + pa.Canonical(tokens[1:]), true
	}
	if !isMediaInParens(tokens[0]) {
		return "", false
	}
	parts := []string{pa.Canonical(tokens[:1])}
	var operator string
	for rest := tokens[1:]; len(rest) != 0; rest = rest[2:] {
		if len(rest) < 2 || !isMediaInParens(rest[1]) {
			return "", false
		}
		op, ok := rest[0].(pa.Ident)
		if !ok {
			return "", false
		}
		lower := utils.AsciiLower(op.Value)
		if lower != "and" && (lower != "or" || !allowOr) {
			return "", false
		}
		if operator != "" && operator != lower {
			return "", false
		}
		operator = lower
		parts = append(parts, lower, pa.Canonical(rest[1:2]))
	}
	return strings.Join(parts, " "), true
}

func isKeyword(token pa.Token, keyword string) bool {
	ident, ok := token.(pa.Ident)
	return ok && utils.AsciiEqualFold(ident.Value, keyword)
}

func isMediaInParens(token pa.Token) bool {
	switch token := token.(type) {
	case pa.ParenthesesBlock:
		return len(pa.RemoveWhitespace(token.Arguments)) != 0
	case pa.FunctionBlock:
		return true
	}
	return false
}
