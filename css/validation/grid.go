package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/cssom/css/grammar"
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/utils"
)

// hasKeyword returns true if `kw` is used as a keyword in `v`
func hasKeyword(v *grammar.Value, kw string) bool {
	if v == nil {
		return false
	}
	if v.IsKeyword(kw) {
		return true
	}
	for _, c := range v.Children {
		if hasKeyword(c, kw) {
			return true
		}
	}
	return false
}

func expandGrid(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.Property == "grid-template" {
		return expandGridTemplate(sh, v)
	}
	dense := ""
	if hasKeyword(v, "dense") {
		dense = " dense"
	}
	if rows := v.Find("grid-template-rows"); rows != nil {
		out := expansion{"grid-template-rows": rows.String(), "grid-auto-flow": "column" + dense}
		if columns := v.Find("grid-auto-columns"); columns != nil {
			out["grid-auto-columns"] = columns.String()
		}
		return out, nil
	}
	out := expansion{"grid-auto-flow": "row" + dense}
	if columns := v.Find("grid-template-columns"); columns != nil {
		out["grid-template-columns"] = columns.String()
	}
	if rows := v.Find("grid-auto-rows"); rows != nil {
		out["grid-auto-rows"] = rows.String()
	}
	return out, nil
}

func lineNames(block *grammar.Value) []string {
	if block == nil || len(block.Children) == 0 {
		return nil
	}
	return valueTexts(block.Children[0].Items())
}

func expandGridTemplate(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	if v.IsKeyword("none") {
		return expansion{}, nil
	}
	if rows := v.Find("grid-template-rows"); rows != nil {
		return expansion{
			"grid-template-rows":    rows.String(),
			"grid-template-columns": v.Find("grid-template-columns").String(),
		}, nil
	}

	// [ <line-names>? <string> <track-size>? <line-names>? ]+ [ '/' <track-list> ]?
	if v.Kind != grammar.ListValue || len(v.Children) != 2 || v.Children[0] == nil {
		return nil, invalid("unexpected grid-template value %s", v)
	}
	var (
		areas, rows []string
		trailing    []string // names closing the previous row
	)
	for _, row := range v.Children[0].Items() {
		if len(row.Children) != 4 {
			return nil, invalid("unexpected grid-template row %s", row)
		}
		names := append(trailing, lineNames(row.Children[0])...)
		if len(names) != 0 {
			rows = append(rows, "["+strings.Join(names, " ")+"]")
		}
		areas = append(areas, row.Children[1].String())
		size := "auto"
		if row.Children[2] != nil {
			size = row.Children[2].String()
		}
		rows = append(rows, size)
		trailing = lineNames(row.Children[3])
	}
	if len(trailing) != 0 {
		rows = append(rows, "["+strings.Join(trailing, " ")+"]")
	}
	out := expansion{
		"grid-template-areas": strings.Join(areas, " "),
		"grid-template-rows":  strings.Join(rows, " "),
	}
	if columns := v.Children[1].FindType("track-list"); columns != nil {
		out["grid-template-columns"] = columns.String()
	}
	return out, nil
}

// gridLineDefault returns the value of an omitted grid line:
// a copy of a <custom-ident> line, 'auto' otherwise.
func gridLineDefault(text string) string {
	tokens := pa.RemoveWhitespace(pa.TokenizeString(text, true))
	if len(tokens) == 1 {
		if id, ok := tokens[0].(pa.Ident); ok {
			if kw := utils.AsciiLower(id.Value); kw != "auto" && kw != "span" {
				return text
			}
		}
	}
	return "auto"
}

func expandGridLines(sh *pr.Shorthand, v *grammar.Value) (expansion, error) {
	lines := []string{v.Children[0].String()}
	if rest := v.Children[1]; rest != nil {
		slashes := rest.Items()
		if len(rest.Children) != 0 && rest.Children[0] != nil && rest.Children[0].Kind == grammar.DelimValue {
			slashes = []*grammar.Value{rest} // single '/' <grid-line>
		}
		for _, s := range slashes {
			lines = append(lines, s.Children[1].String())
		}
	}
	if len(lines) > len(sh.Longhands) {
		return nil, invalid("too many grid lines for %s", sh.Name)
	}
	values := make([]string, len(sh.Longhands))
	copy(values, lines)
	if len(sh.Longhands) == 2 {
		if len(lines) < 2 {
			values[1] = gridLineDefault(values[0])
		}
	} else { // row-start, column-start, row-end, column-end
		if len(lines) < 2 {
			values[1] = gridLineDefault(values[0])
		}
		if len(lines) < 3 {
			values[2] = gridLineDefault(values[0])
		}
		if len(lines) < 4 {
			values[3] = gridLineDefault(values[1])
		}
	}
	out := expansion{}
	for i, l := range sh.Longhands {
		out[l] = values[i]
	}
	return out, nil
}

func collapseGridLines(c collapse) (string, bool) {
	values := make([]string, len(c.sh.Longhands))
	for i, l := range c.sh.Longhands {
		values[i] = c.get(l)
	}
	n := len(values)
	if n == 2 {
		if values[1] == gridLineDefault(values[0]) {
			n = 1
		}
	} else if values[3] == gridLineDefault(values[1]) {
		n = 3
		if values[2] == gridLineDefault(values[0]) {
			n = 2
			if values[1] == gridLineDefault(values[0]) {
				n = 1
			}
		}
	}
	return strings.Join(values[:n], " / "), true
}

func collapseGrid(c collapse) (string, bool) {
	var (
		flow     = c.get("grid-auto-flow")
		rows     = c.get("grid-template-rows")
		columns  = c.get("grid-template-columns")
		autoRows = c.get("grid-auto-rows")
		autoCols = c.get("grid-auto-columns")
	)
	if c.isInitial("grid-auto-flow") && c.isInitial("grid-auto-rows") && c.isInitial("grid-auto-columns") {
		return gridTemplate(rows, columns, c.get("grid-template-areas"))
	}
	if !c.isInitial("grid-template-areas") {
		return "", false
	}
	autoFlow := "auto-flow"
	if strings.HasSuffix(flow, "dense") {
		autoFlow += " dense"
	}
	switch flow {
	case "column", "column dense":
		if !c.isInitial("grid-auto-rows") || columns != "none" {
			return "", false
		}
		out := rows + " / " + autoFlow
		if !c.isInitial("grid-auto-columns") {
			out += " " + autoCols
		}
		return out, true
	case "row", "dense":
		if !c.isInitial("grid-auto-columns") || rows != "none" {
			return "", false
		}
		out := autoFlow
		if !c.isInitial("grid-auto-rows") {
			out += " " + autoRows
		}
		return out + " / " + columns, true
	}
	return "", false
}

func collapseGridTemplate(c collapse) (string, bool) {
	return gridTemplate(c.get("grid-template-rows"), c.get("grid-template-columns"), c.get("grid-template-areas"))
}

// gridTemplate interleaves the areas with the row track list,
// which must have one (non repeated) track per row.
func gridTemplate(rows, columns, areas string) (string, bool) {
	if areas == "none" {
		if rows == "none" && columns == "none" {
			return "none", true
		}
		return rows + " / " + columns, true
	}
	if isRepeatedTrackList(columns) {
		return "", false
	}
	var strs []string
	for _, token := range pa.RemoveWhitespace(pa.TokenizeString(areas, true)) {
		strs = append(strs, pa.Canonical([]pa.Token{token}))
	}
	var (
		parts []string
		row   int
	)
	for _, token := range pa.RemoveWhitespace(pa.TokenizeString(rows, true)) {
		text := pa.Canonical([]pa.Token{token})
		if _, isNames := token.(pa.SquareBracketsBlock); isNames {
			parts = append(parts, text)
			continue
		}
		if text == "none" || text == "subgrid" || isRepeatedTrackList(text) || row >= len(strs) {
			return "", false
		}
		parts = append(parts, strs[row])
		if text != "auto" {
			parts = append(parts, text)
		}
		row++
	}
	if row != len(strs) {
		return "", false
	}
	out := strings.Join(parts, " ")
	if columns != "none" {
		out += " / " + columns
	}
	return out, true
}

// isRepeatedTrackList returns true for the track lists using repeat() or subgrid.
func isRepeatedTrackList(text string) bool {
	for _, token := range pa.RemoveWhitespace(pa.TokenizeString(text, true)) {
		switch token := token.(type) {
		case pa.FunctionBlock:
			if utils.AsciiLower(token.Name) == "repeat" {
				return true
			}
		case pa.Ident:
			if utils.AsciiLower(token.Value) == "subgrid" {
				return true
			}
		}
	}
	return false
}

// minimizeGridAutoFlow omits the default 'row' of 'row dense'.
func minimizeGridAutoFlow(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) == 2 && v.Children[0].IsKeyword("row") && v.Children[1] != nil {
		return v.Children[1], true
	}
	return v, true
}

// minimizeTrackList removes the empty line names, except for subgrids.
func minimizeTrackList(v *grammar.Value) (*grammar.Value, bool) {
	if v.Kind == grammar.ListValue && len(v.Children) != 0 && v.Children[0].IsKeyword("subgrid") {
		return v, true
	}
	return dropEmptyNames(v), true
}

func isEmptyNames(v *grammar.Value) bool {
	switch v.Kind {
	case grammar.BlockValue:
		return len(v.Children) == 0 || len(v.Children[0].Items()) == 0
	case grammar.KeywordValue: // inside a repeat() function
		return v.Text == "[]"
	}
	return false
}

func dropEmptyNames(v *grammar.Value) *grammar.Value {
	if v == nil || len(v.Children) == 0 || v.Kind == grammar.BlockValue {
		return v
	}
	out := *v
	out.Children = make([]*grammar.Value, len(v.Children))
	for i, c := range v.Children {
		if c != nil && isEmptyNames(c) {
			continue
		}
		out.Children[i] = dropEmptyNames(c)
	}
	return &out
}

// minimizeTemplateAreas checks that each named area is a rectangle
// and that all the rows have the same number of columns,
// normalizing the whitespace between the cells.
func minimizeTemplateAreas(v *grammar.Value) (*grammar.Value, bool) {
	if v.IsKeyword("none") {
		return v, true
	}
	type bounds struct{ minRow, maxRow, minCol, maxCol, count int }
	areas := map[string]*bounds{}
	var (
		rows    []*grammar.Value
		columns = -1
	)
	for r, str := range v.Items() {
		cells, ok := areaCells(str.Name)
		if !ok || (columns != -1 && len(cells) != columns) {
			return nil, false
		}
		columns = len(cells)
		for c, cell := range cells {
			if cell == "." {
				continue
			}
			b := areas[cell]
			if b == nil {
				b = &bounds{minRow: r, maxRow: r, minCol: c, maxCol: c}
				areas[cell] = b
			}
			b.minRow, b.maxRow = utils.MinInt(b.minRow, r), utils.MaxInt(b.maxRow, r)
			b.minCol, b.maxCol = utils.MinInt(b.minCol, c), utils.MaxInt(b.maxCol, c)
			b.count++
		}
		text := strings.Join(cells, " ")
		rows = append(rows, &grammar.Value{Kind: grammar.StringValue, Text: pa.SerializeString(text), Name: text})
	}
	for _, b := range areas {
		if (b.maxRow-b.minRow+1)*(b.maxCol-b.minCol+1) != b.count {
			return nil, false
		}
	}
	return grammar.NewList(" ", rows...), true
}

func isAreaNameRune(r rune) bool {
	return r == '-' || r == '_' || r >= utf8.RuneSelf ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// areaCells splits a row of grid-template-areas into named cells
// and null cells, made of one or more '.'.
func areaCells(row string) ([]string, bool) {
	var cells []string
	runes := []rune(row)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f':
			i++
		case r == '.':
			for i < len(runes) && runes[i] == '.' {
				i++
			}
			cells = append(cells, ".")
		case isAreaNameRune(r):
			start := i
			for i < len(runes) && isAreaNameRune(runes[i]) {
				i++
			}
			cells = append(cells, string(runes[start:i]))
		default:
			return nil, false
		}
	}
	return cells, len(cells) != 0
}
