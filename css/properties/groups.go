package properties

import "strings"

// logicalGroup is a set of longhands sharing the same grammar, mapped
// either to physical sides or dimensions or to flow-relative ones.
type logicalGroup struct {
	name              string
	pattern           string // the "%s" is replaced by the side
	physical, logical []string
	syntax, initial   string
}

var (
	physicalSides = []string{"top", "right", "bottom", "left"}
	logicalSides  = []string{"block-start", "block-end", "inline-start", "inline-end"}
)

var logicalGroups = [...]logicalGroup{
	{"border-color", "border-%s-color", physicalSides, logicalSides, "<color>", "currentcolor"},
	{"border-style", "border-%s-style", physicalSides, logicalSides, "<line-style>", "none"},
	{"border-width", "border-%s-width", physicalSides, logicalSides, "<line-width>", "medium"},
	{
		"border-radius", "border-%s-radius",
		[]string{"top-left", "top-right", "bottom-right", "bottom-left"},
		[]string{"start-start", "start-end", "end-end", "end-start"},
		"<border-radius-value>", "0px",
	},
	{"inset", "%s", physicalSides, []string{"inset-block-start", "inset-block-end", "inset-inline-start", "inset-inline-end"}, "<inset-value>", "auto"},
	{"margin", "margin-%s", physicalSides, logicalSides, "<margin-width>", "0px"},
	{"padding", "padding-%s", physicalSides, logicalSides, "<padding-width>", "0px"},
	{"scroll-margin", "scroll-margin-%s", physicalSides, logicalSides, "<length>", "0px"},
	{"scroll-padding", "scroll-padding-%s", physicalSides, logicalSides, "auto | <length-percentage [0,∞]>", "auto"},
	{"size", "%s", []string{"width", "height"}, []string{"block-size", "inline-size"}, "<size-value>", "auto"},
	{"min-size", "min-%s", []string{"width", "height"}, []string{"block-size", "inline-size"}, "<size-value>", "auto"},
	{"max-size", "max-%s", []string{"width", "height"}, []string{"block-size", "inline-size"}, "<max-size-value>", "none"},
	{"overflow", "overflow-%s", []string{"x", "y"}, []string{"block", "inline"}, "<overflow-value> | overlay", "visible"},
	{"overscroll-behavior", "overscroll-behavior-%s", []string{"x", "y"}, []string{"block", "inline"}, "contain | none | auto", "auto"},
	{
		"contain-intrinsic-size", "contain-intrinsic-%s",
		[]string{"width", "height"}, []string{"block-size", "inline-size"},
		"auto? [ none | <length [0,∞]> ]", "none",
	},
}

// names returns the physical and logical longhand names,
// in this order.
func (g logicalGroup) names() (physical, logical []string) {
	format := func(sides []string) []string {
		out := make([]string, len(sides))
		for i, side := range sides {
			out[i] = strings.Replace(g.pattern, "%s", side, 1)
		}
		return out
	}
	return format(g.physical), format(g.logical)
}
