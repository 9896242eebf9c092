package properties

type shorthandDef struct {
	name      string
	longhands []string
	resetOnly []string
	syntax    string
	repeated  bool
	legacy    bool
}

var (
	borderImageLonghands = []string{
		"border-image-source", "border-image-slice", "border-image-width",
		"border-image-outset", "border-image-repeat",
	}
	maskBorderLonghands = []string{
		"mask-border-source", "mask-border-slice", "mask-border-width",
		"mask-border-outset", "mask-border-repeat", "mask-border-mode",
	}
)

// shorthands lists the shorthands not generated from the logical groups.
// In the grammars, <'longhand'> matches one item of a list valued longhand.
var shorthands = [...]shorthandDef{
	{
		name: "animation",
		longhands: []string{
			"animation-duration", "animation-timing-function", "animation-delay", "animation-iteration-count",
			"animation-direction", "animation-fill-mode", "animation-play-state", "animation-name",
			"animation-timeline", "animation-range-start", "animation-range-end",
		},
		resetOnly: []string{"animation-range-start", "animation-range-end"},
		syntax: "<'animation-duration'> || <'animation-timing-function'> || <'animation-delay'> || " +
			"<'animation-iteration-count'> || <'animation-direction'> || <'animation-fill-mode'> || " +
			"<'animation-play-state'> || <'animation-name'> || <'animation-timeline'>",
		repeated: true,
	},
	{
		name:      "animation-range",
		longhands: []string{"animation-range-start", "animation-range-end"},
		syntax:    "<'animation-range-start'> <'animation-range-end'>?",
		repeated:  true,
	},
	{
		name: "background",
		longhands: []string{
			"background-image", "background-position", "background-size", "background-repeat",
			"background-attachment", "background-origin", "background-clip", "background-color",
			"background-blend-mode",
		},
		resetOnly: []string{"background-blend-mode"},
		syntax: "<'background-image'> || <'background-position'> [ '/' <'background-size'> ]? || " +
			"<'background-repeat'> || <'background-attachment'> || <'background-origin'> || " +
			"<'background-clip'> || <'background-color'>",
		repeated: true,
	},
	{
		name:      "block-step",
		longhands: []string{"block-step-size", "block-step-insert", "block-step-align", "block-step-round"},
		syntax:    "<'block-step-size'> || <'block-step-insert'> || <'block-step-align'> || <'block-step-round'>",
	},
	{
		name: "border",
		longhands: append([]string{
			"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
			"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
			"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
		}, borderImageLonghands...),
		resetOnly: borderImageLonghands,
		syntax:    "<'border-top-width'> || <'border-top-style'> || <'border-top-color'>",
	},
	{
		name: "border-block",
		longhands: []string{
			"border-block-start-width", "border-block-end-width", "border-block-start-style",
			"border-block-end-style", "border-block-start-color", "border-block-end-color",
		},
		syntax: "<'border-block-start-width'> || <'border-block-start-style'> || <'border-block-start-color'>",
	},
	{
		name: "border-inline",
		longhands: []string{
			"border-inline-start-width", "border-inline-end-width", "border-inline-start-style",
			"border-inline-end-style", "border-inline-start-color", "border-inline-end-color",
		},
		syntax: "<'border-inline-start-width'> || <'border-inline-start-style'> || <'border-inline-start-color'>",
	},
	{
		name:      "border-clip",
		longhands: []string{"border-clip-top", "border-clip-right", "border-clip-bottom", "border-clip-left"},
		syntax:    "<'border-clip-top'>",
	},
	{
		name:      "border-image",
		longhands: borderImageLonghands,
		syntax: "<'border-image-source'> || <'border-image-slice'> [ '/' <'border-image-width'>? [ '/' <'border-image-outset'> ]? ]? || " +
			"<'border-image-repeat'>",
	},
	{
		name:      "border-radius",
		longhands: []string{"border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"},
		syntax:    "<length-percentage [0,∞]>{1,4} [ '/' <length-percentage [0,∞]>{1,4} ]?",
	},
	{
		name:      "border-block-start-radius",
		longhands: []string{"border-start-start-radius", "border-start-end-radius"},
		syntax:    "<length-percentage [0,∞]>{1,2} [ '/' <length-percentage [0,∞]>{1,2} ]?",
	},
	{
		name:      "border-block-end-radius",
		longhands: []string{"border-end-start-radius", "border-end-end-radius"},
		syntax:    "<length-percentage [0,∞]>{1,2} [ '/' <length-percentage [0,∞]>{1,2} ]?",
	},
	{
		name:      "border-inline-start-radius",
		longhands: []string{"border-start-start-radius", "border-end-start-radius"},
		syntax:    "<length-percentage [0,∞]>{1,2} [ '/' <length-percentage [0,∞]>{1,2} ]?",
	},
	{
		name:      "border-inline-end-radius",
		longhands: []string{"border-start-end-radius", "border-end-end-radius"},
		syntax:    "<length-percentage [0,∞]>{1,2} [ '/' <length-percentage [0,∞]>{1,2} ]?",
	},
	{
		name: "box-shadow",
		longhands: []string{
			"box-shadow-color", "box-shadow-offset", "box-shadow-blur", "box-shadow-spread", "box-shadow-position",
		},
		syntax: "none | <'box-shadow-color'>? && <'box-shadow-offset'> [ <'box-shadow-blur'> <'box-shadow-spread'>? ]? && " +
			"<'box-shadow-position'>?",
		repeated: true,
	},
	{
		name:      "caret",
		longhands: []string{"caret-color", "caret-animation", "caret-shape"},
		syntax:    "<'caret-color'> || <'caret-animation'> || <'caret-shape'>",
	},
	{
		name:      "column-rule",
		longhands: []string{"column-rule-width", "column-rule-style", "column-rule-color"},
		syntax:    "<'column-rule-width'> || <'column-rule-style'> || <'column-rule-color'>",
	},
	{
		name:      "columns",
		longhands: []string{"column-width", "column-count"},
		syntax:    "<'column-width'> || <'column-count'>",
	},
	{
		name:      "container",
		longhands: []string{"container-name", "container-type"},
		syntax:    "<'container-name'> [ '/' <'container-type'> ]?",
	},
	{
		name: "corners",
		longhands: []string{
			"corner-shape", "border-top-left-radius", "border-top-right-radius",
			"border-bottom-right-radius", "border-bottom-left-radius",
		},
		syntax: "<'corner-shape'> || <'border-radius'>",
	},
	{
		name:      "cue",
		longhands: []string{"cue-before", "cue-after"},
		syntax:    "<'cue-before'> <'cue-after'>?",
	},
	{
		name:      "flex",
		longhands: []string{"flex-grow", "flex-shrink", "flex-basis"},
		syntax:    "none | [ <'flex-grow'> <'flex-shrink'>? || <'flex-basis'> ]",
	},
	{
		name:      "flex-flow",
		longhands: []string{"flex-direction", "flex-wrap"},
		syntax:    "<'flex-direction'> || <'flex-wrap'>",
	},
	{
		name: "font",
		longhands: []string{
			"font-style", "font-variant-ligatures", "font-variant-caps", "font-variant-alternates",
			"font-variant-numeric", "font-variant-east-asian", "font-variant-position", "font-variant-emoji",
			"font-weight", "font-width", "font-size", "line-height", "font-family",
			"font-feature-settings", "font-kerning", "font-language-override", "font-optical-sizing",
			"font-size-adjust", "font-variation-settings",
		},
		resetOnly: []string{
			"font-feature-settings", "font-kerning", "font-language-override", "font-optical-sizing",
			"font-size-adjust", "font-variation-settings",
		},
		syntax: "[ [ <'font-style'> || <font-variant-css2> || <font-weight-absolute> || <font-width-css3> ]? " +
			"<'font-size'> [ '/' <'line-height'> ]? <family-list> ] | <system-font>",
	},
	{
		name: "font-synthesis",
		longhands: []string{
			"font-synthesis-weight", "font-synthesis-style", "font-synthesis-small-caps", "font-synthesis-position",
		},
		syntax: "none | [ weight || style || small-caps || position ]",
	},
	{
		name: "font-variant",
		longhands: []string{
			"font-variant-ligatures", "font-variant-caps", "font-variant-alternates", "font-variant-numeric",
			"font-variant-east-asian", "font-variant-position", "font-variant-emoji",
		},
		syntax: "normal | none | [ <common-lig-values> || <discretionary-lig-values> || <historical-lig-values> || " +
			"<contextual-alt-values> || <font-variant-caps-value> || historical-forms || <font-function>+ || " +
			"<numeric-figure-values> || <numeric-spacing-values> || <numeric-fraction-values> || ordinal || slashed-zero || " +
			"<east-asian-variant-values> || <east-asian-width-values> || ruby || [ sub | super ] || [ text | emoji | unicode ] ]",
	},
	{
		name:      "gap",
		longhands: []string{"row-gap", "column-gap"},
		syntax:    "<'row-gap'> <'column-gap'>?",
	},
	{
		name: "grid",
		longhands: []string{
			"grid-template-rows", "grid-template-columns", "grid-template-areas",
			"grid-auto-flow", "grid-auto-rows", "grid-auto-columns",
		},
		syntax: "<'grid-template'> | <'grid-template-rows'> '/' [ auto-flow && dense? ] <'grid-auto-columns'>? | " +
			"[ auto-flow && dense? ] <'grid-auto-rows'>? '/' <'grid-template-columns'>",
	},
	{
		name:      "grid-area",
		longhands: []string{"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"},
		syntax:    "<grid-line> [ '/' <grid-line> ]{0,3}",
	},
	{
		name:      "grid-column",
		longhands: []string{"grid-column-start", "grid-column-end"},
		syntax:    "<grid-line> [ '/' <grid-line> ]?",
	},
	{
		name:      "grid-row",
		longhands: []string{"grid-row-start", "grid-row-end"},
		syntax:    "<grid-line> [ '/' <grid-line> ]?",
	},
	{
		name:      "grid-template",
		longhands: []string{"grid-template-rows", "grid-template-columns", "grid-template-areas"},
		syntax: "none | <'grid-template-rows'> '/' <'grid-template-columns'> | " +
			"[ <line-names>? <string> <track-size>? <line-names>? ]+ [ '/' <track-list> ]?",
	},
	{
		name:      "line-clamp",
		longhands: []string{"max-lines", "block-ellipsis", "continue"},
		syntax:    "none | <integer [1,∞]> || <'block-ellipsis'>",
	},
	{
		name:      "-webkit-line-clamp",
		longhands: []string{"max-lines", "block-ellipsis", "continue"},
		syntax:    "none | <integer [1,∞]>",
	},
	{
		name:      "list-style",
		longhands: []string{"list-style-position", "list-style-image", "list-style-type"},
		syntax:    "<'list-style-position'> || <'list-style-image'> || <'list-style-type'>",
	},
	{
		name:      "marker",
		longhands: []string{"marker-start", "marker-mid", "marker-end"},
		syntax:    "<'marker-start'>",
	},
	{
		name: "mask",
		longhands: append([]string{
			"mask-image", "mask-position", "mask-size", "mask-repeat",
			"mask-origin", "mask-clip", "mask-composite", "mask-mode",
		}, maskBorderLonghands...),
		resetOnly: maskBorderLonghands,
		syntax: "<'mask-image'> || <'mask-position'> [ '/' <'mask-size'> ]? || <'mask-repeat'> || " +
			"<'mask-origin'> || <'mask-clip'> || <'mask-composite'> || <'mask-mode'>",
		repeated: true,
	},
	{
		name:      "mask-border",
		longhands: maskBorderLonghands,
		syntax: "<'mask-border-source'> || <'mask-border-slice'> [ '/' <'mask-border-width'>? [ '/' <'mask-border-outset'> ]? ]? || " +
			"<'mask-border-repeat'> || <'mask-border-mode'>",
	},
	{
		name:      "offset",
		longhands: []string{"offset-position", "offset-path", "offset-distance", "offset-rotate", "offset-anchor"},
		syntax: "[ <'offset-position'>? [ <'offset-path'> [ <'offset-distance'> || <'offset-rotate'> ]? ]? ]! " +
			"[ '/' <'offset-anchor'> ]?",
	},
	{
		name:      "outline",
		longhands: []string{"outline-width", "outline-style", "outline-color"},
		syntax:    "<'outline-width'> || <'outline-style'> || <'outline-color'>",
	},
	{
		name: "overflow-clip-margin",
		longhands: []string{
			"overflow-clip-margin-top", "overflow-clip-margin-right",
			"overflow-clip-margin-bottom", "overflow-clip-margin-left",
		},
		syntax: "<'overflow-clip-margin-top'>",
	},
	{
		name:      "overflow-clip-margin-block",
		longhands: []string{"overflow-clip-margin-block-start", "overflow-clip-margin-block-end"},
		syntax:    "<'overflow-clip-margin-block-start'>",
	},
	{
		name:      "overflow-clip-margin-inline",
		longhands: []string{"overflow-clip-margin-inline-start", "overflow-clip-margin-inline-end"},
		syntax:    "<'overflow-clip-margin-inline-start'>",
	},
	{
		name:      "pause",
		longhands: []string{"pause-before", "pause-after"},
		syntax:    "<'pause-before'> <'pause-after'>?",
	},
	{
		name:      "place-content",
		longhands: []string{"align-content", "justify-content"},
		syntax:    "<'align-content'> <'justify-content'>?",
	},
	{
		name:      "place-items",
		longhands: []string{"align-items", "justify-items"},
		syntax:    "<'align-items'> <'justify-items'>?",
	},
	{
		name:      "place-self",
		longhands: []string{"align-self", "justify-self"},
		syntax:    "<'align-self'> <'justify-self'>?",
	},
	{
		name:      "position-try",
		longhands: []string{"position-try-order", "position-try-fallbacks"},
		syntax:    "<'position-try-order'>? <'position-try-fallbacks'>",
	},
	{
		name:      "rest",
		longhands: []string{"rest-before", "rest-after"},
		syntax:    "<'rest-before'> <'rest-after'>?",
	},
	{
		name:      "scroll-start",
		longhands: []string{"scroll-start-block", "scroll-start-inline"},
		syntax:    "<'scroll-start-block'> <'scroll-start-inline'>?",
	},
	{
		name:      "scroll-start-target",
		longhands: []string{"scroll-start-target-block", "scroll-start-target-inline"},
		syntax:    "<'scroll-start-target-block'> <'scroll-start-target-inline'>?",
	},
	{
		name:      "scroll-timeline",
		longhands: []string{"scroll-timeline-name", "scroll-timeline-axis"},
		syntax:    "<'scroll-timeline-name'> <'scroll-timeline-axis'>?",
		repeated:  true,
	},
	{
		name:      "text-align",
		longhands: []string{"text-align-all", "text-align-last"},
		syntax:    "start | end | left | right | center | justify | match-parent | justify-all | <string>",
	},
	{
		name:      "text-decoration",
		longhands: []string{"text-decoration-line", "text-decoration-thickness", "text-decoration-style", "text-decoration-color"},
		syntax: "<'text-decoration-line'> || <'text-decoration-thickness'> || <'text-decoration-style'> || " +
			"<'text-decoration-color'>",
	},
	{
		name:      "text-emphasis",
		longhands: []string{"text-emphasis-style", "text-emphasis-color"},
		syntax:    "<'text-emphasis-style'> || <'text-emphasis-color'>",
	},
	{
		name:      "text-spacing",
		longhands: []string{"text-spacing-trim", "text-autospace"},
		syntax:    "none | auto | <'text-spacing-trim'> || <'text-autospace'>",
	},
	{
		name:      "text-wrap",
		longhands: []string{"text-wrap-mode", "text-wrap-style"},
		syntax:    "<'text-wrap-mode'> || <'text-wrap-style'>",
	},
	{
		name: "transition",
		longhands: []string{
			"transition-duration", "transition-timing-function", "transition-delay",
			"transition-behavior", "transition-property",
		},
		syntax: "<'transition-duration'> || <'transition-timing-function'> || <'transition-delay'> || " +
			"<'transition-behavior'> || <'transition-property'>",
		repeated: true,
	},
	{
		name:      "vertical-align",
		longhands: []string{"baseline-source", "alignment-baseline", "baseline-shift"},
		syntax:    "<baseline-source-keyword> || <'alignment-baseline'> || <'baseline-shift'>",
	},
	{
		name:      "view-timeline",
		longhands: []string{"view-timeline-name", "view-timeline-axis", "view-timeline-inset"},
		syntax:    "<'view-timeline-name'> [ <'view-timeline-axis'> || <'view-timeline-inset'> ]?",
		repeated:  true,
	},
	{
		name:      "white-space",
		longhands: []string{"white-space-collapse", "text-wrap-mode", "white-space-trim"},
		syntax:    "normal | pre | pre-wrap | pre-line | <'white-space-collapse'> || <'text-wrap-mode'> || <'white-space-trim'>",
	},
	{
		name:      "-webkit-text-stroke",
		longhands: []string{"-webkit-text-stroke-width", "-webkit-text-stroke-color"},
		syntax:    "<'-webkit-text-stroke-width'> || <'-webkit-text-stroke-color'>",
	},

	// legacy names mapped to a standard longhand
	{name: "page-break-after", longhands: []string{"break-after"}, syntax: "auto | always | avoid | left | right", legacy: true},
	{name: "page-break-before", longhands: []string{"break-before"}, syntax: "auto | always | avoid | left | right", legacy: true},
	{name: "page-break-inside", longhands: []string{"break-inside"}, syntax: "auto | avoid", legacy: true},
	{name: "glyph-orientation-vertical", longhands: []string{"text-orientation"}, syntax: "auto | <angle> | <integer>", legacy: true},
}

// aliases maps legacy or vendor prefixed names to the name
// of the property they are an alias of.
var aliases = map[string]string{
	"font-stretch":    "font-width",
	"grid-column-gap": "column-gap",
	"grid-gap":        "gap",
	"grid-row-gap":    "row-gap",
	"word-wrap":       "overflow-wrap",

	"-webkit-align-content":              "align-content",
	"-webkit-align-items":                "align-items",
	"-webkit-align-self":                 "align-self",
	"-webkit-animation":                  "animation",
	"-webkit-animation-delay":            "animation-delay",
	"-webkit-animation-direction":        "animation-direction",
	"-webkit-animation-duration":         "animation-duration",
	"-webkit-animation-fill-mode":        "animation-fill-mode",
	"-webkit-animation-iteration-count":  "animation-iteration-count",
	"-webkit-animation-name":             "animation-name",
	"-webkit-animation-play-state":       "animation-play-state",
	"-webkit-animation-timing-function":  "animation-timing-function",
	"-webkit-appearance":                 "appearance",
	"-webkit-backface-visibility":        "backface-visibility",
	"-webkit-background-clip":            "background-clip",
	"-webkit-background-origin":          "background-origin",
	"-webkit-background-size":            "background-size",
	"-webkit-border-bottom-left-radius":  "border-bottom-left-radius",
	"-webkit-border-bottom-right-radius": "border-bottom-right-radius",
	"-webkit-border-radius":              "border-radius",
	"-webkit-border-top-left-radius":     "border-top-left-radius",
	"-webkit-border-top-right-radius":    "border-top-right-radius",
	"-webkit-box-shadow":                 "box-shadow",
	"-webkit-box-sizing":                 "box-sizing",
	"-webkit-filter":                     "filter",
	"-webkit-flex":                       "flex",
	"-webkit-flex-basis":                 "flex-basis",
	"-webkit-flex-direction":             "flex-direction",
	"-webkit-flex-flow":                  "flex-flow",
	"-webkit-flex-grow":                  "flex-grow",
	"-webkit-flex-shrink":                "flex-shrink",
	"-webkit-flex-wrap":                  "flex-wrap",
	"-webkit-justify-content":            "justify-content",
	"-webkit-mask":                       "mask",
	"-webkit-mask-clip":                  "mask-clip",
	"-webkit-mask-composite":             "mask-composite",
	"-webkit-mask-image":                 "mask-image",
	"-webkit-mask-origin":                "mask-origin",
	"-webkit-mask-position":              "mask-position",
	"-webkit-mask-repeat":                "mask-repeat",
	"-webkit-mask-size":                  "mask-size",
	"-webkit-order":                      "order",
	"-webkit-perspective":                "perspective",
	"-webkit-perspective-origin":         "perspective-origin",
	"-webkit-text-size-adjust":           "text-size-adjust",
	"-webkit-transform":                  "transform",
	"-webkit-transform-origin":           "transform-origin",
	"-webkit-transform-style":            "transform-style",
	"-webkit-transition":                 "transition",
	"-webkit-transition-delay":           "transition-delay",
	"-webkit-transition-duration":        "transition-duration",
	"-webkit-transition-property":        "transition-property",
	"-webkit-transition-timing-function": "transition-timing-function",
	"-webkit-user-select":                "user-select",
}
