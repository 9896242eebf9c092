package properties

// longhands lists the longhand properties which do not belong
// to a logical property group, as name, grammar and initial value.
// See groups.go for the others.
var longhands = [...][3]string{
	{"accent-color", "auto | <color>", "auto"},
	{"align-content", "normal | <baseline-position> | <content-distribution> | <overflow-position>? <content-position>", "normal"},
	{"align-items", "normal | stretch | <baseline-position> | <overflow-position>? <self-position> | anchor-center", "normal"},
	{"align-self", "auto | normal | stretch | <baseline-position> | <overflow-position>? <self-position> | anchor-center", "auto"},
	{"alignment-baseline", "baseline | text-bottom | alphabetic | ideographic | middle | central | mathematical | text-top", "baseline"},
	{"anchor-name", "none | <dashed-ident>#", "none"},
	{"anchor-scope", "none | all | <dashed-ident>#", "none"},
	{"animation-composition", "<single-animation-composition>#", "replace"},
	{"animation-delay", "<time>#", "0s"},
	{"animation-direction", "<single-animation-direction>#", "normal"},
	{"animation-duration", "[ auto | <time [0,∞]> ]#", "auto"},
	{"animation-fill-mode", "<single-animation-fill-mode>#", "none"},
	{"animation-iteration-count", "<single-animation-iteration-count>#", "1"},
	{"animation-name", "[ none | <keyframes-name> ]#", "none"},
	{"animation-play-state", "<single-animation-play-state>#", "running"},
	{"animation-range-end", "[ normal | <length-percentage> | <timeline-range-name> <length-percentage>? ]#", "normal"},
	{"animation-range-start", "[ normal | <length-percentage> | <timeline-range-name> <length-percentage>? ]#", "normal"},
	{"animation-timeline", "<single-animation-timeline>#", "auto"},
	{"animation-timing-function", "<easing-function>#", "ease"},
	{"appearance", "none | auto | base | textfield | menulist-button | searchfield | textarea | push-button | " +
		"slider-horizontal | checkbox | radio | square-button | menulist | listbox | meter | progress-bar | button", "none"},
	{"aspect-ratio", "auto || <ratio>", "auto"},
	{"backdrop-filter", "none | <filter-value-list>", "none"},
	{"backface-visibility", "visible | hidden", "visible"},
	{"background-attachment", "<attachment>#", "scroll"},
	{"background-blend-mode", "<blend-mode>#", "normal"},
	{"background-clip", "<bg-clip>#", "border-box"},
	{"background-color", "<color>", "transparent"},
	{"background-image", "<bg-image>#", "none"},
	{"background-origin", "<visual-box>#", "padding-box"},
	{"background-position", "<bg-position>#", "0% 0%"},
	{"background-repeat", "<repeat-style>#", "repeat"},
	{"background-size", "<bg-size>#", "auto"},
	{"baseline-shift", "<length-percentage> | sub | super | top | center | bottom", "0px"},
	{"baseline-source", "auto | first | last", "auto"},
	{"block-ellipsis", "none | auto | <string>", "none"},
	{"block-step-align", "auto | center | start | end", "auto"},
	{"block-step-insert", "margin | padding", "margin"},
	{"block-step-round", "up | down | nearest", "up"},
	{"block-step-size", "none | <length [0,∞]>", "none"},
	{"border-clip-bottom", "normal | [ <length-percentage [0,∞]> | <flex> ]+", "normal"},
	{"border-clip-left", "normal | [ <length-percentage [0,∞]> | <flex> ]+", "normal"},
	{"border-clip-right", "normal | [ <length-percentage [0,∞]> | <flex> ]+", "normal"},
	{"border-clip-top", "normal | [ <length-percentage [0,∞]> | <flex> ]+", "normal"},
	{"border-collapse", "separate | collapse", "separate"},
	{"border-image-outset", "[ <number [0,∞]> | <length [0,∞]> ]{1,4}", "0"},
	{"border-image-repeat", "[ stretch | repeat | round | space ]{1,2}", "stretch"},
	{"border-image-slice", "[ <number [0,∞]> | <percentage [0,∞]> ]{1,4} && fill?", "100%"},
	{"border-image-source", "none | <image>", "none"},
	{"border-image-width", "[ <number [0,∞]> | <length-percentage [0,∞]> | auto ]{1,4}", "1"},
	{"border-spacing", "<length>{1,2}", "0px"},
	{"box-decoration-break", "slice | clone", "slice"},
	{"box-shadow-blur", "<length [0,∞]>#", "0px"},
	{"box-shadow-color", "<color>#", "currentcolor"},
	{"box-shadow-offset", "[ none | <length>{2} ]#", "none"},
	{"box-shadow-position", "[ outset | inset ]#", "outset"},
	{"box-shadow-spread", "<length>#", "0px"},
	{"box-sizing", "content-box | border-box", "content-box"},
	{"break-after", "auto | avoid | always | all | avoid-page | page | left | right | recto | verso | " +
		"avoid-column | column | avoid-region | region", "auto"},
	{"break-before", "auto | avoid | always | all | avoid-page | page | left | right | recto | verso | " +
		"avoid-column | column | avoid-region | region", "auto"},
	{"break-inside", "auto | avoid | avoid-page | avoid-column | avoid-region", "auto"},
	{"caption-side", "top | bottom", "top"},
	{"caret-animation", "auto | manual", "auto"},
	{"caret-color", "auto | <color>", "auto"},
	{"caret-shape", "auto | bar | block | underscore", "auto"},
	{"clear", "inline-start | inline-end | block-start | block-end | left | right | top | bottom | " +
		"both-inline | both-block | both | none", "none"},
	{"clip-path", "none | <url> | <basic-shape> || <geometry-box>", "none"},
	{"clip-rule", "nonzero | evenodd", "nonzero"},
	{"color", "<color>", "canvastext"},
	{"color-interpolation", "auto | srgb | linearrgb", "srgb"},
	{"color-scheme", "normal | <scheme-ident>+ && only?", "normal"},
	{"column-count", "auto | <integer [1,∞]>", "auto"},
	{"column-fill", "auto | balance | balance-all", "balance"},
	{"column-gap", "normal | <length-percentage [0,∞]>", "normal"},
	{"column-rule-color", "<color>", "currentcolor"},
	{"column-rule-style", "<line-style>", "none"},
	{"column-rule-width", "<line-width>", "medium"},
	{"column-span", "none | all", "none"},
	{"column-width", "auto | <length [0,∞]>", "auto"},
	{"contain", "none | strict | content | [ [ size | inline-size ] || layout || style || paint ]", "none"},
	{"container-name", "none | <container-ident>+", "none"},
	{"container-type", "normal | size | inline-size", "normal"},
	{"content", "normal | none | <content-item>+ [ '/' [ <string> | <counter-function> ]+ ]?", "normal"},
	{"content-visibility", "visible | auto | hidden", "visible"},
	{"continue", "auto | discard | -webkit-discard | collapse", "auto"},
	{"corner-shape", "[ round | angle ]{1,4}", "round"},
	{"counter-increment", "[ <counter-ident> <integer>? ]+ | none", "none"},
	{"counter-reset", "[ <counter-ident> <integer>? ]+ | none", "none"},
	{"counter-set", "[ <counter-ident> <integer>? ]+ | none", "none"},
	{"cue-after", "<url> <decibel>? | none", "none"},
	{"cue-before", "<url> <decibel>? | none", "none"},
	{"cursor", "[ <url> [ <number> <number> ]? ',' ]* <cursor-keyword>", "auto"},
	{"direction", "ltr | rtl", "ltr"},
	{"display", "[ <display-outside> || <display-inside> ] | <display-listitem> | <display-internal> | " +
		"<display-box> | <display-legacy>", "inline"},
	{"dominant-baseline", "auto | text-bottom | alphabetic | ideographic | middle | central | mathematical | hanging | text-top", "auto"},
	{"empty-cells", "show | hide", "show"},
	{"field-sizing", "fixed | content", "fixed"},
	{"fill", "<paint>", "black"},
	{"fill-opacity", "<number-percentage>", "1"},
	{"fill-rule", "nonzero | evenodd", "nonzero"},
	{"filter", "none | <filter-value-list>", "none"},
	{"flex-basis", "content | <size-value>", "auto"},
	{"flex-direction", "row | row-reverse | column | column-reverse", "row"},
	{"flex-grow", "<number [0,∞]>", "0"},
	{"flex-shrink", "<number [0,∞]>", "1"},
	{"flex-wrap", "nowrap | wrap | wrap-reverse", "nowrap"},
	{"float", "block-start | block-end | inline-start | inline-end | snap-block | snap-inline | " +
		"left | right | top | bottom | none", "none"},
	{"flood-color", "<color>", "black"},
	{"flood-opacity", "<number-percentage>", "1"},
	{"flow-from", "none | <flow-ident>", "none"},
	{"flow-into", "none | <flow-ident> [ element | content ]?", "none"},
	{"font-family", "[ <generic-family> | <family-name> ]#", "monospace"},
	{"font-feature-settings", "normal | <font-feature-tag>#", "normal"},
	{"font-kerning", "auto | normal | none", "auto"},
	{"font-language-override", "normal | <string>", "normal"},
	{"font-optical-sizing", "auto | none", "auto"},
	{"font-palette", "normal | light | dark | <dashed-ident>", "normal"},
	{"font-size", "<absolute-size> | <relative-size> | <length-percentage [0,∞]> | math", "medium"},
	{"font-size-adjust", "none | [ ex-height | cap-height | ch-width | ic-width | ic-height ]? [ from-font | <number [0,∞]> ]", "none"},
	{"font-style", "normal | italic | left | right | oblique <angle [-90,90]>?", "normal"},
	{"font-synthesis-position", "auto | none", "auto"},
	{"font-synthesis-small-caps", "auto | none", "auto"},
	{"font-synthesis-style", "auto | none | oblique-only", "auto"},
	{"font-synthesis-weight", "auto | none", "auto"},
	{"font-variant-alternates", "normal | [ historical-forms || <font-function>+ ]", "normal"},
	{"font-variant-caps", "normal | small-caps | all-small-caps | petite-caps | all-petite-caps | unicase | titling-caps", "normal"},
	{"font-variant-east-asian", "normal | [ <east-asian-variant-values> || <east-asian-width-values> || ruby ]", "normal"},
	{"font-variant-emoji", "normal | text | emoji | unicode", "normal"},
	{"font-variant-ligatures", "normal | none | [ <common-lig-values> || <discretionary-lig-values> || " +
		"<historical-lig-values> || <contextual-alt-values> ]", "normal"},
	{"font-variant-numeric", "normal | [ <numeric-figure-values> || <numeric-spacing-values> || " +
		"<numeric-fraction-values> || ordinal || slashed-zero ]", "normal"},
	{"font-variant-position", "normal | sub | super", "normal"},
	{"font-variation-settings", "normal | <font-variation-tag>#", "normal"},
	{"font-weight", "<font-weight-absolute> | bolder | lighter", "normal"},
	{"font-width", "<font-stretch-absolute>", "normal"},
	{"forced-color-adjust", "auto | none | preserve-parent-color", "auto"},
	{"grid-auto-columns", "<track-size>+", "auto"},
	{"grid-auto-flow", "[ row | column ] || dense", "row"},
	{"grid-auto-rows", "<track-size>+", "auto"},
	{"grid-column-end", "<grid-line>", "auto"},
	{"grid-column-start", "<grid-line>", "auto"},
	{"grid-row-end", "<grid-line>", "auto"},
	{"grid-row-start", "<grid-line>", "auto"},
	{"grid-template-areas", "none | <string>+", "none"},
	{"grid-template-columns", "none | <track-list> | subgrid [ <line-names> | <name-repeat> ]*", "none"},
	{"grid-template-rows", "none | <track-list> | subgrid [ <line-names> | <name-repeat> ]*", "none"},
	{"hanging-punctuation", "none | [ first || [ force-end | allow-end ] || last ]", "none"},
	{"hyphenate-character", "auto | <string>", "auto"},
	{"hyphenate-limit-chars", "[ auto | <integer> ]{1,3}", "auto"},
	{"hyphens", "none | manual | auto", "manual"},
	{"image-orientation", "from-image | none | [ <angle> || flip ]", "from-image"},
	{"image-rendering", "auto | smooth | high-quality | pixelated | crisp-edges | optimizespeed | optimizequality", "auto"},
	{"image-resolution", "[ from-image || <resolution> ] && snap?", "1dppx"},
	{"initial-letter", "normal | <number [1,∞]> <integer [1,∞]> | <number [1,∞]> && [ drop | raise ]?", "normal"},
	{"isolation", "auto | isolate", "auto"},
	{"justify-content", "normal | <content-distribution> | <overflow-position>? [ <content-position> | left | right ]", "normal"},
	{"justify-items", "normal | stretch | <baseline-position> | <overflow-position>? [ <self-position> | left | right ] | " +
		"legacy && [ left | right | center ]? | anchor-center", "legacy"},
	{"justify-self", "auto | normal | stretch | <baseline-position> | <overflow-position>? [ <self-position> | left | right ] | " +
		"anchor-center", "auto"},
	{"letter-spacing", "normal | <length-percentage>", "normal"},
	{"lighting-color", "<color>", "white"},
	{"line-break", "auto | loose | normal | strict | anywhere", "auto"},
	{"line-height", "normal | <number [0,∞]> | <length-percentage [0,∞]>", "normal"},
	{"list-style-image", "<image> | none", "none"},
	{"list-style-position", "inside | outside", "outside"},
	{"list-style-type", "<counter-style> | <string> | none", "disc"},
	{"marker-end", "none | <url>", "none"},
	{"marker-mid", "none | <url>", "none"},
	{"marker-start", "none | <url>", "none"},
	{"mask-border-mode", "luminance | alpha", "alpha"},
	{"mask-border-outset", "[ <number> | <length> ]{1,4}", "0"},
	{"mask-border-repeat", "[ stretch | repeat | round | space ]{1,2}", "stretch"},
	{"mask-border-slice", "[ <number> | <percentage> ]{1,4} fill?", "0"},
	{"mask-border-source", "none | <image>", "none"},
	{"mask-border-width", "[ <number> | <length-percentage> | auto ]{1,4}", "auto"},
	{"mask-clip", "[ <coord-box> | no-clip ]#", "border-box"},
	{"mask-composite", "<compositing-operator>#", "add"},
	{"mask-image", "<mask-reference>#", "none"},
	{"mask-mode", "<masking-mode>#", "match-source"},
	{"mask-origin", "<coord-box>#", "border-box"},
	{"mask-position", "<position>#", "0% 0%"},
	{"mask-repeat", "<repeat-style>#", "repeat"},
	{"mask-size", "<bg-size>#", "auto"},
	{"mask-type", "luminance | alpha", "luminance"},
	{"masonry-auto-flow", "[ pack | next ] || [ definite-first | ordered ]", "pack"},
	{"max-lines", "none | <integer [1,∞]>", "none"},
	{"mix-blend-mode", "<blend-mode> | plus-lighter", "normal"},
	{"object-fit", "fill | none | [ contain | cover ] || scale-down", "fill"},
	{"object-position", "<position>", "50% 50%"},
	{"offset-anchor", "auto | <position>", "auto"},
	{"offset-distance", "<length-percentage>", "0px"},
	{"offset-path", "none | [ <shape-function> | <basic-shape> | <url> ] || <coord-box>", "none"},
	{"offset-position", "normal | auto | <position>", "normal"},
	{"offset-rotate", "[ auto | reverse ] || <angle>", "auto"},
	{"opacity", "<number-percentage>", "1"},
	{"order", "<integer>", "0"},
	{"orphans", "<integer [1,∞]>", "2"},
	{"outline-color", "auto | <color>", "auto"},
	{"outline-offset", "<length>", "0px"},
	{"outline-style", "<outline-style-value>", "none"},
	{"outline-width", "<line-width>", "medium"},
	{"overflow-anchor", "auto | none", "auto"},
	{"overflow-clip-margin-block-end", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-block-start", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-bottom", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-inline-end", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-inline-start", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-left", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-right", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-clip-margin-top", "<visual-box> || <length [0,∞]>", "0px"},
	{"overflow-wrap", "normal | break-word | anywhere", "normal"},
	{"page", "auto | <page-ident>", "auto"},
	{"paint-order", "normal | [ fill | stroke | markers ]{1,3}", "normal"},
	{"pause-after", "<time [0,∞]> | none | x-weak | weak | medium | strong | x-strong", "none"},
	{"pause-before", "<time [0,∞]> | none | x-weak | weak | medium | strong | x-strong", "none"},
	{"perspective", "none | <length [0,∞]>", "none"},
	{"perspective-origin", "<position>", "50% 50%"},
	{"pointer-events", "auto | bounding-box | visiblepainted | visiblefill | visiblestroke | visible | " +
		"painted | fill | stroke | all | none", "auto"},
	{"position", "static | relative | absolute | sticky | fixed", "static"},
	{"position-anchor", "auto | <dashed-ident>", "auto"},
	{"position-area", "none | <position-area-keyword>{1,2}", "none"},
	{"position-try-fallbacks", "none | [ [ <dashed-ident> || <try-tactic> ] | <position-area-keyword>{1,2} ]#", "none"},
	{"position-try-order", "normal | most-width | most-height | most-block-size | most-inline-size", "normal"},
	{"position-visibility", "always | [ anchors-valid || anchors-visible || no-overflow ]", "anchors-visible"},
	{"print-color-adjust", "economy | exact", "economy"},
	{"quotes", "auto | none | [ <string> <string> ]+", "auto"},
	{"resize", "none | both | horizontal | vertical | block | inline", "none"},
	{"rest-after", "<time [0,∞]> | none | x-weak | weak | medium | strong | x-strong", "none"},
	{"rest-before", "<time [0,∞]> | none | x-weak | weak | medium | strong | x-strong", "none"},
	{"rotate", "none | <angle> | [ x | y | z | <number>{3} ] && <angle>", "none"},
	{"row-gap", "normal | <length-percentage [0,∞]>", "normal"},
	{"ruby-align", "start | center | space-between | space-around", "space-around"},
	{"ruby-position", "[ alternate || [ over | under ] ] | inter-character", "alternate"},
	{"scale", "none | [ <number> | <percentage> ]{1,3}", "none"},
	{"scroll-behavior", "auto | smooth", "auto"},
	{"scroll-snap-align", "[ none | start | end | center ]{1,2}", "none"},
	{"scroll-snap-stop", "normal | always", "normal"},
	{"scroll-snap-type", "none | [ x | y | block | inline | both ] [ mandatory | proximity ]?", "none"},
	{"scroll-start-block", "auto | start | end | center | top | bottom | left | right | <length-percentage [0,∞]>", "auto"},
	{"scroll-start-inline", "auto | start | end | center | top | bottom | left | right | <length-percentage [0,∞]>", "auto"},
	{"scroll-start-target-block", "none | auto", "none"},
	{"scroll-start-target-inline", "none | auto", "none"},
	{"scroll-timeline-axis", "[ block | inline | x | y ]#", "block"},
	{"scroll-timeline-name", "[ none | <dashed-ident> ]#", "none"},
	{"scrollbar-color", "auto | <color>{2}", "auto"},
	{"scrollbar-gutter", "auto | stable && both-edges?", "auto"},
	{"scrollbar-width", "auto | thin | none", "auto"},
	{"shape-image-threshold", "<number-percentage>", "0"},
	{"shape-margin", "<length-percentage [0,∞]>", "0px"},
	{"shape-outside", "none | <basic-shape> || <shape-box> | <image>", "none"},
	{"shape-rendering", "auto | optimizespeed | crispedges | geometricprecision", "auto"},
	{"speak", "auto | never | always", "auto"},
	{"speak-as", "normal | spell-out || digits || [ literal-punctuation | no-punctuation ]", "normal"},
	{"stop-color", "<color>", "black"},
	{"stop-opacity", "<number-percentage>", "1"},
	{"stroke", "<paint>", "none"},
	{"stroke-dasharray", "none | [ <length-percentage [0,∞]> | <number [0,∞]> ]+", "none"},
	{"stroke-dashoffset", "<number> | <length-percentage>", "0"},
	{"stroke-linecap", "butt | round | square", "butt"},
	{"stroke-linejoin", "miter | miter-clip | round | bevel | arcs", "miter"},
	{"stroke-miterlimit", "<number [0,∞]>", "4"},
	{"stroke-opacity", "<number-percentage>", "1"},
	{"stroke-width", "<length-percentage> | <number>", "1px"},
	{"tab-size", "<number [0,∞]> | <length [0,∞]>", "8"},
	{"table-layout", "auto | fixed", "auto"},
	{"text-align-all", "start | end | left | right | center | justify | match-parent | <string>", "start"},
	{"text-align-last", "auto | start | end | left | right | center | justify | match-parent", "auto"},
	{"text-anchor", "start | middle | end", "start"},
	{"text-autospace", "normal | auto | no-autospace | [ ideograph-alpha || ideograph-numeric || punctuation ] || [ insert | replace ]", "normal"},
	{"text-combine-upright", "none | all | digits <integer [2,4]>?", "none"},
	{"text-decoration-color", "<color>", "currentcolor"},
	{"text-decoration-line", "<text-decoration-line-value>", "none"},
	{"text-decoration-skip-ink", "auto | none | all", "auto"},
	{"text-decoration-style", "<text-decoration-style-value>", "solid"},
	{"text-decoration-thickness", "auto | from-font | <length-percentage>", "auto"},
	{"text-emphasis-color", "<color>", "currentcolor"},
	{"text-emphasis-position", "[ over | under ] && [ right | left ]?", "over"},
	{"text-emphasis-style", "<text-emphasis-style-value>", "none"},
	{"text-indent", "<length-percentage> && hanging? && each-line?", "0px"},
	{"text-justify", "[ auto | none | inter-word | inter-character | ruby | distribute ] || no-compress", "auto"},
	{"text-orientation", "mixed | upright | sideways", "mixed"},
	{"text-overflow", "[ clip | ellipsis | <string> ]{1,2}", "clip"},
	{"text-rendering", "auto | optimizespeed | optimizelegibility | geometricprecision", "auto"},
	{"text-shadow", "none | <text-shadow-value>#", "none"},
	{"text-size-adjust", "auto | none | <percentage [0,∞]>", "auto"},
	{"text-spacing-trim", "normal | space-all | space-first | trim-start | trim-both | trim-all | auto", "normal"},
	{"text-transform", "none | math-auto | [ capitalize | uppercase | lowercase ] || full-width || full-size-kana", "none"},
	{"text-underline-offset", "auto | <length-percentage>", "auto"},
	{"text-underline-position", "auto | [ from-font | under ] || [ left | right ]", "auto"},
	{"text-wrap-mode", "wrap | nowrap", "wrap"},
	{"text-wrap-style", "auto | balance | stable | pretty | avoid-orphans", "auto"},
	{"touch-action", "auto | none | [ [ pan-x | pan-left | pan-right ] || [ pan-y | pan-up | pan-down ] || pinch-zoom ] | manipulation", "auto"},
	{"transform", "none | <transform-list>", "none"},
	{"transform-box", "content-box | border-box | fill-box | stroke-box | view-box", "view-box"},
	{"transform-origin", "<position> <length>?", "50% 50%"},
	{"transform-style", "flat | preserve-3d", "flat"},
	{"transition-behavior", "<transition-behavior-value>#", "normal"},
	{"transition-delay", "<time>#", "0s"},
	{"transition-duration", "<time [0,∞]>#", "0s"},
	{"transition-property", "[ none | <single-transition-property> ]#", "all"},
	{"transition-timing-function", "<easing-function>#", "ease"},
	{"translate", "none | <length-percentage> [ <length-percentage> <length>? ]?", "none"},
	{"unicode-bidi", "normal | embed | isolate | bidi-override | isolate-override | plaintext", "normal"},
	{"user-select", "auto | text | none | contain | all", "auto"},
	{"vector-effect", "none | non-scaling-stroke | non-scaling-size | non-rotation | fixed-position", "none"},
	{"view-timeline-axis", "[ block | inline | x | y ]#", "block"},
	{"view-timeline-inset", "[ [ auto | <length-percentage> ]{1,2} ]#", "auto"},
	{"view-timeline-name", "[ none | <dashed-ident> ]#", "none"},
	{"view-transition-class", "none | <custom-ident>+", "none"},
	{"view-transition-name", "none | <view-transition-id>", "none"},
	{"visibility", "visible | hidden | collapse", "visible"},
	{"voice-balance", "<number> | left | center | right | leftwards | rightwards", "center"},
	{"voice-duration", "auto | <time [0,∞]>", "auto"},
	{"voice-family", "[ [ child | young | old ]? [ male | female | neutral ] <integer [1,∞]>? | <family-name> ]# | " +
		"preserve", "preserve"},
	{"voice-pitch", "<frequency [0,∞]> && absolute | " +
		"[ [ x-low | low | medium | high | x-high ] || [ <frequency> | <semitones> | <percentage> ] ]", "medium"},
	{"voice-range", "<frequency [0,∞]> && absolute | " +
		"[ [ x-low | low | medium | high | x-high ] || [ <frequency> | <semitones> | <percentage> ] ]", "medium"},
	{"voice-rate", "[ normal | x-slow | slow | medium | fast | x-fast ] || <percentage [0,∞]>", "normal"},
	{"voice-stress", "normal | strong | moderate | none | reduced", "normal"},
	{"voice-volume", "silent | [ [ x-soft | soft | medium | loud | x-loud ] || <decibel> ]", "medium"},
	{"white-space-collapse", "collapse | discard | preserve | preserve-breaks | preserve-spaces | break-spaces", "collapse"},
	{"white-space-trim", "none | discard-before || discard-after || discard-inner", "none"},
	{"widows", "<integer [1,∞]>", "2"},
	{"will-change", "auto | [ scroll-position | contents | <custom-ident> ]#", "auto"},
	{"word-break", "normal | keep-all | break-all | break-word | auto-phrase", "normal"},
	{"word-spacing", "normal | <length-percentage>", "normal"},
	{"writing-mode", "horizontal-tb | vertical-rl | vertical-lr | sideways-rl | sideways-lr", "horizontal-tb"},
	{"z-index", "auto | <integer>", "auto"},
	{"zoom", "normal | <number [0,∞]> | <percentage [0,∞]>", "normal"},

	{"-webkit-box-align", "stretch | start | center | end | baseline", "stretch"},
	{"-webkit-box-orient", "horizontal | vertical | inline-axis | block-axis", "inline-axis"},
	{"-webkit-box-pack", "start | end | center | justify", "start"},
	{"-webkit-text-fill-color", "<color>", "currentcolor"},
	{"-webkit-text-stroke-color", "<color>", "currentcolor"},
	{"-webkit-text-stroke-width", "<line-width>", "0px"},
}

// notAnimatable are the longhands which can't be interpolated,
// even discretely.
var notAnimatable = [...]string{
	"animation-composition", "animation-delay", "animation-direction", "animation-duration",
	"animation-fill-mode", "animation-iteration-count", "animation-name", "animation-play-state",
	"animation-range-end", "animation-range-start", "animation-timeline", "animation-timing-function",
	"direction", "unicode-bidi", "transition-behavior", "transition-delay", "transition-duration",
	"transition-property", "transition-timing-function", "will-change",
	"scroll-timeline-axis", "scroll-timeline-name", "view-timeline-axis", "view-timeline-inset", "view-timeline-name",
}
