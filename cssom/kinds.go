package cssom

import pr "github.com/benoitkugler/cssom/css/properties"

// Kind selects the properties accepted by a declaration block.
type Kind = pr.Kind

const (
	Style       = pr.Style
	Keyframe    = pr.Keyframe
	FontFace    = pr.FontFace
	Page        = pr.Page
	Margin      = pr.Margin
	PositionTry = pr.PositionTry
)

// interfaceName returns the IDL interface exposing the
// declarations of `kind`, used in error messages.
func interfaceName(kind Kind) string {
	switch kind {
	case Keyframe:
		return "CSSKeyframeProperties"
	case FontFace:
		return "CSSFontFaceDescriptors"
	case Page:
		return "CSSPageDescriptors"
	case Margin:
		return "CSSMarginDescriptors"
	case PositionTry:
		return "CSSPositionTryDescriptors"
	default:
		return "CSSStyleProperties"
	}
}
