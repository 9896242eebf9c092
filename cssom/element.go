package cssom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pa "github.com/benoitkugler/cssom/css/parser"
	"github.com/benoitkugler/cssom/logger"
)

// FromElement returns the inline style of an HTML element, parsed
// from its style attribute. The returned block is detached from the
// element: later changes are not reflected in the attribute.
func FromElement(element *html.Node) *StyleDeclaration {
	sd := NewStyleDeclaration(Style, nil)
	if element == nil || element.Type != html.ElementNode {
		return sd
	}
	for _, attr := range element.Attr {
		if attr.Namespace == "" && atom.Lookup([]byte(attr.Key)) == atom.Style {
			logger.ProgressLogger.Debugf("Parsing style attribute of <%s>", element.Data)
			sd.parseDeclarations(pa.TokenizeString(attr.Val, false))
			break
		}
	}
	return sd
}
