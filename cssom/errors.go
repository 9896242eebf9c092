package cssom

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is returned when mutating a computed style.
	ErrReadOnly = errors.New("cssom: the declaration block is read-only")

	// ErrMediumNotFound is returned by MediaList.DeleteMedium.
	ErrMediumNotFound = errors.New("cssom: medium not found in the media list")

	// ErrUnknownAttribute is returned by StyleDeclaration.Set for
	// names which are not attributes of the declaration block.
	ErrUnknownAttribute = errors.New("cssom: unknown attribute")

	errReplaceMissingDeclaration = errors.New("cssom: replacing a missing declaration")
)

// TypeError is returned when a value assigned to an attribute
// has no string conversion.
type TypeError struct {
	Attribute string
	Interface string // for instance CSSStyleProperties
	Type      string // the kind of the provided value
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("Failed to set the '%s' property on '%s': The provided value is a %s, which cannot be converted to a string.",
		err.Attribute, err.Interface, err.Type)
}

var (
	errUnknownProperty = errors.New("unknown property")
	errPriority        = errors.New("priority is not allowed")
)
