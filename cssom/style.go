// Package cssom implements CSS declaration blocks, as exposed to scripts
// by the style of elements and rules: reading and writing properties,
// shorthands included, and the serialization of the block as cssText.
package cssom

import (
	pa "github.com/benoitkugler/cssom/css/parser"
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/css/validation"
	"github.com/benoitkugler/cssom/logger"
	"github.com/benoitkugler/cssom/utils"
)

// StyleDeclaration is a declaration block of a given kind.
// It is not safe for concurrent use.
type StyleDeclaration struct {
	table      *pr.Table
	store      *store
	parentRule interface{}
	readOnly   bool
}

// NewStyleDeclaration returns an empty block accepting the properties of `kind`.
// `parentRule` is optional.
func NewStyleDeclaration(kind Kind, parentRule interface{}) *StyleDeclaration {
	table := pr.Get(kind)
	return &StyleDeclaration{table: table, store: newStore(table), parentRule: parentRule}
}

func (sd *StyleDeclaration) Kind() Kind { return sd.table.Kind }

// ParentRule returns the rule owning the block, or nil.
func (sd *StyleDeclaration) ParentRule() interface{} { return sd.parentRule }

// Length returns the number of longhand and custom property declarations.
func (sd *StyleDeclaration) Length() int { return sd.store.length() }

// Item returns the name of the i-th declaration, or an empty string
// if `i` is out of range.
func (sd *StyleDeclaration) Item(i int) string {
	decl, _ := sd.store.item(i)
	return decl.Name
}

// Declarations returns a copy of the declarations, in order.
func (sd *StyleDeclaration) Declarations() []Declaration {
	return append([]Declaration(nil), sd.store.list...)
}

// resolveName returns the canonical name of a property
// supported by the block.
func (sd *StyleDeclaration) resolveName(name string) (string, bool) {
	if pr.IsCustom(name) && !isIdent(name) {
		return "", false
	}
	return sd.table.Resolve(name)
}

func isIdent(name string) bool {
	tokens := pa.TokenizeString(name, false)
	if len(tokens) != 1 {
		return false
	}
	ident, ok := tokens[0].(pa.Ident)
	return ok && ident.Value == name
}

// GetPropertyValue returns the serialized value of the given property,
// or an empty string if it is not set, or if it is a shorthand whose
// longhands can't be represented by a value of the shorthand.
func (sd *StyleDeclaration) GetPropertyValue(name string) string {
	name, ok := sd.resolveName(name)
	if !ok {
		return ""
	}
	sh, isShorthand := sd.table.Shorthand(name)
	if !isShorthand {
		decl, _ := sd.store.get(name)
		if decl.Value == nil {
			return ""
		}
		return decl.Value.String()
	}
	if sh.Legacy {
		decl, ok := sd.store.get(sh.Longhands[0])
		if !ok {
			return ""
		}
		return validation.SerializeLegacy(sh, decl.Value)
	}
	values, _, ok := sd.longhandValues(sh)
	if !ok {
		return ""
	}
	text, _ := validation.SerializeShorthand(sd.table, sh, values)
	return text
}

// longhandValues returns the values of the longhands of `sh` and their
// common importance, or false if one is missing or the importance differs.
func (sd *StyleDeclaration) longhandValues(sh *pr.Shorthand) ([]validation.DeclaredValue, bool, bool) {
	values := make([]validation.DeclaredValue, len(sh.Longhands))
	var important bool
	for i, l := range sh.Longhands {
		decl, ok := sd.store.get(l)
		if !ok {
			return nil, false, false
		}
		if i == 0 {
			important = decl.Important
		} else if decl.Important != important {
			return nil, false, false
		}
		values[i] = decl.Value
	}
	return values, important, true
}

// GetPropertyPriority returns "important" if the property, or all
// the longhands of a shorthand, are important.
func (sd *StyleDeclaration) GetPropertyPriority(name string) string {
	name, ok := sd.resolveName(name)
	if !ok {
		return ""
	}
	var important bool
	if sh, isShorthand := sd.table.Shorthand(name); isShorthand {
		_, important, _ = sd.longhandValues(sh)
	} else {
		decl, _ := sd.store.get(name)
		important = decl.Important
	}
	if important {
		return "important"
	}
	return ""
}

// SetProperty sets the value of a property, or removes it if `value` is empty.
// `priority` must be empty or "important".
// Unsupported names, priorities or values are ignored, and
// the only error returned is ErrReadOnly.
func (sd *StyleDeclaration) SetProperty(name, value, priority string) error {
	if sd.readOnly {
		return ErrReadOnly
	}
	name, ok := sd.resolveName(name)
	if !ok {
		return nil
	}
	var important bool
	switch utils.AsciiLower(priority) {
	case "":
	case "important":
		important = true
	default:
		return nil
	}
	if important && !sd.table.Priority {
		return nil
	}
	if value == "" {
		sd.removeProperty(name)
		return nil
	}
	tokens := pa.TokenizeString(value, false)
	if _, hasImportant := pa.SplitImportant(tokens); hasImportant {
		return nil
	}
	props, err := validation.Parse(sd.table, name, tokens)
	if err != nil {
		return nil
	}
	for _, prop := range props {
		sd.store.set(Declaration{Name: prop.Name, Value: prop.Value, Important: important})
	}
	return nil
}

// RemoveProperty removes a property, or all the longhands of a
// shorthand, and returns its previous value.
func (sd *StyleDeclaration) RemoveProperty(name string) (string, error) {
	if sd.readOnly {
		return "", ErrReadOnly
	}
	name, ok := sd.resolveName(name)
	if !ok {
		return "", nil
	}
	return sd.removeProperty(name), nil
}

func (sd *StyleDeclaration) removeProperty(name string) string {
	value := sd.GetPropertyValue(name)
	if sh, ok := sd.table.Shorthand(name); ok {
		for _, l := range sh.Longhands {
			sd.store.remove(l)
		}
	} else {
		sd.store.remove(name)
	}
	return value
}

// SetCSSText replaces the declarations of the block by the ones
// parsed from `css`. Invalid declarations are ignored.
func (sd *StyleDeclaration) SetCSSText(css string) error {
	if sd.readOnly {
		return ErrReadOnly
	}
	sd.store.clear()
	sd.parseDeclarations(pa.TokenizeString(css, false))
	return nil
}

func (sd *StyleDeclaration) parseDeclarations(tokens []pa.Token) {
	for _, compound := range pa.ParseDeclarationList(tokens, true, true) {
		declaration, ok := compound.(pa.Declaration)
		if !ok {
			continue
		}
		if err := sd.parseDeclaration(declaration); err != nil {
			logger.WarningLogger.Warnf("Ignored `%s:%s` , %s.", declaration.Name, pa.Serialize(declaration.Value), err)
		}
	}
}

func (sd *StyleDeclaration) parseDeclaration(declaration pa.Declaration) error {
	name, ok := sd.resolveName(declaration.Name)
	if !ok {
		return errUnknownProperty
	}
	if declaration.Important && !sd.table.Priority {
		return errPriority
	}
	props, err := validation.Parse(sd.table, name, declaration.Value)
	if err != nil {
		return err
	}
	for _, prop := range props {
		if previous, ok := sd.store.get(prop.Name); ok {
			if previous.Important && !declaration.Important {
				continue
			}
			sd.store.remove(prop.Name)
		}
		sd.store.set(Declaration{Name: prop.Name, Value: prop.Value, Important: declaration.Important})
	}
	return nil
}
