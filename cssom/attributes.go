package cssom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	pr "github.com/benoitkugler/cssom/css/properties"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// attributes maps, for each kind, the IDL attribute names
// to the property names.
var attributes [PositionTry + 1]map[string]string

func init() {
	title := cases.Title(language.Und)
	for kind := range attributes {
		table := pr.Get(Kind(kind))
		m := map[string]string{}
		for _, name := range table.Names() {
			m[name] = name
			if strings.HasPrefix(name, "-webkit-") {
				m[camelCase(title, name[1:])] = name // webkitOrder
			}
			m[camelCase(title, name)] = name
		}
		if _, ok := m["float"]; ok {
			m["cssFloat"] = "float"
		}
		attributes[kind] = m
	}
}

// camelCase converts a property name to an IDL attribute name,
// as in "border-top-color" -> "borderTopColor".
// A leading dash becomes a capital letter, as in "-webkit-order" -> "WebkitOrder".
func camelCase(title cases.Caser, property string) string {
	parts := strings.Split(property, "-")
	var b strings.Builder
	for i, part := range parts {
		if i == 0 {
			b.WriteString(part)
		} else {
			b.WriteString(title.String(part))
		}
	}
	return b.String()
}

// Get returns the value of the property reflected by `attribute`,
// like "borderTopColor" or "border-top-color", or false if there is none.
func (sd *StyleDeclaration) Get(attribute string) (string, bool) {
	name, ok := attributes[sd.table.Kind][attribute]
	if !ok {
		return "", false
	}
	return sd.GetPropertyValue(name), true
}

// Set sets the value of the property reflected by `attribute`.
// `value` is converted to a string, and a *TypeError is
// returned when there is no conversion.
func (sd *StyleDeclaration) Set(attribute string, value interface{}) error {
	name, ok := attributes[sd.table.Kind][attribute]
	if !ok {
		return ErrUnknownAttribute
	}
	s, ok := stringify(value)
	if !ok {
		return &TypeError{Attribute: attribute, Interface: interfaceName(sd.table.Kind), Type: typeName(value)}
	}
	return sd.SetProperty(name, s, "")
}

func stringify(value interface{}) (string, bool) {
	switch value := value.(type) {
	case nil:
		return "", true
	case string:
		return value, true
	case fmt.Stringer:
		return value.String(), true
	case error:
		return value.Error(), true
	case bool:
		return strconv.FormatBool(value), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.String:
		return rv.String(), true
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			item, ok := stringify(rv.Index(i).Interface())
			if !ok {
				return "", false
			}
			items[i] = item
		}
		return strings.Join(items, ","), true
	case reflect.Ptr:
		if rv.IsNil() {
			return "", true
		}
		return stringify(rv.Elem().Interface())
	}
	return "", false
}

func typeName(value interface{}) string {
	return reflect.ValueOf(value).Kind().String()
}
