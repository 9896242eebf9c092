package cssom

import (
	"errors"
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

type color struct{ name string }

func (c color) String() string { return c.name }

func TestAttributeNames(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	tu.AssertNoErr(t, sd.Set("borderTopColor", "green"))
	for _, attr := range []string{"borderTopColor", "border-top-color"} {
		v, ok := sd.Get(attr)
		tu.AssertEqual(t, ok, true)
		tu.AssertEqual(t, v, "green")
	}

	for i, attr := range []string{"order", "webkitOrder", "WebkitOrder", "-webkit-order"} {
		tu.AssertNoErr(t, sd.Set(attr, i+1))
		for _, other := range []string{"order", "webkitOrder", "WebkitOrder", "-webkit-order"} {
			v, _ := sd.Get(other)
			tu.AssertEqual(t, v, sd.GetPropertyValue("order"))
		}
	}
	tu.AssertEqual(t, sd.GetPropertyValue("order"), "4")

	tu.AssertNoErr(t, sd.Set("gridGap", "1px"))
	v, _ := sd.Get("gap")
	tu.AssertEqual(t, v, "1px")

	tu.AssertNoErr(t, sd.Set("webkitBoxAlign", "center"))
	v, _ = sd.Get("WebkitBoxAlign")
	tu.AssertEqual(t, v, "center")
	tu.AssertEqual(t, sd.GetPropertyValue("align-items"), "")

	tu.AssertEqual(t, sd.Item(0), "border-top-color")
	tu.AssertEqual(t, sd.Item(1), "order")
	tu.AssertEqual(t, sd.Item(2), "row-gap")
	tu.AssertEqual(t, sd.Item(3), "column-gap")
	tu.AssertEqual(t, sd.Item(4), "-webkit-box-align")

	tu.AssertNoErr(t, sd.Set("cssFloat", "left"))
	v, _ = sd.Get("float")
	tu.AssertEqual(t, v, "left")

	_, ok := sd.Get("--custom")
	tu.AssertEqual(t, ok, false)
	tu.AssertEqual(t, sd.Set("fontsize", "1px"), ErrUnknownAttribute)
}

func TestAttributeValues(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	for _, data := range []struct {
		attribute string
		value     interface{}
		expected  string
	}{
		{"opacity", 0.5, "0.5"},
		{"opacity", float32(0.25), "0.25"},
		{"zIndex", int64(-2), "-2"},
		{"order", uint8(3), "3"},
		{"color", color{"red"}, "red"},
		{"fontFamily", []string{"a", "serif"}, "a, serif"},
		{"transitionDuration", [2]int{1, 2}, ""}, // "1,2" is not a valid time
	} {
		tu.AssertNoErr(t, sd.Set(data.attribute, data.value))
		v, _ := sd.Get(data.attribute)
		if data.expected != "" {
			tu.AssertEqual(t, v, data.expected)
		}
	}

	tu.AssertNoErr(t, sd.Set("opacity", nil))
	v, _ := sd.Get("opacity")
	tu.AssertEqual(t, v, "")
}

func TestTypeError(t *testing.T) {
	sd := NewStyleDeclaration(Style, nil)
	err := sd.Set("opacity", func() {})
	var typeErr *TypeError
	tu.AssertEqual(t, errors.As(err, &typeErr), true)
	tu.AssertEqual(t, err.Error(), "Failed to set the 'opacity' property on 'CSSStyleProperties': The provided value is a func, which cannot be converted to a string.")

	err = NewStyleDeclaration(FontFace, nil).Set("fontWeight", map[string]int{})
	tu.AssertEqual(t, err.Error(), "Failed to set the 'fontWeight' property on 'CSSFontFaceDescriptors': The provided value is a map, which cannot be converted to a string.")
}
