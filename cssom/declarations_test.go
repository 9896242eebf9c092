package cssom

import (
	"testing"

	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/css/validation"
	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func mustParse(t *testing.T, name, value string) validation.DeclaredValue {
	t.Helper()
	props, err := validation.ParseString(pr.Get(pr.Style), name, value)
	tu.AssertNoErr(t, err)
	return props[0].Value
}

func names(s *store) []string {
	var out []string
	for _, decl := range s.list {
		out = append(out, decl.Name)
	}
	return out
}

func TestStore(t *testing.T) {
	s := newStore(pr.Get(pr.Style))
	s.set(Declaration{Name: "color", Value: mustParse(t, "color", "red")})
	s.set(Declaration{Name: "width", Value: mustParse(t, "width", "1px")})
	s.set(Declaration{Name: "color", Value: mustParse(t, "color", "blue"), Important: true})
	tu.AssertEqual(t, names(s), []string{"color", "width"})
	tu.AssertEqual(t, s.length(), 2)

	decl, ok := s.get("color")
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, decl.String(), "color: blue !important;")

	tu.AssertEqual(t, s.remove("color"), true)
	tu.AssertEqual(t, s.remove("color"), false)
	tu.AssertEqual(t, names(s), []string{"width"})
	tu.AssertEqual(t, s.position("width"), 0)
	tu.AssertEqual(t, s.position("color"), -1)

	_, ok = s.item(1)
	tu.AssertEqual(t, ok, false)
}

func TestStoreLogicalConflict(t *testing.T) {
	s := newStore(pr.Get(pr.Style))
	s.set(Declaration{Name: "width", Value: mustParse(t, "width", "1px")})
	s.set(Declaration{Name: "block-size", Value: mustParse(t, "block-size", "2px")})
	s.set(Declaration{Name: "height", Value: mustParse(t, "height", "3px")})
	tu.AssertEqual(t, names(s), []string{"width", "block-size", "height"})

	s.set(Declaration{Name: "width", Value: mustParse(t, "width", "4px")})
	tu.AssertEqual(t, names(s), []string{"block-size", "height", "width"})

	// same mapping logic: in place
	s.set(Declaration{Name: "height", Value: mustParse(t, "height", "5px")})
	tu.AssertEqual(t, names(s), []string{"block-size", "height", "width"})
	tu.AssertEqual(t, s.position("width"), 2)
}

func TestStoreReplaceMissing(t *testing.T) {
	s := newStore(pr.Get(pr.Style))
	defer func() {
		tu.AssertEqual(t, recover(), errReplaceMissingDeclaration)
	}()
	s.replace(Declaration{Name: "color", Value: validation.WideKeyword("inherit")})
}
