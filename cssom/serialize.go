package cssom

import (
	"strings"

	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/css/validation"
	"github.com/benoitkugler/cssom/utils"
)

// CSSText serializes the block, using shorthands when
// they represent some declarations exactly.
func (sd *StyleDeclaration) CSSText() string {
	var (
		out  []string
		done = utils.NewSet()
	)
	for _, decl := range sd.store.list {
		if done.Has(decl.Name) {
			continue
		}
		if !pr.IsCustom(decl.Name) {
			if text, ok := sd.serializeWithShorthand(decl.Name, done); ok {
				out = append(out, text)
				continue
			}
		}
		done.Add(decl.Name)
		out = append(out, decl.String())
	}
	return strings.Join(out, " ")
}

// serializeWithShorthand tries the shorthands of `longhand`, and marks
// the longhands of the first one that can be used.
func (sd *StyleDeclaration) serializeWithShorthand(longhand string, done utils.Set) (string, bool) {
	for _, sh := range sd.shorthandsOf(longhand) {
		values, important, ok := sd.pendingValues(sh, done)
		if !ok || sd.isInterleaved(sh) {
			continue
		}
		text, ok := validation.SerializeShorthand(sd.table, sh, values)
		if !ok {
			continue
		}
		done.Extend(sh.Longhands)
		return Declaration{Name: sh.Name, Value: validation.Custom(text), Important: important}.String(), true
	}
	return "", false
}

func (sd *StyleDeclaration) shorthandsOf(longhand string) []*pr.Shorthand {
	owners := sd.table.Owners(longhand)
	if all, ok := sd.table.Shorthand("all"); ok && all.Has(longhand) {
		return append([]*pr.Shorthand{all}, owners...)
	}
	return owners
}

// pendingValues is like longhandValues, but also fails if a longhand
// has already been serialized.
func (sd *StyleDeclaration) pendingValues(sh *pr.Shorthand, done utils.Set) ([]validation.DeclaredValue, bool, bool) {
	for _, l := range sh.Longhands {
		if done.Has(l) {
			return nil, false, false
		}
	}
	return sd.longhandValues(sh)
}

// isInterleaved returns true if a declaration between the longhands of `sh`
// conflicts with one of the longhands placed after it, so that
// serializing the shorthand would change the cascade.
func (sd *StyleDeclaration) isInterleaved(sh *pr.Shorthand) bool {
	first, last := len(sd.store.list), -1
	for _, l := range sh.Longhands {
		i := sd.store.position(l)
		if i < first {
			first = i
		}
		if i > last {
			last = i
		}
	}
	for i := first + 1; i < last; i++ {
		other := sd.store.list[i]
		if sh.Has(other.Name) {
			continue
		}
		otherDef, ok := sd.table.Longhand(other.Name)
		if !ok || otherDef.Group == "" {
			continue
		}
		for _, l := range sh.Longhands {
			if sd.store.position(l) <= i {
				continue
			}
			if def, ok := sd.table.Longhand(l); ok && conflicting(def, otherDef) {
				return true
			}
		}
	}
	return false
}
