package cssom

import pr "github.com/benoitkugler/cssom/css/properties"

// NewComputedStyle returns a read-only block holding `declarations`,
// in order. Declarations of properties not accepted by `kind` are dropped.
func NewComputedStyle(kind Kind, declarations []Declaration) *StyleDeclaration {
	sd := NewStyleDeclaration(kind, nil)
	for _, decl := range declarations {
		if _, ok := sd.table.Longhand(decl.Name); !ok && !(sd.table.Custom && pr.IsCustom(decl.Name)) {
			continue
		}
		sd.store.set(decl)
	}
	sd.readOnly = true
	return sd
}

// ReadOnly returns true for computed styles.
func (sd *StyleDeclaration) ReadOnly() bool { return sd.readOnly }
