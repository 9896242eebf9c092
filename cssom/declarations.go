package cssom

import (
	pr "github.com/benoitkugler/cssom/css/properties"
	"github.com/benoitkugler/cssom/css/validation"
)

// Declaration is a longhand or custom property with its value.
type Declaration struct {
	Name      string
	Value     validation.DeclaredValue
	Important bool
}

func (d Declaration) String() string {
	out := d.Name + ": " + d.Value.String()
	if d.Important {
		out += " !important"
	}
	return out + ";"
}

// store is the ordered list of declarations of a block,
// with at most one declaration per name.
type store struct {
	table *pr.Table
	list  []Declaration
	index map[string]int
}

func newStore(table *pr.Table) *store {
	return &store{table: table, index: map[string]int{}}
}

func (s *store) length() int { return len(s.list) }

func (s *store) item(i int) (Declaration, bool) {
	if i < 0 || i >= len(s.list) {
		return Declaration{}, false
	}
	return s.list[i], true
}

func (s *store) get(name string) (Declaration, bool) {
	i, ok := s.index[name]
	if !ok {
		return Declaration{}, false
	}
	return s.list[i], true
}

// position returns the index of `name`, or -1.
func (s *store) position(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// set adds or updates a declaration. An existing declaration is
// moved to the end when a later declaration of the same logical
// group uses the other mapping logic, so that the new value wins.
func (s *store) set(decl Declaration) {
	i, ok := s.index[decl.Name]
	if !ok {
		s.append(decl)
		return
	}
	if s.conflictsAfter(decl.Name, i) {
		s.removeAt(i)
		s.append(decl)
		return
	}
	s.replace(decl)
}

// conflictsAfter returns true if a declaration after index `i`
// shares the group of `name` with the other mapping logic.
func (s *store) conflictsAfter(name string, i int) bool {
	def, ok := s.table.Longhand(name)
	if !ok || def.Group == "" {
		return false
	}
	for _, other := range s.list[i+1:] {
		if otherDef, ok := s.table.Longhand(other.Name); ok && conflicting(def, otherDef) {
			return true
		}
	}
	return false
}

func conflicting(d1, d2 *pr.Definition) bool {
	return d1.Group != "" && d1.Group == d2.Group && d1.Logical != d2.Logical
}

// replace updates the value of an existing declaration, keeping its position.
func (s *store) replace(decl Declaration) {
	i, ok := s.index[decl.Name]
	if !ok {
		panic(errReplaceMissingDeclaration)
	}
	s.list[i] = decl
}

// remove returns false if there is no declaration for `name`.
func (s *store) remove(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *store) clear() {
	s.list = s.list[:0]
	s.index = map[string]int{}
}

func (s *store) append(decl Declaration) {
	s.index[decl.Name] = len(s.list)
	s.list = append(s.list, decl)
}

func (s *store) removeAt(i int) {
	delete(s.index, s.list[i].Name)
	s.list = append(s.list[:i], s.list[i+1:]...)
	for j := i; j < len(s.list); j++ {
		s.index[s.list[j].Name] = j
	}
}
