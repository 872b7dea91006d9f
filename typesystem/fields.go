package typesystem

import "fmt"

// field is one entry of a Fields table.
type field struct {
	name string
	typ  *Type
}

// Fields is the ordered field table backing a KindStruct Type. Field
// declaration order is preserved (it matters for codegen and for matching
// positional struct literals), while lookup by name stays O(1) via an index
// map. This is the same slice-plus-index-map technique the teacher's
// base/ordmap.Map[K,V] uses, expressed directly on Fields instead of
// composed from a generic container, since Merge and Equal below are
// specific to struct-type unification and don't belong on a general-purpose
// ordered map.
type Fields struct {
	order []field
	index map[string]int
}

// NewFields returns an empty field table ready to use.
func NewFields() *Fields {
	return &Fields{index: map[string]int{}}
}

// Add appends a field, or replaces its type in place if name is already
// present (declaration order is not disturbed by a replacement).
func (f *Fields) Add(name string, typ *Type) {
	if i, ok := f.index[name]; ok {
		f.order[i].typ = typ
		return
	}
	f.index[name] = len(f.order)
	f.order = append(f.order, field{name: name, typ: typ})
}

// Get returns the type of the named field and whether it exists.
func (f *Fields) Get(name string) (*Type, bool) {
	if f == nil {
		return nil, false
	}
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.order[i].typ, true
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Names returns the field names in declaration order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.order))
	for i, fl := range f.order {
		names[i] = fl.name
	}
	return names
}

// Copy returns a deep-enough copy of f (the Fields shell is new; the Type
// pointers themselves are shared, which is fine since Type is immutable).
func (f *Fields) Copy() *Fields {
	out := NewFields()
	if f == nil {
		return out
	}
	out.order = append(out.order, f.order...)
	for k, v := range f.index {
		out.index[k] = v
	}
	return out
}

// Equal reports whether f and other declare the same fields with the same
// types, regardless of declaration order.
func (f *Fields) Equal(other *Fields) bool {
	if f.Len() != other.Len() {
		return false
	}
	for _, fl := range f.order {
		ot, ok := other.Get(fl.name)
		if !ok || !Equal(fl.typ, ot) {
			return false
		}
	}
	return true
}

// Merge returns the field-wise unification of f and other (spec §4.1,
// "two struct types merge field-wise recursively"): fields present in both
// unify their types; fields present in only one side pass through unchanged.
// Declaration order follows f, with other's exclusive fields appended after.
func (f *Fields) Merge(other *Fields) *Fields {
	out := NewFields()
	if f == nil && other == nil {
		return out
	}
	if f != nil {
		for _, fl := range f.order {
			if ot, ok := other.Get(fl.name); ok {
				out.Add(fl.name, CommonTargetType(fl.typ, ot))
			} else {
				out.Add(fl.name, fl.typ)
			}
		}
	}
	if other != nil {
		for _, fl := range other.order {
			if _, already := out.Get(fl.name); !already {
				out.Add(fl.name, fl.typ)
			}
		}
	}
	return out
}

func (f *Fields) String() string {
	if f == nil || len(f.order) == 0 {
		return "{}"
	}
	s := "{"
	for i, fl := range f.order {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", fl.name, fl.typ)
	}
	return s + "}"
}
