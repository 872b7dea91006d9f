package element

// NamedReference is a weak (element, property name) pair — spec §3's
// "NamedReference": a value type that upgrades to an Element, failing soft
// if the element has since been dropped (invariant 4).
type NamedReference struct {
	elem     *Element
	Property string
}

// NewNamedReference returns a NamedReference at (elem, property).
func NewNamedReference(elem *Element, property string) NamedReference {
	return NamedReference{elem: elem, Property: property}
}

// Upgrade resolves the reference to its Element, failing if the element has
// been dropped since the reference was created.
func (r NamedReference) Upgrade() (*Element, bool) {
	if r.elem == nil || r.elem.IsDropped() {
		return nil, false
	}
	return r.elem, true
}

// Equal implements spec invariant 4: equality requires the same element
// identity and the same property name, not merely matching upgraded values.
func (r NamedReference) Equal(other NamedReference) bool {
	return r.elem == other.elem && r.Property == other.Property
}

// IsZero reports whether r was never assigned a target element.
func (r NamedReference) IsZero() bool {
	return r.elem == nil
}

// Declaration looks up the PropertyDeclaration the reference points at, if
// both the element and the named property still exist.
func (r NamedReference) Declaration() (*PropertyDeclaration, bool) {
	e, ok := r.Upgrade()
	if !ok {
		return nil, false
	}
	return e.Properties.Get(r.Property)
}
