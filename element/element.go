// Package element is the data model the parser (out of scope) produces and
// C1's resolver mutates in place: Element, PropertyDeclaration, Binding and
// the typed Expression tree that Binding.Expression becomes once resolved.
package element

import "github.com/viewlang/core/diag"

// BaseKind classifies what an Element is built on top of.
type BaseKind int

const (
	// BaseNativeWidget elements are built-in items (Rectangle, Text, ...).
	BaseNativeWidget BaseKind = iota
	// BaseComponent elements instantiate a user-authored component.
	BaseComponent
	// BaseGlobal elements are singleton, document-wide property/callback
	// holders with no visual representation.
	BaseGlobal
)

// RepeatedSpec marks an Element as the template of a Repeater: the model
// expression and the per-instance index/data variable names.
type RepeatedSpec struct {
	Model     *Binding
	IndexName string // "" if the `for ... [i] in ...` index was not named
	DataName  string
}

// Element is one node of the element tree the resolver operates over. Its
// enclosing Component is stored via a handle that degrades gracefully if
// the element is dropped (spec invariant 4), even though Go's GC means
// nothing here actually needs reference counting the way a manual-memory
// host language would; the dropped flag exists purely so NamedReference
// equality and upgrade keep working for documents the caller tears down
// incrementally (e.g. a live editor session).
type Element struct {
	ID       string
	Base     BaseKind
	BaseName string

	Properties *PropertyTable
	Bindings   map[string]*Binding

	Children []*Element
	Repeated *RepeatedSpec

	component *Component
	dropped   *bool
}

// NewElement returns an Element with empty property/binding tables, owned
// by owner (owner may be nil for elements under construction by tests).
func NewElement(id string, base BaseKind, baseName string, owner *Component) *Element {
	dropped := false
	return &Element{
		ID:         id,
		Base:       base,
		BaseName:   baseName,
		Properties: NewPropertyTable(),
		Bindings:   map[string]*Binding{},
		component:  owner,
		dropped:    &dropped,
	}
}

// Component returns the enclosing component, or nil if e has been dropped.
func (e *Element) Component() *Component {
	if e == nil || e.dropped == nil || *e.dropped {
		return nil
	}
	return e.component
}

// MarkDropped invalidates every NamedReference pointing at e; later
// upgrades fail soft instead of returning a zombie Element.
func (e *Element) MarkDropped() {
	if e.dropped != nil {
		*e.dropped = true
	}
}

// IsDropped reports whether MarkDropped has been called on e.
func (e *Element) IsDropped() bool {
	return e.dropped != nil && *e.dropped
}

// Binding returns the named property's Binding, if declared on e directly.
func (e *Element) Binding(property string) (*Binding, bool) {
	b, ok := e.Bindings[property]
	return b, ok
}

// SetBinding installs (or replaces) the Binding for a property.
func (e *Element) SetBinding(property string, b *Binding) {
	e.Bindings[property] = b
}

// Location is a best-effort source location for diagnostics anchored to the
// element itself rather than one of its bindings (e.g. "unknown element
// type"). Elements built by hand (tests) may leave this zero.
type Location = diag.Location

// Component is the owner of a tree of Elements: the unit the resolver's two
// passes iterate over (spec §4.1, "Runs two passes over every component").
type Component struct {
	Name string
	Root *Element
	// Globals referenced by this component, resolved by name during
	// lookup's "globals" tier.
	Globals map[string]*Component
}

// NewComponent returns an empty Component named name with no root yet set.
func NewComponent(name string) *Component {
	return &Component{Name: name, Globals: map[string]*Component{}}
}
