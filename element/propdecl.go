package element

import "github.com/viewlang/core/typesystem"

// Visibility is a property's declared access level (spec §3).
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityInput
	VisibilityOutput
	VisibilityInOut
	VisibilityPublic
	VisibilityProtected
	// VisibilityFake marks a property synthesized by the resolver itself
	// (e.g. a repeater's implicit model-data/index properties) rather than
	// declared in source.
	VisibilityFake
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityInput:
		return "input"
	case VisibilityOutput:
		return "output"
	case VisibilityInOut:
		return "in-out"
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityFake:
		return "fake"
	default:
		return "unknown"
	}
}

// IsWritableExternally reports whether an outside binding may assign
// through this visibility (used by Pass A's two-way-binding compatibility
// table, spec §4.1).
func (v Visibility) IsWritableExternally() bool {
	switch v {
	case VisibilityInOut, VisibilityPrivate, VisibilityPublic, VisibilityProtected:
		return true
	default:
		return false
	}
}

// PropertyDeclaration is one property declared on an Element.
type PropertyDeclaration struct {
	Name       string
	Type       *typesystem.Type
	Visibility Visibility
	// AliasTarget is set when this declaration is itself an alias
	// (`property <int> x <=> other.y;` sugar, or the LHS of a two-way
	// binding once Pass A resolves it).
	AliasTarget *NamedReference
	// Default is the declared default value's syntax node (nil if the
	// property has a Binding instead, or no initializer at all). Typing of
	// this value happens in Pass B like any other binding.
	Default any

	// IsLinked and IsLinkedToReadOnly are interior-mutable analysis flags
	// set by Pass A (spec §9 "Interior mutability"): they live here rather
	// than in the Binding because a property can be linked without having
	// its own binding expression (a pure alias).
	IsLinked           bool
	IsLinkedToReadOnly bool
}

// propertyEntry is one slot of a PropertyTable's declaration-ordered slice.
type propertyEntry struct {
	name string
	decl *PropertyDeclaration
}

// PropertyTable is Element.Properties: an insertion-ordered map from
// property name to declaration, mirroring typesystem.Fields' slice-plus-
// index-map technique (kept as a separate type since PropertyDeclaration
// carries resolver-only bookkeeping a type-system Fields table has no
// business holding).
type PropertyTable struct {
	order []propertyEntry
	index map[string]int
}

// NewPropertyTable returns an empty table ready to use.
func NewPropertyTable() *PropertyTable {
	return &PropertyTable{index: map[string]int{}}
}

// Add declares a new property, or replaces an existing declaration with the
// same name in place (declaration order preserved).
func (t *PropertyTable) Add(decl *PropertyDeclaration) {
	if i, ok := t.index[decl.Name]; ok {
		t.order[i].decl = decl
		return
	}
	t.index[decl.Name] = len(t.order)
	t.order = append(t.order, propertyEntry{name: decl.Name, decl: decl})
}

// Get returns the named declaration, if present.
func (t *PropertyTable) Get(name string) (*PropertyDeclaration, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.order[i].decl, true
}

// Names returns declared property names in declaration order.
func (t *PropertyTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.order))
	for i, e := range t.order {
		names[i] = e.name
	}
	return names
}

// Len returns the number of declared properties.
func (t *PropertyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}
