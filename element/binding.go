package element

import "github.com/viewlang/core/syntax"

// AnimationSpec is a minimal placeholder for a binding's optional animation
// clause. Animation timelines themselves are out of scope (spec §1
// Non-goals); the resolver only needs to know one is present so it can
// thread the duration/easing syntax through unresolved rather than drop it.
type AnimationSpec struct {
	Duration *Expression
	Easing   string
}

// Binding is a property's declarative value (spec §3): it starts out
// wrapping an Uncompiled syntax node and is mutated exactly once by C1 to
// hold a typed Expression (spec "Lifecycles": "mutated once by C1 ...
// immutable thereafter").
type Binding struct {
	Expression *Expression
	Animation  *AnimationSpec

	// TwoWayLinks accumulates every NamedReference this binding is linked
	// to via Pass A (spec §4.1 Pass A). All linked properties share
	// storage (invariant 5).
	TwoWayLinks []NamedReference

	// IsConst marks a binding whose expression contains no property
	// reference it can ever change through (a pure literal/arithmetic-of-
	// literals expression); used by codegen (out of scope here) to skip
	// re-evaluation wiring.
	IsConst bool
}

// NewBinding wraps a freshly-parsed syntax node in an Uncompiled Binding.
func NewBinding(n syntax.Node) *Binding {
	return &Binding{Expression: Uncompiled(n)}
}

// IsTwoWay reports whether b's syntax node is a two-way-binding form
// (Pass A dispatches on this before Pass B ever sees the binding).
func (b *Binding) IsTwoWay() bool {
	if !b.Expression.IsUncompiled() {
		return false
	}
	n := b.Expression.Data.(UncompiledData).Node
	_, ok := syntax.AsTwoWayBinding(n)
	return ok
}

// Resolve replaces b's Uncompiled expression with its typed form. Pass B
// calls it once per binding that is not a two-way binding; Pass A never
// calls it, and a two-way binding keeps its Expression untouched while
// Pass A only appends to TwoWayLinks.
func (b *Binding) Resolve(typed *Expression) {
	b.Expression = typed
}
