package resolve

import (
	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

// Options controls resolver behavior that spec §9's Open Questions leave
// platform- or mode-gated.
type Options struct {
	// LegacyMode relaxes certain Pass A visibility violations from errors
	// to warnings (spec §9, first open question).
	LegacyMode bool
}

// ResolveExpressions is C1's public operation (spec §4.1): it runs Pass A
// then Pass B over every component in doc, converting every Uncompiled
// binding into a typed expression and recording diagnostics along the way.
// It never aborts early, so diags ends up holding every problem in the
// document at once (spec "Failure semantics").
func ResolveExpressions(doc *Document, loader TypeLoader, diags *diag.Builder, opts Options) {
	for _, comp := range doc.Components {
		runPassA(doc, comp, loader, diags, opts)
	}
	for _, comp := range doc.Components {
		runPassB(doc, comp, loader, diags)
	}
}

// runPassA resolves two-way bindings (spec §4.1 Pass A).
func runPassA(doc *Document, comp *element.Component, loader TypeLoader, diags *diag.Builder, opts Options) {
	walkElements(comp.Root, nil, func(e *element.Element, scope []*element.Element) {
		for propName, binding := range e.Bindings {
			if !binding.IsTwoWay() {
				continue
			}
			resolveTwoWayBinding(doc, loader, diags, opts, e, propName, binding, scope)
		}
	})
}

func resolveTwoWayBinding(doc *Document, loader TypeLoader, diags *diag.Builder, opts Options, lhsElem *element.Element, propName string, binding *element.Binding, scope []*element.Element) {
	n := binding.Expression.Data.(element.UncompiledData).Node
	twoWay, _ := syntax.AsTwoWayBinding(n)

	ctx := &LookupContext{
		PropertyName:   propName,
		ComponentScope: scope,
		Document:       doc,
		Loader:         loader,
		LocalVariables: []map[string]*typesystem.Type{{}},
	}

	result := ResolveQualifiedName(ctx, twoWay.Target, diags)
	if result.Kind != element.ExprReference {
		return // diagnostic already emitted by ResolveQualifiedName
	}
	rhsRef := result.Data.(element.ReferenceData).Target

	lhsDecl, hasLHS := lhsElem.Properties.Get(propName)
	rhsElem, _ := rhsRef.Upgrade()
	rhsDecl, hasRHS := rhsElem.Properties.Get(rhsRef.Property)
	if !hasLHS || !hasRHS {
		return
	}

	outcome := twoWayVisibilityOutcome(lhsDecl.Visibility, rhsDecl.Visibility)
	switch outcome {
	case linkReject:
		diags.ErrorOrWarnf(opts.LegacyMode, twoWay.Location(), diag.VisibilityViolation,
			"cannot link %q (%s) to %q (%s)", propName, lhsDecl.Visibility, rhsRef.Property, rhsDecl.Visibility)
		return
	case linkAcceptReadOnly:
		lhsDecl.IsLinkedToReadOnly = true
	}

	lhsDecl.IsLinked = true
	binding.TwoWayLinks = append(binding.TwoWayLinks, rhsRef)
}

type linkOutcome int

const (
	linkAccept linkOutcome = iota
	linkAcceptReadOnly
	linkReject
)

// twoWayVisibilityOutcome implements the visibility-compatibility table of
// spec §4.1 Pass A.
func twoWayVisibilityOutcome(lhs, rhs element.Visibility) linkOutcome {
	rhsWritable := rhs == element.VisibilityInOut || rhs == element.VisibilityPrivate
	if lhs.IsWritableExternally() && rhsWritable {
		return linkAccept
	}
	if lhs == element.VisibilityInput && rhs == element.VisibilityInput {
		return linkAcceptReadOnly
	}
	if (lhs == element.VisibilityOutput || lhs == element.VisibilityPrivate) &&
		(rhs == element.VisibilityOutput || rhs == element.VisibilityInput) {
		return linkAcceptReadOnly
	}
	if lhs == element.VisibilityInput && rhs == element.VisibilityOutput {
		return linkAcceptReadOnly
	}
	if lhs == element.VisibilityInput {
		return linkReject
	}
	return linkReject
}

// runPassB resolves every other binding, in traversal order (spec §4.1
// Pass B).
func runPassB(doc *Document, comp *element.Component, loader TypeLoader, diags *diag.Builder) {
	walkElements(comp.Root, nil, func(e *element.Element, scope []*element.Element) {
		effectiveScope := scope
		if e.Repeated != nil {
			// Models must not see the repeater's own index/model_data
			// (spec §4.1 Pass B, §9 "Scope stack for resolver").
			if len(scope) > 0 {
				effectiveScope = scope[:len(scope)-1]
			}
			resolveModelBinding(doc, loader, diags, e, effectiveScope)
		}

		for propName, binding := range e.Bindings {
			if binding.IsTwoWay() || !binding.Expression.IsUncompiled() {
				continue
			}
			resolveBinding(doc, loader, diags, e, propName, binding, scope)
		}
	})
}

func resolveModelBinding(doc *Document, loader TypeLoader, diags *diag.Builder, e *element.Element, parentScope []*element.Element) {
	if e.Repeated.Model == nil || !e.Repeated.Model.Expression.IsUncompiled() {
		return
	}
	ctx := &LookupContext{
		PropertyName:   "model",
		ComponentScope: parentScope,
		Document:       doc,
		Loader:         loader,
		LocalVariables: []map[string]*typesystem.Type{{}},
	}
	n := e.Repeated.Model.Expression.Data.(element.UncompiledData).Node
	e.Repeated.Model.Resolve(BuildExpr(ctx, n, diags))
}

func resolveBinding(doc *Document, loader TypeLoader, diags *diag.Builder, e *element.Element, propName string, binding *element.Binding, scope []*element.Element) {
	decl, _ := e.Properties.Get(propName)
	var propType *typesystem.Type
	if decl != nil {
		propType = decl.Type
	}

	ctx := &LookupContext{
		PropertyName:   propName,
		PropertyType:   propType,
		ComponentScope: scope,
		Document:       doc,
		Loader:         loader,
		LocalVariables: []map[string]*typesystem.Type{{}},
	}

	n := binding.Expression.Data.(element.UncompiledData).Node
	typed := BuildExpr(ctx, n, diags)

	if propType != nil && !typed.Type.IsInvalid() {
		typed = PercentToLength(propName, typed, propType, n.Location(), diags)
		if !typesystem.Equal(typed.Type, propType) {
			typed = coerce(typed, propType)
		}
	}

	binding.Resolve(typed)
}

// walkElements visits e and its descendants in traversal order, invoking
// visit with the current scope stack (ancestors, innermost last).
func walkElements(e *element.Element, scope []*element.Element, visit func(*element.Element, []*element.Element)) {
	if e == nil {
		return
	}
	scope = append(append([]*element.Element{}, scope...), e)
	visit(e, scope)
	for _, child := range e.Children {
		walkElements(child, scope, visit)
	}
}
