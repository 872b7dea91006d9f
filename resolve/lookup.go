package resolve

import (
	"strings"

	"github.com/viewlang/core/element"
	"github.com/viewlang/core/typesystem"
)

// ResultKind tags what a qualified-name lookup resolved to.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultElement
	ResultPropertyReference
	ResultCallback
	ResultFunction
	ResultMemberFunction
	ResultLocal
	ResultArgument
	ResultStructField
	ResultEnumVariant
	ResultNamespaceMember
	ResultType
)

// LookupResult is what one identifier of a qualified name resolved to; it
// is itself the base against which the next identifier performs object
// lookup (spec §4.1 "Lookup algorithm", step 2-3).
type LookupResult struct {
	Kind    ResultKind
	Element *element.Element
	Ref     element.NamedReference
	Type    *typesystem.Type
	Name    string
}

// LookupContext is the environment a single binding is resolved in (spec
// §4.1 Pass B): enclosing elements, in-scope arguments and locals, and the
// expected property type.
type LookupContext struct {
	PropertyName string
	PropertyType *typesystem.Type
	SourceFile   string

	// ComponentScope is the stack of enclosing elements, innermost (the
	// element the binding is declared on) last. For a repeater's model
	// expression the caller passes the parent's scope, one level
	// truncated (spec §9 "Scope stack for resolver").
	ComponentScope []*element.Element

	// Arguments holds declared parameter names (callback/function
	// bindings) mapped to their type.
	Arguments map[string]*typesystem.Type

	// LocalVariables is a stack of per-code-block scopes; the innermost
	// block is last.
	LocalVariables []map[string]*typesystem.Type

	Document *Document
	Loader   TypeLoader
}

// PushLocalScope opens a new code-block-local scope.
func (c *LookupContext) PushLocalScope() {
	c.LocalVariables = append(c.LocalVariables, map[string]*typesystem.Type{})
}

// PopLocalScope closes the innermost code-block-local scope.
func (c *LookupContext) PopLocalScope() {
	c.LocalVariables = c.LocalVariables[:len(c.LocalVariables)-1]
}

// DeclareLocal records name in the innermost local scope. It reports false
// (without overwriting) if name is already declared in that scope, so the
// caller can raise the "redeclared local" diagnostic (spec §7).
func (c *LookupContext) DeclareLocal(name string, typ *typesystem.Type) bool {
	scope := c.LocalVariables[len(c.LocalVariables)-1]
	if _, exists := scope[name]; exists {
		return false
	}
	scope[name] = typ
	return true
}

// lookupIdentifier implements step 1 of the lookup algorithm: special
// identifiers, then arguments, then locals, then the enclosing element
// scope (walking outward), then globals, then built-ins, then registered
// types.
func (c *LookupContext) lookupIdentifier(name string) (LookupResult, bool) {
	norm := Normalize(name)

	switch norm {
	case "self":
		if len(c.ComponentScope) > 0 {
			return LookupResult{Kind: ResultElement, Element: c.ComponentScope[len(c.ComponentScope)-1]}, true
		}
	case "root":
		if len(c.ComponentScope) > 0 {
			return LookupResult{Kind: ResultElement, Element: c.ComponentScope[0]}, true
		}
	case "parent":
		if len(c.ComponentScope) > 1 {
			return LookupResult{Kind: ResultElement, Element: c.ComponentScope[len(c.ComponentScope)-2]}, true
		}
	}

	for argName, argType := range c.Arguments {
		if NormalizedEqual(argName, name) {
			return LookupResult{Kind: ResultArgument, Type: argType, Name: argName}, true
		}
	}

	for i := len(c.LocalVariables) - 1; i >= 0; i-- {
		for localName, localType := range c.LocalVariables[i] {
			if NormalizedEqual(localName, name) {
				return LookupResult{Kind: ResultLocal, Type: localType, Name: localName}, true
			}
		}
	}

	for i := len(c.ComponentScope) - 1; i >= 0; i-- {
		scopeElem := c.ComponentScope[i]
		if NormalizedEqual(scopeElem.ID, name) {
			return LookupResult{Kind: ResultElement, Element: scopeElem}, true
		}
		// A bare property name resolves against the nearest enclosing
		// element that declares it, same as an implicit `self.`.
		if decl, ok := lookupPropertyNormalized(scopeElem, name); ok {
			return propertyResult(scopeElem, decl.Name, decl.Type), true
		}
	}

	if c.Document != nil {
		if comp, ok := c.Document.Components[0].Globals[name]; ok {
			return LookupResult{Kind: ResultElement, Element: comp.Root}, true
		}
		if typ, ok := c.Document.Builtins[name]; ok {
			return LookupResult{Kind: ResultFunction, Type: typ, Name: name}, true
		}
	}

	if c.Loader != nil {
		if typ, ok := c.Loader.LookupType(name); ok {
			return LookupResult{Kind: ResultType, Type: typ, Name: name}, true
		}
	}

	return LookupResult{}, false
}

func lookupPropertyNormalized(e *element.Element, name string) (*element.PropertyDeclaration, bool) {
	for _, n := range e.Properties.Names() {
		if NormalizedEqual(n, name) {
			decl, _ := e.Properties.Get(n)
			return decl, true
		}
	}
	return nil, false
}

func propertyResult(e *element.Element, property string, typ *typesystem.Type) LookupResult {
	return LookupResult{
		Kind: ResultPropertyReference,
		Ref:  element.NewNamedReference(e, property),
		Type: typ,
	}
}

// lookupOnElement implements step 2: once the first identifier resolved to
// an element reference, every subsequent identifier resolves against it.
func lookupOnElement(e *element.Element, name string) (LookupResult, bool) {
	if decl, ok := lookupPropertyNormalized(e, name); ok {
		return propertyResult(e, decl.Name, decl.Type), true
	}
	if binding, ok := e.Binding(name); ok && binding != nil {
		// A callback with no declared PropertyDeclaration (pure handler).
		return LookupResult{Kind: ResultCallback, Ref: element.NewNamedReference(e, name)}, true
	}
	return LookupResult{}, false
}

// lookupObject implements step 3: object lookup on a non-element prior
// result (struct field, enum variant, namespace member).
func lookupObject(prior LookupResult, name string) (LookupResult, bool) {
	switch prior.Kind {
	case ResultStructField, ResultLocal, ResultArgument, ResultPropertyReference:
		if prior.Type.Kind() == typesystem.KindStruct {
			if ft, ok := prior.Type.Fields().Get(name); ok {
				return LookupResult{Kind: ResultStructField, Type: ft, Name: name}, true
			}
		}
		if prior.Type.Kind() == typesystem.KindEnumeration {
			for _, v := range prior.Type.EnumInfo().Variants {
				if NormalizedEqual(v, name) {
					return LookupResult{Kind: ResultEnumVariant, Type: prior.Type, Name: v}, true
				}
			}
		}
	case ResultType:
		if prior.Type.Kind() == typesystem.KindEnumeration {
			for _, v := range prior.Type.EnumInfo().Variants {
				if NormalizedEqual(v, name) {
					return LookupResult{Kind: ResultEnumVariant, Type: prior.Type, Name: v}, true
				}
			}
		}
	}
	return LookupResult{}, false
}

// hyphenRecover implements spec §4.1 step 4's hyphen-recovery: if ident
// contains `-`, retry with just the prefix before the first `-`, returning
// a suggestion string to surface alongside the eventual diagnostic.
func hyphenRecover(c *LookupContext, ident string) (LookupResult, string, bool) {
	i := strings.IndexByte(ident, '-')
	if i < 0 {
		return LookupResult{}, "", false
	}
	prefix := ident[:i]
	if res, ok := c.lookupIdentifier(prefix); ok {
		return res, "insert a space after \"" + prefix + "\"?", true
	}
	return LookupResult{}, "", false
}

// selfRootRecover implements the "self.X / root.X recovery for unqualified
// failures" half of step 4.
func selfRootRecover(c *LookupContext, ident string) (string, bool) {
	if len(c.ComponentScope) == 0 {
		return "", false
	}
	if _, ok := lookupPropertyNormalized(c.ComponentScope[len(c.ComponentScope)-1], ident); ok {
		return "self." + ident, true
	}
	if _, ok := lookupPropertyNormalized(c.ComponentScope[0], ident); ok {
		return "root." + ident, true
	}
	return "", false
}
