// Package resolve implements C1, the expression resolver: it walks a
// document's element tree turning every Uncompiled binding into a typed
// element.Expression, performing name resolution, type inference, implicit
// conversions, two-way binding linkage, and diagnostic emission (spec §4.1).
package resolve

import (
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/typesystem"
)

// Document is the full set of components the resolver processes together;
// components may reference each other as globals.
type Document struct {
	Components []*element.Component
	// Builtins is the set of built-in function names the resolver accepts
	// in call position without a Callee NamedReference (cast, type,
	// duration, formatDuration, filter, sort, reverse, unique, take,
	// combine, Translate, ...). Kept on Document rather than hardcoded so
	// tests can extend it.
	Builtins map[string]*typesystem.Type
}

// NewDocument returns an empty Document with the standard builtin set.
func NewDocument() *Document {
	return &Document{Builtins: defaultBuiltins()}
}

func defaultBuiltins() map[string]*typesystem.Type {
	return map[string]*typesystem.Type{
		"Translate": typesystem.FunctionOf([]*typesystem.Type{typesystem.String}, typesystem.String),
	}
}

// TypeLoader is the external collaborator spec §6 names: global/local type
// registry, import-path resolution for @image-url, and a translation
// domain string.
type TypeLoader interface {
	// ResolveImportPath resolves a relative @image-url path against the
	// loader's import search path, returning the absolute path.
	ResolveImportPath(fromFile, relPath string) (string, bool)
	// LookupType resolves a registered type name (struct/enum) visible at
	// global scope.
	LookupType(name string) (*typesystem.Type, bool)
	// TranslationDomain is the domain string @tr calls are tagged with.
	TranslationDomain() string
}
