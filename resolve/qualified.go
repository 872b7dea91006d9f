package resolve

import (
	"fmt"

	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

// ResolveQualifiedName runs the full lookup algorithm of spec §4.1 over a
// dotted identifier sequence and lowers the result to a typed Expression
// (ExprReference for a property, ExprCall for a zero-arg callback read, or
// Invalid with a diagnostic on failure).
func ResolveQualifiedName(ctx *LookupContext, q *syntax.QualifiedName, diags *diag.Builder) *element.Expression {
	if len(q.Parts) == 0 {
		diags.Errorf(q.Location(), diag.MalformedConstruct, "empty qualified name")
		return element.Invalid()
	}

	first := q.Parts[0]
	result, ok := ctx.lookupIdentifier(first)
	if !ok {
		return recoverUnknownIdentifier(ctx, q, diags)
	}

	for _, part := range q.Parts[1:] {
		var next LookupResult
		if result.Kind == ResultElement {
			next, ok = lookupOnElement(result.Element, part)
		} else {
			next, ok = lookupObject(result, part)
		}
		if !ok {
			diags.Errorf(q.Location(), diag.UnknownIdentifier,
				"unknown member %q of %s", part, describeResult(result))
			return element.Invalid()
		}
		result = next
	}

	return lowerLookupResult(q.Location(), result, diags)
}

func lowerLookupResult(loc diag.Location, r LookupResult, diags *diag.Builder) *element.Expression {
	switch r.Kind {
	case ResultElement:
		diags.Errorf(loc, diag.TypeMismatch, "element reference used where a value was expected")
		return element.Invalid()
	case ResultPropertyReference:
		return element.Reference(r.Type, r.Ref)
	case ResultCallback:
		return element.Call(typesystem.Void, r.Ref, "", nil)
	case ResultFunction, ResultMemberFunction:
		return element.Call(r.Type.Ret(), r.Ref, r.Name, nil)
	case ResultLocal, ResultArgument:
		return element.LoadLocal(r.Name, r.Type)
	case ResultStructField:
		return &element.Expression{Kind: element.ExprLoadLocal, Type: r.Type, Data: element.LocalData{Name: r.Name}}
	case ResultEnumVariant:
		return element.Literal(r.Type, r.Name)
	case ResultType:
		diags.Errorf(loc, diag.TypeMismatch, "type name %q used where a value was expected", r.Name)
		return element.Invalid()
	default:
		diags.Errorf(loc, diag.UnknownIdentifier, "could not resolve identifier")
		return element.Invalid()
	}
}

func recoverUnknownIdentifier(ctx *LookupContext, q *syntax.QualifiedName, diags *diag.Builder) *element.Expression {
	first := q.Parts[0]

	if res, suggestion, ok := hyphenRecover(ctx, first); ok {
		diags.Errorf(q.Location(), diag.UnknownIdentifier, "unknown identifier %q", first)
		diags.Suggest(suggestion)
		return lowerLookupResult(q.Location(), res, diags)
	}

	diags.Errorf(q.Location(), diag.UnknownIdentifier, "unknown identifier %q", first)
	if suggestion, ok := selfRootRecover(ctx, first); ok {
		diags.Suggest(fmt.Sprintf("did you mean %q?", suggestion))
	}
	return element.Invalid()
}

func describeResult(r LookupResult) string {
	switch r.Kind {
	case ResultElement:
		if r.Element != nil {
			return "element " + r.Element.ID
		}
		return "element"
	case ResultPropertyReference:
		return "property " + r.Ref.Property
	default:
		return "value"
	}
}
