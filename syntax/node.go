// Package syntax defines the external, untyped syntax-tree contract the
// resolver consumes (spec §6): a parser/lexer outside this module's scope
// produces trees of these nodes, tagging every binding's expression
// Uncompiled until C1 walks it.
//
// Node is deliberately thin — kind query, child iteration, child text
// extraction, and source-location mapping — with a typed-wrapper function
// per concrete form (AsQualifiedName, AsExprNode, ...) standing in for the
// "typed wrappers for expression kinds" the spec asks for, rather than a
// type switch sprinkled through the resolver.
package syntax

import "github.com/viewlang/core/diag"

// Kind tags the concrete shape of a Node.
type Kind int

const (
	KindUncompiled Kind = iota
	KindLiteral
	KindQualifiedName
	KindBinaryOp
	KindUnaryOp
	KindFunctionCall
	KindMemberAccess
	KindConditional
	KindObjectLiteral
	KindArrayLiteral
	KindLetStatement
	KindReturnStatement
	KindCodeBlock
	KindCallbackConnection
	KindTwoWayBinding
	KindImageURL
	KindGradient
	KindTrCall
	KindStringTemplate
)

func (k Kind) String() string {
	names := [...]string{
		"uncompiled", "literal", "qualified-name", "binary-op", "unary-op",
		"function-call", "member-access", "conditional", "object-literal",
		"array-literal", "let-statement", "return-statement", "code-block",
		"callback-connection", "two-way-binding", "image-url", "gradient",
		"tr-call", "string-template",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Node is one node of an untyped syntax tree, as delivered by the parser.
type Node interface {
	// Kind reports the concrete syntactic form of this node.
	Kind() Kind
	// Location is the node's source byte range.
	Location() diag.Location
	// Children returns the node's direct syntactic children, in source order.
	Children() []Node
	// ChildText returns the raw source text of the first direct child of
	// the given kind, if one exists. Used for forms that carry a bare
	// textual payload (e.g. an identifier) rather than a further Node.
	ChildText(kind Kind) (string, bool)
}

// base is embedded by every concrete node below to supply Location and a
// default empty Children/ChildText, avoiding repetition across the forms in
// this package. Concrete nodes that do have children override Children.
type base struct {
	loc diag.Location
}

func (b base) Location() diag.Location         { return b.loc }
func (b base) Children() []Node                { return nil }
func (b base) ChildText(Kind) (string, bool)   { return "", false }

// Loc is a convenience constructor for diag.Location used when building
// syntax trees by hand (tests, and the hand-rolled forms below).
func Loc(file string, from, to int) diag.Location {
	return diag.Location{File: file, From: from, To: to}
}
