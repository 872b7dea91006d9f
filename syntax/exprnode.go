package syntax

import (
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/viewlang/core/diag"
)

// ExprNode wraps a github.com/expr-lang/expr AST node. It backs every
// general arithmetic / call / member / conditional / literal form
// (KindLiteral, KindBinaryOp, KindUnaryOp, KindFunctionCall,
// KindMemberAccess, KindConditional, KindObjectLiteral, KindArrayLiteral),
// and a bare identifier, which it tags KindQualifiedName:
// the resolver walks the wrapped ast.Node the same way chtml's checker
// walks it for shape inference, just producing a typesystem.Type instead of
// a chtml Shape.
type ExprNode struct {
	base
	kind Kind
	ast  ast.Node
	src  string // original source text, for diagnostics and re-parsing
}

// ParseExpr parses a fragment of expression source (the grammar
// expr-lang/expr accepts: arithmetic, comparisons, member access, calls,
// conditionals, array/map literals) into an ExprNode rooted at the
// appropriate Kind.
func ParseExpr(src string, loc diag.Location) (*ExprNode, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return wrapExprAST(tree.Node, src, loc), nil
}

// NewExprNode wraps an already-parsed expr-lang AST node directly; used by
// the bespoke forms below (gradients, @tr, string templates) that build
// sub-expressions programmatically rather than by re-parsing source text.
func NewExprNode(n ast.Node, src string, loc diag.Location) *ExprNode {
	return wrapExprAST(n, src, loc)
}

func wrapExprAST(n ast.Node, src string, loc diag.Location) *ExprNode {
	return &ExprNode{base: base{loc: loc}, kind: kindForAST(n), ast: n, src: src}
}

func kindForAST(n ast.Node) Kind {
	switch n.(type) {
	case *ast.BinaryNode:
		return KindBinaryOp
	case *ast.UnaryNode:
		return KindUnaryOp
	case *ast.CallNode, *ast.BuiltinNode:
		return KindFunctionCall
	case *ast.MemberNode, *ast.ChainNode:
		return KindMemberAccess
	case *ast.ConditionalNode:
		return KindConditional
	case *ast.MapNode:
		return KindObjectLiteral
	case *ast.ArrayNode:
		return KindArrayLiteral
	case *ast.IdentifierNode:
		return KindQualifiedName
	default:
		return KindLiteral
	}
}

func (e *ExprNode) Kind() Kind { return e.kind }

// AST returns the wrapped expr-lang node for the resolver's build-expr
// rules to pattern-match on directly (it needs the concrete ast.BinaryNode
// etc., not just the Kind tag).
func (e *ExprNode) AST() ast.Node { return e.ast }

// Source returns the original expression text, when parsed from source.
func (e *ExprNode) Source() string { return e.src }

// AsExprNode is the typed-wrapper accessor for the expr-lang-backed forms.
func AsExprNode(n Node) (*ExprNode, bool) {
	e, ok := n.(*ExprNode)
	return e, ok
}
