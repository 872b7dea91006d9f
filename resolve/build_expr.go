package resolve

import (
	exprast "github.com/expr-lang/expr/ast"

	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

// BuildExpr lowers one untyped syntax node into a typed element.Expression,
// dispatching on its Kind. It is the entry point Pass B calls for every
// binding, code-block statement, and callback body.
func BuildExpr(ctx *LookupContext, n syntax.Node, diags *diag.Builder) *element.Expression {
	if n == nil {
		return element.Invalid()
	}
	switch n.Kind() {
	case syntax.KindQualifiedName:
		if e, ok := syntax.AsExprNode(n); ok {
			return buildFromAST(ctx, e.AST(), n.Location(), diags)
		}
		q, _ := syntax.AsQualifiedName(n)
		return ResolveQualifiedName(ctx, q, diags)
	case syntax.KindImageURL:
		img, _ := syntax.AsImageURL(n)
		return buildImageURL(ctx, img, diags)
	case syntax.KindGradient:
		g, _ := syntax.AsGradient(n)
		return buildGradient(ctx, g, diags)
	case syntax.KindTrCall:
		c, _ := syntax.AsTrCall(n)
		return buildTrCall(ctx, c, diags)
	case syntax.KindStringTemplate:
		s, _ := syntax.AsStringTemplate(n)
		return buildStringTemplate(ctx, s, diags)
	case syntax.KindCodeBlock:
		b, _ := syntax.AsCodeBlock(n)
		return buildCodeBlock(ctx, b, diags)
	case syntax.KindCallbackConnection:
		c, _ := syntax.AsCallbackConnection(n)
		return buildCallbackConnection(ctx, c, diags)
	case syntax.KindLetStatement:
		l, _ := syntax.AsLetStatement(n)
		return buildLetStatement(ctx, l, diags)
	case syntax.KindReturnStatement:
		r, _ := syntax.AsReturnStatement(n)
		return buildReturnStatement(ctx, r, diags)
	default:
		e, ok := syntax.AsExprNode(n)
		if !ok {
			diags.Errorf(n.Location(), diag.MalformedConstruct, "unrecognized syntax node")
			return element.Invalid()
		}
		return buildFromAST(ctx, e.AST(), n.Location(), diags)
	}
}

// buildFromAST walks an expr-lang AST node, the backing representation for
// every general arithmetic/call/member/conditional/literal form (spec §6).
func buildFromAST(ctx *LookupContext, n exprast.Node, loc diag.Location, diags *diag.Builder) *element.Expression {
	if parts, ok := qualifiedNameParts(n); ok {
		return ResolveQualifiedName(ctx, syntax.NewQualifiedName(parts, loc), diags)
	}

	switch node := n.(type) {
	case *exprast.IntegerNode:
		return element.Literal(typesystem.Int32, node.Value)
	case *exprast.FloatNode:
		return element.Literal(typesystem.Float32, node.Value)
	case *exprast.StringNode:
		return element.Literal(typesystem.String, node.Value)
	case *exprast.BoolNode:
		return element.Literal(typesystem.Bool, node.Value)
	case *exprast.ConstantNode:
		return element.Literal(typesystem.Invalid, node.Value)
	case *exprast.UnaryNode:
		operand := buildFromAST(ctx, node.Node, loc, diags)
		return BuildUnary(node.Operator, operand, loc, diags)
	case *exprast.BinaryNode:
		left := buildFromAST(ctx, node.Left, loc, diags)
		right := buildFromAST(ctx, node.Right, loc, diags)
		return BuildBinary(node.Operator, left, right, loc, diags)
	case *exprast.ConditionalNode:
		cond := buildFromAST(ctx, node.Cond, loc, diags)
		then := buildFromAST(ctx, node.Exp1, loc, diags)
		els := buildFromAST(ctx, node.Exp2, loc, diags)
		return BuildConditional(cond, then, els, loc, diags)
	case *exprast.ArrayNode:
		elems := make([]*element.Expression, len(node.Nodes))
		for i, sub := range node.Nodes {
			elems[i] = buildFromAST(ctx, sub, loc, diags)
		}
		elemTypes := make([]*typesystem.Type, len(elems))
		for i, e := range elems {
			elemTypes[i] = e.Type
		}
		return element.ArrayLiteral(typesystem.ArrayOf(typesystem.CommonTargetTypeForList(elemTypes)), elems)
	case *exprast.CallNode:
		return buildCall(ctx, node, loc, diags)
	case *exprast.MemberNode:
		return buildMember(ctx, node, loc, diags)
	default:
		diags.Errorf(loc, diag.MalformedConstruct, "unsupported expression form %T", n)
		return element.Invalid()
	}
}

// qualifiedNameParts recognizes a pure chain of identifier/member accesses
// (`a.b.c`) and flattens it to its dotted parts, the same shape
// ResolveQualifiedName expects; anything else (computed member access,
// calls embedded in the chain) falls through to buildMember instead.
func qualifiedNameParts(n exprast.Node) ([]string, bool) {
	switch node := n.(type) {
	case *exprast.IdentifierNode:
		return []string{node.Value}, true
	case *exprast.ChainNode:
		return qualifiedNameParts(node.Node)
	case *exprast.MemberNode:
		prop, ok := node.Property.(*exprast.StringNode)
		if !ok {
			return nil, false
		}
		base, ok := qualifiedNameParts(node.Node)
		if !ok {
			return nil, false
		}
		return append(base, prop.Value), true
	default:
		return nil, false
	}
}

func buildMember(ctx *LookupContext, node *exprast.MemberNode, loc diag.Location, diags *diag.Builder) *element.Expression {
	base := buildFromAST(ctx, node.Node, loc, diags)
	prop, ok := node.Property.(*exprast.StringNode)
	if !ok {
		diags.Errorf(loc, diag.MalformedConstruct, "computed member access is not supported")
		return element.Invalid()
	}
	if base.Type.Kind() != typesystem.KindStruct {
		diags.Errorf(loc, diag.SemanticConstraint, "field access on non-struct type %s", base.Type)
		return element.Invalid()
	}
	ft, ok := base.Type.Fields().Get(prop.Value)
	if !ok {
		diags.Errorf(loc, diag.UnknownIdentifier, "unknown field %q", prop.Value)
		return element.Invalid()
	}
	return &element.Expression{Kind: element.ExprLoadLocal, Type: ft, Data: element.LocalData{Name: prop.Value}}
}

func buildCall(ctx *LookupContext, node *exprast.CallNode, loc diag.Location, diags *diag.Builder) *element.Expression {
	parts, isQualified := qualifiedNameParts(node.Callee)
	args := make([]*element.Expression, len(node.Arguments))
	for i, a := range node.Arguments {
		args[i] = buildFromAST(ctx, a, loc, diags)
	}
	if !isQualified {
		diags.Errorf(loc, diag.MalformedConstruct, "unsupported call target")
		return element.Invalid()
	}
	name := parts[len(parts)-1]
	if len(parts) == 1 {
		if typ, ok := ctx.Document.Builtins[name]; ok {
			return element.Call(typ.Ret(), element.NamedReference{}, name, args)
		}
	}
	q := syntax.NewQualifiedName(parts, loc)
	callee := ResolveQualifiedName(ctx, q, diags)
	if callee.Kind != element.ExprCall {
		diags.Errorf(loc, diag.TypeMismatch, "%q is not callable", name)
		return element.Invalid()
	}
	data := callee.Data.(element.CallData)
	data.Args = args
	return &element.Expression{Kind: element.ExprCall, Type: callee.Type, Data: data}
}

// BuildBinary implements spec §4.1's binary arithmetic and comparison
// rules.
func BuildBinary(op string, left, right *element.Expression, loc diag.Location, diags *diag.Builder) *element.Expression {
	switch op {
	case "+", "-":
		return buildAdditive(op, left, right, loc, diags)
	case "*", "/":
		return buildMultiplicative(op, left, right, loc, diags)
	case "==", "!=":
		typ := typesystem.CommonTargetType(left.Type, right.Type)
		return element.Arithmetic(typesystem.Bool, op, coerce(left, typ), coerce(right, typ))
	case "<", "<=", ">", ">=":
		if left.Type.Kind() == typesystem.KindStruct || right.Type.Kind() == typesystem.KindStruct {
			diags.Errorf(loc, diag.TypeMismatch, "type %s has no order; only == and != are allowed", left.Type)
			return element.Invalid()
		}
		typ := typesystem.CommonTargetType(left.Type, right.Type)
		return element.Arithmetic(typesystem.Bool, op, coerce(left, typ), coerce(right, typ))
	case "&&", "||":
		return element.Arithmetic(typesystem.Bool, op, coerce(left, typesystem.Bool), coerce(right, typesystem.Bool))
	default:
		diags.Errorf(loc, diag.MalformedConstruct, "unsupported operator %q", op)
		return element.Invalid()
	}
}

func buildAdditive(op string, left, right *element.Expression, loc diag.Location, diags *diag.Builder) *element.Expression {
	if op == "+" && (left.Type.Kind() == typesystem.KindString || right.Type.Kind() == typesystem.KindString) {
		return element.Arithmetic(typesystem.String, op, coerce(left, typesystem.String), coerce(right, typesystem.String))
	}
	switch {
	case left.Type.Kind() == typesystem.KindNumber && left.Type.Unit() != typesystem.UnitNone:
		return element.Arithmetic(left.Type, op, left, coerce(right, left.Type))
	case right.Type.Kind() == typesystem.KindNumber && right.Type.Unit() != typesystem.UnitNone:
		return element.Arithmetic(right.Type, op, coerce(left, right.Type), right)
	default:
		return element.Arithmetic(typesystem.Float32, op, coerce(left, typesystem.Float32), coerce(right, typesystem.Float32))
	}
}

func buildMultiplicative(op string, left, right *element.Expression, loc diag.Location, diags *diag.Builder) *element.Expression {
	lu, ru := left.Type.Unit(), right.Type.Unit()
	leftHasUnit := left.Type.Kind() == typesystem.KindNumber && lu != typesystem.UnitNone
	rightHasUnit := right.Type.Kind() == typesystem.KindNumber && ru != typesystem.UnitNone

	switch {
	case leftHasUnit && rightHasUnit:
		pow := 1
		if op == "/" {
			pow = -1
		}
		typ := typesystem.UnitProductOf([]typesystem.UnitTerm{{Unit: lu, Pow: 1}, {Unit: ru, Pow: pow}})
		return element.Arithmetic(typ, op, left, right)
	case leftHasUnit:
		return element.Arithmetic(left.Type, op, left, coerce(right, typesystem.Float32))
	case rightHasUnit:
		return element.Arithmetic(right.Type, op, coerce(left, typesystem.Float32), right)
	default:
		return element.Arithmetic(typesystem.Float32, op, coerce(left, typesystem.Float32), coerce(right, typesystem.Float32))
	}
}

// BuildUnary handles `-x` and `!x`.
func BuildUnary(op string, operand *element.Expression, loc diag.Location, diags *diag.Builder) *element.Expression {
	switch op {
	case "-":
		return element.Arithmetic(operand.Type, "neg", operand, nil)
	case "!":
		return element.Arithmetic(typesystem.Bool, "not", coerce(operand, typesystem.Bool), nil)
	default:
		diags.Errorf(loc, diag.MalformedConstruct, "unsupported unary operator %q", op)
		return element.Invalid()
	}
}

// BuildConditional implements spec §4.1's "Conditional" rule: the condition
// coerces to Bool, both branches coerce to their common target type.
func BuildConditional(cond, then, els *element.Expression, loc diag.Location, diags *diag.Builder) *element.Expression {
	typ := typesystem.CommonTargetType(then.Type, els.Type)
	return element.Conditional(typ, coerce(cond, typesystem.Bool), coerce(then, typ), coerce(els, typ))
}

// coerce wraps e in an ExprCast to typ if its type differs, implementing
// the "insert required conversions" half of the resolver's responsibility.
// A cast to an identical type is a no-op; coerce never rejects and reports
// no diagnostic: it inserts the cast even where no conversion between the
// two types exists, and its callers do not check convertibility first.
func coerce(e *element.Expression, typ *typesystem.Type) *element.Expression {
	if e == nil {
		return element.Invalid()
	}
	if typesystem.Equal(e.Type, typ) {
		return e
	}
	return element.Cast(typ, e)
}

// PercentToLength implements spec §4.1's "Percentage-to-length coercion":
// allowed only when binding one of width/height/preferred-width/
// preferred-height.
func PercentToLength(property string, e *element.Expression, target *typesystem.Type, loc diag.Location, diags *diag.Builder) *element.Expression {
	if e.Type.Kind() != typesystem.KindNumber || e.Type.Unit() != typesystem.UnitPercent {
		return e
	}
	switch Normalize(property) {
	case "width", "height", "preferred-width", "preferred-height":
		return element.Cast(target, e)
	default:
		diags.Errorf(loc, diag.SemanticConstraint,
			"percentage value not allowed for property %q; only width, height, preferred-width, preferred-height accept percentages", property)
		return element.Invalid()
	}
}

