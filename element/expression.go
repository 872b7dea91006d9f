package element

import (
	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

// ExprKind tags the typed Expression tree C1 produces (spec §3,
// Expression "tagged sum"). Uncompiled is the only kind a fresh Binding may
// carry; invariant 1 requires every other binding to have moved off it by
// the time resolve_expressions returns.
type ExprKind int

const (
	ExprUncompiled ExprKind = iota
	ExprInvalid
	ExprLiteral
	ExprReference
	ExprArithmetic
	ExprConditional
	ExprCall
	ExprCast
	ExprStructLiteral
	ExprArrayLiteral
	ExprStoreLocal
	ExprLoadLocal
	ExprReturn
	ExprCodeBlock
	ExprCallback
	ExprImageRef
	ExprGradient
	ExprTrCall
)

func (k ExprKind) String() string {
	names := [...]string{
		"uncompiled", "invalid", "literal", "reference", "arithmetic",
		"conditional", "call", "cast", "struct-literal", "array-literal",
		"store-local", "load-local", "return", "code-block", "callback",
		"image-ref", "gradient", "tr-call",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Expression is one typed node of the resolved expression tree. Kind tags
// which payload struct Data holds (see the Expr*Data types below and the
// constructors, which are the only supported way to build a well-formed
// Expression).
type Expression struct {
	Kind ExprKind
	Type *typesystem.Type
	Loc  diag.Location
	Data any
}

// Uncompiled returns the placeholder Expression a fresh Binding starts with.
func Uncompiled(n syntax.Node) *Expression {
	return &Expression{Kind: ExprUncompiled, Type: typesystem.Invalid, Data: UncompiledData{Node: n}}
}

// UncompiledData is the payload of an ExprUncompiled expression.
type UncompiledData struct{ Node syntax.Node }

// Invalid returns the Expression produced at a resolution failure site
// (spec §7: "every error produces Expression::Invalid").
func Invalid() *Expression {
	return &Expression{Kind: ExprInvalid, Type: typesystem.Invalid}
}

// IsUncompiled reports whether e is still the placeholder an unresolved
// Binding carries.
func (e *Expression) IsUncompiled() bool {
	return e != nil && e.Kind == ExprUncompiled
}

// LiteralData is the payload of an ExprLiteral expression: a constant of
// any of Type's scalar kinds (number, string, bool, color).
type LiteralData struct{ Value any }

func Literal(typ *typesystem.Type, value any) *Expression {
	return &Expression{Kind: ExprLiteral, Type: typ, Data: LiteralData{Value: value}}
}

// ReferenceData is the payload of an ExprReference expression: a resolved
// property read, e.g. `self.text` after lookup.
type ReferenceData struct{ Target NamedReference }

func Reference(typ *typesystem.Type, target NamedReference) *Expression {
	return &Expression{Kind: ExprReference, Type: typ, Data: ReferenceData{Target: target}}
}

// ArithmeticData is the payload of an ExprArithmetic expression.
type ArithmeticData struct {
	Op          string
	Left, Right *Expression
}

func Arithmetic(typ *typesystem.Type, op string, left, right *Expression) *Expression {
	return &Expression{Kind: ExprArithmetic, Type: typ, Data: ArithmeticData{Op: op, Left: left, Right: right}}
}

// ConditionalData is the payload of an ExprConditional expression.
type ConditionalData struct {
	Cond, Then, Else *Expression
}

func Conditional(typ *typesystem.Type, cond, then, els *Expression) *Expression {
	return &Expression{Kind: ExprConditional, Type: typ, Data: ConditionalData{Cond: cond, Then: then, Else: els}}
}

// CallData is the payload of an ExprCall expression: a Callback or Function
// invocation, or a call to a registered built-in (Translate, cast, ...).
type CallData struct {
	Callee NamedReference // zero if Builtin is set
	Builtin string
	Args   []*Expression
}

func Call(typ *typesystem.Type, callee NamedReference, builtin string, args []*Expression) *Expression {
	return &Expression{Kind: ExprCall, Type: typ, Data: CallData{Callee: callee, Builtin: builtin, Args: args}}
}

// CastData is the payload of an ExprCast expression: an implicit or
// explicit conversion inserted by the resolver (spec S1: Int-to-String).
type CastData struct {
	From *Expression
}

func Cast(to *typesystem.Type, from *Expression) *Expression {
	return &Expression{Kind: ExprCast, Type: to, Data: CastData{From: from}}
}

// StructLiteralData is the payload of an ExprStructLiteral expression.
type StructLiteralData struct {
	FieldNames  []string
	FieldValues []*Expression
}

func StructLiteral(typ *typesystem.Type, names []string, values []*Expression) *Expression {
	return &Expression{Kind: ExprStructLiteral, Type: typ, Data: StructLiteralData{FieldNames: names, FieldValues: values}}
}

// ArrayLiteralData is the payload of an ExprArrayLiteral expression.
type ArrayLiteralData struct{ Elements []*Expression }

func ArrayLiteral(typ *typesystem.Type, elems []*Expression) *Expression {
	return &Expression{Kind: ExprArrayLiteral, Type: typ, Data: ArrayLiteralData{Elements: elems}}
}

// LocalData is shared by ExprStoreLocal and ExprLoadLocal: the resolved,
// collision-prefixed local variable name (spec §4.1 "Let statements").
type LocalData struct {
	Name  string
	Value *Expression // nil for ExprLoadLocal
}

func StoreLocal(name string, value *Expression) *Expression {
	return &Expression{Kind: ExprStoreLocal, Type: value.Type, Data: LocalData{Name: name, Value: value}}
}

func LoadLocal(name string, typ *typesystem.Type) *Expression {
	return &Expression{Kind: ExprLoadLocal, Type: typ, Data: LocalData{Name: name}}
}

// ReturnData is the payload of an ExprReturn expression.
type ReturnData struct{ Value *Expression }

func Return(value *Expression) *Expression {
	typ := typesystem.Void
	if value != nil {
		typ = value.Type
	}
	return &Expression{Kind: ExprReturn, Type: typ, Data: ReturnData{Value: value}}
}

// CodeBlockData is the payload of an ExprCodeBlock expression: a sequence
// of statement expressions whose overall Type is the common target type of
// every exit point (spec §4.1 "Code block typing").
type CodeBlockData struct{ Statements []*Expression }

func CodeBlockExpr(typ *typesystem.Type, statements []*Expression) *Expression {
	return &Expression{Kind: ExprCodeBlock, Type: typ, Data: CodeBlockData{Statements: statements}}
}

// CallbackData is the payload of an ExprCallback expression: a callback
// handler body with its declared parameter names in scope.
type CallbackData struct {
	Params []string
	Body   *Expression // an ExprCodeBlock
}

func CallbackExpr(params []string, body *Expression) *Expression {
	return &Expression{Kind: ExprCallback, Type: typesystem.Void, Data: CallbackData{Params: params, Body: body}}
}

// ImageRefData is the payload of an ExprImageRef expression, after @image-url
// path resolution (spec §4.1).
type ImageRefData struct {
	ResolvedPath string
	NSlice       [4]float64
	NSliceCount  int
}

func ImageRef(data ImageRefData) *Expression {
	return &Expression{Kind: ExprImageRef, Type: typesystem.Image, Data: data}
}

// GradientStop is one fully-positioned stop of a resolved gradient (spec
// S3: positions filled in, 0..1 normalized).
type GradientStop struct {
	Color    *Expression
	Position float64
}

// GradientData is the payload of an ExprGradient expression.
type GradientData struct {
	Kind  syntax.GradientKind
	Angle *Expression // nil for radial/conic
	Stops []GradientStop
}

func GradientExpr(data GradientData) *Expression {
	return &Expression{Kind: ExprGradient, Type: typesystem.Brush, Data: data}
}

// TrCallData is the payload of an ExprTrCall expression, lowered to a call
// of the built-in Translate function (spec §4.1 "@tr").
type TrCallData struct {
	Format  string
	Context string
	Plural  *Expression
	Args    []*Expression
}

func TrCallExpr(data TrCallData) *Expression {
	return &Expression{Kind: ExprTrCall, Type: typesystem.String, Data: data}
}
