package syntax

import "github.com/viewlang/core/diag"

// QualifiedName is a dotted identifier sequence, e.g. `self.text` or
// `root.header.visible`.
type QualifiedName struct {
	base
	Parts []string
}

func NewQualifiedName(parts []string, loc diag.Location) *QualifiedName {
	return &QualifiedName{base: base{loc: loc}, Parts: parts}
}

func (n *QualifiedName) Kind() Kind { return KindQualifiedName }

// AsQualifiedName is the typed-wrapper accessor for dotted-name forms.
func AsQualifiedName(n Node) (*QualifiedName, bool) {
	q, ok := n.(*QualifiedName)
	return q, ok
}

// TwoWayBinding is the RHS of a `prop <-> other.prop;` declaration.
type TwoWayBinding struct {
	base
	Target *QualifiedName
}

func NewTwoWayBinding(target *QualifiedName, loc diag.Location) *TwoWayBinding {
	return &TwoWayBinding{base: base{loc: loc}, Target: target}
}

func (n *TwoWayBinding) Kind() Kind       { return KindTwoWayBinding }
func (n *TwoWayBinding) Children() []Node { return []Node{n.Target} }

func AsTwoWayBinding(n Node) (*TwoWayBinding, bool) {
	t, ok := n.(*TwoWayBinding)
	return t, ok
}

// ImageURL is an `@image-url("path", nslice...)` literal.
type ImageURL struct {
	base
	Path   string
	NSlice []float64 // 0, 1, 2 or 4 entries; validated by the resolver
}

func NewImageURL(path string, nslice []float64, loc diag.Location) *ImageURL {
	return &ImageURL{base: base{loc: loc}, Path: path, NSlice: nslice}
}

func (n *ImageURL) Kind() Kind { return KindImageURL }

func AsImageURL(n Node) (*ImageURL, bool) {
	i, ok := n.(*ImageURL)
	return i, ok
}

// GradientKind distinguishes the three gradient literal forms.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
	ConicGradient
)

// GradientStop is one `color [position]` entry of a gradient literal before
// position-filling (spec §4.1's "fill in missing positions").
type GradientStop struct {
	Color    *ExprNode
	Position *float64 // nil when omitted in source
}

// Gradient is a `@linear-gradient`/`@radial-gradient`/`@conic-gradient`
// literal. Angle is only meaningful for LinearGradient.
type Gradient struct {
	base
	Kind_ GradientKind
	Angle *ExprNode // nil for radial/conic
	Stops []GradientStop
}

func NewGradient(kind GradientKind, angle *ExprNode, stops []GradientStop, loc diag.Location) *Gradient {
	return &Gradient{base: base{loc: loc}, Kind_: kind, Angle: angle, Stops: stops}
}

func (n *Gradient) Kind() Kind { return KindGradient }

func AsGradient(n Node) (*Gradient, bool) {
	g, ok := n.(*Gradient)
	return g, ok
}

// TrCall is an `@tr("format", ctx?, plural?, args...)` literal.
type TrCall struct {
	base
	Format  string
	Context string // "" if absent
	Plural  *ExprNode
	Args    []*ExprNode
}

func NewTrCall(format, context string, plural *ExprNode, args []*ExprNode, loc diag.Location) *TrCall {
	return &TrCall{base: base{loc: loc}, Format: format, Context: context, Plural: plural, Args: args}
}

func (n *TrCall) Kind() Kind { return KindTrCall }

func AsTrCall(n Node) (*TrCall, bool) {
	c, ok := n.(*TrCall)
	return c, ok
}

// StringTemplate is a string literal containing `${...}` interpolations.
type StringTemplate struct {
	base
	// Parts alternates: literal text segments and interpolated
	// expressions. Exprs[i] is interpolated between Literals[i] and
	// Literals[i+1]; len(Literals) == len(Exprs)+1.
	Literals []string
	Exprs    []*ExprNode
}

func NewStringTemplate(literals []string, exprs []*ExprNode, loc diag.Location) *StringTemplate {
	return &StringTemplate{base: base{loc: loc}, Literals: literals, Exprs: exprs}
}

func (n *StringTemplate) Kind() Kind { return KindStringTemplate }

func AsStringTemplate(n Node) (*StringTemplate, bool) {
	s, ok := n.(*StringTemplate)
	return s, ok
}

// LetStatement is `let name = value;` inside a code block.
type LetStatement struct {
	base
	Name  string
	Value Node
}

func NewLetStatement(name string, value Node, loc diag.Location) *LetStatement {
	return &LetStatement{base: base{loc: loc}, Name: name, Value: value}
}

func (n *LetStatement) Kind() Kind       { return KindLetStatement }
func (n *LetStatement) Children() []Node { return []Node{n.Value} }

func AsLetStatement(n Node) (*LetStatement, bool) {
	l, ok := n.(*LetStatement)
	return l, ok
}

// ReturnStatement is `return value;` inside a code block or function body.
type ReturnStatement struct {
	base
	Value Node // nil for a bare `return;`
}

func NewReturnStatement(value Node, loc diag.Location) *ReturnStatement {
	return &ReturnStatement{base: base{loc: loc}, Value: value}
}

func (n *ReturnStatement) Kind() Kind { return KindReturnStatement }
func (n *ReturnStatement) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}

func AsReturnStatement(n Node) (*ReturnStatement, bool) {
	r, ok := n.(*ReturnStatement)
	return r, ok
}

// CodeBlock is a `{ stmt; stmt; expr }` body: a sequence of statements
// (Let/Return/expression-statements) whose type is the common target type
// of every exit point (spec §4.1 "Code block typing").
type CodeBlock struct {
	base
	Statements []Node
}

func NewCodeBlock(statements []Node, loc diag.Location) *CodeBlock {
	return &CodeBlock{base: base{loc: loc}, Statements: statements}
}

func (n *CodeBlock) Kind() Kind       { return KindCodeBlock }
func (n *CodeBlock) Children() []Node { return n.Statements }

func AsCodeBlock(n Node) (*CodeBlock, bool) {
	c, ok := n.(*CodeBlock)
	return c, ok
}

// CallbackConnection is a `callback-name => { ... }` handler body, whose
// declared parameter names must be in scope while resolving Body.
type CallbackConnection struct {
	base
	Params []string
	Body   *CodeBlock
}

func NewCallbackConnection(params []string, body *CodeBlock, loc diag.Location) *CallbackConnection {
	return &CallbackConnection{base: base{loc: loc}, Params: params, Body: body}
}

func (n *CallbackConnection) Kind() Kind       { return KindCallbackConnection }
func (n *CallbackConnection) Children() []Node { return []Node{n.Body} }

func AsCallbackConnection(n Node) (*CallbackConnection, bool) {
	c, ok := n.(*CallbackConnection)
	return c, ok
}
