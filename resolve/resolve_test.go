package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/element"
	"github.com/viewlang/core/internal/diagtest"
	"github.com/viewlang/core/resolve"
	"github.com/viewlang/core/syntax"
	"github.com/viewlang/core/typesystem"
)

func newCtx(doc *resolve.Document, scope []*element.Element) *resolve.LookupContext {
	return &resolve.LookupContext{ComponentScope: scope, Document: doc}
}

// TestBinaryArithmeticIntPlusStringYieldsStringWithCast is scenario S1.
func TestBinaryArithmeticIntPlusStringYieldsStringWithCast(t *testing.T) {
	doc := resolve.NewDocument()
	var diags diag.Builder

	n, err := syntax.ParseExpr(`1 + "2"`, syntax.Loc("a.slint", 0, 7))
	require.NoError(t, err)

	expr := resolve.BuildExpr(newCtx(doc, nil), n, &diags)
	diagtest.RequireNoErrors(t, &diags)
	assert.True(t, typesystem.Equal(typesystem.String, expr.Type))

	data := expr.Data.(element.ArithmeticData)
	assert.Equal(t, "+", data.Op)
	assert.Equal(t, element.ExprCast, data.Left.Kind)
}

func TestConditionalCoercesBranchesToCommonType(t *testing.T) {
	doc := resolve.NewDocument()
	var diags diag.Builder

	n, err := syntax.ParseExpr(`true ? 1 : 2.5`, syntax.Loc("", 0, 0))
	require.NoError(t, err)

	expr := resolve.BuildExpr(newCtx(doc, nil), n, &diags)
	assert.True(t, typesystem.Equal(typesystem.Float32, expr.Type))
}

func TestPercentToLengthRejectedOutsideAllowedProperties(t *testing.T) {
	var diags diag.Builder
	pct := element.Literal(typesystem.NumberOf(typesystem.UnitPercent), 50.0)
	got := resolve.PercentToLength("opacity", pct, typesystem.Float32, diag.Location{}, &diags)
	assert.True(t, got.Type.IsInvalid())
	d := diagtest.RequireDiagnostic(t, &diags, diag.Error, diag.SemanticConstraint)
	assert.Contains(t, d.Message, "opacity")
}

func TestPercentToLengthAllowedForWidth(t *testing.T) {
	var diags diag.Builder
	pct := element.Literal(typesystem.NumberOf(typesystem.UnitPercent), 50.0)
	got := resolve.PercentToLength("width", pct, typesystem.NumberOf(typesystem.UnitPx), diag.Location{}, &diags)
	assert.False(t, diags.HasErrors())
	assert.Equal(t, element.ExprCast, got.Kind)
}

// TestTwoWayLinkageSharesStorage is scenario S2.
func TestTwoWayLinkageSharesStorage(t *testing.T) {
	doc := resolve.NewDocument()
	comp := element.NewComponent("C")
	root := element.NewElement("root", element.BaseComponent, "C", comp)
	comp.Root = root
	doc.Components = []*element.Component{comp}

	root.Properties.Add(&element.PropertyDeclaration{Name: "alias-target", Type: typesystem.Int32, Visibility: element.VisibilityInOut})
	root.Properties.Add(&element.PropertyDeclaration{Name: "a", Type: typesystem.InferredProperty, Visibility: element.VisibilityInOut})

	target := syntax.NewQualifiedName([]string{"alias-target"}, syntax.Loc("", 0, 0))
	root.SetBinding("a", element.NewBinding(syntax.NewTwoWayBinding(target, syntax.Loc("", 0, 0))))

	var diags diag.Builder
	resolve.ResolveExpressions(doc, nil, &diags, resolve.Options{})

	assert.False(t, diags.HasErrors())
	binding, _ := root.Binding("a")
	assert.Len(t, binding.TwoWayLinks, 1)
	assert.Equal(t, "alias-target", binding.TwoWayLinks[0].Property)
}

func TestResolveQualifiedNameFindsBarePropertyInEnclosingScope(t *testing.T) {
	doc := resolve.NewDocument()
	comp := element.NewComponent("C")
	root := element.NewElement("root", element.BaseComponent, "C", comp)
	root.Properties.Add(&element.PropertyDeclaration{Name: "visible", Type: typesystem.Bool})

	var diags diag.Builder
	q := syntax.NewQualifiedName([]string{"visible"}, syntax.Loc("", 0, 0))
	expr := resolve.ResolveQualifiedName(newCtx(doc, []*element.Element{root}), q, &diags)
	assert.True(t, typesystem.Equal(typesystem.Bool, expr.Type))
}

// TestLinearGradientStopInterpolation is scenario S3.
func TestLinearGradientStopInterpolation(t *testing.T) {
	doc := resolve.NewDocument()
	var diags diag.Builder

	angle, err := syntax.ParseExpr("0", syntax.Loc("", 0, 0))
	require.NoError(t, err)
	red, _ := syntax.ParseExpr(`"red"`, syntax.Loc("", 0, 0))
	green, _ := syntax.ParseExpr(`"green"`, syntax.Loc("", 0, 0))
	blue, _ := syntax.ParseExpr(`"blue"`, syntax.Loc("", 0, 0))

	g := syntax.NewGradient(syntax.LinearGradient, angle, []syntax.GradientStop{
		{Color: red}, {Color: green}, {Color: blue},
	}, syntax.Loc("", 0, 0))

	expr := resolve.BuildExpr(newCtx(doc, nil), g, &diags)
	require.False(t, diags.HasErrors())

	data := expr.Data.(element.GradientData)
	require.Len(t, data.Stops, 3)
	assert.Equal(t, 0.0, data.Stops[0].Position)
	assert.Equal(t, 0.5, data.Stops[1].Position)
	assert.Equal(t, 1.0, data.Stops[2].Position)
}

func TestTrCallRejectsMixedPositionalAndBarePlaceholders(t *testing.T) {
	doc := resolve.NewDocument()
	var diags diag.Builder

	c := syntax.NewTrCall("{} and {0}", "", nil, nil, syntax.Loc("", 0, 0))
	expr := resolve.BuildExpr(newCtx(doc, nil), c, &diags)
	assert.True(t, expr.Type.IsInvalid())
	assert.True(t, diags.HasErrors())
}
