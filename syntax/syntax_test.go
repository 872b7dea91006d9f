package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewlang/core/syntax"
)

func TestParseExprKindForBinaryOp(t *testing.T) {
	n, err := syntax.ParseExpr("1 + 2", syntax.Loc("a.slint", 0, 5))
	require.NoError(t, err)
	assert.Equal(t, syntax.KindBinaryOp, n.Kind())
}

func TestParseExprKindForMemberAccess(t *testing.T) {
	n, err := syntax.ParseExpr("self.text", syntax.Loc("a.slint", 0, 9))
	require.NoError(t, err)
	assert.Equal(t, syntax.KindMemberAccess, n.Kind())
}

func TestQualifiedNameParts(t *testing.T) {
	q := syntax.NewQualifiedName([]string{"root", "header", "visible"}, syntax.Loc("", 0, 0))
	assert.Equal(t, syntax.KindQualifiedName, q.Kind())
	assert.Equal(t, []string{"root", "header", "visible"}, q.Parts)
}

func TestCodeBlockChildrenAreStatements(t *testing.T) {
	ret := syntax.NewReturnStatement(nil, syntax.Loc("", 0, 0))
	block := syntax.NewCodeBlock([]syntax.Node{ret}, syntax.Loc("", 0, 0))
	assert.Len(t, block.Children(), 1)
}

func TestGradientStopsHoldOptionalPositions(t *testing.T) {
	half := 0.5
	red, _ := syntax.ParseExpr(`"red"`, syntax.Loc("", 0, 0))
	stops := []syntax.GradientStop{{Color: red, Position: &half}}
	g := syntax.NewGradient(syntax.LinearGradient, nil, stops, syntax.Loc("", 0, 0))
	assert.Equal(t, syntax.LinearGradient, g.Kind_)
	assert.Equal(t, 0.5, *g.Stops[0].Position)
}
