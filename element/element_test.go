package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/element"
	"github.com/viewlang/core/typesystem"
)

func TestNamedReferenceUpgradeFailsSoftAfterDrop(t *testing.T) {
	comp := element.NewComponent("C")
	e := element.NewElement("btn", element.BaseNativeWidget, "Button", comp)
	ref := element.NewNamedReference(e, "text")

	_, ok := ref.Upgrade()
	assert.True(t, ok)

	e.MarkDropped()
	_, ok = ref.Upgrade()
	assert.False(t, ok)
}

func TestNamedReferenceEqualityRequiresElementAndProperty(t *testing.T) {
	comp := element.NewComponent("C")
	a := element.NewElement("a", element.BaseNativeWidget, "Rectangle", comp)
	b := element.NewElement("b", element.BaseNativeWidget, "Rectangle", comp)

	assert.True(t, element.NewNamedReference(a, "x").Equal(element.NewNamedReference(a, "x")))
	assert.False(t, element.NewNamedReference(a, "x").Equal(element.NewNamedReference(a, "y")))
	assert.False(t, element.NewNamedReference(a, "x").Equal(element.NewNamedReference(b, "x")))
}

func TestPropertyTablePreservesDeclarationOrder(t *testing.T) {
	tbl := element.NewPropertyTable()
	tbl.Add(&element.PropertyDeclaration{Name: "width", Type: typesystem.Float32})
	tbl.Add(&element.PropertyDeclaration{Name: "height", Type: typesystem.Float32})
	tbl.Add(&element.PropertyDeclaration{Name: "width", Type: typesystem.Int32})

	assert.Equal(t, []string{"width", "height"}, tbl.Names())
	decl, ok := tbl.Get("width")
	assert.True(t, ok)
	assert.True(t, typesystem.Equal(typesystem.Int32, decl.Type))
}

func TestVisibilityIsWritableExternally(t *testing.T) {
	assert.True(t, element.VisibilityInOut.IsWritableExternally())
	assert.False(t, element.VisibilityInput.IsWritableExternally())
	assert.False(t, element.VisibilityOutput.IsWritableExternally())
}

func TestBindingStartsUncompiled(t *testing.T) {
	b := element.NewBinding(nil)
	assert.True(t, b.Expression.IsUncompiled())
}
