package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/typesystem"
)

func TestCommonTargetTypeEqualPassesThrough(t *testing.T) {
	assert.True(t, typesystem.Equal(typesystem.String, typesystem.CommonTargetType(typesystem.String, typesystem.String)))
}

func TestCommonTargetTypeInvalidIsAbsorbed(t *testing.T) {
	assert.True(t, typesystem.Equal(typesystem.String, typesystem.CommonTargetType(typesystem.Invalid, typesystem.String)))
	assert.True(t, typesystem.Equal(typesystem.Bool, typesystem.CommonTargetType(typesystem.Bool, typesystem.Invalid)))
}

func TestCommonTargetTypeColorBrushUnifyToBrush(t *testing.T) {
	got := typesystem.CommonTargetType(typesystem.Color, typesystem.Brush)
	assert.True(t, typesystem.Equal(typesystem.Brush, got))
	got = typesystem.CommonTargetType(typesystem.Brush, typesystem.Color)
	assert.True(t, typesystem.Equal(typesystem.Brush, got))
}

func TestCommonTargetTypeIntFloatUnifyToFloat(t *testing.T) {
	got := typesystem.CommonTargetType(typesystem.Int32, typesystem.Float32)
	assert.True(t, typesystem.Equal(typesystem.Float32, got))
}

func TestCommonTargetTypeVoidIsBottomForArrays(t *testing.T) {
	empty := typesystem.ArrayOf(typesystem.Void)
	strings := typesystem.ArrayOf(typesystem.String)
	got := typesystem.CommonTargetType(empty, strings)
	assert.True(t, typesystem.Equal(typesystem.String, got.Elem()))
}

func TestCommonTargetTypeMergesStructFieldsRecursively(t *testing.T) {
	a := typesystem.NewFields()
	a.Add("x", typesystem.Int32)
	a.Add("label", typesystem.String)
	b := typesystem.NewFields()
	b.Add("x", typesystem.Float32)
	b.Add("color", typesystem.Color)

	merged := typesystem.CommonTargetType(typesystem.StructOf(a), typesystem.StructOf(b))
	assert.Equal(t, typesystem.KindStruct, merged.Kind())

	x, ok := merged.Fields().Get("x")
	assert.True(t, ok)
	assert.True(t, typesystem.Equal(typesystem.Float32, x))

	label, ok := merged.Fields().Get("label")
	assert.True(t, ok)
	assert.True(t, typesystem.Equal(typesystem.String, label))

	color, ok := merged.Fields().Get("color")
	assert.True(t, ok)
	assert.True(t, typesystem.Equal(typesystem.Color, color))
}

func TestCommonTargetTypeForListFoldsLeftToRight(t *testing.T) {
	got := typesystem.CommonTargetTypeForList([]*typesystem.Type{typesystem.Invalid, typesystem.Int32, typesystem.Float32})
	assert.True(t, typesystem.Equal(typesystem.Float32, got))
}

func TestCommonTargetTypeForListEmptyIsInvalid(t *testing.T) {
	assert.True(t, typesystem.CommonTargetTypeForList(nil).IsInvalid())
}
