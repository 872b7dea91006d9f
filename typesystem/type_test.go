package typesystem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/typesystem"
)

func TestSingletonsHaveExpectedKind(t *testing.T) {
	assert.Equal(t, typesystem.KindInvalid, typesystem.Invalid.Kind())
	assert.Equal(t, typesystem.KindVoid, typesystem.Void.Kind())
	assert.Equal(t, typesystem.KindString, typesystem.String.Kind())
	assert.Equal(t, typesystem.KindNumber, typesystem.Float32.Kind())
	assert.True(t, typesystem.Int32.IsInt())
	assert.False(t, typesystem.Float32.IsInt())
}

func TestNumberOfReturnsSharedFloat32ForNoUnit(t *testing.T) {
	assert.Same(t, typesystem.Float32, typesystem.NumberOf(typesystem.UnitNone))
}

func TestArrayOfAndElem(t *testing.T) {
	arr := typesystem.ArrayOf(typesystem.String)
	assert.Equal(t, typesystem.KindArray, arr.Kind())
	assert.True(t, typesystem.Equal(typesystem.String, arr.Elem()))
}

func TestStructFieldsRoundTrip(t *testing.T) {
	fields := typesystem.NewFields()
	fields.Add("x", typesystem.Float32)
	fields.Add("y", typesystem.Float32)
	s := typesystem.StructOf(fields)

	typ, ok := s.Fields().Get("y")
	assert.True(t, ok)
	assert.True(t, typesystem.Equal(typesystem.Float32, typ))
	assert.Equal(t, []string{"x", "y"}, s.Fields().Names())
}

func TestUnitProductOfDropsZeroPowersAndCollapsesToNumber(t *testing.T) {
	typ := typesystem.UnitProductOf([]typesystem.UnitTerm{{Unit: typesystem.UnitPx, Pow: 0}})
	assert.Same(t, typesystem.Float32, typ)

	typ = typesystem.UnitProductOf([]typesystem.UnitTerm{{Unit: typesystem.UnitPx, Pow: 1}, {Unit: typesystem.UnitS, Pow: -1}})
	assert.Equal(t, typesystem.KindUnitProduct, typ.Kind())
	assert.Len(t, typ.UnitProductTerms(), 2)
}

func TestCallbackOfAndFunctionOfDefaultVoidReturn(t *testing.T) {
	cb := typesystem.CallbackOf([]*typesystem.Type{typesystem.String}, nil)
	assert.True(t, typesystem.Equal(typesystem.Void, cb.Ret()))
	assert.Len(t, cb.Args(), 1)
}
