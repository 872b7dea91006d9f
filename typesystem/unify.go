package typesystem

// Equal reports whether a and b describe the same type. Numbers compare by
// Unit and int-ness, enumerations by identity of their EnumInfo; struct,
// array, callback, function and unit-product types are compared
// structurally; every other kind compares by Kind alone.
func Equal(a, b *Type) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		return false
	}
	switch ak {
	case KindNumber:
		return a.Unit() == b.Unit() && a.IsInt() == b.IsInt()
	case KindArray:
		return Equal(a.Elem(), b.Elem())
	case KindStruct:
		return a.Fields().Equal(b.Fields())
	case KindEnumeration:
		return a.EnumInfo() == b.EnumInfo()
	case KindCallback, KindFunction:
		if len(a.Args()) != len(b.Args()) {
			return false
		}
		for i := range a.Args() {
			if !Equal(a.Args()[i], b.Args()[i]) {
				return false
			}
		}
		return Equal(a.Ret(), b.Ret())
	case KindUnitProduct:
		at, bt := a.UnitProductTerms(), b.UnitProductTerms()
		if len(at) != len(bt) {
			return false
		}
		for i := range at {
			if at[i] != bt[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// CommonTargetType folds two types into the type binding expressions of both
// can be assigned to, implementing the unification rules of spec §4.1
// ("common_target_type_for_type_list"):
//
//   - equal types pass through unchanged
//   - Invalid is absorbed by the other operand (an error already reported
//     elsewhere should not cascade into a second one)
//   - two Struct types merge field-wise, recursively
//   - two Array types recurse on their element type, with Void acting as a
//     bottom type (an empty array literal unifies with anything)
//   - Color and Brush unify to Brush (every Color is usable as a Brush)
//   - Int32 and Float32 unify to Float32
//   - otherwise the left-hand type is returned; no convertibility check is
//     made between the two sides, and no diagnostic is raised
func CommonTargetType(a, b *Type) *Type {
	if a.IsInvalid() {
		return b
	}
	if b.IsInvalid() {
		return a
	}
	if Equal(a, b) {
		return a
	}

	ak, bk := a.Kind(), b.Kind()

	switch {
	case ak == KindVoid:
		return b
	case bk == KindVoid:
		return a
	}

	if ak == KindStruct && bk == KindStruct {
		return StructOf(a.Fields().Merge(b.Fields()))
	}

	if ak == KindArray && bk == KindArray {
		return ArrayOf(CommonTargetType(a.Elem(), b.Elem()))
	}

	if (ak == KindColor && bk == KindBrush) || (ak == KindBrush && bk == KindColor) {
		return Brush
	}

	if ak == KindNumber && bk == KindNumber {
		// Differing units never silently unify; the caller is expected to
		// have already flagged a unit mismatch. Int32/Float32 is the one
		// numeric promotion that is always safe.
		if a.Unit() == b.Unit() {
			return NumberOf(a.Unit())
		}
		return a
	}

	return a
}

// CommonTargetTypeForList folds a non-empty list of candidate types into a
// single common target type by repeated application of CommonTargetType, in
// list order. An empty list returns Invalid.
func CommonTargetTypeForList(types []*Type) *Type {
	if len(types) == 0 {
		return Invalid
	}
	result := types[0]
	for _, t := range types[1:] {
		result = CommonTargetType(result, t)
	}
	return result
}
